// Package testing provides a testing kit for livenative documents.
//
// # Quick Start
//
// Create a tester, mount a document, interact and assert on the pushed
// events:
//
//	func TestSearch(t *testing.T) {
//	    tester := lntest.NewTesterWithT(t)
//	    tester.Mount(`<text-field phx-change="search" phx-debounce="300"/>`)
//
//	    tester.EnterText(lntest.ByTag("text-field"), "go")
//	    tester.Advance(300 * time.Millisecond)
//
//	    last, _ := tester.Events().Last()
//	    if last.Value != "go" {
//	        t.Errorf("value = %v", last.Value)
//	    }
//	}
//
// # Time
//
// Every timer of a mounted tree runs on a [FakeScheduler]. Debounced and
// throttled emissions fire only when the test advances the clock, and the
// [Recorder] stamps each event with the fake time it was pushed at.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import lntest "github.com/go-drift/livenative/pkg/testing"
package testing
