package testing

import (
	"testing"

	"github.com/go-drift/livenative/pkg/widgets"
)

const finderDoc = `
<livenative>
  <column id="outer">
    <text>Hello</text>
    <badged-box>
      <badge>3</badge>
      <icon name="mail"/>
    </badged-box>
    <button phx-click="go">Go now</button>
    <marquee/>
  </column>
</livenative>`

func mountFinderDoc(t *testing.T) *Tester {
	t.Helper()
	tester := NewTesterWithT(t)
	if err := tester.Mount(finderDoc); err == nil {
		t.Fatal("Mount should report the unknown marquee tag")
	}
	if tester.Root() == nil {
		t.Fatal("expected a mounted tree")
	}
	return tester
}

func TestByType(t *testing.T) {
	tester := mountFinderDoc(t)

	result := tester.Find(ByType[*widgets.Text]())
	if !result.Exists() {
		t.Fatal("expected to find Text widget")
	}
	text := result.Widget().(*widgets.Text)
	if text.Content != "Hello" {
		t.Errorf("expected text 'Hello', got %q", text.Content)
	}
	if tester.Find(ByType[*widgets.Slider]()).Exists() {
		t.Error("should not find a slider")
	}
}

func TestByText(t *testing.T) {
	tester := mountFinderDoc(t)

	if !tester.Find(ByText("Hello")).Exists() {
		t.Error("expected to find text 'Hello'")
	}
	if !tester.Find(ByText("3")).Exists() {
		t.Error("expected to find the badge text")
	}
	if tester.Find(ByText("Go")).Exists() {
		t.Error("ByText should match exactly")
	}
	if !tester.Find(ByTextContaining("Go")).Exists() {
		t.Error("expected to find button label containing 'Go'")
	}
}

func TestByTagKindRole(t *testing.T) {
	tester := mountFinderDoc(t)

	if got := tester.Find(ByTag("BADGE")).Count(); got != 1 {
		t.Errorf("ByTag count = %d, want 1", got)
	}
	if got := tester.Find(ByRole(widgets.RoleBadge)).Count(); got != 1 {
		t.Errorf("ByRole count = %d, want 1", got)
	}
	placeholder := tester.Find(ByKind("placeholder"))
	if placeholder.Count() != 1 || placeholder.First().SourceTag != "marquee" {
		t.Errorf("ByKind(placeholder) = %v", placeholder.All())
	}
	if !tester.Find(ByID("outer")).Exists() {
		t.Error("expected to find node by id")
	}
}

func TestDescendantAndAncestor(t *testing.T) {
	tester := mountFinderDoc(t)

	icons := tester.Find(Descendant(ByTag("badged-box"), ByTag("icon")))
	if icons.Count() != 1 {
		t.Errorf("Descendant count = %d, want 1", icons.Count())
	}
	if tester.Find(Descendant(ByTag("badged-box"), ByTag("badged-box"))).Exists() {
		t.Error("Descendant should not match the ancestor itself")
	}
	boxes := tester.Find(Ancestor(ByTag("badge"), ByTag("badged-box")))
	if boxes.Count() != 1 {
		t.Errorf("Ancestor count = %d, want 1", boxes.Count())
	}
	if tester.Find(Ancestor(ByTag("text"), ByTag("badged-box"))).Exists() {
		t.Error("badged-box is not an ancestor of text")
	}
}

func TestFinderResultAccessors(t *testing.T) {
	tester := mountFinderDoc(t)

	result := tester.Find(ByTag("nothing"))
	if result.FirstOrNil() != nil || result.Count() != 0 {
		t.Error("empty result should have no nodes")
	}
	func() {
		defer func() {
			if recover() == nil {
				t.Error("First() on empty result should panic")
			}
		}()
		result.First()
	}()
	func() {
		defer func() {
			if recover() == nil {
				t.Error("At() out of range should panic")
			}
		}()
		tester.Find(ByTag("text")).At(3)
	}()

	if b, ok := WidgetAs[*widgets.Button](tester.Find(ByTag("button"))); !ok || b.Label != "Go now" {
		t.Errorf("WidgetAs = %v, %v", b, ok)
	}
	if _, ok := WidgetAs[*widgets.Button](tester.Find(ByTag("text"))); ok {
		t.Error("WidgetAs should fail on a different widget type")
	}
}

func TestFindBeforeMount(t *testing.T) {
	tester := NewTesterWithT(t)
	if tester.Find(ByTag("text")).Exists() {
		t.Error("nothing should be found before Mount")
	}
}
