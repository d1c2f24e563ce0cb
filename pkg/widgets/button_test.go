package widgets_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/livenative/pkg/event"
	lntest "github.com/go-drift/livenative/pkg/testing"
	"github.com/go-drift/livenative/pkg/widgets"
)

func TestButton_TapPushesClick(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   any
	}{
		{"no value", `<button phx-click="save">Save</button>`, map[string]any{}},
		{"value", `<button phx-click="save" phx-value="draft">Save</button>`, map[string]any{"value": "draft"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tester := lntest.NewTesterWithT(t)
			if err := tester.Mount(tt.markup); err != nil {
				t.Fatal(err)
			}
			if err := tester.Tap(lntest.ByText("Save")); err != nil {
				t.Fatalf("Tap failed: %v", err)
			}
			last, ok := tester.Events().Last()
			if !ok {
				t.Fatal("expected a click event")
			}
			if last.Kind != event.KindClick || last.Name != "save" {
				t.Errorf("event = %v", last.Event)
			}
			if diff := cmp.Diff(tt.want, last.Value); diff != "" {
				t.Errorf("click value mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestButton_LabelAttributeOverridesText(t *testing.T) {
	tester := lntest.NewTesterWithT(t)
	if err := tester.Mount(`<button label="Send" variant="outlined">ignored</button>`); err != nil {
		t.Fatal(err)
	}
	b, ok := lntest.WidgetAs[*widgets.Button](tester.Find(lntest.ByTag("button")))
	if !ok {
		t.Fatal("expected a Button")
	}
	if b.Label != "Send" {
		t.Errorf("Label = %q, want Send", b.Label)
	}
	if b.Variant != widgets.ButtonOutlined {
		t.Errorf("Variant = %v, want outlined", b.Variant)
	}
}

func TestButton_DisabledIgnoresTap(t *testing.T) {
	tester := lntest.NewTesterWithT(t)
	if err := tester.Mount(`<button phx-click="save" enabled="false">Save</button>`); err != nil {
		t.Fatal(err)
	}
	tester.Tap(lntest.ByText("Save"))
	if tester.Events().Len() != 0 {
		t.Errorf("disabled button pushed %v", tester.Events().Events())
	}
}

func TestButton_UnboundTapIsSilent(t *testing.T) {
	tester := lntest.NewTesterWithT(t)
	if err := tester.Mount(`<button>Save</button>`); err != nil {
		t.Fatal(err)
	}
	if err := tester.Tap(lntest.ByText("Save")); err != nil {
		t.Fatal(err)
	}
	if tester.Events().Len() != 0 {
		t.Errorf("unbound button pushed %v", tester.Events().Events())
	}
}

func TestButton_RemovedButtonIgnoresTaps(t *testing.T) {
	tester := lntest.NewTesterWithT(t)
	if err := tester.Mount(`<column><button phx-click="inc">+</button></column>`); err != nil {
		t.Fatal(err)
	}
	b, ok := lntest.WidgetAs[*widgets.Button](tester.Find(lntest.ByTag("button")))
	if !ok {
		t.Fatal("expected a Button")
	}
	if err := tester.Root().Remove(0); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	b.Tap()
	if n := tester.Events().Len(); n != 0 {
		t.Errorf("%d events after the button was removed, want 0", n)
	}
}
