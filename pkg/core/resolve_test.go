package core_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/go-drift/livenative/pkg/attr"
	"github.com/go-drift/livenative/pkg/core"
	"github.com/go-drift/livenative/pkg/errors"
	"github.com/go-drift/livenative/pkg/event"
	"github.com/go-drift/livenative/pkg/node"
)

// box is a container widget used by the resolver tests.
type box struct {
	core.Base
	Label    string
	disposed *int
}

func (b *box) Dispose() {
	if b.disposed != nil {
		*b.disposed++
	}
}

func boxFactory(ctx *core.BuildContext) (core.Widget, error) {
	return &box{Base: core.NewBase(ctx.Tag(), ctx.Modifiers()), Label: ctx.Attributes.Value("label")}, nil
}

func leafFactory(ctx *core.BuildContext) (core.Widget, error) {
	b := core.NewBase(ctx.Tag(), ctx.Modifiers())
	b.Leaf = true
	return &box{Base: b}, nil
}

func testRegistry(t *testing.T) *core.Registry {
	t.Helper()
	reg := core.NewRegistry()
	for _, tag := range []string{"column", "row", "text", "badge"} {
		reg.MustRegister(core.Entry{Tag: tag, Factory: boxFactory})
	}
	reg.MustRegister(core.Entry{
		Tag:     "badged-box",
		Factory: boxFactory,
		Roles: []core.Role{
			{Name: "badge", Tags: []string{"badge"}, Templates: []string{"badge"}, Exclusive: true},
		},
	})
	reg.MustRegister(core.Entry{Tag: "divider", Factory: leafFactory})
	return reg
}

func TestResolveUnknownTagKeepsSiblings(t *testing.T) {
	reg := testRegistry(t)
	desc := node.New("column", node.Attrs(),
		node.New("text", node.Attrs("label", "a")),
		node.New("FooBarBaz", node.Attrs()),
		node.New("text", node.Attrs("label", "b")),
	)

	root, err := core.NewResolver(reg).Resolve(desc, nil, nil)
	if err == nil {
		t.Fatal("expected a structural failure")
	}
	var unknown *errors.UnknownTagError
	if !errors.As(err, &unknown) {
		t.Fatalf("error %v does not carry UnknownTagError", err)
	}
	if unknown.Tag != "FooBarBaz" {
		t.Errorf("UnknownTagError.Tag = %q, want %q", unknown.Tag, "FooBarBaz")
	}
	var re *errors.RenderError
	if !errors.As(err, &re) || re.Kind != errors.KindStructural || re.Path != "0/1" {
		t.Errorf("RenderError = %+v, want structural at 0/1", re)
	}

	if root == nil {
		t.Fatal("root should resolve despite failing child")
	}
	if len(root.Children) != 3 {
		t.Fatalf("children = %d, want 3", len(root.Children))
	}
	if got := root.Children[0].Widget.(*box).Label; got != "a" {
		t.Errorf("first sibling label = %q, want a", got)
	}
	if got := root.Children[2].Widget.(*box).Label; got != "b" {
		t.Errorf("last sibling label = %q, want b", got)
	}
	p, ok := root.Children[1].Widget.(core.Placeholder)
	if !ok {
		t.Fatalf("failed child widget = %T, want Placeholder", root.Children[1].Widget)
	}
	if p.Tag != "FooBarBaz" {
		t.Errorf("Placeholder.Tag = %q", p.Tag)
	}
}

func TestResolvePolicies(t *testing.T) {
	desc := node.New("column", node.Attrs(),
		node.New("text", node.Attrs()),
		node.New("missing", node.Attrs()),
		node.New("text", node.Attrs()),
	)
	tests := []struct {
		policy   core.FailurePolicy
		wantRoot bool
		wantKids int
	}{
		{core.PolicyPlaceholder, true, 3},
		{core.PolicyOmit, true, 2},
		{core.PolicyAbort, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			r := &core.Resolver{Registry: testRegistry(t), Policy: tt.policy}
			root, err := r.Resolve(desc, nil, nil)
			if err == nil {
				t.Error("failure was dropped")
			}
			if (root != nil) != tt.wantRoot {
				t.Fatalf("root = %v, want present=%v", root, tt.wantRoot)
			}
			if root != nil && len(root.Children) != tt.wantKids {
				t.Errorf("children = %d, want %d", len(root.Children), tt.wantKids)
			}
		})
	}
}

func TestResolveUnknownRoot(t *testing.T) {
	root, err := core.NewResolver(testRegistry(t)).Resolve(node.New("nope", node.Attrs()), nil, nil)
	if root != nil {
		t.Errorf("root = %v, want nil", root)
	}
	var unknown *errors.UnknownTagError
	if !errors.As(err, &unknown) {
		t.Errorf("err = %v, want UnknownTagError", err)
	}
}

func TestExclusiveRoleFirstWins(t *testing.T) {
	reg := testRegistry(t)
	desc := node.New("badged-box", node.Attrs(),
		node.New("text", node.Attrs("label", "content")),
		node.New("badge", node.Attrs("label", "first")),
		node.New("badge", node.Attrs("label", "second")),
	)

	root, err := core.NewResolver(reg).Resolve(desc, nil, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	slot := root.Slot("badge")
	if slot == nil {
		t.Fatal("badge slot not filled")
	}
	if got := slot.Widget.(*box).Label; got != "first" {
		t.Errorf("badge slot = %q, want first", got)
	}
	content := root.Content()
	if len(content) != 2 {
		t.Fatalf("content = %d nodes, want 2", len(content))
	}
	if got := content[1].Widget.(*box).Label; got != "second" {
		t.Errorf("second badge became %q, want generic content", got)
	}
	if content[1].Role != "" {
		t.Errorf("second badge Role = %q, want empty", content[1].Role)
	}
}

func TestRoleByTemplate(t *testing.T) {
	reg := testRegistry(t)
	desc := node.New("badged-box", node.Attrs(),
		node.New("text", node.Attrs("template", "badge", "label", "via-template")),
	)
	root, err := core.NewResolver(reg).Resolve(desc, nil, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	slot := root.Slot("badge")
	if slot == nil || slot.Widget.(*box).Label != "via-template" {
		t.Fatalf("badge slot = %v", slot)
	}
	if !slot.HasTemplate || slot.SourceTemplate != "badge" {
		t.Errorf("SourceTemplate = %q (%v)", slot.SourceTemplate, slot.HasTemplate)
	}
}

func TestRoleFactory(t *testing.T) {
	reg := core.NewRegistry()
	reg.MustRegister(core.Entry{
		Tag:     "card",
		Factory: boxFactory,
		Roles: []core.Role{{
			Name:      "header",
			Templates: []string{"header"},
			Factory: func(ctx *core.BuildContext) (core.Widget, error) {
				return &box{Base: core.NewBase("card-header", ctx.Modifiers()), Label: ctx.Role}, nil
			},
		}},
	})

	// The header child's own tag is not registered; the role factory builds it.
	desc := node.New("card", node.Attrs(), node.New("unregistered", node.Attrs("template", "header")))
	root, err := core.NewResolver(reg).Resolve(desc, nil, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	h := root.Slot("header")
	if h == nil || h.Widget.Kind() != "card-header" || h.Widget.(*box).Label != "header" {
		t.Errorf("header = %v", h)
	}
}

func TestFactoryPanicBecomesBuildError(t *testing.T) {
	reported := &buildRecorder{}
	errors.SetHandler(reported)
	defer errors.SetHandler(nil)

	reg := testRegistry(t)
	reg.MustRegister(core.Entry{Tag: "boom", Factory: func(*core.BuildContext) (core.Widget, error) {
		panic("kaboom")
	}})
	desc := node.New("column", node.Attrs(), node.New("boom", node.Attrs()), node.New("text", node.Attrs()))

	root, err := core.NewResolver(reg).Resolve(desc, nil, nil)
	var be *errors.BuildError
	if !errors.As(err, &be) {
		t.Fatalf("err = %v, want BuildError", err)
	}
	if be.Recovered != "kaboom" || be.Tag != "boom" {
		t.Errorf("BuildError = %+v", be)
	}
	if len(reported.errs) != 1 {
		t.Errorf("reported %d build errors, want 1", len(reported.errs))
	}
	if root == nil || len(root.Children) != 2 {
		t.Fatalf("root = %v", root)
	}
	if _, ok := root.Children[0].Widget.(core.Placeholder); !ok {
		t.Errorf("panicking child = %T, want Placeholder", root.Children[0].Widget)
	}
}

func TestFactoryErrorAndNilWidget(t *testing.T) {
	errors.SetHandler(&buildRecorder{})
	defer errors.SetHandler(nil)

	reg := testRegistry(t)
	reg.MustRegister(core.Entry{Tag: "fails", Factory: func(*core.BuildContext) (core.Widget, error) {
		return nil, fmt.Errorf("bad input")
	}})
	reg.MustRegister(core.Entry{Tag: "empty", Factory: func(*core.BuildContext) (core.Widget, error) {
		return nil, nil
	}})
	desc := node.New("column", node.Attrs(), node.New("fails", node.Attrs()), node.New("empty", node.Attrs()))

	_, err := core.NewResolver(reg).Resolve(desc, nil, nil)
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		t.Fatalf("err = %T, want joined error", err)
	}
	if n := len(joined.Unwrap()); n != 2 {
		t.Errorf("joined %d errors, want 2", n)
	}
}

func TestDeepFailuresAllReported(t *testing.T) {
	desc := node.New("column", node.Attrs(),
		node.New("row", node.Attrs(), node.New("x1", node.Attrs())),
		node.New("row", node.Attrs(), node.New("x2", node.Attrs())),
	)
	_, err := core.NewResolver(testRegistry(t)).Resolve(desc, nil, nil)
	var tags []string
	for _, e := range err.(interface{ Unwrap() []error }).Unwrap() {
		var u *errors.UnknownTagError
		if errors.As(e, &u) {
			tags = append(tags, u.Tag)
		}
	}
	if diff := cmp.Diff([]string{"x1", "x2"}, tags); diff != "" {
		t.Errorf("reported tags mismatch (-want +got):\n%s", diff)
	}
}

func TestLeafDropsChildren(t *testing.T) {
	count := 0
	reg := testRegistry(t)
	reg.MustRegister(core.Entry{Tag: "counted", Factory: func(ctx *core.BuildContext) (core.Widget, error) {
		return &box{Base: core.NewBase("counted", ctx.Modifiers()), disposed: &count}, nil
	}})
	desc := node.New("divider", node.Attrs(), node.New("counted", node.Attrs()))

	root, err := core.NewResolver(reg).Resolve(desc, nil, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(root.Children) != 0 {
		t.Errorf("leaf kept %d children", len(root.Children))
	}
	if count != 1 {
		t.Errorf("dropped child disposed %d times, want 1", count)
	}
}

func TestResolveDeterministic(t *testing.T) {
	reg := testRegistry(t)
	desc := node.New("column", node.Attrs("padding", "4", "width", "fill"),
		node.New("badged-box", node.Attrs(),
			node.New("badge", node.Attrs("label", "1")),
			node.New("text", node.Attrs("label", "x", "phx-click", "go")),
		),
		node.New("unknown", node.Attrs()),
	)
	r := core.NewResolver(reg)
	a, _ := r.Resolve(desc, nil, nil)
	b, _ := r.Resolve(desc, nil, nil)

	opts := cmp.Options{
		cmpopts.IgnoreUnexported(core.Node{}),
		cmp.Comparer(func(x, y error) bool { return fmt.Sprint(x) == fmt.Sprint(y) }),
		cmp.AllowUnexported(box{}),
	}
	if diff := cmp.Diff(a, b, opts); diff != "" {
		t.Errorf("resolves differ (-a +b):\n%s", diff)
	}
}

func TestScopeProvidedBeforeChildren(t *testing.T) {
	type key struct{}
	var order []string
	reg := core.NewRegistry()
	reg.MustRegister(core.Entry{
		Tag: "provider",
		Factory: func(ctx *core.BuildContext) (core.Widget, error) {
			order = append(order, "build provider")
			return &box{Base: core.NewBase("provider", ctx.Modifiers())}, nil
		},
		Provide: func(parent *core.Scope, ctx *core.BuildContext) *core.Scope {
			order = append(order, "provide")
			return parent.WithValue(key{}, ctx.Path)
		},
	})
	reg.MustRegister(core.Entry{Tag: "consumer", Factory: func(ctx *core.BuildContext) (core.Widget, error) {
		order = append(order, fmt.Sprintf("build consumer under %v", ctx.Scope.Value(key{})))
		return &box{Base: core.NewBase("consumer", ctx.Modifiers())}, nil
	}})

	desc := node.New("provider", node.Attrs(), node.New("consumer", node.Attrs()))
	if _, err := core.NewResolver(reg).Resolve(desc, nil, nil); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := []string{"provide", "build consumer under 0", "build provider"}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestTargetInherited(t *testing.T) {
	var got []event.Event
	sink := event.SinkFunc(func(e event.Event) { got = append(got, e) })

	var fire []func(any)
	reg := core.NewRegistry()
	reg.MustRegister(core.Entry{Tag: "form", Factory: boxFactory})
	reg.MustRegister(core.Entry{Tag: "button", Factory: func(ctx *core.BuildContext) (core.Widget, error) {
		m := ctx.Modifiers()
		fire = append(fire, ctx.Bind(event.KindClick, m.Events.Click, m))
		return &box{Base: core.NewBase("button", m)}, nil
	}})

	desc := node.New("form", node.Attrs("phx-target", "1"),
		node.New("button", node.Attrs("phx-click", "a")),
		node.New("button", node.Attrs("phx-click", "b", "phx-target", "2")),
		node.New("button", node.Attrs()),
	)
	if _, err := core.NewResolver(reg).Resolve(desc, sink, nil); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	for _, f := range fire {
		f(nil)
	}
	want := []event.Event{
		{Kind: event.KindClick, Name: "a", Target: "1"},
		{Kind: event.KindClick, Name: "b", Target: "2"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestModifiersFolded(t *testing.T) {
	root, err := core.NewResolver(testRegistry(t)).Resolve(
		node.New("text", node.Attrs("width", "fill", "height", "12", "enabled", "false")), nil, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	m := root.Widget.Modifiers()
	if m.Width != attr.Fill || m.Height != attr.Fixed(12) || m.Enabled {
		t.Errorf("Modifiers = %+v", m)
	}
}

type buildRecorder struct {
	errs []*errors.BuildError
}

func (r *buildRecorder) HandleError(*errors.RenderError)       {}
func (r *buildRecorder) HandlePanic(*errors.PanicError)        {}
func (r *buildRecorder) HandleBuildError(e *errors.BuildError) { r.errs = append(r.errs, e) }
