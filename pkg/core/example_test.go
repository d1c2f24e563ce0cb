package core_test

import (
	"fmt"

	"github.com/go-drift/livenative/pkg/core"
	"github.com/go-drift/livenative/pkg/node"
)

// This example registers two tags and resolves a small tree. The unknown
// tag is reported and replaced by a placeholder while its sibling resolves.
func ExampleResolver_Resolve() {
	reg := core.NewRegistry()
	container := func(ctx *core.BuildContext) (core.Widget, error) {
		return core.NewBase(ctx.Tag(), ctx.Modifiers()), nil
	}
	reg.MustRegister(core.Entry{Tag: "column", Factory: container})
	reg.MustRegister(core.Entry{Tag: "text", Factory: container})

	desc := node.New("column", node.Attrs(),
		node.New("text", node.Attrs()),
		node.New("marquee", node.Attrs()),
	)
	root, err := core.NewResolver(reg).Resolve(desc, nil, nil)

	fmt.Print(root)
	fmt.Println(err)
	// Output:
	// column
	//   text
	//   placeholder <marquee> error="core.Resolve [structural] path=0/1: unknown tag \"marquee\""
	// core.Resolve [structural] path=0/1: unknown tag "marquee"
}

// This example declares an exclusive role. The first matching child fills
// the slot; later matches are treated as content.
func ExampleRole() {
	reg := core.NewRegistry()
	build := func(ctx *core.BuildContext) (core.Widget, error) {
		return core.NewBase(ctx.Tag(), ctx.Modifiers()), nil
	}
	reg.MustRegister(core.Entry{
		Tag:     "badged-box",
		Factory: build,
		Roles:   []core.Role{{Name: "badge", Tags: []string{"badge"}, Exclusive: true}},
	})
	reg.MustRegister(core.Entry{Tag: "badge", Factory: build})

	desc := node.New("badged-box", node.Attrs(),
		node.New("badge", node.Attrs()),
		node.New("badge", node.Attrs()),
	)
	root, _ := core.NewResolver(reg).Resolve(desc, nil, nil)
	fmt.Print(root)
	// Output:
	// badged-box
	//   badge role=badge
	//   badge
}
