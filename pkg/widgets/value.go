package widgets

import (
	"github.com/go-drift/livenative/pkg/attr"
	"github.com/go-drift/livenative/pkg/changeable"
	"github.com/go-drift/livenative/pkg/core"
	"github.com/go-drift/livenative/pkg/event"
)

// bindValue creates the Changeable behind a value widget. Changes are
// emitted as change events named by phx-change. The node's phx-debounce or
// phx-throttle overrides the widget's fallback policy.
func bindValue[T comparable](ctx *core.BuildContext, m attr.Modifiers, initial T, fallback changeable.Policy) *changeable.Changeable[T] {
	d := ctx.Defaults()
	timing := changeable.Timing{Policy: fallback}
	switch fallback {
	case changeable.Debounce:
		timing.Window = d.Debounce
	case changeable.Throttle:
		timing.Window = d.Throttle
	}
	emit := ctx.Bind(event.KindChange, m.Events.Change, m)
	return changeable.New(initial, changeable.Options[T]{
		Timing:    changeable.TimingFor(m.Rate, timing),
		Scheduler: ctx.Scheduler(),
		Emit:      func(v T) { emit(v) },
		Disabled:  !m.Enabled,
	})
}
