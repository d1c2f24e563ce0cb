// Package event carries user interactions from widgets back toward the server.
//
// A widget reports an interaction by calling the function returned from
// [Bind]. The resulting [Event] is handed to a [Sink]; delivery is fire and
// forget from the widget's point of view.
package event

import "fmt"

// Kind is the fixed vocabulary of interaction kinds.
type Kind int

const (
	KindClick Kind = iota
	KindChange
	KindKeyUp
	KindBlur
	KindFocus
	KindSubmit
	KindDismiss
)

var kindNames = [...]string{
	KindClick:   "click",
	KindChange:  "change",
	KindKeyUp:   "keyup",
	KindBlur:    "blur",
	KindFocus:   "focus",
	KindSubmit:  "submit",
	KindDismiss: "dismiss",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind returns the Kind named s.
func ParseKind(s string) (Kind, bool) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), true
		}
	}
	return 0, false
}

// Event is one interaction, created per user action and handed to a Sink.
type Event struct {
	Kind Kind
	// Name is the server-side event name; never empty for emitted events.
	Name string
	// Value must be serializable by the push codec.
	Value any
	// Target is the component the event is routed to, or "".
	Target string
}

func (e Event) String() string {
	if e.Target != "" {
		return fmt.Sprintf("%s %q value=%v target=%s", e.Kind, e.Name, e.Value, e.Target)
	}
	return fmt.Sprintf("%s %q value=%v", e.Kind, e.Name, e.Value)
}

// Sink receives emitted events.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Event)

// Emit calls f(e).
func (f SinkFunc) Emit(e Event) { f(e) }

// Discard is a Sink that drops every event.
var Discard Sink = SinkFunc(func(Event) {})

// Tee returns a Sink that forwards to each sink in order.
func Tee(sinks ...Sink) Sink {
	return SinkFunc(func(e Event) {
		for _, s := range sinks {
			if s != nil {
				s.Emit(e)
			}
		}
	})
}

// Bind returns a function that emits events of kind named name to sink.
// When name is empty the interaction is not bound and the returned function
// does nothing.
func Bind(sink Sink, kind Kind, name, target string) func(value any) {
	if name == "" || sink == nil {
		return func(any) {}
	}
	return func(value any) {
		sink.Emit(Event{Kind: kind, Name: name, Value: value, Target: target})
	}
}
