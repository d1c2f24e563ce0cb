// Package widgets provides the reference adapters that map server tags to
// widgets.
//
// Each adapter declares a configuration record, a [attr.Rules] table for the
// attributes it understands and a factory. Attributes an adapter does not
// claim are handled by the common modifiers (size, padding, enabled, event
// bindings). Importing the package registers every adapter on
// [core.DefaultRegistry]; use [RegisterAll] to populate another registry.
//
// # Layout Widgets
//
//	<column vertical-arrangement="center"> ... </column>
//	<row horizontal-arrangement="space-between"> ... </row>
//	<box content-alignment="bottom-end"> ... </box>
//
// # Value Widgets
//
// Checkbox, Switch, Slider and TextField hold their value in a
// [changeable.Changeable]. The local value follows every interaction; the
// change event is emitted according to the widget's default policy or the
// node's phx-debounce and phx-throttle attributes:
//
//	<text-field phx-change="validate" phx-debounce="500"/>
//	<slider phx-change="volume" phx-throttle="100"/>
//	<text-field phx-change="save" phx-debounce="blur"/>
//
// # Slots
//
// BadgedBox fills its badge slot from the first child tagged badge or
// carrying template="badge". Card fills its header slot from the first
// child with template="header".
package widgets
