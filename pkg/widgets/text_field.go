package widgets

import (
	"unicode/utf8"

	"github.com/go-drift/livenative/pkg/attr"
	"github.com/go-drift/livenative/pkg/changeable"
	"github.com/go-drift/livenative/pkg/core"
	"github.com/go-drift/livenative/pkg/event"
)

// TagTextField is the tag of [TextField].
const TagTextField = "text-field"

// KeyboardType selects the on-screen keyboard.
type KeyboardType int

const (
	KeyboardText KeyboardType = iota
	KeyboardNumber
	KeyboardEmail
	KeyboardPhone
	KeyboardURL
	KeyboardPassword
)

var keyboardLiterals = map[string]KeyboardType{
	"text":     KeyboardText,
	"number":   KeyboardNumber,
	"email":    KeyboardEmail,
	"phone":    KeyboardPhone,
	"uri":      KeyboardURL,
	"url":      KeyboardURL,
	"password": KeyboardPassword,
}

// TextFieldConfig holds the attributes of text-field.
type TextFieldConfig struct {
	Value       string
	Label       string
	Placeholder string
	Keyboard    KeyboardType
	SingleLine  bool
	ReadOnly    bool
	// MaxLength limits the text in runes; zero means unlimited.
	MaxLength int
}

var textFieldRules = attr.Rules[TextFieldConfig]{
	"value": func(c TextFieldConfig, v string, _ attr.Env) TextFieldConfig {
		c.Value = v
		return c
	},
	"label": func(c TextFieldConfig, v string, _ attr.Env) TextFieldConfig {
		c.Label = v
		return c
	},
	"placeholder": func(c TextFieldConfig, v string, _ attr.Env) TextFieldConfig {
		c.Placeholder = v
		return c
	},
	"keyboard": func(c TextFieldConfig, v string, _ attr.Env) TextFieldConfig {
		c.Keyboard = attr.Enum(keyboardLiterals, v, KeyboardText)
		return c
	},
	"single-line": func(c TextFieldConfig, v string, _ attr.Env) TextFieldConfig {
		c.SingleLine = attr.Bool(v, true)
		return c
	},
	"read-only": func(c TextFieldConfig, v string, _ attr.Env) TextFieldConfig {
		c.ReadOnly = attr.Bool(v, false)
		return c
	},
	"max-length": func(c TextFieldConfig, v string, _ attr.Env) TextFieldConfig {
		c.MaxLength = attr.Dp(v, 0)
		return c
	},
}

// TextField is an editable text input. Typing produces a change per
// keystroke, so change events are debounced by default. Losing focus flushes
// a pending change before the blur event is sent.
//
// TextField is NOT thread-safe. It must only be used from the UI thread.
type TextField struct {
	core.Base
	TextFieldConfig
	state *changeable.Changeable[string]

	onKeyUp  func(any)
	onBlur   func(any)
	onFocus  func(any)
	onSubmit func(any)
}

func newTextField(ctx *core.BuildContext) (core.Widget, error) {
	p := core.FoldProps(ctx, TextFieldConfig{SingleLine: true}, textFieldRules)
	m := p.Common
	if p.Config.ReadOnly {
		m.Enabled = false
	}
	b := core.NewBase(TagTextField, m)
	b.Leaf = true
	f := &TextField{
		Base:            b,
		TextFieldConfig: p.Config,
		onKeyUp:         ctx.Bind(event.KindKeyUp, m.Events.KeyUp, m),
		onBlur:          ctx.Bind(event.KindBlur, m.Events.Blur, m),
		onFocus:         ctx.Bind(event.KindFocus, m.Events.Focus, m),
		onSubmit:        ctx.Bind(event.KindSubmit, m.Events.Submit, m),
	}
	f.state = bindValue(ctx, m, f.limit(p.Config.Value), changeable.Debounce)
	return f, nil
}

func (f *TextField) limit(s string) string {
	if f.MaxLength <= 0 || utf8.RuneCountInString(s) <= f.MaxLength {
		return s
	}
	return string([]rune(s)[:f.MaxLength])
}

// Text returns the local text.
func (f *TextField) Text() string { return f.state.Value() }

// SetText replaces the text as typing would. It reports false when the
// field is disabled or disposed.
func (f *TextField) SetText(s string) bool { return f.state.Set(f.limit(s)) }

// KeyUp reports a key release with the current text.
func (f *TextField) KeyUp(key string) {
	if !f.Mods.Enabled || f.state.Disposed() {
		return
	}
	f.onKeyUp(map[string]any{"key": key, "value": f.state.Value()})
}

// Focus reports the field gaining focus.
func (f *TextField) Focus() {
	if !f.Mods.Enabled || f.state.Disposed() {
		return
	}
	f.onFocus(map[string]any{"value": f.state.Value()})
}

// Blur flushes a pending change and reports the field losing focus.
func (f *TextField) Blur() {
	if !f.Mods.Enabled || f.state.Disposed() {
		return
	}
	f.state.Flush()
	f.onBlur(map[string]any{"value": f.state.Value()})
}

// Submit flushes a pending change and reports the IME action.
func (f *TextField) Submit() {
	if !f.Mods.Enabled || f.state.Disposed() {
		return
	}
	f.state.Flush()
	f.onSubmit(map[string]any{"value": f.state.Value()})
}

// State exposes the value pipeline.
func (f *TextField) State() *changeable.Changeable[string] { return f.state }

// Dispose discards any pending emission.
func (f *TextField) Dispose() { f.state.Dispose() }
