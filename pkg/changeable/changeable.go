// Package changeable implements the value pipeline of value-bearing widgets
// (checkbox, slider, text field...).
//
// A Changeable holds the widget's local value and decides when a change is
// forwarded to the server. The local value always reflects the latest user
// action; the timing policy only governs emission:
//
//   - Immediate emits every change synchronously.
//   - Debounce restarts its deadline on every change and emits the last value
//     once input has been quiet for the whole window.
//   - Throttle emits the first change of a window immediately, suppresses the
//     rest, and emits one trailing change at the end of the window when the
//     latest value differs from the one last emitted. A trailing emission
//     starts a new window.
//   - OnBlur holds changes until Flush is called.
//
// A Changeable is NOT thread-safe. It must only be used from the UI thread;
// its timers are expected to call back on that thread (see package loop).
package changeable

import (
	"time"

	"github.com/go-drift/livenative/pkg/attr"
	"github.com/go-drift/livenative/pkg/loop"
)

// DefaultWindow is the debounce and throttle window used when none is given.
const DefaultWindow = 300 * time.Millisecond

// Policy selects when a change is emitted.
type Policy int

const (
	Immediate Policy = iota
	Debounce
	Throttle
	OnBlur
)

func (p Policy) String() string {
	switch p {
	case Debounce:
		return "debounce"
	case Throttle:
		return "throttle"
	case OnBlur:
		return "blur"
	default:
		return "immediate"
	}
}

// Timing is a policy with its window.
type Timing struct {
	Policy Policy
	Window time.Duration
}

// TimingFor derives the timing requested by a node's phx-debounce and
// phx-throttle attributes, falling back to the widget's own default. When
// both are given, debounce wins.
func TimingFor(rate attr.RateLimit, fallback Timing) Timing {
	switch {
	case rate.DebounceOnBlur:
		return Timing{Policy: OnBlur}
	case rate.Debounce > 0:
		return Timing{Policy: Debounce, Window: rate.Debounce}
	case rate.Throttle > 0:
		return Timing{Policy: Throttle, Window: rate.Throttle}
	default:
		return fallback
	}
}

// State is the emission state of a Changeable.
type State int

const (
	// Idle means no emission is outstanding.
	Idle State = iota
	// PendingEmit means a value is waiting for its deadline (or for Flush).
	PendingEmit
)

func (s State) String() string {
	if s == PendingEmit {
		return "pending"
	}
	return "idle"
}

// Options configures a Changeable.
type Options[T comparable] struct {
	Timing Timing
	// Scheduler runs timers; required for Debounce and Throttle.
	Scheduler loop.Scheduler
	// Emit forwards a value toward the server. Nil means changes stay local.
	Emit func(T)
	// Disabled starts the Changeable disabled.
	Disabled bool
}

// Changeable is an observable widget value with an emission policy.
type Changeable[T comparable] struct {
	value    T
	enabled  bool
	disposed bool

	timing Timing
	sched  loop.Scheduler
	emit   func(T)

	timer      loop.Timer
	deadline   time.Time
	pending    bool
	windowOpen bool

	lastEmitted T
	hasEmitted  bool

	listeners map[int]func(T)
	nextID    int
}

// New creates a Changeable holding initial.
func New[T comparable](initial T, opts Options[T]) *Changeable[T] {
	timing := opts.Timing
	if (timing.Policy == Debounce || timing.Policy == Throttle) && (timing.Window <= 0 || opts.Scheduler == nil) {
		timing = Timing{Policy: Immediate}
	}
	return &Changeable[T]{
		value:   initial,
		enabled: !opts.Disabled,
		timing:  timing,
		sched:   opts.Scheduler,
		emit:    opts.Emit,
	}
}

// Value returns the latest local value.
func (c *Changeable[T]) Value() T {
	return c.value
}

// Timing returns the effective timing.
func (c *Changeable[T]) Timing() Timing {
	return c.timing
}

// State reports whether an emission is outstanding.
func (c *Changeable[T]) State() State {
	if c.pending {
		return PendingEmit
	}
	return Idle
}

// Deadline returns when the outstanding debounce emission fires, or the
// zero time when there is none.
func (c *Changeable[T]) Deadline() time.Time {
	if !c.pending {
		return time.Time{}
	}
	return c.deadline
}

// Enabled reports whether interactions are accepted.
func (c *Changeable[T]) Enabled() bool {
	return c.enabled
}

// Disposed reports whether Dispose was called.
func (c *Changeable[T]) Disposed() bool {
	return c.disposed
}

// Set records a user interaction. The local value is updated immediately and
// the timing policy decides when it is emitted. Set returns false, changing
// nothing, when the Changeable is disabled or disposed.
func (c *Changeable[T]) Set(v T) bool {
	if c.disposed || !c.enabled {
		return false
	}
	c.value = v
	c.notify(v)

	switch c.timing.Policy {
	case Debounce:
		c.stopTimer()
		c.pending = true
		c.deadline = c.sched.Now().Add(c.timing.Window)
		c.timer = c.sched.AfterFunc(c.timing.Window, c.fireDebounce)
	case Throttle:
		if !c.windowOpen {
			c.windowOpen = true
			c.emitNow(v)
			c.timer = c.sched.AfterFunc(c.timing.Window, c.closeWindow)
		} else {
			c.pending = true
		}
	case OnBlur:
		c.pending = true
	default:
		c.emitNow(v)
	}
	return true
}

// Flush emits an outstanding value now. Widgets call it on blur.
func (c *Changeable[T]) Flush() {
	if c.disposed || !c.enabled || !c.pending {
		return
	}
	c.pending = false
	if c.timing.Policy == Throttle {
		// The window stays open; only the trailing value is released.
		if !c.hasEmitted || c.value != c.lastEmitted {
			c.emitNow(c.value)
		}
		return
	}
	c.stopTimer()
	c.emitNow(c.value)
}

// SetEnabled enables or disables interaction. Disabling discards any
// outstanding emission.
func (c *Changeable[T]) SetEnabled(enabled bool) {
	if c.disposed {
		return
	}
	c.enabled = enabled
	if !enabled {
		c.cancel()
	}
}

// Dispose tears the pipeline down. An outstanding emission is discarded and
// never delivered late. Dispose is idempotent.
func (c *Changeable[T]) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.cancel()
	c.listeners = nil
}

// AddListener registers fn to observe local value changes and returns a
// function that removes it.
func (c *Changeable[T]) AddListener(fn func(T)) func() {
	if fn == nil || c.disposed {
		return func() {}
	}
	if c.listeners == nil {
		c.listeners = make(map[int]func(T))
	}
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	return func() { delete(c.listeners, id) }
}

func (c *Changeable[T]) notify(v T) {
	for i := 0; i < c.nextID; i++ {
		if fn, ok := c.listeners[i]; ok {
			fn(v)
		}
	}
}

func (c *Changeable[T]) fireDebounce() {
	c.timer = nil
	if c.disposed || !c.pending {
		return
	}
	c.pending = false
	c.emitNow(c.value)
}

// closeWindow ends a throttle window. A trailing emission opens the next
// window, so a continuous stream emits at most once per window.
func (c *Changeable[T]) closeWindow() {
	c.timer = nil
	c.windowOpen = false
	if c.disposed || !c.pending {
		return
	}
	c.pending = false
	if !c.hasEmitted || c.value != c.lastEmitted {
		c.emitNow(c.value)
		c.windowOpen = true
		c.timer = c.sched.AfterFunc(c.timing.Window, c.closeWindow)
	}
}

func (c *Changeable[T]) cancel() {
	c.stopTimer()
	c.pending = false
	c.windowOpen = false
}

func (c *Changeable[T]) stopTimer() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Changeable[T]) emitNow(v T) {
	c.lastEmitted = v
	c.hasEmitted = true
	if c.emit != nil {
		c.emit(v)
	}
}
