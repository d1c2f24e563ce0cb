package testing

import (
	"sync"
	"time"

	"github.com/go-drift/livenative/pkg/event"
)

// RecordedEvent is an event with the fake time it was emitted at.
type RecordedEvent struct {
	event.Event
	// At is the recorder clock's offset from Epoch.
	At time.Duration
}

// Recorder is an event.Sink that keeps every event it receives.
type Recorder struct {
	mu     sync.Mutex
	clock  interface{ Now() time.Time }
	start  time.Time
	events []RecordedEvent
}

// NewRecorder returns a Recorder stamping events with clock. A nil clock
// stamps every event with zero.
func NewRecorder(clock interface{ Now() time.Time }) *Recorder {
	return &Recorder{clock: clock, start: Epoch}
}

// Emit records e.
func (r *Recorder) Emit(e event.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var at time.Duration
	if r.clock != nil {
		at = r.clock.Now().Sub(r.start)
	}
	r.events = append(r.events, RecordedEvent{Event: e, At: at})
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []RecordedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]RecordedEvent(nil), r.events...)
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// Last returns the most recent event. It reports false when none was recorded.
func (r *Recorder) Last() (RecordedEvent, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return RecordedEvent{}, false
	}
	return r.events[len(r.events)-1], true
}

// Reset discards the recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}
