package testing

import (
	"sort"
	"sync"
	"time"

	"github.com/go-drift/livenative/pkg/loop"
)

// FakeScheduler provides controllable time for deterministic timing tests.
// Timer callbacks run on the goroutine calling Advance, in deadline order,
// with Now() reporting each callback's deadline while it runs.
// All methods are safe for concurrent use.
type FakeScheduler struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []*fakeTimer
}

var _ loop.Scheduler = (*FakeScheduler)(nil)

// NewFakeScheduler returns a FakeScheduler starting at a fixed epoch.
func NewFakeScheduler() *FakeScheduler {
	return &FakeScheduler{now: Epoch}
}

// Epoch is the start time of every FakeScheduler.
var Epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Now returns the current fake time.
func (s *FakeScheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Elapsed returns the fake time passed since Epoch.
func (s *FakeScheduler) Elapsed() time.Duration {
	return s.Now().Sub(Epoch)
}

// AfterFunc schedules fn to run when the clock reaches now+d.
func (s *FakeScheduler) AfterFunc(d time.Duration, fn func()) loop.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{owner: s, at: s.now.Add(d), seq: s.seq, fn: fn}
	s.seq++
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward by d, firing due timers in order.
// Timers scheduled by a callback fire in the same call if they fall due.
func (s *FakeScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now.Add(d)
	s.mu.Unlock()
	s.AdvanceTo(target)
}

// AdvanceTo moves the clock to t, firing due timers in order.
func (s *FakeScheduler) AdvanceTo(t time.Time) {
	for {
		s.mu.Lock()
		next := s.nextDue(t)
		if next == nil {
			if t.After(s.now) {
				s.now = t
			}
			s.mu.Unlock()
			return
		}
		s.remove(next)
		if next.at.After(s.now) {
			s.now = next.at
		}
		fn := next.fn
		s.mu.Unlock()
		fn()
	}
}

// Pending returns the number of scheduled timers.
func (s *FakeScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

func (s *FakeScheduler) nextDue(limit time.Time) *fakeTimer {
	if len(s.timers) == 0 {
		return nil
	}
	sort.SliceStable(s.timers, func(i, j int) bool {
		if s.timers[i].at.Equal(s.timers[j].at) {
			return s.timers[i].seq < s.timers[j].seq
		}
		return s.timers[i].at.Before(s.timers[j].at)
	})
	if s.timers[0].at.After(limit) {
		return nil
	}
	return s.timers[0]
}

func (s *FakeScheduler) remove(t *fakeTimer) bool {
	for i, other := range s.timers {
		if other == t {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return true
		}
	}
	return false
}

type fakeTimer struct {
	owner *FakeScheduler
	at    time.Time
	seq   int
	fn    func()
}

func (t *fakeTimer) Stop() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	return t.owner.remove(t)
}
