package loop

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-drift/livenative/pkg/errors"
)

func startLoop(t *testing.T) (*Loop, func()) {
	t.Helper()
	l := New()
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		l.Run(ctx)
	}()
	return l, func() {
		cancel()
		wg.Wait()
	}
}

func TestPostRunsInOrder(t *testing.T) {
	l, stop := startLoop(t)
	defer stop()

	var got []int
	done := make(chan struct{})
	for i := 0; i < 5; i++ {
		i := i
		l.Post(func() { got = append(got, i) })
	}
	l.Post(func() { close(done) })
	<-done

	for i, v := range got {
		if v != i {
			t.Fatalf("tasks ran out of order: %v", got)
		}
	}
}

func TestPostFromLoopDoesNotDeadlock(t *testing.T) {
	l, stop := startLoop(t)
	defer stop()

	done := make(chan struct{})
	l.Post(func() {
		for i := 0; i < 1000; i++ {
			l.Post(func() {})
		}
		l.Post(func() { close(done) })
	})
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("nested posts did not complete")
	}
}

func TestAfterFuncRunsOnLoop(t *testing.T) {
	l, stop := startLoop(t)
	defer stop()

	fired := make(chan struct{})
	l.AfterFunc(10*time.Millisecond, func() { close(fired) })
	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("timer never fired")
	}
}

func TestTimerStopPreventsCallback(t *testing.T) {
	l, stop := startLoop(t)
	defer stop()

	ran := false
	timer := l.AfterFunc(20*time.Millisecond, func() { ran = true })
	if !timer.Stop() {
		t.Error("Stop() on pending timer should return true")
	}
	if timer.Stop() {
		t.Error("second Stop() should return false")
	}

	time.Sleep(50 * time.Millisecond)
	done := make(chan struct{})
	l.Post(func() { close(done) })
	<-done
	if ran {
		t.Error("stopped timer callback ran")
	}
}

func TestStopRejectsPosts(t *testing.T) {
	l := New()
	l.Stop()
	if l.Post(func() {}) {
		t.Error("Post after Stop should return false")
	}
	if err := l.Run(context.Background()); err != nil {
		t.Errorf("Run after Stop = %v, want nil", err)
	}
}

type panicRecorder struct {
	mu     sync.Mutex
	panics []*errors.PanicError
}

func (h *panicRecorder) HandleError(*errors.RenderError) {}
func (h *panicRecorder) HandlePanic(err *errors.PanicError) {
	h.mu.Lock()
	h.panics = append(h.panics, err)
	h.mu.Unlock()
}
func (h *panicRecorder) HandleBuildError(*errors.BuildError) {}

func TestPanickingTaskIsReported(t *testing.T) {
	rec := &panicRecorder{}
	errors.SetHandler(rec)
	defer errors.SetHandler(nil)

	l, stop := startLoop(t)
	defer stop()

	done := make(chan struct{})
	l.Post(func() { panic("bad task") })
	l.Post(func() { close(done) })
	<-done

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if len(rec.panics) != 1 || rec.panics[0].Op != "loop.task" {
		t.Errorf("panics = %v, want one loop.task panic", rec.panics)
	}
}

func TestDispatch(t *testing.T) {
	if Dispatch(func() {}) {
		t.Error("Dispatch without an installed loop should return false")
	}

	l, stop := startLoop(t)
	uninstall := l.Install()
	defer uninstall()

	done := make(chan struct{})
	go func() {
		if !Dispatch(func() { close(done) }) {
			t.Error("Dispatch should succeed once installed")
		}
	}()
	<-done
	if Dispatch(nil) {
		t.Error("Dispatch(nil) should return false")
	}

	stop()
	if Dispatch(func() {}) {
		t.Error("Dispatch to a stopped loop should return false")
	}
}

func TestUninstallKeepsNewerLoop(t *testing.T) {
	a, b := New(), New()
	uninstallA := a.Install()
	uninstallB := b.Install()
	defer uninstallB()

	uninstallA()
	if !Dispatch(func() {}) {
		t.Error("uninstalling a replaced loop should leave the newer one installed")
	}
}
