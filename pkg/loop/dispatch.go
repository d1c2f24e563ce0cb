package loop

import "sync/atomic"

var installed atomic.Pointer[Loop]

// Install makes l the target of Dispatch, replacing any loop installed
// before. The returned function uninstalls l if it is still the target.
func (l *Loop) Install() (uninstall func()) {
	installed.Store(l)
	return func() { installed.CompareAndSwap(l, nil) }
}

// Dispatch posts fn to the installed loop from any goroutine. It reports
// false when no loop is installed, the loop has stopped or fn is nil, so
// producers such as file watchers know to give up.
func Dispatch(fn func()) bool {
	l := installed.Load()
	if l == nil || fn == nil {
		return false
	}
	return l.Post(fn)
}
