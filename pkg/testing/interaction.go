package testing

import (
	"fmt"
	"time"
)

// Interactions are delivered straight to the widget the finder matches, the
// way the platform view would after hit testing.

// Tap taps the first node matched by finder.
func (t *Tester) Tap(finder Finder) error {
	w, err := find[interface{ Tap() }](t, "Tap", finder)
	if err != nil {
		return err
	}
	w.Tap()
	return nil
}

// Toggle flips the first checkbox or switch matched by finder.
func (t *Tester) Toggle(finder Finder) error {
	w, err := find[interface{ Toggle() bool }](t, "Toggle", finder)
	if err != nil {
		return err
	}
	w.Toggle()
	return nil
}

// EnterText replaces the text of the first text field matched by finder.
func (t *Tester) EnterText(finder Finder, text string) error {
	w, err := find[interface{ SetText(string) bool }](t, "EnterText", finder)
	if err != nil {
		return err
	}
	w.SetText(text)
	return nil
}

// Type enters text one character at a time, advancing the clock by gap
// after each keystroke.
func (t *Tester) Type(finder Finder, text string, gap time.Duration) error {
	w, err := find[interface {
		Text() string
		SetText(string) bool
	}](t, "Type", finder)
	if err != nil {
		return err
	}
	for _, r := range text {
		w.SetText(w.Text() + string(r))
		t.Advance(gap)
	}
	return nil
}

// Slide drags the first slider matched by finder to v without releasing it.
func (t *Tester) Slide(finder Finder, v float64) error {
	w, err := find[interface{ SetValue(float64) bool }](t, "Slide", finder)
	if err != nil {
		return err
	}
	w.SetValue(v)
	return nil
}

// Release ends a drag on the first slider matched by finder.
func (t *Tester) Release(finder Finder) error {
	w, err := find[interface{ Release() }](t, "Release", finder)
	if err != nil {
		return err
	}
	w.Release()
	return nil
}

// Submit submits the first text field matched by finder.
func (t *Tester) Submit(finder Finder) error {
	w, err := find[interface{ Submit() }](t, "Submit", finder)
	if err != nil {
		return err
	}
	w.Submit()
	return nil
}

// Blur moves focus away from the first text field matched by finder.
func (t *Tester) Blur(finder Finder) error {
	w, err := find[interface{ Blur() }](t, "Blur", finder)
	if err != nil {
		return err
	}
	w.Blur()
	return nil
}

func find[T any](t *Tester, op string, finder Finder) (T, error) {
	var zero T
	result := t.Find(finder)
	if !result.Exists() {
		return zero, fmt.Errorf("%s: finder matched no nodes: %s", op, finder.Description())
	}
	w, ok := result.Widget().(T)
	if !ok {
		return zero, fmt.Errorf("%s: %s does not support it: %s", op, result.Widget().Kind(), finder.Description())
	}
	return w, nil
}
