// Package attr folds server attribute lists into typed widget properties.
//
// Every parse rule is a pure function from the raw string to a typed value
// with an explicit default. Rules never fail: an empty, malformed or
// unrecognized value resolves to the default, so an attribute from a newer
// server or a typo can never take the renderer down.
//
// Widgets describe their own properties as a [Rules] dispatch table keyed by
// attribute name and fold an attribute set with [Fold]. Names a widget does not
// claim fall through to the common handler shared by every widget (sizing,
// padding, event bindings, accessibility text).
package attr

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Bool parses a boolean attribute. An empty value yields def; otherwise only
// the case-insensitive literal "true" yields true.
func Bool(s string, def bool) bool {
	if s == "" {
		return def
	}
	return strings.EqualFold(s, "true")
}

// Int parses a decimal integer, returning def when s is not one.
func Int(s string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return v
}

// Dp parses a non-negative integer in device-independent units.
func Dp(s string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return def
	}
	return v
}

// Float parses a finite floating point number.
func Float(s string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}

// Duration parses a non-negative duration given either as integer
// milliseconds ("300") or in Go duration syntax ("1.5s").
func Duration(s string, def time.Duration) time.Duration {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		if ms < 0 || ms > math.MaxInt64/int64(time.Millisecond) {
			return def
		}
		return time.Duration(ms) * time.Millisecond
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return def
	}
	return d
}

// Enum maps a literal through table, returning def for unknown literals.
func Enum[T any](table map[string]T, s string, def T) T {
	if v, ok := table[s]; ok {
		return v
	}
	return def
}

// String returns s, or def when s is empty.
func String(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
