// Package errors provides structured error handling for the livenative renderer.
//
// Failures fall into a small taxonomy. Structural failures (unknown tag,
// malformed tree, factory failure) are returned to the caller of resolve as
// typed values. Attribute-value problems never become errors at all; the parse
// rules fall back to defaults. Malformed structured payloads and dropped pushes
// are reported to the global [ErrorHandler] and otherwise treated as absent.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindStructural indicates an unknown tag or a malformed tree shape.
	KindStructural
	// KindAttribute indicates an attribute value that could not be used.
	KindAttribute
	// KindPayload indicates a malformed structured attribute payload.
	KindPayload
	// KindLifecycle indicates work attempted on a torn-down node.
	KindLifecycle
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindBuild indicates a factory failure while constructing a widget.
	KindBuild
	// KindTransport indicates a push event that could not be delivered.
	KindTransport
)

func (k ErrorKind) String() string {
	switch k {
	case KindStructural:
		return "structural"
	case KindAttribute:
		return "attribute"
	case KindPayload:
		return "payload"
	case KindLifecycle:
		return "lifecycle"
	case KindPanic:
		return "panic"
	case KindBuild:
		return "build"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// ErrDisposed is returned by operations on a node or pipeline that has
// already been torn down.
var ErrDisposed = errors.New("disposed")

// RenderError is the structured error carried through the renderer.
type RenderError struct {
	// Op is the operation that failed (e.g., "core.Resolve").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Tag is the tag of the node involved, if any.
	Tag string
	// Path is the document path of the node, as child indexes joined by "/".
	Path string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *RenderError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [%s] path=%s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// UnknownTagError reports a descriptor whose tag has no registered factory.
type UnknownTagError struct {
	Tag string
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("unknown tag %q", e.Tag)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "loop.Run").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// PayloadError represents a structured attribute value that failed to decode.
type PayloadError struct {
	// Attribute is the attribute name carrying the payload.
	Attribute string
	// Payload is the raw attribute value.
	Payload string
	// Err is the decoder error.
	Err error
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("malformed payload in attribute %q: %v", e.Attribute, e.Err)
}

func (e *PayloadError) Unwrap() error {
	return e.Err
}

// BuildError represents a failure inside a widget factory.
type BuildError struct {
	// Tag is the tag whose factory failed.
	Tag string
	// Recovered is the panic value (nil for regular errors).
	Recovered any
	// Err is the underlying error (nil for panics).
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BuildError) Error() string {
	if e.Recovered != nil {
		return fmt.Sprintf("panic in factory for %q: %v", e.Tag, e.Recovered)
	}
	if e.Err != nil {
		return fmt.Sprintf("error in factory for %q: %v", e.Tag, e.Err)
	}
	return fmt.Sprintf("unknown error in factory for %q", e.Tag)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// VersionError reports a document whose protocol version this client cannot render.
type VersionError struct {
	Got       string
	Supported string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("protocol version %s is not compatible with %s", e.Got, e.Supported)
}

// ErrorHandler receives errors reported by the renderer.
type ErrorHandler interface {
	// HandleError is called when a recoverable error is reported.
	HandleError(err *RenderError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleBuildError is called when a factory fails.
	HandleBuildError(err *BuildError)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool { return errors.Is(err, target) }

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool { return errors.As(err, target) }

// Join returns an error that wraps the given errors, or nil if all are nil.
func Join(errs ...error) error { return errors.Join(errs...) }

// New returns an error that formats as the given text.
func New(text string) error { return errors.New(text) }
