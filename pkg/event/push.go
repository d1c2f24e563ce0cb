package event

import (
	"encoding/json"
	"sync/atomic"

	"github.com/go-drift/livenative/pkg/errors"
)

// Codec encodes push payloads.
type Codec interface {
	Encode(value any) ([]byte, error)
}

// JSONCodec implements Codec using JSON encoding.
type JSONCodec struct{}

// Encode serializes the value to JSON bytes.
func (JSONCodec) Encode(value any) ([]byte, error) {
	return json.Marshal(value)
}

// DefaultCodec is the codec used by PushSink when none is set.
var DefaultCodec Codec = JSONCodec{}

// Payload is the wire shape of a push event.
type Payload struct {
	Type  string `json:"type"`
	Event string `json:"event"`
	Value any    `json:"value"`
	CID   string `json:"cid,omitempty"`
}

// PayloadOf converts an event to its wire shape. A nil value is sent as an
// empty object so the server always receives a map.
func PayloadOf(e Event) Payload {
	value := e.Value
	if value == nil {
		value = map[string]any{}
	}
	return Payload{Type: e.Kind.String(), Event: e.Name, Value: value, CID: e.Target}
}

// Encode returns the push payload for e using DefaultCodec.
func Encode(e Event) ([]byte, error) {
	return DefaultCodec.Encode(PayloadOf(e))
}

// Transport delivers encoded push payloads to the server.
type Transport interface {
	Push(payload []byte) error
}

// TransportFunc adapts a function to Transport.
type TransportFunc func(payload []byte) error

// Push calls f(payload).
func (f TransportFunc) Push(payload []byte) error { return f(payload) }

// PushSink is a Sink that encodes events and hands them to a Transport.
// Failures are reported to the error handler and never retried.
type PushSink struct {
	Transport Transport
	Codec     Codec

	dropped atomic.Int64
}

// NewPushSink returns a PushSink using DefaultCodec.
func NewPushSink(t Transport) *PushSink {
	return &PushSink{Transport: t}
}

// Emit encodes e and pushes it.
func (s *PushSink) Emit(e Event) {
	codec := s.Codec
	if codec == nil {
		codec = DefaultCodec
	}
	data, err := codec.Encode(PayloadOf(e))
	if err == nil {
		if s.Transport == nil {
			err = errors.New("no transport")
		} else {
			err = s.Transport.Push(data)
		}
	}
	if err != nil {
		s.dropped.Add(1)
		errors.Report(&errors.RenderError{
			Op:   "event.PushSink",
			Kind: errors.KindTransport,
			Err:  err,
		})
	}
}

// Dropped returns how many events failed to encode or push.
func (s *PushSink) Dropped() int64 {
	return s.dropped.Load()
}
