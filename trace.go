package crcforge

import (
	"github.com/chronos-tachyon/assert"
	"github.com/rs/zerolog"
)

// Tracer is an interface which callers can implement in order to receive
// Events.  Events provide feedback on the progress of a forging operation.
type Tracer interface {
	OnEvent(Event)
}

// Event is a collection of fields that provide feedback on the forging
// operation in progress.
type Event struct {
	Type       EventType
	Polynomial Checksum32
	Wanted     Checksum32
	Pos        int
	Length     int
	State      Checksum32
	Patch      [PatchSize]byte
}

// type NoOpTracer {{{

// NoOpTracer is an implementation of Tracer that does nothing.
type NoOpTracer struct{}

// OnEvent fulfills Tracer.
func (NoOpTracer) OnEvent(event Event) {}

var _ Tracer = NoOpTracer{}

// }}}

// type TracerFunc {{{

// TracerFunc is an implementation of Tracer that calls a function.
type TracerFunc func(Event)

// OnEvent fulfills Tracer.
func (tr TracerFunc) OnEvent(event Event) {
	tr(event)
}

var _ Tracer = TracerFunc(nil)

// }}}

// type capturePatchTracer {{{

// CapturePatch returns a Tracer implementation which will fill the pointed-to
// array when PatchDoneEvent is encountered.
func CapturePatch(ptr *[PatchSize]byte) Tracer {
	assert.NotNil(&ptr)
	return capturePatchTracer{ptr: ptr}
}

type capturePatchTracer struct {
	ptr *[PatchSize]byte
}

// OnEvent fulfills Tracer.
func (tr capturePatchTracer) OnEvent(event Event) {
	if event.Type == PatchDoneEvent {
		*tr.ptr = event.Patch
	}
}

var _ Tracer = capturePatchTracer{}

// }}}

// type logTracer {{{

// Log returns a Tracer implementation which will log each Event at Trace
// priority.
func Log(logger zerolog.Logger) Tracer {
	return logTracer{logger: logger}
}

type logTracer struct {
	logger zerolog.Logger
}

// OnEvent fulfills Tracer.
func (tr logTracer) OnEvent(event Event) {
	tr.logger.Trace().
		Str("type", event.Type.String()).
		Str("polynomial", event.Polynomial.String()).
		Str("wanted", event.Wanted.String()).
		Int("pos", event.Pos).
		Int("length", event.Length).
		Str("state", event.State.String()).
		Hex("patch", event.Patch[:]).
		Msg("OnEvent")
}

var _ Tracer = logTracer{}

// }}}
