package crcforge

import (
	"github.com/chronos-tachyon/assert"
)

// Option represents a configuration option for Forge, ForgeAppend, or Patch.
type Option func(*options)

type options struct {
	tracers []Tracer
	dst     []byte
}

func (o *options) reset() {
	*o = options{
		tracers: nil,
		dst:     nil,
	}
}

func (o *options) apply(opts []Option) {
	for _, opt := range opts {
		assert.NotNil(&opt)
		opt(o)
	}
}

func (o *options) sendEvent(event Event) {
	for _, tr := range o.tracers {
		tr.OnEvent(event)
	}
}

// WithTracers specifies the list of Tracer instances which will receive Events
// as forging proceeds.  Completely replaces any previous list.
func WithTracers(tracers ...Tracer) Option {
	for _, tr := range tracers {
		assert.NotNil(&tr)
	}
	if len(tracers) == 0 {
		tracers = nil
	} else {
		tmp := make([]Tracer, len(tracers))
		copy(tmp, tracers)
		tracers = tmp
	}
	return func(o *options) { o.tracers = tracers }
}

// WithDestination specifies a slice to which the forged output is appended,
// so that its capacity can be reused.  dst must not overlap the input.  Patch
// ignores this option.
func WithDestination(dst []byte) Option {
	return func(o *options) { o.dst = dst }
}
