// Package namegen generates filenames whose CRC-32 equals a chosen value,
// such as names that all land in the same btrfs directory-index hash bucket.
//
// Each name is a random hex string with a forged 4-byte patch.  Names that
// contain a forbidden byte (by default '/' and NUL) are discarded and a new
// candidate is drawn.
package namegen

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/chronos-tachyon/crcforge"
	"github.com/rs/zerolog"
)

const (
	// DefaultRawLength is the number of random bytes behind each candidate.
	// The hex encoding drops its last digit, giving 177 characters, so the
	// forged name is 181 bytes long.
	DefaultRawLength = 89

	// DefaultOffset is where the patch is inserted into each candidate.
	DefaultOffset = 4

	// DefaultMaxAttempts bounds the candidates tried by a single Next call.
	DefaultMaxAttempts = 1024
)

// DefaultForbidden lists the bytes that may not appear in a filename.
var DefaultForbidden = []byte{'/', 0x00}

// ErrExhausted is returned by Next when every attempt produced a name with a
// forbidden byte.
var ErrExhausted = errors.New("namegen: attempts exhausted")

// Option represents a configuration option for New.
type Option func(*Generator)

// WithTables selects the CRC-32 variant.  The default is CRC-32C.
func WithTables(tables *crcforge.Tables) Option {
	assert.NotNil(&tables)
	return func(g *Generator) { g.tables = tables }
}

// WithTarget selects the checksum every name must have.  The default is 0.
func WithTarget(wanted uint32) Option {
	return func(g *Generator) { g.wanted = wanted }
}

// WithOffset selects where the patch is inserted.
func WithOffset(offset int) Option {
	assert.Assertf(offset >= 0, "offset %d < 0", offset)
	return func(g *Generator) { g.offset = offset }
}

// WithRawLength selects the number of random bytes per candidate.
func WithRawLength(n int) Option {
	assert.Assertf(n >= 1, "raw length %d < 1", n)
	return func(g *Generator) { g.rawLength = n }
}

// WithForbidden replaces the set of bytes that may not appear in a name.
func WithForbidden(forbidden ...byte) Option {
	return func(g *Generator) {
		g.forbidden = [256]bool{}
		for _, ch := range forbidden {
			g.forbidden[ch] = true
		}
	}
}

// WithMaxAttempts bounds the number of candidates tried per name.
func WithMaxAttempts(n int) Option {
	assert.Assertf(n >= 1, "max attempts %d < 1", n)
	return func(g *Generator) { g.maxAttempts = n }
}

// WithRand replaces the source of random bytes.  The default is
// crypto/rand.Reader.
func WithRand(r io.Reader) Option {
	assert.NotNil(&r)
	return func(g *Generator) { g.rand = r }
}

// WithLogger specifies the logger used by CreateNames.
func WithLogger(logger zerolog.Logger) Option {
	return func(g *Generator) { g.logger = logger }
}

// Generator produces forged names.  It is not safe for concurrent use,
// because it draws from a single random source.
type Generator struct {
	tables      *crcforge.Tables
	wanted      uint32
	offset      int
	rawLength   int
	forbidden   [256]bool
	maxAttempts int
	rand        io.Reader
	logger      zerolog.Logger
}

// New constructs a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{
		tables:      crcforge.PresetTables(crcforge.DefaultPreset),
		wanted:      0,
		offset:      DefaultOffset,
		rawLength:   DefaultRawLength,
		maxAttempts: DefaultMaxAttempts,
		rand:        rand.Reader,
		logger:      zerolog.Nop(),
	}
	WithForbidden(DefaultForbidden...)(g)
	for _, opt := range opts {
		assert.NotNil(&opt)
		opt(g)
	}
	return g
}

// Tables returns the tables in use.
func (g *Generator) Tables() *crcforge.Tables {
	return g.tables
}

// Target returns the checksum every name is forged to.
func (g *Generator) Target() uint32 {
	return g.wanted
}

// Candidate returns a fresh unforged candidate: the hex encoding of
// rawLength random bytes, minus the final digit.
func (g *Generator) Candidate() ([]byte, error) {
	raw := takeBytes(g.rawLength)
	defer giveBytes(raw)

	if _, err := io.ReadFull(g.rand, *raw); err != nil {
		return nil, fmt.Errorf("namegen: failed to read random bytes: %w", err)
	}

	out := make([]byte, hex.EncodedLen(len(*raw)))
	hex.Encode(out, *raw)
	return out[:len(out)-1], nil
}

// Next returns a forged name along with the number of candidates tried.
func (g *Generator) Next() ([]byte, int, error) {
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		candidate, err := g.Candidate()
		if err != nil {
			return nil, attempt, err
		}

		name, err := crcforge.Forge(g.tables, g.wanted, candidate, g.offset)
		if err != nil {
			return nil, attempt, err
		}

		if index := g.indexForbidden(name); index >= 0 {
			g.logger.Trace().
				Int("attempt", attempt).
				Int("index", index).
				Uint8("byte", name[index]).
				Msg("rejected candidate with forbidden byte")
			continue
		}
		return name, attempt, nil
	}
	return nil, g.maxAttempts, fmt.Errorf("%w after %d candidates", ErrExhausted, g.maxAttempts)
}

func (g *Generator) indexForbidden(name []byte) int {
	for i, ch := range name {
		if g.forbidden[ch] {
			return i
		}
	}
	return -1
}
