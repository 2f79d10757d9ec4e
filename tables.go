package crcforge

import (
	"fmt"
	"sync"

	"github.com/chronos-tachyon/assert"
	"github.com/chronos-tachyon/crcforge/internal/crc32"
	"github.com/hashicorp/go-multierror"
)

// ForwardTable is the standard reflected CRC-32 byte table: entry i is the
// state contribution of feeding byte i through the shift register.
type ForwardTable [256]uint32

// ReverseTable is the byte table that runs the CRC-32 recurrence backwards.
// It is indexed by the top byte of the state after a forward step.
type ReverseTable [256]uint32

// BuildForwardTable constructs the ForwardTable for a reflected polynomial.
func BuildForwardTable(poly uint32) *ForwardTable {
	t := ForwardTable(*crc32.MakeTable(poly))
	return &t
}

// BuildReverseTable constructs the ReverseTable for a reflected polynomial.
//
// Each of the 8 rounds undoes one forward bit step: a set top bit means the
// polynomial was XORed in, and that the bit shifted out was a one.
func BuildReverseTable(poly uint32) *ReverseTable {
	t := new(ReverseTable)
	for i := uint32(0); i < 256; i++ {
		rev := i << 24
		for j := 0; j < 8; j++ {
			if (rev & 0x80000000) != 0 {
				rev = ((rev ^ poly) << 1) | 1
			} else {
				rev <<= 1
			}
		}
		t[i] = rev
	}
	return t
}

// Tables is an immutable pair of forward and reverse tables for one
// polynomial.  A *Tables may be shared freely between goroutines.
type Tables struct {
	poly    uint32
	forward ForwardTable
	reverse ReverseTable
	slicing *crc32.SlicingTable
}

// NewTables builds the Tables for a reflected polynomial.
func NewTables(poly uint32) *Tables {
	t := &Tables{
		poly:    poly,
		forward: *BuildForwardTable(poly),
		reverse: *BuildReverseTable(poly),
	}
	t.slicing = crc32.MakeSlicingTable((*crc32.Table)(&t.forward))
	return t
}

var (
	gPresetOnce   [len(presetPolynomials)]sync.Once
	gPresetTables [len(presetPolynomials)]*Tables
)

// PresetTables returns the shared Tables for a Preset, building them on first
// use.
func PresetTables(p Preset) *Tables {
	assert.Assertf(p.IsValid(), "invalid Preset %d", uint(p))
	gPresetOnce[p].Do(func() {
		gPresetTables[p] = NewTables(p.Polynomial())
	})
	return gPresetTables[p]
}

// Polynomial returns the reflected polynomial these tables were built from.
func (t *Tables) Polynomial() uint32 {
	return t.poly
}

// Forward returns a copy of the forward table.
func (t *Tables) Forward() ForwardTable {
	return t.forward
}

// Reverse returns a copy of the reverse table.
func (t *Tables) Reverse() ReverseTable {
	return t.reverse
}

// Verify checks that the reverse table inverts one byte step of the forward
// table for every byte value.  It only fails for polynomials without the top
// bit set, which do not describe a 32-bit CRC.
func (t *Tables) Verify() error {
	var errs *multierror.Error
	for i := uint32(0); i < 256; i++ {
		fwd := t.forward[i]
		expect := (fwd << 8) ^ i
		actual := t.reverse[fwd>>24]
		if actual != expect {
			errs = multierror.Append(errs, fmt.Errorf("reverse[%#02x]: expected %v, got %v", fwd>>24, Checksum32(expect), Checksum32(actual)))
		}
	}
	if errs != nil {
		return fmt.Errorf("polynomial %v: %w", Checksum32(t.poly), errs)
	}
	return nil
}
