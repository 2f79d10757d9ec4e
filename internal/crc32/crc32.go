// Package crc32 implements the table-driven kernel for reflected CRC-32
// variants with an arbitrary generator polynomial.
//
// All functions here operate on the raw shift-register state.  Callers are
// responsible for the initial and final complement.
package crc32

import (
	"encoding/binary"
)

// Size is the size of a CRC-32 checksum in bytes.
const Size = 4

// SlicingThreshold is the input length at which Update switches from the
// byte-at-a-time loop to slicing-by-8.
const SlicingThreshold = 16

// Table is a 256-entry byte table for a reflected CRC-32.
type Table [256]uint32

// SlicingTable is a set of 8 byte tables for slicing-by-8.  Entry 0 is the
// ordinary byte table.
type SlicingTable [8]Table

// MakeTable builds the reflected byte table for poly.
func MakeTable(poly uint32) *Table {
	t := new(Table)
	for i := uint32(0); i < 256; i++ {
		sum := i
		for j := 0; j < 8; j++ {
			if (sum & 1) == 1 {
				sum = (sum >> 1) ^ poly
			} else {
				sum >>= 1
			}
		}
		t[i] = sum
	}
	return t
}

// MakeSlicingTable expands a byte table into a slicing-by-8 table.
func MakeSlicingTable(t *Table) *SlicingTable {
	st := new(SlicingTable)
	st[0] = *t
	for i := uint32(0); i < 256; i++ {
		sum := t[i]
		for j := 1; j < 8; j++ {
			sum = t[sum&0xff] ^ (sum >> 8)
			st[j][i] = sum
		}
	}
	return st
}

// SimpleUpdate advances the raw state over p one byte at a time.
func SimpleUpdate(t *Table, state uint32, p []byte) uint32 {
	for _, ch := range p {
		state = t[byte(state)^ch] ^ (state >> 8)
	}
	return state
}

// Update advances the raw state over p, using slicing-by-8 for long inputs.
func Update(st *SlicingTable, state uint32, p []byte) uint32 {
	length := uint(len(p))
	if length >= SlicingThreshold {
		for length >= 8 {
			state ^= binary.LittleEndian.Uint32(p)
			state = (st[0][p[7]] ^
				st[1][p[6]] ^
				st[2][p[5]] ^
				st[3][p[4]] ^
				st[4][state>>24] ^
				st[5][(state>>16)&0xff] ^
				st[6][(state>>8)&0xff] ^
				st[7][state&0xff])
			p = p[8:]
			length -= 8
		}
	}
	return SimpleUpdate(&st[0], state, p)
}
