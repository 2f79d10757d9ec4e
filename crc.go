package crcforge

import (
	"github.com/chronos-tachyon/crcforge/internal/crc32"
)

// Checksum computes the CRC-32 of data using a bare forward table.
func Checksum(t *ForwardTable, data []byte) uint32 {
	return crc32.SimpleUpdate((*crc32.Table)(t), initialState, data) ^ initialState
}

// Checksum computes the CRC-32 of data.  The empty input has checksum 0.
func (t *Tables) Checksum(data []byte) uint32 {
	return t.Advance(initialState, data) ^ initialState
}

// Advance runs the forward recurrence over data, starting from the raw
// (uncomplemented) state.
func (t *Tables) Advance(state uint32, data []byte) uint32 {
	return crc32.Update(t.slicing, state, data)
}

// Rewind runs the recurrence backwards over data, last byte first, undoing
// Advance: t.Rewind(t.Advance(s, data), data) == s.
func (t *Tables) Rewind(state uint32, data []byte) uint32 {
	for i := len(data) - 1; i >= 0; i-- {
		state = (state << 8) ^ t.reverse[state>>24]
		state ^= uint32(data[i])
	}
	return state
}
