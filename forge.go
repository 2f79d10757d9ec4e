package crcforge

import (
	"encoding/binary"

	"github.com/chronos-tachyon/assert"
)

// Forge returns data[:pos] + patch + data[pos:], where patch is the unique
// 4-byte sequence that makes the CRC-32 of the result equal to wanted.
//
// pos must lie in [0, len(data)]; otherwise the error is a PositionError
// wrapping ErrInvalidArgument.  data is never modified.  The output may
// contain any byte value; callers that need a restricted alphabet must
// check the result and retry with different input.
func Forge(t *Tables, wanted uint32, data []byte, pos int, opts ...Option) ([]byte, error) {
	assert.NotNil(&t)

	var o options
	o.reset()
	o.apply(opts)

	patch, err := forgePatch(t, wanted, data, pos, &o)
	if err != nil {
		return nil, err
	}

	out := o.dst
	if out == nil {
		out = make([]byte, 0, len(data)+PatchSize)
	}
	out = append(out, data[:pos]...)
	out = append(out, patch[:]...)
	out = append(out, data[pos:]...)

	o.sendEvent(Event{
		Type:       ForgeEndEvent,
		Polynomial: Checksum32(t.poly),
		Wanted:     Checksum32(wanted),
		Pos:        pos,
		Length:     len(data),
		State:      Checksum32(wanted),
		Patch:      patch,
	})
	return out, nil
}

// ForgeAppend is Forge with the patch appended after the last byte of data.
func ForgeAppend(t *Tables, wanted uint32, data []byte, opts ...Option) ([]byte, error) {
	return Forge(t, wanted, data, len(data), opts...)
}

// Patch returns only the 4 bytes that Forge would insert at pos.
func Patch(t *Tables, wanted uint32, data []byte, pos int, opts ...Option) ([PatchSize]byte, error) {
	assert.NotNil(&t)

	var o options
	o.reset()
	o.apply(opts)

	return forgePatch(t, wanted, data, pos, &o)
}

func forgePatch(t *Tables, wanted uint32, data []byte, pos int, o *options) ([PatchSize]byte, error) {
	var patch [PatchSize]byte
	if err := checkPosition(pos, len(data)); err != nil {
		return patch, err
	}

	event := Event{
		Polynomial: Checksum32(t.poly),
		Wanted:     Checksum32(wanted),
		Pos:        pos,
		Length:     len(data),
	}

	event.Type = ForgeBeginEvent
	o.sendEvent(event)

	fwd := t.Advance(initialState, data[:pos])
	event.Type = PrefixDoneEvent
	event.State = Checksum32(fwd)
	o.sendEvent(event)

	bkd := t.Rewind(wanted^initialState, data[pos:])
	event.Type = SuffixDoneEvent
	event.State = Checksum32(bkd)
	o.sendEvent(event)

	// Four byte steps shift out the whole state, so advancing fwd over the
	// patch equals advancing the patch over fwd's bytes.  Rewinding bkd over
	// those bytes therefore yields the patch.
	var fwdBytes [4]byte
	binary.LittleEndian.PutUint32(fwdBytes[:], fwd)
	bkd = t.Rewind(bkd, fwdBytes[:])
	binary.LittleEndian.PutUint32(patch[:], bkd)

	event.Type = PatchDoneEvent
	event.State = Checksum32(bkd)
	event.Patch = patch
	o.sendEvent(event)

	return patch, nil
}
