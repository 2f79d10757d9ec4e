package crcforge

const strDefault = "default"

// PatchSize is the number of bytes inserted by Forge.
const PatchSize = 4

// initialState is the raw shift-register state before the first byte.  It is
// also the mask for the final complement.
const initialState = 0xffffffff

func checkPosition(pos int, length int) error {
	if pos < 0 || pos > length {
		return PositionError{Pos: pos, Length: length}
	}
	return nil
}
