package crcforge

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
)

func TestForge(t *testing.T) {
	type testRow struct {
		name   string
		preset Preset
		wanted uint32
		input  []byte
		pos    int
		output []byte
	}

	helloworld := []byte("helloworld")
	check := []byte("123456789")

	var testData = [...]testRow{
		{"crc32c-middle", CastagnoliPreset, 0, helloworld, 5, mustDecodeHex("68656c6c6fb5852c3b776f726c64")},
		{"crc32c-front", CastagnoliPreset, 0, helloworld, 0, mustDecodeHex("53f443e768656c6c6f776f726c64")},
		{"crc32c-back", CastagnoliPreset, 0, helloworld, 10, mustDecodeHex("68656c6c6f776f726c642b2f2bcd")},
		{"crc32c-empty", CastagnoliPreset, 0xdeadbeef, nil, 0, mustDecodeHex("7825490f")},
		{"crc32c-check", CastagnoliPreset, 0x12345678, check, 9, mustDecodeHex("313233343536373839889251a6")},
		{"ieee-middle", IEEEPreset, 0, helloworld, 5, mustDecodeHex("68656c6c6f20064006776f726c64")},
		{"ieee-front", IEEEPreset, 0, helloworld, 0, mustDecodeHex("7cf6bc3668656c6c6f776f726c64")},
		{"ieee-back", IEEEPreset, 0, helloworld, 10, mustDecodeHex("68656c6c6f776f726c64302a3294")},
		{"ieee-empty", IEEEPreset, 0xdeadbeef, nil, 0, mustDecodeHex("c3d82406")},
		{"ieee-check", IEEEPreset, 0x12345678, check, 9, mustDecodeHex("313233343536373839943eea7c")},
	}

	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			tables := PresetTables(row.preset)
			saved := append([]byte(nil), row.input...)

			actual, err := Forge(tables, row.wanted, row.input, row.pos)
			if err != nil {
				t.Fatalf("Forge: unexpected error: %v", err)
			}
			if !bytes.Equal(actual, row.output) {
				t.Errorf("Forge: wrong output:%s", tabify(hexDiff(row.output, actual)))
			}
			if sum := tables.Checksum(actual); sum != row.wanted {
				t.Errorf("Checksum: expected %v, got %v", Checksum32(row.wanted), Checksum32(sum))
			}
			if !bytes.Equal(row.input, saved) {
				t.Errorf("Forge modified its input:%s", tabify(hexDiff(saved, row.input)))
			}

			patch, err := Patch(tables, row.wanted, row.input, row.pos)
			if err != nil {
				t.Fatalf("Patch: unexpected error: %v", err)
			}
			if !bytes.Equal(patch[:], row.output[row.pos:row.pos+PatchSize]) {
				t.Errorf("Patch: expected %x, got %x", row.output[row.pos:row.pos+PatchSize], patch)
			}
		})
	}
}

func TestForgeProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, p := range []Preset{CastagnoliPreset, IEEEPreset, KoopmanPreset} {
		tables := PresetTables(p)
		for _, length := range []int{0, 1, 5, 16, 31, 200} {
			data := make([]byte, length)
			rng.Read(data)
			wanted := rng.Uint32()
			for pos := 0; pos <= length; pos++ {
				out, err := Forge(tables, wanted, data, pos)
				if err != nil {
					t.Fatalf("%v len %d pos %d: unexpected error: %v", p, length, pos, err)
				}
				if len(out) != length+PatchSize {
					t.Errorf("%v len %d pos %d: expected length %d, got %d", p, length, pos, length+PatchSize, len(out))
					continue
				}
				if !bytes.Equal(out[:pos], data[:pos]) {
					t.Errorf("%v len %d pos %d: prefix not preserved", p, length, pos)
				}
				if !bytes.Equal(out[pos+PatchSize:], data[pos:]) {
					t.Errorf("%v len %d pos %d: suffix not preserved", p, length, pos)
				}
				if sum := tables.Checksum(out); sum != wanted {
					t.Errorf("%v len %d pos %d: expected %v, got %v", p, length, pos, Checksum32(wanted), Checksum32(sum))
				}
			}
		}
	}
}

func TestForgeAppend(t *testing.T) {
	tables := PresetTables(CastagnoliPreset)
	data := []byte("helloworld")
	appended, err := ForgeAppend(tables, 0xcafef00d, data)
	if err != nil {
		t.Fatalf("ForgeAppend: unexpected error: %v", err)
	}
	explicit, err := Forge(tables, 0xcafef00d, data, len(data))
	if err != nil {
		t.Fatalf("Forge: unexpected error: %v", err)
	}
	if !bytes.Equal(appended, explicit) {
		t.Errorf("ForgeAppend differs from Forge at end:%s", tabify(hexDiff(explicit, appended)))
	}
}

func TestForgeInvalidPosition(t *testing.T) {
	tables := PresetTables(CastagnoliPreset)
	data := []byte("helloworld")
	for _, pos := range []int{-1, len(data) + 1, 1 << 20} {
		out, err := Forge(tables, 0, data, pos)
		if err == nil {
			t.Errorf("pos %d: expected error, got output %x", pos, out)
			continue
		}
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("pos %d: expected ErrInvalidArgument, got %v", pos, err)
		}
		var perr PositionError
		if !errors.As(err, &perr) {
			t.Errorf("pos %d: expected PositionError, got %T", pos, err)
		} else if perr.Pos != pos || perr.Length != len(data) {
			t.Errorf("pos %d: wrong PositionError %+v", pos, perr)
		}
		if _, err := Patch(tables, 0, data, pos); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Patch pos %d: expected ErrInvalidArgument, got %v", pos, err)
		}
	}
}

func TestForgeWithDestination(t *testing.T) {
	tables := PresetTables(IEEEPreset)
	dst := make([]byte, 2, 64)
	dst[0], dst[1] = 'x', 'y'
	out, err := Forge(tables, 0, []byte("helloworld"), 5, WithDestination(dst))
	if err != nil {
		t.Fatalf("Forge: unexpected error: %v", err)
	}
	expect := append([]byte("xy"), mustDecodeHex("68656c6c6f20064006776f726c64")...)
	if !bytes.Equal(out, expect) {
		t.Errorf("wrong output:%s", tabify(hexDiff(expect, out)))
	}
	if &out[0] != &dst[0] {
		t.Error("destination capacity was not reused")
	}
}

func TestForgeTracers(t *testing.T) {
	tables := PresetTables(CastagnoliPreset)

	var types []EventType
	var patch [PatchSize]byte
	collect := TracerFunc(func(event Event) {
		types = append(types, event.Type)
		if event.Polynomial != CastagnoliPolynomial {
			t.Errorf("%v: wrong polynomial %v", event.Type, event.Polynomial)
		}
	})

	_, err := Forge(tables, 0, []byte("helloworld"), 5, WithTracers(collect, CapturePatch(&patch), NoOpTracer{}))
	if err != nil {
		t.Fatalf("Forge: unexpected error: %v", err)
	}

	expect := []EventType{ForgeBeginEvent, PrefixDoneEvent, SuffixDoneEvent, PatchDoneEvent, ForgeEndEvent}
	if len(types) != len(expect) {
		t.Fatalf("expected events %v, got %v", expect, types)
	}
	for i := range expect {
		if types[i] != expect[i] {
			t.Errorf("event %d: expected %v, got %v", i, expect[i], types[i])
		}
	}
	if !bytes.Equal(patch[:], mustDecodeHex("b5852c3b")) {
		t.Errorf("CapturePatch: expected b5852c3b, got %x", patch)
	}
}
