package crcforge

import (
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/chronos-tachyon/enumhelper"
)

// Preset names a well-known reflected CRC-32 generator polynomial.
type Preset byte

const (
	// CastagnoliPreset is CRC-32C, as used by btrfs, ext4 metadata, and
	// iSCSI.  It is the default.
	CastagnoliPreset Preset = iota

	// IEEEPreset is the CRC-32 of zlib, gzip, PNG, and Ethernet.
	IEEEPreset

	// KoopmanPreset is Koopman's CRC-32K.
	KoopmanPreset
)

const (
	// CastagnoliPolynomial is the reflected CRC-32C polynomial.
	CastagnoliPolynomial = 0x82f63b78

	// IEEEPolynomial is the reflected CRC-32 (IEEE 802.3) polynomial.
	IEEEPolynomial = 0xedb88320

	// KoopmanPolynomial is the reflected CRC-32K polynomial.
	KoopmanPolynomial = 0xeb31d82e
)

// DefaultPreset is the Preset used when none is specified.
const DefaultPreset = CastagnoliPreset

var presetData = []enumhelper.EnumData{
	{GoName: "CastagnoliPreset", Name: "crc32c", Aliases: []string{"castagnoli", strDefault}},
	{GoName: "IEEEPreset", Name: "ieee", Aliases: []string{"crc32", "zlib"}},
	{GoName: "KoopmanPreset", Name: "koopman"},
}

var presetPolynomials = [...]uint32{
	CastagnoliPolynomial,
	IEEEPolynomial,
	KoopmanPolynomial,
}

// IsValid returns true if p is a valid Preset constant.
func (p Preset) IsValid() bool {
	return p >= CastagnoliPreset && p <= KoopmanPreset
}

// Polynomial returns the reflected generator polynomial for this Preset.
func (p Preset) Polynomial() uint32 {
	assert.Assertf(p.IsValid(), "invalid Preset %d", uint(p))
	return presetPolynomials[p]
}

// GoString returns the Go string representation of this Preset constant.
func (p Preset) GoString() string {
	return enumhelper.DereferenceEnumData("Preset", presetData, uint(p)).GoName
}

// String returns the string representation of this Preset constant.
func (p Preset) String() string {
	return enumhelper.DereferenceEnumData("Preset", presetData, uint(p)).Name
}

// MarshalJSON returns the JSON representation of this Preset constant.
func (p Preset) MarshalJSON() ([]byte, error) {
	return enumhelper.MarshalEnumToJSON("Preset", presetData, uint(p))
}

// Parse parses a string representation of a Preset constant.
func (p *Preset) Parse(str string) error {
	value, err := enumhelper.ParseEnum("Preset", presetData, str)
	*p = Preset(value)
	return err
}

var _ fmt.GoStringer = Preset(0)
var _ fmt.Stringer = Preset(0)

// ParsePolynomial accepts either the name of a Preset or a reflected
// polynomial written in hexadecimal ("0x82f63b78").
func ParsePolynomial(str string) (uint32, error) {
	if strings.HasPrefix(str, "0x") || strings.HasPrefix(str, "0X") {
		var csum Checksum32
		if err := csum.Parse(str); err != nil {
			return 0, fmt.Errorf("failed to parse polynomial %q: %w", str, err)
		}
		return uint32(csum), nil
	}

	var p Preset
	if err := p.Parse(str); err != nil {
		return 0, err
	}
	return p.Polynomial(), nil
}
