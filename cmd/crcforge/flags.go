package main

import (
	"strconv"

	"github.com/chronos-tachyon/crcforge"
	getopt "github.com/pborman/getopt/v2"
)

// type PolynomialFlag {{{

// PolynomialFlag implements getopt.Value for a reflected CRC-32 polynomial,
// given either as a crcforge.Preset name or in hexadecimal.
type PolynomialFlag struct {
	Value uint32
}

// Set fulfills getopt.Value.
func (flag *PolynomialFlag) Set(str string, opt getopt.Option) error {
	poly, err := crcforge.ParsePolynomial(str)
	if err != nil {
		return err
	}
	flag.Value = poly
	return nil
}

// String fulfills getopt.Value.
func (flag PolynomialFlag) String() string {
	return crcforge.Checksum32(flag.Value).String()
}

var _ getopt.Value = (*PolynomialFlag)(nil)

// }}}

// type Checksum32Flag {{{

// Checksum32Flag implements getopt.Value for crcforge.Checksum32.
type Checksum32Flag struct {
	Value crcforge.Checksum32
}

// Set fulfills getopt.Value.
func (flag *Checksum32Flag) Set(str string, opt getopt.Option) error {
	return flag.Value.Parse(str)
}

// String fulfills getopt.Value.
func (flag Checksum32Flag) String() string {
	return flag.Value.String()
}

var _ getopt.Value = (*Checksum32Flag)(nil)

// }}}

// type OffsetFlag {{{

// OffsetFlag implements getopt.Value for the patch insertion offset.  The
// value "end" (the default) means "after the last byte".
type OffsetFlag struct {
	Value int
	IsEnd bool
}

// Set fulfills getopt.Value.
func (flag *OffsetFlag) Set(str string, opt getopt.Option) error {
	if str == "end" {
		*flag = OffsetFlag{IsEnd: true}
		return nil
	}
	i64, err := strconv.ParseInt(str, 0, 0)
	if err != nil {
		return err
	}
	*flag = OffsetFlag{Value: int(i64)}
	return nil
}

// String fulfills getopt.Value.
func (flag OffsetFlag) String() string {
	if flag.IsEnd {
		return "end"
	}
	return strconv.Itoa(flag.Value)
}

// Resolve returns the concrete offset for an input of the given length.
func (flag OffsetFlag) Resolve(length int) int {
	if flag.IsEnd {
		return length
	}
	return flag.Value
}

var _ getopt.Value = (*OffsetFlag)(nil)

// }}}
