package crcforge

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the condition wrapped by every input-contract
// violation reported by this package.
var ErrInvalidArgument = errors.New("invalid argument")

// PositionError is returned when a patch insertion offset falls outside
// [0, Length].
type PositionError struct {
	Pos    int
	Length int
}

// Error fulfills the error interface.
func (err PositionError) Error() string {
	return fmt.Sprintf("%v: insertion offset %d is outside [0, %d]", ErrInvalidArgument, err.Pos, err.Length)
}

// Unwrap returns ErrInvalidArgument.
func (err PositionError) Unwrap() error {
	return ErrInvalidArgument
}

var _ error = PositionError{}
