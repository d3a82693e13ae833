package enc

import (
	"errors"
	"fmt"
)

// Declare the error classes every codec reports. Use errors.Is to test for them, the concrete
// values returned by the codecs carry more detail.
var (
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrMalformedLength      = errors.New("malformed length")
	ErrInvalidCharacter     = errors.New("invalid character")
	ErrInsufficientCapacity = errors.New("insufficient capacity")
)

// CorruptInputError is returned by the decoders when they hit a character which is not part of
// the alphabet (or is not allowed at this position, e.g. padding in the middle of the input).
type CorruptInputError struct {
	Codec  string
	Offset int
	Char   byte
	Reason string
}

func (e *CorruptInputError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "illegal character"
	}
	return fmt.Sprintf("%s: %s %q at offset %d", e.Codec, reason, e.Char, e.Offset)
}

func (e *CorruptInputError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

// LengthError is returned when the input length violates the structure of the format.
type LengthError struct {
	Codec  string
	Length int
	Reason string
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s: invalid input length %d: %s", e.Codec, e.Length, e.Reason)
}

func (e *LengthError) Is(target error) bool {
	return target == ErrMalformedLength
}

// CapacityError is returned when the destination buffer is too small. Required holds the
// size the caller should provide on the next attempt.
type CapacityError struct {
	Codec     string
	Required  int
	Available int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: destination buffer too small: need %d, got %d", e.Codec, e.Required, e.Available)
}

func (e *CapacityError) Is(target error) bool {
	return target == ErrInsufficientCapacity
}
