package enc

import (
	"fmt"
	"github.com/pkg/errors"
)

func emptyInput(codec string) error {
	return errors.Wrapf(ErrInvalidArgument, "%s: empty input", codec)
}

func corrupt(codec string, src []byte, offset int, reason string) error {
	return errors.WithStack(&CorruptInputError{
		Codec:  codec,
		Offset: offset,
		Char:   src[offset],
		Reason: reason,
	})
}

func malformed(codec string, length int, format string, args ...interface{}) error {
	return errors.WithStack(&LengthError{
		Codec:  codec,
		Length: length,
		Reason: fmt.Sprintf(format, args...),
	})
}

func shortBuffer(codec string, dst []byte, required int) error {
	return errors.WithStack(&CapacityError{
		Codec:     codec,
		Required:  required,
		Available: len(dst),
	})
}

// checkCapacity verifies that dst can hold the required number of bytes.
func checkCapacity(codec string, dst []byte, required int) error {
	if len(dst) < required {
		return shortBuffer(codec, dst, required)
	}
	return nil
}
