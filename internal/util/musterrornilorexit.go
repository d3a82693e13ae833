package util

import (
	"os"

	"github.com/bokysan/baseconv/internal/util/enc"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Exit codes for the codec errors. They are above the range used by flags.ErrorType.
const (
	ErrInvalidArgument      = 64
	ErrMalformedLength      = 65
	ErrInvalidCharacter     = 66
	ErrInsufficientCapacity = 67
	ErrSelfTest             = 70
	ErrGeneric              = 99
)

// ErrSelfTestFailed is reported when one of the codecs does not survive a round trip.
var ErrSelfTestFailed = errors.New("self test failed")

// ExitCode maps the error to the process exit status. Errors from the flags package keep their
// type as exit code, codec errors get one code per class and everything else ends up as
// ErrGeneric. A nil error is 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var flagsError *flags.Error
	if errors.As(err, &flagsError) {
		if flagsError.Type == flags.ErrHelp {
			return 0
		}
		return int(flagsError.Type)
	}

	switch {
	case errors.Is(err, enc.ErrInvalidArgument):
		return ErrInvalidArgument
	case errors.Is(err, enc.ErrMalformedLength):
		return ErrMalformedLength
	case errors.Is(err, enc.ErrInvalidCharacter):
		return ErrInvalidCharacter
	case errors.Is(err, enc.ErrInsufficientCapacity):
		return ErrInsufficientCapacity
	case errors.Is(err, ErrSelfTestFailed):
		return ErrSelfTest
	}
	return ErrGeneric
}

// MustErrorNilOrExit will check the provided argument. If it's `nil` it will simply return. If it's
// not `nil`, it will log the error as `log.FatalLevel` and exit immediately with the code from
// ExitCode. Help requests exit with 0 without logging anything.
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	code := ExitCode(err)
	if code == 0 {
		os.Exit(0)
		return
	}

	log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
	log.Exit(code)
}
