package enc

import (
	"github.com/pkg/errors"
)

// Mode is a set of flags describing a codec and a direction, for callers which select the codec
// with a single integer. Flags of different codecs must not be combined.
type Mode uint32

const (
	ModeBase16Upper  Mode = 0x01
	ModeBase16Lower  Mode = 0x02
	ModeBase16Decode Mode = 0x04

	ModeBase32Enc      Mode = 0x10
	ModeBase32Dec      Mode = 0x20
	ModeBase32EncNoPad Mode = 0x40
	ModeBase32DecNoPad Mode = 0x80

	ModeBase58Enc Mode = 0x100
	ModeBase58Dec Mode = 0x200

	ModeBase64StdEnc      Mode = 0x400
	ModeBase64StdDec      Mode = 0x800
	ModeBase64URLEnc      Mode = 0x1000
	ModeBase64URLDec      Mode = 0x2000
	ModeBase64URLEncNoPad Mode = 0x4000
	ModeBase64URLDecNoPad Mode = 0x8000

	ModeBase85StdEnc   Mode = 0x10000
	ModeBase85StdDec   Mode = 0x20000
	ModeBase85ExtEnc   Mode = 0x40000
	ModeBase85ExtDec   Mode = 0x80000
	ModeBase85Z85Enc   Mode = 0x100000
	ModeBase85Z85Dec   Mode = 0x200000
	ModeBase85IgnoreWS Mode = 0x400000
)

// Only these exact combinations are accepted. Anything else, e.g. standard and URL-safe Base64 at
// the same time, is rejected instead of letting one of the flags win.
var encodeModes = map[Mode]Encoder{
	ModeBase16Upper:                          Base16UpperEncoding,
	ModeBase16Lower:                          Base16LowerEncoding,
	ModeBase32Enc:                            Base32Encoding,
	ModeBase32Enc | ModeBase32EncNoPad:       Base32NoPadEncoding,
	ModeBase32EncNoPad:                       Base32NoPadEncoding,
	ModeBase58Enc:                            Base58Encoding,
	ModeBase64StdEnc:                         Base64Encoding,
	ModeBase64URLEnc:                         Base64URLEncoding,
	ModeBase64URLEnc | ModeBase64URLEncNoPad: Base64URLNoPadEncoding,
	ModeBase64URLEncNoPad:                    Base64URLNoPadEncoding,
	ModeBase85StdEnc:                         Base85Encoding,
	ModeBase85ExtEnc:                         Base85ExtEncoding,
	ModeBase85Z85Enc:                         Z85Encoding,
}

var decodeModes = map[Mode]Encoder{
	ModeBase16Decode:                         Base16UpperEncoding,
	ModeBase32Dec:                            Base32Encoding,
	ModeBase32Dec | ModeBase32DecNoPad:       Base32NoPadEncoding,
	ModeBase32DecNoPad:                       Base32NoPadEncoding,
	ModeBase58Dec:                            Base58Encoding,
	ModeBase64StdDec:                         Base64Encoding,
	ModeBase64URLDec:                         Base64URLEncoding,
	ModeBase64URLDec | ModeBase64URLDecNoPad: Base64URLNoPadEncoding,
	ModeBase64URLDecNoPad:                    Base64URLNoPadEncoding,
	ModeBase85StdDec:                         Base85Encoding,
	ModeBase85ExtDec:                         Base85ExtEncoding,
	ModeBase85Z85Dec:                         Z85Encoding,
}

// FromEncodeMode returns the encoder selected by an encoding mode.
func FromEncodeMode(m Mode) (Encoder, error) {
	if e, ok := encodeModes[m]; ok {
		return e, nil
	}
	return nil, errors.Wrapf(ErrInvalidArgument, "unsupported encode mode 0x%x", uint32(m))
}

// FromDecodeMode returns the encoder selected by a decoding mode. ModeBase85IgnoreWS may be
// combined with any of the Base85 modes.
func FromDecodeMode(m Mode) (Encoder, error) {
	ignoreWS := m&ModeBase85IgnoreWS != 0
	e, ok := decodeModes[m&^ModeBase85IgnoreWS]
	if !ok {
		return nil, errors.Wrapf(ErrInvalidArgument, "unsupported decode mode 0x%x", uint32(m))
	}
	if !ignoreWS {
		return e, nil
	}
	if b85, ok := e.(*Base85Encoder); ok {
		return b85.WithIgnoreWhitespace(), nil
	}
	return nil, errors.Wrapf(ErrInvalidArgument, "whitespace skipping is not supported by %s", e.Name())
}

// EncodeLen returns the buffer size needed to encode n bytes with the given mode. The result
// includes one byte of slack for callers which want to terminate the text. It returns 0 for an
// empty input or an unsupported mode.
func EncodeLen(n int, m Mode) int {
	if n <= 0 {
		return 0
	}
	e, err := FromEncodeMode(m)
	if err != nil {
		return 0
	}
	return e.EncodedLen(n) + 1
}

// DecodeLen returns the buffer size needed to decode n characters with the given mode. It returns 0
// for an empty input or an unsupported mode.
func DecodeLen(n int, m Mode) int {
	if n <= 0 {
		return 0
	}
	e, err := FromDecodeMode(m)
	if err != nil {
		return 0
	}
	return e.DecodedLen(n)
}
