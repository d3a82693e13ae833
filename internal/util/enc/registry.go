package enc

import (
	"github.com/pkg/errors"
	"strings"
)

// The preconfigured codecs. They hold no state, so they may be shared freely.
var (
	Base16UpperEncoding    = &Base16Encoder{Case: UpperCase}
	Base16LowerEncoding    = &Base16Encoder{Case: LowerCase}
	Base32Encoding         = &Base32Encoder{Padding: true}
	Base32NoPadEncoding    = &Base32Encoder{Padding: false}
	Base58Encoding         = &Base58Encoder{}
	Base64Encoding         = &Base64Encoder{Padding: true}
	Base64NoPadEncoding    = &Base64Encoder{Padding: false}
	Base64URLEncoding      = &Base64Encoder{URLSafe: true, Padding: true}
	Base64URLNoPadEncoding = &Base64Encoder{URLSafe: true, Padding: false}
	Base85Encoding         = &Base85Encoder{Variant: Ascii85}
	Base85ExtEncoding      = &Base85Encoder{Variant: Ascii85Extended}
	Z85Encoding            = &Base85Encoder{Variant: Z85}
	Base91Encoding         = &Base91Encoder{}
)

var encoders = []Encoder{
	Base16UpperEncoding,
	Base16LowerEncoding,
	Base32Encoding,
	Base32NoPadEncoding,
	Base58Encoding,
	Base64Encoding,
	Base64NoPadEncoding,
	Base64URLEncoding,
	Base64URLNoPadEncoding,
	Base85Encoding,
	Base85ExtEncoding,
	Z85Encoding,
	Base91Encoding,
}

// All returns every known encoder, in the order they are listed to the user.
func All() []Encoder {
	res := make([]Encoder, len(encoders))
	copy(res, encoders)
	return res
}

// FromName finds the encoder by its (case-insensitive) name, e.g. "base64_url_nopad".
func FromName(name string) (Encoder, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, e := range encoders {
		if e.Name() == name {
			return e, nil
		}
	}
	return nil, errors.Wrapf(ErrInvalidArgument, "unknown encoder: %q", name)
}

// FromCode finds the encoder by its one-letter code.
func FromCode(code byte) (Encoder, error) {
	for _, e := range encoders {
		if e.Code() == code {
			return e, nil
		}
	}
	return nil, errors.Wrapf(ErrInvalidArgument, "unknown encoder code: %q", code)
}
