package enc

import (
	"fmt"
)

// -------------------------------------------------------

// Base64Encoder encodes 3 bytes to 4 characters, using either the standard or the URL-safe
// alphabet of RFC 4648.
type Base64Encoder struct {
	URLSafe bool
	Padding bool
}

func (b *Base64Encoder) Name() string {
	switch {
	case b.URLSafe && b.Padding:
		return "base64_url"
	case b.URLSafe:
		return "base64_url_nopad"
	case b.Padding:
		return "base64_std"
	default:
		return "base64_std_nopad"
	}
}

func (b *Base64Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base64Encoder) Code() byte {
	switch {
	case b.URLSafe && b.Padding:
		return 'U'
	case b.URLSafe:
		return 'u'
	case b.Padding:
		return 'S'
	default:
		return 's'
	}
}

func (b *Base64Encoder) alphabet() *alphabet {
	if b.URLSafe {
		return base64URL
	}
	return base64Std
}

func (b *Base64Encoder) EncodedLen(n int) int {
	return encodedGroupLen(n, 3, 4, 6, b.Padding)
}

func (b *Base64Encoder) DecodedLen(n int) int {
	return n * 3 / 4
}

func (b *Base64Encoder) Encode(dst, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, emptyInput(b.Name())
	}
	if err := checkCapacity(b.Name(), dst, b.EncodedLen(len(src))); err != nil {
		return 0, err
	}
	return encodeGroups(dst, src, b.alphabet(), 3, 4, 6, b.Padding), nil
}

// Decode accepts padded input even when Padding is off; without it the final group may be short.
func (b *Base64Encoder) Decode(dst, src []byte) (int, error) {
	return decodeGroups(b.Name(), dst, src, b.alphabet(), 3, 4, 6, b.Padding)
}

func (b *Base64Encoder) Ratio() float64 {
	return 4.0 / 3.0
}

func (b *Base64Encoder) TestPatterns() [][]byte {
	return [][]byte{
		[]byte("M"), []byte("Ma"), []byte("Man"),
		[]byte("aAbBcCdDeEfFgGhHiIjJkKlLmMnNoOpPqQrRsStTuUvVwWxXyYzZ+0129-"),
		{0xfb, 0xff, 0xbf, 0xfe},
	}
}
