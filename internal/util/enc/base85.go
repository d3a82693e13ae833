package enc

import (
	"encoding/binary"
	"fmt"
	"math"
)

const (
	zeroShortcut  = 'z' // 0x00000000
	spaceShortcut = 'y' // 0x20202020
	spaceGroup    = 0x20202020
	maxDigit85    = 84
)

// Base85Variant selects one of the base 85 flavours.
type Base85Variant int

const (
	// Ascii85 uses the characters '!' through 'u' and the 'z' shortcut for a group of zeros.
	Ascii85 Base85Variant = iota
	// Ascii85Extended additionally writes 'y' for a group of four spaces.
	Ascii85Extended
	// Z85 is the ZeroMQ alphabet. It has no shortcuts and only handles complete groups.
	Z85
)

// CheckZ85Len returns true if n bytes can be encoded with Z85.
func CheckZ85Len(n int) bool {
	return n%4 == 0
}

// -------------------------------------------------------

// Base85Encoder encodes 4 bytes to 5 characters
type Base85Encoder struct {
	Variant Base85Variant
	// IgnoreWhitespace makes the decoder skip spaces, tabs and line breaks
	IgnoreWhitespace bool
}

func (b *Base85Encoder) Name() string {
	switch b.Variant {
	case Ascii85Extended:
		return "base85_ext"
	case Z85:
		return "base85_z85"
	default:
		return "base85_std"
	}
}

func (b *Base85Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base85Encoder) Code() byte {
	switch b.Variant {
	case Ascii85Extended:
		return 'E'
	case Z85:
		return 'Z'
	default:
		return 'W'
	}
}

// WithIgnoreWhitespace returns a copy of the encoder that skips whitespace when decoding.
func (b *Base85Encoder) WithIgnoreWhitespace() *Base85Encoder {
	c := *b
	c.IgnoreWhitespace = true
	return &c
}

func (b *Base85Encoder) alphabet() *alphabet {
	if b.Variant == Z85 {
		return base85Z85
	}
	return base85Ascii
}

func (b *Base85Encoder) EncodedLen(n int) int {
	return (n + 3) / 4 * 5
}

// DecodedLen for the Ascii85 variants assumes every character is a shortcut.
func (b *Base85Encoder) DecodedLen(n int) int {
	if b.Variant == Z85 {
		return (n + 4) / 5 * 4
	}
	return n * 4
}

func (b *Base85Encoder) putGroup(dst []byte, v uint32) {
	table := b.alphabet().encode
	for j := 4; j >= 0; j-- {
		dst[j] = table[v%85]
		v /= 85
	}
}

func (b *Base85Encoder) Encode(dst, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, emptyInput(b.Name())
	}
	if b.Variant == Z85 && !CheckZ85Len(len(src)) {
		return 0, malformed(b.Name(), len(src), "must be a multiple of 4")
	}

	di := 0
	si := 0
	for ; si+4 <= len(src); si += 4 {
		v := binary.BigEndian.Uint32(src[si:])

		if b.Variant != Z85 {
			shortcut := byte(0)
			if v == 0 {
				shortcut = zeroShortcut
			} else if b.Variant == Ascii85Extended && v == spaceGroup {
				shortcut = spaceShortcut
			}
			if shortcut != 0 {
				if di >= len(dst) {
					return di, shortBuffer(b.Name(), dst, b.EncodedLen(len(src)))
				}
				dst[di] = shortcut
				di++
				continue
			}
		}

		if di+5 > len(dst) {
			return di, shortBuffer(b.Name(), dst, b.EncodedLen(len(src)))
		}
		b.putGroup(dst[di:], v)
		di += 5
	}

	// Partial tail, zero padded. Only the first tail+1 digits are written.
	if tail := len(src) - si; tail > 0 {
		var group [4]byte
		var digits [5]byte
		copy(group[:], src[si:])
		b.putGroup(digits[:], binary.BigEndian.Uint32(group[:]))

		if di+tail+1 > len(dst) {
			return di, shortBuffer(b.Name(), dst, b.EncodedLen(len(src)))
		}
		di += copy(dst[di:], digits[:tail+1])
	}

	return di, nil
}

func (b *Base85Encoder) Decode(dst, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, emptyInput(b.Name())
	}
	if b.Variant == Z85 && !b.IgnoreWhitespace && len(src)%5 != 0 {
		return 0, malformed(b.Name(), len(src), "must be a multiple of 5")
	}

	table := &b.alphabet().decode
	put := func(di int, v uint32, n int) error {
		if di+n > len(dst) {
			return shortBuffer(b.Name(), dst, b.DecodedLen(len(src)))
		}
		var group [4]byte
		binary.BigEndian.PutUint32(group[:], v)
		copy(dst[di:], group[:n])
		return nil
	}

	di := 0
	count := 0
	var value uint64
	last := 0
	for i, c := range src {
		if b.IgnoreWhitespace && isSpace(c) {
			continue
		}
		last = i

		// Shortcuts are only allowed between groups
		if b.Variant != Z85 && count == 0 {
			if c == zeroShortcut {
				if err := put(di, 0, 4); err != nil {
					return di, err
				}
				di += 4
				continue
			}
			if b.Variant == Ascii85Extended && c == spaceShortcut {
				if err := put(di, spaceGroup, 4); err != nil {
					return di, err
				}
				di += 4
				continue
			}
		}

		d := table[c]
		if d == invalid {
			return di, corrupt(b.Name(), src, i, "")
		}
		value = value*85 + uint64(d)
		count++

		if count == 5 {
			if value > math.MaxUint32 {
				return di, corrupt(b.Name(), src, i, "group overflow ending with")
			}
			if err := put(di, uint32(value), 4); err != nil {
				return di, err
			}
			di += 4
			value = 0
			count = 0
		}
	}

	if count > 0 {
		if b.Variant == Z85 {
			return di, malformed(b.Name(), len(src), "%d characters left after the last complete group", count)
		}
		if count == 1 {
			return di, malformed(b.Name(), len(src), "a single trailing character carries no data")
		}

		// Complete the group with the highest digit ('u'), then keep count-1 bytes
		for j := count; j < 5; j++ {
			value = value*85 + maxDigit85
		}
		if value > math.MaxUint32 {
			return di, corrupt(b.Name(), src, last, "group overflow ending with")
		}
		if err := put(di, uint32(value), count-1); err != nil {
			return di, err
		}
		di += count - 1
	}

	return di, nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func (b *Base85Encoder) Ratio() float64 {
	return 1.25
}

func (b *Base85Encoder) TestPatterns() [][]byte {
	patterns := [][]byte{
		{0, 0, 0, 0},
		[]byte("    "),
		{0xff, 0xff, 0xff, 0xff},
		[]byte(cbZ85[:80]),
	}
	if b.Variant != Z85 {
		patterns = append(patterns,
			[]byte{0x00}, []byte("ab"), []byte("abc"),
			[]byte("Man is distinguished"),
		)
	}
	return patterns
}
