package enc

import (
	"fmt"
)

// invalid marks a byte which is not part of an alphabet in the decode tables.
const invalid = 0xFF

const (
	cb16      = "0123456789ABCDEF"
	cb16Lcase = "0123456789abcdef"
	cb32      = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	cb58      = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	cb64      = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	cb64URL   = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	cbZ85     = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ.-:+=^!/*?&<>()[]{}@%$#"

	padChar = '='
)

// alphabet holds the symbol-to-character table and its reverse. The reverse table covers the whole
// byte range, so a lookup never needs a range check.
type alphabet struct {
	encode string
	decode [256]byte
}

// newAlphabet builds the reverse lookup table for the given characters. With foldCase the letters
// are accepted in both cases when decoding. It panics if the alphabet contains a duplicate or a
// non-printable character.
func newAlphabet(chars string, foldCase bool) *alphabet {
	a := &alphabet{encode: chars}
	for i := range a.decode {
		a.decode[i] = invalid
	}
	set := func(c byte, v int) {
		if a.decode[c] != invalid && a.decode[c] != byte(v) {
			panic(fmt.Sprintf("duplicate character %q in alphabet %q", c, chars))
		}
		a.decode[c] = byte(v)
	}
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		if c <= ' ' || c >= 0x7f {
			panic(fmt.Sprintf("character %q not allowed in alphabet %q", c, chars))
		}
		set(c, i)
		if foldCase {
			switch {
			case 'a' <= c && c <= 'z':
				set(c-'a'+'A', i)
			case 'A' <= c && c <= 'Z':
				set(c-'A'+'a', i)
			}
		}
	}
	return a
}

// ascii85Chars returns the Ascii85 digits, which are simply '!' (33) through 'u' (117).
func ascii85Chars() string {
	b := make([]byte, 85)
	for i := range b {
		b[i] = byte('!' + i)
	}
	return string(b)
}

var (
	base16Upper   = newAlphabet(cb16, true)
	base16Lower   = newAlphabet(cb16Lcase, true)
	base32Std     = newAlphabet(cb32, false)
	base58Bitcoin = newAlphabet(cb58, false)
	base64Std     = newAlphabet(cb64, false)
	base64URL     = newAlphabet(cb64URL, false)
	base85Ascii   = newAlphabet(ascii85Chars(), false)
	base85Z85     = newAlphabet(cbZ85, false)
)
