package enc

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func Test_FromEncodeMode(t *testing.T) {
	e, err := FromEncodeMode(ModeBase64URLEnc | ModeBase64URLEncNoPad)
	require.NoError(t, err)
	require.Equal(t, Base64URLNoPadEncoding, e)

	e, err = FromEncodeMode(ModeBase16Lower)
	require.NoError(t, err)
	require.Equal(t, Base16LowerEncoding, e)

	for _, m := range []Mode{0, ModeBase16Decode, ModeBase64StdEnc | ModeBase64URLEnc, ModeBase16Upper | ModeBase16Lower, ModeBase85StdEnc | ModeBase85IgnoreWS} {
		_, err := FromEncodeMode(m)
		require.Truef(t, errors.Is(err, ErrInvalidArgument), "0x%x", uint32(m))
	}
}

func Test_FromDecodeMode(t *testing.T) {
	e, err := FromDecodeMode(ModeBase85Z85Dec)
	require.NoError(t, err)
	require.Equal(t, Z85Encoding, e)

	e, err = FromDecodeMode(ModeBase85StdDec | ModeBase85IgnoreWS)
	require.NoError(t, err)
	b85, ok := e.(*Base85Encoder)
	require.True(t, ok)
	require.True(t, b85.IgnoreWhitespace)
	require.Equal(t, Ascii85, b85.Variant)

	for _, m := range []Mode{0, ModeBase58Enc, ModeBase58Dec | ModeBase64StdDec, ModeBase64StdDec | ModeBase85IgnoreWS} {
		_, err := FromDecodeMode(m)
		require.Truef(t, errors.Is(err, ErrInvalidArgument), "0x%x", uint32(m))
	}
}

func Test_EncodeLen(t *testing.T) {
	require.Equal(t, 0, EncodeLen(0, ModeBase64StdEnc))
	require.Equal(t, 0, EncodeLen(10, ModeBase64StdDec))
	require.Equal(t, 7, EncodeLen(3, ModeBase16Upper))
	require.Equal(t, 9, EncodeLen(1, ModeBase32Enc))
	require.Equal(t, 3, EncodeLen(1, ModeBase32EncNoPad))
	require.Equal(t, 4, EncodeLen(2, ModeBase64URLEncNoPad))
	require.Equal(t, 11, EncodeLen(8, ModeBase85Z85Enc))
}

func Test_DecodeLen(t *testing.T) {
	require.Equal(t, 0, DecodeLen(0, ModeBase64StdDec))
	require.Equal(t, 0, DecodeLen(10, ModeBase64StdEnc))
	require.Equal(t, 3, DecodeLen(6, ModeBase16Decode))
	require.Equal(t, 40, DecodeLen(10, ModeBase85ExtDec|ModeBase85IgnoreWS))
}

// The helpers must be safe bounds for every input, whatever it contains.
func Test_LenHelpersAreBounds(t *testing.T) {
	pairs := []struct {
		enc, dec Mode
	}{
		{ModeBase16Upper, ModeBase16Decode},
		{ModeBase16Lower, ModeBase16Decode},
		{ModeBase32Enc, ModeBase32Dec},
		{ModeBase32EncNoPad, ModeBase32DecNoPad},
		{ModeBase58Enc, ModeBase58Dec},
		{ModeBase64StdEnc, ModeBase64StdDec},
		{ModeBase64URLEnc, ModeBase64URLDec},
		{ModeBase64URLEncNoPad, ModeBase64URLDecNoPad},
		{ModeBase85StdEnc, ModeBase85StdDec},
		{ModeBase85ExtEnc, ModeBase85ExtDec},
		{ModeBase85Z85Enc, ModeBase85Z85Dec},
	}

	inputs := [][]byte{
		make([]byte, 32),
		[]byte("                                "),
		randomBytes(1, 32),
		randomBytes(2, 33),
		append(make([]byte, 9), 0xff),
	}

	for _, p := range pairs {
		e, err := FromEncodeMode(p.enc)
		require.NoError(t, err)
		d, err := FromDecodeMode(p.dec)
		require.NoError(t, err)

		for _, data := range inputs {
			if !CheckZ85Len(len(data)) && p.enc == ModeBase85Z85Enc {
				continue
			}
			dst := make([]byte, EncodeLen(len(data), p.enc))
			n, err := e.Encode(dst, data)
			require.NoErrorf(t, err, "%v", e)

			out := make([]byte, DecodeLen(n, p.dec))
			m, err := d.Decode(out, dst[:n])
			require.NoErrorf(t, err, "%v: %q", d, dst[:n])
			require.Equal(t, data, out[:m])
		}
	}
}
