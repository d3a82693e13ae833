package enc

import (
	"encoding/base64"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func Test_Base64Encoder(t *testing.T) {
	references := map[Encoder]*base64.Encoding{
		Base64Encoding:         base64.StdEncoding,
		Base64NoPadEncoding:    base64.RawStdEncoding,
		Base64URLEncoding:      base64.URLEncoding,
		Base64URLNoPadEncoding: base64.RawURLEncoding,
	}
	for e, ref := range references {
		for _, encoderTest := range encoderTests {
			encoded, err := EncodeToString(e, encoderTest)
			require.NoError(t, err)
			require.Equalf(t, ref.EncodeToString(encoderTest), encoded, "%v", e)
			require.Equal(t, ref.EncodedLen(len(encoderTest)), e.EncodedLen(len(encoderTest)))
		}
	}
}

func Test_Base64KnownValues(t *testing.T) {
	values := []struct {
		e       Encoder
		raw     string
		encoded string
	}{
		{Base64Encoding, "Man", "TWFu"},
		{Base64Encoding, "Ma", "TWE="},
		{Base64Encoding, "M", "TQ=="},
		{Base64URLEncoding, "Ma", "TWE="},
		{Base64URLNoPadEncoding, "Ma", "TWE"},
		{Base64URLNoPadEncoding, "M", "TQ"},
		{Base64Encoding, "\xfb\xff", "+/8="},
		{Base64URLEncoding, "\xfb\xff", "-_8="},
	}
	for _, v := range values {
		encoded, err := EncodeToString(v.e, []byte(v.raw))
		require.NoError(t, err)
		require.Equal(t, v.encoded, encoded)

		decoded, err := DecodeString(v.e, v.encoded)
		require.NoError(t, err)
		require.Equal(t, v.raw, string(decoded))
	}
}

func Test_Base64AlphabetsAreDistinct(t *testing.T) {
	_, err := DecodeString(Base64Encoding, "-_8=")
	require.True(t, errors.Is(err, ErrInvalidCharacter))

	_, err = DecodeString(Base64URLEncoding, "+/8=")
	require.True(t, errors.Is(err, ErrInvalidCharacter))
}

func Test_Base64Malformed(t *testing.T) {
	for _, s := range []string{"TWE", "TWFuT", "T==="} {
		_, err := DecodeString(Base64Encoding, s)
		require.Truef(t, errors.Is(err, ErrMalformedLength), "%q: %v", s, err)
	}
	for _, s := range []string{"T", "TWFuT"} {
		_, err := DecodeString(Base64URLNoPadEncoding, s)
		require.Truef(t, errors.Is(err, ErrMalformedLength), "%q: %v", s, err)
	}
}

func Test_Base64Padding(t *testing.T) {
	_, err := DecodeString(Base64Encoding, "TQ==TWFu")
	require.True(t, errors.Is(err, ErrInvalidCharacter))

	_, err = DecodeString(Base64Encoding, "T=E=")
	require.True(t, errors.Is(err, ErrInvalidCharacter))

	decoded, err := DecodeString(Base64URLNoPadEncoding, "TWE=")
	require.NoError(t, err)
	require.Equal(t, "Ma", string(decoded))
}
