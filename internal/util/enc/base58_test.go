package enc

import (
	"testing"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func Test_Base58Encoder(t *testing.T) {
	for _, encoderTest := range encoderTests {
		encoded, err := EncodeToString(Base58Encoding, encoderTest)
		require.NoError(t, err)
		require.Equal(t, base58.Encode(encoderTest), encoded)

		decoded, err := DecodeString(Base58Encoding, encoded)
		require.NoError(t, err)
		require.Equal(t, encoderTest, decoded)
	}
}

func Test_Base58AgainstReference(t *testing.T) {
	for n := 1; n < 100; n++ {
		data := randomBytes(int64(n)*7, n)
		if n%5 == 0 {
			data[0] = 0
		}
		encoded, err := EncodeToString(Base58Encoding, data)
		require.NoError(t, err)
		require.Equal(t, base58.Encode(data), encoded)
	}
}

func Test_Base58KnownValues(t *testing.T) {
	values := map[string][]byte{
		"1":               {0x00},
		"112":             {0x00, 0x00, 0x01},
		"111":             {0x00, 0x00, 0x00},
		"5Q":              {0xff},
		"StV1DL6CwTryKyV": []byte("hello world"),
	}
	for encoded, raw := range values {
		res, err := EncodeToString(Base58Encoding, raw)
		require.NoError(t, err)
		require.Equal(t, encoded, res)

		decoded, err := DecodeString(Base58Encoding, encoded)
		require.NoError(t, err)
		require.Equal(t, raw, decoded)
	}
}

func Test_Base58RequiredSize(t *testing.T) {
	raw := []byte("hello world")
	_, err := Base58Encoding.Encode(make([]byte, 3), raw)
	require.True(t, errors.Is(err, ErrInsufficientCapacity))

	var ce *CapacityError
	require.True(t, errors.As(err, &ce))
	require.Equal(t, len("StV1DL6CwTryKyV"), ce.Required)

	dst := make([]byte, ce.Required)
	n, err := Base58Encoding.Encode(dst, raw)
	require.NoError(t, err)
	require.Equal(t, "StV1DL6CwTryKyV", string(dst[:n]))
}

func Test_Base58InvalidCharacter(t *testing.T) {
	for _, s := range []string{"0", "StV1DL6CwTryKyO", "I", "l", "1 1"} {
		_, err := DecodeString(Base58Encoding, s)
		require.Truef(t, errors.Is(err, ErrInvalidCharacter), "%q: %v", s, err)
	}
}
