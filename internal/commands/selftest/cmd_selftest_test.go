package selftest

import (
	"testing"

	"github.com/bokysan/baseconv/internal/util/enc"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// brokenEncoder drops the last byte on decode
type brokenEncoder struct {
	*enc.Base16Encoder
}

func (b *brokenEncoder) Decode(dst, src []byte) (int, error) {
	n, err := b.Base16Encoder.Decode(dst, src)
	if n > 0 {
		n--
	}
	return n, err
}

func Test_CheckAll(t *testing.T) {
	for _, e := range enc.All() {
		require.NoErrorf(t, Check(e), "%v", e)
	}
}

func Test_CheckBroken(t *testing.T) {
	e := &brokenEncoder{Base16Encoder: enc.Base16UpperEncoding}
	err := Check(e)
	require.Error(t, err)

	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	require.Equal(t, len(e.TestPatterns()), merr.Len())
}

func Test_Execute(t *testing.T) {
	c := &Command{}
	c.Args.Variants = []string{"base58,base85_z85", "base32_std"}
	require.NoError(t, c.Execute(nil))

	c.Args.Variants = []string{"base62"}
	require.True(t, errors.Is(c.Execute(nil), enc.ErrInvalidArgument))
}
