package list

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bokysan/baseconv/internal/util/enc"
	"github.com/stretchr/testify/require"
)

func Test_ListPlain(t *testing.T) {
	out := &bytes.Buffer{}
	c := &Command{Plain: true, out: out}
	require.NoError(t, c.Execute(nil))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, len(enc.All()))
	require.Contains(t, lines, "base85_z85")
	require.Contains(t, lines, "base64_url_nopad")
}

func Test_ListTable(t *testing.T) {
	out := &bytes.Buffer{}
	c := &Command{out: out}
	require.NoError(t, c.Execute(nil))
	require.Contains(t, out.String(), "base58")
	require.Contains(t, out.String(), "1.25")
}
