package version

import (
	"bytes"
	"os"
	"testing"

	"bou.ke/monkey"
	"github.com/bokysan/baseconv/internal/version"
	"github.com/stretchr/testify/require"
)

func Test_ShortVersion(t *testing.T) {
	defer func(v string) { version.Version = v }(version.Version)
	version.Version = "1.2.3"

	out := &bytes.Buffer{}
	c := &Command{Short: true, out: out}
	require.NoError(t, c.Execute(nil))
	require.Equal(t, "1.2.3\n", out.String())
}

func Test_FullVersion(t *testing.T) {
	defer func(v string) { version.GitBranch = v }(version.GitBranch)
	version.GitBranch = "main"

	var exitCode = -1
	patch := monkey.Patch(os.Exit, func(i int) {
		exitCode = i
	})
	defer patch.Unpatch()

	out := &bytes.Buffer{}
	c := &Command{out: out}
	require.NoError(t, c.Execute(nil))
	require.Equal(t, 0, exitCode)
	require.Contains(t, out.String(), "BASECONV")
	require.Contains(t, out.String(), "main")
	require.NotContains(t, out.String(), "Git tag")
}
