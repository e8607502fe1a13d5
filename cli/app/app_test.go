package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
)

func run(t *testing.T, args ...string) (string, error) {
	buf := bytes.NewBuffer(nil)
	ctl := New()
	ctl.Writer = buf
	ctl.ErrWriter = buf
	ctl.ExitErrHandler = func(*cli.Context, error) {}
	err := ctl.Run(append([]string{"reqasm"}, args...))
	return buf.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "--version")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "REQASM\nVersion: "))
}

func TestCommands(t *testing.T) {
	ctl := New()
	var names []string
	for _, c := range ctl.Commands {
		names = append(names, c.Name)
	}
	require.Equal(t, []string{"bits", "log", "call", "gate", "demo", "shell"}, names)
}

func TestGlobalFlags(t *testing.T) {
	out, err := run(t, "--debug", "bits", "count", "1001100110")
	require.NoError(t, err)
	require.Equal(t, "5\n", out)

	t.Run("config file", func(t *testing.T) {
		cfgPath := filepath.Join(t.TempDir(), "reqasm.yml")
		require.NoError(t, os.WriteFile(cfgPath, []byte(`ApplicationConfiguration:
  LogLevel: warn
  MaxQubits: 1
`), 0o644))

		out, err := run(t, "--config-file", cfgPath, "gate", "--no-sim", "U 0 0 0 0")
		require.NoError(t, err)
		require.Equal(t, 3, len(strings.Split(strings.TrimSpace(out), "\n")))

		_, err = run(t, "--config-file", cfgPath, "gate", "CX 0 1")
		require.ErrorContains(t, err, "configured limit")
	})
	t.Run("missing config file", func(t *testing.T) {
		_, err := run(t, "--config-file", filepath.Join(t.TempDir(), "none.yml"), "demo")
		require.Error(t, err)
	})
}
