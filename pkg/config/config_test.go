package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, data string) string {
	p := filepath.Join(t.TempDir(), "cfg.yml")
	require.NoError(t, os.WriteFile(p, []byte(data), 0644))
	return p
}

func TestLoadFile(t *testing.T) {
	t.Run("repository config", func(t *testing.T) {
		cfg, err := LoadFile(filepath.Join("..", "..", "config", "reqasm.yml"))
		require.NoError(t, err)
		require.Equal(t, "info", cfg.ApplicationConfiguration.LogLevel)
		require.Equal(t, DefaultMaxQubits, cfg.ApplicationConfiguration.MaxQubits)
	})
	t.Run("missing", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yml"))
		require.ErrorContains(t, err, "doesn't exist")
	})
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadFile(writeConfig(t, `
ApplicationConfiguration:
  LogPath: /tmp/reqasm.log
  Shell:
    PrintLogo: true
`))
		require.NoError(t, err)
		exp := Default()
		exp.ApplicationConfiguration.LogPath = "/tmp/reqasm.log"
		exp.ApplicationConfiguration.Shell.PrintLogo = true
		require.Equal(t, exp, cfg)
	})
	t.Run("unknown field", func(t *testing.T) {
		_, err := LoadFile(writeConfig(t, `
ApplicationConfiguration:
  LogLevel: debug
  Unknown: 1
`))
		require.Error(t, err)
	})
	t.Run("bad level", func(t *testing.T) {
		_, err := LoadFile(writeConfig(t, `
ApplicationConfiguration:
  LogLevel: loud
`))
		require.ErrorContains(t, err, "LogLevel")
	})
	t.Run("bad qubits", func(t *testing.T) {
		_, err := LoadFile(writeConfig(t, `
ApplicationConfiguration:
  MaxQubits: 0
`))
		require.ErrorContains(t, err, "MaxQubits")
		_, err = LoadFile(writeConfig(t, `
ApplicationConfiguration:
  MaxQubits: 100
`))
		require.ErrorContains(t, err, "MaxQubits")
	})
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.ApplicationConfiguration.Validate())
}
