package demo

import (
	"bytes"
	"testing"

	"github.com/nspcc-dev/reqasm-go/cli/options"
	"github.com/nspcc-dev/reqasm-go/pkg/config"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
	"go.uber.org/zap/zaptest"
)

const expected = `1001100110
0000000000
1111111111
0 1 1
0 0 0
1 1 0
0 0 0
409 5
7 26
`

func TestRun(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	require.NoError(t, Run(buf))
	require.Equal(t, expected, buf.String())
}

func TestDemoCommand(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	app := cli.NewApp()
	app.Writer = buf
	app.ErrWriter = buf
	app.ExitErrHandler = func(*cli.Context, error) {}
	app.Commands = NewCommands()
	app.Metadata = map[string]any{
		options.EnvKey: &options.Env{Config: config.Default(), Log: zaptest.NewLogger(t)},
	}

	require.NoError(t, app.Run([]string{"reqasm", "demo"}))
	require.Equal(t, expected, buf.String())

	require.Error(t, app.Run([]string{"reqasm", "demo", "extra"}))
}
