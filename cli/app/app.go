package app

import (
	"fmt"
	"os"
	"runtime"

	"github.com/nspcc-dev/reqasm-go/cli/bits"
	"github.com/nspcc-dev/reqasm-go/cli/calc"
	"github.com/nspcc-dev/reqasm-go/cli/circuit"
	"github.com/nspcc-dev/reqasm-go/cli/demo"
	"github.com/nspcc-dev/reqasm-go/cli/options"
	"github.com/nspcc-dev/reqasm-go/cli/shell"
	"github.com/nspcc-dev/reqasm-go/pkg/config"
	"github.com/urfave/cli"
)

func versionPrinter(c *cli.Context) {
	_, _ = fmt.Fprintf(c.App.Writer, "REQASM\nVersion: %s\nGoVersion: %s\n",
		config.Version,
		runtime.Version(),
	)
}

// Commands returns all commands available both from the command line and
// from the interactive shell.
func Commands() []cli.Command {
	var cmds []cli.Command
	cmds = append(cmds, bits.NewCommands()...)
	cmds = append(cmds, calc.NewCommands()...)
	cmds = append(cmds, circuit.NewCommands()...)
	cmds = append(cmds, demo.NewCommands()...)
	return cmds
}

// New creates a REQASM instance of [cli.App] with all commands included.
func New() *cli.App {
	cli.VersionPrinter = versionPrinter
	ctl := cli.NewApp()
	ctl.Name = "reqasm"
	ctl.Version = config.Version
	ctl.Usage = "REQASM classical runtime helpers"
	ctl.ErrWriter = os.Stdout
	ctl.Flags = []cli.Flag{options.Config, options.Debug}

	ctl.Commands = append(ctl.Commands, Commands()...)
	ctl.Commands = append(ctl.Commands, shell.NewCommands(Commands())...)
	return ctl
}
