/*
Package shell implements an interactive REQASM prompt running regular CLI
commands line by line.
*/
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/nspcc-dev/reqasm-go/cli/options"
	"github.com/nspcc-dev/reqasm-go/pkg/config"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

const (
	exitFuncKey         = "exitFunc"
	readlineInstanceKey = "readlineKey"
	printLogoKey        = "printLogoKey"
)

// Prompt is the default shell prompt.
const Prompt = "reqasm> "

var exitCommand = cli.Command{
	Name:        "exit",
	Usage:       "Exit the shell",
	Description: "Exit the shell",
	Action:      handleExit,
}

// Shell is an interactive prompt for REQASM commands.
type Shell struct {
	app    *cli.App
	exited bool
}

// NewCommands returns 'shell' command that runs the given commands
// interactively.
func NewCommands(commands []cli.Command) []cli.Command {
	return []cli.Command{{
		Name:  "shell",
		Usage: "Start interactive REQASM prompt",
		Description: `Reads commands line by line and executes them. All the regular commands
   are available without the program name, use "exit" or Ctrl-D to quit.`,
		Action: func(ctx *cli.Context) error {
			return startShell(ctx, commands)
		},
	}}
}

func startShell(ctx *cli.Context, commands []cli.Command) error {
	env, closer, exitErr := options.GetEnv(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer closer()

	shellCfg := env.Config.ApplicationConfiguration.Shell
	sh, err := NewWithConfig(shellCfg.PrintLogo, os.Exit, &readline.Config{
		Prompt:      Prompt,
		HistoryFile: shellCfg.HistoryFile,
	}, env, commands)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	if err := sh.Run(); err != nil {
		return cli.NewExitError(err, 1)
	}
	return nil
}

// NewCompleter returns prefix completer offering command and subcommand
// names and long flag names.
func NewCompleter(commands []cli.Command) *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(completerItems(commands)...)
}

func completerItems(commands []cli.Command) []readline.PrefixCompleterInterface {
	var pcItems []readline.PrefixCompleterInterface
	for _, c := range commands {
		if c.Hidden {
			continue
		}
		items := completerItems(c.Subcommands)
		for _, f := range c.Flags {
			names := strings.SplitN(f.GetName(), ", ", 2) // only long name will be offered
			items = append(items, readline.PcItem("--"+names[0]))
		}
		pcItems = append(pcItems, readline.PcItem(c.Name, items...))
	}
	return pcItems
}

// NewWithConfig returns new Shell instance running commands with the given
// Env. onExit is called by the "exit" command.
func NewWithConfig(printLogotype bool, onExit func(int), c *readline.Config, env *options.Env, commands []cli.Command) (*Shell, error) {
	all := append([]cli.Command{exitCommand}, commands...)
	if c.AutoComplete == nil {
		// Autocomplete commands/flags on TAB.
		c.AutoComplete = NewCompleter(all)
	}
	l, err := readline.NewEx(c)
	if err != nil {
		return nil, fmt.Errorf("failed to create readline instance: %w", err)
	}
	ctl := cli.NewApp()
	ctl.Name = "REQASM shell"

	// Note: need to set empty `ctl.HelpName` and `ctl.UsageText`, otherwise
	// `filepath.Base(os.Args[0])` will be used.
	ctl.HelpName = ""
	ctl.UsageText = ""

	ctl.Writer = l.Stdout()
	ctl.ErrWriter = l.Stderr()
	ctl.Version = config.Version
	ctl.Usage = "Interactive REQASM prompt"

	// Override default error handler in order not to exit on error.
	ctl.ExitErrHandler = func(context *cli.Context, err error) {}

	ctl.Commands = all
	sh := &Shell{app: ctl}
	exitF := func(i int) {
		sh.exited = true
		onExit(i)
	}
	ctl.Metadata = map[string]any{
		options.EnvKey:      env,
		exitFuncKey:         exitF,
		readlineInstanceKey: l,
		printLogoKey:        printLogotype,
	}
	return sh, nil
}

func getExitFuncFromContext(app *cli.App) func(int) {
	return app.Metadata[exitFuncKey].(func(int))
}

func getReadlineInstanceFromContext(app *cli.App) *readline.Instance {
	return app.Metadata[readlineInstanceKey].(*readline.Instance)
}

func getPrintLogoFromContext(app *cli.App) bool {
	return app.Metadata[printLogoKey].(bool)
}

func handleExit(c *cli.Context) error {
	l := getReadlineInstanceFromContext(c.App)
	_ = l.Close()
	exit := getExitFuncFromContext(c.App)
	fmt.Fprintln(c.App.Writer, "Bye!")
	exit(0)
	return nil
}

// Run waits for user input from Stdin and executes the passed command.
func (s *Shell) Run() error {
	if getPrintLogoFromContext(s.app) {
		printLogo(s.app.Writer)
	}
	env := s.app.Metadata[options.EnvKey].(*options.Env)
	l := getReadlineInstanceFromContext(s.app)
	for {
		line, err := l.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return nil // OK, stop execution.
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err) // Critical error, stop execution.
		}

		args, err := shellquote.Split(line)
		if err != nil {
			writeErr(s.app.ErrWriter, fmt.Errorf("failed to parse arguments: %w", err))
			continue // Not a critical error, continue execution.
		}
		if len(args) == 0 {
			continue
		}
		env.Log.Debug("shell command", zap.Strings("args", args))

		err = s.app.Run(append([]string{"reqasm"}, args...))
		if err != nil {
			writeErr(s.app.ErrWriter, err) // Various command/flags parsing errors and execution errors.
		}
		if s.exited {
			return nil
		}
	}
}

const logo = `
 ____  _____ ___    _    ____  __  __
|  _ \| ____/ _ \  / \  / ___||  \/  |
| |_) |  _|| | | |/ _ \ \___ \| |\/| |
|  _ <| |__| |_| / ___ \ ___) | |  | |
|_| \_\_____\__\_\/_/  \_\____/|_|  |_|
`

func printLogo(w io.Writer) {
	fmt.Fprint(w, logo)
	fmt.Fprintln(w)
	fmt.Fprintln(w)
}

func writeErr(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %s\n", err)
}
