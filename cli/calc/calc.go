package calc

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/nspcc-dev/reqasm-go/cli/cmdargs"
	"github.com/nspcc-dev/reqasm-go/cli/options"
	"github.com/nspcc-dev/reqasm-go/pkg/classical"
	"github.com/nspcc-dev/reqasm-go/pkg/intmath"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

// NewCommands returns 'log' and 'call' commands.
func NewCommands() []cli.Command {
	logFuncs := []struct {
		name  string
		usage string
		fn    func(int, int) (int, error)
	}{
		{"floor", "Print floor(log_base(value))", intmath.FloorLog},
		{"ceil", "Print ceil(log_base(value))", intmath.CeilLog},
		{"rem", "Print value minus the largest power of base not exceeding it", intmath.PowRem},
	}
	var logCmds []cli.Command
	for _, f := range logFuncs {
		logCmds = append(logCmds, cli.Command{
			Name:      f.name,
			Usage:     f.usage,
			UsageText: "log " + f.name + " <value> <base>",
			Description: `Both arguments are decimal integers, value must be at least 1 and base
   must be at least 2.`,
			Action: newLogAction(f.name, f.fn),
		})
	}
	var funcs strings.Builder
	w := tabwriter.NewWriter(&funcs, 0, 4, 2, ' ', 0)
	for _, name := range classical.Names() {
		help, nargs, _ := classical.Help(name)
		args := "<bits...>"
		if nargs >= 0 {
			args = strings.TrimSpace(strings.Repeat("<int> ", nargs))
		}
		fmt.Fprintf(w, "    %s %s\t%s\n", name, args, help)
	}
	_ = w.Flush()

	return []cli.Command{
		{
			Name:        "log",
			Usage:       "Integer logarithm helpers",
			Subcommands: logCmds,
		},
		{
			Name:      "call",
			Usage:     "Call REQASM classical function",
			UsageText: "call <function> [<args>...]",
			Description: `Calls one of the REQASM classical functions with the given integer
   arguments and prints the result (booleans are printed as 1 or 0).
   Available functions:

` + funcs.String(),
			Action:          handleCall,
			SkipFlagParsing: true,
		},
	}
}

func newLogAction(name string, fn func(int, int) (int, error)) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		env, closer, exitErr := options.GetEnv(ctx)
		if exitErr != nil {
			return exitErr
		}
		defer closer()

		if len(ctx.Args()) != 2 {
			return cli.NewExitError(fmt.Errorf("%w: value and base are required", cmdargs.ErrNoArguments), 1)
		}
		args, err := cmdargs.ParseInts(ctx.Args())
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		res, err := fn(args[0], args[1])
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		env.Log.Debug("integer log",
			zap.String("op", name),
			zap.Int("value", args[0]),
			zap.Int("base", args[1]),
			zap.Int("result", res))
		fmt.Fprintln(ctx.App.Writer, res)
		return nil
	}
}

func handleCall(ctx *cli.Context) error {
	env, closer, exitErr := options.GetEnv(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer closer()

	if !ctx.Args().Present() {
		return cli.NewExitError(fmt.Errorf("%w: function name is required", cmdargs.ErrNoArguments), 1)
	}
	name := ctx.Args().First()
	args, err := parseCallArgs(name, ctx.Args().Tail())
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	res, err := classical.Call(name, args)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	env.Log.Debug("function call",
		zap.String("function", name),
		zap.Ints("args", args),
		zap.Stringer("result", res))
	fmt.Fprintln(ctx.App.Writer, res)
	return nil
}

// parseCallArgs lets bit-string functions take a digit string argument.
func parseCallArgs(name string, args []string) ([]int, error) {
	if _, nargs, ok := classical.Help(name); ok && nargs < 0 {
		return cmdargs.ParseBits(args)
	}
	return cmdargs.ParseInts(args)
}
