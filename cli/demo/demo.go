package demo

import (
	"fmt"
	"io"

	"github.com/nspcc-dev/reqasm-go/cli/cmdargs"
	"github.com/nspcc-dev/reqasm-go/cli/options"
	"github.com/nspcc-dev/reqasm-go/pkg/bitstr"
	"github.com/nspcc-dev/reqasm-go/pkg/intmath"
	"github.com/urfave/cli"
)

// Sample is the demonstration bit-string. Only nine values are listed in
// the classic demo for a ten-bit register, the last one is an explicit 0.
var Sample = []int{1, 0, 0, 1, 1, 0, 0, 1, 1, 0}

// NewCommands returns 'demo' command.
func NewCommands() []cli.Command {
	return []cli.Command{{
		Name:  "demo",
		Usage: "Print sample bit-strings with their reductions",
		Description: `Builds sample, all-zero and all-one ten-bit strings and prints them
   followed by "and or xor" reductions of each one (and of the conjunction
   of the all-one and all-zero results), the decimal value and the number
   of set bits of the sample and floor log and power remainder of 154 and 2.`,
		Action: handleDemo,
	}}
}

func handleDemo(ctx *cli.Context) error {
	if err := cmdargs.EnsureNone(ctx); err != nil {
		return err
	}
	env, closer, exitErr := options.GetEnv(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer closer()

	env.Log.Debug("running demo")
	if err := Run(ctx.App.Writer); err != nil {
		return cli.NewExitError(err, 1)
	}
	return nil
}

// Run writes demonstration output to w.
func Run(w io.Writer) error {
	n := len(Sample)
	sample, err := bitstr.FromBits(Sample)
	if err != nil {
		return err
	}
	zero, err := bitstr.New(make([]int, n), n)
	if err != nil {
		return err
	}
	ones := make([]int, n)
	for i := range ones {
		ones[i] = 1
	}
	one, err := bitstr.FromBits(ones)
	if err != nil {
		return err
	}

	for _, b := range []*bitstr.BitString{sample, zero, one} {
		fmt.Fprintln(w, b)
	}
	for _, b := range []*bitstr.BitString{sample, zero, one} {
		fmt.Fprintln(w, b01(b.And()), b01(b.Or()), b01(b.Xor()))
	}
	fmt.Fprintln(w,
		b01(one.And() && zero.And()),
		b01(one.Or() && zero.Or()),
		b01(one.Xor() && zero.Xor()))
	fmt.Fprintln(w, sample.DecimalValue(), sample.Count())

	fl, err := intmath.FloorLog(154, 2)
	if err != nil {
		return err
	}
	rem, err := intmath.PowRem(154, 2)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, fl, rem)
	return err
}

func b01(b bool) int {
	if b {
		return 1
	}
	return 0
}
