package cmdargs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/nspcc-dev/reqasm-go/pkg/bitstr"
	"github.com/urfave/cli"
)

const (
	// BitsParsingDoc is a documentation for bit arguments parsing.
	BitsParsingDoc = `   Bits can be given either as a single string of '0' and '1' characters
   (like 1001100110) or as separate space-delimited 0/1 arguments (like
   1 0 0 1). The first bit is the least significant one for decimal
   conversion. Any other value is an error.`
)

// ErrNoArguments is returned when the command needs at least one argument.
var ErrNoArguments = errors.New("not enough arguments")

// ParseBits converts command line arguments into 0/1 integers. A single
// multi-character argument is treated as a digit string (see
// BitsParsingDoc). Values are not range-checked here, it's done when a
// bit-string is created.
func ParseBits(args []string) ([]int, error) {
	if len(args) == 1 && len(args[0]) > 1 {
		b, err := bitstr.Parse(args[0])
		if err != nil {
			return nil, err
		}
		return b.Bits(), nil
	}
	return ParseInts(args)
}

// ParseInts converts all arguments into decimal integers.
func ParseInts(args []string) ([]int, error) {
	res := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		res[i] = v
	}
	return res, nil
}

// GetBitStringFromContext parses bits from the command arguments and creates
// a bit-string of them using the "length" and "pad" flags if present.
func GetBitStringFromContext(ctx *cli.Context) (*bitstr.BitString, *cli.ExitError) {
	bits, err := ParseBits(ctx.Args())
	if err != nil {
		return nil, cli.NewExitError(fmt.Errorf("failed to parse bits: %w", err), 1)
	}
	n := len(bits)
	if ctx.IsSet("length") {
		n = ctx.Int("length")
		if ctx.Bool("pad") && n > len(bits) {
			bits = append(bits, make([]int, n-len(bits))...)
		}
	}
	b, err := bitstr.New(bits, n)
	if err != nil {
		return nil, cli.NewExitError(err, 1)
	}
	return b, nil
}

// EnsureNone returns an error if there are any positional arguments present.
func EnsureNone(ctx *cli.Context) *cli.ExitError {
	if ctx.Args().Present() {
		return cli.NewExitError("additional arguments given while this command expects none", 1)
	}
	return nil
}
