package bits

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/nspcc-dev/reqasm-go/cli/cmdargs"
	"github.com/nspcc-dev/reqasm-go/cli/options"
	"github.com/nspcc-dev/reqasm-go/pkg/bitstr"
	"github.com/nspcc-dev/reqasm-go/pkg/io"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

var bitFlags = []cli.Flag{
	cli.IntFlag{
		Name:  "length, n",
		Usage: "number of bits to use (all given bits by default)",
	},
	cli.BoolFlag{
		Name:  "pad, p",
		Usage: "pad bits with zeroes up to --length instead of failing",
	},
}

// reduction is a single bit-string reducer exposed as a subcommand.
type reduction struct {
	name  string
	usage string
	fn    func(*bitstr.BitString) string
}

var reductions = []reduction{
	{"show", "Print the bit-string", (*bitstr.BitString).String},
	{"count", "Print the number of set bits", func(b *bitstr.BitString) string {
		return fmt.Sprint(b.Count())
	}},
	{"dec", "Print the little-endian decimal value", func(b *bitstr.BitString) string {
		return b.DecimalValue().String()
	}},
	{"or", "Print 1 if any bit is set, 0 otherwise", func(b *bitstr.BitString) string {
		return boolString(b.Or())
	}},
	{"xor", "Print the parity of the bit-string", func(b *bitstr.BitString) string {
		return boolString(b.Xor())
	}},
	{"and", "Print 1 if all bits are set, 0 otherwise", func(b *bitstr.BitString) string {
		return boolString(b.And())
	}},
}

// NewCommands returns 'bits' command.
func NewCommands() []cli.Command {
	var subs []cli.Command
	for _, r := range reductions {
		subs = append(subs, cli.Command{
			Name:      r.name,
			Usage:     r.usage,
			UsageText: "bits " + r.name + " [--length <n> [--pad]] <bits>",
			Description: `Builds a bit-string from the given bits and prints the result.

` + cmdargs.BitsParsingDoc,
			Action: newReductionAction(r),
			Flags:  bitFlags,
		})
	}
	subs = append(subs, cli.Command{
		Name:      "all",
		Usage:     "Print all reductions of the bit-string",
		UsageText: "bits all [--length <n> [--pad]] [--json] <bits>",
		Description: `Prints the bit-string, its length and the results of all reductions.

` + cmdargs.BitsParsingDoc,
		Action: handleAll,
		Flags: append([]cli.Flag{
			cli.BoolFlag{
				Name:  "json",
				Usage: "output JSON",
			},
		}, bitFlags...),
	})
	subs = append(subs, cli.Command{
		Name:      "encode",
		Usage:     "Print hex-encoded binary form of the bit-string",
		UsageText: "bits encode [--length <n> [--pad]] <bits>",
		Description: `Serializes the bit-string as its length (variable-length integer) followed
   by bits packed into bytes starting from the lowest bit of the first byte.

` + cmdargs.BitsParsingDoc,
		Action: handleEncode,
		Flags:  bitFlags,
	}, cli.Command{
		Name:      "decode",
		Usage:     "Print the bit-string from its hex-encoded binary form",
		UsageText: "bits decode <hex>",
		Action:    handleDecode,
	})
	return []cli.Command{{
		Name:        "bits",
		Usage:       "Bit-string conversions and reductions",
		Subcommands: subs,
	}}
}

func boolString(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func newReductionAction(r reduction) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		env, closer, exitErr := options.GetEnv(ctx)
		if exitErr != nil {
			return exitErr
		}
		defer closer()

		b, exitErr := cmdargs.GetBitStringFromContext(ctx)
		if exitErr != nil {
			return exitErr
		}
		res := r.fn(b)
		env.Log.Debug("bit-string reduction",
			zap.String("op", r.name),
			zap.Stringer("bits", b),
			zap.String("result", res))
		fmt.Fprintln(ctx.App.Writer, res)
		return nil
	}
}

// Summary is the JSON form of 'bits all' output. Uint256 is the hex form
// of the value, empty if it doesn't fit into 256 bits.
type Summary struct {
	Bits    *bitstr.BitString `json:"bits"`
	Length  int               `json:"length"`
	Count   int               `json:"count"`
	Dec     string            `json:"dec"`
	Or      bool              `json:"or"`
	Xor     bool              `json:"xor"`
	And     bool              `json:"and"`
	Uint256 string            `json:"uint256,omitempty"`
}

// NewSummary computes all reductions of b.
func NewSummary(b *bitstr.BitString) Summary {
	s := Summary{
		Bits:   b,
		Length: b.Len(),
		Count:  b.Count(),
		Dec:    b.DecimalValue().String(),
		Or:     b.Or(),
		Xor:    b.Xor(),
		And:    b.And(),
	}
	if u, err := b.Uint256(); err == nil {
		s.Uint256 = u.Hex()
	}
	return s
}

func handleAll(ctx *cli.Context) error {
	env, closer, exitErr := options.GetEnv(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer closer()

	b, exitErr := cmdargs.GetBitStringFromContext(ctx)
	if exitErr != nil {
		return exitErr
	}
	env.Log.Debug("bit-string summary", zap.Stringer("bits", b))
	s := NewSummary(b)
	if ctx.Bool("json") {
		data, err := json.Marshal(s)
		if err != nil {
			return cli.NewExitError(fmt.Errorf("failed to marshal JSON: %w", err), 1)
		}
		fmt.Fprintln(ctx.App.Writer, string(data))
		return nil
	}

	buf := bytes.NewBuffer(nil)
	w := tabwriter.NewWriter(buf, 0, 4, 4, '\t', 0)
	fmt.Fprintf(w, "bits\t%s\n", b)
	fmt.Fprintf(w, "length\t%d\n", s.Length)
	fmt.Fprintf(w, "count\t%d\n", s.Count)
	fmt.Fprintf(w, "dec\t%s\n", s.Dec)
	fmt.Fprintf(w, "or\t%s\n", boolString(s.Or))
	fmt.Fprintf(w, "xor\t%s\n", boolString(s.Xor))
	fmt.Fprintf(w, "and\t%s\n", boolString(s.And))
	if s.Uint256 != "" {
		fmt.Fprintf(w, "uint256\t%s\n", s.Uint256)
	}
	if err := w.Flush(); err != nil {
		return cli.NewExitError(err, 1)
	}
	_, err := ctx.App.Writer.Write(buf.Bytes())
	return err
}

func handleEncode(ctx *cli.Context) error {
	b, exitErr := cmdargs.GetBitStringFromContext(ctx)
	if exitErr != nil {
		return exitErr
	}
	w := io.NewBufBinWriter()
	b.EncodeBinary(w.BinWriter)
	if w.Err != nil {
		return cli.NewExitError(w.Err, 1)
	}
	fmt.Fprintln(ctx.App.Writer, hex.EncodeToString(w.Bytes()))
	return nil
}

func handleDecode(ctx *cli.Context) error {
	if len(ctx.Args()) != 1 {
		return cli.NewExitError(fmt.Errorf("%w: exactly one hex string is required", cmdargs.ErrNoArguments), 1)
	}
	data, err := hex.DecodeString(ctx.Args().First())
	if err != nil {
		return cli.NewExitError(fmt.Errorf("invalid hex: %w", err), 1)
	}
	r := io.NewBinReaderFromBuf(data)
	b := new(bitstr.BitString)
	b.DecodeBinary(r)
	if r.Err != nil {
		return cli.NewExitError(fmt.Errorf("failed to decode bit-string: %w", r.Err), 1)
	}
	fmt.Fprintln(ctx.App.Writer, b)
	return nil
}
