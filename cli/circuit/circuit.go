package circuit

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/nspcc-dev/reqasm-go/cli/cmdargs"
	"github.com/nspcc-dev/reqasm-go/cli/options"
	"github.com/nspcc-dev/reqasm-go/pkg/gate"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

// ErrInvalidGate is returned for gates that can't be parsed.
var ErrInvalidGate = errors.New("invalid gate")

// NewCommands returns 'gate' command.
func NewCommands() []cli.Command {
	return []cli.Command{{
		Name:      "gate",
		Usage:     "Decompose gates into engine primitives and simulate them",
		UsageText: "gate [--qubits <n>] [--no-sim] <gate>...",
		Description: `Each <gate> is a single argument (quote it) of one of the forms:
     U <q> <theta> <phi> <lambda>
     INVU <q> <theta> <phi> <lambda>
     CX <control> <target>
   Angles are in radians and can also be written as [-]pi[/<n>]. The
   command prints the sequence of rotateZ/rotateX/controlledNot calls
   and then the probability of measuring 1 on every qubit of a register
   initialized to zero.

   Example:
     gate "U 0 pi 0 0" "CX 0 1"`,
		Action: handleGate,
		Flags: []cli.Flag{
			cli.IntFlag{
				Name:  "qubits, q",
				Usage: "number of qubits (enough for all used indices by default)",
			},
			cli.BoolFlag{
				Name:  "no-sim",
				Usage: "only print primitives, don't simulate",
			},
		},
	}}
}

// ParseAngle parses a float or a [-]pi[/n] angle.
func ParseAngle(s string) (float64, error) {
	var sign = 1.0
	ls := strings.ToLower(s)
	if strings.HasPrefix(ls, "-") {
		sign, ls = -1, ls[1:]
	}
	if strings.HasPrefix(ls, "pi") {
		rest := ls[2:]
		if rest == "" {
			return sign * math.Pi, nil
		}
		if !strings.HasPrefix(rest, "/") {
			return 0, fmt.Errorf("%w: bad angle %q", ErrInvalidGate, s)
		}
		d, err := strconv.ParseFloat(rest[1:], 64)
		if err != nil || d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return 0, fmt.Errorf("%w: bad angle %q", ErrInvalidGate, s)
		}
		return sign * math.Pi / d, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: bad angle %q", ErrInvalidGate, s)
	}
	return v, nil
}

// Gate is a parsed U, INVU or CX gate.
type Gate struct {
	Name   string
	Qubits []int
	Angles []float64
}

// ParseGate parses a single gate description.
func ParseGate(s string) (Gate, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Gate{}, fmt.Errorf("%w: empty", ErrInvalidGate)
	}
	var (
		g      = Gate{Name: strings.ToUpper(fields[0])}
		nq, na int
	)
	switch g.Name {
	case "U", "INVU":
		nq, na = 1, 3
	case "CX":
		nq, na = 2, 0
	default:
		return Gate{}, fmt.Errorf("%w: unknown gate %s", ErrInvalidGate, fields[0])
	}
	if len(fields) != 1+nq+na {
		return Gate{}, fmt.Errorf("%w: %s expects %d arguments, got %d", ErrInvalidGate, g.Name, nq+na, len(fields)-1)
	}
	qs, err := cmdargs.ParseInts(fields[1 : 1+nq])
	if err != nil {
		return Gate{}, fmt.Errorf("%w: %s", ErrInvalidGate, err)
	}
	for _, q := range qs {
		if q < 0 || q >= gate.MaxQubits {
			return Gate{}, fmt.Errorf("%w: qubit index %d out of range [0:%d)", ErrInvalidGate, q, gate.MaxQubits)
		}
	}
	if nq == 2 && qs[0] == qs[1] {
		return Gate{}, fmt.Errorf("%w: control and target are the same qubit", ErrInvalidGate)
	}
	g.Qubits = qs
	for _, a := range fields[1+nq:] {
		v, err := ParseAngle(a)
		if err != nil {
			return Gate{}, err
		}
		g.Angles = append(g.Angles, v)
	}
	return g, nil
}

// Apply applies the gate to e.
func (g Gate) Apply(e gate.Engine) {
	switch g.Name {
	case "U":
		gate.U(e, g.Qubits[0], g.Angles[0], g.Angles[1], g.Angles[2])
	case "INVU":
		gate.InvU(e, g.Qubits[0], g.Angles[0], g.Angles[1], g.Angles[2])
	case "CX":
		gate.CX(e, g.Qubits[0], g.Qubits[1])
	}
}

func handleGate(ctx *cli.Context) error {
	env, closer, exitErr := options.GetEnv(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer closer()

	if !ctx.Args().Present() {
		return cli.NewExitError(fmt.Errorf("%w: at least one gate is required", cmdargs.ErrNoArguments), 1)
	}
	var (
		rec    = new(gate.Recorder)
		qubits int
	)
	for _, arg := range ctx.Args() {
		g, err := ParseGate(arg)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		for _, q := range g.Qubits {
			if q >= qubits {
				qubits = q + 1
			}
		}
		g.Apply(rec)
	}
	if ctx.IsSet("qubits") {
		n := ctx.Int("qubits")
		if n < qubits {
			return cli.NewExitError(fmt.Errorf("%w: %d qubits used, but only %d requested", gate.ErrInvalidQubitCount, qubits, n), 1)
		}
		qubits = n
	}
	if limit := env.Config.ApplicationConfiguration.MaxQubits; qubits > limit {
		return cli.NewExitError(fmt.Errorf("%w: %d qubits exceed configured limit of %d", gate.ErrInvalidQubitCount, qubits, limit), 1)
	}
	for _, op := range rec.Ops {
		fmt.Fprintln(ctx.App.Writer, op)
	}
	if ctx.Bool("no-sim") {
		return nil
	}

	sv, err := gate.NewStateVector(qubits)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	rec.Replay(sv)
	env.Log.Debug("simulated circuit",
		zap.Int("qubits", qubits),
		zap.Int("primitives", len(rec.Ops)))
	fmt.Fprintln(ctx.App.Writer)
	for q := 0; q < qubits; q++ {
		fmt.Fprintf(ctx.App.Writer, "q%d\t%.4f\n", q, sv.Probability(q))
	}
	return nil
}
