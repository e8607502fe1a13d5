package gate

import (
	"fmt"
	"strconv"
)

// OpType is a primitive operation type.
type OpType byte

// Primitive operations.
const (
	RotateZOp OpType = iota
	RotateXOp
	ControlledNotOp
)

// String implements the fmt.Stringer interface.
func (t OpType) String() string {
	switch t {
	case RotateZOp:
		return "rotateZ"
	case RotateXOp:
		return "rotateX"
	case ControlledNotOp:
		return "controlledNot"
	default:
		return "OpType(" + strconv.Itoa(int(t)) + ")"
	}
}

// Op is a single recorded primitive. Control is only used by
// ControlledNotOp, Angle only by rotations.
type Op struct {
	Type    OpType
	Control int
	Target  int
	Angle   float64
}

// String returns the op in the engine call notation, like
// rotateX(qreg,0,3.14).
func (o Op) String() string {
	if o.Type == ControlledNotOp {
		return fmt.Sprintf("%s(qreg,%d,%d)", o.Type, o.Control, o.Target)
	}
	return fmt.Sprintf("%s(qreg,%d,%s)", o.Type, o.Target, strconv.FormatFloat(o.Angle, 'g', -1, 64))
}

// Recorder is an Engine that only remembers applied primitives. The zero
// value is ready to use.
type Recorder struct {
	Ops []Op
}

// RotateZ implements the Engine interface.
func (r *Recorder) RotateZ(q int, angle float64) {
	r.Ops = append(r.Ops, Op{Type: RotateZOp, Target: q, Angle: angle})
}

// RotateX implements the Engine interface.
func (r *Recorder) RotateX(q int, angle float64) {
	r.Ops = append(r.Ops, Op{Type: RotateXOp, Target: q, Angle: angle})
}

// ControlledNot implements the Engine interface.
func (r *Recorder) ControlledNot(control, target int) {
	r.Ops = append(r.Ops, Op{Type: ControlledNotOp, Control: control, Target: target})
}

// Replay applies all recorded primitives to e in order.
func (r *Recorder) Replay(e Engine) {
	for _, o := range r.Ops {
		switch o.Type {
		case RotateZOp:
			e.RotateZ(o.Target, o.Angle)
		case RotateXOp:
			e.RotateX(o.Target, o.Angle)
		case ControlledNotOp:
			e.ControlledNot(o.Control, o.Target)
		}
	}
}
