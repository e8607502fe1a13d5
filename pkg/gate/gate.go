/*
Package gate contains REQASM gate composition primitives. The generic
single-qubit unitary U(theta, phi, lambda) and the controlled-not CX are
expressed via the rotation and controlled-not primitives of an Engine, the
quantum register implementation doing the actual work.
*/
package gate

// Engine is a quantum register able to apply basic gates. Qubit indices are
// zero-based; behavior for invalid indices is defined by the implementation.
type Engine interface {
	// RotateZ rotates qubit q around the Z axis by angle radians.
	RotateZ(q int, angle float64)
	// RotateX rotates qubit q around the X axis by angle radians.
	RotateX(q int, angle float64)
	// ControlledNot flips target if control is set.
	ControlledNot(control, target int)
}

// U applies the generic single-qubit unitary U(theta, phi, lambda) to qubit
// q, as Z(lambda) followed by X(theta) and Z(phi).
func U(e Engine, q int, theta, phi, lambda float64) {
	e.RotateZ(q, lambda)
	e.RotateX(q, theta)
	e.RotateZ(q, phi)
}

// InvU applies the inverse of U(theta, phi, lambda) to qubit q.
func InvU(e Engine, q int, theta, phi, lambda float64) {
	e.RotateZ(q, -phi)
	e.RotateX(q, -theta)
	e.RotateZ(q, -lambda)
}

// CX applies controlled-not with control a and target b.
func CX(e Engine, a, b int) {
	e.ControlledNot(a, b)
}
