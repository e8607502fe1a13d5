package gate

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// MaxQubits is the maximum number of qubits in StateVector.
const MaxQubits = 24

// ErrInvalidQubitCount is returned when StateVector can't be created with
// the given number of qubits.
var ErrInvalidQubitCount = errors.New("invalid number of qubits")

// StateVector is a simple reference Engine keeping 2^n complex amplitudes,
// qubit q corresponding to bit q of the basis state index. Methods panic on
// out-of-range qubit indices. It's not safe for concurrent use.
type StateVector struct {
	n    int
	amps []complex128
}

// NewStateVector creates an n-qubit register in the |0...0> state.
func NewStateVector(n int) (*StateVector, error) {
	if n < 1 || n > MaxQubits {
		return nil, fmt.Errorf("%w: %d, must be in [1, %d]", ErrInvalidQubitCount, n, MaxQubits)
	}
	amps := make([]complex128, 1<<n)
	amps[0] = 1
	return &StateVector{n: n, amps: amps}, nil
}

// Qubits returns the number of qubits.
func (s *StateVector) Qubits() int {
	return s.n
}

// Amplitudes returns a copy of state amplitudes.
func (s *StateVector) Amplitudes() []complex128 {
	res := make([]complex128, len(s.amps))
	copy(res, s.amps)
	return res
}

func (s *StateVector) check(q int) {
	if q < 0 || q >= s.n {
		panic(fmt.Sprintf("qubit index %d out of range [0:%d]", q, s.n))
	}
}

// RotateZ implements the Engine interface, it applies exp(-i*angle/2*Z).
func (s *StateVector) RotateZ(q int, angle float64) {
	s.check(q)
	var (
		bit  = 1 << q
		zero = cmplx.Exp(complex(0, -angle/2))
		one  = cmplx.Exp(complex(0, angle/2))
	)
	for i := range s.amps {
		if i&bit == 0 {
			s.amps[i] *= zero
		} else {
			s.amps[i] *= one
		}
	}
}

// RotateX implements the Engine interface, it applies exp(-i*angle/2*X).
func (s *StateVector) RotateX(q int, angle float64) {
	s.check(q)
	var (
		bit = 1 << q
		c   = complex(math.Cos(angle/2), 0)
		js  = complex(0, -math.Sin(angle/2))
	)
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			a, b := s.amps[i], s.amps[j]
			s.amps[i] = c*a + js*b
			s.amps[j] = js*a + c*b
		}
	}
}

// ControlledNot implements the Engine interface.
func (s *StateVector) ControlledNot(control, target int) {
	s.check(control)
	s.check(target)
	if control == target {
		panic("control and target qubits must differ")
	}
	var (
		cbit = 1 << control
		tbit = 1 << target
	)
	for i := range s.amps {
		if i&cbit != 0 && i&tbit == 0 {
			j := i | tbit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

// Probability returns the probability of measuring 1 on qubit q.
func (s *StateVector) Probability(q int) float64 {
	s.check(q)
	var (
		bit = 1 << q
		p   float64
	)
	for i, a := range s.amps {
		if i&bit != 0 {
			p += real(a)*real(a) + imag(a)*imag(a)
		}
	}
	return p
}
