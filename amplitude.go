package qlocate

import (
	"math"
	"math/cmplx"
)

/*
AmplitudeState holds the 2^n complex amplitudes of one in-flight
amplification run. It exists only between state preparation and
measurement and is exclusively owned by that run; callers only ever
see post-measurement outcome counts.
*/
type AmplitudeState struct {
	vector []complex128
}

// newUniformState prepares the uniform superposition over all 2^qubits
// basis states, a Hadamard on every index qubit.
func newUniformState(qubits int) *AmplitudeState {
	n := 1 << qubits
	amplitude := complex(1/math.Sqrt(float64(n)), 0)
	vector := make([]complex128, n)
	for i := range vector {
		vector[i] = amplitude
	}
	return &AmplitudeState{vector: vector}
}

// Len returns the number of basis states.
func (s *AmplitudeState) Len() int { return len(s.vector) }

// Norm returns the sum of squared amplitude magnitudes. A normalized
// state holds 1 to within numeric tolerance.
func (s *AmplitudeState) Norm() float64 {
	total := 0.0
	for _, a := range s.vector {
		abs := cmplx.Abs(a)
		total += abs * abs
	}
	return total
}

// Probabilities returns the normalized measurement distribution over
// basis states.
func (s *AmplitudeState) Probabilities() []float64 {
	probs := make([]float64, len(s.vector))
	total := 0.0
	for i, a := range s.vector {
		abs := cmplx.Abs(a)
		probs[i] = abs * abs
		total += probs[i]
	}
	if total > 0 {
		for i := range probs {
			probs[i] /= total
		}
	}
	return probs
}

// flipMarked applies the oracle phase flip: amplitudes at marked
// indices change sign, magnitudes are untouched.
func flipMarked(s *AmplitudeState, marks MarkingFunc) {
	for i := range s.vector {
		if marks(uint64(i)) {
			s.vector[i] = -s.vector[i]
		}
	}
}
