package qlocate

import (
	"github.com/theapemachine/errnie"
)

// MarkingFunc is the compiled oracle predicate: true exactly for the
// basis-state indices whose candidate matches both sensor patterns.
type MarkingFunc func(index uint64) bool

/*
Oracle marks the basis states whose map neighborhood equals both
sensor patterns. The predicate is compiled once per run from per-cell
equality tests ANDed together, and is applied as a phase flip that
leaves all other amplitudes unchanged.

The oracle is a pure function of the static map and patterns: it marks
zero, one, or many candidates without special-casing any of them, and
padding indices are never marked.
*/
type Oracle struct {
	enc        *IndexEncoding
	marked     []bool
	solutions  []Candidate
	shared     bool
	workQubits int
}

/*
BuildOracle compiles the marking predicate for a map and pattern pair.

When the row and column patterns are identical in length and content,
the comparison work register is shared between the two axis tests.
Sharing is verified by content equality and only reduces the reported
work-register width; the index encoding and the marked set are
unaffected.
*/
func BuildOracle(m *GridMap, rowPattern, colPattern Pattern, enc *IndexEncoding) (*Oracle, error) {
	return buildOracle(m, rowPattern, colPattern, enc, rowPattern.Equal(colPattern))
}

func buildOracle(m *GridMap, rowPattern, colPattern Pattern, enc *IndexEncoding, shared bool) (*Oracle, error) {
	if m == nil {
		return nil, &ConfigurationError{Field: "map", Err: ErrEmptyMap}
	}
	if err := rowPattern.validate("row pattern", m.Cols()); err != nil {
		return nil, err
	}
	if err := colPattern.validate("col pattern", m.Rows()); err != nil {
		return nil, err
	}

	workQubits := len(rowPattern) + len(colPattern)
	if shared {
		workQubits = len(rowPattern)
	}

	o := &Oracle{
		enc:        enc,
		marked:     make([]bool, enc.Size()),
		shared:     shared,
		workQubits: workQubits,
	}

	for index := uint64(0); index < uint64(enc.Size()); index++ {
		cand, ok := enc.Decode(index)
		if !ok {
			continue // padding stays unmarked
		}
		if windowEquals(m.RowWindow(cand.Row, cand.Col, len(rowPattern)), rowPattern) &&
			windowEquals(m.ColWindow(cand.Row, cand.Col, len(colPattern)), colPattern) {
			o.marked[index] = true
			o.solutions = append(o.solutions, cand)
		}
	}

	errnie.Info(
		"BuildOracle - %d candidates, %d solutions, shared=%v",
		enc.Positions(),
		len(o.solutions),
		shared,
	)

	return o, nil
}

// windowEquals is the reversible comparator: per-cell equality tests
// ANDed together.
func windowEquals(window []int, pattern Pattern) bool {
	for i, want := range pattern {
		if window[i] != want {
			return false
		}
	}
	return true
}

// Marks reports whether the index is in the marked set. Padding
// indices are always false.
func (o *Oracle) Marks(index uint64) bool {
	if index >= uint64(len(o.marked)) {
		return false
	}
	return o.marked[index]
}

// MarkingFunc returns the predicate in the shape backends consume.
func (o *Oracle) MarkingFunc() MarkingFunc { return o.Marks }

// Flip applies the oracle to an amplitude state: the sign of every
// marked amplitude is inverted.
func (o *Oracle) Flip(state *AmplitudeState) { flipMarked(state, o.Marks) }

// Solutions returns the brute-force solution set, the candidates whose
// neighborhoods match both patterns. May be empty.
func (o *Oracle) Solutions() []Candidate {
	solutions := make([]Candidate, len(o.solutions))
	copy(solutions, o.solutions)
	return solutions
}

// SolutionCount returns the solution set size M.
func (o *Oracle) SolutionCount() int { return len(o.solutions) }

// SharedRegister reports whether the two axis tests share one
// comparison work register.
func (o *Oracle) SharedRegister() bool { return o.shared }

// WorkQubits returns the comparison register width the oracle
// occupies alongside the index qubits.
func (o *Oracle) WorkQubits() int { return o.workQubits }

// Check validates the compiled predicate at one anchor: it reports
// whether the oracle marks (row, col). Anchors outside the valid
// candidate range are false.
func (o *Oracle) Check(row, col int) bool {
	if row < 0 || col < 0 || row >= o.enc.RowPositions() || col >= o.enc.ColPositions() {
		return false
	}
	return o.Marks(o.enc.Encode(Candidate{Row: row, Col: col}))
}
