package qlocate

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// bruteForceSolutions computes the solution set directly from window
// comparisons, independently of the oracle's compilation.
func bruteForceSolutions(m *GridMap, rowPattern, colPattern Pattern) []Candidate {
	var solutions []Candidate
	for row := 0; row+len(colPattern) <= m.Rows(); row++ {
		for col := 0; col+len(rowPattern) <= m.Cols(); col++ {
			if windowEquals(m.RowWindow(row, col, len(rowPattern)), rowPattern) &&
				windowEquals(m.ColWindow(row, col, len(colPattern)), colPattern) {
				solutions = append(solutions, Candidate{Row: row, Col: col})
			}
		}
	}
	return solutions
}

func TestOracle(t *testing.T) {
	Convey("Given the 3x3 scenario map", t, func(c C) {
		m, err := NewGridMap([][]int{
			{1, 0, 1},
			{0, 1, 0},
			{0, 1, 1},
		})
		c.So(err, ShouldBeNil)

		rowPattern := Pattern{1, 0}
		colPattern := Pattern{1, 0}

		enc, err := NewIndexEncoding(m, rowPattern, colPattern)
		c.So(err, ShouldBeNil)

		oracle, err := BuildOracle(m, rowPattern, colPattern, enc)
		c.So(err, ShouldBeNil)

		Convey("When comparing against the brute-force solution set", func(c C) {
			solutions := bruteForceSolutions(m, rowPattern, colPattern)
			c.So(solutions, ShouldResemble, []Candidate{{Row: 0, Col: 0}})
			c.So(oracle.Solutions(), ShouldResemble, solutions)
			c.So(oracle.SolutionCount(), ShouldEqual, 1)

			inSet := make(map[uint64]bool)
			for _, s := range solutions {
				inSet[enc.Encode(s)] = true
			}
			for index := uint64(0); index < uint64(enc.Size()); index++ {
				c.So(oracle.Marks(index), ShouldEqual, inSet[index])
			}
		})

		Convey("When checking single anchors", func(c C) {
			c.So(oracle.Check(0, 0), ShouldBeTrue)
			c.So(oracle.Check(1, 1), ShouldBeFalse)
			c.So(oracle.Check(-1, 0), ShouldBeFalse)
			c.So(oracle.Check(5, 5), ShouldBeFalse)
		})

		Convey("When the patterns are identical the work register is shared", func(c C) {
			c.So(oracle.SharedRegister(), ShouldBeTrue)
			c.So(oracle.WorkQubits(), ShouldEqual, 2)
		})

		Convey("When applying the phase flip", func(c C) {
			state := newUniformState(enc.Qubits())
			before := state.Norm()
			markedIndex := enc.Encode(Candidate{Row: 0, Col: 0})
			markedBefore := state.vector[markedIndex]
			unmarkedBefore := state.vector[markedIndex+1]

			oracle.Flip(state)

			c.So(state.vector[markedIndex], ShouldEqual, -markedBefore)
			c.So(state.vector[markedIndex+1], ShouldEqual, unmarkedBefore)
			c.So(math.Abs(state.Norm()-before), ShouldBeLessThan, 1e-9)
		})
	})

	Convey("Given asymmetric patterns", t, func(c C) {
		m, err := NewGridMap([][]int{
			{0, 1, 0, 1},
			{0, 1, 1, 1},
			{1, 1, 0, 0},
			{0, 1, 1, 0},
		})
		c.So(err, ShouldBeNil)

		rowPattern := Pattern{0, 1}
		colPattern := Pattern{1, 0}

		enc, err := NewIndexEncoding(m, rowPattern, colPattern)
		c.So(err, ShouldBeNil)

		oracle, err := BuildOracle(m, rowPattern, colPattern, enc)
		c.So(err, ShouldBeNil)

		Convey("When the patterns differ the registers stay separate", func(c C) {
			c.So(oracle.SharedRegister(), ShouldBeFalse)
			c.So(oracle.WorkQubits(), ShouldEqual, 4)
		})

		Convey("When marking with padding present", func(c C) {
			solutions := bruteForceSolutions(m, rowPattern, colPattern)
			c.So(oracle.Solutions(), ShouldResemble, solutions)

			for index := uint64(0); index < uint64(enc.Size()); index++ {
				if _, ok := enc.Decode(index); !ok {
					c.So(oracle.Marks(index), ShouldBeFalse)
				}
			}
		})
	})

	Convey("Given a map with no match", t, func(c C) {
		m, err := NewGridMap([][]int{
			{0, 0, 0},
			{0, 0, 0},
			{0, 0, 0},
		})
		c.So(err, ShouldBeNil)

		enc, err := NewIndexEncoding(m, Pattern{1}, Pattern{1})
		c.So(err, ShouldBeNil)

		oracle, err := BuildOracle(m, Pattern{1}, Pattern{1}, enc)
		c.So(err, ShouldBeNil)

		Convey("When the solution set is empty nothing is marked", func(c C) {
			c.So(oracle.SolutionCount(), ShouldEqual, 0)
			for index := uint64(0); index < uint64(enc.Size()); index++ {
				c.So(oracle.Marks(index), ShouldBeFalse)
			}
		})
	})

	Convey("Given a map with multiple disjoint matches", t, func(c C) {
		m, err := NewGridMap([][]int{
			{1, 1, 0, 1, 1},
			{1, 0, 0, 1, 0},
			{0, 0, 0, 0, 0},
		})
		c.So(err, ShouldBeNil)

		rowPattern := Pattern{1, 1}
		colPattern := Pattern{1, 1}

		enc, err := NewIndexEncoding(m, rowPattern, colPattern)
		c.So(err, ShouldBeNil)

		oracle, err := BuildOracle(m, rowPattern, colPattern, enc)
		c.So(err, ShouldBeNil)

		Convey("When every matching candidate must be marked", func(c C) {
			c.So(oracle.Solutions(), ShouldResemble, bruteForceSolutions(m, rowPattern, colPattern))
			c.So(oracle.SolutionCount(), ShouldEqual, 2)
			c.So(oracle.Check(0, 0), ShouldBeTrue)
			c.So(oracle.Check(0, 3), ShouldBeTrue)
		})
	})
}
