package qlocate

import (
	"math/bits"
)

/*
Candidate identifies the top-left anchor of a pattern window within
the grid map. The row pattern runs rightward from the anchor, the
column pattern downward.
*/
type Candidate struct {
	Row int
	Col int
}

/*
IndexEncoding is the bijection between candidate anchors and
fixed-width basis-state indices.

Row and column positions are allocated as disjoint bit sub-fields of
the index: column bits occupy the low field, row bits the high field.
This keeps the row-match and column-match tests independent
sub-predicates over separate bit ranges. Indices whose sub-fields
decode beyond the valid position counts are padding and are never
marked or reported.
*/
type IndexEncoding struct {
	rowPositions int
	colPositions int
	rowBits      int
	colBits      int
}

/*
NewIndexEncoding derives the encoding for a map and sensor pattern
pair.

The row pattern scans horizontally, so it consumes columns and the
column pattern consumes rows. A valid anchor (r, c) satisfies
r + len(colPattern) <= Rows and c + len(rowPattern) <= Cols.

Returns a ConfigurationError if either pattern is empty, non-binary,
or longer than the dimension it scans.
*/
func NewIndexEncoding(m *GridMap, rowPattern, colPattern Pattern) (*IndexEncoding, error) {
	if m == nil {
		return nil, &ConfigurationError{Field: "map", Err: ErrEmptyMap}
	}
	if err := rowPattern.validate("row pattern", m.Cols()); err != nil {
		return nil, err
	}
	if err := colPattern.validate("col pattern", m.Rows()); err != nil {
		return nil, err
	}

	rowPositions := m.Rows() - len(colPattern) + 1
	colPositions := m.Cols() - len(rowPattern) + 1

	return &IndexEncoding{
		rowPositions: rowPositions,
		colPositions: colPositions,
		rowBits:      bitsFor(rowPositions),
		colBits:      bitsFor(colPositions),
	}, nil
}

// bitsFor returns the minimal bit-width that can represent n distinct
// positions, ceil(log2(n)).
func bitsFor(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// Qubits returns the index bit-width n.
func (e *IndexEncoding) Qubits() int { return e.rowBits + e.colBits }

// Size returns the number of basis states, 2^n.
func (e *IndexEncoding) Size() int { return 1 << e.Qubits() }

// Positions returns the number of valid candidate anchors; Size minus
// Positions is the padding region.
func (e *IndexEncoding) Positions() int { return e.rowPositions * e.colPositions }

// RowPositions returns the count of valid anchor rows.
func (e *IndexEncoding) RowPositions() int { return e.rowPositions }

// ColPositions returns the count of valid anchor columns.
func (e *IndexEncoding) ColPositions() int { return e.colPositions }

// Encode maps a valid candidate to its basis-state index.
func (e *IndexEncoding) Encode(c Candidate) uint64 {
	return uint64(c.Row)<<e.colBits | uint64(c.Col)
}

/*
Decode maps a basis-state index back to its candidate anchor. The
second return value is false for indices in the padding region, which
must never be reported as solutions.
*/
func (e *IndexEncoding) Decode(index uint64) (Candidate, bool) {
	if index >= uint64(e.Size()) {
		return Candidate{}, false
	}
	row := int(index >> e.colBits)
	col := int(index & (1<<e.colBits - 1))
	if row >= e.rowPositions || col >= e.colPositions {
		return Candidate{}, false
	}
	return Candidate{Row: row, Col: col}, true
}
