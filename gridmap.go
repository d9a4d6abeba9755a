package qlocate

/*
GridMap is the binary occupancy map the robot is localized against.
It is immutable once constructed: the constructor copies its input and
all accessors are read-only, so a map can be shared across runs.
*/
type GridMap struct {
	cells [][]int
	rows  int
	cols  int
}

/*
NewGridMap validates and copies an R×C binary matrix.

Returns a ConfigurationError if the matrix is empty, non-rectangular,
or contains a value outside {0,1}.
*/
func NewGridMap(cells [][]int) (*GridMap, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, &ConfigurationError{Field: "map", Err: ErrEmptyMap}
	}

	cols := len(cells[0])
	copied := make([][]int, len(cells))
	for r, row := range cells {
		if len(row) != cols {
			return nil, &ConfigurationError{Field: "map", Err: ErrNonRectangular}
		}
		copied[r] = make([]int, cols)
		for c, v := range row {
			if v != 0 && v != 1 {
				return nil, &ConfigurationError{Field: "map", Err: ErrNonBinaryCell}
			}
			copied[r][c] = v
		}
	}

	return &GridMap{cells: copied, rows: len(copied), cols: cols}, nil
}

// Rows returns the number of map rows.
func (m *GridMap) Rows() int { return m.rows }

// Cols returns the number of map columns.
func (m *GridMap) Cols() int { return m.cols }

// At returns the cell value at (row, col). Bounds are the caller's
// responsibility, as with a raw matrix.
func (m *GridMap) At(row, col int) int { return m.cells[row][col] }

// RowWindow returns the k cells running rightward from (row, col).
func (m *GridMap) RowWindow(row, col, k int) []int {
	window := make([]int, k)
	copy(window, m.cells[row][col:col+k])
	return window
}

// ColWindow returns the k cells running downward from (row, col).
func (m *GridMap) ColWindow(row, col, k int) []int {
	window := make([]int, k)
	for i := 0; i < k; i++ {
		window[i] = m.cells[row+i][col]
	}
	return window
}

/*
Pattern is one 1-D sensor scan: an ordered sequence of binary values.
The row pattern is matched rightward along the map's row axis, the
column pattern downward along the column axis.
*/
type Pattern []int

// Equal reports whether two patterns have identical length and content.
func (p Pattern) Equal(other Pattern) bool {
	if len(p) != len(other) {
		return false
	}
	for i, v := range p {
		if other[i] != v {
			return false
		}
	}
	return true
}

// validate checks the pattern against the map dimension it scans.
func (p Pattern) validate(field string, dimension int) error {
	if len(p) == 0 {
		return &ConfigurationError{Field: field, Err: ErrEmptyPattern}
	}
	if len(p) > dimension {
		return &ConfigurationError{Field: field, Err: ErrPatternTooLong}
	}
	for _, v := range p {
		if v != 0 && v != 1 {
			return &ConfigurationError{Field: field, Err: ErrNonBinaryPattern}
		}
	}
	return nil
}
