// SPDX-License-Identifier: MIT
package matrix

import "fmt"

// Dense is a row-major matrix of float64 values. r is the row count, c is
// the column count, and data holds r*c elements in row-major order:
// data[i*c+j] is element (i, j).
type Dense struct {
	r, c int
	data []float64
}

// NewDense creates an r×c zero-filled Dense matrix.
// Stage 1 (Validate): ensure rows and cols are positive.
// Stage 2 (Prepare): allocate the flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf("NewDense", ErrInvalidDimensions)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewIdentity allocates an n×n identity matrix.
// Complexity: O(n^2).
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf("NewIdentity", err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0
	}

	return m, nil
}

// NewFromSlice builds a Dense matrix from a flat row-major sequence and an
// explicit column count. Fails if the sequence length isn't a multiple of
// cols, or if cols <= 0.
// Complexity: O(len(values)).
func NewFromSlice(values []float64, cols int) (*Dense, error) {
	if cols <= 0 {
		return nil, matrixErrorf("NewFromSlice", ErrInvalidDimensions)
	}
	if len(values)%cols != 0 {
		return nil, matrixErrorf("NewFromSlice", ErrDimensionMismatch)
	}
	rows := len(values) / cols
	if rows == 0 {
		return nil, matrixErrorf("NewFromSlice", ErrInvalidDimensions)
	}

	data := make([]float64, len(values))
	copy(data, values)

	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewColumn builds an (n, 1) column vector from a sequence of scalars.
func NewColumn(values []float64) (*Dense, error) {
	if len(values) == 0 {
		return nil, matrixErrorf("NewColumn", ErrInvalidDimensions)
	}

	return NewFromSlice(values, 1)
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// index computes the flat offset for (row, col), bounds-checked.
func (m *Dense) index(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, matrixErrorf("At", fmt.Errorf("(%d,%d) in %dx%d: %w", row, col, m.r, m.c, ErrIndexOutOfRange))
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.index(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.index(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Each invokes fn for every element in row-major order, stopping early if
// fn returns false.
func (m *Dense) Each(fn func(row, col int, v float64) bool) {
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if !fn(i, j, m.data[i*m.c+j]) {
				return
			}
		}
	}
}

// Clone returns a deep copy of m.
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Dense{r: m.r, c: m.c, data: data}
}

// ToSlice returns a copy of the column vector's entries, top to bottom.
// Fails if m is not a column vector (Cols() != 1).
func (m *Dense) ToSlice() ([]float64, error) {
	if m.c != 1 {
		return nil, matrixErrorf("ToSlice", ErrDimensionMismatch)
	}
	out := make([]float64, m.r)
	copy(out, m.data)

	return out, nil
}

// String implements fmt.Stringer for debugging.
func (m *Dense) String() string {
	s := ""
	for i := 0; i < m.r; i++ {
		s += "["
		for j := 0; j < m.c; j++ {
			s += fmt.Sprintf("%g", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}
