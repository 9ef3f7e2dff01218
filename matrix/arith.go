// SPDX-License-Identifier: MIT
package matrix

// Add returns a new matrix containing the elementwise sum a + b.
// Stage 1 (Validate): shape match. Stage 2 (Execute): flat-buffer loop.
// Complexity: O(r*c).
func Add(a, b *Dense) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf("Add", err)
	}
	out, _ := NewDense(a.r, a.c)
	for i := range a.data {
		out.data[i] = a.data[i] + b.data[i]
	}

	return out, nil
}

// Sub returns a new matrix containing the elementwise difference a - b.
// Complexity: O(r*c).
func Sub(a, b *Dense) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf("Sub", err)
	}
	out, _ := NewDense(a.r, a.c)
	for i := range a.data {
		out.data[i] = a.data[i] - b.data[i]
	}

	return out, nil
}

// Scale returns a new matrix equal to alpha*m.
// Complexity: O(r*c).
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Scale", err)
	}
	out := m.Clone()
	for i := range out.data {
		out.data[i] *= alpha
	}

	return out, nil
}

// ScaleInPlace multiplies every element of m by alpha in place.
func ScaleInPlace(m *Dense, alpha float64) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf("ScaleInPlace", err)
	}
	for i := range m.data {
		m.data[i] *= alpha
	}

	return nil
}

// Mul returns the classical matrix product a*b via the triple loop.
// Stage 1 (Validate): a.Cols() == b.Rows(). Stage 2 (Prepare): allocate
// (a.Rows, b.Cols). Stage 3 (Execute): O(a.Rows * a.Cols * b.Cols) triple loop.
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulShapes(a, b); err != nil {
		return nil, matrixErrorf("Mul", err)
	}
	out, _ := NewDense(a.r, b.c)
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			aik := a.data[i*a.c+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < b.c; j++ {
				out.data[i*out.c+j] += aik * b.data[k*b.c+j]
			}
		}
	}

	return out, nil
}

// Transpose returns a new matrix with swapped shape: out[j,i] = m[i,j].
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Transpose", err)
	}
	out, _ := NewDense(m.c, m.r)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*out.c+i] = m.data[i*m.c+j]
		}
	}

	return out, nil
}

// Trace returns the sum of the diagonal. Fails if m is not square.
func Trace(m *Dense) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf("Trace", err)
	}
	var sum float64
	for i := 0; i < m.r; i++ {
		sum += m.data[i*m.c+i]
	}

	return sum, nil
}

// Augment concatenates a and b columnwise, requiring equal row counts, and
// returns a matrix of shape (a.Rows, a.Cols+b.Cols).
func Augment(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf("Augment", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf("Augment", err)
	}
	if a.r != b.r {
		return nil, matrixErrorf("Augment", ErrDimensionMismatch)
	}
	out, _ := NewDense(a.r, a.c+b.c)
	for i := 0; i < a.r; i++ {
		for j := 0; j < a.c; j++ {
			out.data[i*out.c+j] = a.data[i*a.c+j]
		}
		for j := 0; j < b.c; j++ {
			out.data[i*out.c+a.c+j] = b.data[i*b.c+j]
		}
	}

	return out, nil
}

// Subset extracts the contiguous block [r1..r2, c1..c2) (r2, c2 exclusive).
func Subset(m *Dense, r1, r2, c1, c2 int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Subset", err)
	}
	if r1 < 0 || c1 < 0 || r2 > m.r || c2 > m.c || r1 >= r2 || c1 >= c2 {
		return nil, matrixErrorf("Subset", ErrIndexOutOfRange)
	}
	out, _ := NewDense(r2-r1, c2-c1)
	for i := r1; i < r2; i++ {
		for j := c1; j < c2; j++ {
			out.data[(i-r1)*out.c+(j-c1)] = m.data[i*m.c+j]
		}
	}

	return out, nil
}
