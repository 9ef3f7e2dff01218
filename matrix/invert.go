// SPDX-License-Identifier: MIT
package matrix

import "math"

// TryInplaceInvert inverts m in place via classical Gauss-Jordan elimination
// with partial pivoting.
//
// Stage 1 (Validate): m must be square; otherwise ErrNonSquare.
// Stage 2 (Prepare): augment m with an identity of the same size.
// Stage 3 (Execute): for each pivot column k, select the row with the
// largest absolute value in column k at or below row k, swap it into place,
// scale the pivot row to 1, and zero every other row's entry in column k.
// Stage 4 (Finalize): copy the right half (the inverse) back over m's data.
//
// Complexity: O(n^3) time, O(n^2) extra memory for the identity half.
func (m *Dense) TryInplaceInvert() error {
	// Stage 1: square check.
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf("TryInplaceInvert", err)
	}
	n := m.r

	// Stage 2: build the augmented [A | I] working copy.
	aug, _ := NewDense(n, 2*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			aug.data[i*aug.c+j] = m.data[i*n+j]
		}
		aug.data[i*aug.c+n+i] = 1.0
	}

	// Stage 3: pivot column by column.
	for k := 0; k < n; k++ {
		// Find the row with the largest |value| in column k at or below row k.
		pivotRow := k
		best := math.Abs(aug.data[k*aug.c+k])
		for r := k + 1; r < n; r++ {
			v := math.Abs(aug.data[r*aug.c+k])
			if v > best {
				best = v
				pivotRow = r
			}
		}
		if best == 0 {
			return matrixErrorf("TryInplaceInvert", ErrDeterminantZero)
		}

		// Swap the pivot row into place.
		if pivotRow != k {
			_ = aug.SwapRows(k, pivotRow)
		}

		// Scale the pivot row so the pivot becomes 1.
		pivot := aug.data[k*aug.c+k]
		if pivot == 0 {
			return matrixErrorf("TryInplaceInvert", ErrSingularValueWasZero)
		}
		_ = aug.ScaleRow(k, 1.0/pivot)

		// Zero every other row's entry in column k.
		for r := 0; r < n; r++ {
			if r == k {
				continue
			}
			factor := aug.data[r*aug.c+k]
			if factor == 0 {
				continue
			}
			_ = aug.AddScaledRow(k, r, -factor)
			if math.IsNaN(aug.data[r*aug.c+k]) || math.IsInf(aug.data[r*aug.c+k], 0) {
				return matrixErrorf("TryInplaceInvert", ErrZeroDuringInversion)
			}
		}
	}

	// Stage 4: copy the right half (the inverse) back over m.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.data[i*n+j] = aug.data[i*aug.c+n+j]
		}
	}

	return nil
}
