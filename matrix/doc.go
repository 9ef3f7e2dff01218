// Package matrix provides a dense, row-major real matrix type and the
// arithmetic, row-operation, and inversion kernels the nodal analysis
// solver builds on: elementwise add/sub, scalar scale, classical matrix
// multiply, row swap/scale/add, augmentation, subsetting, transpose,
// trace, and in-place Gauss-Jordan inversion with partial pivoting.
//
// Matrices are value-owned per operation; every operation that returns a
// new matrix allocates fresh backing storage rather than aliasing an
// operand. Column vectors are simply matrices of shape (n, 1).
package matrix
