// Package solver implements Newton-Raphson root finding: a scalar
// specialization and a generic multivariate form driven by a
// finite-difference Jacobian. Neither form knows anything about nodal
// networks; package study supplies the residual function that closes
// over a network's nodes and elements.
package solver
