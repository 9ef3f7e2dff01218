package solver

import "errors"

var (
	// ErrNegativeMargin is returned when margin is not strictly
	// positive; a convergence tolerance of zero or less can never be
	// satisfied.
	ErrNegativeMargin = errors.New("solver: margin must be positive")

	// ErrIterationLimit is returned when limit iterations pass without
	// satisfying both convergence checks.
	ErrIterationLimit = errors.New("solver: iteration limit reached before convergence")

	// ErrImproperlyConstrainedSystem is returned when the number of
	// residual equations doesn't match the number of unknowns; Newton's
	// method needs a square system to form an invertible Jacobian.
	ErrImproperlyConstrainedSystem = errors.New("solver: number of residuals does not match number of unknowns")
)
