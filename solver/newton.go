package solver

import (
	"fmt"
	"math"
)

// finiteDifferenceStep is the step size used for every numeric
// derivative this package takes, in both the scalar and multivariate
// solvers.
const finiteDifferenceStep = 1e-3

// NewtonRaphson finds a root of f near guess using a finite-difference
// approximation of f', iterating until both |f(x)| and the size of the
// last step are within margin of zero, or failing with
// ErrIterationLimit after limit iterations.
func NewtonRaphson(f func(x float64) (float64, error), guess, margin float64, limit int) (float64, error) {
	if margin <= 0 {
		return 0, ErrNegativeMargin
	}
	if limit == 0 {
		return 0, ErrIterationLimit
	}

	x := guess
	for {
		y, err := f(x)
		if err != nil {
			return 0, fmt.Errorf("solver.NewtonRaphson: %w", err)
		}
		yh, err := f(x + finiteDifferenceStep)
		if err != nil {
			return 0, fmt.Errorf("solver.NewtonRaphson: %w", err)
		}

		slope := (yh - y) / finiteDifferenceStep
		step := y / slope

		if math.Abs(y) <= margin && math.Abs(step) <= margin {
			return x, nil
		}

		x -= step
		limit--
		if limit == 0 {
			return 0, ErrIterationLimit
		}
	}
}
