package solver

import (
	"fmt"

	"github.com/ForceOverArea/neapolitan/matrix"
)

// ResidualFunc evaluates every residual equation of a system at once,
// given the current value of every unknown. The returned slice must be
// aligned with the keys slice MultivariateNewtonRaphson was called
// with: residuals[i] is the equation associated with keys[i].
type ResidualFunc[K comparable] func(x map[K]float64) ([]float64, error)

// MultivariateNewtonRaphson finds a simultaneous root of residuals
// using a finite-difference Jacobian, iterating until both the
// residual norm and the step norm fall within margin, or failing with
// ErrIterationLimit after limit iterations. keys fixes a stable
// ordering over guess's keys for Jacobian indexing and step
// application; callers that care about determinism should pass the
// same order every time.
func MultivariateNewtonRaphson[K comparable](
	residuals ResidualFunc[K],
	keys []K,
	guess map[K]float64,
	margin float64,
	limit int,
) (map[K]float64, error) {
	if margin <= 0 {
		return nil, ErrNegativeMargin
	}
	if limit == 0 {
		return nil, ErrIterationLimit
	}
	if len(keys) != len(guess) {
		return nil, fmt.Errorf("solver.MultivariateNewtonRaphson: %w", ErrImproperlyConstrainedSystem)
	}

	n := len(keys)
	x := make(map[K]float64, n)
	for k, v := range guess {
		x[k] = v
	}

	for {
		y, err := residuals(x)
		if err != nil {
			return nil, fmt.Errorf("solver.MultivariateNewtonRaphson: %w", err)
		}
		if len(y) != n {
			return nil, fmt.Errorf("solver.MultivariateNewtonRaphson: %w", ErrImproperlyConstrainedSystem)
		}

		jacobian, err := matrix.NewDense(n, n)
		if err != nil {
			return nil, fmt.Errorf("solver.MultivariateNewtonRaphson: %w", err)
		}
		for j, key := range keys {
			x[key] += finiteDifferenceStep
			perturbed, err := residuals(x)
			if err != nil {
				return nil, fmt.Errorf("solver.MultivariateNewtonRaphson: %w", err)
			}
			x[key] -= finiteDifferenceStep

			if len(perturbed) != n {
				return nil, fmt.Errorf("solver.MultivariateNewtonRaphson: %w", ErrImproperlyConstrainedSystem)
			}
			for i := 0; i < n; i++ {
				if err := jacobian.Set(i, j, (perturbed[i]-y[i])/finiteDifferenceStep); err != nil {
					return nil, fmt.Errorf("solver.MultivariateNewtonRaphson: %w", err)
				}
			}
		}

		if err := jacobian.TryInplaceInvert(); err != nil {
			return nil, fmt.Errorf("solver.MultivariateNewtonRaphson: %w", err)
		}

		yCol, err := matrix.NewColumn(y)
		if err != nil {
			return nil, fmt.Errorf("solver.MultivariateNewtonRaphson: %w", err)
		}
		deltaCol, err := matrix.Mul(jacobian, yCol)
		if err != nil {
			return nil, fmt.Errorf("solver.MultivariateNewtonRaphson: %w", err)
		}
		delta, err := deltaCol.ToSlice()
		if err != nil {
			return nil, fmt.Errorf("solver.MultivariateNewtonRaphson: %w", err)
		}

		errorNorm, changeNorm := 0.0, 0.0
		for i := 0; i < n; i++ {
			errorNorm += y[i] * y[i]
			changeNorm += delta[i] * delta[i]
		}

		if errorNorm <= margin && changeNorm <= margin {
			out := make(map[K]float64, n)
			for k, v := range x {
				out[k] = v
			}
			return out, nil
		}

		for i, key := range keys {
			x[key] -= delta[i]
		}

		limit--
		if limit == 0 {
			return nil, ErrIterationLimit
		}
	}
}
