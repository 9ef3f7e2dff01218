package flux

import (
	"fmt"

	"github.com/ForceOverArea/neapolitan/matrix"
	"github.com/ForceOverArea/neapolitan/network"
)

// Calculator is an alias for network.FluxCalculation, kept here so
// callers that only deal in flux rules don't need to import network
// just to name the type.
type Calculator = network.FluxCalculation

// Proportional returns (in.Potential - out.Potential) * gain[0]. It
// never mutates either endpoint; resistive and conductive elements are
// built on this rule.
func Proportional(in, out *network.Node, gain *matrix.Dense, _ bool) (*matrix.Dense, error) {
	inPot, err := in.Potential()
	if err != nil {
		return nil, fmt.Errorf("flux.Proportional: %w", err)
	}
	outPot, err := out.Potential()
	if err != nil {
		return nil, fmt.Errorf("flux.Proportional: %w", err)
	}
	delta, err := matrix.Sub(inPot, outPot)
	if err != nil {
		return nil, fmt.Errorf("flux.Proportional: %w", err)
	}
	g, err := gain.At(0, 0)
	if err != nil {
		return nil, fmt.Errorf("flux.Proportional: %w", err)
	}
	scaled, err := matrix.Scale(delta, g)
	if err != nil {
		return nil, fmt.Errorf("flux.Proportional: %w", err)
	}
	return scaled, nil
}

// Constant returns gain unchanged, regardless of either endpoint's
// potential. Current and flux sources are built on this rule.
func Constant(_, _ *network.Node, gain *matrix.Dense, _ bool) (*matrix.Dense, error) {
	return gain.Clone(), nil
}

// Observed pins whichever endpoint drivesOutput selects so that
// out = in + delta (the output is set to in + delta when drivesOutput is
// true, the input to out - delta otherwise), then reports the driven endpoint's
// flux discrepancy, negated. Voltage and temperature sources are built
// on this rule; it is the only one of the three that mutates a node.
func Observed(in, out *network.Node, delta *matrix.Dense, drivesOutput bool) (*matrix.Dense, error) {
	var reference, driven *network.Node
	if drivesOutput {
		reference, driven = in, out
	} else {
		reference, driven = out, in
	}

	refPot, err := reference.Potential()
	if err != nil {
		return nil, fmt.Errorf("flux.Observed: %w", err)
	}

	var newPot *matrix.Dense
	if drivesOutput {
		newPot, err = matrix.Add(refPot, delta)
	} else {
		newPot, err = matrix.Sub(refPot, delta)
	}
	if err != nil {
		return nil, fmt.Errorf("flux.Observed: %w", err)
	}
	if err := driven.SetPotential(newPot); err != nil {
		return nil, fmt.Errorf("flux.Observed: %w", err)
	}

	disc, err := driven.FluxDiscrepancy()
	if err != nil {
		return nil, fmt.Errorf("flux.Observed: %w", err)
	}
	negated, err := matrix.Scale(disc, -1.0)
	if err != nil {
		return nil, fmt.Errorf("flux.Observed: %w", err)
	}
	return negated, nil
}
