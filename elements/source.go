package elements

import (
	"fmt"

	"github.com/ForceOverArea/neapolitan/flux"
	"github.com/ForceOverArea/neapolitan/matrix"
	"github.com/ForceOverArea/neapolitan/network"
)

// observedSource builds a boundary-condition element that pins
// whichever endpoint isn't already locked so that the output endpoint's
// potential equals the input endpoint's plus delta. It underlies voltage_source and
// temperature_delta, which differ only in name and physical units.
func observedSource(inRef, outRef network.NodeRef, delta []float64) (*network.Element, error) {
	inNode, err := inRef.Resolve()
	if err != nil {
		return nil, fmt.Errorf("elements.observedSource: %w", err)
	}
	outNode, err := outRef.Resolve()
	if err != nil {
		return nil, fmt.Errorf("elements.observedSource: %w", err)
	}

	if inNode.Locked() && outNode.Locked() {
		return nil, ErrBothEndpointsLocked
	}

	drivesOutput := !outNode.Locked()
	driven := outNode
	reference := inNode
	if !drivesOutput {
		driven, reference = inNode, outNode
	}

	refPot, err := reference.Potential()
	if err != nil {
		return nil, fmt.Errorf("elements.observedSource: %w", err)
	}
	deltaCol, err := matrix.NewColumn(delta)
	if err != nil {
		return nil, fmt.Errorf("elements.observedSource: %w", err)
	}

	var newPot *matrix.Dense
	if drivesOutput {
		newPot, err = matrix.Add(refPot, deltaCol)
	} else {
		newPot, err = matrix.Sub(refPot, deltaCol)
	}
	if err != nil {
		return nil, fmt.Errorf("elements.observedSource: %w", err)
	}

	if err := driven.Lock(); err != nil {
		return nil, fmt.Errorf("elements.observedSource: %w", err)
	}
	if err := driven.SetPotential(newPot); err != nil {
		return nil, fmt.Errorf("elements.observedSource: %w", err)
	}

	connectToInput := drivesOutput
	connectToOutput := !drivesOutput

	elem, err := network.TryNewElement(delta, inRef, outRef, flux.Observed, drivesOutput, connectToInput, connectToOutput)
	if err != nil {
		return nil, fmt.Errorf("elements.observedSource: %w", err)
	}
	return elem, nil
}
