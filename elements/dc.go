package elements

import (
	"fmt"

	"github.com/ForceOverArea/neapolitan/flux"
	"github.com/ForceOverArea/neapolitan/matrix"
	"github.com/ForceOverArea/neapolitan/network"
)

// Type names for the DC circuit elements, used both as Registry keys
// and as the "element_type" discriminator in a model document.
const (
	Resistor      = "resistor"
	VoltageSource = "voltage_source"
	CurrentSource = "current_source"
)

// ResistorConstructor connects in and out with a proportional flux
// rule whose gain is the conductance 1/resistance.
func ResistorConstructor(inRef, outRef network.NodeRef, resistance []float64) (*network.Element, error) {
	if len(resistance) == 0 {
		return nil, fmt.Errorf("elements.ResistorConstructor: %w", matrix.ErrInvalidDimensions)
	}
	conductance := []float64{1.0 / resistance[0]}
	return network.TryNewElement(conductance, inRef, outRef, flux.Proportional, false, true, true)
}

// VoltageSourceConstructor pins whichever endpoint is free so that the
// output endpoint's potential sits the source voltage above the input's.
func VoltageSourceConstructor(inRef, outRef network.NodeRef, voltage []float64) (*network.Element, error) {
	return observedSource(inRef, outRef, voltage)
}

// CurrentSourceConstructor connects in and out with a constant flux
// rule: the current this element injects never depends on potentials.
func CurrentSourceConstructor(inRef, outRef network.NodeRef, current []float64) (*network.Element, error) {
	return network.TryNewElement(current, inRef, outRef, flux.Constant, false, true, true)
}
