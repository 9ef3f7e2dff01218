package network

import (
	"fmt"

	"github.com/ForceOverArea/neapolitan/matrix"
)

// FluxCalculation computes the flux an element carries given its two
// endpoints, its gain vector, and whether it drives its output
// endpoint's potential rather than simply reading both. Implementations
// live in package flux; this type is declared here because Element
// stores one, and package flux already imports network.
type FluxCalculation func(in, out *Node, gain *matrix.Dense, drivesOutput bool) (*matrix.Dense, error)

// Element carries flux between two nodes according to a FluxCalculation.
// It holds non-owning NodeRefs to its endpoints; the nodes it connects
// to hold the strong reference back to it.
type Element struct {
	gain         *matrix.Dense
	inRef        NodeRef
	outRef       NodeRef
	fluxCalc     FluxCalculation
	drivesOutput bool
}

// TryNewElement resolves both endpoints, builds the element, and wires
// it into whichever endpoint's list connectToInput/connectToOutput
// request. The input endpoint is wired first, then the output endpoint,
// so callers relying on connection order (e.g. a driven-output source
// excluding itself from its own driven node's balance) get a
// deterministic result.
func TryNewElement(
	gainValues []float64,
	inRef, outRef NodeRef,
	fluxCalc FluxCalculation,
	drivesOutput, connectToInput, connectToOutput bool,
) (*Element, error) {
	gain, err := matrix.NewColumn(gainValues)
	if err != nil {
		return nil, fmt.Errorf("network.TryNewElement: %w", err)
	}

	inNode, err := inRef.Resolve()
	if err != nil {
		return nil, fmt.Errorf("network.TryNewElement: %w", err)
	}
	outNode, err := outRef.Resolve()
	if err != nil {
		return nil, fmt.Errorf("network.TryNewElement: %w", err)
	}

	elem := &Element{
		gain:         gain,
		inRef:        inRef,
		outRef:       outRef,
		fluxCalc:     fluxCalc,
		drivesOutput: drivesOutput,
	}

	if connectToInput {
		if err := inNode.addOutput(elem); err != nil {
			return nil, fmt.Errorf("network.TryNewElement: %w", err)
		}
	}
	if connectToOutput {
		if err := outNode.addInput(elem); err != nil {
			return nil, fmt.Errorf("network.TryNewElement: %w", err)
		}
	}
	return elem, nil
}

// GetFlux resolves both endpoints and evaluates the element's flux
// rule against their current potentials.
func (e *Element) GetFlux() (*matrix.Dense, error) {
	inNode, err := e.inRef.Resolve()
	if err != nil {
		return nil, fmt.Errorf("network.Element.GetFlux: %w", err)
	}
	outNode, err := e.outRef.Resolve()
	if err != nil {
		return nil, fmt.Errorf("network.Element.GetFlux: %w", err)
	}
	flux, err := e.fluxCalc(inNode, outNode, e.gain, e.drivesOutput)
	if err != nil {
		return nil, fmt.Errorf("network.Element.GetFlux: %w", err)
	}
	return flux, nil
}

// Gain returns a copy of this element's gain vector.
func (e *Element) Gain() *matrix.Dense {
	return e.gain.Clone()
}

// DrivesOutput reports the flag this element was built with. The
// observed flux rule drives the output endpoint when it is true and the
// input endpoint when it is false; the other rules ignore it.
func (e *Element) DrivesOutput() bool {
	return e.drivesOutput
}
