package elements

import (
	"github.com/ForceOverArea/neapolitan/flux"
	"github.com/ForceOverArea/neapolitan/network"
)

// Type names for the steady-state heat transfer elements.
const (
	Conductor           = "conductor"
	ConvectionInterface = "convection_interface"
	TemperatureDelta    = "temperature_delta"
	HeatFlux            = "heat_flux"
)

// ConductorConstructor accepts either a single precomputed
// conductivity value, or a (length, conductivity) pair from which
// conductivity/length is derived.
func ConductorConstructor(inRef, outRef network.NodeRef, gain []float64) (*network.Element, error) {
	var conductance []float64
	switch len(gain) {
	case 1:
		conductance = gain
	case 2:
		length, conductivity := gain[0], gain[1]
		conductance = []float64{conductivity / length}
	default:
		return nil, ErrConductorArgs
	}
	return network.TryNewElement(conductance, inRef, outRef, flux.Proportional, false, true, true)
}

// ConvectionInterfaceConstructor requires exactly one gain value (the
// convection coefficient) and behaves like a resistor whose gain is
// already a conductance.
func ConvectionInterfaceConstructor(inRef, outRef network.NodeRef, gain []float64) (*network.Element, error) {
	if len(gain) != 1 {
		return nil, ErrConvectionArgs
	}
	return network.TryNewElement(gain, inRef, outRef, flux.Proportional, false, true, true)
}

// TemperatureDeltaConstructor pins whichever endpoint is free so that
// the output endpoint's temperature sits the fixed delta above the
// input's, the thermal analogue of VoltageSourceConstructor.
func TemperatureDeltaConstructor(inRef, outRef network.NodeRef, delta []float64) (*network.Element, error) {
	return observedSource(inRef, outRef, delta)
}

// HeatFluxConstructor injects a constant heat flux regardless of
// either endpoint's temperature.
func HeatFluxConstructor(inRef, outRef network.NodeRef, flow []float64) (*network.Element, error) {
	return network.TryNewElement(flow, inRef, outRef, flux.Constant, false, true, true)
}
