package elements

import "errors"

var (
	// ErrBothEndpointsLocked is returned by a boundary-condition
	// element (voltage_source, temperature_delta) when neither of its
	// endpoints is free to drive.
	ErrBothEndpointsLocked = errors.New("elements: both endpoints are already locked")

	// ErrConductorArgs is returned when conductor isn't given either a
	// single precomputed conductivity or a (length, conductivity) pair.
	ErrConductorArgs = errors.New("elements: conductor requires 1 or 2 gain values")

	// ErrConvectionArgs is returned when convection_interface isn't
	// given exactly one gain value.
	ErrConvectionArgs = errors.New("elements: convection_interface requires exactly 1 gain value")
)
