// Package neapolitan is a generic nodal-analysis solver engine.
//
// A network is a set of nodes holding scalar potentials (voltage,
// temperature, pressure, ...) connected by elements that relate those
// potentials to a flux (current, heat flow, flow rate, ...). Given a
// partially-constrained network, the engine solves for the potentials
// and fluxes that satisfy every element's relation simultaneously.
//
// Subpackages:
//
//	matrix/   - dense row-major linear algebra used by the solver's Jacobian step
//	network/  - Node, NodeTable and Element: the graph the rest of the engine operates on
//	flux/     - the closed set of flux calculators elements are built from
//	elements/ - concrete element constructors (resistor, conductor, ...)
//	solver/   - generic multivariate Newton-Raphson root finding
//	study/    - the Configure/Build/Solve façade tying a JSON model to a solved Result
//	cmd/neapolitan/ - a command-line front end reading and writing model JSON
package neapolitan
