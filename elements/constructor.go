package elements

import "github.com/ForceOverArea/neapolitan/network"

// Constructor builds a network.Element from a gain vector and two
// endpoint references. It is the shape every entry in a Registry must
// conform to, and the shape a study's model document element type
// resolves to.
type Constructor func(inRef, outRef network.NodeRef, gain []float64) (*network.Element, error)
