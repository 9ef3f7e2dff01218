package study

import (
	"fmt"
	"sync"

	"github.com/ForceOverArea/neapolitan/elements"
)

// Registry maps an element type name to the constructor that builds
// it. A model document names its elements by type; Build resolves
// each one against the Registry it was configured with.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]elements.Constructor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]elements.Constructor)}
}

// Register binds name to ctor. It fails if name is already bound.
func (r *Registry) Register(name string, ctor elements.Constructor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byName[name]; exists {
		return fmt.Errorf("study.Registry.Register(%q): %w", name, ErrElementTypeNameCollision)
	}
	r.byName[name] = ctor
	return nil
}

// Lookup resolves name to its constructor.
func (r *Registry) Lookup(name string) (elements.Constructor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ctor, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("study.Registry.Lookup(%q): %w", name, ErrModelTypeNotFound)
	}
	return ctor, nil
}

// DefaultRegistry returns a Registry pre-populated with every element
// type in package elements.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	bindings := map[string]elements.Constructor{
		elements.Resistor:             elements.ResistorConstructor,
		elements.VoltageSource:        elements.VoltageSourceConstructor,
		elements.CurrentSource:        elements.CurrentSourceConstructor,
		elements.Conductor:            elements.ConductorConstructor,
		elements.ConvectionInterface:  elements.ConvectionInterfaceConstructor,
		elements.TemperatureDelta:     elements.TemperatureDeltaConstructor,
		elements.HeatFlux:             elements.HeatFluxConstructor,
	}
	for name, ctor := range bindings {
		// Names above are package constants with no chance of
		// collision; any error here would be a programming mistake in
		// this very function, not a caller input.
		if err := r.Register(name, ctor); err != nil {
			panic(fmt.Sprintf("study.DefaultRegistry: %v", err))
		}
	}
	return r
}
