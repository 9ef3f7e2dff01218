package study

import (
	"fmt"

	"github.com/ForceOverArea/neapolitan/network"
)

// Option customizes Configure the way a functional option customizes
// any other staged builder in this codebase.
type Option func(*configuration)

type configuration struct {
	registry *Registry
}

// WithRegistry overrides the element type registry a model document is
// resolved against. Configure uses DefaultRegistry() if this option is
// never supplied.
func WithRegistry(r *Registry) Option {
	return func(c *configuration) {
		if r != nil {
			c.registry = r
		}
	}
}

// Configurator stages a model document and its registry, ready to
// Build into a solvable Study. It performs no node or element
// construction itself.
type Configurator struct {
	model Model
	cfg   configuration
}

// Configure stages model against the given options, ready for Build.
func Configure(model Model, opts ...Option) (*Configurator, error) {
	cfg := configuration{registry: DefaultRegistry()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Configurator{model: model, cfg: cfg}, nil
}

// Build validates and constructs the network described by the staged
// model: one node per declared index, every configuration entry
// applied, every element resolved against the registry and wired in,
// and finally a connectivity check over the whole graph.
func (c *Configurator) Build() (*Study, error) {
	n := int(c.model.Nodes)
	if n == 0 {
		return nil, ErrNoNodesInSystem
	}

	table := network.NewNodeTable()
	for i := 0; i < n; i++ {
		node, err := network.NewNode(1)
		if err != nil {
			return nil, fmt.Errorf("study.Build: %w", err)
		}
		table.Append(node)
	}

	configured := make(map[uint32]bool, len(c.model.Configuration))
	for _, entry := range c.model.Configuration {
		if entry.Node >= c.model.Nodes {
			return nil, fmt.Errorf("study.Build: configuration for node %d: %w", entry.Node, ErrNodeDoesNotExist)
		}
		if configured[entry.Node] {
			return nil, fmt.Errorf("study.Build: node %d: %w", entry.Node, ErrConfigurationNameCollision)
		}
		configured[entry.Node] = true

		node, err := table.At(entry.Node)
		if err != nil {
			return nil, fmt.Errorf("study.Build: %w", err)
		}
		if entry.Locked {
			if err := node.Ground(); err != nil {
				return nil, fmt.Errorf("study.Build: %w", err)
			}
		}
		for key, value := range entry.Metadata {
			if err := node.SetMetadata(key, value); err != nil {
				return nil, fmt.Errorf("study.Build: %w", err)
			}
		}
	}

	adjacency := make(map[uint32][]uint32, n)
	elems := make([]*network.Element, 0, len(c.model.Elements))
	for i, spec := range c.model.Elements {
		if spec.Input >= c.model.Nodes {
			return nil, fmt.Errorf("study.Build: element %d input %d: %w", i, spec.Input, ErrNodeDoesNotExist)
		}
		if spec.Output >= c.model.Nodes {
			return nil, fmt.Errorf("study.Build: element %d output %d: %w", i, spec.Output, ErrNodeDoesNotExist)
		}

		ctor, err := c.cfg.registry.Lookup(spec.ElementType)
		if err != nil {
			return nil, fmt.Errorf("study.Build: element %d: %w", i, err)
		}

		inRef := table.Ref(spec.Input)
		outRef := table.Ref(spec.Output)
		elem, err := ctor(inRef, outRef, spec.Gain)
		if err != nil {
			return nil, fmt.Errorf("study.Build: element %d (%s): %w", i, spec.ElementType, err)
		}
		elems = append(elems, elem)

		adjacency[spec.Input] = append(adjacency[spec.Input], spec.Output)
		adjacency[spec.Output] = append(adjacency[spec.Output], spec.Input)
	}

	if err := checkConnectivity(n, adjacency); err != nil {
		return nil, fmt.Errorf("study.Build: %w", err)
	}

	return &Study{table: table, elements: elems}, nil
}
