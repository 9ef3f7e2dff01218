package study

import "errors"

var (
	// ErrElementTypeNameCollision is returned by Registry.Register when
	// a type name is already bound to a constructor.
	ErrElementTypeNameCollision = errors.New("study: element type name already registered")

	// ErrModelTypeNotFound is returned by Registry.Lookup, and in turn
	// by Build, when a model document names a type the registry
	// doesn't know about.
	ErrModelTypeNotFound = errors.New("study: element type not found in registry")

	// ErrNoNodesInSystem is returned by Build when the model declares
	// zero nodes; a network needs at least one node to mean anything.
	ErrNoNodesInSystem = errors.New("study: model declares no nodes")

	// ErrNodeDoesNotExist is returned by Build when an element, or a
	// configuration entry, refers to a node index the model never
	// declared.
	ErrNodeDoesNotExist = errors.New("study: referenced node does not exist")

	// ErrConfigurationNameCollision is returned when the same node
	// index appears more than once in the configuration list.
	ErrConfigurationNameCollision = errors.New("study: node already has a configuration entry")

	// ErrUnreachableNode is returned by Build when the connectivity
	// check finds one or more nodes with no path, through any chain of
	// elements, to the rest of the network. Left undetected, this
	// shows up downstream as an opaque singular-Jacobian failure
	// instead of a named, fixable modelling mistake.
	ErrUnreachableNode = errors.New("study: one or more nodes are unreachable from the rest of the network")
)
