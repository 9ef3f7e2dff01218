package network

import "errors"

var (
	// ErrDroppedNode is returned when a NodeRef is resolved after its
	// owning NodeTable has been invalidated, or against an index the
	// table never held.
	ErrDroppedNode = errors.New("network: node reference no longer resolves")

	// ErrAlreadyBorrowed is returned when a node's potential or its
	// input/output lists are accessed while another access already
	// holds the conflicting lock. Callers normally only see this under
	// concurrent use; a single solve thread should never trigger it.
	ErrAlreadyBorrowed = errors.New("network: node is already borrowed")
)
