package study

// ElementSpec is one entry in a model document's element list: an
// instance of a registered type connecting two nodes by index.
type ElementSpec struct {
	ElementType string    `json:"element_type"`
	Input       uint32    `json:"input"`
	Output      uint32    `json:"output"`
	Gain        []float64 `json:"gain"`
}

// NodeConfig fixes a node's boundary behavior: whether it starts
// locked (grounded) and any metadata to stash on it.
type NodeConfig struct {
	Node     uint32             `json:"node"`
	Locked   bool               `json:"is_locked"`
	Metadata map[string]float64 `json:"metadata,omitempty"`
}

// Model is the JSON document a study is configured from: how many
// nodes exist, which of them have a fixed configuration, and which
// elements connect them.
type Model struct {
	ModelType     string       `json:"model_type"`
	Nodes         uint32       `json:"nodes"`
	Configuration []NodeConfig `json:"configuration,omitempty"`
	Elements      []ElementSpec `json:"elements"`
}

// Result is the JSON document a solved study produces: every node's
// final potential and every element's final flux, keyed by their
// decimal index the way a model document addresses them.
type Result struct {
	Nodes    map[string][]float64 `json:"nodes"`
	Elements map[string][]float64 `json:"elements"`
}
