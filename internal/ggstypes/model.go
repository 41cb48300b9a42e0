// Package ggstypes — model.go
//
// ModelState: the node's local parameter vector plus its error-feedback
// residual. Owned and mutated by internal/inference; this file holds only
// the value shape and its structural invariant check.

package ggstypes

// ModelState is a node's local model: parameters, the carried-over residual
// from top-k compression, and a monotonically non-decreasing version.
type ModelState struct {
	Params   []float32 `json:"params"`
	Residual []float32 `json:"residual"`
	Version  uint64    `json:"version"`
}

// Dim returns the parameter dimensionality D.
func (m ModelState) Dim() int {
	return len(m.Params)
}

// Valid reports whether len(Params) == len(Residual).
func (m ModelState) Valid() bool {
	return len(m.Params) == len(m.Residual)
}

// Snapshot returns the dense TensorSnapshot view of the current parameters.
func (m ModelState) Snapshot() TensorSnapshot {
	values := make([]float32, len(m.Params))
	copy(values, m.Params)
	return TensorSnapshot{
		Dim:     uint64(len(values)),
		Values:  values,
		Version: m.Version,
	}
}
