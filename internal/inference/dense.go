package inference

import "github.com/ggs-net/ggsnode/internal/ggstypes"

// ApplyDenseSnapshot blends snapshot into the model at a fixed 80/20
// weight favoring existing state, over the first min(D, len(values))
// positions. Version advances to max(version, snapshot.Version).
func (e *Engine) ApplyDenseSnapshot(snapshot ggstypes.TensorSnapshot) {
	e.mu.Lock()
	defer e.mu.Unlock()

	n := len(e.state.Params)
	if len(snapshot.Values) < n {
		n = len(snapshot.Values)
	}
	for i := 0; i < n; i++ {
		e.state.Params[i] = 0.8*e.state.Params[i] + 0.2*snapshot.Values[i]
	}
	if snapshot.Version > e.state.Version {
		e.state.Version = snapshot.Version
	}
}
