package inference

// LocalTrainStep perturbs every parameter by uniform noise in
// [-1e-3, 1e-3] and bumps the version.
func (e *Engine) LocalTrainStep() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.state.Params {
		e.state.Params[i] += float32(e.rng.Float64()*2e-3 - 1e-3)
	}
	e.state.Version++
}
