package inference

import (
	"sort"

	"github.com/ggs-net/ggsnode/internal/ggstypes"
)

// MakeSparseUpdate selects the k largest-magnitude entries of
// params+residual, delta-encodes their indices, zeroes the residual at
// emitted positions (error-feedback), and bumps the version. Ties in
// magnitude break by ascending index via a stable sort. Returns an empty
// update (current version, no bump) if D == 0 or k == 0.
func (e *Engine) MakeSparseUpdate(k int) ggstypes.SparseUpdate {
	e.mu.Lock()
	defer e.mu.Unlock()

	dim := len(e.state.Params)
	if dim == 0 || k == 0 {
		return ggstypes.SparseUpdate{Version: e.state.Version}
	}

	delta := make([]float32, dim)
	for i := range delta {
		delta[i] = e.state.Params[i] + e.state.Residual[i]
	}

	order := make([]int, dim)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return absf32(delta[order[a]]) > absf32(delta[order[b]])
	})

	if k > dim {
		k = dim
	}
	selected := append([]int(nil), order[:k]...)
	sort.Ints(selected)

	values := make([]float32, k)
	absolute := make([]uint32, k)
	for i, pos := range selected {
		values[i] = delta[pos]
		absolute[i] = uint32(pos)
		e.state.Residual[pos] = 0
	}

	e.state.Version++
	return ggstypes.SparseUpdate{
		Indices: ggstypes.EncodeIndices(absolute),
		Values:  values,
		Version: e.state.Version,
	}
}

// ApplySparseUpdate blends u into the model: for each decoded (pos, v)
// with pos < D, params[pos] = 0.5*old + 0.5*v and the delta is folded back
// into the residual. Out-of-range positions are silently skipped. Version
// advances to max(version, u.Version).
func (e *Engine) ApplySparseUpdate(u ggstypes.SparseUpdate) error {
	positions, err := u.Decode()
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	dim := len(e.state.Params)
	for i, pos := range positions {
		if int(pos) >= dim {
			continue
		}
		old := e.state.Params[pos]
		merged := 0.5*old + 0.5*u.Values[i]
		e.state.Params[pos] = merged
		e.state.Residual[pos] += old - merged
	}
	if u.Version > e.state.Version {
		e.state.Version = u.Version
	}
	return nil
}

func absf32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
