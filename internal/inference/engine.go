// Package inference owns the local model state: sparse top-k update
// production with error-feedback residuals, sparse/dense blend
// application, and local training noise, mirroring the original
// InferenceEngine's algorithms and locking shape.
package inference

import (
	"crypto/rand"
	"math/rand/v2"
	"sync"

	"github.com/ggs-net/ggsnode/internal/ggstypes"
)

// Engine owns a ModelState of fixed dimension D, guarded by a single
// read/write lock with non-suspending critical sections.
type Engine struct {
	mu    sync.RWMutex
	state ggstypes.ModelState
	rng   *rand.Rand
}

// New builds an engine around an initial parameter vector. The residual
// starts at zero and version at 1, matching model initialization on node
// start. seed, if non-nil, makes the local training noise deterministic
// (for tests); a nil seed draws fresh entropy from crypto/rand.
func New(params []float32, seed *[32]byte) *Engine {
	dim := len(params)
	p := make([]float32, dim)
	copy(p, params)
	return &Engine{
		state: ggstypes.ModelState{Params: p, Residual: make([]float32, dim), Version: 1},
		rng:   rand.New(rand.NewChaCha8(resolveSeed(seed))),
	}
}

// NewRandom builds an engine with dim parameters drawn uniformly from
// [-0.1, 0.1), for nodes started without a weight file.
func NewRandom(dim int, seed *[32]byte) *Engine {
	e := &Engine{
		state: ggstypes.ModelState{Params: make([]float32, dim), Residual: make([]float32, dim), Version: 1},
		rng:   rand.New(rand.NewChaCha8(resolveSeed(seed))),
	}
	for i := range e.state.Params {
		e.state.Params[i] = float32(e.rng.Float64()*0.2 - 0.1)
	}
	return e
}

func resolveSeed(seed *[32]byte) [32]byte {
	if seed != nil {
		return *seed
	}
	var s [32]byte
	if _, err := rand.Read(s[:]); err != nil {
		panic("inference: failed to seed PRNG: " + err.Error())
	}
	return s
}

// Dim returns the model dimension.
func (e *Engine) Dim() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.Dim()
}

// Version returns the current model version.
func (e *Engine) Version() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.Version
}

// Embedding returns a copy of the current parameter vector.
func (e *Engine) Embedding() []float32 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]float32, len(e.state.Params))
	copy(out, e.state.Params)
	return out
}

// Snapshot returns the current state as a TensorSnapshot.
func (e *Engine) Snapshot() ggstypes.TensorSnapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.Snapshot()
}

// TensorHash returns the hash of the current snapshot.
func (e *Engine) TensorHash() string {
	return e.Snapshot().Hash()
}
