// Package bandwidth gates outbound publish volume with per-window sparse
// publish counts and dense byte totals, adapted from the token-bucket
// rate limiter it is grounded on: same mutex-guarded atomic
// check-then-increment shape, but windows roll over lazily on first check
// after the window elapses rather than via a background refill goroutine.
package bandwidth

import (
	"sync"
	"time"
)

// Config holds the per-window caps and window length.
type Config struct {
	SparsePerWindow      int
	DenseBytesPerWindow  int64
	WindowSecs           int
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{SparsePerWindow: 12, DenseBytesPerWindow: 262144, WindowSecs: 60}
}

// Budget tracks sparse-publish count and dense-byte totals within the
// current rolling window.
type Budget struct {
	mu          sync.Mutex
	cfg         Config
	windowStart time.Time
	sparseCount int
	denseBytes  int64
	now         func() time.Time
}

// New builds a Budget starting a fresh window at construction time.
// nowFn defaults to time.Now when nil.
func New(cfg Config, nowFn func() time.Time) *Budget {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &Budget{cfg: cfg, now: nowFn, windowStart: nowFn()}
}

// rolloverLocked resets counters if the current window has elapsed. Caller
// must hold mu.
func (b *Budget) rolloverLocked() {
	if b.now().Sub(b.windowStart) >= time.Duration(b.cfg.WindowSecs)*time.Second {
		b.windowStart = b.now()
		b.sparseCount = 0
		b.denseBytes = 0
	}
}

// AllowSparse atomically rotates the window if elapsed, then admits one
// more sparse publish if under cap.
func (b *Budget) AllowSparse() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rolloverLocked()
	if b.sparseCount >= b.cfg.SparsePerWindow {
		return false
	}
	b.sparseCount++
	return true
}

// AllowDense atomically rotates the window if elapsed, then admits n dense
// bytes if the running total would stay within cap.
func (b *Budget) AllowDense(n int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rolloverLocked()
	if b.denseBytes+n > b.cfg.DenseBytesPerWindow {
		return false
	}
	b.denseBytes += n
	return true
}

// Reconfigure swaps in new caps without resetting the current window's
// counters. The new caps apply from the next check, measured against what
// the current window has already admitted; a cap narrowed below that
// amount denies until the next rollover.
func (b *Budget) Reconfigure(cfg Config) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cfg = cfg
}
