package bandwidth_test

import (
	"testing"
	"time"

	"github.com/ggs-net/ggsnode/internal/bandwidth"
)

func TestAllowSparse_Scenario(t *testing.T) {
	now := time.Now()
	b := bandwidth.New(bandwidth.Config{SparsePerWindow: 2, DenseBytesPerWindow: 1 << 20, WindowSecs: 60},
		func() time.Time { return now })

	if !b.AllowSparse() {
		t.Fatal("expected first allow")
	}
	if !b.AllowSparse() {
		t.Fatal("expected second allow")
	}
	if b.AllowSparse() {
		t.Fatal("expected third deny within window")
	}

	now = now.Add(61 * time.Second)
	if !b.AllowSparse() {
		t.Fatal("expected allow after window roll")
	}
}

func TestAllowDense_CapsAggregateBytes(t *testing.T) {
	now := time.Now()
	b := bandwidth.New(bandwidth.Config{SparsePerWindow: 100, DenseBytesPerWindow: 100, WindowSecs: 60},
		func() time.Time { return now })

	if !b.AllowDense(60) {
		t.Fatal("expected first dense publish allowed")
	}
	if b.AllowDense(60) {
		t.Fatal("expected second dense publish denied (would exceed cap)")
	}
	if !b.AllowDense(40) {
		t.Fatal("expected exact-fit dense publish allowed")
	}
}

func TestAllowDense_RollsOverIndependentlyOfSparse(t *testing.T) {
	now := time.Now()
	b := bandwidth.New(bandwidth.Config{SparsePerWindow: 1, DenseBytesPerWindow: 10, WindowSecs: 30},
		func() time.Time { return now })

	b.AllowDense(10)
	if b.AllowDense(1) {
		t.Fatal("expected dense cap reached")
	}
	now = now.Add(31 * time.Second)
	if !b.AllowDense(10) {
		t.Fatal("expected dense budget to roll over after window elapses")
	}
}
