package ggstypes_test

import (
	"testing"

	"github.com/ggs-net/ggsnode/internal/ggstypes"
)

func TestTensorSnapshotHash_Deterministic(t *testing.T) {
	t1 := ggstypes.TensorSnapshot{Dim: 2, Values: []float32{1.0, 2.0}, Version: 3}
	t2 := ggstypes.TensorSnapshot{Dim: 2, Values: []float32{1.0, 2.0}, Version: 3}
	if t1.Hash() != t2.Hash() {
		t.Fatalf("identical snapshots hashed differently: %s != %s", t1.Hash(), t2.Hash())
	}
}

func TestTensorSnapshotHash_Collision(t *testing.T) {
	base := ggstypes.TensorSnapshot{Dim: 2, Values: []float32{1.0, 2.0}, Version: 3}
	variants := []ggstypes.TensorSnapshot{
		{Dim: 2, Values: []float32{1.0, 2.0}, Version: 4},
		{Dim: 2, Values: []float32{1.0, 2.1}, Version: 3},
		{Dim: 3, Values: []float32{1.0, 2.0, 0.0}, Version: 3},
	}
	for _, v := range variants {
		if base.Hash() == v.Hash() {
			t.Fatalf("expected distinct hash for %+v", v)
		}
	}
}

func TestTensorSnapshotHash_Prefix(t *testing.T) {
	snap := ggstypes.TensorSnapshot{Dim: 1, Values: []float32{0.5}, Version: 1}
	h := snap.Hash()
	if len(h) < 2 || h[:2] != "0x" {
		t.Fatalf("expected 0x-prefixed hash, got %q", h)
	}
}

func TestTensorSnapshotValid(t *testing.T) {
	if !(ggstypes.TensorSnapshot{Dim: 2, Values: []float32{1, 2}}).Valid() {
		t.Fatal("expected valid")
	}
	if (ggstypes.TensorSnapshot{Dim: 3, Values: []float32{1, 2}}).Valid() {
		t.Fatal("expected invalid")
	}
}
