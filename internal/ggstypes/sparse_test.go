package ggstypes_test

import (
	"reflect"
	"testing"

	"github.com/ggs-net/ggsnode/internal/ggstypes"
)

func TestEncodeDecodeIndicesRoundTrip(t *testing.T) {
	cases := [][]uint32{
		nil,
		{0},
		{1, 5, 7},
		{0, 1, 2, 3, 100},
	}
	for _, abs := range cases {
		enc := ggstypes.EncodeIndices(abs)
		dec := ggstypes.DecodeIndices(enc)
		if len(abs) == 0 {
			if len(dec) != 0 {
				t.Fatalf("expected empty round trip, got %v", dec)
			}
			continue
		}
		if !reflect.DeepEqual(abs, dec) {
			t.Fatalf("round trip mismatch: %v != %v", abs, dec)
		}
	}
}

func TestEncodeIndicesScenario(t *testing.T) {
	// From core spec §8 scenario 1: absolute [1,5,7] -> delta [1,4,2].
	got := ggstypes.EncodeIndices([]uint32{1, 5, 7})
	want := []uint32{1, 4, 2}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSparseUpdateDecode_LengthMismatch(t *testing.T) {
	u := ggstypes.SparseUpdate{Indices: []uint32{1, 2}, Values: []float32{1.0}}
	if _, err := u.Decode(); err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
}

func TestSparseUpdateDecode(t *testing.T) {
	u := ggstypes.SparseUpdate{Indices: []uint32{1, 4, 2}, Values: []float32{-0.9, 0.7, 0.3}}
	abs, err := u.Decode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []uint32{1, 5, 7}
	if !reflect.DeepEqual(abs, want) {
		t.Fatalf("got %v, want %v", abs, want)
	}
}
