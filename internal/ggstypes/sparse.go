// Package ggstypes — sparse.go
//
// SparseUpdate: a delta-encoded top-k parameter update, produced by the
// inference engine's error-feedback compression and applied by peers.

package ggstypes

import "fmt"

// SparseUpdate carries a compressed set of (index, value) pairs.
// Indices are delta-encoded: Indices[0] is the absolute position of the
// first selected entry; each subsequent element is the positive delta from
// the previous absolute index. Invariant: len(Indices) == len(Values), and
// the decoded absolute indices are strictly ascending.
type SparseUpdate struct {
	Indices []uint32  `json:"indices"`
	Values  []float32 `json:"values"`
	Version uint64    `json:"version"`
}

// EncodeIndices delta-encodes a strictly ascending, non-negative sequence
// of absolute indices into the wire representation described above.
func EncodeIndices(absolute []uint32) []uint32 {
	if len(absolute) == 0 {
		return nil
	}
	out := make([]uint32, len(absolute))
	out[0] = absolute[0]
	for i := 1; i < len(absolute); i++ {
		out[i] = absolute[i] - absolute[i-1]
	}
	return out
}

// DecodeIndices reverses EncodeIndices, returning the absolute indices.
func DecodeIndices(encoded []uint32) []uint32 {
	if len(encoded) == 0 {
		return nil
	}
	out := make([]uint32, len(encoded))
	out[0] = encoded[0]
	for i := 1; i < len(encoded); i++ {
		out[i] = out[i-1] + encoded[i]
	}
	return out
}

// Decode returns the absolute indices for u, validating the length
// invariant. An error here is a DecodeError per the core spec's error
// taxonomy — the caller should drop the message, not crash.
func (u SparseUpdate) Decode() ([]uint32, error) {
	if len(u.Indices) != len(u.Values) {
		return nil, fmt.Errorf("ggstypes: sparse update indices/values length mismatch: %d != %d",
			len(u.Indices), len(u.Values))
	}
	return DecodeIndices(u.Indices), nil
}
