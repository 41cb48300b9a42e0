// Package ggstypes — tensor.go
//
// TensorSnapshot: a versioned dense parameter vector, with a deterministic
// content hash used for heartbeats and dense-blend bookkeeping.

package ggstypes

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"

	"golang.org/x/crypto/sha3"
)

// TensorSnapshot is a full parameter vector at a given version.
// Invariant: Dim == len(Values).
type TensorSnapshot struct {
	Dim     uint64    `json:"dim"`
	Values  []float32 `json:"values"`
	Version uint64    `json:"version"`
}

// Hash returns the deterministic content hash of t: Keccak-256 over the
// little-endian encoding of Dim, the little-endian encoding of Version, and
// the little-endian byte representation of each value in order, rendered
// as a "0x"-prefixed lowercase hex string.
//
// The core spec calls for "native-endian" value encoding; this
// implementation fixes little-endian, since every platform this repository
// targets (amd64, arm64) is little-endian, and fixing the byte order is
// the only way the hash can be reproduced across nodes at all.
func (t TensorSnapshot) Hash() string {
	h := sha3.NewLegacyKeccak256()

	var u64buf [8]byte
	binary.LittleEndian.PutUint64(u64buf[:], t.Dim)
	h.Write(u64buf[:])
	binary.LittleEndian.PutUint64(u64buf[:], t.Version)
	h.Write(u64buf[:])

	var f32buf [4]byte
	for _, v := range t.Values {
		binary.LittleEndian.PutUint32(f32buf[:], math.Float32bits(v))
		h.Write(f32buf[:])
	}

	return fmt.Sprintf("0x%s", hex.EncodeToString(h.Sum(nil)))
}

// Valid reports whether the Dim/Values invariant holds.
func (t TensorSnapshot) Valid() bool {
	return t.Dim == uint64(len(t.Values))
}
