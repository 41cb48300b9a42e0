// Package ggstypes — peer.go
//
// PeerProfile: the topology selector's per-peer scoring record.

package ggstypes

import "time"

// PeerProfile holds a peer's most recently observed embedding/position and
// the derived similarity/geo-affinity/score triple.
type PeerProfile struct {
	Embedding   []float32 `json:"embedding"`
	Position    GeoPoint  `json:"position"`
	Similarity  float32   `json:"similarity"`
	GeoAffinity float32   `json:"geo_affinity"`
	Score       float32   `json:"score"`
	LastSeen    time.Time `json:"last_seen"`
}

// PeerSnapshot is the read-only view returned by peer_snapshot().
type PeerSnapshot struct {
	Similarity    float32  `json:"similarity"`
	GeoAffinity   float32  `json:"geo_affinity"`
	Position      GeoPoint `json:"position"`
	EmbeddingDim  int      `json:"embedding_dim"`
}
