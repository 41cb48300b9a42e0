// Package ggstypes — stake.go
//
// StakeRecord: a peer's stake/reputation bookkeeping, and the bounded
// combined weight derived from it.

package ggstypes

import (
	"math"
	"time"
)

// StakeRecord tracks a peer's dual-curve stake and behavioral reputation.
type StakeRecord struct {
	StakeA     float64   `json:"stake_a"`
	StakeB     float64   `json:"stake_b"`
	Reputation float64   `json:"reputation"`
	LastSeen   time.Time `json:"last_seen"`
}

// CombinedWeight returns clamp(ln1p(stake_a+stake_b) + ln1p(max(rep,0)), 0, 5)
// cast to float32, as defined by the core spec's data model.
func (r StakeRecord) CombinedWeight() float32 {
	rep := r.Reputation
	if rep < 0 {
		rep = 0
	}
	w := math.Log1p(r.StakeA+r.StakeB) + math.Log1p(rep)
	if w < 0 {
		w = 0
	}
	if w > 5 {
		w = 5
	}
	return float32(w)
}
