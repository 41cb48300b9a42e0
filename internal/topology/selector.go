// Package topology ranks known peers by a blended similarity/geo-affinity
// score and partitions them into primary and failover neighbor pools,
// following the RWMutex-guarded map and staleness-eviction shape of the
// gossip quorum store it is modeled on.
package topology

import (
	"sync"
	"time"

	"github.com/ggs-net/ggsnode/internal/ggstypes"
)

// Config holds the selector's tunable thresholds, each defaulted to the
// documented values.
type Config struct {
	GeoScaleKm    float64
	PeerStaleSecs int
	MinScore      float32
	MaxNeighbors  int
	FailoverPool  int
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		GeoScaleKm:    500,
		PeerStaleSecs: 120,
		MinScore:      0.15,
		MaxNeighbors:  8,
		FailoverPool:  4,
	}
}

type entry struct {
	profile ggstypes.PeerProfile
	seq     uint64
}

// Selector holds peer profiles keyed by peer-id, plus this node's own
// fixed position used to compute geo-affinity.
type Selector struct {
	mu       sync.RWMutex
	cfg      Config
	selfPos  ggstypes.GeoPoint
	peers    map[string]*entry
	nextSeq  uint64
	now      func() time.Time
}

// New builds a Selector for a node located at selfPos.
func New(cfg Config, selfPos ggstypes.GeoPoint, nowFn func() time.Time) *Selector {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &Selector{cfg: cfg, selfPos: selfPos, peers: make(map[string]*entry), now: nowFn}
}

// UpdatePeer scores peer against this node's current embedding and
// inserts/replaces its profile, then evicts any profile stale past
// PeerStaleSecs.
func (s *Selector) UpdatePeer(peer string, embedding []float32, position ggstypes.GeoPoint, selfEmbedding []float32) ggstypes.PeerProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	sim := cosineSimilarity(selfEmbedding, embedding)
	geo := geoAffinity(s.selfPos, position, s.cfg.GeoScaleKm)
	score := 0.6*sim + 0.4*geo

	profile := ggstypes.PeerProfile{
		Embedding:   embedding,
		Position:    position,
		Similarity:  sim,
		GeoAffinity: geo,
		Score:       score,
		LastSeen:    s.now(),
	}

	if e, ok := s.peers[peer]; ok {
		e.profile = profile
	} else {
		s.peers[peer] = &entry{profile: profile, seq: s.nextSeq}
		s.nextSeq++
	}

	s.evictStaleLocked()
	return profile
}

func (s *Selector) evictStaleLocked() {
	cutoff := s.now().Add(-time.Duration(s.cfg.PeerStaleSecs) * time.Second)
	for id, e := range s.peers {
		if e.profile.LastSeen.Before(cutoff) {
			delete(s.peers, id)
		}
	}
}

// MaxNeighbors reports the configured primary pool target size.
func (s *Selector) MaxNeighbors() int { return s.cfg.MaxNeighbors }

// Reconfigure swaps in new thresholds; existing peer scores are left as
// computed. NeighborSets applies the new MinScore/MaxNeighbors/FailoverPool
// to the stored scores, and a peer is re-scored (with the new GeoScaleKm)
// only by its own next UpdatePeer call.
func (s *Selector) Reconfigure(cfg Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
}

// Len reports the number of tracked peers.
func (s *Selector) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.peers)
}
