package topology

import (
	"math"
	"sort"
)

// NeighborSets ranks all peers by score descending (ties broken by
// insertion order, NaN scores treated as equal to anything so the stable
// order wins), drops those below MinScore, and partitions the remainder
// into a primary pool (up to MaxNeighbors) and a failover pool (up to
// FailoverPool beyond that).
func (s *Selector) NeighborSets() (primary, backup []string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type ranked struct {
		id    string
		score float32
		seq   uint64
	}
	all := make([]ranked, 0, len(s.peers))
	for id, e := range s.peers {
		all = append(all, ranked{id: id, score: e.profile.Score, seq: e.seq})
	}
	// map iteration order is random; sort by insertion sequence first so the
	// later stable sort's ties fall back to insertion order.
	sort.Slice(all, func(a, b int) bool { return all[a].seq < all[b].seq })

	sort.SliceStable(all, func(a, b int) bool {
		sa, sb := all[a].score, all[b].score
		if math.IsNaN(float64(sa)) || math.IsNaN(float64(sb)) {
			return false
		}
		if sa != sb {
			return sa > sb
		}
		return all[a].seq < all[b].seq
	})

	filtered := all[:0:0]
	for _, r := range all {
		if !math.IsNaN(float64(r.score)) && r.score < s.cfg.MinScore {
			continue
		}
		filtered = append(filtered, r)
	}

	for i, r := range filtered {
		switch {
		case i < s.cfg.MaxNeighbors:
			primary = append(primary, r.id)
		case i < s.cfg.MaxNeighbors+s.cfg.FailoverPool:
			backup = append(backup, r.id)
		default:
			return primary, backup
		}
	}
	return primary, backup
}
