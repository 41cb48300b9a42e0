package topology

import "github.com/ggs-net/ggsnode/internal/ggstypes"

// MarkUnreachable removes peer's profile immediately.
func (s *Selector) MarkUnreachable(peer string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.peers, peer)
}

// PeerSnapshot returns a view of peer's similarity, geo-affinity, position,
// and embedding dimension, if present.
func (s *Selector) PeerSnapshot(peer string) (ggstypes.PeerSnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.peers[peer]
	if !ok {
		return ggstypes.PeerSnapshot{}, false
	}
	return ggstypes.PeerSnapshot{
		Similarity:   e.profile.Similarity,
		GeoAffinity:  e.profile.GeoAffinity,
		Position:     e.profile.Position,
		EmbeddingDim: len(e.profile.Embedding),
	}, true
}
