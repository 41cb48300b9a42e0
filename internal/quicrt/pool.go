package quicrt

import (
	"sort"
	"sync"

	"github.com/quic-go/quic-go"
)

// sessionPool is a list of live QUIC connections guarded by an exclusive
// lock only during append/compact; a broadcast pass reads the slice
// without holding the lock so sends can run concurrently with new
// connects, then reports failed indices back for compaction.
type sessionPool struct {
	mu       sync.Mutex
	sessions []quic.Connection
}

func (p *sessionPool) add(conn quic.Connection) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sessions = append(p.sessions, conn)
}

// snapshot returns a copy of the current session list for a broadcast pass.
func (p *sessionPool) snapshot() []quic.Connection {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]quic.Connection, len(p.sessions))
	copy(out, p.sessions)
	return out
}

// removeFailed compacts out the sessions at the given indices (relative to
// the slice returned by the snapshot that produced them), using
// swap-and-pop in descending index order so earlier indices stay valid as
// later ones are removed.
func (p *sessionPool) removeFailed(indices []int) {
	if len(indices) == 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	sorted := append([]int(nil), indices...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	for _, idx := range sorted {
		if idx < 0 || idx >= len(p.sessions) {
			continue
		}
		last := len(p.sessions) - 1
		p.sessions[idx] = p.sessions[last]
		p.sessions = p.sessions[:last]
	}
}

func (p *sessionPool) len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.sessions)
}
