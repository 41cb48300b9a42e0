package consensus_test

import (
	"testing"
	"time"

	"github.com/ggs-net/ggsnode/internal/consensus"
)

func TestUpdateStake_SeedsDefaultsOnFirstObservation(t *testing.T) {
	l := consensus.NewLedger(nil)
	rec := l.UpdateStake("peer-1", 0, 0, 0)
	if rec.StakeA != 1.0 || rec.StakeB != 0.1 || rec.Reputation != 1.0 {
		t.Fatalf("expected seeded defaults, got %+v", rec)
	}
}

func TestUpdateStake_ClampsLowerBounds(t *testing.T) {
	l := consensus.NewLedger(nil)
	l.UpdateStake("peer-1", 0, 0, 0)
	rec := l.UpdateStake("peer-1", -100, -100, -100)
	if rec.StakeA != 0 || rec.StakeB != 0 || rec.Reputation != -1.0 {
		t.Fatalf("expected clamped bounds (0,0,-1), got %+v", rec)
	}
}

func TestPruneStale_RemovesOldEntries(t *testing.T) {
	now := time.Now()
	l := consensus.NewLedger(func() time.Time { return now })
	l.UpdateStake("old", 0, 0, 0)

	now = now.Add(10 * time.Minute)
	l.UpdateStake("fresh", 0, 0, 0)

	removed := l.PruneStale(5 * time.Minute)
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}
	if _, ok := l.Get("old"); ok {
		t.Fatal("expected old peer pruned")
	}
	if _, ok := l.Get("fresh"); !ok {
		t.Fatal("expected fresh peer retained")
	}
}

func TestStakeWeight_UnknownPeerIsZero(t *testing.T) {
	l := consensus.NewLedger(nil)
	if w := l.StakeWeight("nobody"); w != 0 {
		t.Fatalf("expected 0 weight for unknown peer, got %f", w)
	}
}

func TestStakeWeight_KnownPeerBounded(t *testing.T) {
	l := consensus.NewLedger(nil)
	l.UpdateStake("peer-1", 100, 100, 100)
	w := l.StakeWeight("peer-1")
	if w <= 0 || w > 5 {
		t.Fatalf("expected bounded positive weight, got %f", w)
	}
}
