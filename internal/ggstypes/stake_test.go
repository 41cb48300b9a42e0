package ggstypes_test

import (
	"testing"

	"github.com/ggs-net/ggsnode/internal/ggstypes"
)

func TestStakeRecordCombinedWeight_Bounds(t *testing.T) {
	cases := []ggstypes.StakeRecord{
		{StakeA: 0, StakeB: 0, Reputation: 0},
		{StakeA: 1e9, StakeB: 1e9, Reputation: 1e9},
		{StakeA: 1, StakeB: 1, Reputation: -5},
	}
	for _, r := range cases {
		w := r.CombinedWeight()
		if w < 0 || w > 5 {
			t.Fatalf("combined weight %f out of bounds for %+v", w, r)
		}
	}
}

func TestStakeRecordCombinedWeight_NegativeReputationIgnored(t *testing.T) {
	withNeg := ggstypes.StakeRecord{StakeA: 1, StakeB: 1, Reputation: -10}
	zero := ggstypes.StakeRecord{StakeA: 1, StakeB: 1, Reputation: 0}
	if withNeg.CombinedWeight() != zero.CombinedWeight() {
		t.Fatalf("expected negative reputation clamped to 0")
	}
}
