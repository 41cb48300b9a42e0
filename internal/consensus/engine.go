package consensus

import (
	"time"

	"github.com/ggs-net/ggsnode/internal/cryptosuite"
	"github.com/ggs-net/ggsnode/internal/ggstypes"
)

// Engine signs and verifies gossip payloads using a crypto suite, and
// annotates outbound messages with the sender's ledger-derived weight.
type Engine struct {
	suite  *cryptosuite.Suite
	Ledger *Ledger
}

// NewEngine binds a crypto suite to a fresh ledger.
func NewEngine(suite *cryptosuite.Suite) *Engine {
	return &Engine{suite: suite, Ledger: NewLedger(nil)}
}

// Sign canonically serializes payload, signs it, and attaches the
// sender's current combined weight (or the default 0.1 for unknown peers).
func (e *Engine) Sign(payload ggstypes.GgsMessage) (ggstypes.SignedGossip, error) {
	data, err := ggstypes.CanonicalBytes(payload)
	if err != nil {
		return ggstypes.SignedGossip{}, err
	}
	bundle := e.suite.SignBytes(data)

	peer := ggstypes.SenderID(payload)
	weight := float32(defaultWeight)
	if rec, ok := e.Ledger.Get(peer); ok {
		weight = rec.CombinedWeight()
	}
	return ggstypes.SignedGossip{
		Payload:      payload,
		Signature:    bundle,
		StakingScore: weight,
	}, nil
}

// Verify re-serializes signed.Payload canonically and checks it against
// the embedded signature bundle via the crypto suite. It inherits the
// suite's self-only check: a bundle carrying any identity other than this
// node's own is rejected, whoever the claimed sender is.
func (e *Engine) Verify(signed ggstypes.SignedGossip) bool {
	data, err := ggstypes.CanonicalBytes(signed.Payload)
	if err != nil {
		return false
	}
	return e.suite.Verify(data, signed.Signature)
}

// Touch records an observation of peer without altering its stake/reputation,
// refreshing last_seen (and seeding the default record for a new peer).
func (e *Engine) Touch(peer string) {
	e.Ledger.UpdateStake(peer, 0, 0, 0)
}

// PruneStale removes ledger entries idle past the heartbeat timeout.
func (e *Engine) PruneStale(timeout time.Duration) int {
	return e.Ledger.PruneStale(timeout)
}
