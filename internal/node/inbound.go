package node

import (
	"context"

	"go.uber.org/zap"

	"github.com/ggs-net/ggsnode/internal/ggstypes"
	"github.com/ggs-net/ggsnode/internal/gossiptransport"
)

// handleInbound verifies and dispatches one inbound gossip message.
// Verification failure drops the message without touching any state.
func (n *Node) handleInbound(ctx context.Context, msg gossiptransport.InboundMessage) {
	signed, err := ggstypes.DecodeSignedGossip(msg.Data)
	if err != nil {
		n.log.Debug("dropping malformed inbound message", zap.Error(err))
		n.recordReceived("malformed")
		return
	}
	if !n.Consensus.Verify(signed) {
		n.log.Debug("dropping inbound message with invalid signature")
		n.recordReceived("bad_signature")
		return
	}

	switch payload := signed.Payload.(type) {
	case ggstypes.Heartbeat:
		n.Consensus.Ledger.UpdateStake(payload.PeerID, 0, 0, 0.05)
		n.recordReceived("accepted")

	case ggstypes.SimilarityProbe:
		n.handleProbe(ctx, payload)
		n.recordReceived("accepted")

	case ggstypes.SparseUpdateMsg:
		if err := n.Inference.ApplySparseUpdate(payload.Update); err != nil {
			n.log.Debug("dropping malformed sparse update", zap.Error(err))
			n.recordReceived("malformed")
			return
		}
		n.Consensus.Ledger.UpdateStake(payload.Sender, 0.1, 0, 0.1)
		if n.Metrics != nil {
			n.Metrics.SparseUpdatesAppliedTotal.Inc()
		}
		n.recordReceived("accepted")

	case ggstypes.DenseSnapshotMsg:
		n.Inference.ApplyDenseSnapshot(payload.Snapshot)
		n.Consensus.Ledger.UpdateStake(payload.Sender, 0, 0.2, 0.05)
		if n.Metrics != nil {
			n.Metrics.DenseSnapshotsAppliedTotal.Inc()
		}
		n.recordReceived("accepted")

	default:
		n.log.Debug("dropping inbound message of unknown kind")
		n.recordReceived("unknown_kind")
	}
}

func (n *Node) recordReceived(status string) {
	if n.Metrics != nil {
		n.Metrics.GossipReceivedTotal.WithLabelValues(status).Inc()
	}
}

// handleProbe scores the sender into the topology selector; a probe from
// a current primary neighbor that clears the sparse bandwidth budget earns
// a sparse update in response, while a probe from a non-neighbor gets the
// sender demoted to keep the topology tight.
func (n *Node) handleProbe(ctx context.Context, probe ggstypes.SimilarityProbe) {
	profile := n.Topology.UpdatePeer(probe.Sender, probe.Embedding, probe.Position, n.Inference.Embedding())
	if n.Metrics != nil {
		n.Metrics.PeerScoreHistogram.Observe(float64(profile.Score))
	}

	primary, _ := n.Topology.NeighborSets()
	if !contains(primary, probe.Sender) {
		n.Topology.MarkUnreachable(probe.Sender)
		return
	}
	if !n.Bandwidth.AllowSparse() {
		if n.Metrics != nil {
			n.Metrics.BandwidthSparseDeniedTotal.Inc()
		}
		return
	}
	update := n.Inference.MakeSparseUpdate(n.cfg.SparseK)
	if err := n.publish(ctx, ggstypes.SparseUpdateMsg{Sender: n.cfg.PeerID, Update: update}); err != nil {
		n.log.Warn("sparse update publish failed", zap.Error(err))
	}
}

func contains(xs []string, v string) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
