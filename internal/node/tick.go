package node

import (
	"context"

	"go.uber.org/zap"

	"github.com/ggs-net/ggsnode/internal/ggstypes"
)

// tick runs one ticker-fire round: heartbeat, then probe, then a local
// training step, then stale-ledger pruning, then (every DenseEveryTicks
// ticks) an attempted dense snapshot publish, then topology diagnostics.
// Steps run strictly in this order within the round.
func (n *Node) tick(ctx context.Context) {
	n.tickCounter++

	if err := n.publish(ctx, ggstypes.Heartbeat{
		PeerID:    n.cfg.PeerID,
		ModelHash: n.Inference.TensorHash(),
	}); err != nil {
		n.log.Warn("heartbeat publish failed", zap.Error(err))
	}

	if err := n.publish(ctx, ggstypes.SimilarityProbe{
		Sender:    n.cfg.PeerID,
		Embedding: n.Inference.Embedding(),
		Position:  n.selfPosition,
	}); err != nil {
		n.log.Warn("probe publish failed", zap.Error(err))
	}

	n.Inference.LocalTrainStep()
	pruned := n.Consensus.PruneStale(n.cfg.HeartbeatTimeout)
	if n.Metrics != nil {
		n.Metrics.LedgerPrunedTotal.Add(float64(pruned))
	}

	if n.tickCounter%n.cfg.DenseEveryTicks == 0 {
		n.tryPublishDenseSnapshot(ctx)
	}

	n.emitTopologyHealth()
	n.recordGauges()
}

// recordGauges refreshes the point-in-time gauges; counters are updated
// inline at their point of occurrence instead.
func (n *Node) recordGauges() {
	if n.Metrics == nil {
		return
	}
	n.Metrics.ModelVersion.Set(float64(n.Inference.Version()))
	primary, backup := n.Topology.NeighborSets()
	n.Metrics.PrimaryNeighbors.Set(float64(len(primary)))
	n.Metrics.BackupNeighbors.Set(float64(len(backup)))
	n.Metrics.StakeLedgerEntries.Set(float64(n.Consensus.Ledger.Len()))
	if n.Broadcaster != nil {
		n.Metrics.RealtimeSessionsActive.Set(float64(n.Broadcaster.SessionCount()))
	}
}

func (n *Node) tryPublishDenseSnapshot(ctx context.Context) {
	snapshot := n.Inference.Snapshot()
	byteCost := int64(len(snapshot.Values)) * 4
	if !n.Bandwidth.AllowDense(byteCost) {
		n.log.Debug("dense snapshot suppressed by bandwidth budget")
		if n.Metrics != nil {
			n.Metrics.BandwidthDenseDeniedTotal.Inc()
		}
		return
	}
	if err := n.publish(ctx, ggstypes.DenseSnapshotMsg{Sender: n.cfg.PeerID, Snapshot: snapshot}); err != nil {
		n.log.Warn("dense snapshot publish failed", zap.Error(err))
	}
}

// emitTopologyHealth logs a diagnostic when the primary pool is below its
// target size or the backup pool can't cover a primary loss.
func (n *Node) emitTopologyHealth() {
	primary, backup := n.Topology.NeighborSets()
	target := n.Topology.MaxNeighbors()
	if len(primary) < target {
		n.log.Warn("topology health: primary pool below target",
			zap.Int("primary_count", len(primary)), zap.Int("target", target))
	}
	if len(backup) == 0 && len(primary) > 0 {
		n.log.Warn("topology health: no backup coverage", zap.Int("primary_count", len(primary)))
	}
}
