package node

import (
	"context"

	"go.uber.org/zap"

	"github.com/ggs-net/ggsnode/internal/ggstypes"
)

// publish signs payload, emits it on the gossip overlay, and additionally
// hands it to the realtime broadcaster if one is configured. Broadcaster
// failure is logged but non-fatal.
func (n *Node) publish(ctx context.Context, payload ggstypes.GgsMessage) error {
	signed, err := n.Consensus.Sign(payload)
	if err != nil {
		n.log.Warn("sign outbound message failed", zap.Error(err))
		return err
	}
	data, err := ggstypes.EncodeSignedGossip(signed)
	if err != nil {
		n.log.Warn("encode outbound message failed", zap.Error(err))
		return err
	}
	if err := n.Transport.Publish(ctx, n.cfg.Topic, data); err != nil {
		n.log.Warn("transport publish failed", zap.Error(err))
		return err
	}
	if n.Metrics != nil {
		n.Metrics.GossipPublishedTotal.WithLabelValues(string(payload.Kind())).Inc()
	}
	if n.Broadcaster != nil {
		if !n.Broadcaster.Broadcast(data) {
			n.log.Warn("realtime broadcaster delivered to no sessions")
		}
	}
	return nil
}
