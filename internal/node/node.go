// Package node binds the crypto, consensus, inference, topology, and
// bandwidth components into the cooperative single-task event loop:
// a ticker drives periodic publishing, an inbound gossip channel drives
// message dispatch, and both are multiplexed in one select loop, mirroring
// the federated baseline manager's Run(ctx) shape.
package node

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ggs-net/ggsnode/internal/bandwidth"
	"github.com/ggs-net/ggsnode/internal/consensus"
	"github.com/ggs-net/ggsnode/internal/ggstypes"
	"github.com/ggs-net/ggsnode/internal/gossiptransport"
	"github.com/ggs-net/ggsnode/internal/inference"
	"github.com/ggs-net/ggsnode/internal/observability"
	"github.com/ggs-net/ggsnode/internal/quicrt"
	"github.com/ggs-net/ggsnode/internal/topology"
)

// Config holds the node loop's tunables.
type Config struct {
	PeerID           string
	Topic            string
	TickInterval     time.Duration
	HeartbeatTimeout time.Duration
	DenseEveryTicks  uint64
	SparseK          int
}

// DefaultConfig returns the documented defaults.
func DefaultConfig(peerID string) Config {
	return Config{
		PeerID:           peerID,
		Topic:            "ggs-gossip",
		TickInterval:     10 * time.Second,
		HeartbeatTimeout: 300 * time.Second,
		DenseEveryTicks:  12,
		SparseK:          16,
	}
}

// Node owns the tick counter and wires the component engines together.
type Node struct {
	cfg Config

	Transport   gossiptransport.Transport
	Broadcaster *quicrt.Broadcaster // optional; nil disables realtime fan-out
	Consensus   *consensus.Engine
	Inference   *inference.Engine
	Topology    *topology.Selector
	Bandwidth   *bandwidth.Budget
	Metrics     *observability.Metrics // optional; nil disables instrumentation

	log          *zap.Logger
	tickCounter  uint64
	selfPosition ggstypes.GeoPoint
}

// New builds a Node from its component engines. Broadcaster and metrics
// may both be nil.
func New(cfg Config, selfPosition ggstypes.GeoPoint, transport gossiptransport.Transport, broadcaster *quicrt.Broadcaster,
	ce *consensus.Engine, ie *inference.Engine, ts *topology.Selector, bw *bandwidth.Budget, metrics *observability.Metrics, log *zap.Logger) *Node {
	return &Node{
		cfg:          cfg,
		Transport:    transport,
		Broadcaster:  broadcaster,
		Consensus:    ce,
		Inference:    ie,
		Topology:     ts,
		Bandwidth:    bw,
		Metrics:      metrics,
		log:          log,
		selfPosition: selfPosition,
	}
}

// Run subscribes to the gossip topic and multiplexes ticker fires with
// inbound messages until ctx is cancelled. Handlers run strictly in
// arrival order; no suspension happens while holding a component lock.
func (n *Node) Run(ctx context.Context) error {
	inbound, err := n.Transport.Subscribe(ctx, n.cfg.Topic)
	if err != nil {
		return err
	}

	ticker := time.NewTicker(n.cfg.TickInterval)
	defer ticker.Stop()

	n.log.Info("node loop started",
		zap.String("peer_id", n.cfg.PeerID),
		zap.Duration("tick_interval", n.cfg.TickInterval))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			n.tick(ctx)
		case msg, ok := <-inbound:
			if !ok {
				return nil
			}
			n.handleInbound(ctx, msg)
		}
	}
}
