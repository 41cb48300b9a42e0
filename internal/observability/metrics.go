// Package observability — metrics.go
//
// Prometheus metrics for a gossip node.
//
// Endpoint: GET /metrics on 127.0.0.1:9091 (configurable).
// Format: Prometheus text exposition format (OpenMetrics compatible).
// Bind: loopback only by default — no external exposure unless configured.
//
// Metric naming convention: ggsnode_<subsystem>_<name>_<unit>
//
// All metrics are registered on a dedicated prometheus.Registry (not the
// default global registry) to avoid collisions with other instrumented
// libraries in the same process.
package observability

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metric descriptors for a gossip node.
type Metrics struct {
	registry *prometheus.Registry

	// ─── Gossip transport ────────────────────────────────────────────────────

	// GossipPublishedTotal counts outbound gossip messages, by kind
	// (heartbeat, similarity_probe, sparse_update, dense_snapshot).
	GossipPublishedTotal *prometheus.CounterVec

	// GossipReceivedTotal counts inbound gossip messages, by acceptance
	// status (accepted, bad_signature, malformed, unknown_kind).
	GossipReceivedTotal *prometheus.CounterVec

	// RealtimeSessionsActive is the current number of live datagram sessions.
	RealtimeSessionsActive prometheus.Gauge

	// ─── Bandwidth budget ────────────────────────────────────────────────────

	// BandwidthSparseDeniedTotal counts sparse publishes denied by the
	// rolling-window budget.
	BandwidthSparseDeniedTotal prometheus.Counter

	// BandwidthDenseDeniedTotal counts dense snapshot publishes denied by
	// the rolling-window byte budget.
	BandwidthDenseDeniedTotal prometheus.Counter

	// ─── Inference ───────────────────────────────────────────────────────────

	// ModelVersion is the current local model state version counter.
	ModelVersion prometheus.Gauge

	// SparseUpdatesAppliedTotal counts inbound sparse updates merged into
	// local model state.
	SparseUpdatesAppliedTotal prometheus.Counter

	// DenseSnapshotsAppliedTotal counts inbound dense snapshots blended
	// into local model state.
	DenseSnapshotsAppliedTotal prometheus.Counter

	// ─── Topology ────────────────────────────────────────────────────────────

	// PrimaryNeighbors is the current primary neighbor pool size.
	PrimaryNeighbors prometheus.Gauge

	// BackupNeighbors is the current backup neighbor pool size.
	BackupNeighbors prometheus.Gauge

	// PeerScoreHistogram records the distribution of computed peer scores.
	PeerScoreHistogram prometheus.Histogram

	// ─── Consensus / ledger ──────────────────────────────────────────────────

	// StakeLedgerEntries is the current number of tracked peer stake records.
	StakeLedgerEntries prometheus.Gauge

	// LedgerPrunedTotal counts peer records evicted for staleness.
	LedgerPrunedTotal prometheus.Counter

	// ─── Node ────────────────────────────────────────────────────────────────

	// NodeUptimeSeconds is the number of seconds since the node started.
	NodeUptimeSeconds prometheus.Gauge

	startTime time.Time
}

// NewMetrics creates and registers all Prometheus metrics for a gossip node.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry:  reg,
		startTime: time.Now(),

		GossipPublishedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ggsnode",
			Subsystem: "gossip",
			Name:      "published_total",
			Help:      "Total outbound gossip messages published, by kind.",
		}, []string{"kind"}),

		GossipReceivedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ggsnode",
			Subsystem: "gossip",
			Name:      "received_total",
			Help:      "Total inbound gossip messages, by acceptance status.",
		}, []string{"status"}),

		RealtimeSessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ggsnode",
			Subsystem: "gossip",
			Name:      "realtime_sessions_active",
			Help:      "Current number of live realtime datagram sessions.",
		}),

		BandwidthSparseDeniedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ggsnode",
			Subsystem: "bandwidth",
			Name:      "sparse_denied_total",
			Help:      "Total sparse publishes denied by the rolling-window budget.",
		}),

		BandwidthDenseDeniedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ggsnode",
			Subsystem: "bandwidth",
			Name:      "dense_denied_total",
			Help:      "Total dense snapshot publishes denied by the rolling-window byte budget.",
		}),

		ModelVersion: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ggsnode",
			Subsystem: "inference",
			Name:      "model_version",
			Help:      "Current local model state version counter.",
		}),

		SparseUpdatesAppliedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ggsnode",
			Subsystem: "inference",
			Name:      "sparse_updates_applied_total",
			Help:      "Total inbound sparse updates merged into local model state.",
		}),

		DenseSnapshotsAppliedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ggsnode",
			Subsystem: "inference",
			Name:      "dense_snapshots_applied_total",
			Help:      "Total inbound dense snapshots blended into local model state.",
		}),

		PrimaryNeighbors: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ggsnode",
			Subsystem: "topology",
			Name:      "primary_neighbors",
			Help:      "Current primary neighbor pool size.",
		}),

		BackupNeighbors: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ggsnode",
			Subsystem: "topology",
			Name:      "backup_neighbors",
			Help:      "Current backup neighbor pool size.",
		}),

		PeerScoreHistogram: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ggsnode",
			Subsystem: "topology",
			Name:      "peer_score",
			Help:      "Distribution of computed peer similarity/geo scores.",
			Buckets:   []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
		}),

		StakeLedgerEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ggsnode",
			Subsystem: "consensus",
			Name:      "stake_ledger_entries",
			Help:      "Current number of tracked peer stake records.",
		}),

		LedgerPrunedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ggsnode",
			Subsystem: "consensus",
			Name:      "ledger_pruned_total",
			Help:      "Total peer stake records evicted for staleness.",
		}),

		NodeUptimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ggsnode",
			Subsystem: "node",
			Name:      "uptime_seconds",
			Help:      "Number of seconds since the node started.",
		}),
	}

	reg.MustRegister(
		m.GossipPublishedTotal,
		m.GossipReceivedTotal,
		m.RealtimeSessionsActive,
		m.BandwidthSparseDeniedTotal,
		m.BandwidthDenseDeniedTotal,
		m.ModelVersion,
		m.SparseUpdatesAppliedTotal,
		m.DenseSnapshotsAppliedTotal,
		m.PrimaryNeighbors,
		m.BackupNeighbors,
		m.PeerScoreHistogram,
		m.StakeLedgerEntries,
		m.LedgerPrunedTotal,
		m.NodeUptimeSeconds,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)

	return m
}

// ServeMetrics starts the Prometheus HTTP metrics server on the given
// address. Blocks until ctx is cancelled or the server fails.
func (m *Metrics) ServeMetrics(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		ErrorHandling:     promhttp.ContinueOnError,
	}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go m.updateUptime(ctx)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("metrics server on %s: %w", addr, err)
	}
	return nil
}

func (m *Metrics) updateUptime(ctx context.Context) {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			m.NodeUptimeSeconds.Set(time.Since(m.startTime).Seconds())
		case <-ctx.Done():
			return
		}
	}
}
