// Package main — cmd/ggsnode/main.go
//
// Gossip node entrypoint.
//
// Startup sequence:
//  1. Load and validate config from ./ggsnode.yaml (or -config).
//  2. Initialise structured logger (zap).
//  3. Build the signing identity (crypto seeds, or freshly generated).
//  4. Load initial model parameters (weightfile, or random).
//  5. Build the consensus, topology, and bandwidth engines.
//  6. Start the libp2p gossip transport and mDNS discovery.
//  7. Start the realtime QUIC broadcaster (best-effort; failure is logged,
//     not fatal — the node still functions over gossip alone).
//  8. Start the Prometheus metrics server.
//  9. Start the node event loop.
// 10. Register SIGHUP handler for config hot-reload.
// 11. Block on SIGINT/SIGTERM for graceful shutdown.
//
// On config validation failure: exit 1 immediately.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/ggs-net/ggsnode/internal/bandwidth"
	"github.com/ggs-net/ggsnode/internal/config"
	"github.com/ggs-net/ggsnode/internal/consensus"
	"github.com/ggs-net/ggsnode/internal/cryptosuite"
	"github.com/ggs-net/ggsnode/internal/ggstypes"
	"github.com/ggs-net/ggsnode/internal/gossiptransport"
	"github.com/ggs-net/ggsnode/internal/inference"
	"github.com/ggs-net/ggsnode/internal/node"
	"github.com/ggs-net/ggsnode/internal/observability"
	"github.com/ggs-net/ggsnode/internal/quicrt"
	"github.com/ggs-net/ggsnode/internal/topology"
	"github.com/ggs-net/ggsnode/internal/weightfile"
)

func main() {
	configPath := flag.String("config", "ggsnode.yaml", "Path to ggsnode.yaml")
	flag.Parse()

	// ── Step 1: Load config ───────────────────────────────────────────────────
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: config load failed: %v\n", err)
		os.Exit(1)
	}

	// ── Step 2: Initialise logger ─────────────────────────────────────────────
	log, err := observability.BuildLogger(cfg.Observability.LogLevel, cfg.Observability.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	log.Info("ggsnode starting",
		zap.String("node_id", cfg.NodeID),
		zap.String("config", *configPath))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ── Step 3: Signing identity ──────────────────────────────────────────────
	suite, err := cryptosuite.New(cryptosuite.Seeds{
		CurveAHex:    cfg.Crypto.CurveASeed,
		CurveBBase58: cfg.Crypto.CurveBSeed,
	})
	if err != nil {
		log.Fatal("cryptosuite init failed", zap.Error(err))
	}
	log.Info("signing identity ready", zap.String("address", suite.Address()))

	// ── Step 4: Initial model parameters ──────────────────────────────────────
	var inferenceEngine *inference.Engine
	if cfg.Inference.ModelPath != "" {
		params, err := weightfile.Load(cfg.Inference.ModelPath)
		if err != nil {
			log.Fatal("model weightfile load failed", zap.Error(err),
				zap.String("path", cfg.Inference.ModelPath))
		}
		inferenceEngine = inference.New(params, nil)
		log.Info("model parameters loaded from weightfile",
			zap.String("path", cfg.Inference.ModelPath), zap.Int("dim", inferenceEngine.Dim()))
	} else {
		inferenceEngine = inference.NewRandom(cfg.Inference.ModelDim, nil)
		log.Info("model parameters randomly initialised", zap.Int("dim", cfg.Inference.ModelDim))
	}

	// ── Step 5: Consensus, topology, bandwidth ────────────────────────────────
	consensusEngine := consensus.NewEngine(suite)

	selfPosition := ggstypes.GeoPoint{Lat: cfg.Topology.SelfLat, Lon: cfg.Topology.SelfLon}
	topologyCfg := topology.Config{
		GeoScaleKm:    cfg.Topology.GeoScaleKm,
		PeerStaleSecs: cfg.Topology.PeerStaleSecs,
		MinScore:      cfg.Topology.MinScore,
		MaxNeighbors:  cfg.Topology.MaxNeighbors,
		FailoverPool:  cfg.Topology.FailoverPool,
	}
	topologySelector := topology.New(topologyCfg, selfPosition, nil)

	bandwidthCfg := bandwidth.Config{
		SparsePerWindow:     cfg.Bandwidth.SparsePerWindow,
		DenseBytesPerWindow: cfg.Bandwidth.DenseBytesPerWindow,
		WindowSecs:          cfg.Bandwidth.WindowSecs,
	}
	bandwidthBudget := bandwidth.New(bandwidthCfg, nil)

	// ── Step 6: Gossip transport + mDNS discovery ─────────────────────────────
	transport, err := gossiptransport.NewLibp2pTransport(ctx)
	if err != nil {
		log.Fatal("libp2p transport init failed", zap.Error(err))
	}
	defer transport.Close() //nolint:errcheck

	discoverer := gossiptransport.NewMdnsDiscoverer(ctx, transport.Host())
	if err := discoverer.Start(); err != nil {
		log.Warn("mDNS discoverer start failed — LAN discovery disabled", zap.Error(err))
	} else {
		defer discoverer.Close() //nolint:errcheck
		log.Info("mDNS discovery started")
	}

	// ── Step 7: Realtime QUIC broadcaster (best-effort) ───────────────────────
	var broadcaster *quicrt.Broadcaster
	if cfg.Comms.QuicBind != "" {
		b, err := quicrt.New()
		if err != nil {
			log.Warn("quic broadcaster init failed — realtime fan-out disabled", zap.Error(err))
		} else if err := b.Listen(ctx, cfg.Comms.QuicBind); err != nil {
			log.Warn("quic broadcaster listen failed — realtime fan-out disabled", zap.Error(err))
		} else {
			broadcaster = b
			defer broadcaster.Close() //nolint:errcheck
			log.Info("realtime broadcaster listening", zap.String("addr", cfg.Comms.QuicBind))
			for _, endpoint := range cfg.Comms.QuicBootstrap {
				if err := broadcaster.Connect(ctx, endpoint); err != nil {
					log.Warn("quic bootstrap dial failed", zap.String("endpoint", endpoint), zap.Error(err))
				}
			}
		}
	}

	// ── Step 8: Prometheus metrics ────────────────────────────────────────────
	metrics := observability.NewMetrics()
	go func() {
		if err := metrics.ServeMetrics(ctx, cfg.Observability.MetricsAddr); err != nil {
			log.Error("metrics server error", zap.Error(err))
		}
	}()
	log.Info("metrics server started", zap.String("addr", cfg.Observability.MetricsAddr))

	// ── Step 9: Node event loop ────────────────────────────────────────────────
	nodeCfg := node.Config{
		PeerID:           cfg.NodeID,
		Topic:            cfg.Comms.GossipTopic,
		TickInterval:     cfg.Comms.TickInterval,
		HeartbeatTimeout: cfg.Consensus.HeartbeatTimeout,
		DenseEveryTicks:  12,
		SparseK:          16,
	}
	n := node.New(nodeCfg, selfPosition, transport, broadcaster,
		consensusEngine, inferenceEngine, topologySelector, bandwidthBudget, metrics, log)

	go func() {
		if err := n.Run(ctx); err != nil && err != context.Canceled {
			log.Error("node loop exited with error", zap.Error(err))
		}
	}()
	log.Info("node loop started")

	// ── Step 10: SIGHUP hot-reload ────────────────────────────────────────────
	sighup := make(chan os.Signal, 1)
	signal.Notify(sighup, syscall.SIGHUP)
	go func() {
		for range sighup {
			log.Info("SIGHUP received — reloading config...")
			newCfg, err := config.Load(*configPath)
			if err != nil {
				log.Error("config hot-reload failed — retaining old config", zap.Error(err))
				continue
			}
			bandwidthBudget.Reconfigure(bandwidth.Config{
				SparsePerWindow:     newCfg.Bandwidth.SparsePerWindow,
				DenseBytesPerWindow: newCfg.Bandwidth.DenseBytesPerWindow,
				WindowSecs:          newCfg.Bandwidth.WindowSecs,
			})
			topologySelector.Reconfigure(topology.Config{
				GeoScaleKm:    newCfg.Topology.GeoScaleKm,
				PeerStaleSecs: newCfg.Topology.PeerStaleSecs,
				MinScore:      newCfg.Topology.MinScore,
				MaxNeighbors:  newCfg.Topology.MaxNeighbors,
				FailoverPool:  newCfg.Topology.FailoverPool,
			})
			log.Info("config hot-reload successful")
		}
	}()

	// ── Step 11: Wait for shutdown signal ─────────────────────────────────────
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Info("shutdown signal received", zap.String("signal", sig.String()))

	cancel()
	log.Info("ggsnode shutdown complete")
}
