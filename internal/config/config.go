// Package config provides configuration loading, validation, and hot-reload
// for a gossip node.
//
// Configuration file: ./ggsnode.yaml (default)
// Schema version: 1
//
// Hot-reload:
//   - The process listens for SIGHUP.
//   - On SIGHUP: re-read and re-validate the config file.
//   - Apply non-destructive changes only (bandwidth caps, topology
//     thresholds). The log level and format are read only at startup; a
//     changed log_level takes effect on restart.
//   - Destructive changes (bind addresses, node_id) require restart.
//   - If the new config is invalid, the old config remains active and an
//     error is logged. The process does NOT crash on invalid hot-reload
//     config.
//
// Validation:
//   - All required fields must be present.
//   - Numeric ranges enforced (e.g. min_score in [0,1], geo_scale_km > 0).
//   - Invalid config on startup: the process refuses to start (fatal error).
//   - Invalid config on hot-reload: logged, old config retained.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for a gossip node. All
// fields have defaults; see Defaults() for values.
type Config struct {
	SchemaVersion string `yaml:"schema_version"`
	NodeID        string `yaml:"node_id"`

	Comms      CommsConfig      `yaml:"comms"`
	Bandwidth  BandwidthConfig  `yaml:"bandwidth"`
	Inference  InferenceConfig  `yaml:"inference"`
	Topology   TopologyConfig   `yaml:"topology"`
	Consensus  ConsensusConfig  `yaml:"consensus"`
	Crypto     CryptoConfig     `yaml:"crypto"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// CommsConfig holds the gossip and realtime transport bind/dial settings.
type CommsConfig struct {
	GossipTopic   string   `yaml:"gossip_topic"`
	QuicBind      string   `yaml:"quic_bind"`
	QuicBootstrap []string `yaml:"quic_bootstrap"`
	TickInterval  time.Duration `yaml:"tick_interval"`
}

// BandwidthConfig holds the rolling-window publish budget.
type BandwidthConfig struct {
	SparsePerWindow     int   `yaml:"sparse_per_window"`
	DenseBytesPerWindow int64 `yaml:"dense_bytes_per_window"`
	WindowSecs          int   `yaml:"window_secs"`
}

// InferenceConfig holds the model parameter store's startup shape.
type InferenceConfig struct {
	ModelDim  int    `yaml:"model_dim"`
	ModelPath string `yaml:"model_path"`
}

// TopologyConfig holds the peer-selection thresholds.
type TopologyConfig struct {
	MaxNeighbors  int     `yaml:"max_neighbors"`
	FailoverPool  int     `yaml:"failover_pool"`
	MinScore      float32 `yaml:"min_score"`
	GeoScaleKm    float64 `yaml:"geo_scale_km"`
	PeerStaleSecs int     `yaml:"peer_stale_secs"`
	SelfLat       float32 `yaml:"self_lat"`
	SelfLon       float32 `yaml:"self_lon"`
}

// ConsensusConfig holds ledger staleness settings.
type ConsensusConfig struct {
	HeartbeatTimeout time.Duration `yaml:"heartbeat_timeout"`
}

// CryptoConfig holds the optional fixed signing seeds.
type CryptoConfig struct {
	CurveASeed string `yaml:"curve_a_seed"`
	CurveBSeed string `yaml:"curve_b_seed"`
}

// ObservabilityConfig holds metrics and logging parameters.
type ObservabilityConfig struct {
	MetricsAddr string `yaml:"metrics_addr"`
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"`
}

// Defaults returns a Config populated with all documented default values.
func Defaults() Config {
	hostname, _ := os.Hostname()
	return Config{
		SchemaVersion: "1",
		NodeID:        hostname,
		Comms: CommsConfig{
			GossipTopic:   "ggs-gossip",
			QuicBind:      "0.0.0.0:9234",
			QuicBootstrap: nil,
			TickInterval:  10 * time.Second,
		},
		Bandwidth: BandwidthConfig{
			SparsePerWindow:     12,
			DenseBytesPerWindow: 262144,
			WindowSecs:          60,
		},
		Inference: InferenceConfig{
			ModelDim:  256,
			ModelPath: "",
		},
		Topology: TopologyConfig{
			MaxNeighbors:  8,
			FailoverPool:  4,
			MinScore:      0.15,
			GeoScaleKm:    500,
			PeerStaleSecs: 120,
		},
		Consensus: ConsensusConfig{
			HeartbeatTimeout: 300 * time.Second,
		},
		Crypto: CryptoConfig{},
		Observability: ObservabilityConfig{
			MetricsAddr: "127.0.0.1:9091",
			LogLevel:    "info",
			LogFormat:   "json",
		},
	}
}

// Load reads and validates a config file from the given path. Returns the
// merged config (defaults overridden by file values).
func Load(path string) (*Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: parse %q: %w", path, err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config.Load: validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks all config fields for correctness, accumulating every
// violation found into a single descriptive error.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.SchemaVersion != "1" {
		errs = append(errs, fmt.Sprintf("schema_version must be \"1\", got %q", cfg.SchemaVersion))
	}
	if cfg.NodeID == "" {
		errs = append(errs, "node_id must not be empty")
	}
	if cfg.Comms.GossipTopic == "" {
		errs = append(errs, "comms.gossip_topic must not be empty")
	}
	if cfg.Comms.TickInterval < time.Second {
		errs = append(errs, fmt.Sprintf("comms.tick_interval must be >= 1s, got %s", cfg.Comms.TickInterval))
	}
	if cfg.Bandwidth.SparsePerWindow < 1 {
		errs = append(errs, fmt.Sprintf("bandwidth.sparse_per_window must be >= 1, got %d", cfg.Bandwidth.SparsePerWindow))
	}
	if cfg.Bandwidth.DenseBytesPerWindow < 1 {
		errs = append(errs, fmt.Sprintf("bandwidth.dense_bytes_per_window must be >= 1, got %d", cfg.Bandwidth.DenseBytesPerWindow))
	}
	if cfg.Bandwidth.WindowSecs < 1 {
		errs = append(errs, fmt.Sprintf("bandwidth.window_secs must be >= 1, got %d", cfg.Bandwidth.WindowSecs))
	}
	if cfg.Inference.ModelDim < 1 {
		errs = append(errs, fmt.Sprintf("inference.model_dim must be >= 1, got %d", cfg.Inference.ModelDim))
	}
	if cfg.Topology.MaxNeighbors < 1 {
		errs = append(errs, fmt.Sprintf("topology.max_neighbors must be >= 1, got %d", cfg.Topology.MaxNeighbors))
	}
	if cfg.Topology.FailoverPool < 0 {
		errs = append(errs, fmt.Sprintf("topology.failover_pool must be >= 0, got %d", cfg.Topology.FailoverPool))
	}
	if cfg.Topology.MinScore < 0 || cfg.Topology.MinScore > 1 {
		errs = append(errs, fmt.Sprintf("topology.min_score must be in [0,1], got %f", cfg.Topology.MinScore))
	}
	if cfg.Topology.GeoScaleKm <= 0 {
		errs = append(errs, fmt.Sprintf("topology.geo_scale_km must be > 0, got %f", cfg.Topology.GeoScaleKm))
	}
	if cfg.Topology.PeerStaleSecs < 1 {
		errs = append(errs, fmt.Sprintf("topology.peer_stale_secs must be >= 1, got %d", cfg.Topology.PeerStaleSecs))
	}
	if cfg.Consensus.HeartbeatTimeout < time.Second {
		errs = append(errs, fmt.Sprintf("consensus.heartbeat_timeout must be >= 1s, got %s", cfg.Consensus.HeartbeatTimeout))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors:\n  - %s", joinStrings(errs, "\n  - "))
	}
	return nil
}

// joinStrings joins a slice of strings with a separator.
func joinStrings(ss []string, sep string) string {
	if len(ss) == 0 {
		return ""
	}
	result := ss[0]
	for _, s := range ss[1:] {
		result += sep + s
	}
	return result
}
