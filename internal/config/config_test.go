package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaults_Valid(t *testing.T) {
	cfg := Defaults()
	if err := Validate(&cfg); err != nil {
		t.Fatalf("defaults should validate cleanly: %v", err)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ggsnode.yaml")
	data := []byte(`
schema_version: "1"
node_id: test-node
bandwidth:
  sparse_per_window: 20
topology:
  max_neighbors: 3
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.NodeID != "test-node" {
		t.Fatalf("expected node_id override, got %q", cfg.NodeID)
	}
	if cfg.Bandwidth.SparsePerWindow != 20 {
		t.Fatalf("expected sparse_per_window override, got %d", cfg.Bandwidth.SparsePerWindow)
	}
	if cfg.Topology.MaxNeighbors != 3 {
		t.Fatalf("expected max_neighbors override, got %d", cfg.Topology.MaxNeighbors)
	}
	// Untouched fields retain their default.
	if cfg.Comms.GossipTopic != "ggs-gossip" {
		t.Fatalf("expected default gossip_topic retained, got %q", cfg.Comms.GossipTopic)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidate_AccumulatesAllViolations(t *testing.T) {
	cfg := Defaults()
	cfg.SchemaVersion = "2"
	cfg.NodeID = ""
	cfg.Topology.MinScore = 1.5
	cfg.Bandwidth.SparsePerWindow = 0

	err := Validate(&cfg)
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	for _, want := range []string{"schema_version", "node_id", "min_score", "sparse_per_window"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected error message to mention %q, got: %s", want, msg)
		}
	}
}

func TestValidate_RejectsShortHeartbeatTimeout(t *testing.T) {
	cfg := Defaults()
	cfg.Consensus.HeartbeatTimeout = 100 * time.Millisecond
	if err := Validate(&cfg); err == nil {
		t.Fatal("expected validation error for sub-second heartbeat timeout")
	}
}
