package ggstypes_test

import (
	"testing"

	"github.com/ggs-net/ggsnode/internal/ggstypes"
)

func TestSignedGossipRoundTrip_AllVariants(t *testing.T) {
	msgs := []ggstypes.GgsMessage{
		ggstypes.Heartbeat{PeerID: "peer-1", ModelHash: "0xdead"},
		ggstypes.SimilarityProbe{
			Sender:    "peer-1",
			Embedding: []float32{0.1, 0.2},
			Position:  ggstypes.GeoPoint{Lat: 1, Lon: 2},
		},
		ggstypes.SparseUpdateMsg{
			Sender: "peer-1",
			Update: ggstypes.SparseUpdate{Indices: []uint32{1, 4}, Values: []float32{0.5, -0.5}, Version: 7},
		},
		ggstypes.DenseSnapshotMsg{
			Sender:   "peer-1",
			Snapshot: ggstypes.TensorSnapshot{Dim: 2, Values: []float32{1, 2}, Version: 9},
		},
	}

	for _, m := range msgs {
		sg := ggstypes.SignedGossip{
			Payload: m,
			Signature: ggstypes.SignatureBundle{
				CurveA: ggstypes.CurveASignature{Address: "0xabc", Signature: "deadbeef"},
				CurveB: ggstypes.CurveBSignature{Pubkey: "abc", Signature: "def"},
			},
			StakingScore: 1.5,
		}
		data, err := ggstypes.EncodeSignedGossip(sg)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		decoded, err := ggstypes.DecodeSignedGossip(data)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if decoded.Payload.Kind() != m.Kind() {
			t.Fatalf("kind mismatch: %v != %v", decoded.Payload.Kind(), m.Kind())
		}
		if decoded.StakingScore != sg.StakingScore {
			t.Fatalf("staking score mismatch")
		}
	}
}

func TestCanonicalBytes_Deterministic(t *testing.T) {
	m := ggstypes.Heartbeat{PeerID: "p", ModelHash: "0x1"}
	b1, err := ggstypes.CanonicalBytes(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b2, _ := ggstypes.CanonicalBytes(m)
	if string(b1) != string(b2) {
		t.Fatalf("canonical bytes not deterministic")
	}
}

func TestDecodeSignedGossip_MalformedKind(t *testing.T) {
	_, err := ggstypes.DecodeSignedGossip([]byte(`{"payload":{"kind":"bogus"},"signature":{"curve_a":{},"curve_b":{}},"staking_score":0}`))
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}
}
