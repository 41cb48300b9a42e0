package cryptosuite_test

import (
	"strings"
	"testing"

	"github.com/ggs-net/ggsnode/internal/cryptosuite"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	s, err := cryptosuite.New(cryptosuite.Seeds{})
	if err != nil {
		t.Fatalf("new suite: %v", err)
	}
	payload := []byte(`{"kind":"heartbeat"}`)
	bundle := s.SignBytes(payload)
	if !s.Verify(payload, bundle) {
		t.Fatal("expected signature to verify")
	}
}

func TestVerify_TamperedPayloadRejected(t *testing.T) {
	s, err := cryptosuite.New(cryptosuite.Seeds{})
	if err != nil {
		t.Fatalf("new suite: %v", err)
	}
	payload := []byte(`{"kind":"heartbeat","peer":"a"}`)
	bundle := s.SignBytes(payload)
	tampered := []byte(`{"kind":"heartbeat","peer":"b"}`)
	if s.Verify(tampered, bundle) {
		t.Fatal("expected tampered payload to fail verification")
	}
}

func TestVerify_ForeignBundleRejected(t *testing.T) {
	a, err := cryptosuite.New(cryptosuite.Seeds{})
	if err != nil {
		t.Fatalf("new suite a: %v", err)
	}
	b, err := cryptosuite.New(cryptosuite.Seeds{})
	if err != nil {
		t.Fatalf("new suite b: %v", err)
	}
	payload := []byte(`{"kind":"heartbeat"}`)
	bundle := b.SignBytes(payload)
	if a.Verify(payload, bundle) {
		t.Fatal("expected foreign bundle (different identity) to fail verification")
	}
}

func TestAddressFormat(t *testing.T) {
	s, err := cryptosuite.New(cryptosuite.Seeds{})
	if err != nil {
		t.Fatalf("new suite: %v", err)
	}
	addr := s.Address()
	if !strings.HasPrefix(addr, "0x") || len(addr) != 42 {
		t.Fatalf("expected 0x-prefixed 20-byte address, got %q", addr)
	}
}

func TestNew_OversizedCurveASeedRejected(t *testing.T) {
	oversized := "0x" + strings.Repeat("11", 40) // 40 bytes, want 32
	_, err := cryptosuite.New(cryptosuite.Seeds{CurveAHex: oversized})
	if err == nil {
		t.Fatal("expected error for oversized curve-a seed")
	}
}

func TestNew_ValidCurveASeedAccepted(t *testing.T) {
	valid := "0x" + strings.Repeat("11", 32)
	if _, err := cryptosuite.New(cryptosuite.Seeds{CurveAHex: valid}); err != nil {
		t.Fatalf("unexpected error for valid curve-a seed: %v", err)
	}
}

func TestNew_BadCurveASeedLength(t *testing.T) {
	_, err := cryptosuite.New(cryptosuite.Seeds{CurveAHex: "0xabcd"})
	if err == nil {
		t.Fatal("expected error for short curve-a seed")
	}
}

func TestNew_BadCurveBSeedLength(t *testing.T) {
	_, err := cryptosuite.New(cryptosuite.Seeds{CurveBBase58: "abc"})
	if err == nil {
		t.Fatal("expected error for invalid curve-b seed length")
	}
}
