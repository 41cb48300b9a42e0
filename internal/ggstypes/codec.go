// Package ggstypes — codec.go
//
// Canonical wire encoding. GgsMessage is an interface, so SignedGossip needs
// explicit (Un)MarshalJSON to round-trip its payload through the envelope
// defined in message.go — and the same envelope is reused to build the
// canonical byte string that both the signer and the verifier sign/check,
// so producer and verifier can never silently disagree on field order.

package ggstypes

import (
	"encoding/json"
	"fmt"
)

// wireSignedGossip mirrors SignedGossip but with a concrete envelope in
// place of the GgsMessage interface, so it can round-trip through
// encoding/json without custom per-variant logic leaking outside this file.
type wireSignedGossip struct {
	Payload      envelope        `json:"payload"`
	Signature    SignatureBundle `json:"signature"`
	StakingScore float32         `json:"staking_score"`
}

// MarshalJSON implements json.Marshaler.
func (s SignedGossip) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireSignedGossip{
		Payload:      toEnvelope(s.Payload),
		Signature:    s.Signature,
		StakingScore: s.StakingScore,
	})
}

// UnmarshalJSON implements json.Unmarshaler. Returns an error (a DecodeError
// at the call site) if the payload kind/variant pairing is malformed.
func (s *SignedGossip) UnmarshalJSON(data []byte) error {
	var w wireSignedGossip
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	msg, ok := fromEnvelope(w.Payload)
	if !ok {
		return fmt.Errorf("ggstypes: malformed or unknown message kind %q", w.Payload.Kind)
	}
	s.Payload = msg
	s.Signature = w.Signature
	s.StakingScore = w.StakingScore
	return nil
}

// CanonicalBytes produces the deterministic byte sequence that is signed
// and verified for a GgsMessage payload. Both the consensus engine's signer
// and its verifier call this — never hand-roll a second encoding path.
func CanonicalBytes(m GgsMessage) ([]byte, error) {
	return json.Marshal(toEnvelope(m))
}

// EncodeSignedGossip serializes a fully-signed envelope for the gossip
// transport (internal/gossiptransport).
func EncodeSignedGossip(s SignedGossip) ([]byte, error) {
	return json.Marshal(s)
}

// DecodeSignedGossip parses bytes received from the gossip transport.
// A failure here is a DecodeError: the caller must drop the message
// silently, per the core spec's error taxonomy.
func DecodeSignedGossip(data []byte) (SignedGossip, error) {
	var s SignedGossip
	err := json.Unmarshal(data, &s)
	return s, err
}
