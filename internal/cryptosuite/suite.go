// Package cryptosuite implements the dual-curve signing identity: a
// secp256k1 (Curve-A) Ethereum-style address and an ed25519 (Curve-B)
// base58 keypair, signing and verifying gossip payloads together.
package cryptosuite

import (
	"github.com/ggs-net/ggsnode/internal/ggstypes"
)

// Suite holds a node's two independent signing identities.
type Suite struct {
	a *identityA
	b *identityB
}

// Seeds configures the two identities. An empty field yields a fresh
// random secret for that curve.
type Seeds struct {
	CurveAHex   string
	CurveBBase58 string
}

// New builds a Suite from the given seeds, generating fresh random
// material for any curve whose seed is left empty.
func New(seeds Seeds) (*Suite, error) {
	a, err := newIdentityA(seeds.CurveAHex)
	if err != nil {
		return nil, err
	}
	b, err := newIdentityB(seeds.CurveBBase58)
	if err != nil {
		return nil, err
	}
	return &Suite{a: a, b: b}, nil
}

// Address returns this node's Curve-A (Ethereum-style) address.
func (s *Suite) Address() string { return s.a.address }

// PubkeyB returns this node's Curve-B base58 public key.
func (s *Suite) PubkeyB() string { return s.b.pubStr }

// SignBytes signs payload under both curves and returns the combined bundle.
func (s *Suite) SignBytes(payload []byte) ggstypes.SignatureBundle {
	return ggstypes.SignatureBundle{
		CurveA: ggstypes.CurveASignature{
			Address:   s.a.address,
			Signature: signA(s.a, payload),
		},
		CurveB: ggstypes.CurveBSignature{
			Pubkey:    s.b.pubStr,
			Signature: signB(s.b, payload),
		},
	}
}

// Verify checks that both signatures in bundle are valid AND that the
// embedded address/pubkey match this suite's own identity. Per the source
// design, cross-peer verification is not performed here: a node only ever
// verifies messages signed by itself. See the design notes for why this is
// flagged rather than silently fixed.
func (s *Suite) Verify(payload []byte, bundle ggstypes.SignatureBundle) bool {
	if bundle.CurveA.Address != s.a.address {
		return false
	}
	if bundle.CurveB.Pubkey != s.b.pubStr {
		return false
	}
	if !verifyA(s.a.pub, payload, bundle.CurveA.Signature) {
		return false
	}
	if !verifyB(s.b.pub, payload, bundle.CurveB.Signature) {
		return false
	}
	return true
}
