package cryptosuite

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"github.com/mr-tron/base58"
)

// identityB is a Curve-B (ed25519) signing identity.
type identityB struct {
	priv   ed25519.PrivateKey
	pub    ed25519.PublicKey
	pubStr string
}

func newIdentityB(seedB58 string) (*identityB, error) {
	priv, err := decodeSeedB(seedB58)
	if err != nil {
		return nil, err
	}
	pub := priv.Public().(ed25519.PublicKey)
	return &identityB{priv: priv, pub: pub, pubStr: base58.Encode(pub)}, nil
}

func decodeSeedB(seedB58 string) (ed25519.PrivateKey, error) {
	if seedB58 == "" {
		_, priv, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, fmt.Errorf("cryptosuite: generate curve-b key: %w", err)
		}
		return priv, nil
	}
	raw, err := base58.Decode(seedB58)
	if err != nil {
		return nil, fmt.Errorf("cryptosuite: decode curve-b seed: %w", err)
	}
	switch len(raw) {
	case ed25519.SeedSize:
		return ed25519.NewKeyFromSeed(raw), nil
	case ed25519.PrivateKeySize:
		return ed25519.PrivateKey(raw), nil
	default:
		return nil, fmt.Errorf("cryptosuite: curve-b seed must be %d or %d bytes, got %d",
			ed25519.SeedSize, ed25519.PrivateKeySize, len(raw))
	}
}

func signB(id *identityB, payload []byte) string {
	return base58.Encode(ed25519.Sign(id.priv, payload))
}

func verifyB(pub ed25519.PublicKey, payload []byte, sigB58 string) bool {
	raw, err := base58.Decode(sigB58)
	if err != nil || len(raw) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(pub, payload, raw)
}
