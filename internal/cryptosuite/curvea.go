package cryptosuite

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/sha3"
)

// identityA is a Curve-A (secp256k1) signing identity. Address derivation
// follows the Ethereum convention: the last 20 bytes of the Keccak-256
// digest of the uncompressed public key, minus its leading 0x04 byte.
type identityA struct {
	priv    *secp256k1.PrivateKey
	pub     *secp256k1.PublicKey
	address string
}

func newIdentityA(seedHex string) (*identityA, error) {
	seed, err := decodeSeedA(seedHex)
	if err != nil {
		return nil, err
	}
	priv := secp256k1.PrivKeyFromBytes(seed)
	pub := priv.PubKey()
	return &identityA{priv: priv, pub: pub, address: addressFromPubKeyA(pub)}, nil
}

func decodeSeedA(seedHex string) ([]byte, error) {
	if seedHex == "" {
		seed := make([]byte, 32)
		if _, err := rand.Read(seed); err != nil {
			return nil, fmt.Errorf("cryptosuite: generate curve-a seed: %w", err)
		}
		return seed, nil
	}
	seedHex = strings.TrimPrefix(seedHex, "0x")
	b, err := hex.DecodeString(seedHex)
	if err != nil {
		return nil, fmt.Errorf("cryptosuite: decode curve-a seed: %w", err)
	}
	if len(b) != 32 {
		return nil, fmt.Errorf("cryptosuite: curve-a seed must be 32 bytes, got %d", len(b))
	}
	return b, nil
}

func addressFromPubKeyA(pub *secp256k1.PublicKey) string {
	uncompressed := pub.SerializeUncompressed() // 0x04 || X(32) || Y(32)
	h := sha3.NewLegacyKeccak256()
	h.Write(uncompressed[1:])
	digest := h.Sum(nil)
	return "0x" + hex.EncodeToString(digest[len(digest)-20:])
}

// signA signs the Keccak-256 digest of payload and returns the raw r||s
// signature hex-encoded (64 bytes, no recovery id).
func signA(id *identityA, payload []byte) string {
	digest := keccak256(payload)
	compact := ecdsa.SignCompact(id.priv, digest, true)
	// compact layout is [recovery(1) | r(32) | s(32)]; the wire format only
	// carries the raw r||s pair.
	return hex.EncodeToString(compact[1:])
}

// verifyA checks a hex r||s signature against pub over the Keccak-256
// digest of payload.
func verifyA(pub *secp256k1.PublicKey, payload []byte, sigHex string) bool {
	raw, err := hex.DecodeString(sigHex)
	if err != nil || len(raw) != 64 {
		return false
	}
	var r, s secp256k1.ModNScalar
	if overflow := r.SetByteSlice(raw[:32]); overflow {
		return false
	}
	if overflow := s.SetByteSlice(raw[32:]); overflow {
		return false
	}
	sig := ecdsa.NewSignature(&r, &s)
	return sig.Verify(keccak256(payload), pub)
}

func keccak256(b []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(b)
	return h.Sum(nil)
}
