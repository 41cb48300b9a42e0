// Package ggstypes — signed.go
//
// SignedGossip and SignatureBundle: the dual-signature envelope every
// outbound message is wrapped in before it reaches the gossip transport.

package ggstypes

// SignatureBundle holds two independent signatures over the same payload,
// one from each curve the consensus layer trusts.
type SignatureBundle struct {
	CurveA CurveASignature `json:"curve_a"`
	CurveB CurveBSignature `json:"curve_b"`
}

// CurveASignature is a secp256k1-style signature. Address is the
// "0x"+hex of the last 20 bytes of Keccak-256(uncompressed pubkey minus the
// 0x04 prefix byte). Signature is hex(raw r||s), 64 bytes.
type CurveASignature struct {
	Address   string `json:"address"`
	Signature string `json:"signature"`
}

// CurveBSignature is an ed25519 signature. Pubkey and Signature are
// base58-encoded.
type CurveBSignature struct {
	Pubkey    string `json:"pubkey"`
	Signature string `json:"signature"`
}

// SignedGossip is the wire envelope: a payload, its dual signature, and the
// staking score the consensus engine attached at sign time.
type SignedGossip struct {
	Payload      GgsMessage      `json:"payload"`
	Signature    SignatureBundle `json:"signature"`
	StakingScore float32         `json:"staking_score"`
}
