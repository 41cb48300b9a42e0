// Package ggstypes — message.go
//
// GgsMessage is the tagged union of gossip payloads. It is modeled as an
// interface with a Kind() discriminant plus four concrete variants, rather
// than one struct with optional fields, so the node loop dispatches on the
// concrete type in a single switch; a variant without a case there falls
// to that switch's default branch (the compiler does not check coverage).

package ggstypes

// MessageKind discriminates GgsMessage variants on the wire.
type MessageKind string

const (
	KindHeartbeat       MessageKind = "heartbeat"
	KindSimilarityProbe MessageKind = "similarity_probe"
	KindSparseUpdate    MessageKind = "sparse_update"
	KindDenseSnapshot   MessageKind = "dense_snapshot"
)

// GgsMessage is implemented by each of the four wire payload variants.
type GgsMessage interface {
	Kind() MessageKind
}

// Heartbeat announces liveness and the sender's current model hash.
type Heartbeat struct {
	PeerID    string `json:"peer_id"`
	ModelHash string `json:"model_hash"`
}

func (Heartbeat) Kind() MessageKind { return KindHeartbeat }

// SimilarityProbe advertises the sender's embedding and position so peers
// can score it for topology admission.
type SimilarityProbe struct {
	Sender    string     `json:"sender"`
	Embedding []float32  `json:"embedding"`
	Position  GeoPoint   `json:"position"`
}

func (SimilarityProbe) Kind() MessageKind { return KindSimilarityProbe }

// SparseUpdateMsg carries a compressed parameter delta from Sender.
type SparseUpdateMsg struct {
	Sender string       `json:"sender"`
	Update SparseUpdate `json:"update"`
}

func (SparseUpdateMsg) Kind() MessageKind { return KindSparseUpdate }

// DenseSnapshotMsg carries a full parameter vector from Sender.
type DenseSnapshotMsg struct {
	Sender   string         `json:"sender"`
	Snapshot TensorSnapshot `json:"snapshot"`
}

func (DenseSnapshotMsg) Kind() MessageKind { return KindDenseSnapshot }

// SenderID extracts the originating peer identifier from any GgsMessage
// variant, for ledger lookups keyed by peer-id.
func SenderID(m GgsMessage) string {
	switch v := m.(type) {
	case Heartbeat:
		return v.PeerID
	case SimilarityProbe:
		return v.Sender
	case SparseUpdateMsg:
		return v.Sender
	case DenseSnapshotMsg:
		return v.Sender
	default:
		return ""
	}
}

// envelope is the on-wire discriminated representation used by the
// canonical codec (see codec.go). Exactly one of the payload fields is set,
// matching Kind.
type envelope struct {
	Kind      MessageKind       `json:"kind"`
	Heartbeat *Heartbeat        `json:"heartbeat,omitempty"`
	Probe     *SimilarityProbe  `json:"probe,omitempty"`
	Sparse    *SparseUpdateMsg  `json:"sparse,omitempty"`
	Dense     *DenseSnapshotMsg `json:"dense,omitempty"`
}

func toEnvelope(m GgsMessage) envelope {
	env := envelope{Kind: m.Kind()}
	switch v := m.(type) {
	case Heartbeat:
		env.Heartbeat = &v
	case SimilarityProbe:
		env.Probe = &v
	case SparseUpdateMsg:
		env.Sparse = &v
	case DenseSnapshotMsg:
		env.Dense = &v
	}
	return env
}

func fromEnvelope(env envelope) (GgsMessage, bool) {
	switch env.Kind {
	case KindHeartbeat:
		if env.Heartbeat == nil {
			return nil, false
		}
		return *env.Heartbeat, true
	case KindSimilarityProbe:
		if env.Probe == nil {
			return nil, false
		}
		return *env.Probe, true
	case KindSparseUpdate:
		if env.Sparse == nil {
			return nil, false
		}
		return *env.Sparse, true
	case KindDenseSnapshot:
		if env.Dense == nil {
			return nil, false
		}
		return *env.Dense, true
	default:
		return nil, false
	}
}
