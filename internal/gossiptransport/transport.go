// Package gossiptransport defines the opaque pub/sub contract the node
// loop publishes signed gossip on, plus a libp2p-pubsub-backed adapter
// and a libp2p mDNS-backed peer discoverer, grounded on the corpus's
// libp2p/gossipsub wiring pattern.
package gossiptransport

import "context"

// InboundMessage pairs opaque wire bytes with the string peer-id that
// propagated them.
type InboundMessage struct {
	PropagationSource string
	Data               []byte
}

// Transport is the opaque gossip contract: publish bytes to a topic, and
// receive an inbound stream of bytes from whoever else publishes there.
// Peer discovery is transport-internal.
type Transport interface {
	Publish(ctx context.Context, topic string, data []byte) error
	Subscribe(ctx context.Context, topic string) (<-chan InboundMessage, error)
	Close() error
}
