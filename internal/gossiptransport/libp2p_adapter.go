package gossiptransport

import (
	"context"
	"crypto/sha256"
	"fmt"
	"sync"

	libp2p "github.com/libp2p/go-libp2p"
	"github.com/libp2p/go-libp2p-pubsub/pb"
	pubsub "github.com/libp2p/go-libp2p-pubsub"
	"github.com/libp2p/go-libp2p/core/host"
)

// msgIDFn derives a deterministic pubsub message id from the sha256 of
// the raw payload, rather than the default (source, seqno) pair, so
// retransmissions of an identical signed payload collapse to one message.
func msgIDFn() pubsub.MsgIdFunction {
	return func(pmsg *pb.Message) string {
		sum := sha256.Sum256(pmsg.Data)
		return string(sum[:20])
	}
}

// Libp2pTransport adapts a libp2p host + gossipsub router to the
// Transport contract, one topic/subscription pair per call to Subscribe.
type Libp2pTransport struct {
	host host.Host
	ps   *pubsub.PubSub

	mu     sync.Mutex
	topics map[string]*pubsub.Topic
}

// NewLibp2pTransport starts a libp2p host with a gossipsub router bound
// to it. Callers own the returned transport's lifetime via Close.
func NewLibp2pTransport(ctx context.Context) (*Libp2pTransport, error) {
	h, err := libp2p.New(
		libp2p.EnableRelay(),
		libp2p.EnableNATService(),
		libp2p.EnableHolePunching(),
	)
	if err != nil {
		return nil, fmt.Errorf("gossiptransport: libp2p host: %w", err)
	}
	ps, err := pubsub.NewGossipSub(ctx, h,
		pubsub.WithMessageIdFn(msgIDFn()),
		pubsub.WithFloodPublish(true),
		pubsub.WithPeerExchange(true),
	)
	if err != nil {
		h.Close()
		return nil, fmt.Errorf("gossiptransport: gossipsub: %w", err)
	}
	return &Libp2pTransport{host: h, ps: ps, topics: make(map[string]*pubsub.Topic)}, nil
}

// Host exposes the underlying libp2p host, for wiring a Discoverer.
func (t *Libp2pTransport) Host() host.Host { return t.host }

func (t *Libp2pTransport) topic(name string) (*pubsub.Topic, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if tp, ok := t.topics[name]; ok {
		return tp, nil
	}
	tp, err := t.ps.Join(name)
	if err != nil {
		return nil, fmt.Errorf("gossiptransport: join topic %q: %w", name, err)
	}
	t.topics[name] = tp
	return tp, nil
}

// Publish sends data on topic.
func (t *Libp2pTransport) Publish(ctx context.Context, topicName string, data []byte) error {
	tp, err := t.topic(topicName)
	if err != nil {
		return err
	}
	return tp.Publish(ctx, data)
}

// Subscribe joins topic (if not already) and streams inbound messages
// until ctx is cancelled.
func (t *Libp2pTransport) Subscribe(ctx context.Context, topicName string) (<-chan InboundMessage, error) {
	tp, err := t.topic(topicName)
	if err != nil {
		return nil, err
	}
	sub, err := tp.Subscribe()
	if err != nil {
		return nil, fmt.Errorf("gossiptransport: subscribe %q: %w", topicName, err)
	}

	out := make(chan InboundMessage, 64)
	go func() {
		defer close(out)
		defer sub.Cancel()
		for {
			msg, err := sub.Next(ctx)
			if err != nil {
				return
			}
			select {
			case out <- InboundMessage{PropagationSource: msg.ReceivedFrom.String(), Data: msg.Data}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// Close tears down the libp2p host.
func (t *Libp2pTransport) Close() error {
	return t.host.Close()
}
