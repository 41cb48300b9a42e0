// Package quicrt implements the optional realtime datagram broadcaster:
// a self-signed-TLS QUIC listener plus outbound dial, fanning a payload
// out to every connected session over unreliable datagrams.
package quicrt

import (
	"context"
	"crypto/tls"
	"fmt"

	"github.com/quic-go/quic-go"
)

// Broadcaster is the realtime datagram broadcaster contract: best-effort
// fan-out to all connected sessions, plus outbound dial for bootstrap
// peers.
type Broadcaster struct {
	tlsConf  *tls.Config
	quicConf *quic.Config
	listener *quic.Listener
	pool     *sessionPool
}

// New builds a Broadcaster with a fresh self-signed certificate for the
// server name "ggs-quic". Datagrams must be supported by both ends.
func New() (*Broadcaster, error) {
	tlsConf, err := selfSignedTLSConfig()
	if err != nil {
		return nil, err
	}
	return &Broadcaster{
		tlsConf:  tlsConf,
		quicConf: &quic.Config{EnableDatagrams: true},
		pool:     &sessionPool{},
	}, nil
}

// Listen binds addr and accepts inbound sessions until ctx is cancelled.
func (b *Broadcaster) Listen(ctx context.Context, addr string) error {
	ln, err := quic.ListenAddr(addr, b.tlsConf, b.quicConf)
	if err != nil {
		return fmt.Errorf("quicrt: listen %q: %w", addr, err)
	}
	b.listener = ln

	go func() {
		for {
			conn, err := ln.Accept(ctx)
			if err != nil {
				return
			}
			b.pool.add(conn)
		}
	}()
	return nil
}

// Connect dials a bootstrap peer and adds the resulting session to the pool.
func (b *Broadcaster) Connect(ctx context.Context, endpoint string) error {
	conn, err := quic.DialAddr(ctx, endpoint, b.tlsConf, b.quicConf)
	if err != nil {
		return fmt.Errorf("quicrt: dial %q: %w", endpoint, err)
	}
	b.pool.add(conn)
	return nil
}

// Broadcast attempts best-effort delivery of data to every connected
// session via an unreliable datagram, returning true iff at least one
// session accepted it. Failed sessions are collected by index during the
// pass and compacted out afterward so live indices stay stable mid-pass.
func (b *Broadcaster) Broadcast(data []byte) bool {
	sessions := b.pool.snapshot()
	delivered := false
	var failed []int
	for i, conn := range sessions {
		if err := conn.SendDatagram(data); err != nil {
			failed = append(failed, i)
			continue
		}
		delivered = true
	}
	b.pool.removeFailed(failed)
	return delivered
}

// SessionCount reports the number of currently pooled sessions.
func (b *Broadcaster) SessionCount() int {
	return b.pool.len()
}

// Close tears down the listener, if any.
func (b *Broadcaster) Close() error {
	if b.listener == nil {
		return nil
	}
	return b.listener.Close()
}
