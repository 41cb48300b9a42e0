package gossiptransport

import (
	"context"

	"github.com/libp2p/go-libp2p/core/host"
	"github.com/libp2p/go-libp2p/core/peer"
	"github.com/libp2p/go-libp2p/p2p/discovery/mdns"
)

// Discoverer finds peers on the LAN and connects the transport's host to
// them as they're announced.
type Discoverer interface {
	Start() error
	Close() error
}

// mdnsNotifee bridges mDNS peer announcements into host.Connect calls.
type mdnsNotifee struct {
	ctx  context.Context
	host host.Host
}

func (n *mdnsNotifee) HandlePeerFound(pi peer.AddrInfo) {
	if pi.ID == n.host.ID() {
		return
	}
	_ = n.host.Connect(n.ctx, pi)
}

// MdnsDiscoverer wraps libp2p's built-in mDNS discovery service for
// server name "ggs-mdns".
type MdnsDiscoverer struct {
	service mdns.Service
}

// NewMdnsDiscoverer builds a discoverer bound to host h.
func NewMdnsDiscoverer(ctx context.Context, h host.Host) *MdnsDiscoverer {
	svc := mdns.NewMdnsService(h, "ggs-mdns", &mdnsNotifee{ctx: ctx, host: h})
	return &MdnsDiscoverer{service: svc}
}

// Start begins advertising and discovering peers.
func (d *MdnsDiscoverer) Start() error { return d.service.Start() }

// Close stops the mDNS service.
func (d *MdnsDiscoverer) Close() error { return d.service.Close() }
