package gossiptransport

import (
	"testing"

	"github.com/libp2p/go-libp2p-pubsub/pb"
)

func TestMsgIDFn_DeterministicOnIdenticalPayload(t *testing.T) {
	fn := msgIDFn()
	m1 := &pb.Message{}
	m1.Data = []byte("same-payload")
	m2 := &pb.Message{}
	m2.Data = []byte("same-payload")
	if fn(m1) != fn(m2) {
		t.Fatal("expected identical payloads to share a message id")
	}
}

func TestMsgIDFn_DiffersOnDifferentPayload(t *testing.T) {
	fn := msgIDFn()
	m1 := &pb.Message{}
	m1.Data = []byte("payload-one")
	m2 := &pb.Message{}
	m2.Data = []byte("payload-two")
	if fn(m1) == fn(m2) {
		t.Fatal("expected different payloads to have different message ids")
	}
}
