package p2p

import (
	"testing"
	"time"

	"github.com/libp2p/go-libp2p/core/peer"
)

func TestNode_New(t *testing.T) {
	n := New(Config{ListenAddr: "127.0.0.1", Port: 0})
	if n == nil {
		t.Fatal("New returned nil")
	}
	if n.host != nil {
		t.Error("host should be nil before Start")
	}
	if n.ID() != "" {
		t.Error("ID should be empty before Start")
	}
}

func TestNode_StartStop(t *testing.T) {
	n := New(Config{ListenAddr: "127.0.0.1", Port: 0, NoDiscover: true})

	if err := n.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if n.host == nil {
		t.Fatal("host should not be nil after Start")
	}
	if n.ID() == "" {
		t.Error("ID should not be empty after Start")
	}
	if len(n.Addrs()) == 0 {
		t.Error("should have at least one address")
	}

	if err := n.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
}

func TestNode_PeerCount_Empty(t *testing.T) {
	n := New(Config{ListenAddr: "127.0.0.1", Port: 0})
	if n.PeerCount() != 0 {
		t.Error("a fresh node should have no peers")
	}
}

func TestTwoNodes_Connect(t *testing.T) {
	a := New(Config{ListenAddr: "127.0.0.1", Port: 0, NoDiscover: true})
	b := New(Config{ListenAddr: "127.0.0.1", Port: 0, NoDiscover: true})
	if err := a.Start(); err != nil {
		t.Fatalf("a.Start: %v", err)
	}
	defer a.Stop()
	if err := b.Start(); err != nil {
		t.Fatalf("b.Start: %v", err)
	}
	defer b.Stop()

	addrs := a.Addrs()
	if len(addrs) == 0 {
		t.Fatal("node a has no listen addresses")
	}
	info, err := peer.AddrInfoFromString(addrs[0])
	if err != nil {
		t.Fatalf("parse addr: %v", err)
	}
	if err := b.host.Connect(b.ctx, *info); err != nil {
		t.Fatalf("connect: %v", err)
	}

	// Allow the gossipsub mesh to form before publishing.
	time.Sleep(300 * time.Millisecond)

	if err := a.BroadcastBlock(nil); err != nil {
		t.Errorf("BroadcastBlock() error: %v", err)
	}
}
