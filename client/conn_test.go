package client

import (
	"net"
	"testing"

	mcnet "github.com/Tnze/go-mc/net"
	pk "github.com/Tnze/go-mc/net/packet"
	"github.com/cooldogedev/prism/client/packet"
)

func TestConnReadWrite(t *testing.T) {
	local, remote := net.Pipe()
	c := NewConn(local)
	defer c.Close()

	if c.State() != StateHandshake {
		t.Fatalf("expected the handshake state, got %v", c.State())
	}

	peer := mcnet.WrapConn(remote)
	go func() {
		_ = peer.WritePacket(pk.Marshal(packet.IDChatMessage, pk.String("hello")))
	}()

	p, err := c.ReadPacket()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var msg packet.ChatMessage
	if err := msg.Decode(p); err != nil || msg.Message != "hello" {
		t.Fatalf("unexpected chat message %q (%v)", msg.Message, err)
	}

	done := make(chan pk.Packet, 1)
	go func() {
		var p pk.Packet
		_ = peer.ReadPacket(&p)
		done <- p
	}()
	if err := c.WritePacket(packet.KeepAlive(7)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if p := <-done; p.ID != packet.IDKeepAlive {
		t.Fatalf("expected a keep alive, got %#x", p.ID)
	}

	_ = c.Close()
	if err := c.WritePacket(packet.KeepAlive(8)); err == nil {
		t.Fatalf("expected writing to a closed connection to fail")
	}
	c.SetState(StatePlay)
	if c.State().String() != "play" {
		t.Fatalf("unexpected state %v", c.State())
	}
}
