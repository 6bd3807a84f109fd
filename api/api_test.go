package api

import (
	"io"
	"log/slog"
	"net"
	"strings"
	"testing"

	"github.com/cooldogedev/prism/api/packet"
	"github.com/cooldogedev/prism/session"
)

func TestClientCompression(t *testing.T) {
	local, remote := net.Pipe()
	a, b := NewClient(local, packet.NewPool()), NewClient(remote, packet.NewPool())
	defer a.Close()
	defer b.Close()

	long := strings.Repeat("spam ", 200)
	go func() {
		_ = a.WritePacket(&packet.Message{Username: "alice", Message: "hi"})
		_ = a.WritePacket(&packet.Kick{Username: "bob", Reason: long})
	}()

	pk, err := b.ReadPacket()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if msg, ok := pk.(*packet.Message); !ok || msg.Username != "alice" || msg.Message != "hi" {
		t.Fatalf("unexpected packet %#v", pk)
	}

	pk, err = b.ReadPacket()
	if err != nil {
		t.Fatalf("read compressed: %v", err)
	}
	if kick, ok := pk.(*packet.Kick); !ok || kick.Username != "bob" || kick.Reason != long {
		t.Fatalf("unexpected packet %#v", pk)
	}
}

func TestHandshake(t *testing.T) {
	api := NewAPI(session.NewRegistry(), slog.New(slog.NewTextHandler(io.Discard, nil)), NewSecretBasedAuthentication("secret"))

	for token, ok := range map[string]bool{"secret": true, "Secret": false, "": false} {
		local, remote := net.Pipe()
		go api.handle(remote)

		c, err := handshake(NewClient(local, packet.NewPool()), token)
		if (err == nil) != ok {
			t.Fatalf("token %q: expected success %v, got %v", token, ok, err)
		}
		if c != nil {
			_ = c.WritePacket(&packet.Kick{Username: "nobody"})
		}
		_ = local.Close()
	}
}
