package packet

import (
	"bytes"
	"testing"
)

func TestKickTargetsUsernameFirst(t *testing.T) {
	buf := &bytes.Buffer{}
	(&Kick{Username: "bob", Reason: "bye"}).Encode(buf)

	if name := ReadString(bytes.NewBuffer(buf.Bytes())); name != "bob" {
		t.Fatalf("expected username first, got %q", name)
	}

	var kick Kick
	kick.Decode(buf)
	if kick.Username != "bob" || kick.Reason != "bye" {
		t.Fatalf("unexpected kick %#v", kick)
	}
	if buf.Len() != 0 {
		t.Fatalf("%d trailing bytes", buf.Len())
	}
}

func TestNewPool(t *testing.T) {
	pool := NewPool()
	for _, id := range []uint32{IDConnectionRequest, IDConnectionResponse, IDKick, IDMessage} {
		factory, ok := pool[id]
		if !ok {
			t.Fatalf("missing factory for %d", id)
		}
		if pk := factory(); pk.ID() != id {
			t.Fatalf("factory for %d built packet %d", id, pk.ID())
		}
	}
	if len(pool) != 4 {
		t.Fatalf("expected 4 packets, got %d", len(pool))
	}
}

func TestDecodeTruncatedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on truncated kick")
		}
	}()
	buf := &bytes.Buffer{}
	WriteString(buf, "bob")
	buf.Write([]byte{10, 0, 0, 0, 'x'})
	(&Kick{}).Decode(buf)
}
