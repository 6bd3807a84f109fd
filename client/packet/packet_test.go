package packet

import (
	"bytes"
	"testing"

	pk "github.com/Tnze/go-mc/net/packet"
	"github.com/google/uuid"
)

func TestNBTStripsRootName(t *testing.T) {
	var buf bytes.Buffer
	if _, err := (NBT{V: map[string]any{}}).WriteTo(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	// An empty compound is its tag type followed by the end tag.
	if !bytes.Equal(buf.Bytes(), []byte{10, 0}) {
		t.Fatalf("expected a nameless empty compound, got %v", buf.Bytes())
	}
}

func TestPlayerInfoUpdateActions(t *testing.T) {
	id := uuid.New()
	p := PlayerInfoUpdate(PlayerInfoAddPlayer|PlayerInfoUpdateListed, PlayerInfo{UUID: id, Name: "Steve", Listed: true})

	var (
		actions pk.Byte
		count   pk.VarInt
		gotID   pk.UUID
		name    pk.String
		props   pk.VarInt
		listed  pk.Boolean
	)
	if err := p.Scan(&actions, &count, &gotID, &name, &props, &listed); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if actions != 0x09 || count != 1 || uuid.UUID(gotID) != id || name != "Steve" || props != 0 || !bool(listed) {
		t.Fatalf("unexpected player info update %v %v %v %v %v %v", actions, count, gotID, name, props, listed)
	}
}

func TestMovementDecode(t *testing.T) {
	var m Movement
	err := m.Decode(pk.Marshal(IDMovePlayerPosRot,
		pk.Double(1.5), pk.Double(64), pk.Double(-3),
		pk.Float(90), pk.Float(-10),
		pk.Boolean(true),
	))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !m.HasPosition || !m.HasRotation || m.X != 1.5 || m.Z != -3 || m.Yaw != 90 || m.Pitch != -10 || !m.OnGround {
		t.Fatalf("unexpected movement %+v", m)
	}

	m = Movement{}
	if err := m.Decode(pk.Marshal(IDMovePlayerRot, pk.Float(5), pk.Float(6), pk.Boolean(false))); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if m.HasPosition || !m.HasRotation || m.Yaw != 5 {
		t.Fatalf("unexpected movement %+v", m)
	}
}

func TestLoginStartDecode(t *testing.T) {
	id := uuid.New()
	var l LoginStart
	if err := l.Decode(pk.Marshal(IDLoginStart, pk.String("Alex"), pk.UUID(id))); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if l.Name != "Alex" || l.UUID != id {
		t.Fatalf("unexpected login start %+v", l)
	}
}
