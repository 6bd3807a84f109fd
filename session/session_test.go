package session

import (
	"bytes"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	mcnet "github.com/Tnze/go-mc/net"
	pk "github.com/Tnze/go-mc/net/packet"
	"github.com/cooldogedev/prism/client"
	clientpacket "github.com/cooldogedev/prism/client/packet"
	"github.com/cooldogedev/prism/mapping"
	proto "github.com/cooldogedev/prism/protocol"
	"github.com/cooldogedev/prism/server"
	"github.com/cooldogedev/prism/server/packet"
	"github.com/google/uuid"
)

var testLog = slog.New(slog.NewTextHandler(io.Discard, nil))

func testCatalog(t *testing.T) *mapping.Catalog {
	t.Helper()
	c, err := mapping.NewCatalog(
		[]string{"base:air[default]", "base:stone[default]"},
		[]string{"minecraft:air", "minecraft:stone"},
		map[string]string{"base:air[default]": "minecraft:air", "base:stone[default]": "minecraft:stone"},
		testLog,
	)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return c
}

// newTestSession returns a session in the play state whose client is a pipe. Packets written to the
// client are delivered on the returned channel.
func newTestSession(t *testing.T) (*Session, <-chan pk.Packet) {
	t.Helper()
	local, remote := net.Pipe()
	conn := client.NewConn(local)
	conn.SetState(client.StatePlay)

	s := NewSession(conn, clientpacket.LoginStart{Name: "alice", UUID: uuid.New()}, Config{
		Catalog:  testCatalog(t),
		Registry: NewRegistry(),
		Logger:   testLog,
	})
	account := packet.NewOfflineAccount("alice")
	s.entities.SetClientAccount(account)
	s.entities.Join(account)

	packets := make(chan pk.Packet, 64)
	go func() {
		defer close(packets)
		peer := mcnet.WrapConn(remote)
		for {
			var p pk.Packet
			if err := peer.ReadPacket(&p); err != nil {
				return
			}
			packets <- p
		}
	}()
	t.Cleanup(s.Close)
	return s, packets
}

func expect(t *testing.T, packets <-chan pk.Packet, id int32) pk.Packet {
	t.Helper()
	select {
	case p, ok := <-packets:
		if !ok {
			t.Fatalf("connection closed while waiting for packet %#x", id)
		}
		if p.ID != id {
			t.Fatalf("expected packet %#x, got %#x", id, p.ID)
		}
		return p
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for packet %#x", id)
	}
	return pk.Packet{}
}

func TestPlayerJoinAndLeave(t *testing.T) {
	s, packets := newTestSession(t)
	bob := packet.NewOfflineAccount("bob")

	if err := s.handleServerPacket(&packet.Player{Account: bob, JustJoined: true}); err != nil {
		t.Fatalf("join: %v", err)
	}
	expect(t, packets, clientpacket.IDSystemChat)
	expect(t, packets, clientpacket.IDPlayerInfoUpdate)
	p := expect(t, packets, clientpacket.IDAddEntity)

	var entityID pk.VarInt
	var id pk.UUID
	if err := p.Scan(&entityID, &id); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if entityID != 1 || uuid.UUID(id) != EntityUUID(1) {
		t.Fatalf("expected entity 1, got %d %s", entityID, uuid.UUID(id))
	}

	if err := s.handleServerPacket(&packet.Player{Account: bob}); err != nil {
		t.Fatalf("join again: %v", err)
	}
	if s.entities.Len() != 2 {
		t.Fatalf("expected joining twice to be ignored, got %d players", s.entities.Len())
	}

	if err := s.handleServerPacket(&packet.Disconnect{PlayerUniqueID: bob.UniqueID}); err != nil {
		t.Fatalf("leave: %v", err)
	}
	expect(t, packets, clientpacket.IDRemoveEntities)
	expect(t, packets, clientpacket.IDSystemChat)
	expect(t, packets, clientpacket.IDPlayerInfoRemove)
	if s.entities.Has(bob.UniqueID) {
		t.Fatalf("expected bob to be removed")
	}

	if err := s.handleServerPacket(&packet.Disconnect{PlayerUniqueID: "offline:unknown"}); err != nil {
		t.Fatalf("leave of an unknown player: %v", err)
	}
}

func TestBlockReplaceInUnknownSection(t *testing.T) {
	s, packets := newTestSession(t)

	err := s.handleServerPacket(&packet.BlockReplace{
		BlockState: "base:stone[default]",
		Position:   packet.BlockPosition{X: 5, Y: 70, Z: -3},
	})
	if err != nil {
		t.Fatalf("block replace: %v", err)
	}

	p := expect(t, packets, clientpacket.IDBlockUpdate)
	var pos pk.Position
	var state pk.VarInt
	if err := p.Scan(&pos, &state); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if pos.X != 5 || pos.Y != 70 || pos.Z != -3 || state != 0 {
		t.Fatalf("unexpected block update %+v %d", pos, state)
	}
	if _, ok := s.tracker.Chunk(0, -1); ok {
		t.Fatalf("a change to an unknown section must not create a chunk")
	}
}

func TestTransactionRoundTrip(t *testing.T) {
	s, packets := newTestSession(t)

	serverLocal, serverRemote := net.Pipe()
	s.serverConn = server.NewConn(serverLocal, packet.NewClientPool())

	buf := new(bytes.Buffer)
	packet.WriteInt64(buf, -77)
	s.handleFrame(server.Frame{ID: int32(packet.KindTransaction), Payload: buf.Bytes()})

	p := expect(t, packets, clientpacket.IDPing)
	var id pk.Int
	if err := p.Scan(&id); err != nil || id != 1 {
		t.Fatalf("expected ping 1, got %d (%v)", id, err)
	}

	frames := make(chan []byte, 1)
	go func() {
		payload, err := proto.NewReader(serverRemote).ReadPacket()
		if err == nil {
			frames <- payload
		}
	}()
	s.handleClientPacket(pk.Marshal(clientpacket.IDPong, pk.Int(1)))

	select {
	case payload := <-frames:
		b := bytes.NewBuffer(payload)
		if kind := packet.ReadInt16(b); kind != int16(packet.KindTransaction) {
			t.Fatalf("expected a transaction, got kind %d", kind)
		}
		if v := packet.ReadInt64(b); v != -77 {
			t.Fatalf("expected transaction -77, got %d", v)
		}
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for the transaction")
	}
}

type recordingProcessor struct {
	NopProcessor
	disconnections int
}

func (p *recordingProcessor) ProcessClient(ctx *Context, _ pk.Packet) {
	ctx.Cancel()
}

func (p *recordingProcessor) ProcessDisconnection() {
	p.disconnections++
}

func TestProcessorCancelsPackets(t *testing.T) {
	s, _ := newTestSession(t)
	proc := &recordingProcessor{}
	s.SetProcessor(proc)

	// The session has no server: translating the chat message would panic.
	s.handleClientPacket(pk.Marshal(clientpacket.IDChatMessage, pk.String("hello")))

	s.Close()
	s.Close()
	if proc.disconnections != 1 {
		t.Fatalf("expected one disconnection, got %d", proc.disconnections)
	}
	if s.Submit(func() {}) {
		t.Fatalf("expected submitting to a closed session to fail")
	}
}
