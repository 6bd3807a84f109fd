package packet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestOfflineAccount(t *testing.T) {
	a := NewOfflineAccount("Steve")
	if a.Username != "offline:Steve" || a.DisplayName() != "Steve" {
		t.Fatalf("unexpected account %+v", a)
	}
	if !strings.HasPrefix(a.UniqueID, "offline:") {
		t.Fatalf("unique ID must be qualified, got %s", a.UniqueID)
	}

	buf := new(bytes.Buffer)
	(&Login{Account: a}).Encode(buf)
	login := &Login{}
	login.Decode(buf)
	if login.Account != a {
		t.Fatalf("expected %+v, got %+v", a, login.Account)
	}
}

func TestReadAccountRejectsUnknownType(t *testing.T) {
	buf := new(bytes.Buffer)
	WriteString(buf, "itch")
	WriteString(buf, `{"username":"itch:a","uniqueId":"itch:1"}`)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected an unknown account type to panic")
		}
	}()
	ReadAccount(buf)
}

func TestMessageNullSender(t *testing.T) {
	buf := new(bytes.Buffer)
	(&Message{Message: "hello"}).Encode(buf)
	if !bytes.Equal(buf.Bytes()[9:], []byte{0xff, 0xff, 0xff, 0xff}) {
		t.Fatalf("expected a null sender, got %v", buf.Bytes())
	}
}

func TestPlayerPositionNullZone(t *testing.T) {
	pk := &PlayerPosition{
		PlayerUniqueID:      "offline:1",
		Position:            mgl32.Vec3{1, 2, 3},
		ViewDirectionOffset: mgl32.Vec3{0, 1.8, 0},
	}
	buf := new(bytes.Buffer)
	pk.Encode(buf)
	decoded := &PlayerPosition{}
	decoded.Decode(buf)
	if *decoded != *pk {
		t.Fatalf("expected %+v, got %+v", pk, decoded)
	}
}

func TestPoolUnhandled(t *testing.T) {
	pool := NewClientPool()
	if _, ok := pool.New(KindZone).(*Zone); !ok {
		t.Fatalf("expected a zone packet")
	}
	pk := pool.New(KindPlaySound2D)
	pk.Decode(bytes.NewBuffer([]byte{1, 2}))
	if u, ok := pk.(*Unhandled); !ok || u.Kind() != KindPlaySound2D || len(u.Payload) != 2 {
		t.Fatalf("expected an unhandled sound packet, got %#v", pk)
	}
}

func TestProtocolSyncRejectsMalformedPayloads(t *testing.T) {
	negative := new(bytes.Buffer)
	WriteInt32(negative, -5)

	truncated := new(bytes.Buffer)
	WriteInt32(truncated, 2)
	WriteString(truncated, KindTransaction.Name())
	WriteInt32(truncated, 9)

	nullName := new(bytes.Buffer)
	WriteInt32(nullName, 1)
	WriteNullString(nullName)
	WriteInt32(nullName, 9)

	for name, buf := range map[string]*bytes.Buffer{"negative": negative, "truncated": truncated, "null name": nullName} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("%s: expected decoding to fail", name)
				}
			}()
			(&ProtocolSync{}).Decode(buf)
		}()
	}
}
