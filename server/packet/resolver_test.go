package packet

import (
	"errors"
	"testing"
)

func TestResolverDefaults(t *testing.T) {
	r := NewResolver()
	if k, ok := r.Resolve(Clientbound, 9); !ok || k != KindChunkColumn {
		t.Fatalf("expected chunk column for clientbound ID 9, got %v (%v)", k, ok)
	}
	if _, ok := r.Resolve(Clientbound, int32(KindLogin)); ok {
		t.Fatalf("login must not resolve clientbound")
	}
	if id, err := r.ID(Serverbound, KindLogin); err != nil || id != 3 {
		t.Fatalf("expected serverbound login ID 3, got %v (%v)", id, err)
	}
	if r.Synced() {
		t.Fatalf("fresh resolver must not be synced")
	}
}

func TestResolverSync(t *testing.T) {
	r := NewResolver()
	err := r.Sync([]ProtocolSyncEntry{
		{Name: KindProtocolSync.Name(), ID: 0},
		{Name: KindMessage.Name(), ID: 42},
		{Name: KindLogin.Name(), ID: 7},
	})
	if err != nil {
		t.Fatalf("unexpected sync error: %v", err)
	}
	if !r.Synced() {
		t.Fatalf("resolver must be synced")
	}
	if k, ok := r.Resolve(Clientbound, 42); !ok || k != KindMessage {
		t.Fatalf("expected message for clientbound ID 42, got %v", k)
	}
	if k, ok := r.Resolve(Serverbound, 42); !ok || k != KindMessage {
		t.Fatalf("expected message for serverbound ID 42, got %v", k)
	}
	if _, ok := r.Resolve(Clientbound, int32(KindChunkColumn)); ok {
		t.Fatalf("default IDs must be discarded after sync")
	}
	if _, err := r.ID(Serverbound, KindPlayerPosition); !errors.Is(err, ErrUnresolvedKind) {
		t.Fatalf("expected ErrUnresolvedKind, got %v", err)
	}
}

func TestResolverSyncRejects(t *testing.T) {
	tests := map[string][]ProtocolSyncEntry{
		"unknown name":   {{Name: "finalforeach.cosmicreach.networking.netty.packets.NoSuchPacket", ID: 1}},
		"duplicate name": {{Name: KindZone.Name(), ID: 1}, {Name: KindZone.Name(), ID: 2}},
		"duplicate ID":   {{Name: KindZone.Name(), ID: 5}, {Name: KindPlayer.Name(), ID: 5}},
	}
	for name, entries := range tests {
		r := NewResolver()
		if err := r.Sync(entries); err == nil {
			t.Fatalf("%s: expected sync to fail", name)
		}
		if r.Synced() {
			t.Fatalf("%s: failed sync must keep the defaults", name)
		}
		if k, ok := r.Resolve(Clientbound, 8); !ok || k != KindZone {
			t.Fatalf("%s: defaults must still answer, got %v", name, k)
		}
	}
}

func TestResolverSyncSameIDAcrossDirections(t *testing.T) {
	r := NewResolver()
	err := r.Sync([]ProtocolSyncEntry{
		{Name: KindZone.Name(), ID: 5},
		{Name: KindLogin.Name(), ID: 5},
	})
	if err != nil {
		t.Fatalf("IDs only need to be unique per direction: %v", err)
	}
}
