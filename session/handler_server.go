package session

import (
	"encoding/binary"
	"fmt"

	clientpacket "github.com/cooldogedev/prism/client/packet"
	"github.com/cooldogedev/prism/internal"
	"github.com/cooldogedev/prism/server"
	"github.com/cooldogedev/prism/server/packet"
	"github.com/cooldogedev/prism/world"
	"github.com/google/uuid"
)

// handleFrame resolves, decodes and translates a frame read from the server.
func (s *Session) handleFrame(f server.Frame) {
	conn := s.Server()
	pk, ok, err := conn.Decode(f)
	if err != nil {
		if kind, _ := conn.Resolver().Resolve(packet.Clientbound, f.ID); kind == packet.KindProtocolSync {
			s.fail(fmt.Errorf("malformed protocol sync: %w", err))
			return
		}
		s.logger.Warn("failed to decode packet from server", "id", f.ID, "err", err)
		return
	}
	if !ok {
		s.logger.Debug("dropped packet with unresolved ID", "id", f.ID)
		return
	}

	ctx := NewContext()
	s.Processor().ProcessServer(ctx, pk)
	if ctx.Cancelled() {
		return
	}

	if err := s.handleServerPacket(pk); err != nil {
		s.fail(err)
	}
}

func (s *Session) handleServerPacket(pk packet.Packet) error {
	switch pk := pk.(type) {
	case *packet.ProtocolSync:
		if err := s.Server().Resolver().Sync(pk.Entries); err != nil {
			return err
		}
		s.logger.Debug("synced packet IDs", "count", len(pk.Entries))
		return nil
	case *packet.Transaction:
		return s.writeClient(clientpacket.Ping(s.transactions.Open(pk.ID)))
	case *packet.Disconnect:
		return s.handlePlayerLeave(pk.PlayerUniqueID)
	case *packet.Player:
		return s.handlePlayerJoin(pk)
	case *packet.Message:
		return s.handleMessage(pk)
	case *packet.PlayerPosition:
		return s.handlePlayerPosition(pk)
	case *packet.Zone:
		return s.handleZone(pk)
	case *packet.ChunkColumn:
		for _, entry := range pk.Entries {
			if entry.Section == nil {
				continue
			}
			s.tracker.MergeSection(entry.X, entry.Y, entry.Z, world.NewSection(entry.Section, s.cfg.Catalog, s.logger))
		}
		return nil
	case *packet.BlockReplace:
		id := s.tracker.HandleBlockChange(pk.Position, pk.BlockState)
		return s.writeClient(clientpacket.BlockUpdate(pk.Position.X, pk.Position.Y, pk.Position.Z, id))
	default:
		s.logger.Debug("dropped packet from server", "kind", pk.Kind())
		return nil
	}
}

func (s *Session) handlePlayerJoin(pk *packet.Player) error {
	if s.entities.Has(pk.Account.UniqueID) {
		return nil
	}

	name := pk.Account.DisplayName()
	if pk.JustJoined {
		if err := s.writeClient(clientpacket.SystemChat(name + " has joined the game.")); err != nil {
			return err
		}
	}

	entityID := s.entities.Join(pk.Account)
	id := EntityUUID(entityID)
	if err := s.writeClient(clientpacket.PlayerInfoUpdate(
		clientpacket.PlayerInfoAddPlayer|clientpacket.PlayerInfoUpdateListed,
		clientpacket.PlayerInfo{UUID: id, Name: name, Listed: true},
	)); err != nil {
		return err
	}
	return s.writeClient(clientpacket.AddEntity(entityID, id, clientpacket.EntityTypePlayer))
}

func (s *Session) handlePlayerLeave(uniqueID string) error {
	entityID, ok := s.entities.ID(uniqueID)
	if !ok {
		return nil
	}
	account, _ := s.entities.Account(uniqueID)
	s.entities.Leave(uniqueID)

	if err := s.writeClient(clientpacket.RemoveEntities(entityID)); err != nil {
		return err
	}
	if err := s.writeClient(clientpacket.SystemChat(account.DisplayName() + " has left the game.")); err != nil {
		return err
	}
	return s.writeClient(clientpacket.PlayerInfoRemove(EntityUUID(entityID)))
}

func (s *Session) handleMessage(pk *packet.Message) error {
	text := pk.Message
	if pk.PlayerUniqueID != "" {
		if account, ok := s.entities.Account(pk.PlayerUniqueID); ok {
			text = account.DisplayName() + "> " + pk.Message
		}
	}
	return s.writeClient(clientpacket.SystemChat(text))
}

func (s *Session) handlePlayerPosition(pk *packet.PlayerPosition) error {
	entityID, ok := s.entities.ID(pk.PlayerUniqueID)
	if !ok {
		return nil
	}

	yaw, pitch := internal.ViewAngles(pk.ViewDirection)
	pos := pk.Position
	if pk.PlayerUniqueID != s.entities.ClientAccount().UniqueID {
		return s.writeClient(clientpacket.TeleportEntity(
			entityID,
			float64(pos.X()), float64(pos.Y()), float64(pos.Z()),
			internal.AngleByte(yaw), internal.AngleByte(pitch),
		))
	}

	if err := s.writeClient(clientpacket.PlayerPosition(float64(pos.X()), float64(pos.Y()), float64(pos.Z()), yaw, pitch, s.nextTeleportID())); err != nil {
		return err
	}
	s.position.UpdateRotation(yaw, pitch)
	return s.updatePosition(pos)
}

func (s *Session) handleZone(pk *packet.Zone) error {
	zone, err := world.ParseZone(pk.Data)
	if err != nil {
		s.logger.Warn("failed to parse zone", "err", err)
		return nil
	}
	s.zone = &zone

	spawn := zone.Spawn
	return s.writeClient(clientpacket.SystemChat(fmt.Sprintf(
		"Spawned in zone %s at %v, %v, %v\nTo respawn, use /respawn",
		zone.ID, spawn.X(), spawn.Y(), spawn.Z(),
	)))
}

// EntityUUID returns the UUID the client knows the player with the entity ID passed by. The most
// significant half is zero and the least significant half holds the entity ID.
func EntityUUID(entityID int32) uuid.UUID {
	var id uuid.UUID
	binary.BigEndian.PutUint64(id[8:], uint64(int64(entityID)))
	return id
}
