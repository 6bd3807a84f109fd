package session

import (
	"fmt"
	"strings"

	pk "github.com/Tnze/go-mc/net/packet"
	clientpacket "github.com/cooldogedev/prism/client/packet"
	"github.com/cooldogedev/prism/server/packet"
	"github.com/go-gl/mathgl/mgl32"
)

// handleClientPacket translates a play state packet read from the client.
func (s *Session) handleClientPacket(p pk.Packet) {
	ctx := NewContext()
	s.Processor().ProcessClient(ctx, p)
	if ctx.Cancelled() {
		return
	}

	var err error
	switch p.ID {
	case clientpacket.IDChatMessage:
		err = s.handleChatMessage(p)
	case clientpacket.IDChatCommand:
		err = s.handleChatCommand(p)
	case clientpacket.IDMovePlayerPos, clientpacket.IDMovePlayerPosRot, clientpacket.IDMovePlayerRot:
		err = s.handleMovement(p)
	case clientpacket.IDPong:
		err = s.handlePong(p)
	}
	if err != nil {
		s.fail(err)
	}
}

func (s *Session) handleChatMessage(p pk.Packet) error {
	var msg clientpacket.ChatMessage
	if err := msg.Decode(p); err != nil {
		s.logger.Warn("failed to decode chat message", "err", err)
		return nil
	}

	if err := s.writeServer(&packet.Message{Message: msg.Message}); err != nil {
		return err
	}
	return s.writeClient(clientpacket.SystemChat(s.entities.ClientAccount().DisplayName() + "> " + msg.Message))
}

func (s *Session) handleChatCommand(p pk.Packet) error {
	var cmd clientpacket.ChatCommand
	if err := cmd.Decode(p); err != nil {
		s.logger.Warn("failed to decode chat command", "err", err)
		return nil
	}

	fields := strings.Fields(cmd.Command)
	if len(fields) == 0 || fields[0] != "respawn" {
		s.logger.Debug("dropped unknown command", "command", cmd.Command)
		return nil
	}
	if s.zone == nil {
		return s.writeClient(clientpacket.SystemChat("There is no zone to respawn in"))
	}

	spawn := s.zone.Spawn
	yaw, pitch := s.position.Rotation()
	if err := s.writeClient(clientpacket.PlayerPosition(float64(spawn.X()), float64(spawn.Y()), float64(spawn.Z()), yaw, pitch, s.nextTeleportID())); err != nil {
		return err
	}
	return s.updatePosition(spawn)
}

func (s *Session) handleMovement(p pk.Packet) error {
	var m clientpacket.Movement
	if err := m.Decode(p); err != nil {
		s.logger.Warn("failed to decode movement", "err", err)
		return nil
	}

	if m.HasRotation {
		s.position.UpdateRotation(m.Yaw, m.Pitch)
	}
	if m.HasPosition {
		if err := s.updatePosition(mgl32.Vec3{float32(m.X), float32(m.Y), float32(m.Z)}); err != nil {
			return err
		}
	}
	return s.writeServer(s.position.Outbound(s.entities.ClientAccount().UniqueID))
}

func (s *Session) handlePong(p pk.Packet) error {
	var pong clientpacket.Pong
	if err := pong.Decode(p); err != nil {
		s.logger.Warn("failed to decode pong", "err", err)
		return nil
	}

	id, err := s.transactions.CloseAndGet(pong.ID)
	if err != nil {
		return fmt.Errorf("pong: %w", err)
	}
	return s.writeServer(&packet.Transaction{ID: id})
}

// updatePosition records the client's position and moves the client's chunk cache center when the
// position crosses into another chunk.
func (s *Session) updatePosition(pos mgl32.Vec3) error {
	chunkX, chunkZ, changed := s.position.UpdatePosition(pos)
	if !changed {
		return nil
	}
	return s.writeClient(clientpacket.SetChunkCacheCenter(chunkX, chunkZ))
}
