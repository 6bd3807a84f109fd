package session

import (
	"fmt"

	pk "github.com/Tnze/go-mc/net/packet"
	"github.com/cooldogedev/prism/client"
	clientpacket "github.com/cooldogedev/prism/client/packet"
	"github.com/cooldogedev/prism/server/packet"
	"github.com/go-gl/mathgl/mgl32"
)

// spawnHeight is the height the client is placed at until the server reports a position.
const spawnHeight = 300

// Login joins the client to the server as an offline account and tells the client its login
// succeeded. Configuration and spawning continue as the client acknowledges each state.
func (s *Session) Login() error {
	account := packet.NewOfflineAccount(s.username)
	s.entities.SetClientAccount(account)
	s.entities.Join(account)

	if err := s.Connect(); err != nil {
		return err
	}

	if err := s.clientConn.WritePacket(clientpacket.LoginSuccess(s.uuid, s.username)); err != nil {
		return fmt.Errorf("failed to write login success: %w", err)
	}

	go s.handleClient()
	s.logger.Info("logged in", "addr", s.RemoteAddr(), "server", s.ServerAddr())
	return nil
}

// configure sends the registries and tags the client needs before it may enter the play state.
func (s *Session) configure() {
	s.clientConn.SetState(client.StateConfiguration)

	var packets []pk.Packet
	if registries := s.cfg.Catalog.Registries(); registries != nil {
		for _, registry := range registries.Registries {
			packets = append(packets, clientpacket.RegistryData(registry))
		}
		packets = append(packets, clientpacket.UpdateTags(registries.Tags))
	}
	packets = append(packets, clientpacket.FinishConfiguration())

	for _, p := range packets {
		if err := s.writeClient(p); err != nil {
			s.logger.Debug("failed to configure client", "err", err)
			return
		}
	}
}

// spawn starts the play state of the client. Packets from the server are only translated once the
// client is spawned.
func (s *Session) spawn() {
	s.clientConn.SetState(client.StatePlay)

	account := s.entities.ClientAccount()
	entityID, _ := s.entities.ID(account.UniqueID)
	packets := []pk.Packet{
		clientpacket.Login(clientpacket.JoinGame{
			EntityID:     entityID,
			MaxPlayers:   s.cfg.MaxPlayers,
			ViewDistance: s.cfg.ViewDistance,
		}),
		clientpacket.TabList(s.cfg.TabListHeader, s.cfg.TabListFooter),
		clientpacket.PlayerInfoUpdate(
			clientpacket.PlayerInfoAddPlayer|clientpacket.PlayerInfoUpdateGameMode|clientpacket.PlayerInfoUpdateListed,
			clientpacket.PlayerInfo{
				UUID:     s.uuid,
				Name:     s.username,
				GameMode: clientpacket.GameModeCreative,
				Listed:   true,
			},
		),
		clientpacket.PlayerPosition(0, spawnHeight, 0, 0, 0, s.nextTeleportID()),
		clientpacket.GameEvent(clientpacket.GameEventLevelChunksLoadStart, 0),
	}
	for _, p := range packets {
		if err := s.writeClient(p); err != nil {
			s.logger.Debug("failed to spawn client", "err", err)
			return
		}
	}
	s.position.UpdatePosition(mgl32.Vec3{0, spawnHeight, 0})

	s.cfg.Registry.AddSession(s.uuid.String(), s)
	go s.handleServer()
	s.logger.Info("spawned player", "entity_id", entityID)
}

func (s *Session) nextTeleportID() int32 {
	s.teleportID++
	return s.teleportID
}

// handleClient reads packets from the client until either connection closes. The login and
// configuration states only advance the session; play state packets are translated on the task
// goroutine.
func (s *Session) handleClient() {
	defer s.Close()

	state := client.StateLogin
	for {
		p, err := s.clientConn.ReadPacket()
		if err != nil {
			select {
			case <-s.closed:
			default:
				s.logger.Debug("failed to read packet from client", "err", err)
			}
			return
		}

		switch state {
		case client.StateLogin:
			if p.ID == clientpacket.IDLoginAcknowledged {
				state = client.StateConfiguration
				s.Submit(s.configure)
			}
		case client.StateConfiguration:
			if p.ID == clientpacket.IDFinishConfigurationAck {
				state = client.StatePlay
				s.Submit(s.spawn)
			}
		default:
			if !s.Submit(func() { s.handleClientPacket(p) }) {
				return
			}
		}
	}
}

// handleServer reads frames from the server and hands them to the task goroutine, which resolves and
// translates them.
func (s *Session) handleServer() {
	conn := s.Server()
	for {
		f, err := conn.ReadFrame()
		if err != nil {
			select {
			case <-s.closed:
			default:
				s.logger.Info("lost connection to server", "err", err)
				s.Disconnect("Lost connection to the server")
			}
			return
		}

		if !s.Submit(func() { s.handleFrame(f) }) {
			return
		}
	}
}
