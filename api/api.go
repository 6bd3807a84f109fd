package api

import (
	"errors"
	"io"
	"log/slog"
	"net"

	"github.com/cooldogedev/prism/api/packet"
	"github.com/cooldogedev/prism/session"
)

// API is a TCP service that lets authenticated tools kick and message players.
type API struct {
	authentication Authentication
	sessions       *session.Registry
	listener       net.Listener
	logger         *slog.Logger
}

// NewAPI ...
func NewAPI(sessions *session.Registry, logger *slog.Logger, authentication Authentication) *API {
	return &API{
		authentication: authentication,
		sessions:       sessions,
		logger:         logger,
	}
}

// Listen ...
func (a *API) Listen(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	a.listener = listener
	a.logger.Info("api started listening", "addr", listener.Addr())
	return nil
}

// Accept accepts a single connection and serves it in the background.
func (a *API) Accept() error {
	conn, err := a.listener.Accept()
	if err != nil {
		return err
	}

	if conn, ok := conn.(*net.TCPConn); ok {
		_ = conn.SetLinger(0)
		_ = conn.SetNoDelay(true)
	}

	go a.handle(conn)
	a.logger.Debug("accepted api connection", "addr", conn.RemoteAddr())
	return nil
}

// Close ...
func (a *API) Close() error {
	if a.listener == nil {
		return nil
	}
	return a.listener.Close()
}

func (a *API) handle(conn net.Conn) {
	c := NewClient(conn, packet.NewPool())
	logger := a.logger.With("addr", conn.RemoteAddr())
	defer func() {
		_ = c.Close()
		logger.Debug("closed api connection")
	}()

	pk, err := c.ReadPacket()
	if err != nil {
		_ = c.WritePacket(&packet.ConnectionResponse{Response: packet.ResponseFail})
		logger.Error("failed to read connection request", "err", err)
		return
	}

	request, ok := pk.(*packet.ConnectionRequest)
	if !ok {
		_ = c.WritePacket(&packet.ConnectionResponse{Response: packet.ResponseFail})
		logger.Error("expected connection request", "id", pk.ID())
		return
	}

	if a.authentication != nil && !a.authentication.Authenticate(request.Token) {
		_ = c.WritePacket(&packet.ConnectionResponse{Response: packet.ResponseUnauthorized})
		logger.Warn("closed unauthenticated api connection")
		return
	}

	if err := c.WritePacket(&packet.ConnectionResponse{Response: packet.ResponseSuccess}); err != nil {
		return
	}
	logger.Info("authorized api connection")
	for {
		pk, err := c.ReadPacket()
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, net.ErrClosed) {
				logger.Error("failed to read packet", "err", err)
			}
			return
		}

		switch pk := pk.(type) {
		case *packet.Kick:
			s := a.sessions.GetSessionByUsername(pk.Username)
			if s == nil {
				logger.Debug("tried to kick an unknown player", "username", pk.Username)
				continue
			}
			s.Disconnect(pk.Reason)
		case *packet.Message:
			s := a.sessions.GetSessionByUsername(pk.Username)
			if s == nil {
				logger.Debug("tried to message an unknown player", "username", pk.Username)
				continue
			}
			s.Message(pk.Message)
		}
	}
}
