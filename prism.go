package prism

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	"github.com/cooldogedev/prism/client"
	clientpacket "github.com/cooldogedev/prism/client/packet"
	"github.com/cooldogedev/prism/mapping"
	"github.com/cooldogedev/prism/server"
	"github.com/cooldogedev/prism/session"
	tr "github.com/cooldogedev/prism/transport"
	"github.com/cooldogedev/prism/util"
)

var errNoCatalog = errors.New("mapping catalog is not initialised")

type Prism struct {
	discovery server.Discovery
	transport tr.Transport

	listener net.Listener
	registry *session.Registry
	status   *util.StatusProvider
	incoming chan *session.Session

	ctx    context.Context
	cancel context.CancelFunc

	logger *slog.Logger
	opts   util.Opts
}

func NewPrism(discovery server.Discovery, logger *slog.Logger, opts *util.Opts, transport tr.Transport) *Prism {
	if opts == nil {
		opts = util.DefaultOpts()
	}

	if transport == nil {
		transport = tr.NewTCP()
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Prism{
		discovery: discovery,
		transport: transport,

		registry: session.NewRegistry(),
		status:   util.NewStatusProvider(opts.MOTD),
		incoming: make(chan *session.Session),

		ctx:    ctx,
		cancel: cancel,

		logger: logger,
		opts:   *opts,
	}
}

// Listen starts listening for Java Edition clients and starts the keep alive and chunk flush tasks.
// The process-wide mapping catalog must be initialised first.
func (p *Prism) Listen() error {
	if mapping.Default() == nil {
		return errNoCatalog
	}

	listener, err := net.Listen("tcp", p.opts.Addr)
	if err != nil {
		p.logger.Error("failed to listen", "err", err)
		return err
	}

	p.listener = listener
	go p.acceptLoop()
	go session.RunTicker(p.ctx, p.registry, session.KeepAliveInterval, "keep-alive", session.KeepAlive, p.logger)
	go session.RunTicker(p.ctx, p.registry, session.FlushInterval, "chunk-flush", session.FlushChunks, p.logger)
	p.logger.Info("started listening", "addr", listener.Addr())
	return nil
}

// Accept blocks until a client finishes the handshake and asks to log in, and returns the session
// created for it. The session is already logging in.
func (p *Prism) Accept() (*session.Session, error) {
	select {
	case s := <-p.incoming:
		return s, nil
	case <-p.ctx.Done():
		return nil, net.ErrClosed
	}
}

func (p *Prism) acceptLoop() {
	for {
		conn, err := p.listener.Accept()
		if err != nil {
			if !errors.Is(err, net.ErrClosed) {
				p.logger.Error("failed to accept connection", "err", err)
			}
			p.cancel()
			return
		}
		go p.handleConn(conn)
	}
}

func (p *Prism) handleConn(conn net.Conn) {
	c := client.NewConn(conn)
	pk, err := c.ReadPacket()
	if err != nil || pk.ID != clientpacket.IDHandshake {
		_ = c.Close()
		return
	}

	var handshake clientpacket.Handshake
	if err := handshake.Decode(pk); err != nil {
		p.logger.Debug("failed to decode handshake", "addr", conn.RemoteAddr(), "err", err)
		_ = c.Close()
		return
	}

	switch handshake.Intention {
	case clientpacket.IntentionStatus:
		c.SetState(client.StateStatus)
		p.handleStatus(c)
	case clientpacket.IntentionLogin:
		c.SetState(client.StateLogin)
		if err := p.handleLogin(c, handshake); err != nil {
			_ = c.WritePacket(clientpacket.LoginDisconnect(err.Error()))
			_ = c.Close()
			p.logger.Debug("refused login", "addr", conn.RemoteAddr(), "err", err)
		}
	default:
		_ = c.Close()
	}
}

func (p *Prism) handleStatus(c *client.Conn) {
	defer c.Close()
	for {
		pk, err := c.ReadPacket()
		if err != nil {
			return
		}

		switch pk.ID {
		case clientpacket.IDStatusRequest:
			status := p.status.ServerStatus(p.registry.Len(), int(p.opts.MaxPlayers))
			if err := c.WritePacket(clientpacket.StatusResponse(status.JSON())); err != nil {
				return
			}
		case clientpacket.IDPingRequest:
			var ping clientpacket.PingRequest
			if err := ping.Decode(pk); err == nil {
				_ = c.WritePacket(clientpacket.PongResponse(ping.Payload))
			}
			return
		}
	}
}

func (p *Prism) handleLogin(c *client.Conn, handshake clientpacket.Handshake) error {
	pk, err := c.ReadPacket()
	if err != nil {
		return err
	}
	if pk.ID != clientpacket.IDLoginStart {
		return fmt.Errorf("expected login start, got %#x", pk.ID)
	}

	var login clientpacket.LoginStart
	if err := login.Decode(pk); err != nil {
		return fmt.Errorf("failed to decode login start: %w", err)
	}

	if handshake.ProtocolVersion != clientpacket.ProtocolVersion {
		return fmt.Errorf("Unsupported client version, please join with %s", clientpacket.GameVersion)
	}
	if p.registry.GetSessionByUsername(login.Name) != nil {
		return errors.New("You are already connected to this proxy")
	}
	if p.registry.Len() >= int(p.opts.MaxPlayers) {
		return errors.New("The proxy is full")
	}

	s := session.NewSession(c, login, session.Config{
		Catalog:   mapping.Default(),
		Discovery: p.discovery,
		Transport: p.transport,
		Registry:  p.registry,
		Logger:    p.logger,

		MaxPlayers:    p.opts.MaxPlayers,
		ViewDistance:  p.opts.ViewDistance,
		TabListHeader: p.opts.TabListHeader,
		TabListFooter: p.opts.TabListFooter,
	})
	go func() {
		if err := s.Login(); err != nil {
			s.Disconnect(err.Error())
			p.logger.Error("failed to login session", "username", login.Name, "err", err)
		}
	}()

	p.logger.Debug("accepted session", "username", login.Name, "addr", c.RemoteAddr())
	select {
	case p.incoming <- s:
	case <-p.ctx.Done():
		s.Close()
	}
	return nil
}

func (p *Prism) Discovery() server.Discovery {
	return p.discovery
}

func (p *Prism) Opts() util.Opts {
	return p.opts
}

func (p *Prism) Registry() *session.Registry {
	return p.registry
}

func (p *Prism) Transport() tr.Transport {
	return p.transport
}

// Close stops listening, stops the tick tasks and disconnects every session.
func (p *Prism) Close() error {
	p.cancel()
	for _, s := range p.registry.GetSessions() {
		s.Disconnect("Proxy closed")
	}
	if p.listener == nil {
		return nil
	}
	return p.listener.Close()
}
