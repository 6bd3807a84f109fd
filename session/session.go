package session

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"

	pk "github.com/Tnze/go-mc/net/packet"
	"github.com/cooldogedev/prism/client"
	clientpacket "github.com/cooldogedev/prism/client/packet"
	"github.com/cooldogedev/prism/mapping"
	"github.com/cooldogedev/prism/server"
	"github.com/cooldogedev/prism/server/packet"
	"github.com/cooldogedev/prism/transport"
	"github.com/cooldogedev/prism/world"
	"github.com/google/uuid"
)

const taskQueueSize = 256

// Config holds the dependencies and settings shared by every session.
type Config struct {
	Catalog   *mapping.Catalog
	Discovery server.Discovery
	Transport transport.Transport
	Registry  *Registry
	Logger    *slog.Logger

	MaxPlayers    int32
	ViewDistance  int32
	TabListHeader string
	TabListFooter string
}

// Session is a single player connected through the proxy. All translation state is owned by the
// session's task goroutine: readers and tick tasks hand work to it through Submit.
type Session struct {
	clientConn *client.Conn
	uuid       uuid.UUID
	username   string

	serverAddr string
	serverConn *server.Conn
	serverMu   sync.RWMutex

	cfg    Config
	logger *slog.Logger

	processor   Processor
	processorMu sync.RWMutex

	tasks chan func()

	transactions *Transactions
	entities     *Entities
	position     *Position
	tracker      *world.Tracker
	zone         *world.Zone
	teleportID   int32

	closed chan struct{}
	once   sync.Once
}

// NewSession creates a session for a client that sent the login start passed and starts its task
// goroutine. Login must be called to connect it to a server.
func NewSession(clientConn *client.Conn, login clientpacket.LoginStart, cfg Config) *Session {
	logger := cfg.Logger.With("username", login.Name)
	s := &Session{
		clientConn: clientConn,
		uuid:       login.UUID,
		username:   login.Name,

		cfg:    cfg,
		logger: logger,

		processor: NopProcessor{},
		tasks:     make(chan func(), taskQueueSize),

		transactions: NewTransactions(),
		entities:     NewEntities(),
		position:     &Position{},
		tracker:      world.NewTracker(cfg.Catalog, logger),

		closed: make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *Session) run() {
	for {
		select {
		case <-s.closed:
			return
		case task := <-s.tasks:
			s.exec(task)
		}
	}
}

func (s *Session) exec(task func()) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("recovered panic in session task", "err", r)
		}
	}()
	task()
}

// Submit queues a task to run on the session's task goroutine. It blocks while the queue is full and
// returns false if the session closed first.
func (s *Session) Submit(task func()) bool {
	select {
	case <-s.closed:
		return false
	default:
	}

	select {
	case s.tasks <- task:
		return true
	case <-s.closed:
		return false
	}
}

// TrySubmit queues a task without blocking. It returns false if the queue is full or the session is
// closed.
func (s *Session) TrySubmit(task func()) bool {
	select {
	case <-s.closed:
		return false
	case s.tasks <- task:
		return true
	default:
		return false
	}
}

// Connect discovers a server for the session and dials it, trying the fallback server when the
// primary server cannot be reached.
func (s *Session) Connect() error {
	addr, err := s.cfg.Discovery.Discover(s.username)
	if err != nil {
		return fmt.Errorf("failed to discover a server: %w", err)
	}

	conn, err := s.dial(addr)
	if err != nil {
		s.logger.Warn("failed to dial server, trying fallback", "addr", addr, "err", err)
		fallback, fallbackErr := s.cfg.Discovery.DiscoverFallback(s.username)
		if fallbackErr != nil || fallback == "" || fallback == addr {
			return fmt.Errorf("failed to dial server: %w", err)
		}

		addr = fallback
		if conn, err = s.dial(addr); err != nil {
			return fmt.Errorf("failed to dial fallback server: %w", err)
		}
	}

	s.serverMu.Lock()
	s.serverAddr = addr
	s.serverConn = conn
	s.serverMu.Unlock()
	s.logger.Debug("connected to server", "addr", addr)
	return nil
}

func (s *Session) dial(addr string) (*server.Conn, error) {
	d := server.Dialer{
		Account:   s.entities.ClientAccount(),
		Transport: s.cfg.Transport,
	}
	return d.Dial(addr)
}

// Processor ...
func (s *Session) Processor() Processor {
	s.processorMu.RLock()
	defer s.processorMu.RUnlock()
	return s.processor
}

// SetProcessor ...
func (s *Session) SetProcessor(processor Processor) {
	if processor == nil {
		processor = NopProcessor{}
	}
	s.processorMu.Lock()
	s.processor = processor
	s.processorMu.Unlock()
}

// Client returns the connection to the Java Edition client.
func (s *Session) Client() *client.Conn {
	return s.clientConn
}

// Server returns the connection to the upstream server. It is nil until Connect succeeds.
func (s *Session) Server() *server.Conn {
	s.serverMu.RLock()
	defer s.serverMu.RUnlock()
	return s.serverConn
}

// ServerAddr ...
func (s *Session) ServerAddr() string {
	s.serverMu.RLock()
	defer s.serverMu.RUnlock()
	return s.serverAddr
}

// UUID returns the UUID the client logged in with.
func (s *Session) UUID() uuid.UUID {
	return s.uuid
}

// Username returns the name the client logged in with.
func (s *Session) Username() string {
	return s.username
}

// RemoteAddr ...
func (s *Session) RemoteAddr() net.Addr {
	return s.clientConn.RemoteAddr()
}

// Message shows a system chat message to the client.
func (s *Session) Message(text string) {
	s.Submit(func() {
		_ = s.writeClient(clientpacket.SystemChat(text))
	})
}

// Disconnect disconnects the client with the reason passed, using the disconnect packet of the
// client's current state, and closes the session.
func (s *Session) Disconnect(reason string) {
	switch s.clientConn.State() {
	case client.StateLogin:
		_ = s.clientConn.WritePacket(clientpacket.LoginDisconnect(reason))
	case client.StateConfiguration:
		_ = s.clientConn.WritePacket(clientpacket.ConfigDisconnect(reason))
	case client.StatePlay:
		_ = s.clientConn.WritePacket(clientpacket.Disconnect(reason))
	}
	s.Close()
}

// Closed returns a channel that is closed once the session is closed.
func (s *Session) Closed() <-chan struct{} {
	return s.closed
}

// Close closes both connections and removes the session from the registry. It is safe to call more
// than once.
func (s *Session) Close() {
	s.once.Do(func() {
		close(s.closed)
		_ = s.clientConn.Close()
		if conn := s.Server(); conn != nil {
			_ = conn.Close()
		}

		if registered := s.cfg.Registry.GetSession(s.uuid.String()); registered == s {
			s.cfg.Registry.RemoveSession(s.uuid.String())
		}
		s.Processor().ProcessDisconnection()
		s.logger.Info("closed session")
	})
}

// writeClient writes a packet to the client, closing the session if the write fails.
func (s *Session) writeClient(p pk.Packet) error {
	if err := s.clientConn.WritePacket(p); err != nil {
		s.Close()
		return fmt.Errorf("failed to write packet to client: %w", err)
	}
	return nil
}

// writeServer writes a packet to the upstream server.
func (s *Session) writeServer(p packet.Packet) error {
	if err := s.Server().WritePacket(p); err != nil {
		if errors.Is(err, packet.ErrUnresolvedKind) {
			return err
		}
		s.Close()
		return fmt.Errorf("failed to write packet to server: %w", err)
	}
	return nil
}

// fail disconnects the client after a fatal protocol error.
func (s *Session) fail(err error) {
	select {
	case <-s.closed:
		return
	default:
	}
	s.logger.Error("closing session", "err", err)
	s.Disconnect(err.Error())
}
