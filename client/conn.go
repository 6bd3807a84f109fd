package client

import (
	"errors"
	"net"
	"sync"
	"sync/atomic"

	mcnet "github.com/Tnze/go-mc/net"
	pk "github.com/Tnze/go-mc/net/packet"
)

// State is the protocol state of a downstream connection.
type State int32

const (
	StateHandshake State = iota
	StateStatus
	StateLogin
	StateConfiguration
	StatePlay
)

func (s State) String() string {
	switch s {
	case StateHandshake:
		return "handshake"
	case StateStatus:
		return "status"
	case StateLogin:
		return "login"
	case StateConfiguration:
		return "configuration"
	case StatePlay:
		return "play"
	}
	return "unknown"
}

var errConnClosed = errors.New("connection closed")

// Conn is a connection to a Java Edition client. Packets may be written from any goroutine.
type Conn struct {
	conn   *mcnet.Conn
	remote net.Addr

	writeMu sync.Mutex
	state   atomic.Int32

	closed chan struct{}
	once   sync.Once
}

// NewConn wraps the net.Conn passed. The connection starts in the handshake state.
func NewConn(conn net.Conn) *Conn {
	if tcpConn, ok := conn.(*net.TCPConn); ok {
		_ = tcpConn.SetNoDelay(true)
	}
	return &Conn{
		conn:   mcnet.WrapConn(conn),
		remote: conn.RemoteAddr(),
		closed: make(chan struct{}),
	}
}

// ReadPacket blocks until the next packet is read from the client.
func (c *Conn) ReadPacket() (pk.Packet, error) {
	var p pk.Packet
	if err := c.conn.ReadPacket(&p); err != nil {
		return pk.Packet{}, err
	}
	return p, nil
}

// WritePacket ...
func (c *Conn) WritePacket(p pk.Packet) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	select {
	case <-c.closed:
		return errConnClosed
	default:
		return c.conn.WritePacket(p)
	}
}

// State returns the current protocol state.
func (c *Conn) State() State {
	return State(c.state.Load())
}

// SetState ...
func (c *Conn) SetState(s State) {
	c.state.Store(int32(s))
}

// RemoteAddr ...
func (c *Conn) RemoteAddr() net.Addr {
	return c.remote
}

// Closed returns a channel that is closed once the connection is closed.
func (c *Conn) Closed() <-chan struct{} {
	return c.closed
}

// Close ...
func (c *Conn) Close() (err error) {
	c.once.Do(func() {
		close(c.closed)
		err = c.conn.Close()
	})
	return
}
