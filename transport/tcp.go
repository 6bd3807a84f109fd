package transport

import (
	"io"
	"net"
	"time"
)

const defaultDialTimeout = 5 * time.Second

// TCP dials upstream servers over plain TCP, which is the only transport the server speaks.
type TCP struct {
	// Timeout bounds the time spent connecting. Zero uses a five second default.
	Timeout time.Duration
}

// NewTCP ...
func NewTCP() *TCP {
	return &TCP{Timeout: defaultDialTimeout}
}

// Dial ...
func (t *TCP) Dial(addr string) (io.ReadWriteCloser, error) {
	timeout := t.Timeout
	if timeout == 0 {
		timeout = defaultDialTimeout
	}

	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return nil, err
	}

	if tcpConn, ok := conn.(*net.TCPConn); ok {
		_ = tcpConn.SetNoDelay(true)
		_ = tcpConn.SetKeepAlive(true)
		_ = tcpConn.SetReadBuffer(1024 * 1024)
		_ = tcpConn.SetWriteBuffer(1024 * 1024)
	}
	return conn, nil
}
