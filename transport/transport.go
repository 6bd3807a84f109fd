package transport

import "io"

// Transport dials upstream servers. The returned connection carries length prefixed frames.
type Transport interface {
	// Dial connects to the server at addr.
	Dial(addr string) (io.ReadWriteCloser, error)
}
