package session

import (
	pk "github.com/Tnze/go-mc/net/packet"
	"github.com/cooldogedev/prism/server/packet"
)

// Context is passed to a Processor with every packet. Cancelling it drops the packet.
type Context struct {
	cancelled bool
}

// NewContext ...
func NewContext() *Context {
	return &Context{}
}

// Cancel ...
func (c *Context) Cancel() {
	c.cancelled = true
}

// Cancelled ...
func (c *Context) Cancelled() bool {
	return c.cancelled
}

// Processor observes the packets of a session before they are translated. ProcessServer and
// ProcessClient are called on the session's task goroutine.
type Processor interface {
	// ProcessServer is called for every packet decoded from the upstream server.
	ProcessServer(ctx *Context, pk packet.Packet)
	// ProcessClient is called for every play state packet read from the client.
	ProcessClient(ctx *Context, p pk.Packet)
	// ProcessDisconnection is called once when the session closes.
	ProcessDisconnection()
}

// NopProcessor is a Processor that does nothing. It may be embedded to implement only some methods.
type NopProcessor struct{}

// ProcessServer ...
func (NopProcessor) ProcessServer(*Context, packet.Packet) {}

// ProcessClient ...
func (NopProcessor) ProcessClient(*Context, pk.Packet) {}

// ProcessDisconnection ...
func (NopProcessor) ProcessDisconnection() {}
