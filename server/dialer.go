package server

import (
	"fmt"

	"github.com/cooldogedev/prism/server/packet"
	"github.com/cooldogedev/prism/transport"
)

// Dialer connects to upstream servers on behalf of a player.
type Dialer struct {
	Account   packet.Account
	Transport transport.Transport
}

// Dial connects to the server at the address passed and joins it with the Dialer's account.
func (d Dialer) Dial(addr string) (*Conn, error) {
	conn, err := d.Transport.Dial(addr)
	if err != nil {
		return nil, err
	}

	c := NewConn(conn, packet.NewClientPool())
	if err := c.WritePacket(&packet.Login{Account: d.Account}); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("failed to write login packet: %w", err)
	}
	return c, nil
}
