package api

import (
	"errors"
	"fmt"
	"net"

	"github.com/cooldogedev/prism/api/packet"
)

// Dial establishes a TCP connection to the API service at addr and authenticates with the token
// passed.
func Dial(addr, token string) (*Client, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}

	c, err := handshake(NewClient(conn, packet.NewPool()), token)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	return c, nil
}

func handshake(c *Client, token string) (*Client, error) {
	if err := c.WritePacket(&packet.ConnectionRequest{Token: token}); err != nil {
		return nil, err
	}

	pk, err := c.ReadPacket()
	if err != nil {
		return nil, err
	}

	response, ok := pk.(*packet.ConnectionResponse)
	if !ok {
		return nil, fmt.Errorf("expected connection response, got %d", pk.ID())
	}

	switch response.Response {
	case packet.ResponseSuccess:
		return c, nil
	case packet.ResponseFail:
		return nil, errors.New("connection failed")
	case packet.ResponseUnauthorized:
		return nil, errors.New("connection unauthorized")
	default:
		return nil, fmt.Errorf("received an unknown response code %d", response.Response)
	}
}
