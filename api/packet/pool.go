package packet

// Pool maps control packet IDs to factories. Client.ReadPacket rejects IDs missing from it.
type Pool map[uint32]func() Packet

// NewPool returns a Pool holding every control packet.
func NewPool() Pool {
	return Pool{
		IDConnectionRequest:  func() Packet { return &ConnectionRequest{} },
		IDConnectionResponse: func() Packet { return &ConnectionResponse{} },
		IDKick:               func() Packet { return &Kick{} },
		IDMessage:            func() Packet { return &Message{} },
	}
}
