package packet

import "bytes"

// Packet is an upstream packet. The numeric ID it is written with depends on the connection's Resolver.
type Packet interface {
	// Kind returns the logical kind of the packet.
	Kind() Kind
	// Encode writes the packet payload to buf.
	Encode(buf *bytes.Buffer)
	// Decode reads the packet payload from buf. It panics on malformed input.
	Decode(buf *bytes.Buffer)
}

// Pool maps clientbound kinds to packet factories.
type Pool map[Kind]func() Packet

// NewClientPool returns the factories of every clientbound packet the proxy decodes. Kinds missing
// from the pool are decoded as Unhandled.
func NewClientPool() Pool {
	return Pool{
		KindProtocolSync:   func() Packet { return &ProtocolSync{} },
		KindTransaction:    func() Packet { return &Transaction{} },
		KindDisconnect:     func() Packet { return &Disconnect{} },
		KindPlayer:         func() Packet { return &Player{} },
		KindMessage:        func() Packet { return &Message{} },
		KindPlayerPosition: func() Packet { return &PlayerPosition{} },
		KindZone:           func() Packet { return &Zone{} },
		KindChunkColumn:    func() Packet { return &ChunkColumn{} },
		KindBlockReplace:   func() Packet { return &BlockReplace{} },
	}
}

// New returns an empty packet of the kind passed.
func (p Pool) New(k Kind) Packet {
	if factory, ok := p[k]; ok {
		return factory()
	}
	return &Unhandled{PacketKind: k}
}

// Unhandled carries the raw payload of a packet kind the proxy does not translate.
type Unhandled struct {
	PacketKind Kind
	Payload    []byte
}

// Kind ...
func (pk *Unhandled) Kind() Kind {
	return pk.PacketKind
}

// Encode ...
func (pk *Unhandled) Encode(buf *bytes.Buffer) {
	buf.Write(pk.Payload)
}

// Decode ...
func (pk *Unhandled) Decode(buf *bytes.Buffer) {
	pk.Payload = bytes.Clone(buf.Bytes())
	buf.Reset()
}
