package packet

import (
	pk "github.com/Tnze/go-mc/net/packet"
	"github.com/google/uuid"
)

// Intention values of the handshake.
const (
	IntentionStatus = 1
	IntentionLogin  = 2
)

// Handshake is the first packet a client sends.
type Handshake struct {
	ProtocolVersion int32
	Address         string
	Port            uint16
	Intention       int32
}

// Decode ...
func (h *Handshake) Decode(p pk.Packet) error {
	return p.Scan(
		(*pk.VarInt)(&h.ProtocolVersion),
		(*pk.String)(&h.Address),
		(*pk.UnsignedShort)(&h.Port),
		(*pk.VarInt)(&h.Intention),
	)
}

// LoginStart carries the name and UUID of the joining player.
type LoginStart struct {
	Name string
	UUID uuid.UUID
}

// Decode ...
func (l *LoginStart) Decode(p pk.Packet) error {
	return p.Scan((*pk.String)(&l.Name), (*pk.UUID)(&l.UUID))
}

// ChatMessage is a chat line typed by the player. Signature fields are ignored.
type ChatMessage struct {
	Message string
}

// Decode ...
func (c *ChatMessage) Decode(p pk.Packet) error {
	return p.Scan((*pk.String)(&c.Message))
}

// ChatCommand is a command typed by the player, without the leading slash.
type ChatCommand struct {
	Command string
}

// Decode ...
func (c *ChatCommand) Decode(p pk.Packet) error {
	return p.Scan((*pk.String)(&c.Command))
}

// Movement is decoded from any of the three player movement packets. HasPosition and HasRotation
// report which of the fields were present.
type Movement struct {
	X, Y, Z     float64
	Yaw, Pitch  float32
	OnGround    bool
	HasPosition bool
	HasRotation bool
}

// Decode ...
func (m *Movement) Decode(p pk.Packet) error {
	switch p.ID {
	case IDMovePlayerPos:
		m.HasPosition = true
		return p.Scan((*pk.Double)(&m.X), (*pk.Double)(&m.Y), (*pk.Double)(&m.Z), (*pk.Boolean)(&m.OnGround))
	case IDMovePlayerPosRot:
		m.HasPosition, m.HasRotation = true, true
		return p.Scan(
			(*pk.Double)(&m.X), (*pk.Double)(&m.Y), (*pk.Double)(&m.Z),
			(*pk.Float)(&m.Yaw), (*pk.Float)(&m.Pitch),
			(*pk.Boolean)(&m.OnGround),
		)
	default:
		m.HasRotation = true
		return p.Scan((*pk.Float)(&m.Yaw), (*pk.Float)(&m.Pitch), (*pk.Boolean)(&m.OnGround))
	}
}

// Pong answers a Ping.
type Pong struct {
	ID int32
}

// Decode ...
func (c *Pong) Decode(p pk.Packet) error {
	return p.Scan((*pk.Int)(&c.ID))
}

// PingRequest is the status ping.
type PingRequest struct {
	Payload int64
}

// Decode ...
func (c *PingRequest) Decode(p pk.Packet) error {
	return p.Scan((*pk.Long)(&c.Payload))
}
