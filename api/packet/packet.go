package packet

import "bytes"

// Packet is a control API packet. On the wire it is a little-endian uint32 ID followed by the
// fields Encode writes.
type Packet interface {
	ID() uint32
	Encode(buf *bytes.Buffer)
	// Decode reads the packet's fields. It panics on truncated input; Client.ReadPacket recovers.
	Decode(buf *bytes.Buffer)
}
