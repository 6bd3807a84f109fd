package packet

import "bytes"

// Kick disconnects the player logged in as Username. Reason is shown on the client's disconnect
// screen.
type Kick struct {
	Username string
	Reason   string
}

// ID ...
func (pk *Kick) ID() uint32 {
	return IDKick
}

// Encode ...
func (pk *Kick) Encode(buf *bytes.Buffer) {
	WriteString(buf, pk.Username)
	WriteString(buf, pk.Reason)
}

// Decode ...
func (pk *Kick) Decode(buf *bytes.Buffer) {
	pk.Username = ReadString(buf)
	pk.Reason = ReadString(buf)
}
