package packet

import "bytes"

// Disconnect reports that a player left the server.
type Disconnect struct {
	PlayerUniqueID string
}

// Kind ...
func (pk *Disconnect) Kind() Kind {
	return KindDisconnect
}

// Encode ...
func (pk *Disconnect) Encode(buf *bytes.Buffer) {
	WriteString(buf, pk.PlayerUniqueID)
}

// Decode ...
func (pk *Disconnect) Decode(buf *bytes.Buffer) {
	pk.PlayerUniqueID, _ = ReadString(buf)
}
