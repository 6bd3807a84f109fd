package packet

import "bytes"

// Message shows a chat message to a player.
type Message struct {
	Username string
	Message  string
}

// ID ...
func (pk *Message) ID() uint32 {
	return IDMessage
}

// Encode ...
func (pk *Message) Encode(buf *bytes.Buffer) {
	WriteString(buf, pk.Username)
	WriteString(buf, pk.Message)
}

// Decode ...
func (pk *Message) Decode(buf *bytes.Buffer) {
	pk.Username = ReadString(buf)
	pk.Message = ReadString(buf)
}
