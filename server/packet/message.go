package packet

import "bytes"

// Message is a chat message. PlayerUniqueID is empty for messages that have no sender, and is
// written as null in that case.
type Message struct {
	Message        string
	PlayerUniqueID string
}

// Kind ...
func (pk *Message) Kind() Kind {
	return KindMessage
}

// Encode ...
func (pk *Message) Encode(buf *bytes.Buffer) {
	WriteString(buf, pk.Message)
	if pk.PlayerUniqueID == "" {
		WriteNullString(buf)
	} else {
		WriteString(buf, pk.PlayerUniqueID)
	}
}

// Decode ...
func (pk *Message) Decode(buf *bytes.Buffer) {
	pk.Message, _ = ReadString(buf)
	pk.PlayerUniqueID, _ = ReadString(buf)
}
