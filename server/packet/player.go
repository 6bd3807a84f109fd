package packet

import "bytes"

// Player announces a player to the client, either on join or when the client first sees them.
type Player struct {
	Account Account
	// Data is the serialised player entity. It is not translated.
	Data       map[string]any
	JustJoined bool
}

// Kind ...
func (pk *Player) Kind() Kind {
	return KindPlayer
}

// Encode ...
func (pk *Player) Encode(buf *bytes.Buffer) {
	WriteAccount(buf, pk.Account)
	WriteJSON(buf, pk.Data)
	WriteBool(buf, pk.JustJoined)
}

// Decode ...
func (pk *Player) Decode(buf *bytes.Buffer) {
	pk.Account = ReadAccount(buf)
	pk.Data = ReadJSON(buf)
	pk.JustJoined = ReadBool(buf)
}
