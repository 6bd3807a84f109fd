package packet

import (
	"bytes"

	"github.com/go-gl/mathgl/mgl32"
)

// PlayerPosition reports the position and view of a player. An empty ZoneID is written as null.
type PlayerPosition struct {
	PlayerUniqueID      string
	Position            mgl32.Vec3
	ViewDirection       mgl32.Vec3
	ViewDirectionOffset mgl32.Vec3
	ZoneID              string
}

// Kind ...
func (pk *PlayerPosition) Kind() Kind {
	return KindPlayerPosition
}

// Encode ...
func (pk *PlayerPosition) Encode(buf *bytes.Buffer) {
	WriteString(buf, pk.PlayerUniqueID)
	WriteVec3(buf, pk.Position)
	WriteVec3(buf, pk.ViewDirection)
	WriteVec3(buf, pk.ViewDirectionOffset)
	if pk.ZoneID == "" {
		WriteNullString(buf)
	} else {
		WriteString(buf, pk.ZoneID)
	}
}

// Decode ...
func (pk *PlayerPosition) Decode(buf *bytes.Buffer) {
	pk.PlayerUniqueID, _ = ReadString(buf)
	pk.Position = ReadVec3(buf)
	pk.ViewDirection = ReadVec3(buf)
	pk.ViewDirectionOffset = ReadVec3(buf)
	pk.ZoneID, _ = ReadString(buf)
}
