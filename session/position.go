package session

import (
	"math"

	"github.com/cooldogedev/prism/server/packet"
	"github.com/go-gl/mathgl/mgl32"
)

// eyeOffset is the view direction offset reported for the client player.
var eyeOffset = mgl32.Vec3{0, 1.8, 0}

// Position tracks the position and rotation of the client player.
type Position struct {
	pos        mgl32.Vec3
	yaw, pitch float32

	chunkX, chunkZ int32
	hasChunk       bool
}

// Position returns the last known position.
func (p *Position) Position() mgl32.Vec3 {
	return p.pos
}

// Rotation returns the last known yaw and pitch.
func (p *Position) Rotation() (yaw, pitch float32) {
	return p.yaw, p.pitch
}

// UpdatePosition records a new position. It returns the chunk the position is in and whether it
// differs from the chunk of the previous position.
func (p *Position) UpdatePosition(pos mgl32.Vec3) (chunkX, chunkZ int32, changed bool) {
	p.pos = pos
	chunkX = int32(math.Floor(float64(pos.X()))) >> 4
	chunkZ = int32(math.Floor(float64(pos.Z()))) >> 4
	if p.hasChunk && chunkX == p.chunkX && chunkZ == p.chunkZ {
		return chunkX, chunkZ, false
	}
	p.chunkX, p.chunkZ, p.hasChunk = chunkX, chunkZ, true
	return chunkX, chunkZ, true
}

// UpdateRotation ...
func (p *Position) UpdateRotation(yaw, pitch float32) {
	p.yaw, p.pitch = yaw, pitch
}

// Outbound returns the position report sent to the server for the player with the unique ID passed.
func (p *Position) Outbound(uniqueID string) *packet.PlayerPosition {
	return &packet.PlayerPosition{
		PlayerUniqueID:      uniqueID,
		Position:            p.pos,
		ViewDirectionOffset: eyeOffset,
	}
}
