package internal

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ViewAngles converts a look direction into Java Edition yaw and pitch in degrees. Yaw 0 faces +Z
// and grows clockwise, pitch is positive when looking down. A zero vector yields zero angles.
func ViewAngles(dir mgl32.Vec3) (yaw float32, pitch float32) {
	length := dir.Len()
	if length == 0 {
		return 0, 0
	}

	dir = dir.Mul(1 / length)
	yaw = mgl32.RadToDeg(float32(math.Atan2(float64(-dir.X()), float64(dir.Z()))))
	pitch = mgl32.RadToDeg(float32(-math.Asin(float64(mgl32.Clamp(dir.Y(), -1, 1)))))
	return
}

// AngleByte packs an angle in degrees into the 1/256th of a turn representation.
func AngleByte(angle float32) int8 {
	return int8(int32(angle*256/360) & 0xff)
}
