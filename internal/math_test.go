package internal

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestViewAngles(t *testing.T) {
	cases := []struct {
		dir        mgl32.Vec3
		yaw, pitch float32
	}{
		{mgl32.Vec3{0, 0, 1}, 0, 0},
		{mgl32.Vec3{-1, 0, 0}, 90, 0},
		{mgl32.Vec3{1, 0, 0}, -90, 0},
		{mgl32.Vec3{0, -1, 0}, 0, 90},
		{mgl32.Vec3{0, 0, 0}, 0, 0},
	}
	for _, c := range cases {
		yaw, pitch := ViewAngles(c.dir)
		if !mgl32.FloatEqualThreshold(yaw, c.yaw, 1e-3) || !mgl32.FloatEqualThreshold(pitch, c.pitch, 1e-3) {
			t.Fatalf("ViewAngles(%v) = (%v, %v), want (%v, %v)", c.dir, yaw, pitch, c.yaw, c.pitch)
		}
	}
}

func TestAngleByte(t *testing.T) {
	if got := AngleByte(90); got != 64 {
		t.Fatalf("AngleByte(90) = %d, want 64", got)
	}
	if got := AngleByte(-90); got != -64 {
		t.Fatalf("AngleByte(-90) = %d, want -64", got)
	}
}
