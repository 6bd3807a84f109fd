package world

import (
	"fmt"

	"github.com/cooldogedev/prism/server/packet"
	"github.com/go-gl/mathgl/mgl32"
)

// Zone is the zone the client currently plays in.
type Zone struct {
	ID    string
	Spawn mgl32.Vec3
}

// ParseZone reads a zone from the JSON object sent by the server.
func ParseZone(obj map[string]any) (Zone, error) {
	id, ok := packet.String(obj, "zoneId")
	if !ok {
		return Zone{}, fmt.Errorf("zone is missing its ID")
	}
	spawn, ok := obj["spawnPoint"].(map[string]any)
	if !ok {
		return Zone{}, fmt.Errorf("zone %s is missing its spawn point", id)
	}

	z := Zone{ID: id}
	for i, axis := range []string{"x", "y", "z"} {
		v, err := packet.Number(spawn, axis)
		if err != nil {
			return Zone{}, fmt.Errorf("zone %s spawn point: %w", id, err)
		}
		z.Spawn[i] = float32(v)
	}
	return z, nil
}
