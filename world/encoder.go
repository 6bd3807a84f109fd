package world

import (
	"bytes"
	"io"

	"github.com/Tnze/go-mc/level"
	pk "github.com/Tnze/go-mc/net/packet"
	clientpacket "github.com/cooldogedev/prism/client/packet"
	"github.com/cooldogedev/prism/mapping"
	"github.com/cooldogedev/prism/server/packet"
)

const (
	// SectionCount is the number of sections in a downstream chunk column.
	SectionCount = mapping.WorldHeight >> 4
	// sectionOffset is the upstream index of the lowest downstream section.
	sectionOffset = mapping.WorldMinY >> 4
	// lightSectionCount includes the light sections below and above the world.
	lightSectionCount = SectionCount + 2

	lightArraySize = packet.SectionVolume / 2
	biomeVolume    = 4 * 4 * 4
)

var fullLight = bytes.Repeat([]byte{0xff}, lightArraySize)

// ChunkData is an encoded chunk column with its light, ready to be written as the body of a
// LevelChunkWithLight packet.
type ChunkData struct {
	X, Z int32
	// Sections holds the encoded sections, lowest first.
	Sections []byte

	SkyLightMask        pk.BitSet
	BlockLightMask      pk.BitSet
	EmptySkyLightMask   pk.BitSet
	EmptyBlockLightMask pk.BitSet
	SkyLight            []pk.ByteArray
	BlockLight          []pk.ByteArray
}

// WriteTo ...
func (c *ChunkData) WriteTo(w io.Writer) (int64, error) {
	fields := []pk.FieldEncoder{
		pk.Int(c.X),
		pk.Int(c.Z),
		clientpacket.NBT{V: map[string]any{}}, // heightmaps
		pk.ByteArray(c.Sections),
		pk.VarInt(0), // block entities
		c.SkyLightMask,
		c.BlockLightMask,
		c.EmptySkyLightMask,
		c.EmptyBlockLightMask,
		pk.VarInt(len(c.SkyLight)),
	}
	for _, light := range c.SkyLight {
		fields = append(fields, light)
	}
	fields = append(fields, pk.VarInt(len(c.BlockLight)))
	for _, light := range c.BlockLight {
		fields = append(fields, light)
	}

	var n int64
	for _, f := range fields {
		nn, err := f.WriteTo(w)
		n += nn
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// Packet returns the LevelChunkWithLight packet carrying the chunk.
func (c *ChunkData) Packet() pk.Packet {
	return clientpacket.LevelChunkWithLight(c)
}

// encodeChunk builds the downstream representation of a chunk. Sky light is written fully lit for
// the light sections below and above the world and for every known section.
func encodeChunk(c *Chunk, catalog *mapping.Catalog) *ChunkData {
	data := &ChunkData{
		X:                   c.Key.X,
		Z:                   c.Key.Z,
		SkyLightMask:        newLightMask(),
		BlockLightMask:      newLightMask(),
		EmptySkyLightMask:   newLightMask(),
		EmptyBlockLightMask: newLightMask(),
	}

	data.SkyLightMask.Set(0, true)
	data.EmptyBlockLightMask.Set(0, true)
	data.SkyLight = append(data.SkyLight, fullLight)

	var buf bytes.Buffer
	biome := level.BiomesState(catalog.PlainsBiome())
	for i := 0; i < SectionCount; i++ {
		s, ok := c.Sections[int32(i+sectionOffset)]
		if !ok {
			writeSection(&buf, nil, catalog, biome)
			continue
		}
		writeSection(&buf, s, catalog, biome)

		data.SkyLightMask.Set(i+1, true)
		data.SkyLight = append(data.SkyLight, fullLight)
		data.BlockLightMask.Set(i+1, true)
		data.BlockLight = append(data.BlockLight, blockLight(s))
	}

	data.SkyLightMask.Set(SectionCount+1, true)
	data.EmptyBlockLightMask.Set(SectionCount+1, true)
	data.SkyLight = append(data.SkyLight, fullLight)

	data.Sections = buf.Bytes()
	return data
}

// writeSection writes a single section: its non-air count, block states and biomes. A nil section is
// written as air.
func writeSection(w *bytes.Buffer, s *Section, catalog *mapping.Catalog, biome level.BiomesState) {
	states := level.NewStatesPaletteContainer(packet.SectionVolume, level.BlocksState(mapping.DownstreamAir))
	var nonAir int16
	if s != nil {
		air := catalog.UpstreamAirID()
		for i, id := range s.Blocks {
			if id == air {
				continue
			}
			downstream, ok := catalog.CrossMap(id)
			if !ok {
				downstream = mapping.DownstreamFallback
			}
			states.Set(i, level.BlocksState(downstream))
			nonAir++
		}
	}

	_, _ = pk.Short(nonAir).WriteTo(w)
	_, _ = states.WriteTo(w)
	_, _ = level.NewBiomesPaletteContainer(biomeVolume, biome).WriteTo(w)
}

func blockLight(s *Section) pk.ByteArray {
	light := make(pk.ByteArray, lightArraySize)
	if s.BlockLight == nil {
		return light
	}
	for i := 0; i < packet.SectionVolume; i += 2 {
		light[i>>1] = s.BlockLightLevel(i) | s.BlockLightLevel(i+1)<<4
	}
	return light
}

func newLightMask() pk.BitSet {
	return make(pk.BitSet, (lightSectionCount+63)/64)
}
