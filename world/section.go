package world

import (
	"log/slog"

	"github.com/cooldogedev/prism/mapping"
	"github.com/cooldogedev/prism/server/packet"
)

// Section is a 16x16x16 chunk section holding upstream block state IDs. Cells are indexed
// y*256 + z*16 + x.
type Section struct {
	Blocks [packet.SectionVolume]int32
	// SkyLight is kept as received. Downstream sky light is always synthesised.
	SkyLight []byte
	// BlockLight holds packed 0xRGB values, or nil when the section has no block light.
	BlockLight    []uint16
	BlockEntities []byte
}

// NewSection resolves the save keys of the section passed against the upstream catalog. Unknown
// keys become air and are logged once for every palette they appear in.
func NewSection(raw *packet.ChunkSection, catalog *mapping.Catalog, log *slog.Logger) *Section {
	palette := make([]int32, len(raw.Palette))
	for i, key := range raw.Palette {
		id, ok := catalog.UpstreamID(mapping.ParseBlockState(key))
		if !ok {
			log.Warn("missing upstream block state mapping", "state", key)
			id = catalog.UpstreamAirID()
		}
		palette[i] = id
	}

	s := &Section{
		SkyLight:      raw.SkyLight,
		BlockLight:    raw.BlockLight,
		BlockEntities: raw.BlockEntities,
	}
	if raw.Blocks == nil {
		s.Fill(palette[0])
		return s
	}
	for i, index := range raw.Blocks {
		s.Blocks[i] = palette[index]
	}
	return s
}

// NewUniformSection returns a section with every cell set to the upstream ID passed.
func NewUniformSection(id int32) *Section {
	s := &Section{}
	s.Fill(id)
	return s
}

// Fill sets every cell to the upstream ID passed.
func (s *Section) Fill(id int32) {
	for i := range s.Blocks {
		s.Blocks[i] = id
	}
}

// Block returns the upstream ID at the local coordinates passed.
func (s *Section) Block(x, y, z int) int32 {
	return s.Blocks[cellIndex(x, y, z)]
}

// SetBlock ...
func (s *Section) SetBlock(x, y, z int, id int32) {
	s.Blocks[cellIndex(x, y, z)] = id
}

// BlockLightLevel returns the single channel block light of the cell at the index passed, the
// brightest of its red, green and blue channels.
func (s *Section) BlockLightLevel(i int) byte {
	if s.BlockLight == nil {
		return 0
	}
	v := s.BlockLight[i]
	return max(byte(v>>8&0xf), byte(v>>4&0xf), byte(v&0xf))
}

func cellIndex(x, y, z int) int {
	return (y&15)<<8 | (z&15)<<4 | x&15
}
