package packet

import (
	"bytes"
	"fmt"
)

const (
	blockDataSingle  = 1
	blockDataLayered = 2

	layerSingle = 1
	layerNibble = 2
	layerByte   = 3
	layerShort  = 4

	skyLightNull    = 0
	skyLightLayered = 1
	skyLightSingle  = 2

	blockLightNull    = 0
	blockLightLayered = 1

	blockEntityNull = 0
	blockEntityData = 1
)

const (
	// SectionVolume is the number of cells in a section.
	SectionVolume = 16 * 16 * 16
	layerArea     = 16 * 16
)

// ChunkSection is an upstream chunk section with its block values still in save key form.
// Cells are indexed y*256 + z*16 + x.
type ChunkSection struct {
	// Palette holds the distinct save keys used by the section.
	Palette []string
	// Blocks holds a palette index for every cell. It is nil when the section uses a single save key.
	Blocks []uint16
	// SkyLight holds a nibble per cell, low nibble first. It is nil when the section carries no sky light.
	SkyLight []byte
	// BlockLight holds the packed 0xRGB block light of every cell. It is nil when the section carries no
	// block light.
	BlockLight []uint16
	// BlockEntities is the raw block entity blob. It is not translated.
	BlockEntities []byte
}

// SaveKey returns the save key of the cell at the index passed.
func (s *ChunkSection) SaveKey(i int) string {
	if s.Blocks == nil {
		return s.Palette[0]
	}
	return s.Palette[s.Blocks[i]]
}

// ReadChunkSection decodes a chunk section. It panics on malformed input.
func ReadChunkSection(buf *bytes.Buffer) *ChunkSection {
	s := &ChunkSection{}
	switch t := ReadByte(buf); t {
	case blockDataSingle:
		key, _ := ReadString(buf)
		s.Palette = []string{key}
	case blockDataLayered:
		s.readLayers(buf)
	default:
		panic(fmt.Errorf("unknown block data type %v", t))
	}

	switch t := ReadByte(buf); t {
	case skyLightNull:
	case skyLightLayered:
		s.SkyLight = make([]byte, SectionVolume/2)
		for y := 0; y < 16; y++ {
			layer := s.SkyLight[y*layerArea/2 : (y+1)*layerArea/2]
			switch lt := ReadByte(buf); lt {
			case 1:
				fillNibbles(layer, ReadByte(buf))
			case 2:
				copy(layer, ReadBytes(buf, layerArea/2))
			default:
				panic(fmt.Errorf("unknown sky light layer type %v", lt))
			}
		}
	case skyLightSingle:
		s.SkyLight = make([]byte, SectionVolume/2)
		fillNibbles(s.SkyLight, ReadByte(buf))
	default:
		panic(fmt.Errorf("unknown sky light data type %v", t))
	}

	switch t := ReadByte(buf); t {
	case blockLightNull:
	case blockLightLayered:
		s.BlockLight = make([]uint16, SectionVolume)
		for y := 0; y < 16; y++ {
			layer := s.BlockLight[y*layerArea : (y+1)*layerArea]
			switch lt := ReadByte(buf); lt {
			case 1:
				v := uint16(ReadInt16(buf))
				for i := range layer {
					layer[i] = v
				}
			case 2:
				for i := range layer {
					layer[i] = uint16(ReadInt16(buf))
				}
			default:
				panic(fmt.Errorf("unknown block light layer type %v", lt))
			}
		}
	default:
		panic(fmt.Errorf("unknown block light data type %v", t))
	}

	switch t := ReadByte(buf); t {
	case blockEntityNull:
	case blockEntityData:
		n := ReadInt32(buf)
		if n < 0 {
			panic(fmt.Errorf("negative block entity data length %v", n))
		}
		s.BlockEntities = ReadBytes(buf, int(n))
	default:
		panic(fmt.Errorf("unknown block entity data type %v", t))
	}
	return s
}

func (s *ChunkSection) readLayers(buf *bytes.Buffer) {
	indices := make(map[string]uint16)
	index := func(key string) uint16 {
		if i, ok := indices[key]; ok {
			return i
		}
		i := uint16(len(s.Palette))
		indices[key] = i
		s.Palette = append(s.Palette, key)
		return i
	}

	s.Blocks = make([]uint16, SectionVolume)
	for y := 0; y < 16; y++ {
		layer := s.Blocks[y*layerArea : (y+1)*layerArea]
		lt := ReadByte(buf)
		if lt == layerSingle {
			key, _ := ReadString(buf)
			i := index(key)
			for j := range layer {
				layer[j] = i
			}
			continue
		}

		n := ReadInt32(buf)
		if n <= 0 || n > layerArea {
			panic(fmt.Errorf("invalid layer palette size %v", n))
		}
		palette := make([]uint16, n)
		for j := range palette {
			key, _ := ReadString(buf)
			palette[j] = index(key)
		}

		lookup := func(j int) uint16 {
			if j >= len(palette) {
				panic(fmt.Errorf("layer palette index %v out of range", j))
			}
			return palette[j]
		}
		switch lt {
		case layerNibble:
			data := ReadBytes(buf, layerArea/2)
			for j := range layer {
				layer[j] = lookup(int(nibble(data, j)))
			}
		case layerByte:
			data := ReadBytes(buf, layerArea)
			for j := range layer {
				layer[j] = lookup(int(data[j]))
			}
		case layerShort:
			for j := range layer {
				layer[j] = lookup(int(uint16(ReadInt16(buf))))
			}
		default:
			panic(fmt.Errorf("unknown block layer type %v", lt))
		}
	}
}

// SkyLightAt returns the sky light of the cell at the index passed, or 0 when the section has none.
func (s *ChunkSection) SkyLightAt(i int) byte {
	if s.SkyLight == nil {
		return 0
	}
	return nibble(s.SkyLight, i)
}

func nibble(data []byte, i int) byte {
	if i&1 == 0 {
		return data[i>>1] & 0x0f
	}
	return data[i>>1] >> 4
}

func fillNibbles(data []byte, v byte) {
	v &= 0x0f
	for i := range data {
		data[i] = v | v<<4
	}
}
