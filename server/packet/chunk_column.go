package packet

import (
	"bytes"
	"fmt"
)

// ChunkColumnEntry is a single section of a ChunkColumn, addressed by chunk X, section Y and chunk Z.
type ChunkColumnEntry struct {
	X, Y, Z int32
	Section *ChunkSection
}

// ChunkColumn carries one or more chunk sections of a zone. Sections do not have to form a complete column.
type ChunkColumn struct {
	ZoneID  string
	Entries []ChunkColumnEntry
}

// Kind ...
func (pk *ChunkColumn) Kind() Kind {
	return KindChunkColumn
}

// Encode ...
func (pk *ChunkColumn) Encode(*bytes.Buffer) {
	panic(fmt.Errorf("chunk columns are only ever decoded"))
}

// Decode ...
func (pk *ChunkColumn) Decode(buf *bytes.Buffer) {
	pk.ZoneID, _ = ReadString(buf)
	count := ReadInt32(buf)
	if count < 0 {
		panic(fmt.Errorf("negative chunk column size %v", count))
	}
	pk.Entries = make([]ChunkColumnEntry, 0, min(int(count), 128))
	for i := int32(0); i < count; i++ {
		entry := ChunkColumnEntry{X: ReadInt32(buf), Y: ReadInt32(buf), Z: ReadInt32(buf)}
		entry.Section = ReadChunkSection(buf)
		pk.Entries = append(pk.Entries, entry)
	}
}
