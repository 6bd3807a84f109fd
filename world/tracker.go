package world

import (
	"log/slog"

	"github.com/cooldogedev/prism/mapping"
	"github.com/cooldogedev/prism/server/packet"
	"github.com/scylladb/go-set/i64set"
)

// Chunk is a chunk column of which any number of sections may be known.
type Chunk struct {
	Key      ChunkKey
	Sections map[int32]*Section
}

// Tracker accumulates the sections sent by the server and re-encodes chunks that changed since the
// last flush. A Tracker belongs to a single session and is not safe for concurrent use.
type Tracker struct {
	catalog *mapping.Catalog
	log     *slog.Logger

	chunks map[int64]*Chunk
	dirty  *i64set.Set
}

// NewTracker ...
func NewTracker(catalog *mapping.Catalog, log *slog.Logger) *Tracker {
	return &Tracker{
		catalog: catalog,
		log:     log,
		chunks:  make(map[int64]*Chunk),
		dirty:   i64set.New(),
	}
}

// Chunk returns the chunk at the chunk coordinates passed.
func (t *Tracker) Chunk(x, z int32) (*Chunk, bool) {
	c, ok := t.chunks[ChunkKey{X: x, Z: z}.Pack()]
	return c, ok
}

// Section returns the section at the chunk coordinates and section index passed.
func (t *Tracker) Section(x, sy, z int32) (*Section, bool) {
	c, ok := t.Chunk(x, z)
	if !ok {
		return nil, false
	}
	s, ok := c.Sections[sy]
	return s, ok
}

// MergeSection stores the section passed, replacing any section previously stored at the same
// position, and marks the chunk dirty.
func (t *Tracker) MergeSection(x, sy, z int32, s *Section) {
	key := ChunkKey{X: x, Z: z}
	c, ok := t.chunks[key.Pack()]
	if !ok {
		c = &Chunk{Key: key, Sections: make(map[int32]*Section)}
		t.chunks[key.Pack()] = c
	}
	c.Sections[sy] = s
	t.dirty.Add(key.Pack())
}

// HandleBlockChange applies a single block change and returns the downstream state ID to send
// for it. Changes to unknown sections are ignored.
func (t *Tracker) HandleBlockChange(pos packet.BlockPosition, descriptor string) int32 {
	s, ok := t.Section(pos.X>>4, pos.Y>>4, pos.Z>>4)
	if !ok {
		return t.catalog.DownstreamAirID()
	}

	id, ok := t.catalog.UpstreamID(mapping.ParseBlockState(descriptor))
	if !ok {
		t.log.Warn("missing upstream block state mapping", "state", descriptor)
		id = t.catalog.UpstreamAirID()
	}
	s.SetBlock(int(pos.X), int(pos.Y), int(pos.Z), id)
	t.dirty.Add(ChunkKey{X: pos.X >> 4, Z: pos.Z >> 4}.Pack())

	downstream, ok := t.catalog.CrossMap(id)
	if !ok {
		t.log.Warn("missing block state cross mapping", "state", descriptor)
		return mapping.DownstreamFallback
	}
	return downstream
}

// Dirty reports whether the chunk at the chunk coordinates passed changed since the last flush.
func (t *Tracker) Dirty(x, z int32) bool {
	return t.dirty.Has(ChunkKey{X: x, Z: z}.Pack())
}

// Flush re-encodes every dirty chunk and clears the dirty set.
func (t *Tracker) Flush() []*ChunkData {
	if t.dirty.IsEmpty() {
		return nil
	}

	data := make([]*ChunkData, 0, t.dirty.Size())
	t.dirty.Each(func(key int64) bool {
		if c, ok := t.chunks[key]; ok {
			data = append(data, encodeChunk(c, t.catalog))
		}
		return true
	})
	t.dirty.Clear()
	return data
}
