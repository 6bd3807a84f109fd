package world

import (
	"bytes"
	"io"
	"log/slog"
	"math/bits"
	"testing"

	pk "github.com/Tnze/go-mc/net/packet"
	"github.com/cooldogedev/prism/mapping"
	"github.com/cooldogedev/prism/server/packet"
)

var testLog = slog.New(slog.NewTextHandler(io.Discard, nil))

func testCatalog(t *testing.T) *mapping.Catalog {
	t.Helper()
	upstream := []string{
		"base:air[default]",
		"base:stone",
		"base:stone[facing=north]",
		"base:dirt[default]",
		"base:lamp[default]",
	}
	downstream := []string{
		"minecraft:air",
		"minecraft:stone",
		"minecraft:granite",
		"minecraft:polished_granite",
		"minecraft:diorite",
		"minecraft:polished_diorite",
		"minecraft:andesite",
		"minecraft:polished_andesite",
		"minecraft:dirt",
	}
	mappings := map[string]string{
		"base:air[default]":  "minecraft:air",
		"base:stone":         "minecraft:polished_andesite",
		"base:dirt[default]": "minecraft:dirt",
	}
	c, err := mapping.NewCatalog(upstream, downstream, mappings, testLog)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return c
}

func TestChunkKeyPack(t *testing.T) {
	for _, k := range []ChunkKey{{0, 0}, {1, -1}, {-30000000, 30000000}, {-1, -1}} {
		if got := UnpackChunkKey(k.Pack()); got != k {
			t.Fatalf("expected %v, got %v", k, got)
		}
	}
	if (ChunkKey{X: 1, Z: 0}).Pack() == (ChunkKey{X: 0, Z: 1}).Pack() {
		t.Fatalf("keys must not collide")
	}
}

func TestMergeSectionLastWriteWins(t *testing.T) {
	c := testCatalog(t)
	tr := NewTracker(c, testLog)

	first := NewUniformSection(1)
	second := NewUniformSection(3)
	tr.MergeSection(2, 4, -7, first)
	tr.MergeSection(2, 4, -7, second)

	s, ok := tr.Section(2, 4, -7)
	if !ok || s != second {
		t.Fatalf("expected the last merged section")
	}
	if !tr.Dirty(2, -7) {
		t.Fatalf("expected the chunk to be dirty")
	}

	chunks := tr.Flush()
	if len(chunks) != 1 || chunks[0].X != 2 || chunks[0].Z != -7 {
		t.Fatalf("expected a single flushed chunk, got %d", len(chunks))
	}
	if tr.Dirty(2, -7) {
		t.Fatalf("flush must clear the dirty set")
	}
	if len(tr.Flush()) != 0 {
		t.Fatalf("a second flush must be empty")
	}
}

func TestHandleBlockChange(t *testing.T) {
	c := testCatalog(t)
	tr := NewTracker(c, testLog)
	tr.MergeSection(0, 4, -1, NewUniformSection(c.UpstreamAirID()))
	tr.Flush()

	id := tr.HandleBlockChange(packet.BlockPosition{X: 5, Y: 70, Z: -3}, "base:stone[facing=north]")
	if id != 7 {
		t.Fatalf("expected downstream ID 7, got %d", id)
	}

	want, _ := c.UpstreamID(mapping.ParseBlockState("base:stone[facing=north]"))
	s, _ := tr.Section(0, 4, -1)
	if got := s.Block(5, 70%16, 13); got != want {
		t.Fatalf("expected upstream ID %d at the changed cell, got %d", want, got)
	}
	if !tr.Dirty(0, -1) {
		t.Fatalf("a block change must mark the chunk dirty")
	}

	if id := tr.HandleBlockChange(packet.BlockPosition{X: 5, Y: 70, Z: -3}, "base:lamp[default]"); id != mapping.DownstreamFallback {
		t.Fatalf("expected the fallback for an unmapped state, got %d", id)
	}
	if id := tr.HandleBlockChange(packet.BlockPosition{X: 5, Y: 70, Z: -3}, "base:unknown"); id != c.DownstreamAirID() {
		t.Fatalf("expected air for an unknown state, got %d", id)
	}
}

func TestHandleBlockChangeUnknownSection(t *testing.T) {
	c := testCatalog(t)
	tr := NewTracker(c, testLog)

	if id := tr.HandleBlockChange(packet.BlockPosition{X: 100, Y: 5, Z: 100}, "base:stone"); id != c.DownstreamAirID() {
		t.Fatalf("expected air, got %d", id)
	}
	if _, ok := tr.Chunk(6, 6); ok {
		t.Fatalf("a block change must not create a chunk")
	}
	if tr.Dirty(6, 6) {
		t.Fatalf("a block change on an unknown section must not mark anything dirty")
	}
}

func TestEncodeEmptyChunk(t *testing.T) {
	c := testCatalog(t)
	data := encodeChunk(&Chunk{Key: ChunkKey{X: 3, Z: 4}, Sections: map[int32]*Section{}}, c)

	if n := countBits(data.SkyLightMask); n != 2 {
		t.Fatalf("expected 2 sky light bits, got %d", n)
	}
	if !data.SkyLightMask.Get(0) || !data.SkyLightMask.Get(SectionCount+1) {
		t.Fatalf("expected the sky light bits of the light sections outside the world")
	}
	if n := countBits(data.BlockLightMask); n != 0 {
		t.Fatalf("expected no block light bits, got %d", n)
	}
	if len(data.SkyLight) != 2 || len(data.BlockLight) != 0 {
		t.Fatalf("unexpected light arrays %d %d", len(data.SkyLight), len(data.BlockLight))
	}

	// Every section is a zero non-air count followed by single valued air and plains containers.
	empty := []byte{0, 0, 0, 0, 0, 0, byte(c.PlainsBiome()), 0}
	if !bytes.Equal(data.Sections, bytes.Repeat(empty, SectionCount)) {
		t.Fatalf("expected %d empty sections, got %d bytes", SectionCount, len(data.Sections))
	}
}

func TestEncodeChunkSections(t *testing.T) {
	c := testCatalog(t)
	s := NewUniformSection(c.UpstreamAirID())
	dirt, _ := c.UpstreamID(mapping.ParseBlockState("base:dirt[default]"))
	s.SetBlock(0, 0, 0, dirt)
	s.BlockLight = make([]uint16, packet.SectionVolume)
	s.BlockLight[1] = 0x3a2

	data := encodeChunk(&Chunk{Key: ChunkKey{}, Sections: map[int32]*Section{0: s}}, c)

	slot := -sectionOffset
	if n := countBits(data.SkyLightMask); n != 3 || !data.SkyLightMask.Get(slot+1) {
		t.Fatalf("expected sky light for the known section")
	}
	if n := countBits(data.BlockLightMask); n != 1 || !data.BlockLightMask.Get(slot+1) {
		t.Fatalf("expected block light for the known section")
	}
	if got := data.BlockLight[0][0]; got != 0xa0 {
		t.Fatalf("expected the brightest channel in the high nibble, got %#x", got)
	}

	var nonAir pk.Short
	if _, err := nonAir.ReadFrom(bytes.NewReader(data.Sections[slot*8:])); err != nil || nonAir != 1 {
		t.Fatalf("expected one non-air block, got %d (%v)", nonAir, err)
	}

	var out bytes.Buffer
	if _, err := data.WriteTo(&out); err != nil {
		t.Fatalf("write: %v", err)
	}
	if p := data.Packet(); len(p.Data) != out.Len() {
		t.Fatalf("packet body must match WriteTo output")
	}
}

func TestNewSectionResolvesSaveKeys(t *testing.T) {
	c := testCatalog(t)
	raw := &packet.ChunkSection{
		Palette: []string{"base:dirt[default]", "base:missing[default]"},
		Blocks:  make([]uint16, packet.SectionVolume),
	}
	raw.Blocks[17] = 1

	s := NewSection(raw, c, testLog)
	dirt, _ := c.UpstreamID(mapping.ParseBlockState("base:dirt[default]"))
	if s.Blocks[0] != dirt || s.Blocks[17] != c.UpstreamAirID() {
		t.Fatalf("unexpected blocks %d %d", s.Blocks[0], s.Blocks[17])
	}

	single := NewSection(&packet.ChunkSection{Palette: []string{"base:dirt[default]"}}, c, testLog)
	if single.Block(15, 15, 15) != dirt {
		t.Fatalf("expected a uniform dirt section")
	}
}

func TestParseZone(t *testing.T) {
	obj, err := packet.ParseJSONObject(`{zoneId: base:earth, spawnPoint: {x: 1, y: 2.5, z: -3}}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	z, err := ParseZone(obj)
	if err != nil {
		t.Fatalf("zone: %v", err)
	}
	if z.ID != "base:earth" || z.Spawn.Y() != 2.5 || z.Spawn.Z() != -3 {
		t.Fatalf("unexpected zone %+v", z)
	}
	if _, err := ParseZone(map[string]any{"zoneId": "a"}); err == nil {
		t.Fatalf("expected a zone without spawn point to fail")
	}
}

func countBits(set pk.BitSet) (n int) {
	for _, v := range set {
		n += bits.OnesCount64(uint64(v))
	}
	return
}
