package world

// ChunkKey identifies a chunk column by its chunk coordinates.
type ChunkKey struct {
	X, Z int32
}

// Pack packs the key into a single int64, X in the high 32 bits and Z in the low 32 bits.
func (k ChunkKey) Pack() int64 {
	return int64(k.X)<<32 | int64(uint32(k.Z))
}

// UnpackChunkKey reverses ChunkKey.Pack.
func UnpackChunkKey(v int64) ChunkKey {
	return ChunkKey{X: int32(v >> 32), Z: int32(v)}
}
