package packet

import "bytes"

// BlockReplace sets a single block.
type BlockReplace struct {
	ZoneID     string
	BlockState string
	Position   BlockPosition
}

// Kind ...
func (pk *BlockReplace) Kind() Kind {
	return KindBlockReplace
}

// Encode ...
func (pk *BlockReplace) Encode(buf *bytes.Buffer) {
	WriteString(buf, pk.ZoneID)
	WriteString(buf, pk.BlockState)
	WriteBlockPosition(buf, pk.Position)
}

// Decode ...
func (pk *BlockReplace) Decode(buf *bytes.Buffer) {
	pk.ZoneID, _ = ReadString(buf)
	pk.BlockState, _ = ReadString(buf)
	pk.Position = ReadBlockPosition(buf)
}
