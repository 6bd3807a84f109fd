package packet

import (
	"fmt"
	"io"

	"github.com/sandertv/gophertunnel/minecraft/nbt"
)

// NBT is a field holding a value encoded as network NBT: big-endian, with a nameless root tag.
type NBT struct {
	V any
}

// WriteTo ...
func (n NBT) WriteTo(w io.Writer) (int64, error) {
	b, err := nbt.MarshalEncoding(n.V, nbt.BigEndian)
	if err != nil {
		return 0, fmt.Errorf("encode nbt: %w", err)
	}
	if len(b) < 3 {
		return 0, fmt.Errorf("encode nbt: short root tag")
	}
	// Drop the empty root name that follows the tag type.
	m, err := w.Write(append(b[:1:1], b[3:]...))
	return int64(m), err
}

// Text returns a plain text component.
func Text(s string) NBT {
	return NBT{V: map[string]any{"text": s}}
}
