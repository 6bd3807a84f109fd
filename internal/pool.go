package internal

import (
	"bytes"
	"sync"
)

// BufferPool holds the scratch buffers packets are encoded into and decoded from. Buffers must be
// reset before they are put back.
var BufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}
