package protocol

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/cooldogedev/prism/internal"
)

// Writer writes frames prefixed with a big-endian uint32 length.
type Writer struct {
	w io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) Write(data []byte) (err error) {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		internal.BufferPool.Put(buf)
	}()

	var length [packetLengthSize]byte
	binary.BigEndian.PutUint32(length[:], uint32(len(data)))
	buf.Write(length[:])
	buf.Write(data)
	_, err = w.w.Write(buf.Bytes())
	return
}
