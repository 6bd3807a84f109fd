package protocol

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	packetLengthSize = 4
	maxFrameSize     = 1024 * 1024 * 16
)

// Reader reads frames prefixed with a big-endian uint32 length.
type Reader struct {
	r      io.Reader
	header [packetLengthSize]byte
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// ReadPacket reads the next frame and returns its payload. The returned slice is owned by the caller.
func (r *Reader) ReadPacket() ([]byte, error) {
	if _, err := io.ReadFull(r.r, r.header[:]); err != nil {
		return nil, err
	}

	length := binary.BigEndian.Uint32(r.header[:])
	if length > maxFrameSize {
		return nil, fmt.Errorf("frame of %d bytes exceeds the maximum of %d", length, maxFrameSize)
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(r.r, payload); err != nil {
		return nil, fmt.Errorf("read frame payload: %w", err)
	}
	return payload, nil
}
