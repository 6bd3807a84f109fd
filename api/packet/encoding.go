package packet

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

func ReadString(buf *bytes.Buffer) string {
	var length uint32
	if err := binary.Read(buf, binary.LittleEndian, &length); err != nil {
		panic(fmt.Errorf("read string length: %w", err))
	}
	if int(length) > buf.Len() {
		panic(fmt.Errorf("string of %d bytes with %d left: %w", length, buf.Len(), io.ErrUnexpectedEOF))
	}
	return string(buf.Next(int(length)))
}

func WriteString(buf *bytes.Buffer, s string) {
	_ = binary.Write(buf, binary.LittleEndian, uint32(len(s)))
	buf.WriteString(s)
}
