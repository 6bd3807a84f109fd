package packet

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// The helpers below read big-endian values and panic on truncated input. Conn.Decode recovers the
// panic into an error.

func next(buf *bytes.Buffer, n int) []byte {
	if n < 0 || buf.Len() < n {
		panic(fmt.Errorf("need %d bytes, %d left: %w", n, buf.Len(), io.ErrUnexpectedEOF))
	}
	return buf.Next(n)
}

func ReadBool(buf *bytes.Buffer) bool {
	return next(buf, 1)[0] != 0
}

func WriteBool(buf *bytes.Buffer, v bool) {
	if v {
		buf.WriteByte(1)
	} else {
		buf.WriteByte(0)
	}
}

func ReadByte(buf *bytes.Buffer) byte {
	return next(buf, 1)[0]
}

func ReadInt16(buf *bytes.Buffer) int16 {
	return int16(binary.BigEndian.Uint16(next(buf, 2)))
}

func WriteInt16(buf *bytes.Buffer, v int16) {
	buf.Write(binary.BigEndian.AppendUint16(nil, uint16(v)))
}

func ReadInt32(buf *bytes.Buffer) int32 {
	return int32(binary.BigEndian.Uint32(next(buf, 4)))
}

func WriteInt32(buf *bytes.Buffer, v int32) {
	buf.Write(binary.BigEndian.AppendUint32(nil, uint32(v)))
}

func ReadInt64(buf *bytes.Buffer) int64 {
	return int64(binary.BigEndian.Uint64(next(buf, 8)))
}

func WriteInt64(buf *bytes.Buffer, v int64) {
	buf.Write(binary.BigEndian.AppendUint64(nil, uint64(v)))
}

func ReadFloat32(buf *bytes.Buffer) float32 {
	return math.Float32frombits(uint32(ReadInt32(buf)))
}

func WriteFloat32(buf *bytes.Buffer, v float32) {
	WriteInt32(buf, int32(math.Float32bits(v)))
}

func ReadBytes(buf *bytes.Buffer, n int) []byte {
	return bytes.Clone(next(buf, n))
}

// ReadString reads an int32 length prefixed UTF-8 string. A length of -1 encodes null and is
// reported through ok.
func ReadString(buf *bytes.Buffer) (s string, ok bool) {
	length := ReadInt32(buf)
	if length == -1 {
		return "", false
	}
	return string(next(buf, int(length))), true
}

func WriteString(buf *bytes.Buffer, s string) {
	WriteInt32(buf, int32(len(s)))
	buf.WriteString(s)
}

// WriteNullString writes the null string marker.
func WriteNullString(buf *bytes.Buffer) {
	WriteInt32(buf, -1)
}

func ReadVec3(buf *bytes.Buffer) mgl32.Vec3 {
	return mgl32.Vec3{ReadFloat32(buf), ReadFloat32(buf), ReadFloat32(buf)}
}

func WriteVec3(buf *bytes.Buffer, v mgl32.Vec3) {
	WriteFloat32(buf, v.X())
	WriteFloat32(buf, v.Y())
	WriteFloat32(buf, v.Z())
}

// BlockPosition is an absolute block coordinate.
type BlockPosition struct {
	X, Y, Z int32
}

func ReadBlockPosition(buf *bytes.Buffer) BlockPosition {
	return BlockPosition{X: ReadInt32(buf), Y: ReadInt32(buf), Z: ReadInt32(buf)}
}

func WriteBlockPosition(buf *bytes.Buffer, p BlockPosition) {
	WriteInt32(buf, p.X)
	WriteInt32(buf, p.Y)
	WriteInt32(buf, p.Z)
}

// ReadJSON reads a string holding a JSON object. Unquoted values are accepted. A null string
// yields a nil map.
func ReadJSON(buf *bytes.Buffer) map[string]any {
	s, ok := ReadString(buf)
	if !ok {
		return nil
	}
	obj, err := ParseJSONObject(s)
	if err != nil {
		panic(err)
	}
	return obj
}

func WriteJSON(buf *bytes.Buffer, obj map[string]any) {
	if obj == nil {
		WriteNullString(buf)
		return
	}
	data, err := marshalJSON(obj)
	if err != nil {
		panic(err)
	}
	WriteString(buf, string(data))
}
