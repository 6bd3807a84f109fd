package protocol

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestWriterReaderFrames(t *testing.T) {
	var stream bytes.Buffer
	w := NewWriter(&stream)
	frames := [][]byte{[]byte("hello"), {}, bytes.Repeat([]byte{0xab}, 70000)}
	for _, f := range frames {
		if err := w.Write(f); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	if got := stream.Bytes()[:4]; !bytes.Equal(got, []byte{0, 0, 0, 5}) {
		t.Fatalf("length prefix = %v, want big-endian 5", got)
	}

	r := NewReader(&stream)
	for i, want := range frames {
		got, err := r.ReadPacket()
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("frame %d: got %d bytes, want %d", i, len(got), len(want))
		}
	}
	if _, err := r.ReadPacket(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF after last frame, got %v", err)
	}
}

func TestReaderRejectsOversizedFrame(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xff, 0xff, 0xff, 0xff}))
	if _, err := r.ReadPacket(); err == nil {
		t.Fatalf("expected an error for an oversized frame")
	}
}
