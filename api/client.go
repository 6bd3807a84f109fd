package api

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/cooldogedev/prism/api/packet"
	"github.com/cooldogedev/prism/internal"
	"github.com/cooldogedev/prism/protocol"
	"github.com/golang/snappy"
)

const (
	compressionThreshold = 256
	flagCompressed       = 0x01
)

// Client is a connection speaking the API protocol. Every frame starts with a flags byte; payloads
// larger than compressionThreshold are compressed with snappy.
type Client struct {
	conn net.Conn
	pool packet.Pool

	reader  *protocol.Reader
	writer  *protocol.Writer
	writeMu sync.Mutex
}

// NewClient ...
func NewClient(conn net.Conn, pool packet.Pool) *Client {
	return &Client{
		conn: conn,
		pool: pool,

		reader: protocol.NewReader(conn),
		writer: protocol.NewWriter(conn),
	}
}

// ReadPacket reads and decodes the next packet.
func (c *Client) ReadPacket() (pk packet.Packet, err error) {
	payload, err := c.reader.ReadPacket()
	if err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return nil, errors.New("empty frame")
	}

	if payload[0]&flagCompressed != 0 {
		if payload, err = snappy.Decode(nil, payload[1:]); err != nil {
			return nil, fmt.Errorf("decompress frame: %w", err)
		}
	} else {
		payload = payload[1:]
	}

	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Write(payload)
	defer func() {
		buf.Reset()
		internal.BufferPool.Put(buf)

		if r := recover(); r != nil {
			pk, err = nil, fmt.Errorf("panic while decoding packet: %v", r)
		}
	}()

	var packetID uint32
	if err := binary.Read(buf, binary.LittleEndian, &packetID); err != nil {
		return nil, fmt.Errorf("read packet ID: %w", err)
	}

	factory, ok := c.pool[packetID]
	if !ok {
		return nil, fmt.Errorf("unknown packet ID: %v", packetID)
	}

	pk = factory()
	pk.Decode(buf)
	return pk, nil
}

// WritePacket encodes and writes a packet.
func (c *Client) WritePacket(pk packet.Packet) error {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		internal.BufferPool.Put(buf)
	}()

	if err := binary.Write(buf, binary.LittleEndian, pk.ID()); err != nil {
		return err
	}
	pk.Encode(buf)

	payload := buf.Bytes()
	var out []byte
	if len(payload) > compressionThreshold {
		compressed := snappy.Encode(nil, payload)
		out = make([]byte, 1+len(compressed))
		out[0] = flagCompressed
		copy(out[1:], compressed)
	} else {
		out = make([]byte, 1+len(payload))
		copy(out[1:], payload)
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.writer.Write(out)
}

// Close ...
func (c *Client) Close() error {
	return c.conn.Close()
}
