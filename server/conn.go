package server

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/cooldogedev/prism/internal"
	proto "github.com/cooldogedev/prism/protocol"
	"github.com/cooldogedev/prism/server/packet"
)

const packetIDSize = 2

var errConnClosed = errors.New("connection closed")

// Frame is a packet read from the server whose numeric ID has not been resolved yet.
type Frame struct {
	ID      int32
	Payload []byte
}

// Conn is a connection to an upstream server. Frames may be read from one goroutine while another
// decodes and writes packets. The Resolver consulted by Decode and WritePacket is not locked, so both
// must be called from the same goroutine.
type Conn struct {
	conn io.ReadWriteCloser

	reader *proto.Reader

	writer  *proto.Writer
	writeMu sync.Mutex

	resolver *packet.Resolver
	pool     packet.Pool

	closed chan struct{}
	once   sync.Once
}

// NewConn creates a new Conn with the conn and pool passed.
func NewConn(conn io.ReadWriteCloser, pool packet.Pool) *Conn {
	return &Conn{
		conn:   conn,
		reader: proto.NewReader(conn),
		writer: proto.NewWriter(conn),

		resolver: packet.NewResolver(),
		pool:     pool,

		closed: make(chan struct{}),
	}
}

// ReadFrame blocks until the next frame is read from the server.
func (c *Conn) ReadFrame() (Frame, error) {
	select {
	case <-c.closed:
		return Frame{}, errConnClosed
	default:
	}

	payload, err := c.reader.ReadPacket()
	if err != nil {
		return Frame{}, err
	}
	if len(payload) < packetIDSize {
		return Frame{}, fmt.Errorf("frame of %d bytes has no packet ID", len(payload))
	}
	return Frame{
		ID:      int32(int16(binary.BigEndian.Uint16(payload))),
		Payload: payload[packetIDSize:],
	}, nil
}

// Decode resolves and decodes the frame passed. It returns false when the frame's ID does not resolve to a
// known kind, in which case the frame should be dropped.
func (c *Conn) Decode(f Frame) (pk packet.Packet, ok bool, err error) {
	kind, ok := c.resolver.Resolve(packet.Clientbound, f.ID)
	if !ok {
		return nil, false, nil
	}

	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Write(f.Payload)
	defer func() {
		buf.Reset()
		internal.BufferPool.Put(buf)

		if r := recover(); r != nil {
			pk, err = nil, fmt.Errorf("panic while decoding %v: %v", kind, r)
		}
	}()

	pk = c.pool.New(kind)
	pk.Decode(buf)
	return pk, true, nil
}

// WritePacket writes a packet to the server using the numeric ID the session negotiated for its kind.
func (c *Conn) WritePacket(pk packet.Packet) error {
	id, err := c.resolver.ID(packet.Serverbound, pk.Kind())
	if err != nil {
		return err
	}

	buf := internal.BufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		internal.BufferPool.Put(buf)
	}()

	packet.WriteInt16(buf, int16(id))
	pk.Encode(buf)

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	select {
	case <-c.closed:
		return errConnClosed
	default:
		return c.writer.Write(buf.Bytes())
	}
}

// Resolver returns the packet ID resolver of the connection.
func (c *Conn) Resolver() *packet.Resolver {
	return c.resolver
}

// Closed returns a channel that is closed once the connection is closed.
func (c *Conn) Closed() <-chan struct{} {
	return c.closed
}

// Close ...
func (c *Conn) Close() (err error) {
	c.once.Do(func() {
		close(c.closed)
		err = c.conn.Close()
	})
	return
}
