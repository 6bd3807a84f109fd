package packet

import "bytes"

// Transaction is a latency round trip. The server sends one and expects the same ID back.
type Transaction struct {
	ID int64
}

// Kind ...
func (pk *Transaction) Kind() Kind {
	return KindTransaction
}

// Encode ...
func (pk *Transaction) Encode(buf *bytes.Buffer) {
	WriteInt64(buf, pk.ID)
}

// Decode ...
func (pk *Transaction) Decode(buf *bytes.Buffer) {
	pk.ID = ReadInt64(buf)
}
