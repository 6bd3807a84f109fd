package packet

import (
	"bytes"
	"fmt"
)

// ProtocolSyncEntry assigns a numeric ID to a canonical packet name.
type ProtocolSyncEntry struct {
	Name string
	ID   int32
}

// ProtocolSync is the first packet of a session. It announces the numeric ID of every packet kind.
type ProtocolSync struct {
	Entries []ProtocolSyncEntry
}

// Kind ...
func (pk *ProtocolSync) Kind() Kind {
	return KindProtocolSync
}

// Encode ...
func (pk *ProtocolSync) Encode(buf *bytes.Buffer) {
	WriteInt32(buf, int32(len(pk.Entries)))
	for _, entry := range pk.Entries {
		WriteString(buf, entry.Name)
		WriteInt32(buf, entry.ID)
	}
}

// Decode ...
func (pk *ProtocolSync) Decode(buf *bytes.Buffer) {
	count := ReadInt32(buf)
	if count < 0 {
		panic(fmt.Errorf("negative protocol sync entry count %d", count))
	}
	pk.Entries = make([]ProtocolSyncEntry, 0, min(int(count), 256))
	for i := int32(0); i < count; i++ {
		name, ok := ReadString(buf)
		if !ok {
			panic(fmt.Errorf("protocol sync entry %d has a null name", i))
		}
		pk.Entries = append(pk.Entries, ProtocolSyncEntry{Name: name, ID: ReadInt32(buf)})
	}
}
