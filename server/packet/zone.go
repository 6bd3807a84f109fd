package packet

import "bytes"

// Zone describes the zone the client was placed in.
type Zone struct {
	Data map[string]any
}

// Kind ...
func (pk *Zone) Kind() Kind {
	return KindZone
}

// Encode ...
func (pk *Zone) Encode(buf *bytes.Buffer) {
	WriteJSON(buf, pk.Data)
}

// Decode ...
func (pk *Zone) Decode(buf *bytes.Buffer) {
	pk.Data = ReadJSON(buf)
}
