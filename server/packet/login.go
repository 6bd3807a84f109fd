package packet

import "bytes"

// Login is sent by the client to join the server with an account.
type Login struct {
	Account Account
}

// Kind ...
func (pk *Login) Kind() Kind {
	return KindLogin
}

// Encode ...
func (pk *Login) Encode(buf *bytes.Buffer) {
	WriteAccount(buf, pk.Account)
}

// Decode ...
func (pk *Login) Decode(buf *bytes.Buffer) {
	pk.Account = ReadAccount(buf)
}
