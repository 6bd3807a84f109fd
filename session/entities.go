package session

import (
	"github.com/cooldogedev/prism/internal"
	"github.com/cooldogedev/prism/server/packet"
)

// Entities assigns downstream entity IDs to the players known to the session. IDs start at 0 and are
// never reused.
type Entities struct {
	next     int32
	ids      *internal.BiMap[string, int32]
	accounts map[string]packet.Account
	client   packet.Account
}

// NewEntities ...
func NewEntities() *Entities {
	return &Entities{
		ids:      internal.NewBiMap[string, int32](),
		accounts: make(map[string]packet.Account),
	}
}

// Join returns the entity ID of the account passed, allocating one if the account is not known yet.
func (e *Entities) Join(a packet.Account) int32 {
	if id, ok := e.ids.Get(a.UniqueID); ok {
		return id
	}
	id := e.next
	e.next++
	e.ids.Put(a.UniqueID, id)
	e.accounts[a.UniqueID] = a
	return id
}

// Leave forgets the player with the unique ID passed.
func (e *Entities) Leave(uniqueID string) {
	e.ids.Delete(uniqueID)
	delete(e.accounts, uniqueID)
}

// Has reports whether the player with the unique ID passed is known.
func (e *Entities) Has(uniqueID string) bool {
	return e.ids.ContainsKey(uniqueID)
}

// ID ...
func (e *Entities) ID(uniqueID string) (int32, bool) {
	return e.ids.Get(uniqueID)
}

// Account ...
func (e *Entities) Account(uniqueID string) (packet.Account, bool) {
	a, ok := e.accounts[uniqueID]
	return a, ok
}

// UniqueID returns the unique ID of the player with the entity ID passed.
func (e *Entities) UniqueID(id int32) (string, bool) {
	return e.ids.Inverse(id)
}

// ClientAccount returns the account the client joined with.
func (e *Entities) ClientAccount() packet.Account {
	return e.client
}

// SetClientAccount ...
func (e *Entities) SetClientAccount(a packet.Account) {
	e.client = a
}

// Len returns the number of known players, the client included.
func (e *Entities) Len() int {
	return e.ids.Len()
}
