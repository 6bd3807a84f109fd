package packet

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// AccountTypeOffline is the only account type the upstream server hands out to unauthenticated players.
const AccountTypeOffline = "offline"

// Account identifies a player on the upstream server. Usernames and unique IDs are qualified with
// the account type, as in "offline:Steve".
type Account struct {
	Type     string
	Username string
	UniqueID string
}

// NewOfflineAccount creates an offline account for the username passed with a random unique ID.
func NewOfflineAccount(username string) Account {
	return Account{
		Type:     AccountTypeOffline,
		Username: AccountTypeOffline + ":" + username,
		UniqueID: AccountTypeOffline + ":" + strconv.FormatInt(rand.Int64(), 10),
	}
}

// DisplayName returns the username with its type qualifier stripped.
func (a Account) DisplayName() string {
	return strings.ReplaceAll(a.Username, a.Type+":", "")
}

func ReadAccount(buf *bytes.Buffer) Account {
	accountType, _ := ReadString(buf)
	if accountType != AccountTypeOffline {
		panic(fmt.Errorf("unexpected account type %q", accountType))
	}

	obj := ReadJSON(buf)
	username, ok := String(obj, "username")
	if !ok {
		panic(fmt.Errorf("account is missing a username"))
	}
	uniqueID, ok := String(obj, "uniqueId")
	if !ok {
		panic(fmt.Errorf("account is missing a unique ID"))
	}
	return Account{Type: accountType, Username: username, UniqueID: uniqueID}
}

func WriteAccount(buf *bytes.Buffer, a Account) {
	WriteString(buf, a.Type)
	WriteJSON(buf, map[string]any{
		"username": a.Username,
		"uniqueId": a.UniqueID,
	})
}
