package session

import (
	"errors"
	"fmt"
)

var ErrUnknownTransaction = errors.New("unknown transaction")

// Transactions correlates the 64-bit transaction IDs of the server with the 32-bit ping IDs sent to
// the client. Every ID opened is closed at most once.
type Transactions struct {
	next    int32
	pending map[int32]int64
}

// NewTransactions ...
func NewTransactions() *Transactions {
	return &Transactions{pending: make(map[int32]int64)}
}

// Open records an upstream transaction and returns the ping ID to forward it with. IDs start at 1.
func (t *Transactions) Open(upstream int64) int32 {
	t.next++
	t.pending[t.next] = upstream
	return t.next
}

// CloseAndGet removes the ping ID passed and returns the upstream transaction it was opened for.
func (t *Transactions) CloseAndGet(id int32) (int64, error) {
	upstream, ok := t.pending[id]
	if !ok {
		return 0, fmt.Errorf("ping %d: %w", id, ErrUnknownTransaction)
	}
	delete(t.pending, id)
	return upstream, nil
}

// Len returns the number of open transactions.
func (t *Transactions) Len() int {
	return len(t.pending)
}
