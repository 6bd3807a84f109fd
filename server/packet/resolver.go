package packet

import (
	"errors"
	"fmt"

	"github.com/cooldogedev/prism/internal"
	"github.com/scylladb/go-set/strset"
)

var ErrUnresolvedKind = errors.New("packet kind has no numeric ID in this session")

// Resolver maps logical packet kinds to the numeric IDs of a single upstream connection, in both
// directions. Until Sync is called the default IDs are used. A Resolver is not safe for concurrent
// use; it belongs to the goroutine processing the connection.
type Resolver struct {
	tables [2]*internal.BiMap[Kind, int32]
	synced bool
}

// NewResolver returns a Resolver answering with the default IDs.
func NewResolver() *Resolver {
	r := &Resolver{}
	for d := range r.tables {
		r.tables[d] = internal.NewBiMap[Kind, int32]()
		for _, k := range kinds[d] {
			r.tables[d].Put(k, int32(k))
		}
	}
	return r
}

// Resolve returns the kind the numeric ID passed resolves to.
func (r *Resolver) Resolve(d Direction, id int32) (Kind, bool) {
	return r.tables[d].Inverse(id)
}

// ID returns the numeric ID of the kind passed. It fails with ErrUnresolvedKind when the kind is
// not part of the session's mapping.
func (r *Resolver) ID(d Direction, k Kind) (int32, error) {
	id, ok := r.tables[d].Get(k)
	if !ok {
		return 0, fmt.Errorf("%s %v: %w", d, k, ErrUnresolvedKind)
	}
	return id, nil
}

// Synced reports whether the dynamic mapping replaced the defaults.
func (r *Resolver) Synced() bool {
	return r.synced
}

// Sync replaces the mapping with the one announced by the server. Unknown or duplicated names and
// numeric IDs reused within a direction are rejected, leaving the previous mapping in place.
func (r *Resolver) Sync(entries []ProtocolSyncEntry) error {
	var tables [2]*internal.BiMap[Kind, int32]
	for d := range tables {
		tables[d] = internal.NewBiMap[Kind, int32]()
	}

	seen := strset.NewWithSize(len(entries))
	for _, entry := range entries {
		if seen.Has(entry.Name) {
			return fmt.Errorf("protocol sync: duplicate packet name %s", entry.Name)
		}
		seen.Add(entry.Name)

		k, ok := KindByName(entry.Name)
		if !ok {
			return fmt.Errorf("protocol sync: unknown packet name %s", entry.Name)
		}
		for d := range tables {
			if !member(Direction(d), k) {
				continue
			}
			if existing, ok := tables[d].Inverse(entry.ID); ok {
				return fmt.Errorf("protocol sync: %s ID %d assigned to both %v and %v", Direction(d), entry.ID, existing, k)
			}
			tables[d].Put(k, entry.ID)
		}
	}

	r.tables = tables
	r.synced = true
	return nil
}

func member(d Direction, k Kind) bool {
	for _, candidate := range kinds[d] {
		if candidate == k {
			return true
		}
	}
	return false
}
