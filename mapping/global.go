package mapping

import (
	"errors"
	"sync/atomic"
)

var ErrAlreadyInitialised = errors.New("mapping catalog already initialised")

var global atomic.Pointer[Catalog]

// Init installs c as the process-wide catalog. It fails if a catalog was installed before.
func Init(c *Catalog) error {
	if c == nil {
		return errors.New("nil mapping catalog")
	}
	if !global.CompareAndSwap(nil, c) {
		return ErrAlreadyInitialised
	}
	return nil
}

// Default returns the process-wide catalog, or nil before Init.
func Default() *Catalog {
	return global.Load()
}
