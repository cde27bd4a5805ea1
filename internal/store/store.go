// Package store persists contract instance storage between simulator runs.
//
// Host storage calls cannot fail from the contract's point of view, so the
// backends record the first I/O error and hand it out through Err once the
// call has finished.
package store

import (
	"fmt"

	"rent_a_car/contract/rentacar"
	"rent_a_car/internal/config"
)

// Store is instance storage that lives on disk.
type Store interface {
	rentacar.State
	// Err returns the first error hit by Set or Get.
	Err() error
	// Keys lists what is stored, for inspection.
	Keys() []string
	Close() error
}

// Open picks the backend named in cfg.
func Open(cfg config.State, contractID string) (Store, error) {
	switch cfg.Backend {
	case config.BackendBolt:
		return OpenBolt(cfg.Path, contractID)
	case config.BackendJSON:
		return OpenFile(cfg.Path, contractID)
	default:
		return nil, fmt.Errorf("unknown state backend %q", cfg.Backend)
	}
}

// errOnce keeps the first error it sees.
type errOnce struct {
	err error
}

func (e *errOnce) onErr(err error) {
	if e.err == nil {
		e.err = err
	}
}

func (e *errOnce) Err() error { return e.err }
