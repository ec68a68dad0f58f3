// Package repository implements typed CRUD over the persisted collections.
// It owns id assignment, createdAt/updatedAt stamping and entity defaults;
// callers never touch the store directly.
package repository

import (
	"errors"
	"sync"
	"time"

	"financetracker/internal/storage"
)

var (
	// ErrNotFound signals an absent update/delete target. It is reported,
	// not raised as a fault: the gateway turns it into a failure envelope.
	ErrNotFound = errors.New("record not found")

	// ErrStorage signals a failed collection write.
	ErrStorage = errors.New("storage write failed")
)

type Repository struct {
	// Guards read-modify-write cycles on the collection snapshots. The
	// store itself has no per-record locking; without this, two rapid
	// callers would race last-write-wins on the whole collection.
	mu    sync.Mutex
	store storage.Store
	now   func() time.Time
}

func New(store storage.Store) *Repository {
	return NewWithClock(store, time.Now)
}

// NewWithClock fixes the repository's notion of "now"; tests use it to pin
// timestamps and next-execution computations.
func NewWithClock(store storage.Store, now func() time.Time) *Repository {
	return &Repository{store: store, now: now}
}

// Now returns the repository's current time.
func (r *Repository) Now() time.Time {
	return r.now()
}
