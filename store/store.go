package store

import (
	"gorm.io/gorm"
)

// Store is the typed access layer over the local database. All reads and
// writes the app performs go through it; mutations feed the change notifier
// that drives the Watch* subscriptions.
type Store struct {
	db      *gorm.DB
	watcher *watcher
}

// New creates a Store over an already-connected database handle.
func New(db *gorm.DB) *Store {
	return &Store{
		db:      db,
		watcher: newWatcher(),
	}
}

// DB exposes the underlying handle for callers that need raw access.
func (s *Store) DB() *gorm.DB {
	return s.db
}
