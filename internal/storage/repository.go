package storage

import (
	"context"
)

// Store is the key-value persistence surface the widget writes through.
// Load reports found=false on first run; a found-but-malformed blob
// surfaces ErrFormat so the caller can degrade to defaults.
type Store interface {
	Load(ctx context.Context) (Snapshot, bool, error)
	Save(ctx context.Context, snap Snapshot) error
}

// MemoryStore keeps the snapshot in memory. Used in tests and as the
// fallback when no database path is configured.
type MemoryStore struct {
	snap  Snapshot
	saved bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) (Snapshot, bool, error) {
	if !s.saved {
		return Snapshot{}, false, nil
	}
	return s.snap, true, nil
}

func (s *MemoryStore) Save(_ context.Context, snap Snapshot) error {
	s.snap = snap
	s.saved = true
	return nil
}
