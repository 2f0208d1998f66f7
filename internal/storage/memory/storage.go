package memory

import (
	"context"
	"sync"

	"github.com/mcoot/fastlane/internal/model"
	"github.com/mcoot/fastlane/internal/storage"
)

// Storage is an in-memory implementation of the storage interface. It keeps
// the encoded form so a loaded snapshot never aliases a saved one.
type Storage struct {
	mu   sync.RWMutex
	data []byte
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

func (s *Storage) Load(ctx context.Context) (*model.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return nil, nil
	}
	return storage.Decode(s.data)
}

func (s *Storage) Save(ctx context.Context, snap *model.Snapshot) error {
	data, err := storage.Encode(snap)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	return nil
}

func (s *Storage) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	return nil
}

func (s *Storage) Close() error {
	return nil
}
