package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mcoot/fastlane/internal/model"
)

// DefaultSlot is the save slot used when none is configured
const DefaultSlot = "default"

// Store persists the single saved game of a save slot
type Store interface {
	// Load returns the saved snapshot, or nil with no error when there is none
	Load(ctx context.Context) (*model.Snapshot, error)
	Save(ctx context.Context, snap *model.Snapshot) error
	Clear(ctx context.Context) error
	Close() error
}

// Encode serializes a snapshot for storage
func Encode(snap *model.Snapshot) ([]byte, error) {
	if snap == nil {
		return nil, fmt.Errorf("encode snapshot: %w", model.ErrInvalidSnapshot)
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// Decode parses a stored snapshot. A payload that is not valid JSON is
// reported as ErrInvalidSnapshot.
func Decode(data []byte) (*model.Snapshot, error) {
	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrInvalidSnapshot, err)
	}
	return &snap, nil
}
