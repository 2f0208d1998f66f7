package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/fastlane/internal/model"
	"github.com/mcoot/fastlane/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	if cfg.Slot == "" {
		cfg.Slot = storage.DefaultSlot
	}
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

func (s *Storage) Load(ctx context.Context) (*model.Snapshot, error) {
	data, err := s.client.Get(ctx, saveKey(s.cfg.Slot)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load slot %s: %w", s.cfg.Slot, err)
	}
	return storage.Decode(data)
}

func (s *Storage) Save(ctx context.Context, snap *model.Snapshot) error {
	data, err := storage.Encode(snap)
	if err != nil {
		return err
	}

	// Use pipeline so the payload and its timestamp are written together
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, saveKey(s.cfg.Slot), data, s.cfg.SaveTTL)
	pipe.Set(ctx, savedAtKey(s.cfg.Slot), snap.SavedAt.Format(time.RFC3339Nano), s.cfg.SaveTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save slot %s: %w", s.cfg.Slot, err)
	}
	return nil
}

func (s *Storage) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, saveKey(s.cfg.Slot), savedAtKey(s.cfg.Slot)).Err(); err != nil {
		return fmt.Errorf("clear slot %s: %w", s.cfg.Slot, err)
	}
	return nil
}

// SavedAt returns when the slot was last written, or ErrSaveNotFound
func (s *Storage) SavedAt(ctx context.Context) (time.Time, error) {
	raw, err := s.client.Get(ctx, savedAtKey(s.cfg.Slot)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return time.Time{}, model.ErrSaveNotFound
		}
		return time.Time{}, fmt.Errorf("saved at for slot %s: %w", s.cfg.Slot, err)
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("saved at for slot %s: %w", s.cfg.Slot, err)
	}
	return t, nil
}
