package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mcoot/fastlane/internal/dependencies/clock"
	"github.com/mcoot/fastlane/internal/dependencies/scheduler"
	"github.com/mcoot/fastlane/internal/model"
	"github.com/mcoot/fastlane/internal/services/game"
	"github.com/mcoot/fastlane/internal/storage"
)

type command struct {
	fn     func(c *game.Controller) error
	result chan error
}

// Host owns the game controller on a single goroutine. HTTP handlers submit
// work with Do; the loop runs it and saves before replying, and drains due
// AI tasks in between.
type Host struct {
	controller *game.Controller
	queue      *scheduler.Queue
	clock      clock.Clock
	store      storage.Store
	logger     *slog.Logger

	cmds    chan command
	stopped chan struct{}
}

// New creates a Host. Nothing runs until Run is called.
func New(
	controller *game.Controller,
	queue *scheduler.Queue,
	clk clock.Clock,
	store storage.Store,
	logger *slog.Logger,
) *Host {
	return &Host{
		controller: controller,
		queue:      queue,
		clock:      clk,
		store:      store,
		logger:     logger.With(slog.String("component", "session")),
		cmds:       make(chan command),
		stopped:    make(chan struct{}),
	}
}

// Do runs fn on the host goroutine and returns its error. It fails with
// ErrSessionClosed once Run has returned.
func (h *Host) Do(ctx context.Context, fn func(c *game.Controller) error) error {
	cmd := command{fn: fn, result: make(chan error, 1)}
	select {
	case h.cmds <- cmd:
	case <-h.stopped:
		return model.ErrSessionClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-cmd.result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run restores the saved game, then serves commands and scheduled tasks until
// ctx is cancelled
func (h *Host) Run(ctx context.Context) error {
	defer close(h.stopped)
	h.restore(ctx)

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		var wake <-chan time.Time
		if due, ok := h.queue.NextDue(); ok {
			timer.Reset(max(due.Sub(h.clock.Now()), 0))
			wake = timer.C
		}

		select {
		case <-ctx.Done():
			h.logger.Info("session host stopped")
			return nil

		case cmd := <-h.cmds:
			err := cmd.fn(h.controller)
			h.autosave(ctx)
			cmd.result <- err

		case <-wake:
			h.Pump(ctx)
		}
		timer.Stop()
	}
}

// Pump runs every due scheduled task and autosaves if any ran. Returns the
// number of tasks run.
func (h *Host) Pump(ctx context.Context) int {
	ran := h.queue.RunDue()
	if ran > 0 {
		h.autosave(ctx)
	}
	return ran
}

func (h *Host) restore(ctx context.Context) {
	snap, err := h.store.Load(ctx)
	if err != nil {
		h.logger.Warn("failed to load saved game", slog.Any("error", err))
		if errors.Is(err, model.ErrInvalidSnapshot) {
			h.discard(ctx)
		}
		return
	}
	if snap == nil {
		h.logger.Info("no saved game")
		return
	}
	if err := h.controller.Load(snap); err != nil {
		h.logger.Warn("failed to restore saved game", slog.Any("error", err))
		h.discard(ctx)
		return
	}
	h.logger.Info("saved game restored",
		slog.String("game_id", string(snap.GameID)),
		slog.Time("saved_at", snap.SavedAt))
}

func (h *Host) discard(ctx context.Context) {
	if err := h.store.Clear(ctx); err != nil {
		h.logger.Error("failed to clear unreadable save", slog.Any("error", err))
	}
}

func (h *Host) autosave(ctx context.Context) {
	if h.controller.State() == nil {
		return
	}
	if err := h.save(ctx); err != nil {
		h.logger.Error("autosave failed", slog.Any("error", err))
	}
}

func (h *Host) save(ctx context.Context) error {
	snap, err := h.controller.Snapshot()
	if err != nil {
		return err
	}
	if err := h.store.Save(ctx, snap); err != nil {
		return fmt.Errorf("save game %s: %w", snap.GameID, err)
	}
	return nil
}
