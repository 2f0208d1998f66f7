package model

import (
	"fmt"
	"time"
)

// SnapshotVersion is bumped whenever the persisted layout changes incompatibly
const SnapshotVersion = 1

// PlayerRecord is a persisted player plus its seat's control flag
type PlayerRecord struct {
	Player
	IsAI bool `json:"isAI"`
}

// Snapshot is the persisted form of a GameState
type Snapshot struct {
	Version            int            `json:"version"`
	GameID             GameID         `json:"gameId"`
	Players            []PlayerRecord `json:"players"`
	CurrentPlayerIndex int            `json:"currentPlayerIndex"`
	Turn               int            `json:"turn"`
	GameOver           bool           `json:"gameOver"`
	WinnerID           *PlayerID      `json:"winnerId"`
	Log                []LogEntry     `json:"log"`
	IsPlayer2AI        bool           `json:"isPlayer2AI"`
	PendingTurnSummary *TurnSummary   `json:"pendingTurnSummary"`
	ActiveScreen       string         `json:"activeScreen"`
	ActiveDashboard    string         `json:"activeDashboard"`
	ChoiceContext      *ChoiceContext `json:"choiceContext"`
	SavedAt            time.Time      `json:"savedAt"`
}

// NewSnapshot captures a deep copy of the game state. Choice callbacks are
// replaced by their action identifiers.
func NewSnapshot(g *GameState, savedAt time.Time) *Snapshot {
	s := &Snapshot{
		Version:            SnapshotVersion,
		GameID:             g.ID,
		CurrentPlayerIndex: g.CurrentPlayerIndex,
		Turn:               g.Turn,
		GameOver:           g.GameOver,
		IsPlayer2AI:        g.Player2AI,
		PendingTurnSummary: g.PendingSummary.Clone(),
		ActiveScreen:       g.ActiveScreen,
		ActiveDashboard:    g.ActiveDashboard,
		ChoiceContext:      g.ChoiceContext.Stripped(),
		SavedAt:            savedAt,
	}
	if g.WinnerID != "" {
		winner := g.WinnerID
		s.WinnerID = &winner
	}
	if g.Players != nil {
		s.Players = make([]PlayerRecord, len(g.Players))
		for i, p := range g.Players {
			s.Players[i] = PlayerRecord{Player: *p.Clone(), IsAI: g.IsAISeat(i)}
		}
	}
	if g.Log != nil {
		s.Log = make([]LogEntry, len(g.Log))
		copy(s.Log, g.Log)
	}
	return s
}

// Restore rebuilds a game state from the snapshot. The AI thinking flag is
// transient and always comes back cleared.
func (s *Snapshot) Restore() (*GameState, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: empty snapshot", ErrInvalidSnapshot)
	}
	if s.Version != SnapshotVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidSnapshot, s.Version)
	}
	if len(s.Players) < MinSeats || len(s.Players) > MaxSeats {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, ErrInvalidSeatCount)
	}
	if s.CurrentPlayerIndex < 0 || s.CurrentPlayerIndex >= len(s.Players) {
		return nil, fmt.Errorf("%w: current player index %d out of range", ErrInvalidSnapshot, s.CurrentPlayerIndex)
	}

	g := &GameState{
		ID:                 s.GameID,
		CurrentPlayerIndex: s.CurrentPlayerIndex,
		Turn:               s.Turn,
		GameOver:           s.GameOver,
		Player2AI:          s.IsPlayer2AI,
		PendingSummary:     s.PendingTurnSummary.Clone(),
		ActiveScreen:       s.ActiveScreen,
		ActiveDashboard:    s.ActiveDashboard,
		ChoiceContext:      s.ChoiceContext.Stripped(),
	}
	if s.WinnerID != nil {
		g.WinnerID = *s.WinnerID
	}
	g.Players = make([]*Player, len(s.Players))
	for i := range s.Players {
		g.Players[i] = s.Players[i].Player.Clone()
	}
	if s.Log != nil {
		g.Log = make([]LogEntry, len(s.Log))
		copy(g.Log, s.Log)
	}
	return g, nil
}
