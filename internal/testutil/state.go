package testutil

import (
	"time"

	"github.com/mcoot/fastlane/internal/model"
)

// StateWithoutLog captures every field of the game except the append-only
// log, for asserting that a rejected action changed nothing else.
func StateWithoutLog(g *model.GameState) *model.Snapshot {
	s := model.NewSnapshot(g, time.Time{})
	s.Log = nil
	return s
}

// NewPlayer returns a player with the default starting meters at home
func NewPlayer(id model.PlayerID, name string) *model.Player {
	rules := model.DefaultRules()
	return &model.Player{
		ID:        id,
		Name:      name,
		Cash:      rules.StartingCash,
		Happiness: rules.StartingHappiness,
		Hunger:    rules.StartingHunger,
		Time:      rules.HoursPerTurn,
		Location:  model.LocationHome,
	}
}

// NewGame wraps the given players in a game on turn 1
func NewGame(players ...*model.Player) *model.GameState {
	return &model.GameState{ID: "game-1", Players: players, Turn: 1}
}
