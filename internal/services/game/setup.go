package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mcoot/fastlane/internal/model"
)

// Setup describes a new session
type Setup struct {
	PlayerNames []string
	// Player2AI hands the second seat to the computer
	Player2AI bool
}

// New builds the opening state for a session. An unsupported seat count is an
// invariant violation and is returned as an error.
func New(setup Setup, rules model.Rules) (*model.GameState, error) {
	seats := len(setup.PlayerNames)
	if seats < model.MinSeats || seats > model.MaxSeats {
		return nil, fmt.Errorf("new game with %d seats: %w", seats, model.ErrInvalidSeatCount)
	}
	if setup.Player2AI && seats < 2 {
		return nil, fmt.Errorf("new game: %w", model.ErrInvalidSeatSetup)
	}

	g := &model.GameState{
		ID:           model.GameID(uuid.NewString()),
		Players:      make([]*model.Player, seats),
		Turn:         1,
		Player2AI:    setup.Player2AI,
		ActiveScreen: "game",
	}
	for i, name := range setup.PlayerNames {
		name = strings.TrimSpace(name)
		if name == "" {
			name = defaultSeatName(i, setup.Player2AI)
		}
		g.Players[i] = &model.Player{
			ID:        model.PlayerID(uuid.NewString()),
			Name:      name,
			Cash:      rules.StartingCash,
			Happiness: rules.StartingHappiness,
			Hunger:    rules.StartingHunger,
			Time:      rules.HoursPerTurn,
			Location:  model.LocationHome,
		}
	}
	return g, nil
}

// MustNew is like New but panics on error. For fixtures only.
func MustNew(setup Setup, rules model.Rules) *model.GameState {
	g, err := New(setup, rules)
	if err != nil {
		panic(err)
	}
	return g
}

func defaultSeatName(index int, player2AI bool) string {
	if index == 1 && player2AI {
		return "Computer"
	}
	return fmt.Sprintf("Player %d", index+1)
}
