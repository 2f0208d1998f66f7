package game

import (
	"github.com/mcoot/fastlane/internal/model"
	"github.com/mcoot/fastlane/internal/services/bot"
)

// PlayerController decides for a seat. Human seats never decide on their own;
// their actions arrive through the controller's action methods.
type PlayerController interface {
	Control() model.SeatControl
	NextAction(g *model.GameState, p *model.Player) (model.Action, bool)
}

// HumanController is the controller for seats driven by a person
type HumanController struct{}

func (HumanController) Control() model.SeatControl { return model.ControlHuman }

func (HumanController) NextAction(*model.GameState, *model.Player) (model.Action, bool) {
	return nil, false
}

// AIController delegates decisions to a bot strategy
type AIController struct {
	Strategy bot.Strategy
}

func (a AIController) Control() model.SeatControl { return a.Strategy.Control() }

func (a AIController) NextAction(g *model.GameState, p *model.Player) (model.Action, bool) {
	return a.Strategy.Decide(g, p)
}
