package bot

import (
	"log/slog"

	"github.com/mcoot/fastlane/internal/catalog"
	"github.com/mcoot/fastlane/internal/dependencies/random"
	"github.com/mcoot/fastlane/internal/model"
)

// Strategy proposes the next action for an automated seat. Returning false
// means the seat has nothing useful left to do this turn.
type Strategy interface {
	Control() model.SeatControl
	Decide(g *model.GameState, p *model.Player) (model.Action, bool)
}

// Strategies returns every available strategy keyed by its seat control
func Strategies(cat *catalog.Catalog, rules model.Rules, rnd random.Random, logger *slog.Logger) map[model.SeatControl]Strategy {
	return map[model.SeatControl]Strategy{
		model.ControlHeuristic: NewHeuristicStrategy(cat, rules, logger),
		model.ControlRandom:    NewRandomStrategy(cat, rules, rnd),
	}
}
