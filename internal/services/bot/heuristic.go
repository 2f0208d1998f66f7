package bot

import (
	"log/slog"

	"github.com/mcoot/fastlane/internal/catalog"
	"github.com/mcoot/fastlane/internal/model"
)

// HeuristicStrategy is a greedy priority ladder. It keeps no memory between
// calls: every decision is made from the current state alone, and the first
// rule that applies wins.
type HeuristicStrategy struct {
	catalog *catalog.Catalog
	rules   model.Rules
	logger  *slog.Logger
}

// Ensure HeuristicStrategy implements Strategy
var _ Strategy = (*HeuristicStrategy)(nil)

// NewHeuristicStrategy creates a new HeuristicStrategy
func NewHeuristicStrategy(cat *catalog.Catalog, rules model.Rules, logger *slog.Logger) *HeuristicStrategy {
	return &HeuristicStrategy{
		catalog: cat,
		rules:   rules,
		logger:  logger.With(slog.String("component", "bot-heuristic")),
	}
}

func (h *HeuristicStrategy) Control() model.SeatControl { return model.ControlHeuristic }

type rule struct {
	name   string
	decide func(g *model.GameState, p *model.Player) (model.Action, bool)
}

// Decide returns the action proposed by the highest-priority applicable rule
func (h *HeuristicStrategy) Decide(g *model.GameState, p *model.Player) (model.Action, bool) {
	ladder := []rule{
		{"feed", h.feed},
		{"pay-debt", h.payDebt},
		{"earn", h.earn},
		{"learn", h.learn},
		{"cheer-up", h.cheerUp},
		{"buy-car", h.buyCar},
		{"fallback", h.fallback},
	}
	for _, r := range ladder {
		if action, ok := r.decide(g, p); ok {
			h.logger.Debug("bot decided",
				slog.String("player_id", string(p.ID)),
				slog.String("rule", r.name),
				slog.String("action", action.String()))
			return action, true
		}
	}
	return nil, false
}

// travelCost is the time needed to get to dest, zero when already there
func (h *HeuristicStrategy) travelCost(p *model.Player, dest model.Location) int {
	if p.Location == dest {
		return 0
	}
	return h.rules.TravelHours(p)
}

// goOrDo returns action when the player is at dest, otherwise a trip there
func goOrDo(p *model.Player, dest model.Location, action model.Action) model.Action {
	if p.Location == dest {
		return action
	}
	return model.TravelAction{Destination: dest}
}

func (h *HeuristicStrategy) feed(_ *model.GameState, p *model.Player) (model.Action, bool) {
	if p.Hunger <= h.rules.AIHungerThreshold {
		return nil, false
	}
	var best model.Item
	found := false
	for _, it := range h.catalog.FoodItems() {
		if it.Cost > p.Cash {
			continue
		}
		if !found || it.HungerReduction > best.HungerReduction {
			best = it
			found = true
		}
	}
	if !found {
		return nil, false
	}
	if p.Time < h.travelCost(p, best.Location) {
		return nil, false
	}
	return goOrDo(p, best.Location, model.BuyItemAction{Item: best.Name}), true
}

func (h *HeuristicStrategy) payDebt(_ *model.GameState, p *model.Player) (model.Action, bool) {
	if p.Loan <= h.rules.AILoanThreshold || p.Cash <= 0 {
		return nil, false
	}
	if p.Time < h.travelCost(p, model.LocationBank) {
		return nil, false
	}
	return goOrDo(p, model.LocationBank, model.RepayLoanAction{Amount: min(p.Loan, p.Cash)}), true
}

func (h *HeuristicStrategy) earn(_ *model.GameState, p *model.Player) (model.Action, bool) {
	if p.Cash >= h.rules.AIWealthThreshold {
		return nil, false
	}
	travel := h.travelCost(p, model.LocationWorkplace)

	best, qualifies := h.catalog.BestQualifyingJob(p.EducationLevel, p.CareerLevel)
	current, employed := h.catalog.Job(p.JobID)
	if qualifies && (!employed || best.Level > current.Level) {
		if p.Time < travel+h.rules.ApplyHours+best.ShiftHours {
			return nil, false
		}
		return goOrDo(p, model.LocationWorkplace, model.ApplyForJobAction{JobID: best.ID}), true
	}
	if !employed || p.Time < travel+current.ShiftHours {
		return nil, false
	}
	return goOrDo(p, model.LocationWorkplace, model.WorkShiftAction{}), true
}

func (h *HeuristicStrategy) learn(_ *model.GameState, p *model.Player) (model.Action, bool) {
	if p.EducationLevel >= h.catalog.MaxEducationLevel() {
		return nil, false
	}
	travel := h.travelCost(p, model.LocationSchool)

	if p.IsEnrolled() {
		course, ok := h.catalog.Course(p.EnrolledCourse)
		if !ok || p.Time < travel+course.StudyHours {
			return nil, false
		}
		return goOrDo(p, model.LocationSchool, model.StudyAction{}), true
	}

	next, ok := h.catalog.CourseForLevel(p.EducationLevel + 1)
	if !ok || p.Cash < next.Cost || p.Time < travel+h.rules.EnrollHours {
		return nil, false
	}
	return goOrDo(p, model.LocationSchool, model.TakeCourseAction{CourseID: next.ID}), true
}

func (h *HeuristicStrategy) cheerUp(_ *model.GameState, p *model.Player) (model.Action, bool) {
	if p.Happiness >= h.rules.AIHappinessThreshold {
		return nil, false
	}
	var best model.Item
	found := false
	for _, it := range h.catalog.ItemsAt(model.LocationMall) {
		if it.Cost > p.Cash || it.HappinessBoost <= 0 || (it.Kept() && p.Owns(it.Name)) {
			continue
		}
		if !found || it.Cost > best.Cost {
			best = it
			found = true
		}
	}
	if !found || p.Time < h.travelCost(p, model.LocationMall) {
		return nil, false
	}
	return goOrDo(p, model.LocationMall, model.BuyItemAction{Item: best.Name}), true
}

func (h *HeuristicStrategy) buyCar(_ *model.GameState, p *model.Player) (model.Action, bool) {
	if p.HasCar || p.Cash < h.rules.CarPrice+h.rules.AICarReserve {
		return nil, false
	}
	if p.Time < h.travelCost(p, model.LocationDealership)+h.rules.CarPurchaseHours {
		return nil, false
	}
	return goOrDo(p, model.LocationDealership, model.BuyCarAction{}), true
}

func (h *HeuristicStrategy) fallback(_ *model.GameState, p *model.Player) (model.Action, bool) {
	job, employed := h.catalog.Job(p.JobID)
	if p.Location == model.LocationWorkplace && employed && p.Time >= job.ShiftHours {
		return model.WorkShiftAction{}, true
	}
	return model.PassAction{}, true
}
