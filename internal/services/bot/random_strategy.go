package bot

import (
	"github.com/mcoot/fastlane/internal/catalog"
	"github.com/mcoot/fastlane/internal/dependencies/random"
	"github.com/mcoot/fastlane/internal/model"
)

// RandomStrategy picks uniformly among the actions the player can currently
// afford, including passing. It never proposes an action the engine would
// reject.
type RandomStrategy struct {
	catalog *catalog.Catalog
	rules   model.Rules
	random  random.Random
}

// Ensure RandomStrategy implements Strategy
var _ Strategy = (*RandomStrategy)(nil)

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(cat *catalog.Catalog, rules model.Rules, rnd random.Random) *RandomStrategy {
	return &RandomStrategy{catalog: cat, rules: rules, random: rnd}
}

func (s *RandomStrategy) Control() model.SeatControl { return model.ControlRandom }

// Decide returns a random feasible action. Out of time, the seat is done.
func (s *RandomStrategy) Decide(_ *model.GameState, p *model.Player) (model.Action, bool) {
	if p.Time <= 0 {
		return nil, false
	}
	candidates := s.candidates(p)
	return candidates[s.random.Intn(len(candidates))], true
}

// candidates lists feasible actions, always ending with a pass
func (s *RandomStrategy) candidates(p *model.Player) []model.Action {
	var out []model.Action

	if p.Time >= s.rules.TravelHours(p) {
		for _, l := range s.catalog.Locations {
			if l.ID != p.Location {
				out = append(out, model.TravelAction{Destination: l.ID})
			}
		}
	}

	switch p.Location {
	case model.LocationHome:
		if p.Time >= s.rules.RelaxHours {
			out = append(out, model.RelaxAction{})
		}
	case model.LocationWorkplace:
		if job, ok := s.catalog.Job(p.JobID); ok && p.Time >= job.ShiftHours {
			out = append(out, model.WorkShiftAction{})
		}
		if best, ok := s.catalog.BestQualifyingJob(p.EducationLevel, p.CareerLevel); ok &&
			best.ID != p.JobID && p.Time >= s.rules.ApplyHours {
			out = append(out, model.ApplyForJobAction{JobID: best.ID})
		}
	case model.LocationSchool:
		if course, ok := s.catalog.Course(p.EnrolledCourse); ok && p.IsEnrolled() && p.Time >= course.StudyHours {
			out = append(out, model.StudyAction{})
		}
		if next, ok := s.catalog.CourseForLevel(p.EducationLevel + 1); ok && !p.IsEnrolled() &&
			p.Cash >= next.Cost && p.Time >= s.rules.EnrollHours {
			out = append(out, model.TakeCourseAction{CourseID: next.ID})
		}
	case model.LocationBank:
		if p.Cash > 0 {
			out = append(out, model.DepositAction{Amount: p.Cash})
		}
		if p.Loan > 0 && p.Cash > 0 {
			out = append(out, model.RepayLoanAction{Amount: min(p.Loan, p.Cash)})
		}
	case model.LocationDealership:
		if !p.HasCar && p.Cash >= s.rules.CarPrice && p.Time >= s.rules.CarPurchaseHours {
			out = append(out, model.BuyCarAction{})
		}
	}

	for _, it := range s.catalog.ItemsAt(p.Location) {
		if it.Cost <= p.Cash && !(it.Kept() && p.Owns(it.Name)) {
			out = append(out, model.BuyItemAction{Item: it.Name})
		}
	}

	return append(out, model.PassAction{})
}
