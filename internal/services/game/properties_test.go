package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/mcoot/fastlane/internal/model"
	"github.com/mcoot/fastlane/internal/testutil"
)

func (s *ControllerSuite) randomAction(rng *rand.Rand) model.Action {
	locations := []model.Location{
		model.LocationHome, model.LocationWorkplace, model.LocationSchool, model.LocationBank,
		model.LocationMall, model.LocationMarket, model.LocationDealership,
	}
	amount := rng.IntN(3000) - 100
	switch rng.IntN(13) {
	case 0, 1, 2:
		return model.TravelAction{Destination: locations[rng.IntN(len(locations))]}
	case 3:
		return model.WorkShiftAction{}
	case 4:
		return model.ApplyForJobAction{JobID: s.catalog.Jobs[rng.IntN(len(s.catalog.Jobs))].ID}
	case 5:
		return model.TakeCourseAction{CourseID: s.catalog.Courses[rng.IntN(len(s.catalog.Courses))].ID}
	case 6:
		return model.StudyAction{}
	case 7:
		return model.RelaxAction{}
	case 8:
		return model.BuyItemAction{Item: s.catalog.Items[rng.IntN(len(s.catalog.Items))].Name}
	case 9:
		return model.DepositAction{Amount: amount}
	case 10:
		return model.WithdrawAction{Amount: amount}
	case 11:
		if rng.IntN(2) == 0 {
			return model.TakeLoanAction{Amount: amount}
		}
		return model.RepayLoanAction{Amount: amount}
	default:
		if rng.IntN(4) == 0 {
			return model.EndTurnAction{}
		}
		return model.BuyCarAction{}
	}
}

func (s *ControllerSuite) assertInvariants(g *model.GameState, seen map[model.PlayerID]*model.Player, label string) {
	for _, p := range g.Players {
		s.GreaterOrEqual(p.Happiness, model.MeterMin, label)
		s.LessOrEqual(p.Happiness, model.MeterMax, label)
		s.GreaterOrEqual(p.Hunger, model.MeterMin, label)
		s.LessOrEqual(p.Hunger, model.MeterMax, label)
		s.GreaterOrEqual(p.Cash, 0, label)
		s.GreaterOrEqual(p.Savings, 0, label)
		s.GreaterOrEqual(p.Loan, 0, label)
		s.GreaterOrEqual(p.Time, 0, label)
		s.LessOrEqual(p.Time, s.rules.HoursPerTurn, label)
		if prev, ok := seen[p.ID]; ok {
			s.GreaterOrEqual(p.EducationLevel, prev.EducationLevel, label)
			s.GreaterOrEqual(p.CareerLevel, prev.CareerLevel, label)
		}
		seen[p.ID] = p.Clone()
	}
}

func (s *ControllerSuite) TestRandomActionsKeepInvariants() {
	for seed := uint64(1); seed <= 5; seed++ {
		rng := rand.New(rand.NewPCG(seed, seed*31))
		s.newSolo()
		seen := map[model.PlayerID]*model.Player{}

		for step := 0; step < 400; step++ {
			g := s.controller.State()
			if g.GameOver {
				s.newSolo()
				seen = map[model.PlayerID]*model.Player{}
				continue
			}
			if g.PendingSummary != nil {
				s.Require().True(s.controller.AcknowledgeSummary())
				continue
			}

			action := s.randomAction(rng)
			label := fmt.Sprintf("seed %d step %d: %s", seed, step, action)
			before := testutil.StateWithoutLog(g)
			loanBefore := g.CurrentPlayer().Loan

			ok := s.controller.Perform(action)

			if !ok {
				s.Equal(before, testutil.StateWithoutLog(g), label)
				s.Equal(model.LogError, s.lastLog().Category, label)
			}
			if _, isLoan := action.(model.TakeLoanAction); isLoan && ok {
				s.LessOrEqual(g.CurrentPlayer().Loan, s.rules.LoanCap, label)
				s.Greater(g.CurrentPlayer().Loan, loanBefore, label)
			}
			s.assertInvariants(g, seen, label)
		}
	}
}
