package game

import (
	"encoding/json"
	"strings"

	"github.com/mcoot/fastlane/internal/model"
)

func (s *ControllerSuite) TestScenarioWorkAwayFromWorkplace() {
	s.newSolo()

	s.assertRejected(func() bool { return s.controller.WorkShift() }, "must be at the workplace")
}

func (s *ControllerSuite) TestScenarioRepayWholeLoan() {
	s.newSolo()
	p := s.current()
	p.Location = model.LocationBank
	p.Loan = 2500
	p.Cash = 3000

	s.Require().True(s.controller.RepayLoan(2500))

	s.Zero(p.Loan)
	s.Equal(500, p.Cash)
}

func (s *ControllerSuite) TestScenarioWalkHomeWithoutTime() {
	s.newSolo()
	p := s.current()
	p.Location = model.LocationMall
	p.Time = 1

	s.Require().True(s.controller.Travel(model.LocationHome))
	s.Zero(p.Time)
	s.Equal(1, p.TimeDeficit)

	s.Require().True(s.controller.EndTurn())
	s.Equal(23, p.Time)
	s.Zero(p.TimeDeficit)
}

func (s *ControllerSuite) TestScenarioHungryAIShopsForFood() {
	s.newVersusAI()
	g := s.controller.State()
	ai := g.Players[1]
	ai.Hunger = 35
	ai.Cash = 100
	ai.Time = 2

	s.handOverToAI()
	s.runAI()

	s.Equal(100-30-s.rules.DailyExpense, ai.Cash)
	s.Equal(5+s.rules.HungerPerTurn, ai.Hunger)

	var decisions []string
	for _, msg := range s.aiLog() {
		if strings.Contains(msg, "decides to") {
			decisions = append(decisions, msg)
		}
	}
	s.Equal([]string{
		"Computer decides to travel to market",
		"Computer decides to buy Groceries",
	}, decisions)
	s.Equal(0, g.CurrentPlayerIndex)
}

func (s *ControllerSuite) TestScenarioLoanOverCap() {
	s.newSolo()
	p := s.current()
	p.Location = model.LocationBank
	p.Loan = 4000

	s.assertRejected(func() bool { return s.controller.TakeLoan(1500) }, "exceed")
	s.Equal(4000, p.Loan)
}

func (s *ControllerSuite) TestScenarioSaveRoundTrip() {
	s.newVersusAI()
	g := s.controller.State()
	p := g.Players[0]
	p.Cash = 900
	p.Location = model.LocationMall
	s.Require().True(s.controller.BuyItem("Refrigerator"))
	s.Require().True(s.controller.Travel(model.LocationHome))
	s.Require().True(s.controller.EndTurn())
	g.ActiveDashboard = "bank"
	g.ChoiceContext = &model.ChoiceContext{
		Title: "Pick one",
		Options: []model.ChoiceOption{
			{Label: "Yes", ActionID: "confirm", OnSelect: func() {}},
			{Label: "No", OnSelect: func() {}},
		},
	}

	snap, err := s.controller.Snapshot()
	s.Require().NoError(err)
	data, err := json.Marshal(snap)
	s.Require().NoError(err)
	var decoded model.Snapshot
	s.Require().NoError(json.Unmarshal(data, &decoded))
	restored, err := decoded.Restore()
	s.Require().NoError(err)

	s.Equal(&model.ChoiceContext{
		Title: "Pick one",
		Options: []model.ChoiceOption{
			{Label: "Yes", ActionID: "confirm"},
			{Label: "No", ActionID: model.UnboundActionID},
		},
	}, restored.ChoiceContext)
	s.Equal(s.clock.Now(), decoded.SavedAt)

	g.ChoiceContext = g.ChoiceContext.Stripped()
	s.Equal(g, restored)
	s.NotSame(g.Players[0], restored.Players[0])
	s.False(restored.AIThinking)
	s.True(restored.IsAISeat(1))
}
