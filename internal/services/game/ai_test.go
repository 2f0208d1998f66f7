package game

import (
	"github.com/mcoot/fastlane/internal/model"
)

// scriptedStrategy decides with a test-supplied function
type scriptedStrategy struct {
	decide func(g *model.GameState, p *model.Player) (model.Action, bool)
	calls  int
}

func (s *scriptedStrategy) Control() model.SeatControl { return model.ControlHeuristic }

func (s *scriptedStrategy) Decide(g *model.GameState, p *model.Player) (model.Action, bool) {
	s.calls++
	return s.decide(g, p)
}

func (s *ControllerSuite) withStrategy(decide func(g *model.GameState, p *model.Player) (model.Action, bool)) *scriptedStrategy {
	strategy := &scriptedStrategy{decide: decide}
	s.controller = s.newController(strategy)
	return strategy
}

// handOverToAI ends the human seat's turn and acknowledges it
func (s *ControllerSuite) handOverToAI() {
	s.Require().True(s.controller.EndTurn())
	s.Require().True(s.controller.AcknowledgeSummary())
	s.Require().True(s.controller.State().CurrentIsAI())
}

func (s *ControllerSuite) aiLog() []string {
	var out []string
	for _, entry := range s.controller.State().Log {
		if entry.Category == model.LogAI {
			out = append(out, entry.Message)
		}
	}
	return out
}

func (s *ControllerSuite) TestAITurnStartsThinkingAndSchedules() {
	s.newVersusAI()

	s.handOverToAI()

	g := s.controller.State()
	s.True(g.AIThinking)
	s.Equal(1, s.queue.Len())
	s.Contains(s.events, model.EventAIThinkingStart)
	s.NotContains(s.events, model.EventAIThinkingEnd)
}

func (s *ControllerSuite) TestHumanCannotActDuringAITurn() {
	s.newVersusAI()
	s.handOverToAI()

	s.assertRejected(func() bool { return s.controller.Travel(model.LocationBank) }, "It is Computer's turn")
	s.assertRejected(func() bool { return s.controller.EndTurn() }, "It is Computer's turn")
}

func (s *ControllerSuite) TestAIPassEndsTurnAndAdvances() {
	strategy := s.withStrategy(func(*model.GameState, *model.Player) (model.Action, bool) {
		return model.PassAction{}, true
	})
	s.newVersusAI()
	s.handOverToAI()
	var summaries []*model.TurnSummary
	s.bus.Subscribe(model.EventTurnEnded, func(_ model.EventType, payload any) {
		summaries = append(summaries, payload.(model.TurnEndedPayload).Summary)
	})

	s.runAI()

	g := s.controller.State()
	s.Equal(1, strategy.calls)
	s.Equal(0, g.CurrentPlayerIndex)
	s.Equal(2, g.Turn)
	s.False(g.AIThinking)
	s.Nil(g.PendingSummary)
	s.Require().Len(summaries, 1)
	s.Equal("Computer", summaries[0].PlayerName)
	s.Contains(s.aiLog(), "Computer is done for the day")
	s.Contains(s.events, model.EventAIThinkingEnd)
}

func (s *ControllerSuite) TestAINoDecisionEndsTurn() {
	s.withStrategy(func(*model.GameState, *model.Player) (model.Action, bool) {
		return nil, false
	})
	s.newVersusAI()
	s.handOverToAI()

	s.runAI()

	s.Equal(0, s.controller.State().CurrentPlayerIndex)
}

func (s *ControllerSuite) TestAIFailedActionEndsTurn() {
	s.withStrategy(func(*model.GameState, *model.Player) (model.Action, bool) {
		return model.DepositAction{Amount: 10}, true
	})
	s.newVersusAI()
	s.handOverToAI()

	s.runAI()

	g := s.controller.State()
	s.Equal(0, g.CurrentPlayerIndex)
	s.Contains(s.aiLog(), "Computer decides to deposit $10")
}

func (s *ControllerSuite) TestAIStepCapStopsLoop() {
	s.rules.MaxAIStepsPerTurn = 3
	strategy := s.withStrategy(func(_ *model.GameState, p *model.Player) (model.Action, bool) {
		if p.Location == model.LocationHome {
			return model.TravelAction{Destination: model.LocationBank}, true
		}
		return model.TravelAction{Destination: model.LocationHome}, true
	})
	s.newVersusAI()
	s.handOverToAI()

	s.runAI()

	s.Equal(3, strategy.calls)
	s.Contains(s.aiLog(), "Computer stops after 3 decisions")
	s.Equal(0, s.controller.State().CurrentPlayerIndex)
}

func (s *ControllerSuite) TestAIDecisionsArePaced() {
	s.newVersusAI()
	s.handOverToAI()
	g := s.controller.State()

	s.clock.Advance(s.rules.AIDelay / 2)
	s.Equal(0, s.queue.RunDue())
	s.Equal(model.LocationHome, g.Players[1].Location)

	s.clock.Advance(s.rules.AIDelay / 2)
	s.Equal(1, s.queue.RunDue())
	s.Equal(model.LocationWorkplace, g.Players[1].Location)
}

func (s *ControllerSuite) TestStaleAITaskIgnoredAfterNewGame() {
	s.newVersusAI()
	s.handOverToAI()

	g := s.newSolo()
	logLen := len(g.Log)
	s.runAI()

	s.Len(g.Log, logLen)
	s.Equal(24, g.Players[0].Time)
	s.Equal(model.LocationHome, g.Players[0].Location)
}

func (s *ControllerSuite) TestAIWinStopsLoop() {
	s.withStrategy(func(*model.GameState, *model.Player) (model.Action, bool) {
		return model.RelaxAction{}, true
	})
	s.newVersusAI()
	g := s.controller.State()
	s.nearlyWinning(g.Players[1])
	g.Players[1].Happiness = 76
	s.handOverToAI()

	s.runAI()

	s.True(g.GameOver)
	s.Equal(g.Players[1].ID, g.WinnerID)
	s.False(g.AIThinking)
	s.Equal(1, g.CurrentPlayerIndex)
	s.Zero(s.queue.Len())
}

func (s *ControllerSuite) TestHeuristicAIPlaysFullTurn() {
	s.newVersusAI()
	s.handOverToAI()

	s.runAI()

	g := s.controller.State()
	ai := g.Players[1]
	s.Equal(0, g.CurrentPlayerIndex)
	s.Equal(model.JobID("janitor"), ai.JobID)
	s.Equal(model.CourseID("basic_skills"), ai.EnrolledCourse)
	s.Equal(model.LocationHome, ai.Location)
	s.Equal(24, ai.Time)
	s.False(g.AIThinking)
}
