package turn

import (
	"log/slog"

	"github.com/mcoot/fastlane/internal/dependencies/scheduler"
	"github.com/mcoot/fastlane/internal/model"
	"github.com/mcoot/fastlane/internal/services/economy"
	"github.com/mcoot/fastlane/internal/services/journal"
)

// AIRunner drives an AI seat's turn for the given game
type AIRunner func(g *model.GameState)

// Service handles turn boundaries: weekly decay, the turn summary and
// advancing to the next seat.
type Service struct {
	economy   *economy.Service
	rules     model.Rules
	journal   *journal.Journal
	scheduler scheduler.Scheduler
	aiRunner  AIRunner
	logger    *slog.Logger
}

// New creates a new turn Service
func New(econ *economy.Service, rules model.Rules, j *journal.Journal, sched scheduler.Scheduler, logger *slog.Logger) *Service {
	return &Service{
		economy:   econ,
		rules:     rules,
		journal:   j,
		scheduler: sched,
		logger:    logger.With(slog.String("component", "turn")),
	}
}

// SetAIRunner sets the callback scheduled when an AI seat becomes current
func (s *Service) SetAIRunner(runner AIRunner) {
	s.aiRunner = runner
}

// EndTurn closes the current seat's turn. The steps run in a fixed order:
// later steps read values earlier ones wrote. The caller publishes the
// state change once it has run its own checks.
func (s *Service) EndTurn(g *model.GameState) *model.TurnSummary {
	p := g.CurrentPlayer()
	summary := &model.TurnSummary{
		PlayerID:   p.ID,
		PlayerName: p.Name,
		Turn:       g.Turn,
	}

	if p.Weekly.Income != 0 {
		summary.Add(model.SummaryIncome, "Wages", p.Weekly.Income)
	}
	if p.Weekly.Expenses != 0 {
		summary.Add(model.SummaryExpense, "Purchases", -p.Weekly.Expenses)
	}

	// Living costs are not gated like other spends: a shortfall is waived
	if s.economy.Spend(p, s.rules.DailyExpense) {
		p.Weekly.Expenses += s.rules.DailyExpense
		summary.Add(model.SummaryExpense, "Living expenses", -s.rules.DailyExpense)
	}

	if p.Loan > 0 {
		interest := s.economy.LoanInterest(p.Loan)
		p.Loan += interest
		summary.Add(model.SummaryInterest, "Loan interest", -interest)
	}

	hunger := s.rules.HungerPerTurn
	if p.HasEffect(model.EffectHungerMitigation) {
		hunger = s.rules.HungerPerTurnWithFridge
	}
	p.AdjustHunger(hunger)
	if p.Hunger > s.rules.HungerPenaltyThreshold {
		applied := p.AdjustHappiness(-s.rules.HungerHappinessPenalty)
		summary.Add(model.SummaryHungerPenalty, "Hungry", applied)
	}

	recovery := s.rules.HappinessRecovery
	if p.HasEffect(model.EffectComfort) {
		recovery += s.rules.ComfortBonus
	}
	if applied := p.AdjustHappiness(recovery); applied != 0 {
		summary.Add(model.SummaryRecovery, "Rest", applied)
	}

	for _, degree := range p.Weekly.Graduations {
		summary.Add(model.SummaryGraduation, "Graduated: "+degree, 0)
	}

	summary.Totals = model.SummaryTotals{
		CashDelta:      p.Weekly.Income - p.Weekly.Expenses,
		HappinessDelta: p.Weekly.HappinessChange,
	}
	p.ResetWeekly()

	p.Time = max(s.rules.HoursPerTurn-p.TimeDeficit, 0)
	p.TimeDeficit = 0

	p.Location = model.LocationHome
	g.ActiveDashboard = ""
	g.ChoiceContext = nil

	g.PendingSummary = summary

	s.logger.Debug("turn ended",
		slog.String("game_id", string(g.ID)),
		slog.String("player_id", string(p.ID)),
		slog.Int("turn", g.Turn),
		slog.Int("cash_delta", summary.Totals.CashDelta))
	s.journal.Record(g, model.LogTurn, "%s ended turn %d", p.Name, g.Turn)
	s.journal.Publish(model.EventTurnEnded, model.TurnEndedPayload{Summary: summary})
	s.journal.PlayerChangedAll(g, p,
		model.EventTimeChanged,
		model.EventLocationChanged,
		model.EventCashChanged,
		model.EventLoanChanged,
		model.EventHungerChanged,
		model.EventHappinessChanged)
	return summary
}

// AdvanceTurn hands control to the next seat, incrementing the turn counter
// when the seat order wraps. An AI seat gets its turn loop scheduled.
func (s *Service) AdvanceTurn(g *model.GameState) {
	previous := g.CurrentPlayer()
	g.PendingSummary = nil
	g.CurrentPlayerIndex = (g.CurrentPlayerIndex + 1) % len(g.Players)
	if g.CurrentPlayerIndex == 0 {
		g.Turn++
	}
	current := g.CurrentPlayer()

	s.journal.Record(g, model.LogTurn, "Turn %d: %s's move", g.Turn, current.Name)
	s.journal.Publish(model.EventPlayerChanged, model.PlayerChangedPayload{
		PreviousPlayer: previous,
		CurrentPlayer:  current,
		GameState:      g,
	})

	if g.CurrentIsAI() && !g.GameOver {
		g.AIThinking = true
		s.journal.Publish(model.EventAIThinkingStart, nil)
		s.ScheduleAI(g)
	}
	s.journal.StateChanged(g)
}

// ScheduleAI queues the AI runner for the game after the pacing delay
func (s *Service) ScheduleAI(g *model.GameState) {
	if s.aiRunner == nil {
		s.logger.Warn("no ai runner set, ai seat will not move", slog.String("game_id", string(g.ID)))
		return
	}
	runner := s.aiRunner
	s.scheduler.Schedule("ai-turn", s.rules.AIDelay, func() { runner(g) })
}
