package game

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/fastlane/internal/catalog"
	"github.com/mcoot/fastlane/internal/dependencies/clock"
	"github.com/mcoot/fastlane/internal/dependencies/scheduler"
	"github.com/mcoot/fastlane/internal/model"
	"github.com/mcoot/fastlane/internal/services/bot"
	"github.com/mcoot/fastlane/internal/services/economy"
	"github.com/mcoot/fastlane/internal/services/journal"
	"github.com/mcoot/fastlane/internal/services/turn"
)

// Controller owns the session's GameState. Every mutation goes through its
// action methods, which validate first and either apply everything or
// nothing. It is not safe for concurrent use; hosts serialize calls.
type Controller struct {
	catalog   *catalog.Catalog
	rules     model.Rules
	economy   *economy.Service
	turns     *turn.Service
	journal   *journal.Journal
	scheduler scheduler.Scheduler
	clock     clock.Clock
	logger    *slog.Logger

	human PlayerController
	ai    PlayerController

	state *model.GameState
	// aiActing is set while the AI loop dispatches, letting actions through for an AI seat
	aiActing bool
	aiSteps  int
}

// NewController creates a new game Controller and registers it as the
// turn service's AI runner
func NewController(
	cat *catalog.Catalog,
	rules model.Rules,
	econ *economy.Service,
	turns *turn.Service,
	strategy bot.Strategy,
	j *journal.Journal,
	sched scheduler.Scheduler,
	clk clock.Clock,
	logger *slog.Logger,
) *Controller {
	c := &Controller{
		catalog:   cat,
		rules:     rules,
		economy:   econ,
		turns:     turns,
		journal:   j,
		scheduler: sched,
		clock:     clk,
		logger:    logger.With(slog.String("component", "game")),
		human:     HumanController{},
		ai:        AIController{Strategy: strategy},
	}
	turns.SetAIRunner(c.ProcessAITurn)
	return c
}

// NewGame replaces any current session with a fresh one
func (c *Controller) NewGame(setup Setup) (*model.GameState, error) {
	g, err := New(setup, c.rules)
	if err != nil {
		return nil, err
	}
	c.install(g)

	c.logger.Info("game created",
		slog.String("game_id", string(g.ID)),
		slog.Int("seats", len(g.Players)),
		slog.Any("controls", c.SeatControls()))
	c.journal.Record(g, model.LogSystem, "New game with %d seat(s). %s moves first.", len(g.Players), g.CurrentPlayer().Name)
	c.journal.StateChanged(g)
	return g, nil
}

// Restart replaces the session with a fresh one using the same seats
func (c *Controller) Restart() (*model.GameState, error) {
	if c.state == nil {
		return nil, model.ErrNoGameInProgress
	}
	setup := Setup{Player2AI: c.state.Player2AI}
	for _, p := range c.state.Players {
		setup.PlayerNames = append(setup.PlayerNames, p.Name)
	}
	return c.NewGame(setup)
}

// Load replaces the session with one restored from a snapshot. An AI seat
// that was mid-turn resumes its loop.
func (c *Controller) Load(snap *model.Snapshot) error {
	g, err := snap.Restore()
	if err != nil {
		return fmt.Errorf("load game: %w", err)
	}
	c.install(g)
	c.logger.Info("game loaded",
		slog.String("game_id", string(g.ID)),
		slog.Int("turn", g.Turn))

	if g.CurrentIsAI() && !g.GameOver {
		if g.PendingSummary != nil {
			c.turns.AdvanceTurn(g)
		} else {
			c.startThinking(g)
		}
	}
	c.journal.StateChanged(g)
	return nil
}

// State returns the live game state, or nil before a game exists. Callers
// must treat it as read-only.
func (c *Controller) State() *model.GameState {
	return c.state
}

// Snapshot captures the current game for persistence
func (c *Controller) Snapshot() (*model.Snapshot, error) {
	if c.state == nil {
		return nil, model.ErrNoGameInProgress
	}
	return model.NewSnapshot(c.state, c.clock.Now()), nil
}

// Catalog returns the lookup tables the game is played with
func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

// Rules returns the rule constants the game is played with
func (c *Controller) Rules() model.Rules {
	return c.rules
}

// SeatController returns the controller deciding for the seat at index
func (c *Controller) SeatController(index int) PlayerController {
	if c.state != nil && c.state.IsAISeat(index) {
		return c.ai
	}
	return c.human
}

// SeatControls returns who decides for each seat of the current session
func (c *Controller) SeatControls() []model.SeatControl {
	if c.state == nil {
		return nil
	}
	return model.SeatControls(c.state, c.ai.Control())
}

func (c *Controller) install(g *model.GameState) {
	c.state = g
	c.aiActing = false
	c.aiSteps = 0
}

// run applies the shared action protocol around fn: session guards first,
// then fn validates and mutates, then state change and end-of-game checks.
func (c *Controller) run(fn func(g *model.GameState, p *model.Player) bool) bool {
	g := c.state
	if g == nil {
		c.logger.Warn("action without a game in progress")
		return false
	}
	p := g.CurrentPlayer()
	if g.GameOver {
		return c.journal.Reject(g, "The game is over")
	}
	if g.PendingSummary != nil {
		return c.journal.Reject(g, "%s must acknowledge the turn summary first", p.Name)
	}
	if g.CurrentIsAI() && !c.aiActing {
		return c.journal.Reject(g, "It is %s's turn", p.Name)
	}

	if !fn(g, p) {
		return false
	}

	c.journal.StateChanged(g)
	c.checkGameOver(g)
	if !g.GameOver && g.PendingSummary == nil && p.Time == 0 && !g.CurrentIsAI() {
		c.scheduleAutoEndTurn(g, p)
	}
	return true
}

func (c *Controller) scheduleAutoEndTurn(g *model.GameState, p *model.Player) {
	c.scheduler.Schedule("auto-end-turn", c.rules.AutoEndTurnDelay, func() {
		if c.state != g || g.CurrentPlayer() != p || p.Time != 0 || g.PendingSummary != nil || g.GameOver {
			return
		}
		c.journal.Record(g, model.LogTurn, "%s is out of time", p.Name)
		c.EndTurn()
	})
}

// inGracePeriod is true while the seat is still in its opening turn with its
// full time budget. A seat that has ended its first turn has its budget
// refilled but is no longer covered.
func (c *Controller) inGracePeriod(g *model.GameState, index int) bool {
	if g.Turn != 1 || g.Players[index].Time != c.rules.HoursPerTurn {
		return false
	}
	endedTurn := index < g.CurrentPlayerIndex ||
		(index == g.CurrentPlayerIndex && g.PendingSummary != nil)
	return !endedTurn
}

// checkGameOver freezes the game on the first win, or else the first loss.
// Once frozen it never fires again.
func (c *Controller) checkGameOver(g *model.GameState) {
	if g.GameOver {
		return
	}
	for _, p := range g.Players {
		if c.rules.MeetsWin(p) {
			g.GameOver = true
			g.WinnerID = p.ID
			c.logger.Info("game won",
				slog.String("game_id", string(g.ID)),
				slog.String("winner_id", string(p.ID)),
				slog.Int("turn", g.Turn))
			c.journal.Record(g, model.LogSystem, "%s wins the game!", p.Name)
			c.journal.Publish(model.EventGameOver, model.StateChangedPayload{GameState: g})
			return
		}
	}
	for i, p := range g.Players {
		if c.inGracePeriod(g, i) || !c.rules.MeetsLose(p) {
			continue
		}
		g.GameOver = true
		reason := "ran out of happiness"
		if p.Hunger >= c.rules.LoseHunger {
			reason = "starved"
		}
		c.logger.Info("game lost",
			slog.String("game_id", string(g.ID)),
			slog.String("player_id", string(p.ID)),
			slog.String("reason", reason))
		c.journal.Record(g, model.LogSystem, "%s %s. Game over.", p.Name, reason)
		c.journal.Publish(model.EventGameOver, model.StateChangedPayload{GameState: g})
		return
	}
}

// EndTurn closes the current seat's turn and leaves its summary pending
func (c *Controller) EndTurn() bool {
	return c.run(func(g *model.GameState, _ *model.Player) bool {
		c.turns.EndTurn(g)
		return true
	})
}

// AcknowledgeSummary consumes the pending summary and hands over to the next
// seat. After the game is over it only clears the summary.
func (c *Controller) AcknowledgeSummary() bool {
	g := c.state
	if g == nil {
		c.logger.Warn("acknowledge without a game in progress")
		return false
	}
	if g.PendingSummary == nil {
		return c.journal.Reject(g, "There is no turn summary to acknowledge")
	}
	if g.GameOver {
		g.PendingSummary = nil
		c.journal.StateChanged(g)
		return true
	}
	c.turns.AdvanceTurn(g)
	return true
}

// Perform dispatches any action to its method
func (c *Controller) Perform(action model.Action) bool {
	switch a := action.(type) {
	case model.TravelAction:
		return c.Travel(a.Destination)
	case model.WorkShiftAction:
		return c.WorkShift()
	case model.ApplyForJobAction:
		return c.ApplyForJob(a.JobID)
	case model.TakeCourseAction:
		return c.TakeCourse(a.CourseID)
	case model.StudyAction:
		return c.Study()
	case model.RelaxAction:
		return c.Relax()
	case model.BuyItemAction:
		return c.BuyItem(a.Item)
	case model.DepositAction:
		return c.Deposit(a.Amount)
	case model.WithdrawAction:
		return c.Withdraw(a.Amount)
	case model.TakeLoanAction:
		return c.TakeLoan(a.Amount)
	case model.RepayLoanAction:
		return c.RepayLoan(a.Amount)
	case model.BuyCarAction:
		return c.BuyCar()
	case model.EndTurnAction, model.PassAction:
		return c.EndTurn()
	default:
		panic(fmt.Sprintf("unhandled action type %T", action))
	}
}

// ProcessAITurn makes one decision for the AI seat and either schedules the
// next one or finishes the turn
func (c *Controller) ProcessAITurn(g *model.GameState) {
	if c.state != g || !g.AIThinking || !g.CurrentIsAI() {
		return
	}
	if g.GameOver {
		c.stopThinking(g)
		return
	}
	p := g.CurrentPlayer()

	if c.aiSteps >= c.rules.MaxAIStepsPerTurn {
		c.journal.Record(g, model.LogAI, "%s stops after %d decisions", p.Name, c.aiSteps)
		c.finishAITurn(g)
		return
	}
	c.aiSteps++

	action, ok := c.SeatController(g.CurrentPlayerIndex).NextAction(g, p)
	if !ok || action.Kind() == model.ActionPass {
		c.journal.Record(g, model.LogAI, "%s is done for the day", p.Name)
		c.finishAITurn(g)
		return
	}

	c.journal.Record(g, model.LogAI, "%s decides to %s", p.Name, action)
	c.aiActing = true
	succeeded := c.Perform(action)
	c.aiActing = false

	if g.GameOver {
		c.stopThinking(g)
		return
	}
	if g.PendingSummary != nil {
		c.finishAITurn(g)
		return
	}
	// Arriving with no time left still earns one more decision, so a hungry
	// seat can eat where it landed
	_, travelled := action.(model.TravelAction)
	if succeeded && (p.Time > 0 || travelled) {
		c.turns.ScheduleAI(g)
		return
	}
	c.finishAITurn(g)
}

func (c *Controller) startThinking(g *model.GameState) {
	g.AIThinking = true
	c.aiSteps = 0
	c.journal.Publish(model.EventAIThinkingStart, nil)
	c.turns.ScheduleAI(g)
}

func (c *Controller) stopThinking(g *model.GameState) {
	g.AIThinking = false
	c.aiSteps = 0
	c.journal.Publish(model.EventAIThinkingEnd, nil)
}

// finishAITurn ends the AI seat's turn and moves straight on to the next seat
func (c *Controller) finishAITurn(g *model.GameState) {
	if g.PendingSummary == nil {
		c.aiActing = true
		c.EndTurn()
		c.aiActing = false
	}
	c.stopThinking(g)
	if g.GameOver {
		return
	}
	c.turns.AdvanceTurn(g)
}
