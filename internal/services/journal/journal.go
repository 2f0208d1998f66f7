package journal

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/fastlane/internal/dependencies/clock"
	"github.com/mcoot/fastlane/internal/eventbus"
	"github.com/mcoot/fastlane/internal/model"
)

// Journal writes the in-game log and publishes change notifications. It is
// the single path the rule services use to reach the event bus.
type Journal struct {
	bus    *eventbus.Bus
	clock  clock.Clock
	logger *slog.Logger
}

// New creates a new Journal
func New(bus *eventbus.Bus, clk clock.Clock, logger *slog.Logger) *Journal {
	return &Journal{
		bus:    bus,
		clock:  clk,
		logger: logger.With(slog.String("component", "journal")),
	}
}

// Record appends a log entry and publishes it
func (j *Journal) Record(g *model.GameState, category model.LogCategory, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	entry := g.AppendLog(category, msg, j.clock.Now())
	j.logger.Debug("game log",
		slog.String("game_id", string(g.ID)),
		slog.Int("turn", entry.Turn),
		slog.String("category", string(category)),
		slog.String("message", msg))
	j.bus.Publish(model.EventLogAppended, model.LogAppendedPayload{Entry: entry})
}

// Reject records a validation failure and returns false, so callers can
// write `return j.Reject(...)`.
func (j *Journal) Reject(g *model.GameState, format string, args ...any) bool {
	j.Record(g, model.LogError, format, args...)
	return false
}

// PlayerChanged publishes a per-field player event carrying the field's new value
func (j *Journal) PlayerChanged(g *model.GameState, p *model.Player, event model.EventType) {
	payload := model.PlayerChangePayload{Player: p, GameState: g}
	switch event {
	case model.EventCashChanged:
		payload.Amount = p.Cash
	case model.EventSavingsChanged:
		payload.Amount = p.Savings
	case model.EventLoanChanged:
		payload.Amount = p.Loan
	case model.EventTimeChanged:
		payload.Amount = p.Time
	case model.EventHappinessChanged:
		payload.Amount = p.Happiness
	case model.EventHungerChanged:
		payload.Amount = p.Hunger
	case model.EventInventoryChanged:
		payload.Amount = len(p.Inventory)
	case model.EventCareerChanged:
		payload.Level = p.CareerLevel
	case model.EventEducationChanged:
		payload.Level = p.EducationLevel
	case model.EventLocationChanged:
		payload.Location = p.Location
	}
	j.bus.Publish(event, payload)
}

// PlayerChangedAll publishes several per-field events in order
func (j *Journal) PlayerChangedAll(g *model.GameState, p *model.Player, events ...model.EventType) {
	for _, e := range events {
		j.PlayerChanged(g, p, e)
	}
}

// StateChanged publishes the generic state changed event
func (j *Journal) StateChanged(g *model.GameState) {
	j.bus.Publish(model.EventStateChanged, model.StateChangedPayload{GameState: g})
}

// Publish forwards an arbitrary event to the bus
func (j *Journal) Publish(event model.EventType, payload any) {
	j.bus.Publish(event, payload)
}
