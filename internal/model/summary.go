package model

// SummaryEventType identifies a line of a turn summary
type SummaryEventType string

const (
	SummaryIncome        SummaryEventType = "income"
	SummaryExpense       SummaryEventType = "expense"
	SummaryInterest      SummaryEventType = "interest"
	SummaryHungerPenalty SummaryEventType = "hunger_penalty"
	SummaryRecovery      SummaryEventType = "happiness_recovery"
	SummaryGraduation    SummaryEventType = "graduation"
)

// SummaryEvent is one labeled, signed line of a turn summary
type SummaryEvent struct {
	Type   SummaryEventType `json:"type"`
	Label  string           `json:"label"`
	Amount int              `json:"amount"`
}

// SummaryTotals aggregates a turn's changes
type SummaryTotals struct {
	CashDelta      int `json:"cashDelta"`
	HappinessDelta int `json:"happinessDelta"`
}

// TurnSummary is produced once per end of turn and consumed once by the presentation layer
type TurnSummary struct {
	PlayerID   PlayerID       `json:"playerId"`
	PlayerName string         `json:"playerName"`
	Turn       int            `json:"turn"`
	Events     []SummaryEvent `json:"events"`
	Totals     SummaryTotals  `json:"totals"`
}

// Add appends an event
func (s *TurnSummary) Add(t SummaryEventType, label string, amount int) {
	s.Events = append(s.Events, SummaryEvent{Type: t, Label: label, Amount: amount})
}

// Clone returns a deep copy of the summary
func (s *TurnSummary) Clone() *TurnSummary {
	if s == nil {
		return nil
	}
	c := *s
	if s.Events != nil {
		c.Events = make([]SummaryEvent, len(s.Events))
		copy(c.Events, s.Events)
	}
	return &c
}
