package model

import "time"

// GameID uniquely identifies a session
type GameID string

// Seat limits
const (
	MinSeats = 1
	MaxSeats = 2
)

// LogCategory classifies entries in the game log
type LogCategory string

const (
	LogAction    LogCategory = "action"
	LogError     LogCategory = "error"
	LogEconomy   LogCategory = "economy"
	LogEducation LogCategory = "education"
	LogCareer    LogCategory = "career"
	LogTurn      LogCategory = "turn"
	LogAI        LogCategory = "ai"
	LogSystem    LogCategory = "system"
)

// LogEntry is a single append-only log line
type LogEntry struct {
	Turn     int         `json:"turn"`
	Category LogCategory `json:"category"`
	Message  string      `json:"message"`
	Time     time.Time   `json:"time"`
}

// UnboundActionID stands in for a choice callback that had no identifier
const UnboundActionID = "unbound"

// ChoiceOption is one button of a presentation-layer choice dialog.
// OnSelect is never persisted; ActionID is the token that survives a save.
type ChoiceOption struct {
	Label    string `json:"label"`
	ActionID string `json:"actionId"`
	OnSelect func() `json:"-"`
}

// ChoiceContext is presentation bookkeeping for an open choice dialog
type ChoiceContext struct {
	Title   string         `json:"title"`
	Options []ChoiceOption `json:"options"`
}

// Stripped returns a copy without callbacks
func (c *ChoiceContext) Stripped() *ChoiceContext {
	if c == nil {
		return nil
	}
	out := &ChoiceContext{Title: c.Title}
	if c.Options != nil {
		out.Options = make([]ChoiceOption, len(c.Options))
		for i, opt := range c.Options {
			id := opt.ActionID
			if id == "" {
				id = UnboundActionID
			}
			out.Options[i] = ChoiceOption{Label: opt.Label, ActionID: id}
		}
	}
	return out
}

// GameState is the whole simulation for one session
type GameState struct {
	ID      GameID
	Players []*Player

	// Turn management
	CurrentPlayerIndex int
	Turn               int // 1-based week counter, incremented when the seat index wraps

	Log []LogEntry

	GameOver bool
	WinnerID PlayerID // empty when nobody has won

	// Player2AI marks the second seat as heuristic-controlled
	Player2AI bool
	// AIThinking is set while an AI turn loop is scheduled or running
	AIThinking bool

	PendingSummary *TurnSummary

	// Presentation bookkeeping; persisted, never interpreted by the engine
	ActiveScreen    string
	ActiveDashboard string
	ChoiceContext   *ChoiceContext
}

// CurrentPlayer returns the seat whose turn it is, or nil
func (g *GameState) CurrentPlayer() *Player {
	if g == nil || len(g.Players) == 0 {
		return nil
	}
	return g.Players[g.CurrentPlayerIndex]
}

// PlayerByID returns the player with the given ID, or nil if not found
func (g *GameState) PlayerByID(id PlayerID) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Winner returns the winning player, or nil
func (g *GameState) Winner() *Player {
	if g.WinnerID == "" {
		return nil
	}
	return g.PlayerByID(g.WinnerID)
}

// IsAISeat returns true if the seat at index is heuristic-controlled
func (g *GameState) IsAISeat(index int) bool {
	return index == 1 && g.Player2AI && len(g.Players) > 1
}

// CurrentIsAI returns true if the current seat is heuristic-controlled
func (g *GameState) CurrentIsAI() bool {
	return g.IsAISeat(g.CurrentPlayerIndex)
}

// AppendLog adds an entry to the log
func (g *GameState) AppendLog(category LogCategory, message string, at time.Time) LogEntry {
	entry := LogEntry{
		Turn:     g.Turn,
		Category: category,
		Message:  message,
		Time:     at,
	}
	g.Log = append(g.Log, entry)
	return entry
}
