package response

import (
	"time"

	"github.com/mcoot/fastlane/internal/catalog"
	"github.com/mcoot/fastlane/internal/model"
)

// HealthResponse is the response for health check
type HealthResponse struct {
	Status string `json:"status"`
}

// Weekly is a player's per-turn ledger
type Weekly struct {
	Income          int      `json:"income"`
	Expenses        int      `json:"expenses"`
	HappinessChange int      `json:"happiness_change"`
	Graduations     []string `json:"graduations"`
}

// Player represents one seat in API responses
type Player struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	IsAI                 bool     `json:"is_ai"`
	Cash                 int      `json:"cash"`
	Savings              int      `json:"savings"`
	Loan                 int      `json:"loan"`
	Happiness            int      `json:"happiness"`
	Hunger               int      `json:"hunger"`
	EducationLevel       int      `json:"education_level"`
	EducationCredits     int      `json:"education_credits"`
	EducationCreditsGoal int      `json:"education_credits_goal"`
	EnrolledCourse       string   `json:"enrolled_course,omitempty"`
	CareerLevel          int      `json:"career_level"`
	JobID                string   `json:"job_id,omitempty"`
	Time                 int      `json:"time"`
	TimeDeficit          int      `json:"time_deficit"`
	Location             string   `json:"location"`
	HasCar               bool     `json:"has_car"`
	Inventory            []string `json:"inventory"`
	Weekly               Weekly   `json:"weekly"`
}

// PlayerFromModel converts model.Player
func PlayerFromModel(p *model.Player, isAI bool) Player {
	inventory := make([]string, len(p.Inventory))
	for i, item := range p.Inventory {
		inventory[i] = item.Name
	}
	graduations := make([]string, len(p.Weekly.Graduations))
	copy(graduations, p.Weekly.Graduations)

	return Player{
		ID:                   string(p.ID),
		Name:                 p.Name,
		IsAI:                 isAI,
		Cash:                 p.Cash,
		Savings:              p.Savings,
		Loan:                 p.Loan,
		Happiness:            p.Happiness,
		Hunger:               p.Hunger,
		EducationLevel:       p.EducationLevel,
		EducationCredits:     p.EducationCredits,
		EducationCreditsGoal: p.EducationCreditsGoal,
		EnrolledCourse:       string(p.EnrolledCourse),
		CareerLevel:          p.CareerLevel,
		JobID:                string(p.JobID),
		Time:                 p.Time,
		TimeDeficit:          p.TimeDeficit,
		Location:             string(p.Location),
		HasCar:               p.HasCar,
		Inventory:            inventory,
		Weekly: Weekly{
			Income:          p.Weekly.Income,
			Expenses:        p.Weekly.Expenses,
			HappinessChange: p.Weekly.HappinessChange,
			Graduations:     graduations,
		},
	}
}

// SummaryEvent is one line of a turn summary
type SummaryEvent struct {
	Type   string `json:"type"`
	Label  string `json:"label"`
	Amount int    `json:"amount"`
}

// TurnSummary represents an end-of-turn summary
type TurnSummary struct {
	PlayerID       string         `json:"player_id"`
	PlayerName     string         `json:"player_name"`
	Turn           int            `json:"turn"`
	Events         []SummaryEvent `json:"events"`
	CashDelta      int            `json:"cash_delta"`
	HappinessDelta int            `json:"happiness_delta"`
}

// TurnSummaryFromModel converts model.TurnSummary
func TurnSummaryFromModel(s *model.TurnSummary) TurnSummary {
	events := make([]SummaryEvent, len(s.Events))
	for i, e := range s.Events {
		events[i] = SummaryEvent{Type: string(e.Type), Label: e.Label, Amount: e.Amount}
	}
	return TurnSummary{
		PlayerID:       string(s.PlayerID),
		PlayerName:     s.PlayerName,
		Turn:           s.Turn,
		Events:         events,
		CashDelta:      s.Totals.CashDelta,
		HappinessDelta: s.Totals.HappinessDelta,
	}
}

// LogEntry is one line of the game log
type LogEntry struct {
	Turn     int       `json:"turn"`
	Category string    `json:"category"`
	Message  string    `json:"message"`
	Time     time.Time `json:"time"`
}

// LogEntryFromModel converts model.LogEntry
func LogEntryFromModel(e model.LogEntry) LogEntry {
	return LogEntry{
		Turn:     e.Turn,
		Category: string(e.Category),
		Message:  e.Message,
		Time:     e.Time,
	}
}

// Game represents the current session
type Game struct {
	ID                 string       `json:"id"`
	Turn               int          `json:"turn"`
	CurrentPlayerIndex int          `json:"current_player_index"`
	CurrentPlayerID    string       `json:"current_player_id"`
	Players            []Player     `json:"players"`
	Player2AI          bool         `json:"player2_ai"`
	AIThinking         bool         `json:"ai_thinking"`
	GameOver           bool         `json:"game_over"`
	Winner             *string      `json:"winner"`
	PendingSummary     *TurnSummary `json:"pending_summary"`
	Log                []LogEntry   `json:"log"`
}

// GameFromModel converts model.GameState, keeping at most logLimit of the
// newest log entries. A logLimit of zero or less keeps the whole log.
func GameFromModel(g *model.GameState, logLimit int) Game {
	players := make([]Player, len(g.Players))
	for i, p := range g.Players {
		players[i] = PlayerFromModel(p, g.IsAISeat(i))
	}

	entries := g.Log
	if logLimit > 0 && len(entries) > logLimit {
		entries = entries[len(entries)-logLimit:]
	}
	log := make([]LogEntry, len(entries))
	for i, e := range entries {
		log[i] = LogEntryFromModel(e)
	}

	var winner *string
	if w := g.Winner(); w != nil {
		id := string(w.ID)
		winner = &id
	}

	var summary *TurnSummary
	if g.PendingSummary != nil {
		s := TurnSummaryFromModel(g.PendingSummary)
		summary = &s
	}

	var currentID string
	if p := g.CurrentPlayer(); p != nil {
		currentID = string(p.ID)
	}

	return Game{
		ID:                 string(g.ID),
		Turn:               g.Turn,
		CurrentPlayerIndex: g.CurrentPlayerIndex,
		CurrentPlayerID:    currentID,
		Players:            players,
		Player2AI:          g.Player2AI,
		AIThinking:         g.AIThinking,
		GameOver:           g.GameOver,
		Winner:             winner,
		PendingSummary:     summary,
		Log:                log,
	}
}

// Location is a catalog location
type Location struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Job is a catalog job
type Job struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Level             int    `json:"level"`
	Wage              int    `json:"wage"`
	ShiftHours        int    `json:"shift_hours"`
	RequiredEducation int    `json:"required_education"`
}

// Course is a catalog course
type Course struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Level      int    `json:"level"`
	Cost       int    `json:"cost"`
	Credits    int    `json:"credits"`
	StudyHours int    `json:"study_hours"`
}

// Item is a catalog item
type Item struct {
	Name            string `json:"name"`
	Location        string `json:"location"`
	Cost            int    `json:"cost"`
	HappinessBoost  int    `json:"happiness_boost"`
	HungerReduction int    `json:"hunger_reduction"`
	Kept            bool   `json:"kept"`
	Effect          string `json:"effect,omitempty"`
}

// Catalog lists everything a player can visit, do, or buy
type Catalog struct {
	Locations []Location `json:"locations"`
	Jobs      []Job      `json:"jobs"`
	Courses   []Course   `json:"courses"`
	Items     []Item     `json:"items"`
}

// CatalogFromModel converts catalog.Catalog
func CatalogFromModel(c *catalog.Catalog) Catalog {
	out := Catalog{
		Locations: make([]Location, len(c.Locations)),
		Jobs:      make([]Job, len(c.Jobs)),
		Courses:   make([]Course, len(c.Courses)),
		Items:     make([]Item, len(c.Items)),
	}
	for i, l := range c.Locations {
		out.Locations[i] = Location{ID: string(l.ID), Name: l.Name, Description: l.Description}
	}
	for i, j := range c.Jobs {
		out.Jobs[i] = Job{
			ID:                string(j.ID),
			Title:             j.Title,
			Level:             j.Level,
			Wage:              j.Wage,
			ShiftHours:        j.ShiftHours,
			RequiredEducation: j.RequiredEducation,
		}
	}
	for i, co := range c.Courses {
		out.Courses[i] = Course{
			ID:         string(co.ID),
			Name:       co.Name,
			Level:      co.Level,
			Cost:       co.Cost,
			Credits:    co.Credits,
			StudyHours: co.StudyHours,
		}
	}
	for i, it := range c.Items {
		out.Items[i] = Item{
			Name:            it.Name,
			Location:        string(it.Location),
			Cost:            it.Cost,
			HappinessBoost:  it.HappinessBoost,
			HungerReduction: it.HungerReduction,
			Kept:            it.Kept(),
			Effect:          string(it.Effect),
		}
	}
	return out
}

// PlayerEvent is the stream payload for per-field player changes
type PlayerEvent struct {
	PlayerID string `json:"player_id"`
	Amount   int    `json:"amount"`
	Level    int    `json:"level,omitempty"`
	Location string `json:"location,omitempty"`
}

// StateEvent is the stream payload for state-changed and game-over
type StateEvent struct {
	GameID             string  `json:"game_id"`
	Turn               int     `json:"turn"`
	CurrentPlayerIndex int     `json:"current_player_index"`
	GameOver           bool    `json:"game_over"`
	Winner             *string `json:"winner"`
}

// StateEventFromModel converts model.GameState
func StateEventFromModel(g *model.GameState) StateEvent {
	var winner *string
	if g.WinnerID != "" {
		id := string(g.WinnerID)
		winner = &id
	}
	return StateEvent{
		GameID:             string(g.ID),
		Turn:               g.Turn,
		CurrentPlayerIndex: g.CurrentPlayerIndex,
		GameOver:           g.GameOver,
		Winner:             winner,
	}
}

// PlayerChangedEvent is the stream payload when the turn passes to another seat
type PlayerChangedEvent struct {
	PreviousPlayerID string `json:"previous_player_id"`
	CurrentPlayerID  string `json:"current_player_id"`
	Turn             int    `json:"turn"`
}

// GraduationEvent is the stream payload when a player completes a course
type GraduationEvent struct {
	PlayerID string `json:"player_id"`
	Course   string `json:"course"`
	Level    int    `json:"level"`
}
