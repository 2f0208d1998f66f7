package model

// EventType identifies the type of event published on the bus
type EventType string

const (
	// Player field events
	EventCashChanged      EventType = "cash-changed"
	EventSavingsChanged   EventType = "savings-changed"
	EventLoanChanged      EventType = "loan-changed"
	EventTimeChanged      EventType = "time-changed"
	EventLocationChanged  EventType = "location-changed"
	EventHappinessChanged EventType = "happiness-changed"
	EventHungerChanged    EventType = "hunger-changed"
	EventInventoryChanged EventType = "inventory-changed"
	EventCareerChanged    EventType = "career-changed"
	EventEducationChanged EventType = "education-changed"

	// Game events
	EventStateChanged  EventType = "state-changed"
	EventTurnEnded     EventType = "turn-ended"
	EventPlayerChanged EventType = "player-changed"
	EventGameOver      EventType = "game-over"
	EventGraduation    EventType = "graduation"
	EventLogAppended   EventType = "log-appended"

	// AI pacing signals, no payload
	EventAIThinkingStart EventType = "ai-thinking-start"
	EventAIThinkingEnd   EventType = "ai-thinking-end"
)

// PlayerChangePayload contains data for the per-field player events.
// Only the field matching the event is meaningful.
type PlayerChangePayload struct {
	Player    *Player
	Amount    int
	Level     int
	Location  Location
	GameState *GameState
}

// StateChangedPayload contains data for state changed and game over events
type StateChangedPayload struct {
	GameState *GameState
}

// TurnEndedPayload contains data for turn ended events
type TurnEndedPayload struct {
	Summary *TurnSummary
}

// PlayerChangedPayload contains data for player changed events
type PlayerChangedPayload struct {
	PreviousPlayer *Player
	CurrentPlayer  *Player
	GameState      *GameState
}

// GraduationPayload contains data for graduation events
type GraduationPayload struct {
	Player *Player
	Course Course
}

// LogAppendedPayload contains data for log appended events
type LogAppendedPayload struct {
	Entry LogEntry
}
