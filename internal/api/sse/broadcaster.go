package sse

import (
	"encoding/json"
	"log/slog"

	"github.com/mcoot/fastlane/internal/api/response"
	"github.com/mcoot/fastlane/internal/eventbus"
	"github.com/mcoot/fastlane/internal/model"
)

// Broadcaster turns bus events into SSE messages on a hub
type Broadcaster struct {
	hub    *Hub
	logger *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hub *Hub, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hub:    hub,
		logger: logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// Attach forwards every event published on the bus to the hub
func (b *Broadcaster) Attach(bus *eventbus.Bus) eventbus.Subscription {
	return bus.SubscribeAll(b.Handle)
}

// Handle encodes one event and broadcasts it. It never blocks the publisher.
func (b *Broadcaster) Handle(event model.EventType, payload any) {
	data, err := json.Marshal(encodePayload(payload))
	if err != nil {
		b.logger.Error("sse failed to encode event",
			slog.String("event", string(event)),
			slog.Any("error", err))
		return
	}
	b.hub.BroadcastEvent(string(event), string(data))
}

func encodePayload(payload any) any {
	switch p := payload.(type) {
	case model.PlayerChangePayload:
		return response.PlayerEvent{
			PlayerID: string(p.Player.ID),
			Amount:   p.Amount,
			Level:    p.Level,
			Location: string(p.Location),
		}
	case model.StateChangedPayload:
		return response.StateEventFromModel(p.GameState)
	case model.TurnEndedPayload:
		return response.TurnSummaryFromModel(p.Summary)
	case model.PlayerChangedPayload:
		return response.PlayerChangedEvent{
			PreviousPlayerID: string(p.PreviousPlayer.ID),
			CurrentPlayerID:  string(p.CurrentPlayer.ID),
			Turn:             p.GameState.Turn,
		}
	case model.GraduationPayload:
		return response.GraduationEvent{
			PlayerID: string(p.Player.ID),
			Course:   p.Course.Name,
			Level:    p.Course.Level,
		}
	case model.LogAppendedPayload:
		return response.LogEntryFromModel(p.Entry)
	default:
		return struct{}{}
	}
}
