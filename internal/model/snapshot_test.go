package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type SnapshotSuite struct {
	suite.Suite
	now time.Time
}

func TestSnapshotSuite(t *testing.T) {
	suite.Run(t, new(SnapshotSuite))
}

func (s *SnapshotSuite) SetupTest() {
	s.now = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
}

func (s *SnapshotSuite) game() *GameState {
	g := &GameState{
		ID: "g1",
		Players: []*Player{
			{ID: "p1", Name: "Alice", Cash: 40, Happiness: 60, Time: 10, Location: LocationBank,
				Inventory: []Item{{Name: "Couch", Location: LocationMall, Cost: 300, Asset: true, Effect: EffectComfort}}},
			{ID: "p2", Name: "Computer", Happiness: 50, Time: 24, Location: LocationHome},
		},
		CurrentPlayerIndex: 1,
		Turn:               4,
		Player2AI:          true,
		AIThinking:         true,
		PendingSummary: &TurnSummary{PlayerID: "p1", PlayerName: "Alice", Turn: 4,
			Events: []SummaryEvent{{Type: SummaryIncome, Label: "Wages", Amount: 64}}},
		ActiveScreen: "game",
	}
	g.AppendLog(LogSystem, "hello", s.now)
	return g
}

func (s *SnapshotSuite) TestSnapshotIsDeepCopy() {
	g := s.game()

	snap := NewSnapshot(g, s.now)
	g.Players[0].Cash = 999
	g.Players[0].Inventory[0].Name = "changed"
	g.PendingSummary.Events[0].Amount = 1
	g.Log[0].Message = "changed"

	s.Equal(40, snap.Players[0].Cash)
	s.Equal("Couch", snap.Players[0].Inventory[0].Name)
	s.Equal(64, snap.PendingTurnSummary.Events[0].Amount)
	s.Equal("hello", snap.Log[0].Message)
	s.False(snap.Players[0].IsAI)
	s.True(snap.Players[1].IsAI)
	s.Nil(snap.WinnerID)
}

func (s *SnapshotSuite) TestJSONRoundTrip() {
	g := s.game()
	g.WinnerID = "p1"
	g.ChoiceContext = &ChoiceContext{Title: "t", Options: []ChoiceOption{{Label: "a", OnSelect: func() {}}}}

	data, err := json.Marshal(NewSnapshot(g, s.now))
	s.Require().NoError(err)
	var decoded Snapshot
	s.Require().NoError(json.Unmarshal(data, &decoded))
	restored, err := decoded.Restore()
	s.Require().NoError(err)

	g.AIThinking = false
	g.ChoiceContext = &ChoiceContext{Title: "t", Options: []ChoiceOption{{Label: "a", ActionID: UnboundActionID}}}
	s.Equal(g, restored)
	s.Equal("p1", string(*decoded.WinnerID))
}

func (s *SnapshotSuite) TestRestoreValidates() {
	_, err := (*Snapshot)(nil).Restore()
	s.ErrorIs(err, ErrInvalidSnapshot)

	snap := NewSnapshot(s.game(), s.now)
	snap.Version = 99
	_, err = snap.Restore()
	s.ErrorIs(err, ErrInvalidSnapshot)

	snap = NewSnapshot(s.game(), s.now)
	snap.Players = append(snap.Players, snap.Players[0])
	_, err = snap.Restore()
	s.ErrorIs(err, ErrInvalidSeatCount)

	snap = NewSnapshot(s.game(), s.now)
	snap.CurrentPlayerIndex = 2
	_, err = snap.Restore()
	s.ErrorIs(err, ErrInvalidSnapshot)
}

func (s *SnapshotSuite) TestSeatControls() {
	g := s.game()

	s.Equal([]SeatControl{ControlHuman, ControlHeuristic}, SeatControls(g, ControlHeuristic))
	s.Equal([]SeatControl{ControlHuman, ControlRandom}, SeatControls(g, ControlRandom))
	s.Equal("Computer", SeatControlDisplayName(ControlHeuristic))
	s.Equal("Computer (random)", SeatControlDisplayName(ControlRandom))
	s.Equal("Human", SeatControlDisplayName(ControlHuman))
}
