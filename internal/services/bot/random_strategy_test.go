package bot_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/fastlane/internal/catalog"
	"github.com/mcoot/fastlane/internal/dependencies/mocks"
	"github.com/mcoot/fastlane/internal/model"
	"github.com/mcoot/fastlane/internal/services/bot"
	"github.com/mcoot/fastlane/internal/testutil"
)

type RandomStrategySuite struct {
	suite.Suite
	mockRandom *mocks.MockRandom
	strategy   *bot.RandomStrategy
	game       *model.GameState
	player     *model.Player
}

func TestRandomStrategySuite(t *testing.T) {
	suite.Run(t, new(RandomStrategySuite))
}

func (s *RandomStrategySuite) SetupTest() {
	s.mockRandom = mocks.NewMockRandom()
	s.strategy = bot.NewRandomStrategy(catalog.Default(), model.DefaultRules(), s.mockRandom)
	s.player = testutil.NewPlayer("ai", "Computer")
	s.game = testutil.NewGame(s.player)
}

func (s *RandomStrategySuite) TestControl() {
	s.Equal(model.ControlRandom, s.strategy.Control())
}

func (s *RandomStrategySuite) TestFirstCandidateIsATrip() {
	s.player.Location = model.LocationHome

	action, ok := s.strategy.Decide(s.game, s.player)
	s.Require().True(ok)
	travel, isTravel := action.(model.TravelAction)
	s.Require().True(isTravel)
	s.NotEqual(model.LocationHome, travel.Destination)
}

func (s *RandomStrategySuite) TestLastCandidateIsPass() {
	s.mockRandom.QueueIntn(1000)

	action, ok := s.strategy.Decide(s.game, s.player)
	s.Require().True(ok)
	s.Equal(model.PassAction{}, action)
}

func (s *RandomStrategySuite) TestOutOfTimeIsDone() {
	s.player.Time = 0

	_, ok := s.strategy.Decide(s.game, s.player)
	s.False(ok)
}

func (s *RandomStrategySuite) TestOnlyPassWhenStuck() {
	// One hour is too little to walk anywhere, and a broke player has
	// nothing to do at the bank
	s.player.Location = model.LocationBank
	s.player.Time = 1
	s.player.Cash = 0
	s.mockRandom.QueueIntn(0)

	action, ok := s.strategy.Decide(s.game, s.player)
	s.Require().True(ok)
	s.Equal(model.PassAction{}, action)
}

func (s *RandomStrategySuite) TestWorksWhenEmployedAtWorkplace() {
	s.player.Location = model.LocationWorkplace
	s.player.JobID = "janitor"
	s.player.CareerLevel = 1
	s.player.Time = 8

	// Travel options come first, one per other location
	trips := len(catalog.Default().Locations) - 1
	s.mockRandom.QueueIntn(trips)

	action, ok := s.strategy.Decide(s.game, s.player)
	s.Require().True(ok)
	s.Equal(model.WorkShiftAction{}, action)
}

func (s *RandomStrategySuite) TestStrategiesRegistry() {
	strategies := bot.Strategies(catalog.Default(), model.DefaultRules(), s.mockRandom, testutil.NopLogger())

	s.Len(strategies, 2)
	s.Equal(model.ControlHeuristic, strategies[model.ControlHeuristic].Control())
	s.Equal(model.ControlRandom, strategies[model.ControlRandom].Control())
}
