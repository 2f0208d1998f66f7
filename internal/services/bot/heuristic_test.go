package bot_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/fastlane/internal/catalog"
	"github.com/mcoot/fastlane/internal/model"
	"github.com/mcoot/fastlane/internal/services/bot"
	"github.com/mcoot/fastlane/internal/testutil"
)

type HeuristicSuite struct {
	suite.Suite
	strategy *bot.HeuristicStrategy
	game     *model.GameState
	player   *model.Player
}

func TestHeuristicSuite(t *testing.T) {
	suite.Run(t, new(HeuristicSuite))
}

func (s *HeuristicSuite) SetupTest() {
	s.strategy = bot.NewHeuristicStrategy(catalog.Default(), model.DefaultRules(), testutil.NopLogger())
	s.player = testutil.NewPlayer("ai", "Computer")
	// A settled, comfortable player: nothing urgent
	s.player.Cash = 2600
	s.player.Happiness = 60
	s.player.EducationLevel = 4
	s.game = testutil.NewGame(s.player)
}

func (s *HeuristicSuite) decide() model.Action {
	action, ok := s.strategy.Decide(s.game, s.player)
	s.Require().True(ok)
	return action
}

// Rule 0: hunger

func (s *HeuristicSuite) TestHungryTravelsToFoodThenBuysIt() {
	s.player.Hunger = 35
	s.player.Cash = 100
	s.player.Time = 2

	s.Equal(model.TravelAction{Destination: model.LocationMarket}, s.decide())

	s.player.Location = model.LocationMarket
	s.player.Time = 0
	s.Equal(model.BuyItemAction{Item: "Groceries"}, s.decide())
}

func (s *HeuristicSuite) TestHungryPicksCheaperFoodWhenPoor() {
	s.player.Hunger = 50
	s.player.Cash = 20
	s.player.Location = model.LocationMarket

	s.Equal(model.BuyItemAction{Item: "Burger"}, s.decide())
}

func (s *HeuristicSuite) TestHungerAtThresholdIsIgnored() {
	s.player.Hunger = 30

	s.NotEqual(model.TravelAction{Destination: model.LocationMarket}, s.decide())
}

func (s *HeuristicSuite) TestHungryButBrokeFallsThrough() {
	s.player.Hunger = 80
	s.player.Cash = 5

	// Next rule is earning money
	s.Equal(model.TravelAction{Destination: model.LocationWorkplace}, s.decide())
}

// Rule 1: debt

func (s *HeuristicSuite) TestLoanRepaidAtBank() {
	s.player.Loan = 1500
	s.player.Cash = 400

	s.Equal(model.TravelAction{Destination: model.LocationBank}, s.decide())

	s.player.Location = model.LocationBank
	s.Equal(model.RepayLoanAction{Amount: 400}, s.decide())

	s.player.Cash = 3000
	s.Equal(model.RepayLoanAction{Amount: 1500}, s.decide())
}

func (s *HeuristicSuite) TestSmallLoanIgnored() {
	s.player.Loan = 1000

	s.NotEqual(model.TravelAction{Destination: model.LocationBank}, s.decide())
}

// Rule 2: earning

func (s *HeuristicSuite) TestPoorUnemployedAppliesForBestJob() {
	s.player.Cash = 0
	s.player.EducationLevel = 2
	s.player.CareerLevel = 1
	s.player.Location = model.LocationWorkplace

	s.Equal(model.ApplyForJobAction{JobID: "clerk"}, s.decide())
}

func (s *HeuristicSuite) TestPoorEmployedWorks() {
	s.player.Cash = 0
	s.player.EducationLevel = 0
	s.player.CareerLevel = 1
	s.player.JobID = "janitor"

	s.Equal(model.TravelAction{Destination: model.LocationWorkplace}, s.decide())
	s.player.Location = model.LocationWorkplace
	s.Equal(model.WorkShiftAction{}, s.decide())
}

func (s *HeuristicSuite) TestEmployedAppliesForPromotion() {
	s.player.Cash = 0
	s.player.EducationLevel = 2
	s.player.CareerLevel = 1
	s.player.JobID = "janitor"
	s.player.Location = model.LocationWorkplace

	s.Equal(model.ApplyForJobAction{JobID: "clerk"}, s.decide())
}

func (s *HeuristicSuite) TestNoTimeForShiftSkipsEarning() {
	s.player.Cash = 0
	s.player.JobID = "janitor"
	s.player.CareerLevel = 1
	s.player.EducationLevel = 0
	s.player.Location = model.LocationWorkplace
	s.player.Time = 7

	// No shift fits and the course is unaffordable
	s.Equal(model.PassAction{}, s.decide())
}

// Rule 3: education

func (s *HeuristicSuite) TestEnrollsInNextCourse() {
	s.player.EducationLevel = 1
	s.player.Location = model.LocationSchool

	s.Equal(model.TakeCourseAction{CourseID: "associate"}, s.decide())
}

func (s *HeuristicSuite) TestEnrolledStudies() {
	s.player.EducationLevel = 1
	s.player.EnrolledCourse = "associate"

	s.Equal(model.TravelAction{Destination: model.LocationSchool}, s.decide())
	s.player.Location = model.LocationSchool
	s.Equal(model.StudyAction{}, s.decide())
}

// Rule 4: happiness

func (s *HeuristicSuite) TestUnhappyBuysMostExpensiveAffordableMallItem() {
	s.player.Happiness = 30
	s.player.Location = model.LocationMall
	s.player.Cash = 3000

	s.Equal(model.BuyItemAction{Item: "Refrigerator"}, s.decide())

	s.player.AddToInventory(model.Item{Name: "Refrigerator", Location: model.LocationMall, Asset: true})
	s.Equal(model.BuyItemAction{Item: "Couch"}, s.decide())
}

// Rule 5: car

func (s *HeuristicSuite) TestBuysCarWithReserve() {
	s.player.Cash = 3500

	s.Equal(model.TravelAction{Destination: model.LocationDealership}, s.decide())
	s.player.Location = model.LocationDealership
	s.Equal(model.BuyCarAction{}, s.decide())
}

func (s *HeuristicSuite) TestNoCarWithoutReserve() {
	s.player.Cash = 3499

	s.NotEqual(model.TravelAction{Destination: model.LocationDealership}, s.decide())
}

// Rule 6: fallback

func (s *HeuristicSuite) TestFallbackWorksAtWorkplace() {
	s.player.Cash = 2600
	s.player.HasCar = true
	s.player.JobID = "executive"
	s.player.CareerLevel = 5
	s.player.Location = model.LocationWorkplace

	s.Equal(model.WorkShiftAction{}, s.decide())
}

func (s *HeuristicSuite) TestFallbackPasses() {
	s.player.HasCar = true

	s.Equal(model.PassAction{}, s.decide())
}

func (s *HeuristicSuite) TestDecisionIsStateless() {
	s.player.Hunger = 40
	s.player.Cash = 100

	first := s.decide()
	second := s.decide()
	s.Equal(first, second)
}
