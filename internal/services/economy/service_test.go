package economy

import (
	"math"
	"testing"
	"time"

	"github.com/mcoot/fastlane/internal/catalog"
	"github.com/mcoot/fastlane/internal/dependencies/mocks"
	"github.com/mcoot/fastlane/internal/eventbus"
	"github.com/mcoot/fastlane/internal/model"
	"github.com/mcoot/fastlane/internal/services/journal"
	"github.com/mcoot/fastlane/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type ServiceSuite struct {
	suite.Suite
	bus     *eventbus.Bus
	service *Service
	game    *model.GameState
	player  *model.Player
	events  []model.EventType
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.bus = eventbus.New(testutil.NopLogger())
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	j := journal.New(s.bus, clk, testutil.NopLogger())
	s.service = New(catalog.Default(), model.DefaultRules(), j, testutil.NopLogger())
	s.player = testutil.NewPlayer("p1", "Alice")
	s.game = testutil.NewGame(s.player)
	s.events = nil
	s.bus.SubscribeAll(func(e model.EventType, _ any) {
		if e != model.EventLogAppended {
			s.events = append(s.events, e)
		}
	})
}

// assertRejected runs fn and checks that it failed without touching anything but the log
func (s *ServiceSuite) assertRejected(fn func() bool) {
	before := testutil.StateWithoutLog(s.game)
	logLen := len(s.game.Log)

	s.False(fn())

	s.Equal(before, testutil.StateWithoutLog(s.game))
	s.Require().Len(s.game.Log, logLen+1)
	s.Equal(model.LogError, s.game.Log[logLen].Category)
	s.Empty(s.events)
}

// Spend tests

func (s *ServiceSuite) TestSpend() {
	s.player.Cash = 50
	s.True(s.service.Spend(s.player, 50))
	s.Equal(0, s.player.Cash)
	s.False(s.service.Spend(s.player, 1))
	s.Equal(0, s.player.Cash)
	s.False(s.service.Spend(s.player, -5))
}

// BuyItem tests

func (s *ServiceSuite) TestBuyFoodReducesHunger() {
	s.player.Location = model.LocationMarket
	s.player.Cash = 100
	s.player.Hunger = 40

	s.Require().True(s.service.BuyItem(s.game, "Groceries"))

	s.Equal(70, s.player.Cash)
	s.Equal(10, s.player.Hunger)
	s.Equal(52, s.player.Happiness)
	s.Equal(30, s.player.Weekly.Expenses)
	s.Empty(s.player.Inventory)
	s.Equal([]model.EventType{model.EventCashChanged, model.EventHappinessChanged, model.EventHungerChanged}, s.events)
}

func (s *ServiceSuite) TestBuyAssetAddsToInventoryOnce() {
	s.player.Location = model.LocationMall
	s.player.Cash = 1000

	s.Require().True(s.service.BuyItem(s.game, "Refrigerator"))
	s.True(s.player.HasEffect(model.EffectHungerMitigation))
	s.Contains(s.events, model.EventInventoryChanged)

	s.events = nil
	s.assertRejected(func() bool { return s.service.BuyItem(s.game, "Refrigerator") })
	s.Len(s.player.Inventory, 1)
}

func (s *ServiceSuite) TestBuyItemRejections() {
	s.player.Cash = 5

	s.assertRejected(func() bool { return s.service.BuyItem(s.game, "Yacht") })
	s.assertRejected(func() bool { return s.service.BuyItem(s.game, "Burger") })

	s.player.Location = model.LocationMarket
	s.assertRejected(func() bool { return s.service.BuyItem(s.game, "Burger") })
	s.Contains(s.game.Log[len(s.game.Log)-1].Message, "cannot afford")
}

func (s *ServiceSuite) TestBuyItemHappinessIsClamped() {
	s.player.Location = model.LocationMall
	s.player.Cash = 500
	s.player.Happiness = 97

	s.Require().True(s.service.BuyItem(s.game, "New Clothes"))
	s.Equal(model.MeterMax, s.player.Happiness)
	s.Equal(3, s.player.Weekly.HappinessChange)
}

// Banking tests

func (s *ServiceSuite) TestDepositAndWithdraw() {
	s.player.Location = model.LocationBank
	s.player.Cash = 300

	s.Require().True(s.service.Deposit(s.game, 200))
	s.Equal(100, s.player.Cash)
	s.Equal(200, s.player.Savings)

	s.Require().True(s.service.Withdraw(s.game, 50))
	s.Equal(150, s.player.Cash)
	s.Equal(150, s.player.Savings)
}

func (s *ServiceSuite) TestBankingRejections() {
	s.player.Cash = 100
	s.assertRejected(func() bool { return s.service.Deposit(s.game, 10) })

	s.player.Location = model.LocationBank
	s.assertRejected(func() bool { return s.service.Deposit(s.game, 0) })
	s.assertRejected(func() bool { return s.service.Deposit(s.game, -1) })
	s.assertRejected(func() bool { return s.service.Deposit(s.game, 101) })
	s.assertRejected(func() bool { return s.service.Withdraw(s.game, 1) })
}

func (s *ServiceSuite) TestTakeLoanUpToCap() {
	s.player.Location = model.LocationBank
	s.player.Loan = 4000

	s.Require().True(s.service.TakeLoan(s.game, 1000))
	s.Equal(5000, s.player.Loan)
	s.Equal(1000, s.player.Cash)
}

func (s *ServiceSuite) TestTakeLoanAboveCapFails() {
	s.player.Location = model.LocationBank
	s.player.Loan = 4500

	s.assertRejected(func() bool { return s.service.TakeLoan(s.game, 501) })
	s.Equal(4500, s.player.Loan)

	s.assertRejected(func() bool { return s.service.TakeLoan(s.game, math.MaxInt) })
	s.Equal(4500, s.player.Loan)
}

func (s *ServiceSuite) TestRepayLoan() {
	s.player.Location = model.LocationBank
	s.player.Loan = 2500
	s.player.Cash = 3000

	s.Require().True(s.service.RepayLoan(s.game, 2500))
	s.Equal(0, s.player.Loan)
	s.Equal(500, s.player.Cash)
	s.Equal([]model.EventType{model.EventCashChanged, model.EventLoanChanged}, s.events)
}

func (s *ServiceSuite) TestRepayLoanRejections() {
	s.player.Location = model.LocationBank
	s.player.Loan = 100
	s.player.Cash = 50

	s.assertRejected(func() bool { return s.service.RepayLoan(s.game, 60) })
	s.player.Cash = 500
	s.assertRejected(func() bool { return s.service.RepayLoan(s.game, 101) })
}

// Car tests

func (s *ServiceSuite) TestBuyCar() {
	s.player.Location = model.LocationDealership
	s.player.Cash = 3500

	s.Require().True(s.service.BuyCar(s.game))
	s.True(s.player.HasCar)
	s.Equal(500, s.player.Cash)
	s.Equal(23, s.player.Time)
	s.Equal(3000, s.player.Weekly.Expenses)
}

func (s *ServiceSuite) TestBuyCarRejections() {
	s.player.Cash = 5000
	s.assertRejected(func() bool { return s.service.BuyCar(s.game) })

	s.player.Location = model.LocationDealership
	s.player.Time = 0
	s.assertRejected(func() bool { return s.service.BuyCar(s.game) })

	s.player.Time = 10
	s.player.Cash = 2999
	s.assertRejected(func() bool { return s.service.BuyCar(s.game) })

	s.player.Cash = 5000
	s.player.HasCar = true
	s.assertRejected(func() bool { return s.service.BuyCar(s.game) })
}

func (s *ServiceSuite) TestLoanInterestRounds() {
	s.Equal(0, s.service.LoanInterest(0))
	s.Equal(125, s.service.LoanInterest(2500))
	s.Equal(1, s.service.LoanInterest(20))
	s.Equal(2, s.service.LoanInterest(30))
}
