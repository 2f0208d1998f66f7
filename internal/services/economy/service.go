package economy

import (
	"log/slog"
	"math"

	"github.com/mcoot/fastlane/internal/catalog"
	"github.com/mcoot/fastlane/internal/model"
	"github.com/mcoot/fastlane/internal/services/journal"
)

// Service applies money, item and car transactions for the current seat.
// It holds no game state; every operation validates fully before mutating.
type Service struct {
	catalog *catalog.Catalog
	rules   model.Rules
	journal *journal.Journal
	logger  *slog.Logger
}

// New creates a new economy Service
func New(cat *catalog.Catalog, rules model.Rules, j *journal.Journal, logger *slog.Logger) *Service {
	return &Service{
		catalog: cat,
		rules:   rules,
		journal: j,
		logger:  logger.With(slog.String("component", "economy")),
	}
}

// Spend deducts amount from the player's cash if they can afford it
func (s *Service) Spend(p *model.Player, amount int) bool {
	if amount < 0 || p.Cash < amount {
		return false
	}
	p.Cash -= amount
	return true
}

// BuyItem purchases a catalog item at its selling location
func (s *Service) BuyItem(g *model.GameState, name string) bool {
	p := g.CurrentPlayer()
	item, ok := s.catalog.Item(name)
	if !ok {
		return s.journal.Reject(g, "%s: unknown item %q", p.Name, name)
	}
	if p.Location != item.Location {
		return s.journal.Reject(g, "%s must be at the %s to buy %s", p.Name, item.Location, item.Name)
	}
	if item.Kept() && p.Owns(item.Name) {
		return s.journal.Reject(g, "%s already owns %s", p.Name, item.Name)
	}
	if p.Cash < item.Cost {
		return s.journal.Reject(g, "%s cannot afford %s ($%d, has $%d)", p.Name, item.Name, item.Cost, p.Cash)
	}

	s.Spend(p, item.Cost)
	p.Weekly.Expenses += item.Cost
	events := []model.EventType{model.EventCashChanged}
	if item.HappinessBoost != 0 {
		p.AdjustHappiness(item.HappinessBoost)
		events = append(events, model.EventHappinessChanged)
	}
	if item.HungerReduction > 0 {
		p.AdjustHunger(-item.HungerReduction)
		events = append(events, model.EventHungerChanged)
	}
	if item.Kept() {
		p.AddToInventory(item)
		events = append(events, model.EventInventoryChanged)
	}

	s.logger.Debug("item bought",
		slog.String("player_id", string(p.ID)),
		slog.String("item", item.Name),
		slog.Int("cost", item.Cost))
	s.journal.PlayerChangedAll(g, p, events...)
	s.journal.Record(g, model.LogEconomy, "%s bought %s for $%d", p.Name, item.Name, item.Cost)
	return true
}

// Deposit moves cash into savings
func (s *Service) Deposit(g *model.GameState, amount int) bool {
	p := g.CurrentPlayer()
	if !s.atBank(g, p, "deposit") || !s.positive(g, p, amount) {
		return false
	}
	if p.Cash < amount {
		return s.journal.Reject(g, "%s cannot deposit $%d with only $%d cash", p.Name, amount, p.Cash)
	}

	p.Cash -= amount
	p.Savings += amount
	s.journal.PlayerChangedAll(g, p, model.EventCashChanged, model.EventSavingsChanged)
	s.journal.Record(g, model.LogEconomy, "%s deposited $%d", p.Name, amount)
	return true
}

// Withdraw moves savings into cash
func (s *Service) Withdraw(g *model.GameState, amount int) bool {
	p := g.CurrentPlayer()
	if !s.atBank(g, p, "withdraw") || !s.positive(g, p, amount) {
		return false
	}
	if p.Savings < amount {
		return s.journal.Reject(g, "%s cannot withdraw $%d with only $%d saved", p.Name, amount, p.Savings)
	}

	p.Savings -= amount
	p.Cash += amount
	s.journal.PlayerChangedAll(g, p, model.EventCashChanged, model.EventSavingsChanged)
	s.journal.Record(g, model.LogEconomy, "%s withdrew $%d", p.Name, amount)
	return true
}

// TakeLoan borrows cash up to the loan cap
func (s *Service) TakeLoan(g *model.GameState, amount int) bool {
	p := g.CurrentPlayer()
	if !s.atBank(g, p, "borrow") || !s.positive(g, p, amount) {
		return false
	}
	if amount > s.rules.LoanCap-p.Loan {
		return s.journal.Reject(g, "%s cannot borrow $%d: loan would exceed the $%d cap", p.Name, amount, s.rules.LoanCap)
	}

	p.Loan += amount
	p.Cash += amount
	s.journal.PlayerChangedAll(g, p, model.EventCashChanged, model.EventLoanChanged)
	s.journal.Record(g, model.LogEconomy, "%s borrowed $%d", p.Name, amount)
	return true
}

// RepayLoan pays down the loan from cash
func (s *Service) RepayLoan(g *model.GameState, amount int) bool {
	p := g.CurrentPlayer()
	if !s.atBank(g, p, "repay a loan") || !s.positive(g, p, amount) {
		return false
	}
	if p.Cash < amount {
		return s.journal.Reject(g, "%s cannot repay $%d with only $%d cash", p.Name, amount, p.Cash)
	}
	if amount > p.Loan {
		return s.journal.Reject(g, "%s only owes $%d", p.Name, p.Loan)
	}

	p.Cash -= amount
	p.Loan -= amount
	s.journal.PlayerChangedAll(g, p, model.EventCashChanged, model.EventLoanChanged)
	s.journal.Record(g, model.LogEconomy, "%s repaid $%d", p.Name, amount)
	return true
}

// BuyCar purchases a car at the dealership
func (s *Service) BuyCar(g *model.GameState) bool {
	p := g.CurrentPlayer()
	if p.Location != model.LocationDealership {
		return s.journal.Reject(g, "%s must be at the %s to buy a car", p.Name, model.LocationDealership)
	}
	if p.HasCar {
		return s.journal.Reject(g, "%s already owns a car", p.Name)
	}
	if p.Cash < s.rules.CarPrice {
		return s.journal.Reject(g, "%s cannot afford a car ($%d, has $%d)", p.Name, s.rules.CarPrice, p.Cash)
	}
	if p.Time < s.rules.CarPurchaseHours {
		return s.journal.Reject(g, "%s needs %dh to buy a car, has %dh", p.Name, s.rules.CarPurchaseHours, p.Time)
	}

	s.Spend(p, s.rules.CarPrice)
	p.Weekly.Expenses += s.rules.CarPrice
	p.Time -= s.rules.CarPurchaseHours
	p.HasCar = true
	s.journal.PlayerChangedAll(g, p, model.EventCashChanged, model.EventTimeChanged)
	s.journal.Record(g, model.LogEconomy, "%s bought a car for $%d", p.Name, s.rules.CarPrice)
	return true
}

// LoanInterest is the interest charged on the loan at a turn end
func (s *Service) LoanInterest(loan int) int {
	if loan <= 0 {
		return 0
	}
	return int(math.Round(float64(loan) * s.rules.LoanInterestRate))
}

func (s *Service) atBank(g *model.GameState, p *model.Player, what string) bool {
	if p.Location != model.LocationBank {
		return s.journal.Reject(g, "%s must be at the %s to %s", p.Name, model.LocationBank, what)
	}
	return true
}

func (s *Service) positive(g *model.GameState, p *model.Player, amount int) bool {
	if amount <= 0 {
		return s.journal.Reject(g, "%s: amount must be positive, got %d", p.Name, amount)
	}
	return true
}
