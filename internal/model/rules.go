package model

import "time"

// Rules holds the fixed constants of the simulation
type Rules struct {
	HoursPerTurn      int
	StartingCash      int
	StartingHappiness int
	StartingHunger    int

	DailyExpense     int
	LoanCap          int
	LoanInterestRate float64

	HungerPerTurn           int
	HungerPerTurnWithFridge int
	HungerPenaltyThreshold  int
	HungerHappinessPenalty  int
	HappinessRecovery       int
	ComfortBonus            int

	TravelHoursWithCar int
	TravelHoursOnFoot  int
	CarPrice           int
	CarPurchaseHours   int
	EnrollHours        int
	ApplyHours         int
	RelaxHours         int
	RelaxHappiness     int
	WorkHappinessCost  int

	// Win condition
	WinWealth    int
	WinHappiness int
	WinEducation int
	WinCareer    int

	// Lose condition
	LoseHappiness int // lose at or below
	LoseHunger    int // lose at or above

	// AI pacing
	AIDelay           time.Duration
	AutoEndTurnDelay  time.Duration
	MaxAIStepsPerTurn int

	// AI heuristic thresholds
	AIHungerThreshold    int
	AILoanThreshold      int
	AIWealthThreshold    int
	AIHappinessThreshold int
	AICarReserve         int
}

// DefaultRules returns the standard rule set
func DefaultRules() Rules {
	return Rules{
		HoursPerTurn:      24,
		StartingCash:      0,
		StartingHappiness: 50,
		StartingHunger:    0,

		DailyExpense:     20,
		LoanCap:          5000,
		LoanInterestRate: 0.05,

		HungerPerTurn:           15,
		HungerPerTurnWithFridge: 8,
		HungerPenaltyThreshold:  70,
		HungerHappinessPenalty:  10,
		HappinessRecovery:       5,
		ComfortBonus:            3,

		TravelHoursWithCar: 1,
		TravelHoursOnFoot:  2,
		CarPrice:           3000,
		CarPurchaseHours:   1,
		EnrollHours:        1,
		ApplyHours:         1,
		RelaxHours:         4,
		RelaxHappiness:     6,
		WorkHappinessCost:  2,

		WinWealth:    10000,
		WinHappiness: 80,
		WinEducation: 3,
		WinCareer:    4,

		LoseHappiness: 0,
		LoseHunger:    100,

		AIDelay:           600 * time.Millisecond,
		AutoEndTurnDelay:  300 * time.Millisecond,
		MaxAIStepsPerTurn: 50,

		AIHungerThreshold:    30,
		AILoanThreshold:      1000,
		AIWealthThreshold:    2500,
		AIHappinessThreshold: 50,
		AICarReserve:         500,
	}
}

// TravelHours returns the time cost of one trip for the player
func (r Rules) TravelHours(p *Player) int {
	if p.HasCar {
		return r.TravelHoursWithCar
	}
	return r.TravelHoursOnFoot
}

// MeetsWin returns true if the player satisfies every win factor
func (r Rules) MeetsWin(p *Player) bool {
	return p.Wealth() >= r.WinWealth &&
		p.Happiness >= r.WinHappiness &&
		p.EducationLevel >= r.WinEducation &&
		p.CareerLevel >= r.WinCareer
}

// MeetsLose returns true if the player has hit a losing meter
func (r Rules) MeetsLose(p *Player) bool {
	return p.Happiness <= r.LoseHappiness || p.Hunger >= r.LoseHunger
}
