package model

// PlayerID uniquely identifies a seat's player within a session
type PlayerID string

// Happiness and hunger are bounded meters
const (
	MeterMin = 0
	MeterMax = 100
)

// WeeklyLedger accumulates per-turn flows; reset at every turn end
type WeeklyLedger struct {
	Income          int      `json:"income"`
	Expenses        int      `json:"expenses"`
	HappinessChange int      `json:"happinessChange"`
	Graduations     []string `json:"graduations"`
}

// Player holds one seat's mutable simulation state
type Player struct {
	ID   PlayerID `json:"id"`
	Name string   `json:"name"`

	// Money
	Cash    int `json:"cash"`
	Savings int `json:"savings"`
	Loan    int `json:"loan"`

	// Meters, always within [MeterMin, MeterMax]
	Happiness int `json:"happiness"`
	Hunger    int `json:"hunger"`

	// Education; EducationLevel never decreases
	EducationLevel       int      `json:"educationLevel"`
	EducationCredits     int      `json:"educationCredits"`
	EducationCreditsGoal int      `json:"educationCreditsGoal"`
	EnrolledCourse       CourseID `json:"enrolledCourse"`

	// Career; CareerLevel never decreases
	CareerLevel int   `json:"careerLevel"`
	JobID       JobID `json:"jobId"`

	// Time remaining this turn, and shortfall owed to the next one
	Time        int `json:"time"`
	TimeDeficit int `json:"timeDeficit"`

	Location  Location `json:"location"`
	HasCar    bool     `json:"hasCar"`
	Inventory []Item   `json:"inventory"`

	Weekly WeeklyLedger `json:"weekly"`
}

// Wealth is cash plus savings
func (p *Player) Wealth() int {
	return p.Cash + p.Savings
}

// IsEmployed returns true if the player currently holds a job
func (p *Player) IsEmployed() bool {
	return p.JobID != ""
}

// IsEnrolled returns true if the player is enrolled in a course
func (p *Player) IsEnrolled() bool {
	return p.EnrolledCourse != ""
}

// AdjustHappiness applies a clamped change and returns the delta actually applied.
// The applied delta is accumulated into the weekly ledger.
func (p *Player) AdjustHappiness(delta int) int {
	before := p.Happiness
	p.Happiness = clampMeter(p.Happiness + delta)
	applied := p.Happiness - before
	p.Weekly.HappinessChange += applied
	return applied
}

// AdjustHunger applies a clamped change and returns the delta actually applied
func (p *Player) AdjustHunger(delta int) int {
	before := p.Hunger
	p.Hunger = clampMeter(p.Hunger + delta)
	return p.Hunger - before
}

// Owns returns true if an item with the given name is in the inventory
func (p *Player) Owns(name string) bool {
	for _, it := range p.Inventory {
		if it.Name == name {
			return true
		}
	}
	return false
}

// HasEffect returns true if any owned item grants the effect
func (p *Player) HasEffect(effect ItemEffect) bool {
	for _, it := range p.Inventory {
		if it.Effect == effect {
			return true
		}
	}
	return false
}

// AddToInventory adds the item unless one with the same name is already owned
func (p *Player) AddToInventory(item Item) bool {
	if p.Owns(item.Name) {
		return false
	}
	p.Inventory = append(p.Inventory, item)
	return true
}

// ResetWeekly clears the weekly accumulators
func (p *Player) ResetWeekly() {
	p.Weekly = WeeklyLedger{}
}

// Clone returns a deep copy of the player
func (p *Player) Clone() *Player {
	c := *p
	if p.Inventory != nil {
		c.Inventory = make([]Item, len(p.Inventory))
		copy(c.Inventory, p.Inventory)
	}
	if p.Weekly.Graduations != nil {
		c.Weekly.Graduations = make([]string, len(p.Weekly.Graduations))
		copy(c.Weekly.Graduations, p.Weekly.Graduations)
	}
	return &c
}

func clampMeter(v int) int {
	if v < MeterMin {
		return MeterMin
	}
	if v > MeterMax {
		return MeterMax
	}
	return v
}
