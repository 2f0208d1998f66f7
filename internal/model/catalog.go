package model

// Location identifies one of the fixed places a player can be
type Location string

const (
	LocationHome       Location = "home"
	LocationWorkplace  Location = "workplace"
	LocationSchool     Location = "school"
	LocationBank       Location = "bank"
	LocationMall       Location = "mall"
	LocationMarket     Location = "market"
	LocationDealership Location = "dealership"
)

// JobID identifies a job in the catalog
type JobID string

// CourseID identifies a course in the catalog
type CourseID string

// ItemEffect is a lasting benefit granted by owning an asset
type ItemEffect string

const (
	EffectNone             ItemEffect = ""
	EffectHungerMitigation ItemEffect = "hunger_mitigation"
	EffectComfort          ItemEffect = "comfort"
)

// LocationInfo describes a location in the catalog
type LocationInfo struct {
	ID          Location `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
}

// Job is a position that can be applied for at the workplace
type Job struct {
	ID                JobID  `yaml:"id" json:"id"`
	Title             string `yaml:"title" json:"title"`
	Level             int    `yaml:"level" json:"level"`
	Wage              int    `yaml:"wage" json:"wage"` // per hour
	ShiftHours        int    `yaml:"shift_hours" json:"shiftHours"`
	RequiredEducation int    `yaml:"required_education" json:"requiredEducation"`
}

// ShiftPay is the cash earned for one full shift
func (j Job) ShiftPay() int {
	return j.Wage * j.ShiftHours
}

// Course is an enrollable program; completing it raises education to Level
type Course struct {
	ID         CourseID `yaml:"id" json:"id"`
	Name       string   `yaml:"name" json:"name"`
	Level      int      `yaml:"level" json:"level"`
	Cost       int      `yaml:"cost" json:"cost"`
	Credits    int      `yaml:"credits" json:"credits"`
	StudyHours int      `yaml:"study_hours" json:"studyHours"`
}

// Item is something sold at a location. Assets and persistent items are kept in
// the inventory once bought; everything else is consumed immediately.
type Item struct {
	Name            string     `yaml:"name" json:"name"`
	Location        Location   `yaml:"location" json:"location"`
	Cost            int        `yaml:"cost" json:"cost"`
	HappinessBoost  int        `yaml:"happiness_boost" json:"happinessBoost"`
	HungerReduction int        `yaml:"hunger_reduction" json:"hungerReduction"`
	Asset           bool       `yaml:"asset" json:"asset"`
	Persistent      bool       `yaml:"persistent" json:"persistent"`
	Effect          ItemEffect `yaml:"effect" json:"effect"`
}

// Kept returns true if buying the item adds it to the inventory
func (i Item) Kept() bool {
	return i.Asset || i.Persistent
}

// IsFood returns true if the item reduces hunger
func (i Item) IsFood() bool {
	return i.HungerReduction > 0
}
