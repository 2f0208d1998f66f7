package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"github.com/mcoot/fastlane/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultData []byte

// Catalog holds the read-only lookup tables for locations, jobs, courses and items
type Catalog struct {
	Locations []model.LocationInfo `yaml:"locations"`
	Jobs      []model.Job          `yaml:"jobs"`
	Courses   []model.Course       `yaml:"courses"`
	Items     []model.Item         `yaml:"items"`

	locations map[model.Location]model.LocationInfo
	jobs      map[model.JobID]model.Job
	courses   map[model.CourseID]model.Course
	items     map[string]model.Item
}

// Load parses a YAML catalog and validates it
func Load(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.index(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFile reads and parses a YAML catalog from disk
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Load(data)
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := Load(defaultData)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return c
}

func (c *Catalog) index() error {
	if len(c.Locations) == 0 || len(c.Jobs) == 0 || len(c.Courses) == 0 || len(c.Items) == 0 {
		return fmt.Errorf("%w: every table needs at least one entry", model.ErrCatalogInvalid)
	}

	c.locations = make(map[model.Location]model.LocationInfo, len(c.Locations))
	for _, l := range c.Locations {
		c.locations[l.ID] = l
	}
	if _, ok := c.locations[model.LocationHome]; !ok {
		return fmt.Errorf("%w: missing %q location", model.ErrCatalogInvalid, model.LocationHome)
	}

	c.jobs = make(map[model.JobID]model.Job, len(c.Jobs))
	for _, j := range c.Jobs {
		if j.ShiftHours <= 0 {
			return fmt.Errorf("%w: job %q has no shift hours", model.ErrCatalogInvalid, j.ID)
		}
		c.jobs[j.ID] = j
	}

	c.courses = make(map[model.CourseID]model.Course, len(c.Courses))
	for _, co := range c.Courses {
		if co.Credits <= 0 {
			return fmt.Errorf("%w: course %q has no credits", model.ErrCatalogInvalid, co.ID)
		}
		c.courses[co.ID] = co
	}
	sort.SliceStable(c.Courses, func(i, k int) bool { return c.Courses[i].Level < c.Courses[k].Level })
	sort.SliceStable(c.Jobs, func(i, k int) bool { return c.Jobs[i].Level < c.Jobs[k].Level })

	c.items = make(map[string]model.Item, len(c.Items))
	for _, it := range c.Items {
		if _, ok := c.locations[it.Location]; !ok {
			return fmt.Errorf("%w: item %q sold at unknown location %q", model.ErrCatalogInvalid, it.Name, it.Location)
		}
		c.items[it.Name] = it
	}
	return nil
}

// HasLocation returns true if the location exists
func (c *Catalog) HasLocation(id model.Location) bool {
	_, ok := c.locations[id]
	return ok
}

// Location looks up a location by ID
func (c *Catalog) Location(id model.Location) (model.LocationInfo, bool) {
	l, ok := c.locations[id]
	return l, ok
}

// Job looks up a job by ID
func (c *Catalog) Job(id model.JobID) (model.Job, bool) {
	j, ok := c.jobs[id]
	return j, ok
}

// Course looks up a course by ID
func (c *Catalog) Course(id model.CourseID) (model.Course, bool) {
	co, ok := c.courses[id]
	return co, ok
}

// Item looks up an item by name
func (c *Catalog) Item(name string) (model.Item, bool) {
	it, ok := c.items[name]
	return it, ok
}

// CourseForLevel returns the course that completes the given education level
func (c *Catalog) CourseForLevel(level int) (model.Course, bool) {
	for _, co := range c.Courses {
		if co.Level == level {
			return co, true
		}
	}
	return model.Course{}, false
}

// MaxEducationLevel is the highest level any course grants
func (c *Catalog) MaxEducationLevel() int {
	max := 0
	for _, co := range c.Courses {
		if co.Level > max {
			max = co.Level
		}
	}
	return max
}

// ItemsAt returns the items sold at a location, in catalog order
func (c *Catalog) ItemsAt(loc model.Location) []model.Item {
	var out []model.Item
	for _, it := range c.Items {
		if it.Location == loc {
			out = append(out, it)
		}
	}
	return out
}

// FoodItems returns every item that reduces hunger
func (c *Catalog) FoodItems() []model.Item {
	var out []model.Item
	for _, it := range c.Items {
		if it.IsFood() {
			out = append(out, it)
		}
	}
	return out
}

// BestQualifyingJob returns the highest-level job the player may apply for:
// education requirement met and at most one level above current career.
func (c *Catalog) BestQualifyingJob(educationLevel, careerLevel int) (model.Job, bool) {
	var best model.Job
	found := false
	for _, j := range c.Jobs {
		if j.RequiredEducation > educationLevel || j.Level > careerLevel+1 {
			continue
		}
		if !found || j.Level > best.Level {
			best = j
			found = true
		}
	}
	return best, found
}
