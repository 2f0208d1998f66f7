package factory

import (
	"time"

	"github.com/mcoot/fastlane/internal/catalog"
	"github.com/mcoot/fastlane/internal/dependencies/mocks"
	"github.com/mcoot/fastlane/internal/model"
	"github.com/mcoot/fastlane/internal/storage/memory"
	"github.com/mcoot/fastlane/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock   *mocks.MockClock
	MockRandom  *mocks.MockRandom
	MemoryStore *memory.Storage
}

// NewTestApp creates an App configured for testing with a mocked clock and
// in-memory storage. The session host is not started.
func NewTestApp() *TestApp {
	return NewTestAppWithRules(model.DefaultRules())
}

// NewTestAppWithRules is like NewTestApp with custom rule constants
func NewTestAppWithRules(rules model.Rules) *TestApp {
	return NewTestAppWithStrategy(rules, model.ControlHeuristic)
}

// NewTestAppWithStrategy is like NewTestAppWithRules with the computer seat
// using the given strategy. The random source is a queue-driven mock.
func NewTestAppWithStrategy(rules model.Rules, control model.SeatControl) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, catalog.Default(), rules, control, testutil.NopLogger())

	return &TestApp{
		App:         app,
		MockClock:   mockClock,
		MockRandom:  mockRandom,
		MemoryStore: store,
	}
}

// RunAI advances the mock clock one pacing step at a time, running due
// tasks, until the queue is empty. Only for use while the host is not running.
func (t *TestApp) RunAI() {
	for i := 0; i < 500 && t.Queue.Len() > 0; i++ {
		t.MockClock.Advance(t.Rules.AIDelay)
		t.Queue.RunDue()
	}
}
