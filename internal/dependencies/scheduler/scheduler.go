package scheduler

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/mcoot/fastlane/internal/dependencies/clock"
)

// Scheduler defers work to a later point on the host's loop
type Scheduler interface {
	Schedule(name string, delay time.Duration, task func())
}

type entry struct {
	seq  uint64
	name string
	due  time.Time
	task func()
}

// Queue is a deterministic Scheduler driven by a Clock. Nothing runs until
// the owner calls RunDue or Flush, so tasks always execute on the caller's
// goroutine.
type Queue struct {
	mu      sync.Mutex
	clock   clock.Clock
	entries []entry
	nextSeq uint64
	logger  *slog.Logger
}

// Ensure Queue implements Scheduler
var _ Scheduler = (*Queue)(nil)

// NewQueue creates an empty queue
func NewQueue(clk clock.Clock, logger *slog.Logger) *Queue {
	return &Queue{
		clock:  clk,
		logger: logger.With(slog.String("component", "scheduler")),
	}
}

// Schedule queues a task to run once delay has elapsed on the clock
func (q *Queue) Schedule(name string, delay time.Duration, task func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.nextSeq++
	q.entries = append(q.entries, entry{
		seq:  q.nextSeq,
		name: name,
		due:  q.clock.Now().Add(delay),
		task: task,
	})
	sort.SliceStable(q.entries, func(i, j int) bool {
		if q.entries[i].due.Equal(q.entries[j].due) {
			return q.entries[i].seq < q.entries[j].seq
		}
		return q.entries[i].due.Before(q.entries[j].due)
	})
	q.logger.Debug("task scheduled", slog.String("task", name), slog.Duration("delay", delay))
}

// RunDue runs every task whose due time has passed, including tasks that
// become due while running. Returns the number of tasks run.
func (q *Queue) RunDue() int {
	ran := 0
	for {
		e, ok := q.pop(true)
		if !ok {
			return ran
		}
		q.logger.Debug("task running", slog.String("task", e.name))
		e.task()
		ran++
	}
}

// Flush runs queued tasks in due order regardless of the clock until the
// queue is empty or limit tasks have run. Returns the number of tasks run.
func (q *Queue) Flush(limit int) int {
	ran := 0
	for ran < limit {
		e, ok := q.pop(false)
		if !ok {
			break
		}
		q.logger.Debug("task flushed", slog.String("task", e.name))
		e.task()
		ran++
	}
	return ran
}

// NextDue returns the due time of the earliest task
func (q *Queue) NextDue() (time.Time, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.entries) == 0 {
		return time.Time{}, false
	}
	return q.entries[0].due, true
}

// Len returns the number of queued tasks
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

// Clear drops every queued task
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.entries = nil
}

func (q *Queue) pop(onlyDue bool) (entry, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.entries) == 0 {
		return entry{}, false
	}
	e := q.entries[0]
	if onlyDue && e.due.After(q.clock.Now()) {
		return entry{}, false
	}
	q.entries = q.entries[1:]
	return e, true
}
