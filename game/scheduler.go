package game

import (
	"time"
)

// MaxCatchUp bounds how many missed periods a catch-up task replays per Advance
const MaxCatchUp = 8

// Task is one named periodic job
type Task struct {
	Name    string
	Period  time.Duration
	CatchUp bool // replay missed periods instead of skipping them
	Run     func()

	next   time.Time
	paused bool
	runs   uint64
}

// Scheduler runs named periodic tasks off one clock on one goroutine.
// Periods are independent of each other.
type Scheduler struct {
	tasks  []*Task
	byName map[string]*Task
}

// NewScheduler creates an empty scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{byName: make(map[string]*Task)}
}

// Add registers a task, first due one period after now
func (s *Scheduler) Add(t *Task, now time.Time) {
	t.next = now.Add(t.Period)
	s.tasks = append(s.tasks, t)
	s.byName[t.Name] = t
}

// Pause stops a task from running until resumed
func (s *Scheduler) Pause(name string) {
	if t, ok := s.byName[name]; ok {
		t.paused = true
	}
}

// Resume restarts a task, first due one period after now
func (s *Scheduler) Resume(name string, now time.Time) {
	if t, ok := s.byName[name]; ok {
		t.paused = false
		t.next = now.Add(t.Period)
	}
}

// Paused reports whether the named task is paused
func (s *Scheduler) Paused(name string) bool {
	t, ok := s.byName[name]
	return !ok || t.paused
}

// Runs reports how many times the named task has run
func (s *Scheduler) Runs(name string) uint64 {
	if t, ok := s.byName[name]; ok {
		return t.runs
	}
	return 0
}

// Advance runs every task due at or before now, earliest deadline first.
// Ties run in registration order. A task may pause or resume others.
func (s *Scheduler) Advance(now time.Time) {
	budget := make(map[*Task]int, len(s.tasks))
	for {
		var due *Task
		for _, t := range s.tasks {
			if t.paused || t.next.After(now) {
				continue
			}
			if due == nil || t.next.Before(due.next) {
				due = t
			}
		}
		if due == nil {
			return
		}
		budget[due]++
		due.runs++
		due.Run()
		due.next = due.next.Add(due.Period)
		if !due.CatchUp || budget[due] >= MaxCatchUp {
			// realign past now, dropping missed periods
			for !due.next.After(now) {
				due.next = due.next.Add(due.Period)
			}
		}
	}
}

// NextDue returns the earliest deadline among running tasks
func (s *Scheduler) NextDue() (time.Time, bool) {
	var best time.Time
	found := false
	for _, t := range s.tasks {
		if t.paused {
			continue
		}
		if !found || t.next.Before(best) {
			best = t.next
			found = true
		}
	}
	return best, found
}
