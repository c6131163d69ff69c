package engine

import (
	"sort"
	"time"
)

// Scheduler runs a callback after a delay. Implementations must invoke
// callbacks on the same goroutine that drives the engine.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending callback.
type Timer interface {
	// Stop cancels the callback. It returns false if the callback already
	// ran or was stopped before.
	Stop() bool
}

// StepScheduler is a manually advanced clock. Callbacks fire inside Advance,
// in due order, on the goroutine that calls Advance. The TUI advances it by
// the frame interval; tests advance it directly.
type StepScheduler struct {
	now   time.Duration
	seq   uint64
	tasks []*stepTimer
}

type stepTimer struct {
	due     time.Duration
	seq     uint64
	fn      func()
	stopped bool
	fired   bool
}

func (t *stepTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// NewStepScheduler returns a scheduler at time zero.
func NewStepScheduler() *StepScheduler {
	return &StepScheduler{}
}

// AfterFunc schedules f to run once Advance moves the clock at least d past
// the current time.
func (s *StepScheduler) AfterFunc(d time.Duration, f func()) Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &stepTimer{due: s.now + d, seq: s.seq, fn: f}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance moves the clock forward by dt and runs every callback that became
// due, including ones scheduled by earlier callbacks in the same call.
// It returns the number of callbacks run.
func (s *StepScheduler) Advance(dt time.Duration) int {
	if dt > 0 {
		s.now += dt
	}

	fired := 0
	for {
		t := s.nextDue()
		if t == nil {
			break
		}
		t.fired = true
		t.fn()
		fired++
	}
	s.compact()
	return fired
}

// Now returns the scheduler's elapsed time.
func (s *StepScheduler) Now() time.Duration {
	return s.now
}

// Pending returns how many callbacks are waiting.
func (s *StepScheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// nextDue returns the earliest live task whose due time has passed.
func (s *StepScheduler) nextDue() *stepTimer {
	var next *stepTimer
	for _, t := range s.tasks {
		if t.stopped || t.fired || t.due > s.now {
			continue
		}
		if next == nil || t.due < next.due || (t.due == next.due && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

// compact drops finished tasks and keeps the rest sorted by due time.
func (s *StepScheduler) compact() {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.stopped && !t.fired {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
	sort.Slice(s.tasks, func(i, j int) bool {
		if s.tasks[i].due == s.tasks[j].due {
			return s.tasks[i].seq < s.tasks[j].seq
		}
		return s.tasks[i].due < s.tasks[j].due
	})
}
