// Package timeline provides a list of deferred callbacks driven by an explicit
// clock. All callbacks run on the goroutine that calls Advance, so owners of a
// Timeline get cooperative scheduling without locks.
package timeline

import (
	"context"
	"slices"
	"sort"
	"time"
)

// StepID identifies a scheduled step. The zero value never refers to a step.
type StepID uint64

// Func is a scheduled callback.
type Func func(ctx context.Context)

type step struct {
	id  StepID
	due time.Time
	fn  Func
}

// Timeline holds pending steps ordered by due time, then by scheduling order.
type Timeline struct {
	now   time.Time
	next  StepID
	steps []step
}

// New creates an empty timeline whose clock starts at start.
func New(start time.Time) *Timeline {
	return &Timeline{now: start}
}

// Now returns the timeline's current time. Inside a callback this is the due
// time of the step being run, not the wall clock.
func (t *Timeline) Now() time.Time {
	return t.now
}

// After schedules fn to run d after the timeline's current time.
// Negative delays are treated as zero.
func (t *Timeline) After(d time.Duration, fn Func) StepID {
	if d < 0 {
		d = 0
	}
	t.next++
	s := step{id: t.next, due: t.now.Add(d), fn: fn}

	// Insert after every step due at or before s so ties keep scheduling order.
	i := sort.Search(len(t.steps), func(i int) bool {
		return t.steps[i].due.After(s.due)
	})
	t.steps = slices.Insert(t.steps, i, s)
	return s.id
}

// Cancel removes a single pending step. It reports whether the step was found.
func (t *Timeline) Cancel(id StepID) bool {
	for i := range t.steps {
		if t.steps[i].id == id {
			t.steps = slices.Delete(t.steps, i, i+1)
			return true
		}
	}
	return false
}

// CancelAll removes every pending step and returns how many were dropped.
func (t *Timeline) CancelAll() int {
	n := len(t.steps)
	t.steps = nil
	return n
}

// Pending returns the number of scheduled steps.
func (t *Timeline) Pending() int {
	return len(t.steps)
}

// NextDue returns the due time of the earliest pending step.
func (t *Timeline) NextDue() (time.Time, bool) {
	if len(t.steps) == 0 {
		return time.Time{}, false
	}
	return t.steps[0].due, true
}

// Advance runs every step due at or before now, in order, and returns the
// number of steps run. Steps scheduled by a callback are relative to that
// callback's due time and run in the same call if they are already due.
func (t *Timeline) Advance(ctx context.Context, now time.Time) int {
	fired := 0
	for len(t.steps) > 0 && !t.steps[0].due.After(now) {
		s := t.steps[0]
		t.steps = slices.Delete(t.steps, 0, 1)
		t.now = s.due
		s.fn(ctx)
		fired++
	}
	if now.After(t.now) {
		t.now = now
	}
	return fired
}
