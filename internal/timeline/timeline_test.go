package timeline

import (
	"context"
	"testing"
	"time"
)

var epoch = time.Date(2025, 4, 7, 12, 0, 0, 0, time.UTC)

func TestAdvanceRunsStepsInDueOrder(t *testing.T) {
	tl := New(epoch)
	var got []string

	tl.After(300*time.Millisecond, func(context.Context) { got = append(got, "c") })
	tl.After(100*time.Millisecond, func(context.Context) { got = append(got, "a") })
	tl.After(200*time.Millisecond, func(context.Context) { got = append(got, "b") })

	if fired := tl.Advance(context.Background(), epoch.Add(250*time.Millisecond)); fired != 2 {
		t.Errorf("Advance() fired = %d, want 2", fired)
	}
	if tl.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", tl.Pending())
	}

	tl.Advance(context.Background(), epoch.Add(time.Second))

	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("ran %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("step %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTiesKeepSchedulingOrder(t *testing.T) {
	tl := New(epoch)
	var got []int

	for i := 0; i < 5; i++ {
		tl.After(50*time.Millisecond, func(context.Context) { got = append(got, i) })
	}
	tl.Advance(context.Background(), epoch.Add(50*time.Millisecond))

	for i, v := range got {
		if v != i {
			t.Fatalf("tie order = %v, want ascending", got)
		}
	}
}

func TestChainedStepsAreRelativeToDueTime(t *testing.T) {
	tl := New(epoch)
	var times []time.Time

	tl.After(100*time.Millisecond, func(context.Context) {
		times = append(times, tl.Now())
		tl.After(100*time.Millisecond, func(context.Context) {
			times = append(times, tl.Now())
		})
	})

	// A single late advance still runs the chained step at its own due time.
	tl.Advance(context.Background(), epoch.Add(time.Second))

	if len(times) != 2 {
		t.Fatalf("ran %d steps, want 2", len(times))
	}
	if want := epoch.Add(100 * time.Millisecond); !times[0].Equal(want) {
		t.Errorf("first step at %v, want %v", times[0], want)
	}
	if want := epoch.Add(200 * time.Millisecond); !times[1].Equal(want) {
		t.Errorf("chained step at %v, want %v", times[1], want)
	}
	if !tl.Now().Equal(epoch.Add(time.Second)) {
		t.Errorf("Now() = %v, want advance target", tl.Now())
	}
}

func TestCancel(t *testing.T) {
	tl := New(epoch)
	ran := false
	id := tl.After(10*time.Millisecond, func(context.Context) { ran = true })

	if !tl.Cancel(id) {
		t.Error("Cancel() = false, want true")
	}
	if tl.Cancel(id) {
		t.Error("second Cancel() = true, want false")
	}
	tl.Advance(context.Background(), epoch.Add(time.Second))
	if ran {
		t.Error("cancelled step ran")
	}
}

func TestCancelAllFromCallback(t *testing.T) {
	tl := New(epoch)
	later := 0

	tl.After(10*time.Millisecond, func(context.Context) { tl.CancelAll() })
	tl.After(20*time.Millisecond, func(context.Context) { later++ })
	tl.After(30*time.Millisecond, func(context.Context) { later++ })

	if fired := tl.Advance(context.Background(), epoch.Add(time.Second)); fired != 1 {
		t.Errorf("Advance() fired = %d, want 1", fired)
	}
	if later != 0 {
		t.Errorf("%d steps ran after CancelAll", later)
	}
	if tl.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", tl.Pending())
	}
}

func TestNextDue(t *testing.T) {
	tl := New(epoch)
	if _, ok := tl.NextDue(); ok {
		t.Error("NextDue() on empty timeline reported a step")
	}

	tl.After(-time.Second, func(context.Context) {})
	due, ok := tl.NextDue()
	if !ok || !due.Equal(epoch) {
		t.Errorf("NextDue() = %v, %v, want %v, true", due, ok, epoch)
	}
}

func TestAdvanceDoesNotRewindClock(t *testing.T) {
	tl := New(epoch)
	tl.Advance(context.Background(), epoch.Add(-time.Minute))
	if !tl.Now().Equal(epoch) {
		t.Errorf("Now() = %v, want %v", tl.Now(), epoch)
	}
}
