package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"eligibility_hub/internal/domain/entities"
)

func TestShouldPoll(t *testing.T) {
	completed := entities.Submission{ID: "a", QueueStatus: entities.QueueStatusCompleted, EligibilityStatus: entities.EligibilityStatusEligible}
	failed := entities.Submission{ID: "b", QueueStatus: entities.QueueStatusFailed}

	t.Run("all terminal", func(t *testing.T) {
		if ShouldPoll([]entities.Submission{completed, failed}) {
			t.Fatalf("expected no polling for terminal submissions")
		}
	})

	t.Run("one pending flips it", func(t *testing.T) {
		pending := completed
		pending.QueueStatus = entities.QueueStatusPending
		if !ShouldPoll([]entities.Submission{completed, pending}) {
			t.Fatalf("expected polling with one pending item")
		}
	})

	t.Run("case-insensitive and in_process spelling", func(t *testing.T) {
		s := entities.Submission{ID: "c", QueueStatus: entities.QueueStatus("In_Process")}
		if !ShouldPoll([]entities.Submission{s}) {
			t.Fatalf("expected polling for In_Process")
		}
	})

	t.Run("eligibility status alone can hold polling open", func(t *testing.T) {
		s := entities.Submission{ID: "d", QueueStatus: entities.QueueStatusCompleted, EligibilityStatus: entities.EligibilityStatus("PENDING")}
		if !ShouldPoll([]entities.Submission{s}) {
			t.Fatalf("expected polling while eligibility still pending")
		}
	})

	t.Run("empty list", func(t *testing.T) {
		if ShouldPoll(nil) {
			t.Fatalf("expected no polling for empty list")
		}
	})
}

func TestPollWatcher_TicksWhilePendingThenParks(t *testing.T) {
	var pending atomic.Bool
	pending.Store(true)
	var refreshes atomic.Int32

	w := NewPollWatcher(5*time.Millisecond,
		func(context.Context) bool { return pending.Load() },
		func(context.Context) { refreshes.Add(1) },
	)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)
	defer w.Stop()

	deadline := time.After(500 * time.Millisecond)
	for refreshes.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("watcher never ticked: %d refreshes", refreshes.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}

	// Drain the pending work; the watcher must park.
	pending.Store(false)
	time.Sleep(50 * time.Millisecond)
	idle := refreshes.Load()
	time.Sleep(50 * time.Millisecond)
	if refreshes.Load() != idle {
		t.Fatalf("watcher kept refreshing while parked: %d -> %d", idle, refreshes.Load())
	}

	// New pending work plus a kick restarts the ticking.
	pending.Store(true)
	w.Kick()
	deadline = time.After(500 * time.Millisecond)
	for refreshes.Load() == idle {
		select {
		case <-deadline:
			t.Fatalf("watcher did not resume after kick")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestPollWatcher_SuppressesOverlappingRefreshes(t *testing.T) {
	var mu sync.Mutex
	inFlight := 0
	maxInFlight := 0
	release := make(chan struct{})

	w := NewPollWatcher(2*time.Millisecond,
		func(context.Context) bool { return true },
		func(context.Context) {
			mu.Lock()
			inFlight++
			if inFlight > maxInFlight {
				maxInFlight = inFlight
			}
			mu.Unlock()
			<-release
			mu.Lock()
			inFlight--
			mu.Unlock()
		},
	)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	// Let several ticks elapse while the first refresh is blocked.
	time.Sleep(30 * time.Millisecond)
	close(release)
	w.Stop()
	time.Sleep(10 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if maxInFlight != 1 {
		t.Fatalf("expected at most one in-flight refresh, saw %d", maxInFlight)
	}
}

func TestPollWatcher_StopIsIdempotent(t *testing.T) {
	w := NewPollWatcher(time.Millisecond,
		func(context.Context) bool { return false },
		func(context.Context) {},
	)
	w.Start(context.Background())
	w.Stop()
	w.Stop()
}
