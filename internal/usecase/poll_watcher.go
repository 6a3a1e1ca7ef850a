package usecase

import (
	"context"
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"eligibility_hub/internal/domain/entities"
)

// DefaultPollInterval masks slow or failed individual requests; no extra
// timeout is layered on top of the transport.
const DefaultPollInterval = 5 * time.Second

// ShouldPoll reports whether any submission still has in-flight work:
// a queue or eligibility status reading pending/processing/in_process,
// case-insensitively. Pure function, evaluated on the latest fetched data.
func ShouldPoll(items []entities.Submission) bool {
	for _, s := range items {
		for _, v := range []string{string(s.QueueStatus), string(s.EligibilityStatus)} {
			switch strings.ToLower(strings.TrimSpace(v)) {
			case "pending", "processing", "in_process":
				return true
			}
		}
	}
	return false
}

// PollWatcher drives the periodic re-fetch of tracked submissions. It ticks
// while the check function holds on the latest data, parks once it goes
// false, and is woken again by Kick when new pending work appears (submit,
// retry). A refresh already in progress suppresses the next tick's fetch so
// in-flight fetches never stack.
//
// The watcher is an explicit cancellable task: Stop (or context
// cancellation) tears it down deterministically.
type PollWatcher struct {
	interval time.Duration
	check    func(ctx context.Context) bool
	refresh  func(ctx context.Context)

	kick     chan struct{}
	stop     chan struct{}
	stopOnce sync.Once
	inFlight atomic.Bool
}

func NewPollWatcher(interval time.Duration, check func(ctx context.Context) bool, refresh func(ctx context.Context)) *PollWatcher {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &PollWatcher{
		interval: interval,
		check:    check,
		refresh:  refresh,
		kick:     make(chan struct{}, 1),
		stop:     make(chan struct{}),
	}
}

// Start launches the watcher goroutine. Safe to call once per watcher.
func (w *PollWatcher) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *PollWatcher) run(ctx context.Context) {
	for {
		if w.check(ctx) {
			if !w.tickUntilIdle(ctx) {
				return
			}
			continue
		}

		// Parked: no pending work anywhere. Wait for a kick.
		select {
		case <-w.kick:
		case <-w.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

// tickUntilIdle runs the active phase. Returns false when the watcher was
// stopped, true when polling should be re-evaluated (work drained or kick).
func (w *PollWatcher) tickUntilIdle(ctx context.Context) bool {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !w.check(ctx) {
				return true
			}
			w.maybeRefresh(ctx)
		case <-w.kick:
			w.maybeRefresh(ctx)
		case <-w.stop:
			return false
		case <-ctx.Done():
			return false
		}
	}
}

func (w *PollWatcher) maybeRefresh(ctx context.Context) {
	if !w.inFlight.CompareAndSwap(false, true) {
		log.Printf("[eligibility][watcher] refresh in flight; tick suppressed")
		return
	}
	go func() {
		defer w.inFlight.Store(false)
		w.refresh(ctx)
	}()
}

// Kick wakes a parked watcher (new pending submission). Non-blocking; a
// pending kick is enough.
func (w *PollWatcher) Kick() {
	select {
	case w.kick <- struct{}{}:
	default:
	}
}

// Stop tears the watcher down. Idempotent.
func (w *PollWatcher) Stop() {
	w.stopOnce.Do(func() { close(w.stop) })
}
