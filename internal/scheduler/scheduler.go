package scheduler

import (
	"book_rental_dapp/utils"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

type JobFunc func(ctx context.Context) error

type job struct {
	name           string
	fn             JobFunc
	interval       time.Duration
	runImmediately bool
}

// Scheduler runs every registered job on its own ticker. Runs of one job never
// overlap; a slow run delays the next tick instead.
type Scheduler struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	jobs    []job
	started bool
}

func New() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{ctx: ctx, cancel: cancel}
}

// NewIntervalJob registers fn. Jobs registered after Start are ignored.
func (s *Scheduler) NewIntervalJob(name string, fn JobFunc, interval time.Duration, runImmediately bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		slog.Warn("scheduler already started, job ignored", slog.String("job", name))
		return
	}

	if interval <= 0 {
		slog.Warn("non-positive interval, job ignored", slog.String("job", name), slog.Duration("interval", interval))
		return
	}

	s.jobs = append(s.jobs, job{name: name, fn: fn, interval: interval, runImmediately: runImmediately})
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return
	}
	s.started = true

	for _, j := range s.jobs {
		s.wg.Add(1)
		go s.loop(j)
	}

	slog.Info("scheduler started", slog.Int("jobs", len(s.jobs)))
}

// Stop cancels running jobs and waits for them to return.
func (s *Scheduler) Stop() {
	slog.Info("start stopping scheduler")
	s.cancel()
	s.wg.Wait()
	slog.Info("scheduler stopped")
}

func (s *Scheduler) loop(j job) {
	defer s.wg.Done()

	if j.runImmediately {
		s.run(j)
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.run(j)
		}
	}
}

func (s *Scheduler) run(j job) {
	ctx := utils.NewCtxWithRqID(s.ctx)
	rqID := utils.GetRequestIDFromCtx(ctx)
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			slog.Error("job panicked", slog.String("rqID", rqID), slog.String("job", j.name), slog.String("panic", fmt.Sprint(r)))
		}
	}()

	if err := j.fn(ctx); err != nil {
		slog.Error("job failed", slog.String("rqID", rqID), slog.String("job", j.name), slog.String("err", err.Error()))
		return
	}

	slog.Debug("job done", slog.String("rqID", rqID), slog.String("job", j.name), slog.Duration("took", time.Since(start)))
}
