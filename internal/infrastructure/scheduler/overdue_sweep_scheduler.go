package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/felipesbcabral/desafio-pc-sub000/internal/domain/debt"
	"go.uber.org/zap"
)

// SummaryProvider computes the portfolio summary at a reference date
type SummaryProvider interface {
	PortfolioSummary(ctx context.Context, referenceDate time.Time) (debt.PortfolioSummary, error)
}

// PortfolioRecorder records a computed summary, typically as gauges
type PortfolioRecorder interface {
	RecordPortfolio(ctx context.Context, summary debt.PortfolioSummary)
}

// OverdueSweepConfig holds configuration for the overdue sweep
type OverdueSweepConfig struct {
	Enabled bool

	// SweepHour is the local hour (0-23) of the daily run
	SweepHour int

	// JobTimeout bounds a single run
	JobTimeout time.Duration

	// Location decides the local day and hour. Defaults to UTC.
	Location *time.Location
}

// DefaultOverdueSweepConfig returns default configuration
func DefaultOverdueSweepConfig() OverdueSweepConfig {
	return OverdueSweepConfig{
		Enabled:    true,
		SweepHour:  1,
		JobTimeout: 5 * time.Minute,
		Location:   time.UTC,
	}
}

// OverdueSweepScheduler computes the portfolio summary once a day and hands
// it to the recorder. It only reads titles; accrual is never written back.
type OverdueSweepScheduler struct {
	provider SummaryProvider
	recorder PortfolioRecorder
	logger   *zap.Logger
	config   OverdueSweepConfig
	now      func() time.Time

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
	lastRun   time.Time
	lastErr   error
}

// OverdueSweepOption configures the scheduler
type OverdueSweepOption func(*OverdueSweepScheduler)

// WithClock overrides the scheduler's time source
func WithClock(now func() time.Time) OverdueSweepOption {
	return func(s *OverdueSweepScheduler) { s.now = now }
}

// NewOverdueSweepScheduler creates the scheduler. recorder may be nil.
func NewOverdueSweepScheduler(
	provider SummaryProvider,
	recorder PortfolioRecorder,
	logger *zap.Logger,
	config OverdueSweepConfig,
	opts ...OverdueSweepOption,
) (*OverdueSweepScheduler, error) {
	if provider == nil {
		return nil, fmt.Errorf("%w: summary provider is required", ErrInvalidConfig)
	}
	if config.SweepHour < 0 || config.SweepHour > 23 {
		return nil, fmt.Errorf("%w: sweep hour %d out of range", ErrInvalidConfig, config.SweepHour)
	}
	if config.JobTimeout <= 0 {
		config.JobTimeout = DefaultOverdueSweepConfig().JobTimeout
	}
	if config.Location == nil {
		config.Location = time.UTC
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &OverdueSweepScheduler{
		provider: provider,
		recorder: recorder,
		logger:   logger,
		config:   config,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Start starts the daily loop
func (s *OverdueSweepScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return nil
	}
	if !s.config.Enabled {
		s.mu.Unlock()
		s.logger.Info("Overdue sweep scheduler is disabled")
		return nil
	}
	s.isRunning = true
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go s.runDaily(ctx)

	s.logger.Info("Overdue sweep scheduler started",
		zap.Int("sweep_hour", s.config.SweepHour),
		zap.String("location", s.config.Location.String()),
	)
	return nil
}

// Stop cancels the loop and waits for a running sweep, bounded by ctx
func (s *OverdueSweepScheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = false
	cancel := s.cancel
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("Overdue sweep scheduler stopped gracefully")
		return nil
	case <-ctx.Done():
		s.logger.Warn("Overdue sweep scheduler stop timed out")
		return ctx.Err()
	}
}

// TriggerNow starts an immediate sweep in the background
func (s *OverdueSweepScheduler) TriggerNow(ctx context.Context) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return ErrSchedulerNotRunning
	}
	s.wg.Add(1)
	s.mu.Unlock()

	s.logger.Info("Triggering immediate overdue sweep")
	go func() {
		defer s.wg.Done()
		_, _ = s.RunOnce(ctx)
	}()
	return nil
}

// RunOnce computes today's summary and records it
func (s *OverdueSweepScheduler) RunOnce(ctx context.Context) (debt.PortfolioSummary, error) {
	runCtx, cancel := context.WithTimeout(ctx, s.config.JobTimeout)
	defer cancel()

	started := s.now()
	today := started.In(s.config.Location)
	summary, err := s.provider.PortfolioSummary(runCtx, today)
	duration := s.now().Sub(started)

	s.mu.Lock()
	s.lastRun = started
	s.lastErr = err
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("Overdue sweep failed",
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return debt.PortfolioSummary{}, err
	}

	if s.recorder != nil {
		s.recorder.RecordPortfolio(runCtx, summary)
	}

	s.logger.Info("Overdue sweep completed",
		zap.String("reference_date", summary.ReferenceDate.Format(time.DateOnly)),
		zap.Duration("duration", duration),
		zap.Int("total_titles", summary.TotalTitles),
		zap.Int("overdue_titles", summary.OverdueTitles),
		zap.String("total_outstanding", summary.TotalOutstanding.StringFixed(2)),
		zap.String("average_days_overdue", summary.AverageDaysOverdue.String()),
	)
	return summary, nil
}

// LastRun returns the start time and error of the latest sweep
func (s *OverdueSweepScheduler) LastRun() (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRun, s.lastErr
}

// IsRunning returns whether the scheduler is running
func (s *OverdueSweepScheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isRunning
}

func (s *OverdueSweepScheduler) runDaily(ctx context.Context) {
	defer s.wg.Done()

	for {
		now := s.now()
		next := nextRunAt(now, s.config.SweepHour, s.config.Location)
		delay := next.Sub(now)

		s.logger.Info("Daily overdue sweep scheduled",
			zap.Time("next_run", next),
			zap.Duration("delay", delay),
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Debug("Overdue sweep loop stopping")
			return
		case <-timer.C:
			_, _ = s.RunOnce(ctx)
		}
	}
}

// nextRunAt returns the next occurrence of hour:00 in loc strictly after now
func nextRunAt(now time.Time, hour int, loc *time.Location) time.Time {
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), hour, 0, 0, 0, loc)
	if !next.After(local) {
		next = time.Date(local.Year(), local.Month(), local.Day()+1, hour, 0, 0, 0, loc)
	}
	return next
}
