package debt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/felipesbcabral/desafio-pc-sub000/internal/domain/debt"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/domain/shared"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/logger"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// conflictRetries is how many times a payment transition is re-applied on a
// fresh copy after losing an optimistic lock
const conflictRetries = 1

var (
	ErrTitleNotFound  = shared.NewDomainError("NOT_FOUND", "Title not found")
	ErrDebtorNotFound = shared.NewDomainError("NOT_FOUND", "Debtor not found")
	errUnknownDebtor  = shared.NewDomainError(debt.ErrInvalidDebtor.Code, "Debtor does not exist")
)

// dayCalculator is the calculator for rates stored as percent per day
var dayCalculator = func() debt.AccrualCalculator {
	calc, err := debt.NewAccrualCalculator(debt.RatePeriodDay)
	if err != nil {
		panic(err)
	}
	return calc
}()

// TitleService orchestrates title use cases. Every amount it returns is
// recomputed from the stored terms at a reference date; nothing accrued is stored.
type TitleService struct {
	titleRepo      debt.TitleRepository
	debtorRepo     debt.DebtorRepository
	auditRepo      debt.AuditRepository
	calc           debt.AccrualCalculator
	inputPeriod    debt.RatePeriod
	location       *time.Location
	publisher      shared.EventPublisher
	idempotency    shared.IdempotencyStore
	idempotencyTTL time.Duration
	now            func() time.Time
	logger         *zap.Logger
	metrics        MetricsRecorder
}

// TitleServiceOption configures a TitleService
type TitleServiceOption func(*TitleService)

// WithEventPublisher publishes the domain events raised by each use case
func WithEventPublisher(p shared.EventPublisher) TitleServiceOption {
	return func(s *TitleService) {
		s.publisher = p
	}
}

// WithIdempotencyStore enables Idempotency-Key handling on MarkPaid
func WithIdempotencyStore(store shared.IdempotencyStore) TitleServiceOption {
	return func(s *TitleService) {
		s.idempotency = store
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) TitleServiceOption {
	return func(s *TitleService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) TitleServiceOption {
	return func(s *TitleService) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics reports business counters to m
func WithMetrics(m MetricsRecorder) TitleServiceOption {
	return func(s *TitleService) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithLocation sets the time zone that decides which calendar day is today
func WithLocation(loc *time.Location) TitleServiceOption {
	return func(s *TitleService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithDefaultRatePeriod sets the period assumed for submitted interest rates
// that do not state one
func WithDefaultRatePeriod(p debt.RatePeriod) TitleServiceOption {
	return func(s *TitleService) {
		if p.IsValid() {
			s.inputPeriod = p
		}
	}
}

// NewTitleService creates a new TitleService
func NewTitleService(
	titleRepo debt.TitleRepository,
	debtorRepo debt.DebtorRepository,
	auditRepo debt.AuditRepository,
	opts ...TitleServiceOption,
) *TitleService {
	s := &TitleService{
		titleRepo:      titleRepo,
		debtorRepo:     debtorRepo,
		auditRepo:      auditRepo,
		calc:           dayCalculator,
		inputPeriod:    debt.RatePeriodDay,
		location:       time.UTC,
		idempotencyTTL: shared.DefaultIdempotencyTTL,
		now:            time.Now,
		logger:         zap.NewNop(),
		metrics:        noopMetrics{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Today is the current calendar date in the configured time zone
func (s *TitleService) Today() time.Time {
	return debt.DateOnly(s.now().In(s.location))
}

func (s *TitleService) referenceDate(d *Date) time.Time {
	if d == nil || d.IsZero() {
		return s.Today()
	}
	return debt.DateOnly(d.Time)
}

// Create creates a title, optionally split into installments
func (s *TitleService) Create(ctx context.Context, req CreateTitleRequest) (resp *TitleResponse, err error) {
	ctx, done := s.observe(ctx, "create")
	defer func() { done(err) }()

	if _, err := s.debtorRepo.FindByID(ctx, req.DebtorID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, errUnknownDebtor
		}
		return nil, fmt.Errorf("failed to load debtor: %w", err)
	}

	terms, err := titleTerms(req.OriginalValue, req.DueDate, req.RateInput, s.inputPeriod)
	if err != nil {
		return nil, err
	}

	now := s.now()
	number, err := s.titleRepo.GenerateTitleNumber(ctx, now.In(s.location))
	if err != nil {
		return nil, fmt.Errorf("failed to generate title number: %w", err)
	}
	title, err := debt.NewTitle(number, req.DebtorID, req.Description, terms, now)
	if err != nil {
		return nil, err
	}

	if req.Installments != nil {
		plan, err := s.splitPlan(title, *req.Installments)
		if err != nil {
			return nil, err
		}
		if err := title.ReplaceInstallments(plan, now); err != nil {
			return nil, err
		}
	}

	if err := s.titleRepo.Save(ctx, title); err != nil {
		return nil, fmt.Errorf("failed to save title: %w", err)
	}
	s.dispatch(ctx, title)

	logger.With(ctx, s.logger).Info("Title created",
		logger.TitleID(title.ID.String()),
		zap.String("number", title.Number),
		logger.DebtorID(title.DebtorID.String()),
		zap.String("original_value", title.OriginalValue.StringFixed(2)),
		zap.Int("installments", len(title.Installments)),
	)
	return s.respond(title, s.Today())
}

// Get returns a title with its accrual at today's date
func (s *TitleService) Get(ctx context.Context, id uuid.UUID) (*TitleResponse, error) {
	return s.GetStatement(ctx, id, nil)
}

// GetStatement returns a title with its accrual at referenceDate, today when nil
func (s *TitleService) GetStatement(ctx context.Context, id uuid.UUID, referenceDate *Date) (*TitleResponse, error) {
	title, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.respond(title, s.referenceDate(referenceDate))
}

// List returns a page of titles, each recomputed at the filter's reference date
func (s *TitleService) List(ctx context.Context, filter TitleListFilter) (*shared.Paginated[TitleResponse], error) {
	f, err := s.titleFilter(filter)
	if err != nil {
		return nil, err
	}
	titles, err := s.titleRepo.FindAll(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to list titles: %w", err)
	}
	total, err := s.titleRepo.Count(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to count titles: %w", err)
	}
	return s.page(titles, total, f)
}

// Overdue returns unpaid titles due before the reference date
func (s *TitleService) Overdue(ctx context.Context, filter TitleListFilter) (*shared.Paginated[TitleResponse], error) {
	f, err := s.titleFilter(filter)
	if err != nil {
		return nil, err
	}
	overdue := debt.TitleStatusOverdue
	f.Status = &overdue

	titles, err := s.titleRepo.FindOverdue(ctx, f.ReferenceDate, f)
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue titles: %w", err)
	}
	total, err := s.titleRepo.Count(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to count overdue titles: %w", err)
	}
	return s.page(titles, total, f)
}

func (s *TitleService) page(titles []debt.Title, total int64, f debt.TitleFilter) (*shared.Paginated[TitleResponse], error) {
	items := make([]TitleResponse, 0, len(titles))
	for i := range titles {
		resp, err := s.respond(&titles[i], f.ReferenceDate)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	page := shared.NewPaginated(items, total, f.Page, f.PageSize)
	return &page, nil
}

// Update changes the description and terms of an unpaid title.
// A concurrent edit is reported, never overwritten.
func (s *TitleService) Update(ctx context.Context, id uuid.UUID, req UpdateTitleRequest) (resp *TitleResponse, err error) {
	ctx, done := s.observe(ctx, "update", attribute.String("title.id", id.String()))
	defer func() { done(err) }()

	terms, err := titleTerms(req.OriginalValue, req.DueDate, req.RateInput, s.inputPeriod)
	if err != nil {
		return nil, err
	}
	title, _, err := s.mutate(ctx, id, 0, func(t *debt.Title) (bool, error) {
		return true, t.Update(req.Description, terms, s.now())
	})
	if err != nil {
		return nil, err
	}
	return s.respond(title, s.Today())
}

// Delete removes an unpaid title with no paid installments
func (s *TitleService) Delete(ctx context.Context, id uuid.UUID) (err error) {
	ctx, done := s.observe(ctx, "delete", attribute.String("title.id", id.String()))
	defer func() { done(err) }()

	title, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if err := title.MarkDeleted(s.now()); err != nil {
		return err
	}
	if err := s.titleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return ErrTitleNotFound
		}
		return fmt.Errorf("failed to delete title: %w", err)
	}
	s.dispatch(ctx, title)
	logger.With(ctx, s.logger).Info("Title deleted", logger.TitleID(id.String()), zap.String("number", title.Number))
	return nil
}

// MarkPaid freezes accrual on a title. Paying a paid title changes nothing.
// With an idempotency key, a repeated request returns the current state
// without writing.
func (s *TitleService) MarkPaid(ctx context.Context, id uuid.UUID, idempotencyKey string) (resp *TitleResponse, err error) {
	ctx, done := s.observe(ctx, "mark_paid", attribute.String("title.id", id.String()))
	defer func() { done(err) }()

	claimedKey := ""
	if idempotencyKey != "" && s.idempotency != nil {
		key := "title-pay:" + id.String() + ":" + idempotencyKey
		isNew, err := s.idempotency.MarkProcessed(ctx, key, s.idempotencyTTL)
		switch {
		case err != nil:
			logger.With(ctx, s.logger).Warn("Idempotency store unavailable, applying payment",
				logger.TitleID(id.String()), zap.Error(err))
		case !isNew:
			logger.With(ctx, s.logger).Info("Duplicate payment request ignored",
				logger.TitleID(id.String()), zap.String("idempotency_key", idempotencyKey))
			return s.Get(ctx, id)
		default:
			claimedKey = key
		}
	}

	title, changed, err := s.mutate(ctx, id, conflictRetries, func(t *debt.Title) (bool, error) {
		return t.MarkPaid(s.now()), nil
	})
	if err != nil {
		// the payment was not applied, so a retry with the same key must run
		if claimedKey != "" {
			if relErr := s.idempotency.Release(ctx, claimedKey); relErr != nil {
				logger.With(ctx, s.logger).Error("Failed to release idempotency key",
					logger.TitleID(id.String()), zap.String("idempotency_key", idempotencyKey), zap.Error(relErr))
			}
		}
		return nil, err
	}
	if changed {
		logger.With(ctx, s.logger).Info("Title marked as paid", logger.TitleID(id.String()), zap.String("number", title.Number))
	}
	return s.respond(title, s.Today())
}

// MarkUnpaid reopens a paid title. Accrual resumes from the original due date.
func (s *TitleService) MarkUnpaid(ctx context.Context, id uuid.UUID, reason string) (resp *TitleResponse, err error) {
	ctx, done := s.observe(ctx, "mark_unpaid", attribute.String("title.id", id.String()))
	defer func() { done(err) }()

	title, _, err := s.mutate(ctx, id, conflictRetries, func(t *debt.Title) (bool, error) {
		return true, t.MarkUnpaid(s.now(), reason)
	})
	if err != nil {
		return nil, err
	}
	logger.With(ctx, s.logger).Warn("Paid title reopened",
		logger.TitleID(id.String()),
		zap.String("number", title.Number),
		zap.String("reason", reason),
		zap.String("actor", logger.GetActor(ctx)),
	)
	return s.respond(title, s.Today())
}

// PayInstallment pays one installment; paying the last open one pays the title
func (s *TitleService) PayInstallment(ctx context.Context, id uuid.UUID, number int) (resp *TitleResponse, err error) {
	ctx, done := s.observe(ctx, "pay_installment", attribute.String("title.id", id.String()), attribute.Int("installment.number", number))
	defer func() { done(err) }()

	title, _, err := s.mutate(ctx, id, conflictRetries, func(t *debt.Title) (bool, error) {
		return t.PayInstallment(number, s.now())
	})
	if err != nil {
		return nil, err
	}
	return s.respond(title, s.Today())
}

// ReopenInstallment reverts a paid installment, reopening the title if it was paid
func (s *TitleService) ReopenInstallment(ctx context.Context, id uuid.UUID, number int, reason string) (resp *TitleResponse, err error) {
	ctx, done := s.observe(ctx, "reopen_installment", attribute.String("title.id", id.String()), attribute.Int("installment.number", number))
	defer func() { done(err) }()

	title, _, err := s.mutate(ctx, id, conflictRetries, func(t *debt.Title) (bool, error) {
		return true, t.ReopenInstallment(number, s.now(), reason)
	})
	if err != nil {
		return nil, err
	}
	logger.With(ctx, s.logger).Warn("Paid installment reopened",
		logger.TitleID(id.String()),
		zap.Int("installment", number),
		zap.String("reason", reason),
		zap.String("actor", logger.GetActor(ctx)),
	)
	return s.respond(title, s.Today())
}

// ReplaceInstallments re-splits an unpaid title into a new installment plan
func (s *TitleService) ReplaceInstallments(ctx context.Context, id uuid.UUID, req InstallmentPlanRequest) (resp *TitleResponse, err error) {
	ctx, done := s.observe(ctx, "replace_installments", attribute.String("title.id", id.String()))
	defer func() { done(err) }()

	title, _, err := s.mutate(ctx, id, 0, func(t *debt.Title) (bool, error) {
		plan, err := s.splitPlan(t, req)
		if err != nil {
			return false, err
		}
		return true, t.ReplaceInstallments(plan, s.now())
	})
	if err != nil {
		return nil, err
	}
	return s.respond(title, s.Today())
}

// PreviewInstallments computes a plan and its accrual without saving anything.
// The same rounding and rate conversion as Create apply, so a saved title
// reports the previewed amounts.
func (s *TitleService) PreviewInstallments(ctx context.Context, req PreviewInstallmentsRequest) (*PreviewResponse, error) {
	interest, penalty, err := toStoredRates(req.RateInput, s.inputPeriod)
	if err != nil {
		return nil, err
	}
	if req.DueDate == nil || req.DueDate.IsZero() {
		return nil, debt.ErrInvalidDueDate
	}
	value := req.OriginalValue.Round(2)
	if !value.IsPositive() {
		return nil, shared.NewDomainError(debt.ErrInvalidAmount.Code, "Title value must be greater than zero")
	}

	plan, err := debt.SplitInstallments(value, req.Count, req.DueDate.Time, req.IntervalMonths)
	if err != nil {
		return nil, err
	}
	ref := s.referenceDate(req.ReferenceDate)
	previews, err := debt.PreviewPlan(s.calc, plan, interest, penalty, ref)
	if err != nil {
		return nil, err
	}

	resp := &PreviewResponse{
		ReferenceDate:      NewDate(ref),
		InterestRatePerDay: interest.Percent(),
		PenaltyRate:        penalty.Percent(),
		Total:              decimal.Zero,
		Installments:       make([]PlanPreviewItem, 0, len(previews)),
	}
	for _, p := range previews {
		resp.Total = resp.Total.Add(p.Accrual.Total)
		resp.Installments = append(resp.Installments, PlanPreviewItem{
			Number:         p.Item.Number,
			Value:          p.Item.Value,
			DueDate:        NewDate(p.Item.DueDate),
			UpdatedValue:   p.Accrual.Total,
			InterestAmount: p.Accrual.Interest,
			Penalty:        p.Accrual.Penalty,
			DaysOverdue:    p.Accrual.DaysOverdue,
		})
	}
	return resp, nil
}

// Summary returns the dashboard portfolio summary at referenceDate, today when nil
func (s *TitleService) Summary(ctx context.Context, referenceDate *Date) (*SummaryResponse, error) {
	summary, err := s.PortfolioSummary(ctx, s.referenceDate(referenceDate))
	if err != nil {
		return nil, err
	}
	resp := toSummaryResponse(summary)
	return &resp, nil
}

// PortfolioSummary summarizes every title at referenceDate
func (s *TitleService) PortfolioSummary(ctx context.Context, referenceDate time.Time) (debt.PortfolioSummary, error) {
	titles, err := s.titleRepo.FindAll(ctx, debt.TitleFilter{ReferenceDate: referenceDate})
	if err != nil {
		return debt.PortfolioSummary{}, fmt.Errorf("failed to load titles: %w", err)
	}
	return debt.Summarize(titles, s.calc, referenceDate)
}

// AuditTrail lists the payment transitions recorded for a title, oldest first
func (s *TitleService) AuditTrail(ctx context.Context, id uuid.UUID) ([]AuditEntryResponse, error) {
	entries, err := s.auditRepo.FindByAggregate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load audit trail: %w", err)
	}
	out := make([]AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, AuditEntryResponse{
			ID:         e.ID,
			EventType:  e.EventType,
			OccurredAt: e.OccurredAt,
			Payload:    e.Payload,
		})
	}
	return out, nil
}

func (s *TitleService) load(ctx context.Context, id uuid.UUID) (*debt.Title, error) {
	ctx = logger.WithTitleID(ctx, id.String())
	title, err := s.titleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrTitleNotFound
		}
		return nil, fmt.Errorf("failed to load title: %w", err)
	}
	return title, nil
}

// mutate loads the title, applies fn and saves with the version check.
// On a lost race the whole load-apply-save runs again, up to retries times.
func (s *TitleService) mutate(ctx context.Context, id uuid.UUID, retries int, fn func(*debt.Title) (bool, error)) (*debt.Title, bool, error) {
	ctx = logger.WithTitleID(ctx, id.String())
	for attempt := 0; ; attempt++ {
		title, err := s.load(ctx, id)
		if err != nil {
			return nil, false, err
		}
		changed, err := fn(title)
		if err != nil {
			return nil, false, err
		}
		if !changed {
			return title, false, nil
		}

		err = s.titleRepo.SaveWithLock(ctx, title)
		if err == nil {
			s.dispatch(ctx, title)
			return title, true, nil
		}
		if !errors.Is(err, shared.ErrConcurrencyConflict) {
			return nil, false, fmt.Errorf("failed to save title: %w", err)
		}
		if attempt >= retries {
			return nil, false, err
		}
		logger.With(ctx, s.logger).Debug("Title changed concurrently, retrying", zap.Int("attempt", attempt+1))
	}
}

// dispatch reports and publishes the title's pending events. The change is
// already committed, so a publish failure is logged and not returned.
func (s *TitleService) dispatch(ctx context.Context, title *debt.Title) {
	events := title.GetDomainEvents()
	title.ClearDomainEvents()
	if len(events) == 0 {
		return
	}

	for _, evt := range events {
		switch evt.EventType() {
		case debt.EventTypeTitleCreated:
			s.metrics.RecordTitleCreated(ctx)
		case debt.EventTypeTitlePaid:
			s.metrics.RecordPaid(ctx, TargetTitle)
		case debt.EventTypeInstallmentPaid:
			s.metrics.RecordPaid(ctx, TargetInstallment)
		case debt.EventTypeTitleReopened:
			s.metrics.RecordReopened(ctx, TargetTitle)
		case debt.EventTypeInstallmentReopened:
			s.metrics.RecordReopened(ctx, TargetInstallment)
		}
	}

	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, events...); err != nil {
		logger.With(logger.WithTitleID(ctx, title.ID.String()), s.logger).Error("Failed to publish title events",
			zap.Int("events", len(events)),
			zap.Error(err),
		)
	}
}

func (s *TitleService) respond(title *debt.Title, referenceDate time.Time) (*TitleResponse, error) {
	st, err := title.Statement(s.calc, referenceDate)
	if err != nil {
		return nil, err
	}
	resp := toTitleResponse(st)
	return &resp, nil
}

func (s *TitleService) splitPlan(title *debt.Title, req InstallmentPlanRequest) ([]debt.InstallmentPlanItem, error) {
	first := title.DueDate
	if req.FirstDueDate != nil && !req.FirstDueDate.IsZero() {
		first = req.FirstDueDate.Time
	}
	return debt.SplitInstallments(title.OriginalValue, req.Count, first, req.IntervalMonths)
}

func (s *TitleService) titleFilter(in TitleListFilter) (debt.TitleFilter, error) {
	f := debt.TitleFilter{
		Filter: shared.Filter{
			Page:     in.Page,
			PageSize: in.PageSize,
			OrderBy:  in.OrderBy,
			OrderDir: in.OrderDir,
			Search:   in.Search,
		},
		ReferenceDate: s.Today(),
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = shared.DefaultFilter().PageSize
	}

	if in.DebtorID != "" {
		id, err := uuid.Parse(in.DebtorID)
		if err != nil {
			return f, shared.NewDomainError("INVALID_INPUT", "debtorId must be a UUID")
		}
		f.DebtorID = &id
	}
	if in.Status != "" {
		status := debt.TitleStatus(in.Status)
		if !status.IsValid() {
			return f, shared.NewDomainError("INVALID_INPUT", "status must be open, overdue or paid")
		}
		f.Status = &status
	}
	for _, p := range []struct {
		raw  string
		name string
		dst  **time.Time
	}{
		{in.DueFrom, "dueFrom", &f.DueFrom},
		{in.DueTo, "dueTo", &f.DueTo},
	} {
		if p.raw == "" {
			continue
		}
		d, err := ParseDate(p.raw)
		if err != nil {
			return f, shared.NewDomainError("INVALID_INPUT", p.name+": "+err.Error())
		}
		t := d.Time
		*p.dst = &t
	}
	if in.ReferenceDate != "" {
		d, err := ParseDate(in.ReferenceDate)
		if err != nil {
			return f, shared.NewDomainError("INVALID_INPUT", "referenceDate: "+err.Error())
		}
		f.ReferenceDate = d.Time
	}
	return f, nil
}

// observe opens a span and times an operation; the returned func records the outcome
func (s *TitleService) observe(ctx context.Context, operation string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	start := time.Now()
	ctx, span := telemetry.StartServiceSpan(ctx, "title", operation, attrs...)
	return ctx, func(err error) {
		telemetry.EndSpan(span, err)
		s.metrics.RecordOperation(ctx, operation, time.Since(start), err)
	}
}
