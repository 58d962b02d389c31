package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/felipesbcabral/desafio-pc-sub000/internal/domain/debt"
	"go.opentelemetry.io/otel/metric"
)

// MeterName names the meter of the debt metrics
const MeterName = "github.com/felipesbcabral/desafio-pc-sub000/debt"

// Payment targets
const (
	TargetTitle       = "title"
	TargetInstallment = "installment"
)

// AccrualMetrics records payment transitions and portfolio gauges.
// Portfolio values come from a recomputed summary, never from stored accrual.
type AccrualMetrics struct {
	titlesCreated    *Counter
	paid             *Counter
	reopened         *Counter
	portfolioTitles  *Gauge
	outstanding      *FloatGauge
	avgDaysOverdue   *FloatGauge
	operationLatency *Histogram
}

// NewAccrualMetrics registers the instruments on meter
func NewAccrualMetrics(meter metric.Meter) (*AccrualMetrics, error) {
	var m AccrualMetrics
	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	var err error
	m.titlesCreated, err = NewCounter(meter, "debt.titles.created", "Titles created", "{title}")
	collect(err)
	m.paid, err = NewCounter(meter, "debt.payments.paid", "Titles or installments marked paid", "{payment}")
	collect(err)
	m.reopened, err = NewCounter(meter, "debt.payments.reopened", "Paid titles or installments reopened", "{payment}")
	collect(err)
	m.portfolioTitles, err = NewGauge(meter, "debt.portfolio.titles", "Titles by status at the last sweep", "{title}")
	collect(err)
	m.outstanding, err = NewFloatGauge(meter, "debt.portfolio.outstanding", "Outstanding updated value at the last sweep", "{BRL}")
	collect(err)
	m.avgDaysOverdue, err = NewFloatGauge(meter, "debt.portfolio.avg_days_overdue", "Average days overdue of overdue titles", "d")
	collect(err)
	m.operationLatency, err = NewHistogram(meter, "debt.service.duration", "Title service operation duration", "s", DurationBuckets...)
	collect(err)

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return &m, nil
}

// RecordTitleCreated counts a created title
func (m *AccrualMetrics) RecordTitleCreated(ctx context.Context) {
	m.titlesCreated.Inc(ctx)
}

// RecordPaid counts a paid transition of a title or installment
func (m *AccrualMetrics) RecordPaid(ctx context.Context, target string) {
	m.paid.Inc(ctx, AttrTarget.String(target))
}

// RecordReopened counts a paid to unpaid transition
func (m *AccrualMetrics) RecordReopened(ctx context.Context, target string) {
	m.reopened.Inc(ctx, AttrTarget.String(target))
}

// RecordOperation records the latency and outcome of a service operation
func (m *AccrualMetrics) RecordOperation(ctx context.Context, operation string, d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.operationLatency.RecordDuration(ctx, d, AttrOperation.String(operation), AttrResult.String(result))
}

// RecordPortfolio sets the portfolio gauges from a summary
func (m *AccrualMetrics) RecordPortfolio(ctx context.Context, s debt.PortfolioSummary) {
	m.portfolioTitles.Record(ctx, int64(s.PaidTitles), AttrStatus.String(string(debt.TitleStatusPaid)))
	m.portfolioTitles.Record(ctx, int64(s.OpenTitles), AttrStatus.String(string(debt.TitleStatusOpen)))
	m.portfolioTitles.Record(ctx, int64(s.OverdueTitles), AttrStatus.String(string(debt.TitleStatusOverdue)))
	m.outstanding.Record(ctx, s.TotalOutstanding.InexactFloat64())
	m.avgDaysOverdue.Record(ctx, s.AverageDaysOverdue.InexactFloat64())
}
