package debt

import (
	"context"
	"time"
)

// Payment targets reported to MetricsRecorder
const (
	TargetTitle       = "title"
	TargetInstallment = "installment"
)

// MetricsRecorder receives business counters from the services
type MetricsRecorder interface {
	RecordTitleCreated(ctx context.Context)
	RecordPaid(ctx context.Context, target string)
	RecordReopened(ctx context.Context, target string)
	RecordOperation(ctx context.Context, operation string, d time.Duration, err error)
}

// ExportStorage stores generated exports and hands out download links
type ExportStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, time.Time, error)
}

type noopMetrics struct{}

func (noopMetrics) RecordTitleCreated(context.Context)                            {}
func (noopMetrics) RecordPaid(context.Context, string)                            {}
func (noopMetrics) RecordReopened(context.Context, string)                        {}
func (noopMetrics) RecordOperation(context.Context, string, time.Duration, error) {}
