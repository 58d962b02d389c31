package debt

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/felipesbcabral/desafio-pc-sub000/internal/domain/shared"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	exportPageSize    = 100
	exportContentType = "text/csv; charset=utf-8"
)

// ErrExportStorageDisabled is returned by Export when no storage is configured
var ErrExportStorageDisabled = shared.NewDomainError("EXPORT_STORAGE_DISABLED", "Export storage is not configured")

var exportHeader = []string{
	"number", "debtor_id", "description", "status", "due_date",
	"original_value", "interest_rate_per_day", "penalty_rate",
	"days_overdue", "interest", "penalty", "updated_value", "outstanding",
	"paid_at", "reference_date",
}

// ExportService renders titles with their recomputed accrual as CSV
type ExportService struct {
	titles    *TitleService
	storage   ExportStorage
	urlExpiry time.Duration
	now       func() time.Time
	logger    *zap.Logger
}

// NewExportService creates an export service. storage may be nil, in which
// case only WriteTitlesCSV is available.
func NewExportService(titles *TitleService, storage ExportStorage, urlExpiry time.Duration, l *zap.Logger) *ExportService {
	if l == nil {
		l = zap.NewNop()
	}
	return &ExportService{
		titles:    titles,
		storage:   storage,
		urlExpiry: urlExpiry,
		now:       time.Now,
		logger:    l,
	}
}

// StorageEnabled reports whether exports are uploaded
func (s *ExportService) StorageEnabled() bool {
	return s.storage != nil
}

// WriteTitlesCSV streams every title matching filter to w and returns the row count
func (s *ExportService) WriteTitlesCSV(ctx context.Context, w io.Writer, filter TitleListFilter) (int, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return 0, err
	}

	rows := 0
	if filter.ReferenceDate == "" {
		filter.ReferenceDate = NewDate(s.titles.Today()).String()
	}
	filter.PageSize = exportPageSize
	for page := 1; ; page++ {
		filter.Page = page
		result, err := s.titles.List(ctx, filter)
		if err != nil {
			return rows, err
		}
		for _, t := range result.Items {
			if err := cw.Write(exportRecord(t)); err != nil {
				return rows, err
			}
			rows++
		}
		if page >= result.TotalPages || len(result.Items) == 0 {
			break
		}
	}
	cw.Flush()
	return rows, cw.Error()
}

// ExportTitlesCSV renders the CSV, uploads it and returns a presigned download link
func (s *ExportService) ExportTitlesCSV(ctx context.Context, filter TitleListFilter) (*ExportResult, error) {
	if s.storage == nil {
		return nil, ErrExportStorageDisabled
	}

	var buf bytes.Buffer
	rows, err := s.WriteTitlesCSV(ctx, &buf, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to render export: %w", err)
	}

	key := s.exportKey()
	if err := s.storage.Upload(ctx, key, buf.Bytes(), exportContentType); err != nil {
		return nil, fmt.Errorf("failed to upload export: %w", err)
	}
	url, expiresAt, err := s.storage.GenerateDownloadURL(ctx, key, s.urlExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to sign export url: %w", err)
	}

	logger.With(ctx, s.logger).Info("Titles exported",
		zap.String("key", key),
		zap.Int("rows", rows),
		zap.Int("bytes", buf.Len()),
	)
	return &ExportResult{Key: key, Rows: rows, DownloadURL: url, ExpiresAt: expiresAt}, nil
}

// ExportFileName is the suggested file name for a CSV generated now
func (s *ExportService) ExportFileName() string {
	return "titles-" + s.now().UTC().Format("20060102-150405") + ".csv"
}

func (s *ExportService) exportKey() string {
	now := s.now().UTC()
	return fmt.Sprintf("exports/%s/titles-%s-%s.csv",
		now.Format("2006/01/02"),
		now.Format("150405"),
		uuid.NewString()[:8],
	)
}

func exportRecord(t TitleResponse) []string {
	paidAt := ""
	if t.PaidAt != nil {
		paidAt = t.PaidAt.UTC().Format(time.RFC3339)
	}
	return []string{
		t.Number,
		t.DebtorID.String(),
		t.Description,
		t.Status,
		t.DueDate.String(),
		t.OriginalValue.StringFixed(2),
		t.InterestRatePerDay.String(),
		t.PenaltyRate.String(),
		fmt.Sprint(t.DaysOverdue),
		t.InterestAmount.StringFixed(2),
		t.Penalty.StringFixed(2),
		t.UpdatedValue.StringFixed(2),
		t.OutstandingTotal.StringFixed(2),
		paidAt,
		t.ReferenceDate.String(),
	}
}
