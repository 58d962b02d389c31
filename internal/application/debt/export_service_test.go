package debt

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/felipesbcabral/desafio-pc-sub000/internal/domain/debt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeExportStorage struct {
	key         string
	data        []byte
	contentType string
	uploadErr   error
}

func (s *fakeExportStorage) Upload(_ context.Context, key string, data []byte, contentType string) error {
	if s.uploadErr != nil {
		return s.uploadErr
	}
	s.key, s.data, s.contentType = key, data, contentType
	return nil
}

func (s *fakeExportStorage) GenerateDownloadURL(_ context.Context, key string, expiresIn time.Duration) (string, time.Time, error) {
	return "https://files.example.com/" + key, fixedNow.Add(expiresIn), nil
}

func newExportFixture(t *testing.T, storage ExportStorage) (*ExportService, *MockTitleRepository) {
	t.Helper()
	f := newTitleServiceFixture(t)
	paid := newTestTitle(t)
	paid.MarkPaid(fixedNow)
	overdue := newTestTitle(t)
	f.titles.On("FindAll", mock.Anything, mock.MatchedBy(func(filter debt.TitleFilter) bool {
		return filter.PageSize == 100 && filter.Page == 1
	})).Return([]debt.Title{*overdue, *paid}, nil)
	f.titles.On("Count", mock.Anything, mock.Anything).Return(int64(2), nil)

	svc := NewExportService(f.service, storage, 10*time.Minute, nil)
	svc.now = func() time.Time { return fixedNow }
	return svc, f.titles
}

func TestExportService_WriteTitlesCSV(t *testing.T) {
	svc, _ := newExportFixture(t, nil)
	var buf bytes.Buffer

	rows, err := svc.WriteTitlesCSV(context.Background(), &buf, TitleListFilter{})

	require.NoError(t, err)
	assert.Equal(t, 2, rows)
	assert.False(t, svc.StorageEnabled())

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, exportHeader, records[0])
	assert.Equal(t, "overdue", records[1][3])
	assert.Equal(t, "1120.00", records[1][11])
	assert.Equal(t, "1120.00", records[1][12])
	assert.Equal(t, "paid", records[2][3])
	assert.Equal(t, "0.00", records[2][12])
	assert.Equal(t, "2024-03-20", records[2][14])
}

func TestExportService_ExportTitlesCSV(t *testing.T) {
	t.Run("uploads and signs", func(t *testing.T) {
		storage := &fakeExportStorage{}
		svc, _ := newExportFixture(t, storage)

		result, err := svc.ExportTitlesCSV(context.Background(), TitleListFilter{})

		require.NoError(t, err)
		assert.Equal(t, 2, result.Rows)
		assert.True(t, strings.HasPrefix(result.Key, "exports/2024/03/20/titles-120000-"))
		assert.True(t, strings.HasSuffix(result.Key, ".csv"))
		assert.Equal(t, storage.key, result.Key)
		assert.Equal(t, exportContentType, storage.contentType)
		assert.Equal(t, "https://files.example.com/"+result.Key, result.DownloadURL)
		assert.Equal(t, fixedNow.Add(10*time.Minute), result.ExpiresAt)
		assert.Contains(t, string(storage.data), "TIT-20240301-00001")
	})

	t.Run("storage disabled", func(t *testing.T) {
		svc := NewExportService(nil, nil, time.Minute, nil)
		_, err := svc.ExportTitlesCSV(context.Background(), TitleListFilter{})
		assert.ErrorIs(t, err, ErrExportStorageDisabled)
	})

	t.Run("upload failure", func(t *testing.T) {
		svc, _ := newExportFixture(t, &fakeExportStorage{uploadErr: errors.New("bucket gone")})
		_, err := svc.ExportTitlesCSV(context.Background(), TitleListFilter{})
		assert.ErrorContains(t, err, "bucket gone")
	})
}

func TestExportService_ExportFileName(t *testing.T) {
	svc := NewExportService(nil, nil, time.Minute, nil)
	svc.now = func() time.Time { return fixedNow }
	assert.Equal(t, "titles-20240320-120000.csv", svc.ExportFileName())
}
