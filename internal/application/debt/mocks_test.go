package debt

import (
	"context"
	"sync"
	"time"

	"github.com/felipesbcabral/desafio-pc-sub000/internal/domain/debt"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTitleRepository is a mock implementation of TitleRepository
type MockTitleRepository struct {
	mock.Mock
}

func (m *MockTitleRepository) FindByID(ctx context.Context, id uuid.UUID) (*debt.Title, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*debt.Title), args.Error(1)
}

func (m *MockTitleRepository) FindByNumber(ctx context.Context, number string) (*debt.Title, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*debt.Title), args.Error(1)
}

func (m *MockTitleRepository) FindAll(ctx context.Context, filter debt.TitleFilter) ([]debt.Title, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]debt.Title), args.Error(1)
}

func (m *MockTitleRepository) FindOverdue(ctx context.Context, referenceDate time.Time, filter debt.TitleFilter) ([]debt.Title, error) {
	args := m.Called(ctx, referenceDate, filter)
	return args.Get(0).([]debt.Title), args.Error(1)
}

func (m *MockTitleRepository) FindByDebtor(ctx context.Context, debtorID uuid.UUID) ([]debt.Title, error) {
	args := m.Called(ctx, debtorID)
	return args.Get(0).([]debt.Title), args.Error(1)
}

func (m *MockTitleRepository) Save(ctx context.Context, title *debt.Title) error {
	args := m.Called(ctx, title)
	return args.Error(0)
}

func (m *MockTitleRepository) SaveWithLock(ctx context.Context, title *debt.Title) error {
	args := m.Called(ctx, title)
	return args.Error(0)
}

func (m *MockTitleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTitleRepository) Count(ctx context.Context, filter debt.TitleFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTitleRepository) ExistsByDebtor(ctx context.Context, debtorID uuid.UUID) (bool, error) {
	args := m.Called(ctx, debtorID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTitleRepository) GenerateTitleNumber(ctx context.Context, at time.Time) (string, error) {
	args := m.Called(ctx, at)
	return args.String(0), args.Error(1)
}

// MockDebtorRepository is a mock implementation of DebtorRepository
type MockDebtorRepository struct {
	mock.Mock
}

func (m *MockDebtorRepository) FindByID(ctx context.Context, id uuid.UUID) (*debt.Debtor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*debt.Debtor), args.Error(1)
}

func (m *MockDebtorRepository) FindByDocument(ctx context.Context, document string) (*debt.Debtor, error) {
	args := m.Called(ctx, document)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*debt.Debtor), args.Error(1)
}

func (m *MockDebtorRepository) FindAll(ctx context.Context, filter debt.DebtorFilter) ([]debt.Debtor, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]debt.Debtor), args.Error(1)
}

func (m *MockDebtorRepository) Save(ctx context.Context, debtor *debt.Debtor) error {
	args := m.Called(ctx, debtor)
	return args.Error(0)
}

func (m *MockDebtorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDebtorRepository) Count(ctx context.Context, filter debt.DebtorFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDebtorRepository) ExistsByDocument(ctx context.Context, document string) (bool, error) {
	args := m.Called(ctx, document)
	return args.Bool(0), args.Error(1)
}

// MockAuditRepository is a mock implementation of AuditRepository
type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) Append(ctx context.Context, entry *debt.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditRepository) FindByAggregate(ctx context.Context, aggregateID uuid.UUID) ([]debt.AuditEntry, error) {
	args := m.Called(ctx, aggregateID)
	return args.Get(0).([]debt.AuditEntry), args.Error(1)
}

// recordingPublisher keeps every published event
type recordingPublisher struct {
	mu     sync.Mutex
	events []shared.DomainEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, events ...shared.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return p.err
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.EventType())
	}
	return out
}

// countingMetrics counts recorder calls by name
type countingMetrics struct {
	mu     sync.Mutex
	counts map[string]int
	failed map[string]int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{counts: map[string]int{}, failed: map[string]int{}}
}

func (m *countingMetrics) inc(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[key]++
}

func (m *countingMetrics) get(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[key]
}

func (m *countingMetrics) RecordTitleCreated(context.Context)             { m.inc("created") }
func (m *countingMetrics) RecordPaid(_ context.Context, target string)     { m.inc("paid:" + target) }
func (m *countingMetrics) RecordReopened(_ context.Context, target string) { m.inc("reopened:" + target) }
func (m *countingMetrics) RecordOperation(_ context.Context, op string, _ time.Duration, err error) {
	m.inc("op:" + op)
	if err != nil {
		m.mu.Lock()
		m.failed[op]++
		m.mu.Unlock()
	}
}
