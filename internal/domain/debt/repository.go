package debt

import (
	"context"
	"encoding/json"
	"time"

	"github.com/felipesbcabral/desafio-pc-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// TitleFilter defines filtering options for title queries
type TitleFilter struct {
	shared.Filter
	DebtorID      *uuid.UUID   // Filter by debtor
	Status        *TitleStatus // Filter by derived status at ReferenceDate
	DueFrom       *time.Time   // Filter by due date range start
	DueTo         *time.Time   // Filter by due date range end
	ReferenceDate time.Time    // "today" used to tell open from overdue
}

// DebtorFilter defines filtering options for debtor queries
type DebtorFilter struct {
	shared.Filter
}

// TitleRepository defines the interface for title persistence.
// Installments are loaded and saved with their title.
type TitleRepository interface {
	// FindByID finds a title by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Title, error)

	// FindByNumber finds a title by its number
	FindByNumber(ctx context.Context, number string) (*Title, error)

	// FindAll finds titles with filtering and pagination
	FindAll(ctx context.Context, filter TitleFilter) ([]Title, error)

	// FindOverdue finds unpaid titles due before the reference date
	FindOverdue(ctx context.Context, referenceDate time.Time, filter TitleFilter) ([]Title, error)

	// FindByDebtor finds all titles of a debtor
	FindByDebtor(ctx context.Context, debtorID uuid.UUID) ([]Title, error)

	// Save creates or updates a title
	Save(ctx context.Context, title *Title) error

	// SaveWithLock saves with optimistic locking (version check)
	SaveWithLock(ctx context.Context, title *Title) error

	// Delete deletes a title and its installments
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts titles matching the filter
	Count(ctx context.Context, filter TitleFilter) (int64, error)

	// ExistsByDebtor checks if any title references the debtor
	ExistsByDebtor(ctx context.Context, debtorID uuid.UUID) (bool, error)

	// GenerateTitleNumber generates the next title number (TIT-YYYYMMDD-XXXXX)
	GenerateTitleNumber(ctx context.Context, at time.Time) (string, error)
}

// DebtorRepository defines the interface for debtor persistence
type DebtorRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Debtor, error)
	FindByDocument(ctx context.Context, document string) (*Debtor, error)
	FindAll(ctx context.Context, filter DebtorFilter) ([]Debtor, error)
	Save(ctx context.Context, debtor *Debtor) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter DebtorFilter) (int64, error)
	ExistsByDocument(ctx context.Context, document string) (bool, error)
}

// AuditEntry is an append-only record of a payment state change
type AuditEntry struct {
	ID            uuid.UUID
	AggregateID   uuid.UUID
	AggregateType string
	EventType     string
	OccurredAt    time.Time
	Payload       json.RawMessage
}

// AuditRepository stores payment audit entries
type AuditRepository interface {
	// Append stores an entry; entries are never updated
	Append(ctx context.Context, entry *AuditEntry) error

	// FindByAggregate lists entries of an aggregate, oldest first
	FindByAggregate(ctx context.Context, aggregateID uuid.UUID) ([]AuditEntry, error)
}
