package debt

import (
	"time"

	"github.com/felipesbcabral/desafio-pc-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event type names
const (
	EventTypeTitleCreated        = "TitleCreated"
	EventTypeTitlePaid           = "TitlePaid"
	EventTypeTitleReopened       = "TitleReopened"
	EventTypeTitleDeleted        = "TitleDeleted"
	EventTypeInstallmentPaid     = "InstallmentPaid"
	EventTypeInstallmentReopened = "InstallmentReopened"
)

// AggregateTypeTitle is the aggregate type carried by title events
const AggregateTypeTitle = "Title"

// TitleCreatedEvent is raised when a new title is created
type TitleCreatedEvent struct {
	shared.BaseDomainEvent
	TitleID       uuid.UUID       `json:"title_id"`
	Number        string          `json:"number"`
	DebtorID      uuid.UUID       `json:"debtor_id"`
	OriginalValue decimal.Decimal `json:"original_value"`
	DueDate       time.Time       `json:"due_date"`
}

// NewTitleCreatedEvent creates a new TitleCreatedEvent
func NewTitleCreatedEvent(t *Title, at time.Time) *TitleCreatedEvent {
	return &TitleCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTitleCreated, AggregateTypeTitle, t.ID, at),
		TitleID:         t.ID,
		Number:          t.Number,
		DebtorID:        t.DebtorID,
		OriginalValue:   t.OriginalValue,
		DueDate:         t.DueDate,
	}
}

// TitlePaidEvent is raised when a title is marked as paid
type TitlePaidEvent struct {
	shared.BaseDomainEvent
	TitleID       uuid.UUID       `json:"title_id"`
	Number        string          `json:"number"`
	OriginalValue decimal.Decimal `json:"original_value"`
	PaidAt        time.Time       `json:"paid_at"`
}

// NewTitlePaidEvent creates a new TitlePaidEvent
func NewTitlePaidEvent(t *Title, at time.Time) *TitlePaidEvent {
	return &TitlePaidEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTitlePaid, AggregateTypeTitle, t.ID, at),
		TitleID:         t.ID,
		Number:          t.Number,
		OriginalValue:   t.OriginalValue,
		PaidAt:          at,
	}
}

// TitleReopenedEvent is raised when a paid title goes back to unpaid.
// Accrual restarts from the original due date, so this transition is audited.
type TitleReopenedEvent struct {
	shared.BaseDomainEvent
	TitleID        uuid.UUID  `json:"title_id"`
	Number         string     `json:"number"`
	PreviousPaidAt *time.Time `json:"previous_paid_at,omitempty"`
	Reason         string     `json:"reason"`
	ReopenedAt     time.Time  `json:"reopened_at"`
}

// NewTitleReopenedEvent creates a new TitleReopenedEvent
func NewTitleReopenedEvent(t *Title, previousPaidAt *time.Time, reason string, at time.Time) *TitleReopenedEvent {
	return &TitleReopenedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTitleReopened, AggregateTypeTitle, t.ID, at),
		TitleID:         t.ID,
		Number:          t.Number,
		PreviousPaidAt:  previousPaidAt,
		Reason:          reason,
		ReopenedAt:      at,
	}
}

// TitleDeletedEvent is raised when a title is deleted
type TitleDeletedEvent struct {
	shared.BaseDomainEvent
	TitleID uuid.UUID `json:"title_id"`
	Number  string    `json:"number"`
}

// NewTitleDeletedEvent creates a new TitleDeletedEvent
func NewTitleDeletedEvent(t *Title, at time.Time) *TitleDeletedEvent {
	return &TitleDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTitleDeleted, AggregateTypeTitle, t.ID, at),
		TitleID:         t.ID,
		Number:          t.Number,
	}
}

// InstallmentPaidEvent is raised when a single installment is paid
type InstallmentPaidEvent struct {
	shared.BaseDomainEvent
	TitleID           uuid.UUID       `json:"title_id"`
	InstallmentID     uuid.UUID       `json:"installment_id"`
	InstallmentNumber int             `json:"installment_number"`
	Value             decimal.Decimal `json:"value"`
	PaidAt            time.Time       `json:"paid_at"`
}

// NewInstallmentPaidEvent creates a new InstallmentPaidEvent
func NewInstallmentPaidEvent(t *Title, inst Installment, at time.Time) *InstallmentPaidEvent {
	return &InstallmentPaidEvent{
		BaseDomainEvent:   shared.NewBaseDomainEvent(EventTypeInstallmentPaid, AggregateTypeTitle, t.ID, at),
		TitleID:           t.ID,
		InstallmentID:     inst.ID,
		InstallmentNumber: inst.Number,
		Value:             inst.Value,
		PaidAt:            at,
	}
}

// InstallmentReopenedEvent is raised when a paid installment goes back to unpaid
type InstallmentReopenedEvent struct {
	shared.BaseDomainEvent
	TitleID           uuid.UUID  `json:"title_id"`
	InstallmentID     uuid.UUID  `json:"installment_id"`
	InstallmentNumber int        `json:"installment_number"`
	PreviousPaidAt    *time.Time `json:"previous_paid_at,omitempty"`
	Reason            string     `json:"reason"`
	ReopenedAt        time.Time  `json:"reopened_at"`
}

// NewInstallmentReopenedEvent creates a new InstallmentReopenedEvent
func NewInstallmentReopenedEvent(t *Title, inst Installment, previousPaidAt *time.Time, reason string, at time.Time) *InstallmentReopenedEvent {
	return &InstallmentReopenedEvent{
		BaseDomainEvent:   shared.NewBaseDomainEvent(EventTypeInstallmentReopened, AggregateTypeTitle, t.ID, at),
		TitleID:           t.ID,
		InstallmentID:     inst.ID,
		InstallmentNumber: inst.Number,
		PreviousPaidAt:    previousPaidAt,
		Reason:            reason,
		ReopenedAt:        at,
	}
}
