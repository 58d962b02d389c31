package models

import (
	"encoding/json"
	"time"

	"github.com/felipesbcabral/desafio-pc-sub000/internal/domain/debt"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DebtorModel is the persistence model for the Debtor aggregate root.
type DebtorModel struct {
	AggregateModel
	Name       string `gorm:"type:varchar(200);not null"`
	SearchName string `gorm:"type:varchar(200);not null;index"`
	Document   string `gorm:"type:varchar(14);not null;uniqueIndex"`
	Email      string `gorm:"type:varchar(254)"`
	Phone      string `gorm:"type:varchar(30)"`
}

// TableName returns the table name for GORM
func (DebtorModel) TableName() string {
	return "debtors"
}

// ToDomain converts the persistence model to a domain Debtor
func (m *DebtorModel) ToDomain() *debt.Debtor {
	return &debt.Debtor{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		SearchName:        m.SearchName,
		Document:          m.Document,
		Email:             m.Email,
		Phone:             m.Phone,
	}
}

// DebtorModelFromDomain creates a persistence model from a domain Debtor
func DebtorModelFromDomain(d *debt.Debtor) *DebtorModel {
	m := &DebtorModel{
		Name:       d.Name,
		SearchName: d.SearchName,
		Document:   d.Document,
		Email:      d.Email,
		Phone:      d.Phone,
	}
	m.FromDomainAggregateRoot(d.BaseAggregateRoot)
	return m
}

// TitleModel is the persistence model for the Title aggregate root.
// Interest is stored as percent per day.
type TitleModel struct {
	AggregateModel
	Number             string             `gorm:"type:varchar(30);not null;uniqueIndex"`
	DebtorID           uuid.UUID          `gorm:"type:uuid;not null;index"`
	Description        string             `gorm:"type:varchar(500)"`
	OriginalValue      decimal.Decimal    `gorm:"type:decimal(18,2);not null"`
	DueDate            time.Time          `gorm:"type:date;not null;index"`
	InterestRatePerDay decimal.Decimal    `gorm:"type:decimal(30,20);not null"`
	PenaltyRate        decimal.Decimal    `gorm:"type:decimal(30,20);not null"`
	IsPaid             bool               `gorm:"not null;default:false;index"`
	PaidAt             *time.Time
	Installments       []InstallmentModel `gorm:"foreignKey:TitleID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (TitleModel) TableName() string {
	return "titles"
}

// ToDomain converts the persistence model to a domain Title
func (m *TitleModel) ToDomain() *debt.Title {
	t := &debt.Title{
		BaseAggregateRoot:  m.ToDomainAggregateRoot(),
		Number:             m.Number,
		DebtorID:           m.DebtorID,
		Description:        m.Description,
		OriginalValue:      m.OriginalValue,
		DueDate:            debt.DateOnly(m.DueDate),
		InterestRatePerDay: debt.RateFromStored(m.InterestRatePerDay),
		PenaltyRate:        debt.RateFromStored(m.PenaltyRate),
		IsPaid:             m.IsPaid,
		PaidAt:             m.PaidAt,
		Installments:       make([]debt.Installment, len(m.Installments)),
	}
	for i := range m.Installments {
		t.Installments[i] = m.Installments[i].ToDomain()
	}
	return t
}

// TitleModelFromDomain creates a persistence model from a domain Title.
// Installments are mapped alongside.
func TitleModelFromDomain(t *debt.Title) *TitleModel {
	m := &TitleModel{
		Number:             t.Number,
		DebtorID:           t.DebtorID,
		Description:        t.Description,
		OriginalValue:      t.OriginalValue,
		DueDate:            t.DueDate,
		InterestRatePerDay: t.InterestRatePerDay.Percent(),
		PenaltyRate:        t.PenaltyRate.Percent(),
		IsPaid:             t.IsPaid,
		PaidAt:             t.PaidAt,
		Installments:       make([]InstallmentModel, len(t.Installments)),
	}
	m.FromDomainAggregateRoot(t.BaseAggregateRoot)
	for i, inst := range t.Installments {
		m.Installments[i] = InstallmentModelFromDomain(inst)
	}
	return m
}

// InstallmentModel is the persistence model for installments.
// Rows belong to a title and are rewritten with it.
type InstallmentModel struct {
	ID      uuid.UUID       `gorm:"type:uuid;primary_key"`
	TitleID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_installment_title_number,priority:1"`
	Number  int             `gorm:"not null;uniqueIndex:idx_installment_title_number,priority:2"`
	Value   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	DueDate time.Time       `gorm:"type:date;not null;index"`
	IsPaid  bool            `gorm:"not null;default:false"`
	PaidAt  *time.Time
}

// TableName returns the table name for GORM
func (InstallmentModel) TableName() string {
	return "installments"
}

// ToDomain converts the persistence model to a domain Installment
func (m *InstallmentModel) ToDomain() debt.Installment {
	return debt.Installment{
		ID:      m.ID,
		TitleID: m.TitleID,
		Number:  m.Number,
		Value:   m.Value,
		DueDate: debt.DateOnly(m.DueDate),
		IsPaid:  m.IsPaid,
		PaidAt:  m.PaidAt,
	}
}

// InstallmentModelFromDomain creates a persistence model from a domain Installment
func InstallmentModelFromDomain(inst debt.Installment) InstallmentModel {
	return InstallmentModel{
		ID:      inst.ID,
		TitleID: inst.TitleID,
		Number:  inst.Number,
		Value:   inst.Value,
		DueDate: inst.DueDate,
		IsPaid:  inst.IsPaid,
		PaidAt:  inst.PaidAt,
	}
}

// AuditEntryModel is an append-only payment audit row
type AuditEntryModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	AggregateID   uuid.UUID `gorm:"type:uuid;not null;index"`
	AggregateType string    `gorm:"type:varchar(50);not null"`
	EventType     string    `gorm:"type:varchar(100);not null"`
	OccurredAt    time.Time `gorm:"not null;index"`
	Payload       []byte    `gorm:"type:jsonb;not null"`
}

// TableName returns the table name for GORM
func (AuditEntryModel) TableName() string {
	return "audit_entries"
}

// ToDomain converts the persistence model to a domain AuditEntry
func (m *AuditEntryModel) ToDomain() debt.AuditEntry {
	return debt.AuditEntry{
		ID:            m.ID,
		AggregateID:   m.AggregateID,
		AggregateType: m.AggregateType,
		EventType:     m.EventType,
		OccurredAt:    m.OccurredAt,
		Payload:       json.RawMessage(m.Payload),
	}
}

// AuditEntryModelFromDomain creates a persistence model from a domain AuditEntry
func AuditEntryModelFromDomain(e *debt.AuditEntry) *AuditEntryModel {
	return &AuditEntryModel{
		ID:            e.ID,
		AggregateID:   e.AggregateID,
		AggregateType: e.AggregateType,
		EventType:     e.EventType,
		OccurredAt:    e.OccurredAt,
		Payload:       []byte(e.Payload),
	}
}
