package debt

import (
	"fmt"
	"strings"
	"time"

	"github.com/felipesbcabral/desafio-pc-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxInstallments caps the size of an installment plan
const MaxInstallments = 360

const maxDescriptionLength = 500

// Title errors
var (
	ErrInvalidDueDate          = shared.NewDomainError("INVALID_DUE_DATE", "Due date is required")
	ErrInvalidDebtor           = shared.NewDomainError("INVALID_DEBTOR", "Debtor is required")
	ErrInvalidInstallmentCount = shared.NewDomainError("INVALID_INSTALLMENT_COUNT", fmt.Sprintf("Installment count must be between 1 and %d and leave at least one cent per installment", MaxInstallments))
	ErrReasonRequired          = shared.NewDomainError("REASON_REQUIRED", "A reason is required to reopen a paid obligation")
	ErrTitlePaid               = shared.NewDomainError("INVALID_STATE", "Title is paid and cannot be changed")
	ErrTitleNotPaid            = shared.NewDomainError("INVALID_STATE", "Title is not paid")
	ErrInstallmentNotFound     = shared.NewDomainError("NOT_FOUND", "Installment not found")
)

// TitleStatus is the derived state of a title at a reference date
type TitleStatus string

const (
	TitleStatusOpen    TitleStatus = "open"
	TitleStatusOverdue TitleStatus = "overdue"
	TitleStatusPaid    TitleStatus = "paid"
)

// IsValid checks if the status is a valid TitleStatus
func (s TitleStatus) IsValid() bool {
	switch s {
	case TitleStatusOpen, TitleStatusOverdue, TitleStatusPaid:
		return true
	}
	return false
}

// TitleTerms are the monetary terms fixed on a title
type TitleTerms struct {
	Value              decimal.Decimal
	DueDate            time.Time
	InterestRatePerDay Rate
	PenaltyRate        Rate
}

func (t TitleTerms) normalize() (TitleTerms, error) {
	t.Value = t.Value.Round(moneyPlaces)
	if !t.Value.IsPositive() {
		return t, shared.NewDomainError(ErrInvalidAmount.Code, "Title value must be greater than zero")
	}
	if t.DueDate.IsZero() {
		return t, ErrInvalidDueDate
	}
	t.DueDate = DateOnly(t.DueDate)
	return t, nil
}

// Title is a debt instrument owed by a debtor, optionally split into installments
type Title struct {
	shared.BaseAggregateRoot
	Number             string
	DebtorID           uuid.UUID
	Description        string
	OriginalValue      decimal.Decimal
	DueDate            time.Time
	InterestRatePerDay Rate
	PenaltyRate        Rate
	IsPaid             bool
	PaidAt             *time.Time
	Installments       []Installment
}

// NewTitle creates a new unpaid title
func NewTitle(number string, debtorID uuid.UUID, description string, terms TitleTerms, now time.Time) (*Title, error) {
	if strings.TrimSpace(number) == "" {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Title number cannot be empty")
	}
	if debtorID == uuid.Nil {
		return nil, ErrInvalidDebtor
	}
	description, err := normalizeDescription(description)
	if err != nil {
		return nil, err
	}
	terms, err = terms.normalize()
	if err != nil {
		return nil, err
	}

	t := &Title{
		BaseAggregateRoot:  shared.NewBaseAggregateRoot(now),
		Number:             number,
		DebtorID:           debtorID,
		Description:        description,
		OriginalValue:      terms.Value,
		DueDate:            terms.DueDate,
		InterestRatePerDay: terms.InterestRatePerDay,
		PenaltyRate:        terms.PenaltyRate,
		Installments:       make([]Installment, 0),
	}
	t.AddDomainEvent(NewTitleCreatedEvent(t, now))
	return t, nil
}

func normalizeDescription(description string) (string, error) {
	description = strings.TrimSpace(description)
	if len(description) > maxDescriptionLength {
		return "", shared.NewDomainError("INVALID_DESCRIPTION", fmt.Sprintf("Description cannot exceed %d characters", maxDescriptionLength))
	}
	return description, nil
}

// Update changes the description and terms of an unpaid title
func (t *Title) Update(description string, terms TitleTerms, now time.Time) error {
	if t.IsPaid {
		return ErrTitlePaid
	}
	description, err := normalizeDescription(description)
	if err != nil {
		return err
	}
	terms, err = terms.normalize()
	if err != nil {
		return err
	}
	if len(t.Installments) > 0 && !terms.Value.Equal(t.OriginalValue) {
		return shared.NewDomainError("INVALID_STATE", "Replace the installment plan before changing the value of an installed title")
	}

	t.Description = description
	t.OriginalValue = terms.Value
	t.DueDate = terms.DueDate
	t.InterestRatePerDay = terms.InterestRatePerDay
	t.PenaltyRate = terms.PenaltyRate
	t.Touch(now)
	t.IncrementVersion()
	return nil
}

// MarkPaid freezes accrual on the title and every open installment.
// Marking an already paid title is a no-op and reports false.
func (t *Title) MarkPaid(at time.Time) bool {
	if t.IsPaid {
		return false
	}
	for i := range t.Installments {
		if !t.Installments[i].IsPaid {
			paidAt := at
			t.Installments[i].IsPaid = true
			t.Installments[i].PaidAt = &paidAt
		}
	}
	t.IsPaid = true
	t.PaidAt = &at
	t.Touch(at)
	t.AddDomainEvent(NewTitlePaidEvent(t, at))
	t.IncrementVersion()
	return true
}

// MarkUnpaid reopens a paid title and all its installments.
// Accrual resumes from the original due date.
func (t *Title) MarkUnpaid(at time.Time, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrReasonRequired
	}
	if !t.IsPaid {
		return ErrTitleNotPaid
	}
	previous := t.PaidAt
	for i := range t.Installments {
		t.Installments[i].IsPaid = false
		t.Installments[i].PaidAt = nil
	}
	t.IsPaid = false
	t.PaidAt = nil
	t.Touch(at)
	t.AddDomainEvent(NewTitleReopenedEvent(t, previous, reason, at))
	t.IncrementVersion()
	return nil
}

// CanDelete returns an error when the title must be kept
func (t *Title) CanDelete() error {
	if t.IsPaid {
		return shared.NewDomainError("INVALID_STATE", "Paid titles cannot be deleted")
	}
	for _, inst := range t.Installments {
		if inst.IsPaid {
			return shared.NewDomainError("INVALID_STATE", "Titles with paid installments cannot be deleted")
		}
	}
	return nil
}

// MarkDeleted records the deletion event
func (t *Title) MarkDeleted(at time.Time) error {
	if err := t.CanDelete(); err != nil {
		return err
	}
	t.AddDomainEvent(NewTitleDeletedEvent(t, at))
	return nil
}

// ReplaceInstallments swaps the installment plan of an unpaid title.
// Plan values must add up to the title value; an empty plan removes installments.
func (t *Title) ReplaceInstallments(plan []InstallmentPlanItem, now time.Time) error {
	if t.IsPaid {
		return ErrTitlePaid
	}
	for _, inst := range t.Installments {
		if inst.IsPaid {
			return shared.NewDomainError("INVALID_STATE", "Installments cannot be replaced after one was paid")
		}
	}
	if len(plan) > MaxInstallments {
		return ErrInvalidInstallmentCount
	}

	sum := decimal.Zero
	installments := make([]Installment, 0, len(plan))
	for i, item := range plan {
		if !item.Value.IsPositive() {
			return shared.NewDomainError(ErrInvalidAmount.Code, fmt.Sprintf("Installment %d value must be greater than zero", i+1))
		}
		if item.DueDate.IsZero() {
			return ErrInvalidDueDate
		}
		sum = sum.Add(item.Value)
		installments = append(installments, Installment{
			ID:      uuid.New(),
			TitleID: t.ID,
			Number:  i + 1,
			Value:   item.Value.Round(moneyPlaces),
			DueDate: DateOnly(item.DueDate),
		})
	}
	if len(plan) > 0 && !sum.Equal(t.OriginalValue) {
		return shared.NewDomainError("INVALID_INSTALLMENT_PLAN",
			fmt.Sprintf("Installments sum to %s but the title value is %s", sum.StringFixed(moneyPlaces), t.OriginalValue.StringFixed(moneyPlaces)))
	}

	t.Installments = installments
	t.Touch(now)
	t.IncrementVersion()
	return nil
}

func (t *Title) installment(number int) (*Installment, error) {
	for i := range t.Installments {
		if t.Installments[i].Number == number {
			return &t.Installments[i], nil
		}
	}
	return nil, ErrInstallmentNotFound
}

// PayInstallment marks one installment paid. Paying the last open installment pays the title.
// Paying an installment that is already paid is a no-op and reports false.
func (t *Title) PayInstallment(number int, at time.Time) (bool, error) {
	inst, err := t.installment(number)
	if err != nil {
		return false, err
	}
	if inst.IsPaid {
		return false, nil
	}
	paidAt := at
	inst.IsPaid = true
	inst.PaidAt = &paidAt
	t.AddDomainEvent(NewInstallmentPaidEvent(t, *inst, at))

	if t.allInstallmentsPaid() {
		t.IsPaid = true
		t.PaidAt = &paidAt
		t.AddDomainEvent(NewTitlePaidEvent(t, at))
	}
	t.Touch(at)
	t.IncrementVersion()
	return true, nil
}

// ReopenInstallment reverts a paid installment. A paid title is reopened with it.
func (t *Title) ReopenInstallment(number int, at time.Time, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrReasonRequired
	}
	inst, err := t.installment(number)
	if err != nil {
		return err
	}
	if !inst.IsPaid {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Installment %d is not paid", number))
	}
	previous := inst.PaidAt
	inst.IsPaid = false
	inst.PaidAt = nil
	t.AddDomainEvent(NewInstallmentReopenedEvent(t, *inst, previous, reason, at))

	if t.IsPaid {
		titlePaidAt := t.PaidAt
		t.IsPaid = false
		t.PaidAt = nil
		t.AddDomainEvent(NewTitleReopenedEvent(t, titlePaidAt, fmt.Sprintf("installment %d reopened: %s", number, reason), at))
	}
	t.Touch(at)
	t.IncrementVersion()
	return nil
}

func (t *Title) allInstallmentsPaid() bool {
	if len(t.Installments) == 0 {
		return false
	}
	for _, inst := range t.Installments {
		if !inst.IsPaid {
			return false
		}
	}
	return true
}

// HasInstallments reports whether the title is split into installments
func (t *Title) HasInstallments() bool {
	return len(t.Installments) > 0
}

// StatusAt derives the title status at a reference date. A split title is
// overdue when any open installment is past its due date.
func (t *Title) StatusAt(referenceDate time.Time) TitleStatus {
	if t.IsPaid {
		return TitleStatusPaid
	}
	if t.HasInstallments() {
		for _, inst := range t.Installments {
			if !inst.IsPaid && DaysBetween(inst.DueDate, referenceDate) > 0 {
				return TitleStatusOverdue
			}
		}
		return TitleStatusOpen
	}
	if DaysBetween(t.DueDate, referenceDate) > 0 {
		return TitleStatusOverdue
	}
	return TitleStatusOpen
}

// Accrual computes what the title owes at referenceDate. An open title split
// into installments accrues per installment: amounts are the installment
// sums and DaysOverdue is that of the most overdue open installment.
func (t *Title) Accrual(calc AccrualCalculator, referenceDate time.Time) (AccrualResult, error) {
	if t.HasInstallments() && !t.IsPaid {
		installments, err := t.InstallmentAccruals(calc, referenceDate)
		if err != nil {
			return AccrualResult{}, err
		}
		return sumAccruals(t.OriginalValue, installments), nil
	}
	return calc.Compute(
		t.OriginalValue,
		t.DueDate,
		referenceDate,
		t.InterestRatePerDay.Fraction(),
		t.PenaltyRate.Fraction(),
		t.IsPaid,
	)
}

func sumAccruals(principal decimal.Decimal, installments []InstallmentAccrual) AccrualResult {
	out := AccrualResult{
		Principal: principal,
		Interest:  decimal.Zero,
		Penalty:   decimal.Zero,
		Total:     decimal.Zero,
	}
	for _, ia := range installments {
		out.Interest = out.Interest.Add(ia.Accrual.Interest)
		out.Penalty = out.Penalty.Add(ia.Accrual.Penalty)
		out.Total = out.Total.Add(ia.Accrual.Total)
		out.DaysOverdue = max(out.DaysOverdue, ia.Accrual.DaysOverdue)
	}
	return out
}

// InstallmentAccruals computes each installment with the title's rates
func (t *Title) InstallmentAccruals(calc AccrualCalculator, referenceDate time.Time) ([]InstallmentAccrual, error) {
	out := make([]InstallmentAccrual, 0, len(t.Installments))
	for _, inst := range t.Installments {
		result, err := calc.Compute(
			inst.Value,
			inst.DueDate,
			referenceDate,
			t.InterestRatePerDay.Fraction(),
			t.PenaltyRate.Fraction(),
			inst.IsPaid,
		)
		if err != nil {
			return nil, fmt.Errorf("installment %d: %w", inst.Number, err)
		}
		out = append(out, InstallmentAccrual{Installment: inst, Accrual: result})
	}
	return out, nil
}
