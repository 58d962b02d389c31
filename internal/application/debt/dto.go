package debt

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/felipesbcabral/desafio-pc-sub000/internal/domain/debt"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of calendar dates
const DateLayout = "2006-01-02"

// Date is a calendar date serialized as YYYY-MM-DD.
// Unmarshalling also accepts RFC 3339 timestamps and keeps their local date.
type Date struct {
	time.Time
}

// NewDate wraps t, dropping the time of day
func NewDate(t time.Time) Date {
	return Date{Time: debt.DateOnly(t)}
}

// ParseDate parses YYYY-MM-DD or an RFC 3339 timestamp
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return Date{Time: t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return NewDate(t), nil
}

// MarshalJSON implements json.Marshaler
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// String returns the date as YYYY-MM-DD
func (d Date) String() string {
	return d.Format(DateLayout)
}

// RateInput is a percent rate as submitted, before conversion to the stored per-day unit
type RateInput struct {
	InterestRate       decimal.Decimal `json:"interestRate"`
	InterestRatePeriod string          `json:"interestRatePeriod" binding:"omitempty,oneof=day month"`
	PenaltyRate        decimal.Decimal `json:"penaltyRate"`
}

// InstallmentPlanRequest splits a title into equal monthly installments
type InstallmentPlanRequest struct {
	Count          int   `json:"count" binding:"required,min=1,max=360"`
	FirstDueDate   *Date `json:"firstDueDate"`
	IntervalMonths int   `json:"intervalMonths" binding:"omitempty,min=1,max=12"`
}

// CreateTitleRequest represents a request to create a title
type CreateTitleRequest struct {
	DebtorID      uuid.UUID               `json:"debtorId" binding:"required"`
	Description   string                  `json:"description" binding:"max=500"`
	OriginalValue decimal.Decimal         `json:"originalValue"`
	DueDate       *Date                   `json:"dueDate" binding:"required"`
	Installments  *InstallmentPlanRequest `json:"installments"`
	RateInput
}

// UpdateTitleRequest represents a request to update an unpaid title
type UpdateTitleRequest struct {
	Description   string          `json:"description" binding:"max=500"`
	OriginalValue decimal.Decimal `json:"originalValue"`
	DueDate       *Date           `json:"dueDate" binding:"required"`
	RateInput
}

// ReopenRequest carries the mandatory reason for a paid to unpaid transition
type ReopenRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

// PreviewInstallmentsRequest asks for a plan and its accrual without saving anything
type PreviewInstallmentsRequest struct {
	OriginalValue  decimal.Decimal `json:"originalValue"`
	DueDate        *Date           `json:"dueDate" binding:"required"`
	Count          int             `json:"count" binding:"required,min=1,max=360"`
	IntervalMonths int             `json:"intervalMonths" binding:"omitempty,min=1,max=12"`
	ReferenceDate  *Date           `json:"referenceDate"`
	RateInput
}

// TitleListFilter is the query of the title list endpoints
type TitleListFilter struct {
	Page          int    `form:"page" binding:"omitempty,min=1"`
	PageSize      int    `form:"pageSize" binding:"omitempty,min=1,max=100"`
	OrderBy       string `form:"orderBy"`
	OrderDir      string `form:"orderDir" binding:"omitempty,oneof=asc desc ASC DESC"`
	Search        string `form:"search" binding:"max=100"`
	DebtorID      string `form:"debtorId" binding:"omitempty,uuid"`
	Status        string `form:"status" binding:"omitempty,oneof=open overdue paid"`
	DueFrom       string `form:"dueFrom" binding:"omitempty,date"`
	DueTo         string `form:"dueTo" binding:"omitempty,date"`
	ReferenceDate string `form:"referenceDate" binding:"omitempty,date"`
}

// DebtorListFilter is the query of the debtor list endpoint
type DebtorListFilter struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"pageSize" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"orderBy"`
	OrderDir string `form:"orderDir" binding:"omitempty,oneof=asc desc ASC DESC"`
	Search   string `form:"search" binding:"max=100"`
}

// InstallmentResponse is an installment with its accrual at the reference date
type InstallmentResponse struct {
	ID             uuid.UUID       `json:"id"`
	Number         int             `json:"number"`
	OriginalValue  decimal.Decimal `json:"originalValue"`
	UpdatedValue   decimal.Decimal `json:"updatedValue"`
	InterestAmount decimal.Decimal `json:"interestAmount"`
	Penalty        decimal.Decimal `json:"penalty"`
	DaysOverdue    int             `json:"daysOverdue"`
	IsOverdue      bool            `json:"isOverdue"`
	IsPaid         bool            `json:"isPaid"`
	PaidAt         *time.Time      `json:"paidAt"`
	DueDate        Date            `json:"dueDate"`
}

// TitleResponse is a title with every amount recomputed at ReferenceDate
type TitleResponse struct {
	ID                 uuid.UUID             `json:"id"`
	Number             string                `json:"number"`
	DebtorID           uuid.UUID             `json:"debtorId"`
	Description        string                `json:"description"`
	Status             string                `json:"status"`
	OriginalValue      decimal.Decimal       `json:"originalValue"`
	UpdatedValue       decimal.Decimal       `json:"updatedValue"`
	InterestAmount     decimal.Decimal       `json:"interestAmount"`
	Penalty            decimal.Decimal       `json:"penalty"`
	OutstandingTotal   decimal.Decimal       `json:"outstandingTotal"`
	DaysOverdue        int                   `json:"daysOverdue"`
	IsOverdue          bool                  `json:"isOverdue"`
	IsPaid             bool                  `json:"isPaid"`
	PaidAt             *time.Time            `json:"paidAt"`
	DueDate            Date                  `json:"dueDate"`
	InterestRatePerDay decimal.Decimal       `json:"interestRatePerDay"`
	PenaltyRate        decimal.Decimal       `json:"penaltyRate"`
	ReferenceDate      Date                  `json:"referenceDate"`
	Installments       []InstallmentResponse `json:"installments"`
	CreatedAt          time.Time             `json:"createdAt"`
	UpdatedAt          time.Time             `json:"updatedAt"`
	Version            int                   `json:"version"`
}

// PlanPreviewItem is one unsaved installment and what it would owe
type PlanPreviewItem struct {
	Number         int             `json:"number"`
	Value          decimal.Decimal `json:"value"`
	DueDate        Date            `json:"dueDate"`
	UpdatedValue   decimal.Decimal `json:"updatedValue"`
	InterestAmount decimal.Decimal `json:"interestAmount"`
	Penalty        decimal.Decimal `json:"penalty"`
	DaysOverdue    int             `json:"daysOverdue"`
}

// PreviewResponse is an installment plan preview
type PreviewResponse struct {
	ReferenceDate      Date              `json:"referenceDate"`
	InterestRatePerDay decimal.Decimal   `json:"interestRatePerDay"`
	PenaltyRate        decimal.Decimal   `json:"penaltyRate"`
	Total              decimal.Decimal   `json:"total"`
	Installments       []PlanPreviewItem `json:"installments"`
}

// SummaryResponse is the dashboard portfolio summary
type SummaryResponse struct {
	ReferenceDate      Date            `json:"referenceDate"`
	TotalTitles        int             `json:"totalTitles"`
	PaidTitles         int             `json:"paidTitles"`
	OpenTitles         int             `json:"openTitles"`
	OverdueTitles      int             `json:"overdueTitles"`
	TotalOriginal      decimal.Decimal `json:"totalOriginal"`
	TotalUpdated       decimal.Decimal `json:"totalUpdated"`
	TotalInterest      decimal.Decimal `json:"totalInterest"`
	TotalPenalty       decimal.Decimal `json:"totalPenalty"`
	TotalOutstanding   decimal.Decimal `json:"totalOutstanding"`
	AverageDaysOverdue decimal.Decimal `json:"averageDaysOverdue"`
}

// AuditEntryResponse is one audited payment transition
type AuditEntryResponse struct {
	ID         uuid.UUID       `json:"id"`
	EventType  string          `json:"eventType"`
	OccurredAt time.Time       `json:"occurredAt"`
	Payload    json.RawMessage `json:"payload"`
}

// CreateDebtorRequest represents a request to create a debtor
type CreateDebtorRequest struct {
	Name     string `json:"name" binding:"required,max=200"`
	Document string `json:"document" binding:"required,max=20"`
	Email    string `json:"email" binding:"omitempty,email,max=254"`
	Phone    string `json:"phone" binding:"max=30"`
}

// UpdateDebtorRequest represents a request to update a debtor
type UpdateDebtorRequest = CreateDebtorRequest

// DebtorResponse represents a debtor in API responses
type DebtorResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Document     string    `json:"document"`
	DocumentType string    `json:"documentType"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	Version      int       `json:"version"`
}

// LoginRequest carries the administrator credential
type LoginRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Password string `json:"password" binding:"required,max=200"`
}

// LoginResponse is an issued access token
type LoginResponse struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
	Username    string    `json:"username"`
}

// ExportResult locates an uploaded CSV export
type ExportResult struct {
	Key         string    `json:"key"`
	Rows        int       `json:"rows"`
	DownloadURL string    `json:"downloadUrl"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

func toDebtorResponse(d *debt.Debtor) DebtorResponse {
	return DebtorResponse{
		ID:           d.ID,
		Name:         d.Name,
		Document:     d.Document,
		DocumentType: string(d.DocumentType()),
		Email:        d.Email,
		Phone:        d.Phone,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
		Version:      d.Version,
	}
}

func toTitleResponse(st debt.TitleStatement) TitleResponse {
	t := st.Title
	installments := make([]InstallmentResponse, 0, len(st.Installments))
	for _, ia := range st.Installments {
		installments = append(installments, InstallmentResponse{
			ID:             ia.Installment.ID,
			Number:         ia.Installment.Number,
			OriginalValue:  ia.Installment.Value,
			UpdatedValue:   ia.Accrual.Total,
			InterestAmount: ia.Accrual.Interest,
			Penalty:        ia.Accrual.Penalty,
			DaysOverdue:    ia.Accrual.DaysOverdue,
			IsOverdue:      ia.Accrual.IsOverdue(),
			IsPaid:         ia.Installment.IsPaid,
			PaidAt:         ia.Installment.PaidAt,
			DueDate:        NewDate(ia.Installment.DueDate),
		})
	}
	return TitleResponse{
		ID:                 t.ID,
		Number:             t.Number,
		DebtorID:           t.DebtorID,
		Description:        t.Description,
		Status:             string(t.StatusAt(st.ReferenceDate)),
		OriginalValue:      t.OriginalValue,
		UpdatedValue:       st.Accrual.Total,
		InterestAmount:     st.Accrual.Interest,
		Penalty:            st.Accrual.Penalty,
		OutstandingTotal:   st.OutstandingTotal,
		DaysOverdue:        st.Accrual.DaysOverdue,
		IsOverdue:          st.Accrual.IsOverdue(),
		IsPaid:             t.IsPaid,
		PaidAt:             t.PaidAt,
		DueDate:            NewDate(t.DueDate),
		InterestRatePerDay: t.InterestRatePerDay.Percent(),
		PenaltyRate:        t.PenaltyRate.Percent(),
		ReferenceDate:      NewDate(st.ReferenceDate),
		Installments:       installments,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
		Version:            t.Version,
	}
}

func toSummaryResponse(s debt.PortfolioSummary) SummaryResponse {
	return SummaryResponse{
		ReferenceDate:      NewDate(s.ReferenceDate),
		TotalTitles:        s.TotalTitles,
		PaidTitles:         s.PaidTitles,
		OpenTitles:         s.OpenTitles,
		OverdueTitles:      s.OverdueTitles,
		TotalOriginal:      s.TotalOriginal,
		TotalUpdated:       s.TotalUpdated,
		TotalInterest:      s.TotalInterest,
		TotalPenalty:       s.TotalPenalty,
		TotalOutstanding:   s.TotalOutstanding,
		AverageDaysOverdue: s.AverageDaysOverdue,
	}
}
