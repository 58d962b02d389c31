package debt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/felipesbcabral/desafio-pc-sub000/internal/domain/debt"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/domain/shared"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrDocumentExists  = shared.NewDomainError("ALREADY_EXISTS", "A debtor with this document already exists")
	ErrDebtorHasTitles = shared.NewDomainError("DEBTOR_HAS_TITLES", "Debtor has titles and cannot be deleted")
)

// DebtorService handles debtor CRUD
type DebtorService struct {
	debtorRepo debt.DebtorRepository
	titleRepo  debt.TitleRepository
	now        func() time.Time
	logger     *zap.Logger
}

// NewDebtorService creates a new DebtorService
func NewDebtorService(debtorRepo debt.DebtorRepository, titleRepo debt.TitleRepository, l *zap.Logger) *DebtorService {
	if l == nil {
		l = zap.NewNop()
	}
	return &DebtorService{
		debtorRepo: debtorRepo,
		titleRepo:  titleRepo,
		now:        time.Now,
		logger:     l,
	}
}

// Create registers a debtor; documents are unique
func (s *DebtorService) Create(ctx context.Context, req CreateDebtorRequest) (*DebtorResponse, error) {
	debtor, err := debt.NewDebtor(contactOf(req), s.now())
	if err != nil {
		return nil, err
	}
	exists, err := s.debtorRepo.ExistsByDocument(ctx, debtor.Document)
	if err != nil {
		return nil, fmt.Errorf("failed to check document: %w", err)
	}
	if exists {
		return nil, ErrDocumentExists
	}
	if err := s.debtorRepo.Save(ctx, debtor); err != nil {
		return nil, fmt.Errorf("failed to save debtor: %w", err)
	}

	logger.With(ctx, s.logger).Info("Debtor created", logger.DebtorID(debtor.ID.String()))
	resp := toDebtorResponse(debtor)
	return &resp, nil
}

// Get returns a debtor by id
func (s *DebtorService) Get(ctx context.Context, id uuid.UUID) (*DebtorResponse, error) {
	debtor, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toDebtorResponse(debtor)
	return &resp, nil
}

// List pages through debtors. Search matches the accent-folded name or the document digits.
func (s *DebtorService) List(ctx context.Context, filter DebtorListFilter) (*shared.Paginated[DebtorResponse], error) {
	f := debt.DebtorFilter{Filter: shared.Filter{
		Page:     max(filter.Page, 1),
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
	}}
	if f.PageSize < 1 {
		f.PageSize = shared.DefaultFilter().PageSize
	}

	debtors, err := s.debtorRepo.FindAll(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to list debtors: %w", err)
	}
	total, err := s.debtorRepo.Count(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to count debtors: %w", err)
	}

	items := make([]DebtorResponse, 0, len(debtors))
	for i := range debtors {
		items = append(items, toDebtorResponse(&debtors[i]))
	}
	page := shared.NewPaginated(items, total, f.Page, f.PageSize)
	return &page, nil
}

// Update replaces a debtor's data
func (s *DebtorService) Update(ctx context.Context, id uuid.UUID, req UpdateDebtorRequest) (*DebtorResponse, error) {
	debtor, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := debtor.Update(contactOf(req), s.now()); err != nil {
		return nil, err
	}

	other, err := s.debtorRepo.FindByDocument(ctx, debtor.Document)
	switch {
	case err == nil && other.ID != debtor.ID:
		return nil, ErrDocumentExists
	case err != nil && !errors.Is(err, shared.ErrNotFound):
		return nil, fmt.Errorf("failed to check document: %w", err)
	}

	if err := s.debtorRepo.Save(ctx, debtor); err != nil {
		return nil, fmt.Errorf("failed to save debtor: %w", err)
	}
	resp := toDebtorResponse(debtor)
	return &resp, nil
}

// Delete removes a debtor that no title references
func (s *DebtorService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.load(ctx, id); err != nil {
		return err
	}
	hasTitles, err := s.titleRepo.ExistsByDebtor(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check debtor titles: %w", err)
	}
	if hasTitles {
		return ErrDebtorHasTitles
	}
	if err := s.debtorRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return ErrDebtorNotFound
		}
		return fmt.Errorf("failed to delete debtor: %w", err)
	}
	logger.With(ctx, s.logger).Info("Debtor deleted", logger.DebtorID(id.String()))
	return nil
}

func (s *DebtorService) load(ctx context.Context, id uuid.UUID) (*debt.Debtor, error) {
	ctx = logger.WithDebtorID(ctx, id.String())
	debtor, err := s.debtorRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrDebtorNotFound
		}
		return nil, fmt.Errorf("failed to load debtor: %w", err)
	}
	return debtor, nil
}

func contactOf(req CreateDebtorRequest) debt.DebtorContact {
	return debt.DebtorContact{
		Name:     req.Name,
		Document: req.Document,
		Email:    req.Email,
		Phone:    req.Phone,
	}
}
