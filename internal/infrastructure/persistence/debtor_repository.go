package persistence

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/felipesbcabral/desafio-pc-sub000/internal/domain/debt"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/domain/shared"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDebtorRepository implements debt.DebtorRepository using GORM
type GormDebtorRepository struct {
	db *gorm.DB
}

// NewGormDebtorRepository creates a new GormDebtorRepository
func NewGormDebtorRepository(db *gorm.DB) *GormDebtorRepository {
	return &GormDebtorRepository{db: db}
}

// FindByID finds a debtor by ID
func (r *GormDebtorRepository) FindByID(ctx context.Context, id uuid.UUID) (*debt.Debtor, error) {
	return r.first(r.db.WithContext(ctx).Where("id = ?", id))
}

// FindByDocument finds a debtor by normalized document
func (r *GormDebtorRepository) FindByDocument(ctx context.Context, document string) (*debt.Debtor, error) {
	return r.first(r.db.WithContext(ctx).Where("document = ?", document))
}

func (r *GormDebtorRepository) first(query *gorm.DB) (*debt.Debtor, error) {
	var model models.DebtorModel
	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds debtors with search and pagination
func (r *GormDebtorRepository) FindAll(ctx context.Context, filter debt.DebtorFilter) ([]debt.Debtor, error) {
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.DebtorModel{}), filter)
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	field := ValidateSortField(filter.OrderBy, DebtorSortFields, "name")
	dir := ValidateSortOrder(filter.OrderDir, "ASC")
	query = query.Order(field + " " + dir).Order("id ASC")

	var debtorModels []models.DebtorModel
	if err := query.Find(&debtorModels).Error; err != nil {
		return nil, err
	}
	debtors := make([]debt.Debtor, len(debtorModels))
	for i := range debtorModels {
		debtors[i] = *debtorModels[i].ToDomain()
	}
	return debtors, nil
}

// Save creates or updates a debtor
func (r *GormDebtorRepository) Save(ctx context.Context, debtor *debt.Debtor) error {
	return r.db.WithContext(ctx).Save(models.DebtorModelFromDomain(debtor)).Error
}

// Delete deletes a debtor
func (r *GormDebtorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.DebtorModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts debtors matching the filter
func (r *GormDebtorRepository) Count(ctx context.Context, filter debt.DebtorFilter) (int64, error) {
	var count int64
	if err := r.applyFilter(r.db.WithContext(ctx).Model(&models.DebtorModel{}), filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByDocument checks if a debtor with the normalized document exists
func (r *GormDebtorRepository) ExistsByDocument(ctx context.Context, document string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.DebtorModel{}).
		Where("document = ?", document).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter matches the search against the accent-folded name or the document digits
func (r *GormDebtorRepository) applyFilter(query *gorm.DB, filter debt.DebtorFilter) *gorm.DB {
	search := strings.TrimSpace(filter.Search)
	if search == "" {
		return query
	}
	folded := "%" + debt.FoldSearchText(search) + "%"
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, search)
	if digits == "" {
		return query.Where("search_name LIKE ?", folded)
	}
	return query.Where("search_name LIKE ? OR document LIKE ?", folded, "%"+digits+"%")
}

// Ensure GormDebtorRepository implements DebtorRepository
var _ debt.DebtorRepository = (*GormDebtorRepository)(nil)
