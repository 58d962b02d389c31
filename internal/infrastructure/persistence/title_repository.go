package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/felipesbcabral/desafio-pc-sub000/internal/domain/debt"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/domain/shared"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTitleRepository implements debt.TitleRepository using GORM.
// A title and its installments are always read and written together.
type GormTitleRepository struct {
	db *gorm.DB
}

// NewGormTitleRepository creates a new GormTitleRepository
func NewGormTitleRepository(db *gorm.DB) *GormTitleRepository {
	return &GormTitleRepository{db: db}
}

func (r *GormTitleRepository) withInstallments(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Installments", func(db *gorm.DB) *gorm.DB {
		return db.Order("number ASC")
	})
}

// FindByID finds a title by its ID
func (r *GormTitleRepository) FindByID(ctx context.Context, id uuid.UUID) (*debt.Title, error) {
	var model models.TitleModel
	if err := r.withInstallments(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByNumber finds a title by its number
func (r *GormTitleRepository) FindByNumber(ctx context.Context, number string) (*debt.Title, error) {
	var model models.TitleModel
	if err := r.withInstallments(ctx).Where("number = ?", number).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds titles with filtering, ordering and pagination
func (r *GormTitleRepository) FindAll(ctx context.Context, filter debt.TitleFilter) ([]debt.Title, error) {
	query := r.applyFilter(r.withInstallments(ctx).Model(&models.TitleModel{}), filter)
	query = r.applyPaging(query, filter, "created_at", "DESC")
	return r.find(query)
}

// overdueCondition matches open titles past due at a reference date. A split
// title is judged by its open installments, a plain one by its own due date.
const overdueCondition = `titles.is_paid = ? AND (
	EXISTS (SELECT 1 FROM installments i WHERE i.title_id = titles.id AND i.is_paid = ? AND i.due_date < ?)
	OR (titles.due_date < ? AND NOT EXISTS (SELECT 1 FROM installments i WHERE i.title_id = titles.id)))`

func whereOverdue(query *gorm.DB, referenceDate time.Time) *gorm.DB {
	ref := debt.DateOnly(referenceDate)
	return query.Where(overdueCondition, false, false, ref, ref)
}

func whereOpen(query *gorm.DB, referenceDate time.Time) *gorm.DB {
	ref := debt.DateOnly(referenceDate)
	return query.Where("titles.is_paid = ? AND NOT ("+overdueCondition+")", false, false, false, ref, ref)
}

// FindOverdue finds open titles with an amount past due at the reference date, oldest first
func (r *GormTitleRepository) FindOverdue(ctx context.Context, referenceDate time.Time, filter debt.TitleFilter) ([]debt.Title, error) {
	filter.Status = nil
	query := whereOverdue(r.withInstallments(ctx).Model(&models.TitleModel{}), referenceDate)
	query = r.applyFilter(query, filter)
	query = r.applyPaging(query, filter, "due_date", "ASC")
	return r.find(query)
}

// FindByDebtor finds all titles of a debtor ordered by due date
func (r *GormTitleRepository) FindByDebtor(ctx context.Context, debtorID uuid.UUID) ([]debt.Title, error) {
	return r.find(r.withInstallments(ctx).Where("debtor_id = ?", debtorID).Order("due_date ASC"))
}

func (r *GormTitleRepository) find(query *gorm.DB) ([]debt.Title, error) {
	var titleModels []models.TitleModel
	if err := query.Find(&titleModels).Error; err != nil {
		return nil, err
	}
	titles := make([]debt.Title, len(titleModels))
	for i := range titleModels {
		titles[i] = *titleModels[i].ToDomain()
	}
	return titles, nil
}

// Save creates or updates a title and replaces its installment rows
func (r *GormTitleRepository) Save(ctx context.Context, title *debt.Title) error {
	model := models.TitleModelFromDomain(title)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(model).Error; err != nil {
			return err
		}
		return replaceInstallments(tx, model)
	})
}

// SaveWithLock saves only if the stored version is the one the title was loaded at
func (r *GormTitleRepository) SaveWithLock(ctx context.Context, title *debt.Title) error {
	model := models.TitleModelFromDomain(title)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(model).
			Where("version = ?", title.Version-1).
			Select("*").
			Omit(clause.Associations, "id", "created_at").
			Updates(model)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrConcurrencyConflict
		}
		return replaceInstallments(tx, model)
	})
}

func replaceInstallments(tx *gorm.DB, model *models.TitleModel) error {
	if err := tx.Where("title_id = ?", model.ID).Delete(&models.InstallmentModel{}).Error; err != nil {
		return err
	}
	if len(model.Installments) == 0 {
		return nil
	}
	return tx.Create(&model.Installments).Error
}

// Delete deletes a title and its installments
func (r *GormTitleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("title_id = ?", id).Delete(&models.InstallmentModel{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.TitleModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts titles matching the filter, ignoring pagination
func (r *GormTitleRepository) Count(ctx context.Context, filter debt.TitleFilter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.TitleModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByDebtor checks if any title references the debtor
func (r *GormTitleRepository) ExistsByDebtor(ctx context.Context, debtorID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.TitleModel{}).
		Where("debtor_id = ?", debtorID).
		Limit(1).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GenerateTitleNumber generates the next number of the day: TIT-YYYYMMDD-XXXXX
func (r *GormTitleRepository) GenerateTitleNumber(ctx context.Context, at time.Time) (string, error) {
	prefix := fmt.Sprintf("TIT-%s-", at.Format("20060102"))

	var numbers []string
	if err := r.db.WithContext(ctx).
		Model(&models.TitleModel{}).
		Where("number LIKE ?", prefix+"%").
		Order("number DESC").
		Limit(1).
		Pluck("number", &numbers).Error; err != nil {
		return "", err
	}

	var next int
	if len(numbers) > 0 {
		parts := strings.Split(numbers[0], "-")
		if len(parts) == 3 {
			_, _ = fmt.Sscanf(parts[2], "%d", &next)
		}
	}
	next++
	return fmt.Sprintf("%s%05d", prefix, next), nil
}

func (r *GormTitleRepository) applyFilter(query *gorm.DB, filter debt.TitleFilter) *gorm.DB {
	if filter.DebtorID != nil {
		query = query.Where("debtor_id = ?", *filter.DebtorID)
	}
	if filter.DueFrom != nil {
		query = query.Where("due_date >= ?", debt.DateOnly(*filter.DueFrom))
	}
	if filter.DueTo != nil {
		query = query.Where("due_date <= ?", debt.DateOnly(*filter.DueTo))
	}
	if filter.Status != nil {
		switch *filter.Status {
		case debt.TitleStatusPaid:
			query = query.Where("titles.is_paid = ?", true)
		case debt.TitleStatusOverdue:
			query = whereOverdue(query, filter.ReferenceDate)
		case debt.TitleStatusOpen:
			query = whereOpen(query, filter.ReferenceDate)
		}
	}
	if s := strings.ToLower(strings.TrimSpace(filter.Search)); s != "" {
		like := "%" + s + "%"
		query = query.Where("LOWER(number) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	return query
}

func (r *GormTitleRepository) applyPaging(query *gorm.DB, filter debt.TitleFilter, defaultField, defaultDir string) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	field := ValidateSortField(filter.OrderBy, TitleSortFields, defaultField)
	dir := ValidateSortOrder(filter.OrderDir, defaultDir)
	// id breaks ties so pages stay stable
	return query.Order(field + " " + dir).Order("id ASC")
}

// Ensure GormTitleRepository implements TitleRepository
var _ debt.TitleRepository = (*GormTitleRepository)(nil)
