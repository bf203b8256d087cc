package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "weddinghub/internal/errors"
	"weddinghub/internal/logger"
	"weddinghub/internal/models"
	"weddinghub/internal/notify"
)

// categoryService handles budget category business logic.
type categoryService struct {
	db       *gorm.DB
	notifier notify.Notifier
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB, notifier notify.Notifier) CategoryServicer {
	return &categoryService{db: db, notifier: notifier}
}

// CreateCategory adds an ad hoc category to a wedding. New categories start
// with a zero actual_amount; only bookings move it.
func (s *categoryService) CreateCategory(weddingID uint, name, icon string, plannedAmount int64) (*models.BudgetCategory, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}
	if plannedAmount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "planned amount must not be negative")
	}

	var wedding models.Wedding
	if err := s.db.Where("id = ?", weddingID).First(&wedding).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWeddingNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	category := &models.BudgetCategory{
		WeddingID:     weddingID,
		Name:          name,
		Icon:          icon,
		PlannedAmount: plannedAmount,
	}
	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.notifier.WeddingUpdated(context.Background(), weddingID, "category.created")
	return category, nil
}

// GetWeddingCategories lists the categories of a wedding.
func (s *categoryService) GetWeddingCategories(weddingID uint) ([]models.BudgetCategory, error) {
	var categories []models.BudgetCategory
	if err := s.db.Where("wedding_id = ?", weddingID).Order("id").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// GetCategoryByID returns a category by ID.
func (s *categoryService) GetCategoryByID(categoryID uint) (*models.BudgetCategory, error) {
	var category models.BudgetCategory
	if err := s.db.Where("id = ?", categoryID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// UpdateCategory changes name, icon, or planned amount. The actual amount
// is deliberately not updatable here.
func (s *categoryService) UpdateCategory(categoryID uint, name, icon string, plannedAmount *int64) (*models.BudgetCategory, error) {
	category, err := s.GetCategoryByID(categoryID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if icon != "" {
		updates["icon"] = icon
	}
	if plannedAmount != nil {
		if *plannedAmount < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "planned amount must not be negative")
		}
		updates["planned_amount"] = *plannedAmount
	}

	if len(updates) > 0 {
		if err := s.db.Model(category).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		s.notifier.WeddingUpdated(context.Background(), category.WeddingID, "category.updated")
	}

	return category, nil
}

// DeleteCategory soft-deletes a category. Categories with live bookings
// cannot be deleted, since removing one would orphan its share of actual spend.
func (s *categoryService) DeleteCategory(categoryID uint) error {
	category, err := s.GetCategoryByID(categoryID)
	if err != nil {
		return err
	}

	var bookings int64
	if err := s.db.Model(&models.VendorBooking{}).Where("category_id = ?", categoryID).Count(&bookings).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if bookings > 0 {
		return apperrors.ErrCategoryInUse
	}

	if err := s.db.Delete(category).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.notifier.WeddingUpdated(context.Background(), category.WeddingID, "category.deleted")
	return nil
}

// OverrideActualAmount is the explicit administrative correction of a
// category's running total. It bypasses the ledger on purpose and is the
// only direct write path to actual_amount; the caller takes responsibility
// for the resulting totals.
func (s *categoryService) OverrideActualAmount(categoryID uint, actual int64) (*models.BudgetCategory, error) {
	category, err := s.GetCategoryByID(categoryID)
	if err != nil {
		return nil, err
	}

	logger.Get().Warnw("administrative actual_amount override",
		"category_id", categoryID,
		"old_actual", category.ActualAmount,
		"new_actual", actual,
	)

	if err := s.db.Model(category).Update("actual_amount", actual).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.notifier.WeddingUpdated(context.Background(), category.WeddingID, "category.overridden")
	return category, nil
}
