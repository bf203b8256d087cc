package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "weddinghub/internal/errors"
	"weddinghub/internal/logger"
	"weddinghub/internal/models"
	"weddinghub/internal/notify"
	"weddinghub/internal/seedtemplates"
)

// weddingService handles wedding-related business logic.
type weddingService struct {
	db       *gorm.DB
	notifier notify.Notifier
}

// NewWeddingService creates a new WeddingServicer.
func NewWeddingService(db *gorm.DB, notifier notify.Notifier) WeddingServicer {
	return &weddingService{db: db, notifier: notifier}
}

// CreateWedding creates a wedding together with its default budget
// categories and date-bucketed starter tasks, all in one transaction.
func (s *weddingService) CreateWedding(
	partner1, partner2 string,
	weddingDate time.Time,
	guestCount int,
	totalBudget int64,
) (*models.Wedding, error) {
	if partner1 == "" || partner2 == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "both partner names are required")
	}
	if totalBudget < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "total budget must not be negative")
	}
	if guestCount <= 0 {
		guestCount = 400
	}

	wedding := &models.Wedding{
		Partner1Name: partner1,
		Partner2Name: partner2,
		WeddingDate:  weddingDate,
		GuestCount:   guestCount,
		TotalBudget:  totalBudget,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(wedding).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		categories := seedtemplates.BuildCategories(wedding.ID)
		if err := tx.Create(&categories).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		tasks := seedtemplates.BuildTasks(wedding.ID, weddingDate)
		if err := tx.Create(&tasks).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return wedding, nil
}

// GetWeddingByID returns a wedding with its categories preloaded.
func (s *weddingService) GetWeddingByID(weddingID uint) (*models.Wedding, error) {
	var wedding models.Wedding
	if err := s.db.Preload("Categories").Where("id = ?", weddingID).First(&wedding).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWeddingNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &wedding, nil
}

// UpdateWedding updates couple names, date, and guest count.
func (s *weddingService) UpdateWedding(
	weddingID uint,
	partner1, partner2 string,
	weddingDate *time.Time,
	guestCount *int,
) (*models.Wedding, error) {
	wedding, err := s.GetWeddingByID(weddingID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if partner1 != "" {
		updates["partner1_name"] = partner1
	}
	if partner2 != "" {
		updates["partner2_name"] = partner2
	}
	if weddingDate != nil {
		updates["wedding_date"] = *weddingDate
	}
	if guestCount != nil {
		if *guestCount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "guest count must be positive")
		}
		updates["guest_count"] = *guestCount
	}

	if len(updates) > 0 {
		if err := s.db.Model(wedding).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		s.notifier.WeddingUpdated(context.Background(), weddingID, "wedding.updated")
	}

	return wedding, nil
}

// UpdateTotalBudget sets the wedding-level fallback budget figure. This is
// the whole-wedding number, not a category total; the ledger never touches it.
func (s *weddingService) UpdateTotalBudget(weddingID uint, total int64) (*models.Wedding, error) {
	if total < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "total budget must not be negative")
	}

	wedding, err := s.GetWeddingByID(weddingID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(wedding).Update("total_budget", total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.notifier.WeddingUpdated(context.Background(), weddingID, "budget.updated")
	return wedding, nil
}

// SeedDemoWedding guarantees one demo wedding exists, mirroring a fresh
// deployment. It is a no-op when any wedding is already present.
func (s *weddingService) SeedDemoWedding() (*models.Wedding, error) {
	var count int64
	if err := s.db.Model(&models.Wedding{}).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, nil
	}

	logger.Get().Info("Seeding demo wedding")
	date := time.Now().AddDate(1, 0, 0).Truncate(24 * time.Hour)
	return s.CreateWedding("Yossi", "Chen", date, 400, 16500000)
}
