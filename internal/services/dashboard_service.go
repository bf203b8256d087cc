package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "weddinghub/internal/errors"
	"weddinghub/internal/models"
)

// dashboardService computes the read-only aggregates for one wedding.
// It never mutates anything: calling it twice with no intervening write
// yields identical results.
type dashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(db *gorm.DB) DashboardServicer {
	return &dashboardService{db: db}
}

// Summary combines the countdown, task progress, and budget totals.
func (s *dashboardService) Summary(weddingID uint) (*DashboardSummary, error) {
	var wedding models.Wedding
	if err := s.db.Where("id = ?", weddingID).First(&wedding).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWeddingNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary := &DashboardSummary{
		Partner1Name:  wedding.Partner1Name,
		Partner2Name:  wedding.Partner2Name,
		WeddingDate:   wedding.WeddingDate.Format("2006-01-02"),
		DaysRemaining: daysUntil(wedding.WeddingDate),
	}

	// Task progress
	err := s.db.Model(&models.Task{}).
		Where("wedding_id = ?", weddingID).
		Count(&summary.TasksTotal).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	err = s.db.Model(&models.Task{}).
		Where("wedding_id = ? AND is_completed = ?", weddingID, true).
		Count(&summary.TasksCompleted).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	// Urgent means urgent AND still open; a completed urgent task is done.
	err = s.db.Model(&models.Task{}).
		Where("wedding_id = ? AND is_urgent = ? AND is_completed = ?", weddingID, true, false).
		Count(&summary.TasksUrgent).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	// The divisor floors at 1 so a wedding without tasks reports 0%,
	// not a division error.
	divisor := summary.TasksTotal
	if divisor == 0 {
		divisor = 1
	}
	summary.ControlPercentage = int(summary.TasksCompleted * 100 / divisor)

	// Budget totals
	type budgetRow struct {
		Planned int64
		Actual  int64
	}
	var totals budgetRow
	err = s.db.Model(&models.BudgetCategory{}).
		Select("COALESCE(SUM(planned_amount), 0) AS planned, COALESCE(SUM(actual_amount), 0) AS actual").
		Where("wedding_id = ?", weddingID).
		Scan(&totals).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary.BudgetPlanned = totals.Planned
	if summary.BudgetPlanned == 0 {
		// No category plan yet: fall back to the wedding-level figure.
		summary.BudgetPlanned = wedding.TotalBudget
	}
	summary.BudgetActual = totals.Actual
	// Overspend is a valid, representable state: remaining may be negative.
	summary.BudgetRemaining = summary.BudgetPlanned - summary.BudgetActual
	if summary.BudgetPlanned > 0 {
		summary.BudgetPercentage = int(summary.BudgetActual * 100 / summary.BudgetPlanned)
	}

	return summary, nil
}

// daysUntil counts whole calendar days from today until the given date,
// never going negative for dates in the past.
func daysUntil(date time.Time) int {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	target := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	days := int(target.Sub(today).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
