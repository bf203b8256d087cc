package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"weddinghub/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestWedding creates a wedding one year out with a default budget.
func CreateTestWedding(t *testing.T, db *gorm.DB) *models.Wedding {
	t.Helper()
	return CreateTestWeddingWithBudget(t, db, 16500000) // 165,000.00
}

// CreateTestWeddingWithBudget creates a wedding with the given total budget
// (in minor units).
func CreateTestWeddingWithBudget(t *testing.T, db *gorm.DB, totalBudget int64) *models.Wedding {
	t.Helper()

	n := nextID()
	wedding := &models.Wedding{
		Partner1Name: fmt.Sprintf("Partner A %d", n),
		Partner2Name: fmt.Sprintf("Partner B %d", n),
		WeddingDate:  time.Now().AddDate(1, 0, 0).Truncate(24 * time.Hour),
		GuestCount:   400,
		TotalBudget:  totalBudget,
	}
	if err := db.Create(wedding).Error; err != nil {
		t.Fatalf("failed to create test wedding: %v", err)
	}
	return wedding
}

// CreateTestCategory creates a budget category with the given plan (in minor
// units) and a zero actual amount.
func CreateTestCategory(t *testing.T, db *gorm.DB, weddingID uint, plannedAmount int64) *models.BudgetCategory {
	t.Helper()

	category := &models.BudgetCategory{
		WeddingID:     weddingID,
		Name:          fmt.Sprintf("Test Category %d", nextID()),
		Icon:          "🎀",
		PlannedAmount: plannedAmount,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestBooking creates a booking row directly, without touching the
// category total. Tests that need the ledger kept consistent should go
// through the booking service instead.
func CreateTestBooking(t *testing.T, db *gorm.DB, weddingID, categoryID uint, amount int64) *models.VendorBooking {
	t.Helper()

	booking := &models.VendorBooking{
		WeddingID:  weddingID,
		CategoryID: categoryID,
		VendorName: fmt.Sprintf("Test Vendor %d", nextID()),
		Amount:     amount,
		Status:     models.BookingStatusPending,
	}
	if err := db.Create(booking).Error; err != nil {
		t.Fatalf("failed to create test booking: %v", err)
	}
	return booking
}

// CreateTestTask creates an open task.
func CreateTestTask(t *testing.T, db *gorm.DB, weddingID uint) *models.Task {
	t.Helper()

	task := &models.Task{
		WeddingID:      weddingID,
		Title:          fmt.Sprintf("Test Task %d", nextID()),
		TimelinePeriod: models.TimelinePeriod6Months,
	}
	if err := db.Create(task).Error; err != nil {
		t.Fatalf("failed to create test task: %v", err)
	}
	return task
}

// CreateTestCompletedTask creates a task already marked completed.
func CreateTestCompletedTask(t *testing.T, db *gorm.DB, weddingID uint) *models.Task {
	t.Helper()

	now := time.Now()
	task := &models.Task{
		WeddingID:      weddingID,
		Title:          fmt.Sprintf("Test Task %d", nextID()),
		IsCompleted:    true,
		CompletedAt:    &now,
		TimelinePeriod: models.TimelinePeriod6Months,
	}
	if err := db.Create(task).Error; err != nil {
		t.Fatalf("failed to create test task: %v", err)
	}
	return task
}

// CreateTestVendor creates a directory vendor with the given rating.
func CreateTestVendor(t *testing.T, db *gorm.DB, category string, rating float64) *models.Vendor {
	t.Helper()

	vendor := &models.Vendor{
		Name:        fmt.Sprintf("Test Vendor %d", nextID()),
		Category:    category,
		Location:    "Tel Aviv",
		PriceRange:  models.PriceRangeModerate,
		Rating:      rating,
		ReviewCount: 10,
	}
	if err := db.Create(vendor).Error; err != nil {
		t.Fatalf("failed to create test vendor: %v", err)
	}
	return vendor
}
