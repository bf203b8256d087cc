package services

import (
	"time"

	"weddinghub/internal/models"
	"weddinghub/internal/pagination"
)

// WeddingServicer defines the contract for wedding-related business logic.
type WeddingServicer interface {
	CreateWedding(partner1, partner2 string, weddingDate time.Time, guestCount int, totalBudget int64) (*models.Wedding, error)
	GetWeddingByID(weddingID uint) (*models.Wedding, error)
	UpdateWedding(weddingID uint, partner1, partner2 string, weddingDate *time.Time, guestCount *int) (*models.Wedding, error)
	UpdateTotalBudget(weddingID uint, total int64) (*models.Wedding, error)
	SeedDemoWedding() (*models.Wedding, error)
}

// CategoryServicer defines the contract for budget category logic.
// ActualAmount is owned by the booking ledger; the only direct write this
// service exposes is the explicit administrative override.
type CategoryServicer interface {
	CreateCategory(weddingID uint, name, icon string, plannedAmount int64) (*models.BudgetCategory, error)
	GetWeddingCategories(weddingID uint) ([]models.BudgetCategory, error)
	GetCategoryByID(categoryID uint) (*models.BudgetCategory, error)
	UpdateCategory(categoryID uint, name, icon string, plannedAmount *int64) (*models.BudgetCategory, error)
	DeleteCategory(categoryID uint) error
	OverrideActualAmount(categoryID uint, actual int64) (*models.BudgetCategory, error)
}

// BookingPatch holds the optional fields of a booking update. A nil field
// leaves the current value unchanged.
type BookingPatch struct {
	VendorName     *string
	Amount         *int64
	DepositPaid    *int64
	Status         *models.BookingStatus
	PaymentDueDate *time.Time
	Notes          *string
}

// BookingServicer is the budget ledger: it owns the invariant that each
// category's actual_amount equals the sum of amounts over its live bookings.
type BookingServicer interface {
	CreateBooking(weddingID, categoryID uint, vendorName string, amount, depositPaid int64, dueDate *time.Time, notes string) (*models.VendorBooking, error)
	GetWeddingBookings(weddingID uint, page pagination.PageRequest) (*pagination.PageResponse[models.VendorBooking], error)
	GetBookingByID(bookingID uint) (*models.VendorBooking, error)
	UpdateBooking(bookingID uint, patch BookingPatch) (*models.VendorBooking, error)
	DeleteBooking(bookingID uint) error
	VerifyCategoryTotals(weddingID uint) error
}

// TaskFilter holds optional filter parameters for listing tasks.
type TaskFilter struct {
	Completed *bool
	Period    *models.TimelinePeriod
}

// TaskServicer defines the contract for task-related business logic.
type TaskServicer interface {
	CreateTask(weddingID uint, title string, isUrgent bool, period models.TimelinePeriod, dueDate *time.Time) (*models.Task, error)
	GetWeddingTasks(weddingID uint, filter TaskFilter) ([]models.Task, error)
	ToggleTask(taskID uint) (*models.Task, error)
	UpdateTask(taskID uint, title string, isUrgent *bool, period *models.TimelinePeriod, dueDate *time.Time) (*models.Task, error)
	DeleteTask(taskID uint) error
}

// VendorFilter holds optional search parameters for the vendor directory.
type VendorFilter struct {
	Category   *string
	Location   *string
	PriceRange *models.PriceRange
	Verified   *bool
}

// VendorServicer defines the contract for the marketplace vendor directory.
type VendorServicer interface {
	CreateVendor(name, category, location string, priceRange models.PriceRange, phone, description string) (*models.Vendor, error)
	SearchVendors(filter VendorFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Vendor], error)
	GetVendorByID(vendorID uint) (*models.Vendor, error)
	SetVerified(vendorID uint, verified bool) (*models.Vendor, error)
	SeedDemoVendors() error
}

// DashboardSummary is the aggregate read model combining countdown, task
// progress, and budget totals for one wedding.
type DashboardSummary struct {
	Partner1Name      string `json:"partner1_name"`
	Partner2Name      string `json:"partner2_name"`
	WeddingDate       string `json:"wedding_date"`
	DaysRemaining     int    `json:"days_remaining"`
	ControlPercentage int    `json:"control_percentage"`
	TasksCompleted    int64  `json:"tasks_completed"`
	TasksUrgent       int64  `json:"tasks_urgent"`
	TasksTotal        int64  `json:"tasks_total"`
	BudgetPlanned     int64  `json:"budget_planned"`
	BudgetActual      int64  `json:"budget_actual"`
	BudgetRemaining   int64  `json:"budget_remaining"`
	BudgetPercentage  int    `json:"budget_percentage"`
}

// DashboardServicer computes the read-only dashboard aggregates.
type DashboardServicer interface {
	Summary(weddingID uint) (*DashboardSummary, error)
}
