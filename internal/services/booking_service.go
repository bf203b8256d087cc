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
	"weddinghub/internal/pagination"
)

// bookingService is the budget ledger. Every mutation pairs a booking row
// write with the owning category's actual_amount adjustment inside one
// database transaction; the two must commit together or not at all.
type bookingService struct {
	db       *gorm.DB
	notifier notify.Notifier
}

// NewBookingService creates a new BookingServicer.
func NewBookingService(db *gorm.DB, notifier notify.Notifier) BookingServicer {
	return &bookingService{db: db, notifier: notifier}
}

// CreateBooking inserts a booking and increases the owning category's
// actual_amount by the booking amount.
func (s *bookingService) CreateBooking(
	weddingID, categoryID uint,
	vendorName string,
	amount, depositPaid int64,
	dueDate *time.Time,
	notes string,
) (*models.VendorBooking, error) {
	if vendorName == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "vendor name is required")
	}
	if amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}
	if depositPaid < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "deposit must not be negative")
	}

	// The category must exist and belong to the given wedding. A category
	// of a different wedding is indistinguishable from a missing one.
	var category models.BudgetCategory
	if err := s.db.Where("id = ? AND wedding_id = ?", categoryID, weddingID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	booking := &models.VendorBooking{
		WeddingID:      weddingID,
		CategoryID:     categoryID,
		VendorName:     vendorName,
		Amount:         amount,
		DepositPaid:    depositPaid,
		Status:         models.BookingStatusPending,
		PaymentDueDate: dueDate,
		Notes:          notes,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(booking).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return applyCategoryDelta(tx, categoryID, amount)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.WeddingUpdated(context.Background(), weddingID, "booking.created")
	return booking, nil
}

// GetWeddingBookings retrieves a paginated list of bookings for a wedding.
func (s *bookingService) GetWeddingBookings(weddingID uint, page pagination.PageRequest) (*pagination.PageResponse[models.VendorBooking], error) {
	page.Defaults()

	base := s.db.Model(&models.VendorBooking{}).Where("wedding_id = ?", weddingID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var bookings []models.VendorBooking
	if err := base.Preload("Category").Scopes(pagination.Paginate(page)).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(bookings, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetBookingByID retrieves a booking by ID.
func (s *bookingService) GetBookingByID(bookingID uint) (*models.VendorBooking, error) {
	var booking models.VendorBooking
	if err := s.db.Where("id = ?", bookingID).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &booking, nil
}

// UpdateBooking applies a patch to a booking. When the amount changes from
// old to new, the owning category's actual_amount moves by exactly new-old,
// in the same transaction as the row update. Recomputing the category from
// scratch, or adding the new amount outright, would corrupt the total.
func (s *bookingService) UpdateBooking(bookingID uint, patch BookingPatch) (*models.VendorBooking, error) {
	booking, err := s.GetBookingByID(bookingID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if patch.VendorName != nil && *patch.VendorName != "" {
		updates["vendor_name"] = *patch.VendorName
	}
	if patch.DepositPaid != nil {
		if *patch.DepositPaid < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "deposit must not be negative")
		}
		updates["deposit_paid"] = *patch.DepositPaid
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.PaymentDueDate != nil {
		updates["payment_due_date"] = patch.PaymentDueDate
	}
	if patch.Notes != nil {
		updates["notes"] = *patch.Notes
	}

	var delta int64
	if patch.Amount != nil {
		if *patch.Amount < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
		}
		delta = *patch.Amount - booking.Amount
		updates["amount"] = *patch.Amount
	}

	if len(updates) == 0 {
		return booking, nil
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(booking).Updates(updates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if delta != 0 {
			return applyCategoryDelta(tx, booking.CategoryID, delta)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Reload to get fresh data
	if err := s.db.Where("id = ?", booking.ID).First(booking).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.notifier.WeddingUpdated(context.Background(), booking.WeddingID, "booking.updated")
	return booking, nil
}

// DeleteBooking removes a booking and decreases the owning category's
// actual_amount by the booking amount, the exact inverse of creation.
func (s *bookingService) DeleteBooking(bookingID uint) error {
	booking, err := s.GetBookingByID(bookingID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(booking).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return applyCategoryDelta(tx, booking.CategoryID, -booking.Amount)
	})
	if err != nil {
		return err
	}

	s.notifier.WeddingUpdated(context.Background(), booking.WeddingID, "booking.deleted")
	return nil
}

// VerifyCategoryTotals recomputes each category's live booking sum and
// compares it to the stored running total. A mismatch means the paired
// write was broken somewhere; it is reported, never repaired silently.
func (s *bookingService) VerifyCategoryTotals(weddingID uint) error {
	var categories []models.BudgetCategory
	if err := s.db.Where("wedding_id = ?", weddingID).Find(&categories).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for _, cat := range categories {
		var sum int64
		err := s.db.Model(&models.VendorBooking{}).
			Select("COALESCE(SUM(amount), 0)").
			Where("category_id = ?", cat.ID).
			Scan(&sum).Error
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if sum != cat.ActualAmount {
			logger.Get().Errorw("ledger corruption detected",
				"wedding_id", weddingID,
				"category_id", cat.ID,
				"stored_actual", cat.ActualAmount,
				"booking_sum", sum,
			)
			return apperrors.ErrLedgerCorrupt
		}
	}
	return nil
}

// applyCategoryDelta shifts a category's actual_amount by a signed delta.
// Must run inside the same transaction as the booking row mutation.
func applyCategoryDelta(tx *gorm.DB, categoryID uint, delta int64) error {
	res := tx.Model(&models.BudgetCategory{}).
		Where("id = ?", categoryID).
		UpdateColumn("actual_amount", gorm.Expr("actual_amount + ?", delta))
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		// Rolls back the booking write: the pair is all-or-nothing.
		return apperrors.ErrCategoryNotFound
	}
	return nil
}

// CategorySpendPercentage returns floor(actual/planned*100) for a category,
// or 0 when nothing is planned. Integer division truncates: actual=1,
// planned=3 yields 33, not 34.
func CategorySpendPercentage(cat *models.BudgetCategory) int {
	if cat.PlannedAmount <= 0 {
		return 0
	}
	return int(cat.ActualAmount * 100 / cat.PlannedAmount)
}
