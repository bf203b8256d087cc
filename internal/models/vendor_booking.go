package models

import "time"

// BookingStatus represents the payment state of a vendor booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusPaid      BookingStatus = "paid"
)

// VendorBooking is a committed engagement with a vendor, attributed to
// exactly one budget category of one wedding.
//
// Amount is the full commitment value and is what feeds the category's
// actual spend. DepositPaid is informational only and never participates
// in the category total.
type VendorBooking struct {
	Base
	WeddingID      uint          `gorm:"not null;index" json:"wedding_id"`
	CategoryID     uint          `gorm:"not null;index" json:"category_id"`
	VendorName     string        `gorm:"not null" json:"vendor_name"`
	Amount         int64         `gorm:"type:bigint;not null" json:"amount"`
	DepositPaid    int64         `gorm:"type:bigint;default:0" json:"deposit_paid"`
	Status         BookingStatus `gorm:"default:pending" json:"status"`
	PaymentDueDate *time.Time    `json:"payment_due_date,omitempty"`
	Notes          string        `json:"notes"`

	// Relationships
	Category BudgetCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
