package models

// BudgetCategory is a named bucket of planned wedding spending.
//
// ActualAmount is a derived running total: it must always equal the sum of
// amounts over the live vendor bookings that reference this category. Only
// the booking service mutates it (plus one explicit admin override); it is
// never accepted directly from a client payload.
type BudgetCategory struct {
	Base
	WeddingID     uint   `gorm:"not null;index" json:"wedding_id"`
	Name          string `gorm:"not null" json:"name"`
	Icon          string `json:"icon"`
	PlannedAmount int64  `gorm:"type:bigint;not null" json:"planned_amount"`
	ActualAmount  int64  `gorm:"type:bigint;not null;default:0" json:"actual_amount"`

	// Relationships
	Bookings []VendorBooking `gorm:"foreignKey:CategoryID" json:"bookings,omitempty"`
}
