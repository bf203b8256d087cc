package models

import "time"

// Wedding is the root entity: one wedding owns its budget categories,
// vendor bookings, and tasks.
//
// TotalBudget is a fallback figure in minor currency units. The dashboard
// only uses it when the wedding has no category planned amounts to sum.
type Wedding struct {
	Base
	Partner1Name string    `gorm:"not null" json:"partner1_name"`
	Partner2Name string    `gorm:"not null" json:"partner2_name"`
	WeddingDate  time.Time `gorm:"not null" json:"wedding_date"`
	GuestCount   int       `gorm:"default:400" json:"guest_count"`
	TotalBudget  int64     `gorm:"type:bigint;default:0" json:"total_budget"`

	// Relationships
	Categories []BudgetCategory `gorm:"foreignKey:WeddingID" json:"categories,omitempty"`
	Bookings   []VendorBooking  `gorm:"foreignKey:WeddingID" json:"bookings,omitempty"`
	Tasks      []Task           `gorm:"foreignKey:WeddingID" json:"tasks,omitempty"`
}
