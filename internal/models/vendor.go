package models

// PriceRange is a rough cost tier for a marketplace vendor.
type PriceRange string

const (
	PriceRangeBudget   PriceRange = "$"
	PriceRangeModerate PriceRange = "$$"
	PriceRangePremium  PriceRange = "$$$"
	PriceRangeLuxury   PriceRange = "$$$$"
)

// Vendor is a marketplace directory entry. It is independent of any
// wedding; booking a vendor for a wedding creates a VendorBooking.
type Vendor struct {
	Base
	Name        string     `gorm:"not null" json:"name"`
	Category    string     `gorm:"not null;index" json:"category"`
	Location    string     `gorm:"index" json:"location"`
	PriceRange  PriceRange `json:"price_range"`
	Rating      float64    `gorm:"default:0" json:"rating"`
	ReviewCount int        `gorm:"default:0" json:"review_count"`
	Phone       string     `json:"phone"`
	Description string     `json:"description"`
	IsVerified  bool       `gorm:"default:false" json:"is_verified"`
}
