// Package seedtemplates supplies the default budget categories and
// date-bucketed default tasks created alongside a new wedding, plus the
// demo vendor directory entries seeded on first boot. The booking ledger
// consumes these rows but does not generate them.
package seedtemplates

import (
	"time"

	"weddinghub/internal/models"
)

// CategoryTemplate describes one default budget category.
type CategoryTemplate struct {
	Name          string
	Icon          string
	PlannedAmount int64
}

// TaskTemplate describes one default task relative to the wedding date.
type TaskTemplate struct {
	Title      string
	IsUrgent   bool
	Period     models.TimelinePeriod
	DaysBefore int
}

// DefaultCategories returns the standard category split for a new wedding.
// Amounts are in minor currency units.
func DefaultCategories() []CategoryTemplate {
	return []CategoryTemplate{
		{Name: "Venue & Hospitality", Icon: "🏛️", PlannedAmount: 9000000},
		{Name: "Photo & Video", Icon: "📸", PlannedAmount: 1500000},
		{Name: "Music & Entertainment", Icon: "🎵", PlannedAmount: 1200000},
		{Name: "Flowers & Design", Icon: "💐", PlannedAmount: 1050000},
		{Name: "Attire & Beauty", Icon: "💄", PlannedAmount: 900000},
	}
}

// DefaultTasks returns the standard task checklist bucketed by how far
// ahead of the wedding each item belongs. Due dates are derived from the
// wedding date; tasks whose window has already passed keep their bucket
// but get no due date. The dashboard only counts completion, not lateness.
func DefaultTasks() []TaskTemplate {
	return []TaskTemplate{
		{Title: "Book the venue", IsUrgent: true, Period: models.TimelinePeriod12Months, DaysBefore: 365},
		{Title: "Book photographer and videographer", IsUrgent: false, Period: models.TimelinePeriod12Months, DaysBefore: 330},
		{Title: "Buy wedding rings", IsUrgent: false, Period: models.TimelinePeriod6Months, DaysBefore: 180},
		{Title: "Choose menu with the caterer", IsUrgent: false, Period: models.TimelinePeriod6Months, DaysBefore: 150},
		{Title: "Send invitations", IsUrgent: true, Period: models.TimelinePeriod3Months, DaysBefore: 90},
		{Title: "Final dress and suit fitting", IsUrgent: false, Period: models.TimelinePeriod1Month, DaysBefore: 30},
		{Title: "Confirm guest count with venue", IsUrgent: true, Period: models.TimelinePeriod1Week, DaysBefore: 7},
	}
}

// BuildTasks materializes the default task templates for a wedding.
func BuildTasks(weddingID uint, weddingDate time.Time) []models.Task {
	templates := DefaultTasks()
	tasks := make([]models.Task, 0, len(templates))
	for _, tpl := range templates {
		due := weddingDate.AddDate(0, 0, -tpl.DaysBefore)
		task := models.Task{
			WeddingID:      weddingID,
			Title:          tpl.Title,
			IsUrgent:       tpl.IsUrgent,
			TimelinePeriod: tpl.Period,
		}
		if due.After(time.Now()) {
			d := due
			task.DueDate = &d
		}
		tasks = append(tasks, task)
	}
	return tasks
}

// DefaultVendors returns the demo directory entries seeded on first boot so
// the marketplace is browsable before anyone registers a vendor. Ratings and
// review counts are display seed data, not aggregates.
func DefaultVendors() []models.Vendor {
	return []models.Vendor{
		{Name: "Grand Palais Hall", Category: "venue", Location: "Tel Aviv", PriceRange: models.PriceRangeLuxury, Rating: 4.8, ReviewCount: 124, Phone: "03-5550101", Description: "Banquet hall for up to 600 guests with in-house catering", IsVerified: true},
		{Name: "Garden of Eden Events", Category: "venue", Location: "Caesarea", PriceRange: models.PriceRangePremium, Rating: 4.6, ReviewCount: 87, Phone: "04-5550144", Description: "Open-air garden venue by the coast", IsVerified: true},
		{Name: "Lior Weiss Photography", Category: "photography", Location: "Tel Aviv", PriceRange: models.PriceRangePremium, Rating: 4.9, ReviewCount: 203, Phone: "050-5550168", Description: "Documentary-style wedding photography and video", IsVerified: true},
		{Name: "Focus Studio", Category: "photography", Location: "Haifa", PriceRange: models.PriceRangeModerate, Rating: 4.4, ReviewCount: 56, Phone: "04-5550177", Description: "Photo and video packages for smaller weddings"},
		{Name: "DJ Omri Productions", Category: "music", Location: "Rishon LeZion", PriceRange: models.PriceRangeModerate, Rating: 4.7, ReviewCount: 142, Phone: "052-5550190", Description: "DJ, sound, and lighting for dance-floor weddings", IsVerified: true},
		{Name: "Bloom & Vine", Category: "flowers", Location: "Jerusalem", PriceRange: models.PriceRangeModerate, Rating: 4.5, ReviewCount: 61, Phone: "02-5550112", Description: "Bridal bouquets and full venue floral design"},
		{Name: "Chef Tamar Catering", Category: "catering", Location: "Netanya", PriceRange: models.PriceRangePremium, Rating: 4.8, ReviewCount: 95, Phone: "09-5550123", Description: "Seasonal tasting menus, kosher kitchen available", IsVerified: true},
		{Name: "Bella Bridal Studio", Category: "attire", Location: "Tel Aviv", PriceRange: models.PriceRangeBudget, Rating: 4.2, ReviewCount: 38, Phone: "03-5550135", Description: "Dress rental and fitting, suits for grooms"},
	}
}

// BuildCategories materializes the default category templates for a wedding.
func BuildCategories(weddingID uint) []models.BudgetCategory {
	templates := DefaultCategories()
	categories := make([]models.BudgetCategory, 0, len(templates))
	for _, tpl := range templates {
		categories = append(categories, models.BudgetCategory{
			WeddingID:     weddingID,
			Name:          tpl.Name,
			Icon:          tpl.Icon,
			PlannedAmount: tpl.PlannedAmount,
		})
	}
	return categories
}
