// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("booking_status", validateBookingStatus)
		_ = v.RegisterValidation("timeline_period", validateTimelinePeriod)
		_ = v.RegisterValidation("price_range", validatePriceRange)
	}
}

func validateBookingStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "pending", "confirmed", "paid":
		return true
	}
	return false
}

func validateTimelinePeriod(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "12_months", "6_months", "3_months", "1_month", "1_week":
		return true
	}
	return false
}

func validatePriceRange(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "$", "$$", "$$$", "$$$$":
		return true
	}
	return false
}
