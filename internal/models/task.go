package models

import "time"

// TimelinePeriod buckets a task by how far ahead of the wedding it belongs.
type TimelinePeriod string

const (
	TimelinePeriod12Months TimelinePeriod = "12_months"
	TimelinePeriod6Months  TimelinePeriod = "6_months"
	TimelinePeriod3Months  TimelinePeriod = "3_months"
	TimelinePeriod1Month   TimelinePeriod = "1_month"
	TimelinePeriod1Week    TimelinePeriod = "1_week"
)

// Task is a planning to-do belonging to a wedding. CompletedAt is recorded
// when a task transitions to complete and cleared when it is reopened.
type Task struct {
	Base
	WeddingID      uint           `gorm:"not null;index" json:"wedding_id"`
	Title          string         `gorm:"not null" json:"title"`
	IsUrgent       bool           `gorm:"default:false" json:"is_urgent"`
	IsCompleted    bool           `gorm:"default:false" json:"is_completed"`
	CompletedAt    *time.Time     `json:"completed_at,omitempty"`
	TimelinePeriod TimelinePeriod `json:"timeline_period,omitempty"`
	DueDate        *time.Time     `json:"due_date,omitempty"`
}
