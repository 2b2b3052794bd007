package model

import (
	"time"
)

// RateLimitCounter counts one user's attempts of one action on one UTC day
type RateLimitCounter struct {
	UserID      string    `gorm:"primaryKey;size:128"`
	Action      string    `gorm:"primaryKey;size:32"`
	Day         string    `gorm:"primaryKey;size:10;index"`
	Count       int64     `gorm:"not null;default:0"`
	LastUpdated time.Time `gorm:"not null"`
}

// TableName specifies the table name for RateLimitCounter
func (RateLimitCounter) TableName() string {
	return "rate_limit_counters"
}
