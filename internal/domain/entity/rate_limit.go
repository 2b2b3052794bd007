package entity

import "time"

// RateLimitAction names an action with a daily quota
type RateLimitAction string

// Rate limited actions
const (
	ActionTopup       RateLimitAction = "topup"
	ActionSpend       RateLimitAction = "spend"
	ActionGiftsSend   RateLimitAction = "giftsSend"
	ActionGiftsRedeem RateLimitAction = "giftsRedeem"
)

// DayKeyLayout formats the UTC calendar day that partitions counters
const DayKeyLayout = "2006-01-02"

// DayKey returns the UTC calendar day of t
func DayKey(t time.Time) string {
	return t.UTC().Format(DayKeyLayout)
}

// RateLimitCounter counts attempts of one action by one user on one day
type RateLimitCounter struct {
	UserID      string
	Action      RateLimitAction
	Day         string
	Count       int64
	LastUpdated time.Time
}

// Exceeds reports whether the counter is past maxPerDay
func (c *RateLimitCounter) Exceeds(maxPerDay int64) bool {
	return c.Count > maxPerDay
}
