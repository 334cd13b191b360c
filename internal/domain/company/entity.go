package company

import "time"

// SubscriptionStatus enum
type SubscriptionStatus string

const (
	StatusTrial     SubscriptionStatus = "trial"
	StatusActive    SubscriptionStatus = "active"
	StatusExpired   SubscriptionStatus = "expired"
	StatusSuspended SubscriptionStatus = "suspended"
)

// Company is the tenant boundary. Every business entity below it carries a
// company reference.
type Company struct {
	ID                 string
	Code               string // short unique code, prefixes all resource codes
	Name               string
	SubscriptionStatus SubscriptionStatus
	TrialEndsAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// CanOperate reports whether the tenant may run mutating operations.
func (c *Company) CanOperate(now time.Time) bool {
	switch c.SubscriptionStatus {
	case StatusActive:
		return true
	case StatusTrial:
		return c.TrialEndsAt == nil || now.Before(*c.TrialEndsAt)
	default:
		return false
	}
}
