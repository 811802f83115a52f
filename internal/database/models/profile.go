package models

import (
	"time"
)

// Profile holds the user-facing settings and subscription state of an account.
// UserID is the identity provider's subject and is unique per profile.
type Profile struct {
	BaseModel
	FullName           string             `json:"full_name" gorm:"size:200"`
	Bio                string             `json:"bio" gorm:"type:text"`
	AvatarURL          string             `json:"avatar_url" gorm:"size:500"`
	SubscriptionStatus SubscriptionStatus `json:"subscription_status" gorm:"not null;size:20;default:'trial'"`
	TrialEndsAt        *time.Time         `json:"trial_ends_at"`
}

// TableName returns the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}

// IsExpired reports whether access should be blocked at instant now.
// An active subscription never expires; a trial expires once TrialEndsAt has passed;
// canceled and past_due subscriptions are always expired.
func (p *Profile) IsExpired(now time.Time) bool {
	switch p.SubscriptionStatus {
	case SubscriptionStatusActive:
		return false
	case SubscriptionStatusTrial:
		return p.TrialEndsAt != nil && now.After(*p.TrialEndsAt)
	case SubscriptionStatusCanceled, SubscriptionStatusPastDue:
		return true
	}
	return false
}
