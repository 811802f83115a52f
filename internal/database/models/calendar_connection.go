package models

import (
	"time"
)

// CalendarConnection stores a user's Google Calendar grant.
// One row per user; tokens are never serialized to API responses.
type CalendarConnection struct {
	BaseModel
	Provider     string    `json:"provider" gorm:"not null;size:20;default:'google'"`
	AccessToken  string    `json:"-" gorm:"type:text;not null"`
	RefreshToken string    `json:"-" gorm:"type:text"`
	TokenExpiry  time.Time `json:"token_expiry"`
}

// TableName returns the table name for CalendarConnection
func (CalendarConnection) TableName() string {
	return "calendar_connections"
}

// HasRefreshToken reports whether the grant can be refreshed without user interaction
func (c *CalendarConnection) HasRefreshToken() bool {
	return c.RefreshToken != ""
}
