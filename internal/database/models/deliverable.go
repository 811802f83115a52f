package models

import (
	"github.com/google/uuid"
)

// Deliverable is a piece of content owed to a partner under a deal
type Deliverable struct {
	BaseModel
	DealID  uuid.UUID         `json:"deal_id" gorm:"type:uuid;not null;index" validate:"required"`
	Type    DeliverableType   `json:"type" gorm:"not null;size:20"`
	DueDate *Date             `json:"due_date" gorm:"type:date;index"`
	Status  DeliverableStatus `json:"status" gorm:"not null;size:20;default:'pending';index"`

	// Relationships
	Deal *Deal `json:"deal,omitempty" gorm:"foreignKey:DealID"`
}

// TableName returns the table name for Deliverable
func (Deliverable) TableName() string {
	return "deliverables"
}

// IsPosted reports whether the deliverable has been published
func (d *Deliverable) IsPosted() bool {
	return d.Status == DeliverableStatusPosted
}
