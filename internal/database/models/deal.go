package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Deal represents a partnership agreement with a brand
type Deal struct {
	BaseModel
	PartnerID      uuid.UUID       `json:"partner_id" gorm:"type:uuid;not null;index" validate:"required"`
	PaymentType    PaymentType     `json:"payment_type" gorm:"not null;size:20" validate:"required"`
	EstimatedValue decimal.Decimal `json:"estimated_value" gorm:"type:numeric(12,2);not null;default:0"`
	Notes          string          `json:"notes" gorm:"type:text"`
	StartDate      Date            `json:"start_date" gorm:"type:date"`
	Status         DealStatus      `json:"status" gorm:"not null;size:20;default:'active';index"`

	// Relationships
	Partner      *Partner      `json:"partner,omitempty" gorm:"foreignKey:PartnerID"`
	Deliverables []Deliverable `json:"deliverables,omitempty" gorm:"foreignKey:DealID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Deal
func (Deal) TableName() string {
	return "deals"
}

// PartnerName returns the linked partner's name or an empty string when not loaded
func (d *Deal) PartnerName() string {
	if d == nil || d.Partner == nil {
		return ""
	}
	return d.Partner.Name
}
