package models

// Partner represents a brand the creator works with
type Partner struct {
	BaseModel
	Name        string `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	ContactInfo string `json:"contact_info" gorm:"size:200" validate:"max=200"`
	Niche       string `json:"niche" gorm:"size:100" validate:"max=100"`

	// Relationships
	Deals []Deal `json:"deals,omitempty" gorm:"foreignKey:PartnerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Partner
func (Partner) TableName() string {
	return "partners"
}
