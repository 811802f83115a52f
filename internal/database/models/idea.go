package models

// Idea is a content idea tracked on the Kanban board.
// Ideas carry no rank inside a stage; store order is display order.
type Idea struct {
	BaseModel
	Title       string        `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description string        `json:"description" gorm:"type:text"`
	Status      IdeaStatus    `json:"status" gorm:"not null;size:20;index"`
	Platform    *IdeaPlatform `json:"platform,omitempty" gorm:"size:20"`
	Priority    *IdeaPriority `json:"priority,omitempty" gorm:"size:10"`
}

// TableName returns the table name for Idea
func (Idea) TableName() string {
	return "ideas"
}
