package models

import (
	"github.com/shopspring/decimal"
)

// Expense is money the creator spent on their work
type Expense struct {
	BaseModel
	Description string          `json:"description" gorm:"not null;size:200" validate:"required,max=200"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:numeric(12,2);not null"`
	Category    ExpenseCategory `json:"category" gorm:"not null;size:20"`
	Date        Date            `json:"date" gorm:"type:date;not null;index"`
}

// TableName returns the table name for Expense
func (Expense) TableName() string {
	return "expenses"
}
