package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"publiflow-backend/internal/database/models"
	apperrors "publiflow-backend/internal/errors"
	"publiflow-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExpenseService handles business logic for expenses
type ExpenseService struct {
	repo      repository.ExpenseRepositoryInterface
	validator *validator.Validate
	now       func() time.Time
}

var _ ExpenseServiceInterface = (*ExpenseService)(nil)

// NewExpenseService creates a new expense service
func NewExpenseService(repo repository.ExpenseRepositoryInterface, validator *validator.Validate) *ExpenseService {
	return &ExpenseService{
		repo:      repo,
		validator: validator,
		now:       time.Now,
	}
}

// CreateExpenseRequest represents the request to record an expense
type CreateExpenseRequest struct {
	Description string                 `json:"description" validate:"required,min=1,max=200"`
	Amount      decimal.Decimal        `json:"amount" swaggertype:"string"`
	Category    models.ExpenseCategory `json:"category" validate:"required,oneof=Equipamento Transporte Software Outros"`
	// Date defaults to today
	Date *models.Date `json:"date" swaggertype:"string" example:"2025-03-14"`
}

// ExpenseResponse represents an expense in API responses
type ExpenseResponse struct {
	ID          uuid.UUID              `json:"id"`
	Description string                 `json:"description"`
	Amount      decimal.Decimal        `json:"amount" swaggertype:"string"`
	Category    models.ExpenseCategory `json:"category"`
	Date        string                 `json:"date"`
}

// List returns the user's expenses, most recent first
func (s *ExpenseService) List(ctx context.Context, userID uuid.UUID) ([]ExpenseResponse, error) {
	expenses, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	responses := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = *toExpenseResponse(&expenses[i])
	}
	return responses, nil
}

// Create records an expense
func (s *ExpenseService) Create(ctx context.Context, userID uuid.UUID, req *CreateExpenseRequest) (*ExpenseResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("amount", "must be greater than zero")
	}

	date := models.DateOf(s.now())
	if req.Date != nil && !req.Date.IsZero() {
		date = *req.Date
	}

	expense := &models.Expense{
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		Date:        date,
	}
	expense.UserID = userID

	if err := s.repo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	return toExpenseResponse(expense), nil
}

// Delete deletes an expense
func (s *ExpenseService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrExpenseNotFound
		}
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}

func toExpenseResponse(e *models.Expense) *ExpenseResponse {
	return &ExpenseResponse{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    e.Category,
		Date:        e.Date.String(),
	}
}
