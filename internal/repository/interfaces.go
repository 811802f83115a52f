package repository

import (
	"context"

	"publiflow-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// PartnerRepositoryInterface defines the interface for partner repository operations
type PartnerRepositoryInterface interface {
	Create(ctx context.Context, partner *models.Partner) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Partner, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Partner, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// DealRepositoryInterface defines the interface for deal repository operations
type DealRepositoryInterface interface {
	Create(ctx context.Context, deal *models.Deal) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Deal, error)
	GetWithDetails(ctx context.Context, userID, id uuid.UUID) (*models.Deal, error)
	GetForReport(ctx context.Context, id uuid.UUID) (*models.Deal, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Deal, error)
	UpdateStatus(ctx context.Context, userID, id uuid.UUID, status models.DealStatus) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	CountByStatus(ctx context.Context, userID uuid.UUID, status models.DealStatus) (int64, error)
	SumEstimatedValue(ctx context.Context, userID uuid.UUID, statuses ...models.DealStatus) (decimal.Decimal, error)
}

// DeliverableRepositoryInterface defines the interface for deliverable repository operations
type DeliverableRepositoryInterface interface {
	Create(ctx context.Context, deliverable *models.Deliverable) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Deliverable, error)
	ListPendingDated(ctx context.Context, userID uuid.UUID) ([]models.Deliverable, error)
	ListDueBetween(ctx context.Context, userID uuid.UUID, from, to models.Date) ([]models.Deliverable, error)
	ListUpcomingPending(ctx context.Context, userID uuid.UUID, limit int) ([]models.Deliverable, error)
	CountPending(ctx context.Context, userID uuid.UUID) (int64, error)
	UpdateStatus(ctx context.Context, userID, id uuid.UUID, status models.DeliverableStatus) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// IdeaRepositoryInterface defines the interface for idea repository operations
type IdeaRepositoryInterface interface {
	Create(ctx context.Context, idea *models.Idea) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Idea, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Idea, error)
	UpdateStatus(ctx context.Context, userID, id uuid.UUID, status models.IdeaStatus) error
	Update(ctx context.Context, idea *models.Idea) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// ExpenseRepositoryInterface defines the interface for expense repository operations
type ExpenseRepositoryInterface interface {
	Create(ctx context.Context, expense *models.Expense) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Expense, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	SumAmount(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
}

// ProfileRepositoryInterface defines the interface for profile repository operations
type ProfileRepositoryInterface interface {
	Create(ctx context.Context, profile *models.Profile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	Update(ctx context.Context, profile *models.Profile) error
}

// CalendarConnectionRepositoryInterface defines the interface for calendar connection repository operations
type CalendarConnectionRepositoryInterface interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.CalendarConnection, error)
	Upsert(ctx context.Context, conn *models.CalendarConnection) error
	UpdateAccessToken(ctx context.Context, userID uuid.UUID, accessToken string) error
	Delete(ctx context.Context, userID uuid.UUID) error
}
