package service

import (
	"context"
	"fmt"

	"publiflow-backend/internal/database/models"
	"publiflow-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UpcomingLimit is the number of pending deliverables shown on the dashboard
const UpcomingLimit = 5

// DashboardService aggregates the overview and finance figures of a user
type DashboardService struct {
	deals        repository.DealRepositoryInterface
	deliverables repository.DeliverableRepositoryInterface
	expenses     repository.ExpenseRepositoryInterface
}

var _ DashboardServiceInterface = (*DashboardService)(nil)

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	deals repository.DealRepositoryInterface,
	deliverables repository.DeliverableRepositoryInterface,
	expenses repository.ExpenseRepositoryInterface,
) *DashboardService {
	return &DashboardService{
		deals:        deals,
		deliverables: deliverables,
		expenses:     expenses,
	}
}

// DashboardResponse is the overview of a user's active work
type DashboardResponse struct {
	ActiveDeals         int64                 `json:"active_deals"`
	PendingDeliverables int64                 `json:"pending_deliverables"`
	EstimatedRevenue    decimal.Decimal       `json:"estimated_revenue" swaggertype:"string"`
	Upcoming            []DeliverableResponse `json:"upcoming"`
}

// FinanceResponse is the money summary of a user
type FinanceResponse struct {
	Revenue  decimal.Decimal `json:"revenue" swaggertype:"string"`
	Expenses decimal.Decimal `json:"expenses" swaggertype:"string"`
	Balance  decimal.Decimal `json:"balance" swaggertype:"string"`
}

// Overview returns counts, revenue of active deals and the next pending deliverables
func (s *DashboardService) Overview(ctx context.Context, userID uuid.UUID) (*DashboardResponse, error) {
	active, err := s.deals.CountByStatus(ctx, userID, models.DealStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to count active deals: %w", err)
	}

	pending, err := s.deliverables.CountPending(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending deliverables: %w", err)
	}

	revenue, err := s.deals.SumEstimatedValue(ctx, userID, models.DealStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to sum estimated revenue: %w", err)
	}

	upcoming, err := s.deliverables.ListUpcomingPending(ctx, userID, UpcomingLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming deliverables: %w", err)
	}

	resp := &DashboardResponse{
		ActiveDeals:         active,
		PendingDeliverables: pending,
		EstimatedRevenue:    revenue,
		Upcoming:            make([]DeliverableResponse, len(upcoming)),
	}
	for i := range upcoming {
		resp.Upcoming[i] = *toDeliverableResponse(&upcoming[i])
	}
	return resp, nil
}

// Finance returns revenue of active and completed deals, total expenses and the balance
func (s *DashboardService) Finance(ctx context.Context, userID uuid.UUID) (*FinanceResponse, error) {
	revenue, err := s.deals.SumEstimatedValue(ctx, userID, models.DealStatusActive, models.DealStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}

	spent, err := s.expenses.SumAmount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	return &FinanceResponse{
		Revenue:  revenue,
		Expenses: spent,
		Balance:  revenue.Sub(spent),
	}, nil
}
