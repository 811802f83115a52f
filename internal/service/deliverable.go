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
	"gorm.io/gorm"
)

// DeliverableService handles business logic for deliverables
type DeliverableService struct {
	repo      repository.DeliverableRepositoryInterface
	dealRepo  repository.DealRepositoryInterface
	validator *validator.Validate
}

var _ DeliverableServiceInterface = (*DeliverableService)(nil)

// NewDeliverableService creates a new deliverable service
func NewDeliverableService(repo repository.DeliverableRepositoryInterface, dealRepo repository.DealRepositoryInterface, validator *validator.Validate) *DeliverableService {
	return &DeliverableService{
		repo:      repo,
		dealRepo:  dealRepo,
		validator: validator,
	}
}

// CreateDeliverableRequest represents the request to add a deliverable to a deal
type CreateDeliverableRequest struct {
	Type    models.DeliverableType `json:"type" validate:"required,oneof=story reel feed tiktok"`
	DueDate *models.Date           `json:"due_date" swaggertype:"string" example:"2025-03-14"`
}

// UpdateDeliverableStatusRequest represents the request to set a deliverable's status
type UpdateDeliverableStatusRequest struct {
	Status models.DeliverableStatus `json:"status" validate:"required,oneof=pending posted"`
}

// DeliverableResponse represents a deliverable in API responses
type DeliverableResponse struct {
	ID          uuid.UUID                `json:"id"`
	DealID      uuid.UUID                `json:"deal_id"`
	Type        models.DeliverableType   `json:"type"`
	TypeLabel   string                   `json:"type_label"`
	DueDate     string                   `json:"due_date,omitempty"`
	Status      models.DeliverableStatus `json:"status"`
	PartnerName string                   `json:"partner_name,omitempty"`
	CreatedAt   string                   `json:"created_at"`
}

// Create adds a pending deliverable to one of the user's deals
func (s *DeliverableService) Create(ctx context.Context, userID, dealID uuid.UUID, req *CreateDeliverableRequest) (*DeliverableResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.dealRepo.GetByID(ctx, userID, dealID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDealNotFound
		}
		return nil, fmt.Errorf("failed to verify deal: %w", err)
	}

	deliverable := &models.Deliverable{
		DealID: dealID,
		Type:   req.Type,
		Status: models.DeliverableStatusPending,
	}
	if req.DueDate != nil && !req.DueDate.IsZero() {
		due := *req.DueDate
		deliverable.DueDate = &due
	}
	deliverable.UserID = userID

	if err := s.repo.Create(ctx, deliverable); err != nil {
		return nil, fmt.Errorf("failed to create deliverable: %w", err)
	}
	return toDeliverableResponse(deliverable), nil
}

// Toggle flips a deliverable between pending and posted
func (s *DeliverableService) Toggle(ctx context.Context, userID, id uuid.UUID) (*DeliverableResponse, error) {
	deliverable, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDeliverableNotFound
		}
		return nil, fmt.Errorf("failed to get deliverable: %w", err)
	}

	next := deliverable.Status.Toggled()
	if err := s.repo.UpdateStatus(ctx, userID, id, next); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDeliverableNotFound
		}
		return nil, fmt.Errorf("failed to update deliverable status: %w", err)
	}
	deliverable.Status = next
	return toDeliverableResponse(deliverable), nil
}

// SetStatus sets a deliverable's status explicitly
func (s *DeliverableService) SetStatus(ctx context.Context, userID, id uuid.UUID, req *UpdateDeliverableStatusRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if err := s.repo.UpdateStatus(ctx, userID, id, req.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDeliverableNotFound
		}
		return fmt.Errorf("failed to update deliverable status: %w", err)
	}
	return nil
}

// Delete deletes a deliverable
func (s *DeliverableService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDeliverableNotFound
		}
		return fmt.Errorf("failed to delete deliverable: %w", err)
	}
	return nil
}

// ListMonth returns the deliverables due in the given month (YYYY-MM), pending and posted
func (s *DeliverableService) ListMonth(ctx context.Context, userID uuid.UUID, month string) ([]DeliverableResponse, error) {
	from, to, err := MonthRange(month)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ListDueBetween(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list deliverables: %w", err)
	}

	responses := make([]DeliverableResponse, len(items))
	for i := range items {
		responses[i] = *toDeliverableResponse(&items[i])
	}
	return responses, nil
}

// MonthRange returns the first and last day of a YYYY-MM month
func MonthRange(month string) (models.Date, models.Date, error) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return models.Date{}, models.Date{}, apperrors.ErrInvalidMonthFormat
	}
	first := models.DateOf(t)
	last := models.DateOf(t.AddDate(0, 1, -1))
	return first, last, nil
}

func toDeliverableResponse(d *models.Deliverable) *DeliverableResponse {
	resp := &DeliverableResponse{
		ID:          d.ID,
		DealID:      d.DealID,
		Type:        d.Type,
		TypeLabel:   d.Type.Label(),
		Status:      d.Status,
		PartnerName: d.Deal.PartnerName(),
		CreatedAt:   d.CreatedAt.Format(time.RFC3339),
	}
	if d.DueDate != nil && !d.DueDate.IsZero() {
		resp.DueDate = d.DueDate.String()
	}
	return resp
}
