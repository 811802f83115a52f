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

// DealService handles business logic for deals
type DealService struct {
	repo        repository.DealRepositoryInterface
	partnerRepo repository.PartnerRepositoryInterface
	validator   *validator.Validate
	now         func() time.Time
}

var _ DealServiceInterface = (*DealService)(nil)

// NewDealService creates a new deal service
func NewDealService(repo repository.DealRepositoryInterface, partnerRepo repository.PartnerRepositoryInterface, validator *validator.Validate) *DealService {
	return &DealService{
		repo:        repo,
		partnerRepo: partnerRepo,
		validator:   validator,
		now:         time.Now,
	}
}

// CreateDealRequest represents the request to create a deal
type CreateDealRequest struct {
	PartnerID      uuid.UUID          `json:"partner_id" validate:"required"`
	PaymentType    models.PaymentType `json:"payment_type" validate:"required,oneof=Permuta Dinheiro Hibrido"`
	EstimatedValue decimal.Decimal    `json:"estimated_value" swaggertype:"string"`
	Notes          string             `json:"notes"`
}

// UpdateDealStatusRequest represents the request to change a deal's status
type UpdateDealStatusRequest struct {
	Status models.DealStatus `json:"status" validate:"required,oneof=active completed cancelled"`
}

// DealResponse represents a deal in API responses
type DealResponse struct {
	ID             uuid.UUID            `json:"id"`
	PartnerID      uuid.UUID            `json:"partner_id"`
	PartnerName    string               `json:"partner_name"`
	PaymentType    models.PaymentType   `json:"payment_type"`
	EstimatedValue decimal.Decimal      `json:"estimated_value" swaggertype:"string"`
	Notes          string               `json:"notes"`
	StartDate      string               `json:"start_date"`
	Status         models.DealStatus    `json:"status"`
	CreatedAt      string               `json:"created_at"`
	Deliverables   []DeliverableResponse `json:"deliverables,omitempty"`
}

// List returns the user's deals with partner names, newest first
func (s *DealService) List(ctx context.Context, userID uuid.UUID) ([]DealResponse, error) {
	deals, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list deals: %w", err)
	}

	responses := make([]DealResponse, len(deals))
	for i := range deals {
		responses[i] = *toDealResponse(&deals[i])
	}
	return responses, nil
}

// Create creates an active deal starting today
func (s *DealService) Create(ctx context.Context, userID uuid.UUID, req *CreateDealRequest) (*DealResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.EstimatedValue.IsNegative() {
		return nil, apperrors.NewValidationError("estimated_value", "must not be negative")
	}

	partner, err := s.partnerRepo.GetByID(ctx, userID, req.PartnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPartnerNotFound
		}
		return nil, fmt.Errorf("failed to verify partner: %w", err)
	}

	deal := &models.Deal{
		PartnerID:      partner.ID,
		PaymentType:    req.PaymentType,
		EstimatedValue: req.EstimatedValue,
		Notes:          req.Notes,
		StartDate:      models.DateOf(s.now()),
		Status:         models.DealStatusActive,
	}
	deal.UserID = userID

	if err := s.repo.Create(ctx, deal); err != nil {
		return nil, fmt.Errorf("failed to create deal: %w", err)
	}
	deal.Partner = partner
	return toDealResponse(deal), nil
}

// Get returns a deal with its partner and deliverables
func (s *DealService) Get(ctx context.Context, userID, id uuid.UUID) (*DealResponse, error) {
	deal, err := s.repo.GetWithDetails(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDealNotFound
		}
		return nil, fmt.Errorf("failed to get deal: %w", err)
	}
	return toDealResponse(deal), nil
}

// UpdateStatus changes the lifecycle status of a deal
func (s *DealService) UpdateStatus(ctx context.Context, userID, id uuid.UUID, req *UpdateDealStatusRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if err := s.repo.UpdateStatus(ctx, userID, id, req.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDealNotFound
		}
		return fmt.Errorf("failed to update deal status: %w", err)
	}
	return nil
}

// Delete deletes a deal and its deliverables
func (s *DealService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDealNotFound
		}
		return fmt.Errorf("failed to delete deal: %w", err)
	}
	return nil
}

func toDealResponse(d *models.Deal) *DealResponse {
	resp := &DealResponse{
		ID:             d.ID,
		PartnerID:      d.PartnerID,
		PartnerName:    d.PartnerName(),
		PaymentType:    d.PaymentType,
		EstimatedValue: d.EstimatedValue,
		Notes:          d.Notes,
		Status:         d.Status,
		CreatedAt:      d.CreatedAt.Format(time.RFC3339),
	}
	if !d.StartDate.IsZero() {
		resp.StartDate = d.StartDate.String()
	}
	if len(d.Deliverables) > 0 {
		resp.Deliverables = make([]DeliverableResponse, len(d.Deliverables))
		for i := range d.Deliverables {
			resp.Deliverables[i] = *toDeliverableResponse(&d.Deliverables[i])
		}
	}
	return resp
}
