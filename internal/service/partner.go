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

// PartnerService handles business logic for partners
type PartnerService struct {
	repo      repository.PartnerRepositoryInterface
	validator *validator.Validate
}

var _ PartnerServiceInterface = (*PartnerService)(nil)

// NewPartnerService creates a new partner service
func NewPartnerService(repo repository.PartnerRepositoryInterface, validator *validator.Validate) *PartnerService {
	return &PartnerService{
		repo:      repo,
		validator: validator,
	}
}

// CreatePartnerRequest represents the request to create a partner
type CreatePartnerRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	ContactInfo string `json:"contact_info" validate:"max=200"`
	Niche       string `json:"niche" validate:"max=100"`
}

// PartnerResponse represents a partner in API responses
type PartnerResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	ContactInfo string    `json:"contact_info"`
	Niche       string    `json:"niche"`
	CreatedAt   string    `json:"created_at"`
}

// List returns the user's partners, newest first
func (s *PartnerService) List(ctx context.Context, userID uuid.UUID) ([]PartnerResponse, error) {
	partners, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list partners: %w", err)
	}

	responses := make([]PartnerResponse, len(partners))
	for i := range partners {
		responses[i] = *s.toResponse(&partners[i])
	}
	return responses, nil
}

// Create creates a new partner
func (s *PartnerService) Create(ctx context.Context, userID uuid.UUID, req *CreatePartnerRequest) (*PartnerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	partner := &models.Partner{
		Name:        req.Name,
		ContactInfo: req.ContactInfo,
		Niche:       req.Niche,
	}
	partner.UserID = userID

	if err := s.repo.Create(ctx, partner); err != nil {
		return nil, fmt.Errorf("failed to create partner: %w", err)
	}
	return s.toResponse(partner), nil
}

// Delete deletes a partner
func (s *PartnerService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPartnerNotFound
		}
		return fmt.Errorf("failed to delete partner: %w", err)
	}
	return nil
}

func (s *PartnerService) toResponse(p *models.Partner) *PartnerResponse {
	return &PartnerResponse{
		ID:          p.ID,
		Name:        p.Name,
		ContactInfo: p.ContactInfo,
		Niche:       p.Niche,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
}
