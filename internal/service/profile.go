package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"publiflow-backend/internal/database/models"
	apperrors "publiflow-backend/internal/errors"
	"publiflow-backend/internal/logger"
	"publiflow-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrialPeriod is how long a new profile may use the product without a subscription
const TrialPeriod = 7 * 24 * time.Hour

// ProfileService handles business logic for profiles and subscription state
type ProfileService struct {
	repo      repository.ProfileRepositoryInterface
	validator *validator.Validate
	now       func() time.Time
}

var _ ProfileServiceInterface = (*ProfileService)(nil)

// NewProfileService creates a new profile service
func NewProfileService(repo repository.ProfileRepositoryInterface, validator *validator.Validate) *ProfileService {
	return &ProfileService{
		repo:      repo,
		validator: validator,
		now:       time.Now,
	}
}

// UpdateProfileRequest represents the request to update a profile
type UpdateProfileRequest struct {
	FullName  string `json:"full_name" validate:"max=200"`
	Bio       string `json:"bio" validate:"max=2000"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url,max=500"`
}

// ProfileResponse represents a profile in API responses
type ProfileResponse struct {
	UserID             uuid.UUID                 `json:"user_id"`
	FullName           string                    `json:"full_name"`
	Bio                string                    `json:"bio"`
	AvatarURL          string                    `json:"avatar_url"`
	SubscriptionStatus models.SubscriptionStatus `json:"subscription_status"`
	TrialEndsAt        *time.Time                `json:"trial_ends_at,omitempty"`
}

// SubscriptionResponse is the access state derived from a profile
type SubscriptionResponse struct {
	Status      models.SubscriptionStatus `json:"status"`
	TrialEndsAt *time.Time                `json:"trial_ends_at,omitempty"`
	Expired     bool                      `json:"expired"`
}

// Get returns the user's profile, creating a trial profile on first access
func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*ProfileResponse, error) {
	profile, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

// Update changes the user's display fields
func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, req *UpdateProfileRequest) (*ProfileResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	profile, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.FullName = req.FullName
	profile.Bio = req.Bio
	profile.AvatarURL = req.AvatarURL

	if err := s.repo.Update(ctx, profile); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return toProfileResponse(profile), nil
}

// Subscription reports whether the user's access has expired
func (s *ProfileService) Subscription(ctx context.Context, userID uuid.UUID) (*SubscriptionResponse, error) {
	profile, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &SubscriptionResponse{
		Status:      profile.SubscriptionStatus,
		TrialEndsAt: profile.TrialEndsAt,
		Expired:     profile.IsExpired(s.now()),
	}, nil
}

func (s *ProfileService) getOrCreate(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	profile, err := s.repo.GetByUserID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	trialEnds := s.now().Add(TrialPeriod)
	profile = &models.Profile{
		SubscriptionStatus: models.SubscriptionStatusTrial,
		TrialEndsAt:        &trialEnds,
	}
	profile.UserID = userID
	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	logger.WithContext(ctx).Info("Created trial profile")
	return profile, nil
}

func toProfileResponse(p *models.Profile) *ProfileResponse {
	return &ProfileResponse{
		UserID:             p.UserID,
		FullName:           p.FullName,
		Bio:                p.Bio,
		AvatarURL:          p.AvatarURL,
		SubscriptionStatus: p.SubscriptionStatus,
		TrialEndsAt:        p.TrialEndsAt,
	}
}
