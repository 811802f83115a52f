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

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProviderGoogle is the only calendar provider supported
const ProviderGoogle = "google"

// CalendarConnectionService runs the calendar consent flow and stores the resulting grant
type CalendarConnectionService struct {
	repo   repository.CalendarConnectionRepositoryInterface
	oauth  CalendarOAuthInterface
	states StateSignerInterface
}

var _ CalendarConnectionServiceInterface = (*CalendarConnectionService)(nil)

// NewCalendarConnectionService creates a new calendar connection service.
// oauth is nil when the deployment has no Google client credentials.
func NewCalendarConnectionService(
	repo repository.CalendarConnectionRepositoryInterface,
	oauth CalendarOAuthInterface,
	states StateSignerInterface,
) *CalendarConnectionService {
	return &CalendarConnectionService{
		repo:   repo,
		oauth:  oauth,
		states: states,
	}
}

// ConnectURLResponse carries the provider consent page URL
type ConnectURLResponse struct {
	URL string `json:"url"`
}

// CalendarStatusResponse describes the user's calendar grant
type CalendarStatusResponse struct {
	Connected   bool       `json:"connected"`
	Provider    string     `json:"provider,omitempty"`
	CanRefresh  bool       `json:"can_refresh"`
	TokenExpiry *time.Time `json:"token_expiry,omitempty"`
}

// ConnectURL returns the consent URL carrying a signed state bound to userID
func (s *CalendarConnectionService) ConnectURL(ctx context.Context, userID uuid.UUID) (*ConnectURLResponse, error) {
	if s.oauth == nil {
		return nil, apperrors.ErrGoogleCredentialsNotSet
	}
	state, err := s.states.Sign(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign oauth state: %w", err)
	}
	return &ConnectURLResponse{URL: s.oauth.AuthCodeURL(state)}, nil
}

// HandleCallback verifies state, exchanges code and stores the grant for the user named in state
func (s *CalendarConnectionService) HandleCallback(ctx context.Context, state, code string) (uuid.UUID, error) {
	if s.oauth == nil {
		return uuid.Nil, apperrors.ErrGoogleCredentialsNotSet
	}

	userID, err := s.states.Verify(state)
	if err != nil {
		return uuid.Nil, apperrors.ErrInvalidOAuthState
	}
	ctx = logger.ContextWithUserID(ctx, userID.String())

	if code == "" {
		return uuid.Nil, apperrors.NewValidationError("code", "authorization code is required")
	}

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		logger.WithContext(ctx).WithError(err).Warn("Calendar code exchange failed")
		return uuid.Nil, apperrors.NewAuthenticationError("calendar authorization failed")
	}

	conn := &models.CalendarConnection{
		Provider:     ProviderGoogle,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenExpiry:  token.Expiry,
	}
	conn.UserID = userID

	if err := s.repo.Upsert(ctx, conn); err != nil {
		return uuid.Nil, fmt.Errorf("failed to store calendar connection: %w", err)
	}
	logger.WithContext(ctx).WithField("has_refresh_token", conn.HasRefreshToken()).Info("Calendar connected")
	return userID, nil
}

// Status reports whether the user has connected a calendar
func (s *CalendarConnectionService) Status(ctx context.Context, userID uuid.UUID) (*CalendarStatusResponse, error) {
	conn, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &CalendarStatusResponse{Connected: false}, nil
		}
		return nil, fmt.Errorf("failed to get calendar connection: %w", err)
	}

	resp := &CalendarStatusResponse{
		Connected:  true,
		Provider:   conn.Provider,
		CanRefresh: conn.HasRefreshToken(),
	}
	if !conn.TokenExpiry.IsZero() {
		expiry := conn.TokenExpiry
		resp.TokenExpiry = &expiry
	}
	return resp, nil
}

// Disconnect forgets the user's calendar grant
func (s *CalendarConnectionService) Disconnect(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCalendarConnectionNotFound
		}
		return fmt.Errorf("failed to delete calendar connection: %w", err)
	}
	return nil
}
