package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"publiflow-backend/internal/board"
	"publiflow-backend/internal/database/models"
	apperrors "publiflow-backend/internal/errors"
	"publiflow-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IdeaService handles business logic for ideas and the idea board
type IdeaService struct {
	repo      repository.IdeaRepositoryInterface
	scheme    models.IdeaStageScheme
	boards    *board.Registry
	validator *validator.Validate
}

var _ IdeaServiceInterface = (*IdeaService)(nil)

// NewIdeaService creates a new idea service for the given stage scheme
func NewIdeaService(repo repository.IdeaRepositoryInterface, scheme models.IdeaStageScheme, validator *validator.Validate) *IdeaService {
	s := &IdeaService{
		repo:      repo,
		scheme:    scheme,
		validator: validator,
	}
	s.boards = board.NewRegistry(scheme, repo.ListByUser, s.persistStatus)
	return s
}

// CreateIdeaRequest represents the request to create an idea
type CreateIdeaRequest struct {
	Title       string               `json:"title" validate:"required,min=1,max=200"`
	Description string               `json:"description"`
	Status      models.IdeaStatus    `json:"status"`
	Platform    *models.IdeaPlatform `json:"platform,omitempty" validate:"omitempty,oneof=Instagram TikTok YouTube"`
	Priority    *models.IdeaPriority `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
}

// UpdateIdeaRequest represents the request to replace an idea's fields
type UpdateIdeaRequest struct {
	Title       string               `json:"title" validate:"required,min=1,max=200"`
	Description string               `json:"description"`
	Status      models.IdeaStatus    `json:"status" validate:"required"`
	Platform    *models.IdeaPlatform `json:"platform,omitempty" validate:"omitempty,oneof=Instagram TikTok YouTube"`
	Priority    *models.IdeaPriority `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
}

// UpdateIdeaStatusRequest represents the request to move an idea to another stage
type UpdateIdeaStatusRequest struct {
	Status models.IdeaStatus `json:"status" validate:"required"`
}

// BoardMoveRequest is a drop event sent by the board client
type BoardMoveRequest struct {
	IdeaID      uuid.UUID       `json:"idea_id" validate:"required"`
	Source      board.Position  `json:"source"`
	Destination *board.Position `json:"destination"`
}

// BoardMoveResponse is the optimistic board after a drop
type BoardMoveResponse struct {
	Applied bool        `json:"applied"`
	Board   *board.View `json:"board"`
}

// IdeaResponse represents an idea in API responses
type IdeaResponse struct {
	ID          uuid.UUID            `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Status      models.IdeaStatus    `json:"status"`
	Platform    *models.IdeaPlatform `json:"platform,omitempty"`
	Priority    *models.IdeaPriority `json:"priority,omitempty"`
	CreatedAt   string               `json:"created_at"`
}

// Scheme returns the active stage scheme
func (s *IdeaService) Scheme() models.IdeaStageScheme {
	return s.scheme
}

// List returns the user's ideas in store order
func (s *IdeaService) List(ctx context.Context, userID uuid.UUID) ([]IdeaResponse, error) {
	ideas, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ideas: %w", err)
	}

	responses := make([]IdeaResponse, len(ideas))
	for i := range ideas {
		responses[i] = *toIdeaResponse(&ideas[i])
	}
	return responses, nil
}

// Create creates an idea in the requested stage, or the scheme's first stage
func (s *IdeaService) Create(ctx context.Context, userID uuid.UUID, req *CreateIdeaRequest) (*IdeaResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	status := req.Status
	if status == "" {
		status = s.scheme.DefaultStage()
	}
	if err := s.checkFields(status, req.Platform, req.Priority); err != nil {
		return nil, err
	}

	idea := &models.Idea{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Platform:    req.Platform,
		Priority:    req.Priority,
	}
	idea.UserID = userID

	if err := s.repo.Create(ctx, idea); err != nil {
		return nil, fmt.Errorf("failed to create idea: %w", err)
	}
	return toIdeaResponse(idea), nil
}

// Update replaces the editable fields of an idea
func (s *IdeaService) Update(ctx context.Context, userID, id uuid.UUID, req *UpdateIdeaRequest) (*IdeaResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.checkFields(req.Status, req.Platform, req.Priority); err != nil {
		return nil, err
	}

	idea, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIdeaNotFound
		}
		return nil, fmt.Errorf("failed to get idea: %w", err)
	}

	idea.Title = req.Title
	idea.Description = req.Description
	idea.Status = req.Status
	idea.Platform = req.Platform
	idea.Priority = req.Priority

	if err := s.repo.Update(ctx, idea); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIdeaNotFound
		}
		return nil, fmt.Errorf("failed to update idea: %w", err)
	}
	return toIdeaResponse(idea), nil
}

// UpdateStatus moves an idea to another stage of the active scheme
func (s *IdeaService) UpdateStatus(ctx context.Context, userID, id uuid.UUID, req *UpdateIdeaStatusRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return s.persistStatus(ctx, userID, id, req.Status)
}

// Delete deletes an idea
func (s *IdeaService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrIdeaNotFound
		}
		return fmt.Errorf("failed to delete idea: %w", err)
	}
	return nil
}

// Board returns the user's idea board
func (s *IdeaService) Board(ctx context.Context, userID uuid.UUID) (*board.View, error) {
	view, err := s.boards.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load idea board: %w", err)
	}
	return view, nil
}

// MoveOnBoard applies a drop event optimistically; persistence completes in the background
func (s *IdeaService) MoveOnBoard(ctx context.Context, userID uuid.UUID, req *BoardMoveRequest) (*BoardMoveResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	view, applied, err := s.boards.Drop(ctx, userID, board.DropEvent{
		ItemID:      req.IdeaID,
		Source:      req.Source,
		Destination: req.Destination,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidIdeaStage) || errors.Is(err, apperrors.ErrIdeaNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to move idea: %w", err)
	}
	return &BoardMoveResponse{Applied: applied, Board: view}, nil
}

func (s *IdeaService) persistStatus(ctx context.Context, userID, id uuid.UUID, status models.IdeaStatus) error {
	if !s.scheme.Contains(status) {
		return apperrors.ErrInvalidIdeaStage
	}
	if err := s.repo.UpdateStatus(ctx, userID, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrIdeaNotFound
		}
		return fmt.Errorf("failed to update idea status: %w", err)
	}
	return nil
}

func (s *IdeaService) checkFields(status models.IdeaStatus, platform *models.IdeaPlatform, priority *models.IdeaPriority) error {
	if !s.scheme.Contains(status) {
		return apperrors.ErrInvalidIdeaStage
	}
	if !s.scheme.SupportsPlatformAndPriority() && (platform != nil || priority != nil) {
		return apperrors.ErrIdeaFieldsNotSupported
	}
	return nil
}

func toIdeaResponse(i *models.Idea) *IdeaResponse {
	return &IdeaResponse{
		ID:          i.ID,
		Title:       i.Title,
		Description: i.Description,
		Status:      i.Status,
		Platform:    i.Platform,
		Priority:    i.Priority,
		CreatedAt:   i.CreatedAt.Format(time.RFC3339),
	}
}
