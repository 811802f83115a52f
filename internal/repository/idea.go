package repository

import (
	"context"

	"publiflow-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IdeaRepository handles database operations for ideas
type IdeaRepository struct {
	db *gorm.DB
}

var _ IdeaRepositoryInterface = (*IdeaRepository)(nil)

// NewIdeaRepository creates a new idea repository
func NewIdeaRepository(db *gorm.DB) *IdeaRepository {
	return &IdeaRepository{db: db}
}

// Create creates a new idea
func (r *IdeaRepository) Create(ctx context.Context, idea *models.Idea) error {
	return r.db.WithContext(ctx).Create(idea).Error
}

// GetByID retrieves an idea owned by userID
func (r *IdeaRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Idea, error) {
	var idea models.Idea
	err := r.db.WithContext(ctx).First(&idea, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &idea, nil
}

// ListByUser retrieves all ideas of a user, newest first
func (r *IdeaRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Idea, error) {
	var ideas []models.Idea
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ideas).Error
	return ideas, err
}

// UpdateStatus sets the board stage of an idea owned by userID
func (r *IdeaRepository) UpdateStatus(ctx context.Context, userID, id uuid.UUID, status models.IdeaStatus) error {
	result := r.db.WithContext(ctx).Model(&models.Idea{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Update writes the editable fields of an idea owned by idea.UserID
func (r *IdeaRepository) Update(ctx context.Context, idea *models.Idea) error {
	result := r.db.WithContext(ctx).Model(&models.Idea{}).
		Where("id = ? AND user_id = ?", idea.ID, idea.UserID).
		Updates(map[string]interface{}{
			"title":       idea.Title,
			"description": idea.Description,
			"status":      idea.Status,
			"platform":    idea.Platform,
			"priority":    idea.Priority,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes an idea owned by userID
func (r *IdeaRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Idea{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
