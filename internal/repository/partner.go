package repository

import (
	"context"

	"publiflow-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PartnerRepository handles database operations for partners
type PartnerRepository struct {
	db *gorm.DB
}

var _ PartnerRepositoryInterface = (*PartnerRepository)(nil)

// NewPartnerRepository creates a new partner repository
func NewPartnerRepository(db *gorm.DB) *PartnerRepository {
	return &PartnerRepository{db: db}
}

// Create creates a new partner
func (r *PartnerRepository) Create(ctx context.Context, partner *models.Partner) error {
	return r.db.WithContext(ctx).Create(partner).Error
}

// GetByID retrieves a partner owned by userID
func (r *PartnerRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Partner, error) {
	var partner models.Partner
	err := r.db.WithContext(ctx).First(&partner, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &partner, nil
}

// ListByUser retrieves all partners of a user, newest first
func (r *PartnerRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Partner, error) {
	var partners []models.Partner
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&partners).Error
	return partners, err
}

// Delete deletes a partner owned by userID
func (r *PartnerRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Partner{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
