package repository

import (
	"context"

	"publiflow-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DealRepository handles database operations for deals
type DealRepository struct {
	db *gorm.DB
}

var _ DealRepositoryInterface = (*DealRepository)(nil)

// NewDealRepository creates a new deal repository
func NewDealRepository(db *gorm.DB) *DealRepository {
	return &DealRepository{db: db}
}

// Create creates a new deal
func (r *DealRepository) Create(ctx context.Context, deal *models.Deal) error {
	return r.db.WithContext(ctx).Create(deal).Error
}

// GetByID retrieves a deal owned by userID
func (r *DealRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Deal, error) {
	var deal models.Deal
	err := r.db.WithContext(ctx).First(&deal, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &deal, nil
}

// GetWithDetails retrieves a deal with its partner and deliverables
func (r *DealRepository) GetWithDetails(ctx context.Context, userID, id uuid.UUID) (*models.Deal, error) {
	var deal models.Deal
	err := r.db.WithContext(ctx).
		Preload("Partner").
		Preload("Deliverables", func(db *gorm.DB) *gorm.DB {
			return db.Order("due_date ASC NULLS LAST")
		}).
		First(&deal, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &deal, nil
}

// GetForReport retrieves a deal with partner and deliverables regardless of owner.
// Used by the public progress report only.
func (r *DealRepository) GetForReport(ctx context.Context, id uuid.UUID) (*models.Deal, error) {
	var deal models.Deal
	err := r.db.WithContext(ctx).
		Preload("Partner").
		Preload("Deliverables", func(db *gorm.DB) *gorm.DB {
			return db.Order("due_date ASC NULLS LAST")
		}).
		First(&deal, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &deal, nil
}

// ListByUser retrieves all deals of a user with their partner, newest first
func (r *DealRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Deal, error) {
	var deals []models.Deal
	err := r.db.WithContext(ctx).
		Preload("Partner").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&deals).Error
	return deals, err
}

// UpdateStatus sets the status of a deal owned by userID
func (r *DealRepository) UpdateStatus(ctx context.Context, userID, id uuid.UUID, status models.DealStatus) error {
	result := r.db.WithContext(ctx).Model(&models.Deal{}).
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

// Delete deletes a deal owned by userID; its deliverables cascade
func (r *DealRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Deal{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByStatus counts the deals of a user in the given status
func (r *DealRepository) CountByStatus(ctx context.Context, userID uuid.UUID, status models.DealStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Deal{}).
		Where("user_id = ? AND status = ?", userID, status).
		Count(&count).Error
	return count, err
}

// SumEstimatedValue totals the estimated value of a user's deals in any of the given statuses
func (r *DealRepository) SumEstimatedValue(ctx context.Context, userID uuid.UUID, statuses ...models.DealStatus) (decimal.Decimal, error) {
	var total decimal.Decimal
	row := r.db.WithContext(ctx).Model(&models.Deal{}).
		Select("COALESCE(SUM(estimated_value), 0)").
		Where("user_id = ? AND status IN ?", userID, statuses).
		Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
