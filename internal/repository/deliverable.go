package repository

import (
	"context"

	"publiflow-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeliverableRepository handles database operations for deliverables
type DeliverableRepository struct {
	db *gorm.DB
}

var _ DeliverableRepositoryInterface = (*DeliverableRepository)(nil)

// NewDeliverableRepository creates a new deliverable repository
func NewDeliverableRepository(db *gorm.DB) *DeliverableRepository {
	return &DeliverableRepository{db: db}
}

// withDealAndPartner preloads the parent deal and its partner
func withDealAndPartner(db *gorm.DB) *gorm.DB {
	return db.Preload("Deal").Preload("Deal.Partner")
}

// Create creates a new deliverable
func (r *DeliverableRepository) Create(ctx context.Context, deliverable *models.Deliverable) error {
	return r.db.WithContext(ctx).Create(deliverable).Error
}

// GetByID retrieves a deliverable owned by userID
func (r *DeliverableRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Deliverable, error) {
	var deliverable models.Deliverable
	err := r.db.WithContext(ctx).First(&deliverable, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &deliverable, nil
}

// ListPendingDated retrieves the user's pending deliverables that have a due date,
// joined to deal and partner and ordered by due date ascending
func (r *DeliverableRepository) ListPendingDated(ctx context.Context, userID uuid.UUID) ([]models.Deliverable, error) {
	var deliverables []models.Deliverable
	err := withDealAndPartner(r.db.WithContext(ctx)).
		Where("user_id = ? AND status = ? AND due_date IS NOT NULL", userID, models.DeliverableStatusPending).
		Order("due_date ASC").
		Find(&deliverables).Error
	return deliverables, err
}

// ListDueBetween retrieves the user's deliverables due within [from, to]
func (r *DeliverableRepository) ListDueBetween(ctx context.Context, userID uuid.UUID, from, to models.Date) ([]models.Deliverable, error) {
	var deliverables []models.Deliverable
	err := withDealAndPartner(r.db.WithContext(ctx)).
		Where("user_id = ? AND due_date >= ? AND due_date <= ?", userID, from, to).
		Order("due_date ASC").
		Find(&deliverables).Error
	return deliverables, err
}

// ListUpcomingPending retrieves the next pending deliverables by due date
func (r *DeliverableRepository) ListUpcomingPending(ctx context.Context, userID uuid.UUID, limit int) ([]models.Deliverable, error) {
	var deliverables []models.Deliverable
	err := withDealAndPartner(r.db.WithContext(ctx)).
		Where("user_id = ? AND status = ?", userID, models.DeliverableStatusPending).
		Order("due_date ASC NULLS LAST").
		Limit(limit).
		Find(&deliverables).Error
	return deliverables, err
}

// CountPending counts the user's pending deliverables
func (r *DeliverableRepository) CountPending(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Deliverable{}).
		Where("user_id = ? AND status = ?", userID, models.DeliverableStatusPending).
		Count(&count).Error
	return count, err
}

// UpdateStatus sets the status of a deliverable owned by userID
func (r *DeliverableRepository) UpdateStatus(ctx context.Context, userID, id uuid.UUID, status models.DeliverableStatus) error {
	result := r.db.WithContext(ctx).Model(&models.Deliverable{}).
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

// Delete deletes a deliverable owned by userID
func (r *DeliverableRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Deliverable{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
