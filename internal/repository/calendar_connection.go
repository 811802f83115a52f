package repository

import (
	"context"

	"publiflow-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CalendarConnectionRepository handles database operations for calendar connections
type CalendarConnectionRepository struct {
	db *gorm.DB
}

var _ CalendarConnectionRepositoryInterface = (*CalendarConnectionRepository)(nil)

// NewCalendarConnectionRepository creates a new calendar connection repository
func NewCalendarConnectionRepository(db *gorm.DB) *CalendarConnectionRepository {
	return &CalendarConnectionRepository{db: db}
}

// GetByUserID retrieves the calendar connection of a user
func (r *CalendarConnectionRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.CalendarConnection, error) {
	var conn models.CalendarConnection
	err := r.db.WithContext(ctx).First(&conn, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &conn, nil
}

// Upsert stores the connection, replacing the tokens of an existing one for the same user
func (r *CalendarConnectionRepository) Upsert(ctx context.Context, conn *models.CalendarConnection) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"provider", "access_token", "refresh_token", "token_expiry", "updated_at"}),
	}).Create(conn).Error
}

// UpdateAccessToken stores a refreshed access token
func (r *CalendarConnectionRepository) UpdateAccessToken(ctx context.Context, userID uuid.UUID, accessToken string) error {
	result := r.db.WithContext(ctx).Model(&models.CalendarConnection{}).
		Where("user_id = ?", userID).
		Update("access_token", accessToken)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the calendar connection of a user
func (r *CalendarConnectionRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.CalendarConnection{}).Error
}
