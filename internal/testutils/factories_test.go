package testutils

import (
	"testing"

	"publiflow-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFactorySetOwnership(t *testing.T) {
	fs := NewFactorySet()
	userID := uuid.New()

	partner, deal := fs.CreateDealHierarchy(userID)
	assert.Equal(t, userID, partner.UserID)
	assert.Equal(t, partner.ID, deal.PartnerID)
	assert.Equal(t, models.DealStatusActive, deal.Status)
	assert.True(t, deal.EstimatedValue.IsPositive())

	deliverable := fs.Deliverable.Due(userID, deal.ID, models.NewDate(2025, 6, 1))
	assert.True(t, deliverable.Type.IsValid())
	assert.Equal(t, "2025-06-01", deliverable.DueDate.String())
	assert.Equal(t, models.DeliverableStatusPending, deliverable.Status)

	profile := fs.Profile.Create(userID)
	assert.Equal(t, userID, profile.UserID)
	assert.NotNil(t, profile.TrialEndsAt)

	conn := fs.CalendarConnection.Create(userID)
	assert.True(t, conn.HasRefreshToken())
}
