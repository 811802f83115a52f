package service_test

import (
	"context"
	"testing"

	"publiflow-backend/internal/database/models"
	apperrors "publiflow-backend/internal/errors"
	"publiflow-backend/internal/mocks"
	"publiflow-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// DealServiceTestSuite defines the test suite for DealService and ReportService
type DealServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockDealRepo    *mocks.MockDealRepositoryInterface
	mockPartnerRepo *mocks.MockPartnerRepositoryInterface
	dealService     *service.DealService
	reportService   *service.ReportService
	userID          uuid.UUID
	ctx             context.Context
}

func (suite *DealServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockDealRepo = mocks.NewMockDealRepositoryInterface(suite.ctrl)
	suite.mockPartnerRepo = mocks.NewMockPartnerRepositoryInterface(suite.ctrl)
	suite.dealService = service.NewDealService(suite.mockDealRepo, suite.mockPartnerRepo, validator.New())
	suite.reportService = service.NewReportService(suite.mockDealRepo)
	suite.userID = uuid.New()
	suite.ctx = context.Background()
}

func (suite *DealServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DealServiceTestSuite) TestCreate() {
	partner := &models.Partner{Name: "Acme"}
	partner.ID = uuid.New()
	suite.mockPartnerRepo.EXPECT().GetByID(gomock.Any(), suite.userID, partner.ID).Return(partner, nil)
	suite.mockDealRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *models.Deal) error {
			suite.Equal(models.DealStatusActive, d.Status)
			suite.False(d.StartDate.IsZero())
			suite.Equal(suite.userID, d.UserID)
			return nil
		})

	resp, err := suite.dealService.Create(suite.ctx, suite.userID, &service.CreateDealRequest{
		PartnerID:      partner.ID,
		PaymentType:    models.PaymentTypeHybrid,
		EstimatedValue: decimal.RequireFromString("1500.50"),
	})

	suite.Require().NoError(err)
	suite.Equal("Acme", resp.PartnerName)
	suite.Equal("1500.5", resp.EstimatedValue.String())
}

func (suite *DealServiceTestSuite) TestCreateUnknownPartner() {
	partnerID := uuid.New()
	suite.mockPartnerRepo.EXPECT().GetByID(gomock.Any(), suite.userID, partnerID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.dealService.Create(suite.ctx, suite.userID, &service.CreateDealRequest{
		PartnerID:   partnerID,
		PaymentType: models.PaymentTypeCash,
	})

	suite.ErrorIs(err, apperrors.ErrPartnerNotFound)
}

func (suite *DealServiceTestSuite) TestCreateRejectsBadInput() {
	_, err := suite.dealService.Create(suite.ctx, suite.userID, &service.CreateDealRequest{
		PartnerID:   uuid.New(),
		PaymentType: models.PaymentType("Pix"),
	})
	suite.ErrorContains(err, "validation failed")

	_, err = suite.dealService.Create(suite.ctx, suite.userID, &service.CreateDealRequest{
		PartnerID:      uuid.New(),
		PaymentType:    models.PaymentTypeCash,
		EstimatedValue: decimal.NewFromInt(-1),
	})
	suite.True(apperrors.IsValidation(err))
}

func (suite *DealServiceTestSuite) TestGetWithDeliverables() {
	id := uuid.New()
	due := models.NewDate(2025, 6, 1)
	deal := &models.Deal{
		Status:  models.DealStatusActive,
		Partner: &models.Partner{Name: "Acme"},
		Deliverables: []models.Deliverable{
			{Type: models.DeliverableTypeStory, DueDate: &due, Status: models.DeliverableStatusPending},
		},
	}
	deal.ID = id
	suite.mockDealRepo.EXPECT().GetWithDetails(gomock.Any(), suite.userID, id).Return(deal, nil)

	resp, err := suite.dealService.Get(suite.ctx, suite.userID, id)

	suite.Require().NoError(err)
	suite.Require().Len(resp.Deliverables, 1)
	suite.Equal("2025-06-01", resp.Deliverables[0].DueDate)
	suite.Equal("📸 Story", resp.Deliverables[0].TypeLabel)
}

func (suite *DealServiceTestSuite) TestUpdateStatus() {
	id := uuid.New()
	suite.mockDealRepo.EXPECT().UpdateStatus(gomock.Any(), suite.userID, id, models.DealStatusCompleted).Return(nil)

	err := suite.dealService.UpdateStatus(suite.ctx, suite.userID, id, &service.UpdateDealStatusRequest{Status: models.DealStatusCompleted})
	suite.NoError(err)

	err = suite.dealService.UpdateStatus(suite.ctx, suite.userID, id, &service.UpdateDealStatusRequest{Status: "archived"})
	suite.ErrorContains(err, "validation failed")
}

func (suite *DealServiceTestSuite) TestDeleteNotFound() {
	id := uuid.New()
	suite.mockDealRepo.EXPECT().Delete(gomock.Any(), suite.userID, id).Return(gorm.ErrRecordNotFound)

	suite.ErrorIs(suite.dealService.Delete(suite.ctx, suite.userID, id), apperrors.ErrDealNotFound)
}

func (suite *DealServiceTestSuite) TestReportProgress() {
	id := uuid.New()
	deal := &models.Deal{
		Notes:   "private",
		Partner: &models.Partner{Name: "Acme"},
		Deliverables: []models.Deliverable{
			{Type: models.DeliverableTypeStory, Status: models.DeliverableStatusPosted},
			{Type: models.DeliverableTypeReel, Status: models.DeliverableStatusPending},
			{Type: models.DeliverableTypeFeedPost, Status: models.DeliverableStatusPosted},
		},
	}
	deal.ID = id
	suite.mockDealRepo.EXPECT().GetForReport(gomock.Any(), id).Return(deal, nil)

	resp, err := suite.reportService.GetReport(suite.ctx, id)

	suite.Require().NoError(err)
	suite.Equal("Acme", resp.PartnerName)
	suite.Equal(3, resp.Total)
	suite.Equal(2, resp.Completed)
	suite.Equal(67, resp.Progress)
}

func (suite *DealServiceTestSuite) TestReportNotFound() {
	id := uuid.New()
	suite.mockDealRepo.EXPECT().GetForReport(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.reportService.GetReport(suite.ctx, id)

	suite.ErrorIs(err, apperrors.ErrDealNotFound)
}

func (suite *DealServiceTestSuite) TestProgressPercent() {
	suite.Equal(0, service.ProgressPercent(0, 0))
	suite.Equal(50, service.ProgressPercent(1, 2))
	suite.Equal(33, service.ProgressPercent(1, 3))
	suite.Equal(100, service.ProgressPercent(4, 4))
}

func TestDealServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DealServiceTestSuite))
}
