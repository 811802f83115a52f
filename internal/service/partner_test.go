package service_test

import (
	"context"
	"errors"
	"testing"

	"publiflow-backend/internal/database/models"
	apperrors "publiflow-backend/internal/errors"
	"publiflow-backend/internal/mocks"
	"publiflow-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// PartnerServiceTestSuite defines the test suite for PartnerService
type PartnerServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *mocks.MockPartnerRepositoryInterface
	partnerService *service.PartnerService
	userID         uuid.UUID
	ctx            context.Context
}

func (suite *PartnerServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockPartnerRepositoryInterface(suite.ctrl)
	suite.partnerService = service.NewPartnerService(suite.mockRepo, validator.New())
	suite.userID = uuid.New()
	suite.ctx = context.Background()
}

func (suite *PartnerServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PartnerServiceTestSuite) TestCreate() {
	suite.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.Partner) error {
			suite.Equal(suite.userID, p.UserID)
			suite.Equal("Acme", p.Name)
			p.ID = uuid.New()
			return nil
		})

	resp, err := suite.partnerService.Create(suite.ctx, suite.userID, &service.CreatePartnerRequest{
		Name:        "Acme",
		ContactInfo: "contato@acme.com",
		Niche:       "Beleza",
	})

	suite.Require().NoError(err)
	suite.NotEqual(uuid.Nil, resp.ID)
	suite.Equal("Beleza", resp.Niche)
}

func (suite *PartnerServiceTestSuite) TestCreateValidation() {
	_, err := suite.partnerService.Create(suite.ctx, suite.userID, &service.CreatePartnerRequest{})

	suite.Error(err)
	suite.Contains(err.Error(), "validation failed")
}

func (suite *PartnerServiceTestSuite) TestList() {
	suite.mockRepo.EXPECT().ListByUser(gomock.Any(), suite.userID).Return([]models.Partner{{Name: "Acme"}, {Name: "Globex"}}, nil)

	resp, err := suite.partnerService.List(suite.ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Len(resp, 2)
	suite.Equal("Globex", resp[1].Name)
}

func (suite *PartnerServiceTestSuite) TestListError() {
	suite.mockRepo.EXPECT().ListByUser(gomock.Any(), suite.userID).Return(nil, errors.New("db down"))

	_, err := suite.partnerService.List(suite.ctx, suite.userID)

	suite.ErrorContains(err, "failed to list partners")
}

func (suite *PartnerServiceTestSuite) TestDeleteNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().Delete(gomock.Any(), suite.userID, id).Return(gorm.ErrRecordNotFound)

	err := suite.partnerService.Delete(suite.ctx, suite.userID, id)

	suite.ErrorIs(err, apperrors.ErrPartnerNotFound)
}

func TestPartnerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PartnerServiceTestSuite))
}
