package handlers_test

import (
	"net/http"
	"testing"

	"publiflow-backend/internal/api/handlers"
	"publiflow-backend/internal/database/models"
	apperrors "publiflow-backend/internal/errors"
	"publiflow-backend/internal/mocks"
	"publiflow-backend/internal/service"
	"publiflow-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// DealHandlerTestSuite defines the test suite for DealHandler
type DealHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockDealServiceInterface
	mockReport  *mocks.MockReportServiceInterface
	handler     *handlers.DealHandler
	httpSuite   *testutils.HTTPTestSuite
	publicSuite *testutils.HTTPTestSuite
	userID      uuid.UUID
}

func (suite *DealHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockDealServiceInterface(suite.ctrl)
	suite.mockReport = mocks.NewMockReportServiceInterface(suite.ctrl)
	suite.handler = handlers.NewDealHandler(suite.mockService, suite.mockReport)
	suite.userID = uuid.New()

	suite.httpSuite = testutils.SetupAuthenticatedHTTPTest(suite.userID)
	deals := suite.httpSuite.Router.Group("/api/v1/deals")
	{
		deals.GET("", suite.handler.ListDeals)
		deals.POST("", suite.handler.CreateDeal)
		deals.GET("/:id", suite.handler.GetDeal)
		deals.PATCH("/:id/status", suite.handler.UpdateDealStatus)
		deals.DELETE("/:id", suite.handler.DeleteDeal)
	}

	suite.publicSuite = testutils.SetupHTTPTest()
	suite.publicSuite.Router.GET("/api/v1/public/reports/:id", suite.handler.GetReport)
}

func (suite *DealHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DealHandlerTestSuite) TestCreateDeal() {
	partnerID := uuid.New()
	req := service.CreateDealRequest{
		PartnerID:      partnerID,
		PaymentType:    models.PaymentTypeCash,
		EstimatedValue: decimal.RequireFromString("1500.00"),
	}
	created := &service.DealResponse{
		ID:             uuid.New(),
		PartnerID:      partnerID,
		PartnerName:    "Acme",
		PaymentType:    models.PaymentTypeCash,
		EstimatedValue: req.EstimatedValue,
		StartDate:      "2025-03-14",
		Status:         models.DealStatusActive,
	}
	suite.mockService.EXPECT().Create(gomock.Any(), suite.userID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, got *service.CreateDealRequest) (*service.DealResponse, error) {
			suite.Equal(partnerID, got.PartnerID)
			suite.True(got.EstimatedValue.Equal(req.EstimatedValue))
			return created, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/deals", req)

	var got service.DealResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &got)
	suite.Equal(models.DealStatusActive, got.Status)
	suite.Equal("Acme", got.PartnerName)
	suite.True(got.EstimatedValue.Equal(decimal.RequireFromString("1500")))
}

func (suite *DealHandlerTestSuite) TestCreateDealUnknownPartner() {
	suite.mockService.EXPECT().Create(gomock.Any(), suite.userID, gomock.Any()).Return(nil, apperrors.ErrPartnerNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/deals", service.CreateDealRequest{
		PartnerID:   uuid.New(),
		PaymentType: models.PaymentTypeBarter,
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "partner not found")
}

func (suite *DealHandlerTestSuite) TestGetDeal() {
	id := uuid.New()
	deal := &service.DealResponse{
		ID:     id,
		Status: models.DealStatusActive,
		Deliverables: []service.DeliverableResponse{
			{ID: uuid.New(), DealID: id, Type: models.DeliverableTypeReel, Status: models.DeliverableStatusPending},
		},
	}
	suite.mockService.EXPECT().Get(gomock.Any(), suite.userID, id).Return(deal, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/deals/"+id.String(), nil)

	var got service.DealResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	suite.Len(got.Deliverables, 1)
}

func (suite *DealHandlerTestSuite) TestGetDealNotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().Get(gomock.Any(), suite.userID, id).Return(nil, apperrors.ErrDealNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/deals/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "deal not found")
}

func (suite *DealHandlerTestSuite) TestUpdateDealStatus() {
	id := uuid.New()
	req := service.UpdateDealStatusRequest{Status: models.DealStatusCompleted}
	suite.mockService.EXPECT().UpdateStatus(gomock.Any(), suite.userID, id, &req).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/deals/"+id.String()+"/status", req)

	suite.Equal(http.StatusNoContent, recorder.Code)
}

func (suite *DealHandlerTestSuite) TestDeleteDealInvalidID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/deals/42", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid deal ID")
}

func (suite *DealHandlerTestSuite) TestListDeals() {
	suite.mockService.EXPECT().List(gomock.Any(), suite.userID).Return([]service.DealResponse{}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/deals", nil)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`[]`, recorder.Body.String())
}

func (suite *DealHandlerTestSuite) TestGetReportIsPublic() {
	id := uuid.New()
	report := &service.ReportResponse{
		DealID:      id,
		PartnerName: "Acme",
		Status:      models.DealStatusActive,
		Total:       3,
		Completed:   1,
		Progress:    33,
	}
	suite.mockReport.EXPECT().GetReport(gomock.Any(), id).Return(report, nil)

	recorder := suite.publicSuite.MakeRequest(http.MethodGet, "/api/v1/public/reports/"+id.String(), nil)

	var got service.ReportResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	suite.Equal(33, got.Progress)
	suite.Equal("Acme", got.PartnerName)
}

func (suite *DealHandlerTestSuite) TestGetReportNotFound() {
	id := uuid.New()
	suite.mockReport.EXPECT().GetReport(gomock.Any(), id).Return(nil, apperrors.ErrDealNotFound)

	recorder := suite.publicSuite.MakeRequest(http.MethodGet, "/api/v1/public/reports/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "deal not found")
}

func TestDealHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DealHandlerTestSuite))
}
