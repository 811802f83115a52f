package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"publiflow-backend/internal/api/handlers"
	"publiflow-backend/internal/database/models"
	apperrors "publiflow-backend/internal/errors"
	"publiflow-backend/internal/mocks"
	"publiflow-backend/internal/service"
	"publiflow-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// DeliverableHandlerTestSuite defines the test suite for DeliverableHandler
type DeliverableHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockDeliverableServiceInterface
	handler     *handlers.DeliverableHandler
	httpSuite   *testutils.HTTPTestSuite
	userID      uuid.UUID
}

func (suite *DeliverableHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockDeliverableServiceInterface(suite.ctrl)
	suite.handler = handlers.NewDeliverableHandler(suite.mockService)
	suite.userID = uuid.New()

	suite.httpSuite = testutils.SetupAuthenticatedHTTPTest(suite.userID)
	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.POST("/deals/:id/deliverables", suite.handler.CreateDeliverable)
	v1.POST("/deliverables/:id/toggle", suite.handler.ToggleDeliverable)
	v1.PATCH("/deliverables/:id/status", suite.handler.UpdateDeliverableStatus)
	v1.DELETE("/deliverables/:id", suite.handler.DeleteDeliverable)
	v1.GET("/calendar", suite.handler.ListCalendar)
}

func (suite *DeliverableHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DeliverableHandlerTestSuite) TestCreateDeliverable() {
	dealID := uuid.New()
	created := &service.DeliverableResponse{
		ID:        uuid.New(),
		DealID:    dealID,
		Type:      models.DeliverableTypeReel,
		TypeLabel: "🎬 Reels",
		DueDate:   "2025-06-01",
		Status:    models.DeliverableStatusPending,
	}
	suite.mockService.EXPECT().Create(gomock.Any(), suite.userID, dealID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _, _ uuid.UUID, req *service.CreateDeliverableRequest) (*service.DeliverableResponse, error) {
			suite.Equal(models.DeliverableTypeReel, req.Type)
			suite.Require().NotNil(req.DueDate)
			suite.Equal("2025-06-01", req.DueDate.String())
			return created, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/deals/"+dealID.String()+"/deliverables",
		map[string]string{"type": "reel", "due_date": "2025-06-01"})

	var got service.DeliverableResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &got)
	suite.Equal(models.DeliverableStatusPending, got.Status)
}

func (suite *DeliverableHandlerTestSuite) TestCreateDeliverableMalformedDate() {
	dealID := uuid.New()

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/deals/"+dealID.String()+"/deliverables",
		map[string]string{"type": "reel", "due_date": "01/06/2025"})

	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *DeliverableHandlerTestSuite) TestCreateDeliverableDealNotFound() {
	dealID := uuid.New()
	suite.mockService.EXPECT().Create(gomock.Any(), suite.userID, dealID, gomock.Any()).Return(nil, apperrors.ErrDealNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/deals/"+dealID.String()+"/deliverables",
		map[string]string{"type": "story"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "deal not found")
}

func (suite *DeliverableHandlerTestSuite) TestToggleDeliverable() {
	id := uuid.New()
	suite.mockService.EXPECT().Toggle(gomock.Any(), suite.userID, id).
		Return(&service.DeliverableResponse{ID: id, Status: models.DeliverableStatusPosted}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/deliverables/"+id.String()+"/toggle", nil)

	var got service.DeliverableResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	suite.Equal(models.DeliverableStatusPosted, got.Status)
}

func (suite *DeliverableHandlerTestSuite) TestUpdateDeliverableStatusInvalid() {
	id := uuid.New()
	suite.mockService.EXPECT().SetStatus(gomock.Any(), suite.userID, id, gomock.Any()).
		Return(fmt.Errorf("validation failed: %w", apperrors.NewValidationError("status", "must be pending or posted")))

	recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/deliverables/"+id.String()+"/status",
		map[string]string{"status": "archived"})

	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *DeliverableHandlerTestSuite) TestDeleteDeliverableNotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(gomock.Any(), suite.userID, id).Return(apperrors.ErrDeliverableNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/deliverables/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "deliverable not found")
}

func (suite *DeliverableHandlerTestSuite) TestListCalendar() {
	items := []service.DeliverableResponse{
		{ID: uuid.New(), DueDate: "2025-06-01", PartnerName: "Acme"},
		{ID: uuid.New(), DueDate: "2025-06-20", PartnerName: "Globex"},
	}
	suite.mockService.EXPECT().ListMonth(gomock.Any(), suite.userID, "2025-06").Return(items, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/calendar?month=2025-06", nil)

	var got []service.DeliverableResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	suite.Len(got, 2)
}

func (suite *DeliverableHandlerTestSuite) TestListCalendarBadMonth() {
	suite.mockService.EXPECT().ListMonth(gomock.Any(), suite.userID, "June").Return(nil, apperrors.ErrInvalidMonthFormat)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/calendar?month=June", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "YYYY-MM")
}

func (suite *DeliverableHandlerTestSuite) TestListCalendarMissingMonth() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/calendar", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "month")
}

func TestDeliverableHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DeliverableHandlerTestSuite))
}
