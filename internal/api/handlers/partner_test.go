package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"publiflow-backend/internal/api/handlers"
	apperrors "publiflow-backend/internal/errors"
	"publiflow-backend/internal/mocks"
	"publiflow-backend/internal/service"
	"publiflow-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// PartnerHandlerTestSuite defines the test suite for PartnerHandler
type PartnerHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockPartnerServiceInterface
	handler     *handlers.PartnerHandler
	httpSuite   *testutils.HTTPTestSuite
	userID      uuid.UUID
}

func (suite *PartnerHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockPartnerServiceInterface(suite.ctrl)
	suite.handler = handlers.NewPartnerHandler(suite.mockService)
	suite.userID = uuid.New()

	suite.httpSuite = testutils.SetupAuthenticatedHTTPTest(suite.userID)
	partners := suite.httpSuite.Router.Group("/api/v1/partners")
	{
		partners.GET("", suite.handler.ListPartners)
		partners.POST("", suite.handler.CreatePartner)
		partners.DELETE("/:id", suite.handler.DeletePartner)
	}
}

func (suite *PartnerHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PartnerHandlerTestSuite) TestListPartners() {
	partners := []service.PartnerResponse{
		{ID: uuid.New(), Name: "Acme"},
		{ID: uuid.New(), Name: "Globex"},
	}
	suite.mockService.EXPECT().List(gomock.Any(), suite.userID).Return(partners, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/partners", nil)

	var got []service.PartnerResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	suite.Equal(partners, got)
}

func (suite *PartnerHandlerTestSuite) TestCreatePartner() {
	req := service.CreatePartnerRequest{Name: "Acme", Niche: "beauty"}
	created := &service.PartnerResponse{ID: uuid.New(), Name: "Acme", Niche: "beauty"}
	suite.mockService.EXPECT().Create(gomock.Any(), suite.userID, &req).Return(created, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/partners", req)

	var got service.PartnerResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &got)
	suite.Equal(created.ID, got.ID)
}

func (suite *PartnerHandlerTestSuite) TestCreatePartnerInvalidJSON() {
	recorder := suite.httpSuite.MakeRawRequest(http.MethodPost, "/api/v1/partners", "invalid json")
	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *PartnerHandlerTestSuite) TestCreatePartnerValidationError() {
	suite.mockService.EXPECT().Create(gomock.Any(), suite.userID, gomock.Any()).
		Return(nil, fmt.Errorf("validation failed: %w", apperrors.NewValidationError("name", "is required")))

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/partners", service.CreatePartnerRequest{})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "name")
}

func (suite *PartnerHandlerTestSuite) TestDeletePartner() {
	id := uuid.New()

	suite.httpSuite.RunHTTPTestCases(suite.T(), []testutils.HTTPTestCase{
		{
			Name:             "deleted",
			Request:          testutils.MockHTTPRequest{Method: http.MethodDelete, URL: "/api/v1/partners/" + id.String()},
			ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusNoContent},
			Setup: func() {
				suite.mockService.EXPECT().Delete(gomock.Any(), suite.userID, id).Return(nil)
			},
		},
		{
			Name:             "not found",
			Request:          testutils.MockHTTPRequest{Method: http.MethodDelete, URL: "/api/v1/partners/" + id.String()},
			ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusNotFound, Body: map[string]string{"error": "partner not found"}},
			Setup: func() {
				suite.mockService.EXPECT().Delete(gomock.Any(), suite.userID, id).Return(apperrors.ErrPartnerNotFound)
			},
		},
		{
			Name:             "invalid id",
			Request:          testutils.MockHTTPRequest{Method: http.MethodDelete, URL: "/api/v1/partners/not-a-uuid"},
			ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusBadRequest, Body: map[string]string{"error": "invalid partner ID"}},
		},
		{
			Name:             "database error",
			Request:          testutils.MockHTTPRequest{Method: http.MethodDelete, URL: "/api/v1/partners/" + id.String()},
			ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusInternalServerError},
			Setup: func() {
				suite.mockService.EXPECT().Delete(gomock.Any(), suite.userID, id).Return(errors.New("connection reset"))
			},
		},
	})
}

func (suite *PartnerHandlerTestSuite) TestRequiresAuthenticatedUser() {
	anonymous := testutils.SetupHTTPTest()
	anonymous.Router.GET("/api/v1/partners", suite.handler.ListPartners)

	recorder := anonymous.MakeRequest(http.MethodGet, "/api/v1/partners", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "authentication required")
}

func TestPartnerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PartnerHandlerTestSuite))
}
