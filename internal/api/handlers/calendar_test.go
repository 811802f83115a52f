package handlers_test

import (
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

// CalendarHandlerTestSuite defines the test suite for CalendarHandler
type CalendarHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockConnection *mocks.MockCalendarConnectionServiceInterface
	mockSync       *mocks.MockCalendarSyncServiceInterface
	handler        *handlers.CalendarHandler
	httpSuite      *testutils.HTTPTestSuite
	publicSuite    *testutils.HTTPTestSuite
	userID         uuid.UUID
}

func (suite *CalendarHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockConnection = mocks.NewMockCalendarConnectionServiceInterface(suite.ctrl)
	suite.mockSync = mocks.NewMockCalendarSyncServiceInterface(suite.ctrl)
	suite.handler = handlers.NewCalendarHandler(suite.mockConnection, suite.mockSync)
	suite.userID = uuid.New()

	suite.httpSuite = testutils.SetupAuthenticatedHTTPTest(suite.userID)
	cal := suite.httpSuite.Router.Group("/api/v1/calendar")
	{
		cal.GET("/google/connect", suite.handler.GetConnectURL)
		cal.GET("/google/status", suite.handler.GetStatus)
		cal.DELETE("/google", suite.handler.Disconnect)
		cal.POST("/sync", suite.handler.Sync)
	}

	suite.publicSuite = testutils.SetupHTTPTest()
	suite.publicSuite.Router.GET("/api/v1/calendar/google/callback", suite.handler.Callback)
}

func (suite *CalendarHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CalendarHandlerTestSuite) TestGetConnectURL() {
	suite.mockConnection.EXPECT().ConnectURL(gomock.Any(), suite.userID).
		Return(&service.ConnectURLResponse{URL: "https://accounts.example.com/o/oauth2/auth?state=abc"}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/calendar/google/connect", nil)

	var got service.ConnectURLResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	suite.Contains(got.URL, "state=abc")
}

func (suite *CalendarHandlerTestSuite) TestGetConnectURLWithoutCredentials() {
	suite.mockConnection.EXPECT().ConnectURL(gomock.Any(), suite.userID).Return(nil, apperrors.ErrGoogleCredentialsNotSet)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/calendar/google/connect", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusServiceUnavailable, "GOOGLE_CLIENT_ID")
}

func (suite *CalendarHandlerTestSuite) TestCallback() {
	suite.mockConnection.EXPECT().HandleCallback(gomock.Any(), "signed-state", "auth-code").Return(suite.userID, nil)

	recorder := suite.publicSuite.MakeRequest(http.MethodGet, "/api/v1/calendar/google/callback?state=signed-state&code=auth-code", nil)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`{"connected":true,"provider":"google"}`, recorder.Body.String())
}

func (suite *CalendarHandlerTestSuite) TestCallbackInvalidState() {
	suite.mockConnection.EXPECT().HandleCallback(gomock.Any(), "forged", "auth-code").Return(uuid.Nil, apperrors.ErrInvalidOAuthState)

	recorder := suite.publicSuite.MakeRequest(http.MethodGet, "/api/v1/calendar/google/callback?state=forged&code=auth-code", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "invalid oauth state")
}

func (suite *CalendarHandlerTestSuite) TestCallbackConsentDenied() {
	recorder := suite.publicSuite.MakeRequest(http.MethodGet, "/api/v1/calendar/google/callback?error=access_denied", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "access_denied")
}

func (suite *CalendarHandlerTestSuite) TestStatus() {
	suite.mockConnection.EXPECT().Status(gomock.Any(), suite.userID).
		Return(&service.CalendarStatusResponse{Connected: true, Provider: service.ProviderGoogle, CanRefresh: true}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/calendar/google/status", nil)

	var got service.CalendarStatusResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	suite.True(got.Connected)
	suite.True(got.CanRefresh)
}

func (suite *CalendarHandlerTestSuite) TestDisconnectWithoutConnection() {
	suite.mockConnection.EXPECT().Disconnect(gomock.Any(), suite.userID).Return(apperrors.ErrCalendarConnectionNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/calendar/google", nil)

	suite.Equal(http.StatusNotFound, recorder.Code)
}

func (suite *CalendarHandlerTestSuite) TestSync() {
	cases := []struct {
		name   string
		result service.SyncResult
		status int
	}{
		{
			name:   "all synced",
			result: service.SyncResult{Success: true, Message: service.SyncSummary(3, 0), Count: 3},
			status: http.StatusOK,
		},
		{
			name:   "partial failure still succeeds",
			result: service.SyncResult{Success: true, Message: service.SyncSummary(3, 1), Count: 3, Failed: 1},
			status: http.StatusOK,
		},
		{
			name:   "reauthentication required",
			result: service.SyncResult{Success: false, Error: apperrors.ErrReauthenticationRequired.Error()},
			status: http.StatusUnauthorized,
		},
		{
			name:   "fetch error",
			result: service.SyncResult{Success: false, Error: apperrors.ErrDeliverableFetch.Error()},
			status: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.mockSync.EXPECT().SyncForUser(gomock.Any(), suite.userID).Return(tc.result)

			recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/calendar/sync", nil)

			var got service.SyncResult
			testutils.AssertJSONResponse(suite.T(), recorder, tc.status, &got)
			suite.Equal(tc.result.Success, got.Success)
			suite.Equal(tc.result.Count, got.Count)
			suite.Equal(tc.result.Failed, got.Failed)
			suite.Equal(tc.result.Error, got.Error)
		})
	}
}

func TestCalendarHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CalendarHandlerTestSuite))
}
