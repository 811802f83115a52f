package handlers_test

import (
	"net/http"
	"testing"

	"publiflow-backend/internal/api/handlers"
	"publiflow-backend/internal/board"
	"publiflow-backend/internal/database/models"
	apperrors "publiflow-backend/internal/errors"
	"publiflow-backend/internal/mocks"
	"publiflow-backend/internal/service"
	"publiflow-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// IdeaHandlerTestSuite defines the test suite for IdeaHandler
type IdeaHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockIdeaServiceInterface
	handler     *handlers.IdeaHandler
	httpSuite   *testutils.HTTPTestSuite
	userID      uuid.UUID
}

func (suite *IdeaHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockIdeaServiceInterface(suite.ctrl)
	suite.handler = handlers.NewIdeaHandler(suite.mockService)
	suite.userID = uuid.New()

	suite.httpSuite = testutils.SetupAuthenticatedHTTPTest(suite.userID)
	ideas := suite.httpSuite.Router.Group("/api/v1/ideas")
	{
		ideas.GET("", suite.handler.ListIdeas)
		ideas.POST("", suite.handler.CreateIdea)
		ideas.GET("/board", suite.handler.GetBoard)
		ideas.POST("/board/moves", suite.handler.MoveCard)
		ideas.PUT("/:id", suite.handler.UpdateIdea)
		ideas.PATCH("/:id/status", suite.handler.UpdateIdeaStatus)
		ideas.DELETE("/:id", suite.handler.DeleteIdea)
	}
}

func (suite *IdeaHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *IdeaHandlerTestSuite) TestCreateIdea() {
	req := service.CreateIdeaRequest{Title: "Unboxing"}
	suite.mockService.EXPECT().Create(gomock.Any(), suite.userID, &req).
		Return(&service.IdeaResponse{ID: uuid.New(), Title: "Unboxing", Status: models.IdeaStatusIdea}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/ideas", req)

	var got service.IdeaResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &got)
	suite.Equal(models.IdeaStatusIdea, got.Status)
}

func (suite *IdeaHandlerTestSuite) TestCreateIdeaFieldsNotSupported() {
	suite.mockService.EXPECT().Create(gomock.Any(), suite.userID, gomock.Any()).Return(nil, apperrors.ErrIdeaFieldsNotSupported)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/ideas",
		map[string]string{"title": "Unboxing", "platform": "TikTok"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "platform and priority")
}

func (suite *IdeaHandlerTestSuite) TestUpdateIdeaStatusUnknownStage() {
	id := uuid.New()
	suite.mockService.EXPECT().UpdateStatus(gomock.Any(), suite.userID, id, gomock.Any()).Return(apperrors.ErrInvalidIdeaStage)

	recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/ideas/"+id.String()+"/status",
		map[string]string{"status": "archived"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "not a stage")
}

func (suite *IdeaHandlerTestSuite) TestUpdateIdea() {
	id := uuid.New()
	req := service.UpdateIdeaRequest{Title: "Vlog", Status: models.IdeaStatusFilming}
	suite.mockService.EXPECT().Update(gomock.Any(), suite.userID, id, &req).
		Return(&service.IdeaResponse{ID: id, Title: "Vlog", Status: models.IdeaStatusFilming}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/ideas/"+id.String(), req)

	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *IdeaHandlerTestSuite) TestDeleteIdeaNotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(gomock.Any(), suite.userID, id).Return(apperrors.ErrIdeaNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/ideas/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "idea not found")
}

func (suite *IdeaHandlerTestSuite) TestGetBoard() {
	view := &board.View{
		Columns: []board.Column{
			{Status: models.IdeaStatusIdea, Title: models.IdeaStatusIdea.Label(), Ideas: []models.Idea{}},
			{Status: models.IdeaStatusScripting, Title: models.IdeaStatusScripting.Label(), Ideas: []models.Idea{}},
		},
		Pending: 1,
	}
	suite.mockService.EXPECT().Board(gomock.Any(), suite.userID).Return(view, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/ideas/board", nil)

	var got board.View
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	suite.Len(got.Columns, 2)
	suite.Equal(1, got.Pending)
}

func (suite *IdeaHandlerTestSuite) TestMoveCardAccepted() {
	ideaID := uuid.New()
	req := service.BoardMoveRequest{
		IdeaID:      ideaID,
		Source:      board.Position{Container: models.IdeaStatusIdea, Index: 0},
		Destination: &board.Position{Container: models.IdeaStatusFilming, Index: 0},
	}
	suite.mockService.EXPECT().MoveOnBoard(gomock.Any(), suite.userID, &req).
		Return(&service.BoardMoveResponse{Applied: true, Board: &board.View{Pending: 1}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/ideas/board/moves", req)

	var got service.BoardMoveResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusAccepted, &got)
	suite.True(got.Applied)
}

func (suite *IdeaHandlerTestSuite) TestMoveCardCancelledDrag() {
	req := service.BoardMoveRequest{
		IdeaID: uuid.New(),
		Source: board.Position{Container: models.IdeaStatusIdea, Index: 0},
	}
	suite.mockService.EXPECT().MoveOnBoard(gomock.Any(), suite.userID, &req).
		Return(&service.BoardMoveResponse{Applied: false, Board: &board.View{}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/ideas/board/moves", req)

	var got service.BoardMoveResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	suite.False(got.Applied)
}

func (suite *IdeaHandlerTestSuite) TestMoveCardMissingSource() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/ideas/board/moves",
		map[string]interface{}{"idea_id": uuid.New()})

	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func TestIdeaHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(IdeaHandlerTestSuite))
}
