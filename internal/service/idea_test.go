package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"publiflow-backend/internal/board"
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

// IdeaServiceTestSuite defines the test suite for IdeaService
type IdeaServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockIdeaRepositoryInterface
	userID   uuid.UUID
	ctx      context.Context
}

func (suite *IdeaServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockIdeaRepositoryInterface(suite.ctrl)
	suite.userID = uuid.New()
	suite.ctx = context.Background()
}

func (suite *IdeaServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *IdeaServiceTestSuite) newService(scheme models.IdeaStageScheme) *service.IdeaService {
	return service.NewIdeaService(suite.mockRepo, scheme, validator.New())
}

func (suite *IdeaServiceTestSuite) TestCreateDefaultsToFirstStage() {
	svc := suite.newService(models.IdeaStageSchemePipeline)
	suite.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, i *models.Idea) error {
			suite.Equal(models.IdeaStatusBacklog, i.Status)
			return nil
		})

	resp, err := svc.Create(suite.ctx, suite.userID, &service.CreateIdeaRequest{Title: "Unboxing"})

	suite.Require().NoError(err)
	suite.Equal(models.IdeaStatusBacklog, resp.Status)
}

func (suite *IdeaServiceTestSuite) TestCreateWithPlatformAndPriority() {
	svc := suite.newService(models.IdeaStageSchemeWorkflow)
	platform := models.IdeaPlatformTikTok
	priority := models.IdeaPriorityHigh
	suite.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := svc.Create(suite.ctx, suite.userID, &service.CreateIdeaRequest{
		Title:    "Trend",
		Status:   models.IdeaStatusScripting,
		Platform: &platform,
		Priority: &priority,
	})

	suite.Require().NoError(err)
	suite.Equal(models.IdeaPriorityHigh, *resp.Priority)
}

func (suite *IdeaServiceTestSuite) TestCreateRejectsFieldsOutsideScheme() {
	svc := suite.newService(models.IdeaStageSchemePipeline)
	platform := models.IdeaPlatformYouTube

	_, err := svc.Create(suite.ctx, suite.userID, &service.CreateIdeaRequest{Title: "Vlog", Platform: &platform})
	suite.ErrorIs(err, apperrors.ErrIdeaFieldsNotSupported)

	_, err = svc.Create(suite.ctx, suite.userID, &service.CreateIdeaRequest{Title: "Vlog", Status: models.IdeaStatusFilming})
	suite.ErrorIs(err, apperrors.ErrInvalidIdeaStage)
}

func (suite *IdeaServiceTestSuite) TestUpdate() {
	svc := suite.newService(models.IdeaStageSchemeWorkflow)
	id := uuid.New()
	existing := &models.Idea{Title: "Old", Status: models.IdeaStatusIdea}
	existing.ID = id
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), suite.userID, id).Return(existing, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any(), existing).Return(nil)

	resp, err := svc.Update(suite.ctx, suite.userID, id, &service.UpdateIdeaRequest{Title: "New", Status: models.IdeaStatusDone})

	suite.Require().NoError(err)
	suite.Equal("New", resp.Title)
	suite.Equal(models.IdeaStatusDone, resp.Status)
}

func (suite *IdeaServiceTestSuite) TestUpdateStatus() {
	svc := suite.newService(models.IdeaStageSchemeWorkflow)
	id := uuid.New()
	suite.mockRepo.EXPECT().UpdateStatus(gomock.Any(), suite.userID, id, models.IdeaStatusFilming).Return(nil)
	suite.mockRepo.EXPECT().UpdateStatus(gomock.Any(), suite.userID, id, models.IdeaStatusDone).Return(gorm.ErrRecordNotFound)

	suite.NoError(svc.UpdateStatus(suite.ctx, suite.userID, id, &service.UpdateIdeaStatusRequest{Status: models.IdeaStatusFilming}))
	suite.ErrorIs(svc.UpdateStatus(suite.ctx, suite.userID, id, &service.UpdateIdeaStatusRequest{Status: models.IdeaStatusDone}), apperrors.ErrIdeaNotFound)
	suite.ErrorIs(svc.UpdateStatus(suite.ctx, suite.userID, id, &service.UpdateIdeaStatusRequest{Status: models.IdeaStatusReview}), apperrors.ErrInvalidIdeaStage)
}

func (suite *IdeaServiceTestSuite) TestBoardMoveRollsBackOnFailure() {
	svc := suite.newService(models.IdeaStageSchemeWorkflow)
	a := models.Idea{Title: "A", Status: models.IdeaStatusIdea}
	a.ID = uuid.New()
	b := models.Idea{Title: "B", Status: models.IdeaStatusScripting}
	b.ID = uuid.New()

	suite.mockRepo.EXPECT().ListByUser(gomock.Any(), suite.userID).Return([]models.Idea{a, b}, nil).AnyTimes()
	release := make(chan struct{})
	suite.mockRepo.EXPECT().UpdateStatus(gomock.Any(), suite.userID, a.ID, models.IdeaStatusScripting).
		DoAndReturn(func(context.Context, uuid.UUID, uuid.UUID, models.IdeaStatus) error {
			<-release
			return errors.New("write rejected")
		})

	resp, err := svc.MoveOnBoard(suite.ctx, suite.userID, &service.BoardMoveRequest{
		IdeaID:      a.ID,
		Source:      board.Position{Container: models.IdeaStatusIdea, Index: 0},
		Destination: &board.Position{Container: models.IdeaStatusScripting, Index: 1},
	})
	suite.Require().NoError(err)
	suite.True(resp.Applied)
	suite.Equal(1, resp.Board.Pending)
	suite.Empty(resp.Board.Columns[0].Ideas)
	suite.Len(resp.Board.Columns[1].Ideas, 2)

	close(release)

	var view *board.View
	suite.Eventually(func() bool {
		view, err = svc.Board(suite.ctx, suite.userID)
		return err == nil && view.Pending == 0 && view.Error != ""
	}, time.Second, 10*time.Millisecond)
	suite.Contains(view.Error, "write rejected")
	suite.Len(view.Columns[0].Ideas, 1)
	suite.Equal(a.ID, view.Columns[0].Ideas[0].ID)
	suite.Len(view.Columns[1].Ideas, 1)
}

func (suite *IdeaServiceTestSuite) TestBoardMoveNoOp() {
	svc := suite.newService(models.IdeaStageSchemeWorkflow)
	a := models.Idea{Title: "A", Status: models.IdeaStatusIdea}
	a.ID = uuid.New()
	suite.mockRepo.EXPECT().ListByUser(gomock.Any(), suite.userID).Return([]models.Idea{a}, nil)

	resp, err := svc.MoveOnBoard(suite.ctx, suite.userID, &service.BoardMoveRequest{
		IdeaID:      a.ID,
		Source:      board.Position{Container: models.IdeaStatusIdea, Index: 0},
		Destination: &board.Position{Container: models.IdeaStatusIdea, Index: 0},
	})

	suite.Require().NoError(err)
	suite.False(resp.Applied)
	suite.Zero(resp.Board.Pending)
}

func (suite *IdeaServiceTestSuite) TestBoardMoveInvalidStage() {
	svc := suite.newService(models.IdeaStageSchemeWorkflow)
	a := models.Idea{Title: "A", Status: models.IdeaStatusIdea}
	a.ID = uuid.New()
	suite.mockRepo.EXPECT().ListByUser(gomock.Any(), suite.userID).Return([]models.Idea{a}, nil)

	_, err := svc.MoveOnBoard(suite.ctx, suite.userID, &service.BoardMoveRequest{
		IdeaID:      a.ID,
		Source:      board.Position{Container: models.IdeaStatusIdea},
		Destination: &board.Position{Container: models.IdeaStatusReady},
	})

	suite.ErrorIs(err, apperrors.ErrInvalidIdeaStage)
}

func (suite *IdeaServiceTestSuite) TestDeleteNotFound() {
	svc := suite.newService(models.IdeaStageSchemeWorkflow)
	id := uuid.New()
	suite.mockRepo.EXPECT().Delete(gomock.Any(), suite.userID, id).Return(gorm.ErrRecordNotFound)

	suite.ErrorIs(svc.Delete(suite.ctx, suite.userID, id), apperrors.ErrIdeaNotFound)
}

func TestIdeaServiceTestSuite(t *testing.T) {
	suite.Run(t, new(IdeaServiceTestSuite))
}
