package board

import (
	"context"
	"errors"
	"sync"
	"testing"

	"publiflow-backend/internal/database/models"
	apperrors "publiflow-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// gatedStore blocks every SetStatus until the test releases it with a result
type gatedStore struct {
	mu     sync.Mutex
	calls  []Move
	gates  map[uuid.UUID]chan error
	called chan uuid.UUID
}

func newGatedStore() *gatedStore {
	return &gatedStore{
		gates:  make(map[uuid.UUID]chan error),
		called: make(chan uuid.UUID, 16),
	}
}

func (s *gatedStore) gate(id uuid.UUID) chan error {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.gates[id]
	if !ok {
		g = make(chan error, 1)
		s.gates[id] = g
	}
	return g
}

func (s *gatedStore) SetStatus(_ context.Context, id uuid.UUID, status models.IdeaStatus) error {
	s.mu.Lock()
	s.calls = append(s.calls, Move{ItemID: id, To: status})
	s.mu.Unlock()
	s.called <- id
	return <-s.gate(id)
}

func (s *gatedStore) release(id uuid.UUID, err error) {
	s.gate(id) <- err
}

func (s *gatedStore) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// BoardTestSuite tests optimistic moves and rollback
type BoardTestSuite struct {
	suite.Suite
	store *gatedStore
	a, b  models.Idea
}

func (s *BoardTestSuite) SetupTest() {
	s.store = newGatedStore()
	s.a = idea("A", models.IdeaStatusIdea)
	s.b = idea("B", models.IdeaStatusScripting)
}

func idea(title string, status models.IdeaStatus) models.Idea {
	i := models.Idea{Title: title, Status: status}
	i.ID = uuid.New()
	return i
}

func statusOf(items []models.Idea, id uuid.UUID) models.IdeaStatus {
	for _, i := range items {
		if i.ID == id {
			return i.Status
		}
	}
	return ""
}

func drop(id uuid.UUID, from models.IdeaStatus, fromIdx int, to models.IdeaStatus, toIdx int) DropEvent {
	return DropEvent{
		ItemID:      id,
		Source:      Position{Container: from, Index: fromIdx},
		Destination: &Position{Container: to, Index: toIdx},
	}
}

func (s *BoardTestSuite) newBoard(opts ...Option) *Board {
	return New(models.IdeaStageSchemeWorkflow, s.store, []models.Idea{s.a, s.b}, opts...)
}

func (s *BoardTestSuite) TestOptimisticMoveIsShownBeforePersistence() {
	board := s.newBoard()

	applied, err := board.Drop(context.Background(), drop(s.a.ID, models.IdeaStatusIdea, 0, models.IdeaStatusScripting, 1))

	s.Require().NoError(err)
	s.True(applied)
	s.Equal(models.IdeaStatusScripting, statusOf(board.Items(), s.a.ID))
	s.Equal(models.IdeaStatusIdea, statusOf(board.Confirmed(), s.a.ID))
	s.Equal(1, board.Pending())

	s.store.release(s.a.ID, nil)
	board.Wait()

	s.Equal(models.IdeaStatusScripting, statusOf(board.Confirmed(), s.a.ID))
	s.Equal(0, board.Pending())
}

func (s *BoardTestSuite) TestFailedMoveRestoresWholeSnapshot() {
	var surfaced error
	board := s.newBoard(WithFailureHandler(func(_ Move, err error) { surfaced = err }))

	_, err := board.Drop(context.Background(), drop(s.a.ID, models.IdeaStatusIdea, 0, models.IdeaStatusScripting, 1))
	s.Require().NoError(err)
	s.Equal(models.IdeaStatusScripting, statusOf(board.Items(), s.a.ID))

	s.store.release(s.a.ID, errors.New("permission denied"))
	board.Wait()

	items := board.Items()
	s.Equal(models.IdeaStatusIdea, statusOf(items, s.a.ID))
	s.Equal(models.IdeaStatusScripting, statusOf(items, s.b.ID))
	s.Equal([]models.Idea{s.a, s.b}, items)
	s.EqualError(surfaced, "permission denied")
}

func (s *BoardTestSuite) TestSamePositionIsNoOp() {
	board := s.newBoard()
	before := board.Items()

	applied, err := board.Drop(context.Background(), drop(s.a.ID, models.IdeaStatusIdea, 0, models.IdeaStatusIdea, 0))

	s.NoError(err)
	s.False(applied)
	board.Wait()
	s.Equal(before, board.Items())
	s.Equal(0, s.store.callCount())
}

func (s *BoardTestSuite) TestCancelledDragIsNoOp() {
	board := s.newBoard()

	applied, err := board.Drop(context.Background(), DropEvent{ItemID: s.a.ID, Source: Position{Container: models.IdeaStatusIdea}})

	s.NoError(err)
	s.False(applied)
	s.Equal(0, s.store.callCount())
}

func (s *BoardTestSuite) TestReorderInsideColumnPersistsSameStage() {
	board := s.newBoard()

	applied, err := board.Drop(context.Background(), drop(s.b.ID, models.IdeaStatusScripting, 0, models.IdeaStatusScripting, 1))
	s.Require().NoError(err)
	s.True(applied)

	s.Equal(s.b.ID, <-s.store.called)
	s.store.release(s.b.ID, nil)
	board.Wait()
	s.Equal(models.IdeaStatusScripting, statusOf(board.Confirmed(), s.b.ID))
}

func (s *BoardTestSuite) TestOverlappingDragsLateFailureKeepsOtherMove() {
	board := s.newBoard()

	_, err := board.Drop(context.Background(), drop(s.a.ID, models.IdeaStatusIdea, 0, models.IdeaStatusFilming, 0))
	s.Require().NoError(err)
	_, err = board.Drop(context.Background(), drop(s.b.ID, models.IdeaStatusScripting, 0, models.IdeaStatusDone, 0))
	s.Require().NoError(err)

	items := board.Items()
	s.Equal(models.IdeaStatusFilming, statusOf(items, s.a.ID))
	s.Equal(models.IdeaStatusDone, statusOf(items, s.b.ID))

	// B is confirmed first, then A's persistence fails late
	s.store.release(s.b.ID, nil)
	s.store.release(s.a.ID, errors.New("timeout"))
	board.Wait()

	items = board.Items()
	s.Equal(models.IdeaStatusIdea, statusOf(items, s.a.ID))
	s.Equal(models.IdeaStatusDone, statusOf(items, s.b.ID))
}

func (s *BoardTestSuite) TestOverlappingDragsFailureWhileOtherStillPending() {
	board := s.newBoard()

	_, err := board.Drop(context.Background(), drop(s.a.ID, models.IdeaStatusIdea, 0, models.IdeaStatusFilming, 0))
	s.Require().NoError(err)
	_, err = board.Drop(context.Background(), drop(s.b.ID, models.IdeaStatusScripting, 0, models.IdeaStatusDone, 0))
	s.Require().NoError(err)

	s.store.release(s.a.ID, errors.New("timeout"))
	s.Eventually(func() bool { return board.Pending() == 1 }, timeout, tick)

	items := board.Items()
	s.Equal(models.IdeaStatusIdea, statusOf(items, s.a.ID))
	s.Equal(models.IdeaStatusDone, statusOf(items, s.b.ID), "in-flight move stays displayed")

	s.store.release(s.b.ID, nil)
	board.Wait()
	s.Equal(models.IdeaStatusDone, statusOf(board.Confirmed(), s.b.ID))
}

func (s *BoardTestSuite) TestDestinationOutsideScheme() {
	board := s.newBoard()

	applied, err := board.Drop(context.Background(), drop(s.a.ID, models.IdeaStatusIdea, 0, models.IdeaStatusBacklog, 0))

	s.ErrorIs(err, apperrors.ErrInvalidIdeaStage)
	s.False(applied)
	s.Equal(0, s.store.callCount())
}

func (s *BoardTestSuite) TestUnknownItem() {
	board := s.newBoard()

	_, err := board.Drop(context.Background(), drop(uuid.New(), models.IdeaStatusIdea, 0, models.IdeaStatusDone, 0))

	s.ErrorIs(err, apperrors.ErrIdeaNotFound)
}

func (s *BoardTestSuite) TestPanickingStoreRollsBack() {
	var surfaced error
	store := StoreFunc(func(context.Context, uuid.UUID, models.IdeaStatus) error { panic("boom") })
	board := New(models.IdeaStageSchemeWorkflow, store, []models.Idea{s.a, s.b},
		WithFailureHandler(func(_ Move, err error) { surfaced = err }))

	_, err := board.Drop(context.Background(), drop(s.a.ID, models.IdeaStatusIdea, 0, models.IdeaStatusDone, 0))
	s.Require().NoError(err)
	board.Wait()

	s.Equal(models.IdeaStatusIdea, statusOf(board.Items(), s.a.ID))
	s.ErrorIs(surfaced, apperrors.ErrUnexpected)
}

func (s *BoardTestSuite) TestColumnsFollowSchemeOrder() {
	board := s.newBoard()

	columns := board.Columns()

	s.Require().Len(columns, 4)
	s.Equal(models.IdeaStatusIdea, columns[0].Status)
	s.Equal("💡 Ideia", columns[0].Title)
	s.Len(columns[0].Ideas, 1)
	s.Len(columns[1].Ideas, 1)
	s.Empty(columns[2].Ideas)
	s.Empty(columns[3].Ideas)
}

func TestBoardTestSuite(t *testing.T) {
	suite.Run(t, new(BoardTestSuite))
}
