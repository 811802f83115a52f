package repository

import (
	"context"
	"testing"

	"publiflow-backend/internal/database/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// DealRepositoryTestSuite tests the DealRepository against go-sqlmock
type DealRepositoryTestSuite struct {
	sqlMockSuite
	repo *DealRepository
}

func (s *DealRepositoryTestSuite) SetupTest() {
	s.sqlMockSuite.SetupTest()
	s.repo = NewDealRepository(s.db)
}

func (s *DealRepositoryTestSuite) TestSumEstimatedValue() {
	s.mock.ExpectQuery(`SELECT COALESCE\(SUM\(estimated_value\), 0\) FROM "deals" WHERE .*status IN`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("2500.50"))

	total, err := s.repo.SumEstimatedValue(context.Background(), uuid.New(), models.DealStatusActive, models.DealStatusCompleted)

	s.Require().NoError(err)
	s.True(total.Equal(decimal.RequireFromString("2500.50")))
}

func (s *DealRepositoryTestSuite) TestCountByStatus() {
	s.mock.ExpectQuery(`SELECT count\(\*\) FROM "deals" WHERE .*status = `).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := s.repo.CountByStatus(context.Background(), uuid.New(), models.DealStatusActive)

	s.NoError(err)
	s.Equal(int64(3), count)
}

func (s *DealRepositoryTestSuite) TestUpdateStatusNotFound() {
	s.mock.ExpectExec(`UPDATE "deals" SET .*"status"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.repo.UpdateStatus(context.Background(), uuid.New(), uuid.New(), models.DealStatusCompleted)

	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *DealRepositoryTestSuite) TestDelete() {
	s.mock.ExpectExec(`DELETE FROM "deals" WHERE .*user_id`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	s.NoError(s.repo.Delete(context.Background(), uuid.New(), uuid.New()))
}

func TestDealRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(DealRepositoryTestSuite))
}
