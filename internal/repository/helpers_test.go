package repository

import (
	"time"

	"publiflow-backend/internal/database/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlMockSuite provides a gorm handle backed by go-sqlmock
type sqlMockSuite struct {
	suite.Suite
	db   *gorm.DB
	mock sqlmock.Sqlmock
}

// SetupTest opens a fresh mock connection for every test
func (s *sqlMockSuite) SetupTest() {
	sqlDB, mock, err := sqlmock.New()
	s.Require().NoError(err)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)

	s.db = db
	s.mock = mock
}

// TearDownTest verifies that every expected statement ran
func (s *sqlMockSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func newTestConnection() *models.CalendarConnection {
	conn := &models.CalendarConnection{
		Provider:     "google",
		AccessToken:  "ya29.access",
		RefreshToken: "1//refresh",
		TokenExpiry:  time.Now().Add(time.Hour),
	}
	conn.UserID = uuid.New()
	return conn
}
