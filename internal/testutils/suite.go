package testutils

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"publiflow-backend/internal/config"
	"publiflow-backend/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	pgUser     = "publiflow"
	pgPassword = "publiflow"
	pgDatabase = "publiflow_test"
)

// ownedTables are truncated between tests, children first
var ownedTables = []string{
	"calendar_connections",
	"deliverables",
	"deals",
	"partners",
	"ideas",
	"expenses",
	"profiles",
}

// postgresContainer is the process-wide database shared by every integration suite
type postgresContainer struct {
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
	cfg      *config.Config
}

var (
	containerOnce sync.Once
	containerErr  error
	shared        *postgresContainer
)

// BaseTestSuite gives integration suites a migrated Postgres schema
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared Postgres container on first use
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	containerOnce.Do(func() { shared, containerErr = startPostgres() })
	if containerErr != nil {
		t.Fatalf("failed to start postgres container: %v", containerErr)
	}
	return &BaseTestSuite{DB: shared.db, Config: shared.cfg}
}

// CleanupSharedContainer closes the pool and purges the container. Called from TestMain.
func CleanupSharedContainer() {
	if shared == nil {
		return
	}
	if sqlDB, err := shared.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	if err := shared.pool.Purge(shared.resource); err != nil {
		logrus.WithError(err).Warn("Could not purge postgres container")
	}
	shared = nil
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// CleanTestDB truncates every owned table that exists
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	m := s.DB.Migrator()
	for _, table := range ownedTables {
		if m.HasTable(table) {
			s.DB.Exec(fmt.Sprintf(`TRUNCATE TABLE %q CASCADE`, table))
		}
	}
}

func startPostgres() (*postgresContainer, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, fmt.Errorf("run postgres: %w", err)
	}
	// Reap the container even if the test binary is killed
	_ = resource.Expire(600)

	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase)

	// Native pgx handshake until the server accepts connections
	if err := pool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		conn, err := pgx.Connect(ctx, dsn)
		if err != nil {
			return err
		}
		defer conn.Close(ctx)
		return conn.Ping(ctx)
	}); err != nil {
		_ = pool.Purge(resource)
		return nil, fmt.Errorf("wait for postgres: %w", err)
	}

	db, err := database.Initialize(dsn, &database.Options{
		LogLevel:       gormlogger.Silent,
		ConnectTimeout: 30 * time.Second,
	})
	if err != nil {
		_ = pool.Purge(resource)
		return nil, err
	}

	logrus.WithField("dsn_port", resource.GetPort("5432/tcp")).Info("Test postgres ready")
	return &postgresContainer{
		pool:     pool,
		resource: resource,
		db:       db,
		cfg: &config.Config{
			Environment:     "test",
			DatabaseURL:     dsn,
			LogLevel:        "debug",
			JWTSecret:       "integration-test-secret",
			IdeaStageScheme: "workflow",
		},
	}, nil
}
