package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"bizhub-backend/internal/config"
	"bizhub-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgImage    = "postgres"
	pgTag      = "15-alpine"
	pgUser     = "testuser"
	pgPassword = "testpass"
	pgDatabase = "testdb"
)

// One Postgres container serves every suite of a test binary.
var (
	pgOnce   sync.Once
	pgErr    error
	pg       *postgresContainer
	testConf *config.Config
)

type postgresContainer struct {
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
	dsn      string
}

// BaseTestSuite gives integration suites a migrated database with RLS enabled.
// Tables are truncated around every test.
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared container on first use.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	pgOnce.Do(func() {
		pg, pgErr = startPostgres()
		if pgErr == nil {
			testConf = testConfig(pg.dsn)
		}
	})
	if pgErr != nil {
		t.Fatalf("postgres test container: %v", pgErr)
	}
	return &BaseTestSuite{DB: pg.db, Config: testConf}
}

// CleanupSharedContainer closes the shared connection and purges the container.
func CleanupSharedContainer() {
	if pg == nil {
		return
	}
	if sqlDB, err := pg.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	name := pg.resource.Container.Name
	if err := pg.pool.Purge(pg.resource); err != nil {
		logrus.WithError(err).WithField("container", name).Warn("Failed to purge postgres container")
	} else {
		logrus.WithField("container", name).Info("Purged postgres container")
	}
	pg = nil
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite leaves the container running for the next suite.
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB truncates every migrated table, children first.
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	m := s.DB.Migrator()
	s.DB.Exec(`SET session_replication_role = replica`)
	for _, table := range migratedTables(s.DB) {
		if m.HasTable(table) {
			s.DB.Exec(fmt.Sprintf(`TRUNCATE TABLE %q RESTART IDENTITY CASCADE`, table))
		}
	}
	s.DB.Exec(`SET session_replication_role = DEFAULT`)
}

// migratedTables lists the tables of database.Models() in reverse migration order
func migratedTables(db *gorm.DB) []string {
	all := database.Models()
	tables := make([]string, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(all[i]); err != nil {
			logrus.WithError(err).Warnf("Skipping unparseable model %T", all[i])
			continue
		}
		tables = append(tables, stmt.Schema.Table)
	}
	return tables
}

func startPostgres() (*postgresContainer, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("docker unavailable: %w", err)
	}
	pool.MaxWait = 2 * time.Minute

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: pgImage,
		Tag:        pgTag,
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
		return nil, fmt.Errorf("failed to start %s:%s: %w", pgImage, pgTag, err)
	}

	c := &postgresContainer{
		pool:     pool,
		resource: resource,
		dsn: fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
			pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase),
	}
	if err := pool.Retry(c.connect); err != nil {
		_ = pool.Purge(resource)
		return nil, fmt.Errorf("postgres never became ready: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"container": resource.Container.Name,
		"tables":    len(migratedTables(c.db)),
	}).Info("Postgres test container ready")
	return c, nil
}

// connect waits for the server to accept connections, then migrates through
// database.Initialize so the RLS policies match production.
func (c *postgresContainer) connect() error {
	conn, err := sql.Open("pgx", c.dsn)
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		return err
	}

	db, err := database.Initialize(c.dsn, &database.Options{EnableRLS: true})
	if err != nil {
		return err
	}
	c.db = db
	return nil
}

func testConfig(dsn string) *config.Config {
	return &config.Config{
		DatabaseURL:           dsn,
		Port:                  "8080",
		LogLevel:              "debug",
		Environment:           "test",
		EnableRLS:             true,
		JWTSecret:             "test-secret",
		JWTIssuer:             "bizhub-backend",
		SessionTTLHours:       24,
		SessionCookieName:     "session_token",
		SessionCookieSameSite: "lax",
		AllowLocalSignup:      true,
	}
}
