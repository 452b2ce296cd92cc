//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"foodshare/cmd/bootstrap"
	"foodshare/cmd/bootstrap/components"
	"foodshare/internal/infra/db"
	"foodshare/internal/infra/db/migrations"
	"foodshare/internal/pkg/config"
	"foodshare/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
	pgPort     = nat.Port("5432/tcp")
)

// postgresServer is one container shared by every suite in the process.
// Ryuk removes it when the test binary exits.
type postgresServer struct {
	host string
	port nat.Port
}

func (p postgresServer) dsn(database string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		pgUser, pgPassword, p.host, p.port.Port(), database)
}

var (
	serverOnce sync.Once
	server     postgresServer
	serverErr  error
)

func sharedPostgres(t *testing.T) postgresServer {
	t.Helper()

	serverOnce.Do(func() {
		server, serverErr = startPostgres()
	})
	require.NoError(t, serverErr, "start postgres container")
	return server
}

func startPostgres() (postgresServer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{string(pgPort)},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       "postgres",
		},
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
		// durability is irrelevant for a throwaway database
		Cmd: []string{"postgres",
			"-c", "fsync=off",
			"-c", "full_page_writes=off",
			"-c", "synchronous_commit=off",
			"-c", "max_connections=200",
		},
		WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
			return postgresServer{host: host, port: port}.dsn("postgres")
		}).WithStartupTimeout(time.Minute),
		Labels: map[string]string{"purpose": "foodshare-e2e"},
	}

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return postgresServer{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return postgresServer{}, err
	}
	port, err := c.MappedPort(ctx, pgPort)
	if err != nil {
		return postgresServer{}, err
	}
	return postgresServer{host: host, port: port}, nil
}

// createDatabase makes a fresh database for this process and drops it on cleanup.
func createDatabase(t *testing.T, pg postgresServer) string {
	t.Helper()

	name := "foodshare_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, pg.dsn("postgres"))
	require.NoError(t, err, "admin connection")
	defer admin.Close()

	// CREATE DATABASE contends on the template database when packages start together.
	for attempt := 1; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
		if err == nil || attempt == 5 {
			break
		}
		slog.Warn("create database failed, retrying", "attempt", attempt, "error", err.Error())
		time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
	}
	require.NoError(t, err, "create test database")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, pg.dsn("postgres"))
		if err != nil {
			slog.Warn("drop database: connect", "database", name, "error", err.Error())
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("drop database", "database", name, "error", err.Error())
		}
	})
	return name
}

func dbConfigFor(pg postgresServer, name string) config.DBConfig {
	return config.DBConfig{
		Host:            pg.host,
		Port:            pg.port.Port(),
		User:            pgUser,
		Password:        pgPassword,
		DBName:          name,
		SSLMode:         "disable",
		TimeZone:        "UTC",
		MaxConns:        5,
		MinConns:        1,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: 30 * time.Minute,
	}
}

// startApp wires the production modules around an existing pool and stops
// the fx app when the test ends.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		fx.Module("testdb", fx.Supply(pool)),
		bootstrap.ConfigModule(cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.IdentityModule,
		bootstrap.CacheModule,
		bootstrap.EventsModule,
		components.PersistenceModule(config.StoreDriverPostgres),
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "start fx app")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("stop fx app", "error", err.Error())
		}
	})
	return router
}

// SharedSuite owns a migrated database and a router built from the
// production fx modules. Subtests start from empty tables.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	pg := sharedPostgres(t)
	dbCfg := dbConfigFor(pg, createDatabase(t, pg))

	pool, closePool, err := db.Connect(context.Background(), dbCfg)
	require.NoError(t, err, "connect test database")
	t.Cleanup(closePool)
	require.NoError(t, migrations.MigrateUp(pool), "migrate test database")

	s.Config = config.NewTestConfig()
	s.Config.DB = dbCfg
	s.DB = pool
	s.Router = startApp(t, pool, s.Config)
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "reset database")
}
