//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"massfit-bot/cmd/bootstrap"
	"massfit-bot/cmd/bootstrap/components"
	"massfit-bot/internal/infra/db"
	"massfit-bot/internal/pkg/config"
	"massfit-bot/tests/common/dbtest"

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
	schemaFile = "migrations/001_initial_schema.sql"
)

var (
	pgOnce sync.Once
	pgAddr string // host:port of the shared PostgreSQL container
	pgErr  error
)

// SharedSuite boots the bot against a fresh database and a fake Bot API.
// Every subtest starts from the seeded reference data.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
	BotAPI *FakeBotAPI // 送信されたBot APIリクエストの記録
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	s.DB, s.Config = newDatabase(t, postgresAddr(t))

	s.BotAPI = NewFakeBotAPI()
	t.Cleanup(s.BotAPI.Close)

	s.Config.Bot.APIBaseURL = s.BotAPI.URL()
	s.Router = startApp(t, s.DB, s.Config)
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "DBの初期化に失敗")
	s.BotAPI.Reset()
}

// postgresAddr starts one PostgreSQL container per test binary.
func postgresAddr(t *testing.T) string {
	pgOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		var c testcontainers.Container
		c, pgErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{"5432/tcp"},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				// データはRAM上、耐久性は不要
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
				Cmd: []string{
					"postgres",
					"-c", "fsync=off",
					"-c", "synchronous_commit=off",
					"-c", "full_page_writes=off",
					"-c", "max_connections=200",
				},
				WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
					return adminDSN(host + ":" + port.Port())
				}).WithStartupTimeout(60 * time.Second),
				Labels: map[string]string{"purpose": "massfit-e2e"},
			},
			Started: true,
		})
		if pgErr != nil {
			return
		}

		var host string
		var port nat.Port
		if host, pgErr = c.Host(ctx); pgErr != nil {
			return
		}
		if port, pgErr = c.MappedPort(ctx, "5432/tcp"); pgErr != nil {
			return
		}
		pgAddr = host + ":" + port.Port()
	})
	require.NoError(t, pgErr, "PostgreSQLコンテナの起動に失敗")
	return pgAddr
}

func adminDSN(addr string) string {
	return fmt.Sprintf("postgres://%s:%s@%s/postgres?sslmode=disable", pgUser, pgPassword, addr)
}

// newDatabase creates a throwaway database, applies the schema and seeds
// branches and products.
func newDatabase(t *testing.T, addr string) (*pgxpool.Pool, config.Config) {
	t.Helper()

	name := "massfit_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN(addr))
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close()

	_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
	require.NoError(t, err, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, adminDSN(addr))
		if err != nil {
			slog.Warn("failed to drop test database", "database", name, "error", err.Error())
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("failed to drop test database", "database", name, "error", err.Error())
		}
	})

	host, port, _ := strings.Cut(addr, ":")
	cfg := config.NewTestConfig()
	cfg.DB = config.DBConfig{
		Host:     host,
		Port:     port,
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "Asia/Tashkent",
	}

	pool, _, err := db.Connect(cfg.DB)
	require.NoError(t, err, "データベース接続に失敗")
	t.Cleanup(pool.Close)

	schema, err := readSchema()
	require.NoError(t, err)
	_, err = pool.Exec(ctx, string(schema))
	require.NoError(t, err, "スキーマの適用に失敗")

	require.NoError(t, dbtest.SeedReferenceData(pool), "参照データの投入に失敗")
	return pool, cfg
}

// readSchema walks up from the package directory `go test` runs in.
func readSchema() ([]byte, error) {
	path := schemaFile
	for range 4 {
		if b, err := os.ReadFile(path); err == nil {
			return b, nil
		}
		path = filepath.Join("..", path)
	}
	return nil, fmt.Errorf("schema %s not found above the working directory", schemaFile)
}

// startApp wires the production modules over the test pool and config.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		fx.Supply(pool, cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.TelegramModule,
		bootstrap.EventsModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})
	require.NotNil(t, router)
	return router
}
