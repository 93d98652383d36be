//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"mesa-booking/cmd/bootstrap"
	"mesa-booking/cmd/bootstrap/components"
	"mesa-booking/internal/pkg/config"
	"mesa-booking/tests/common/backendtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

var (
	redisContainerOnce sync.Once
	redisTestContainer testcontainers.Container
	nextDB       int
	redisDBMu          sync.Mutex
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// ------------------------------------------------------------
// per-suite environment: shared redis, private fake backend
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*backendtest.Backend, *gin.Engine, config.Config) {
	redisInfo := startContainers(t)
	backend := backendtest.Start(t, backendtest.DefaultMesas())

	cfg := createTestConfig(redisInfo, backend.URL(), nextRedisDB())
	router, app := buildE2EApp(cfg)
	require.NotNil(t, router, "router setup failed")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	return backend, router, cfg
}

func startContainers(t *testing.T) ContainerInfo {
	gin.SetMode(gin.TestMode)
	startRedisContainerOnce(t)

	info, err := getContainerHostPort(redisTestContainer, "6379/tcp")
	require.NoError(t, err, "failed to read redis container address")
	return info
}

// nextRedisDB gives each suite its own logical database so parallel suites
// never see each other's sessions.
func nextRedisDB() int {
	redisDBMu.Lock()
	defer redisDBMu.Unlock()
	db := nextDB % 16
	nextDB++
	return db
}

// ------------------------------------------------------------
// app built from the production fx modules
// ------------------------------------------------------------
func buildE2EApp(cfg config.Config) (*gin.Engine, *fx.App) {
	var router *gin.Engine

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config { return cfg }),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.SessionModule,
		bootstrap.JWTModule,
		components.GatewayModule,
		components.DomainModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}
	return router, app
}

func createTestConfig(redisInfo ContainerInfo, backendURL string, redisDB int) config.Config {
	cfg := config.NewTestConfig()
	cfg.Backend.BaseURL = backendURL
	cfg.Session.Store = "redis"
	cfg.Session.RedisAddr = fmt.Sprintf("%s:%s", redisInfo.Host, redisInfo.Port.Port())
	cfg.Session.RedisDB = redisDB
	cfg.Booking.TimeZone = "Local"
	cfg.Booking.ResetDelay = 200 * time.Millisecond
	return cfg
}

// ------------------------------------------------------------
// containers
// ------------------------------------------------------------
func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

func startRedisContainerOnce(t *testing.T) {
	redisContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			Cmd:          []string{"redis-server", "--save", "", "--appendonly", "no"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(60 * time.Second),
			Name:         "redis-e2e",
			Labels:       map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		redisTestContainer, err = startGenericContainer(req, 180)
		require.NoError(t, err, "failed to start redis container")
	})
}

func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// shared suite
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router  *gin.Engine
	Backend *backendtest.Backend
	Config  config.Config
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	backend, router, cfg := setupE2EEnvironment(t)
	s.Backend = backend
	s.Router = router
	s.Config = cfg
	require.NotNil(t, s.Backend, "fake backend setup failed")
	require.NotNil(t, s.Router, "router setup failed")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}
