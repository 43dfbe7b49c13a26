//go:build unit

package api_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"seva-console/internal/handler"
	"seva-console/internal/handler/api"
	"seva-console/internal/handler/middleware"
	"seva-console/internal/infra/memstore"
	"seva-console/internal/pkg/clock"
	"seva-console/internal/pkg/config"
	"seva-console/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type stubEnv struct {
	router *gin.Engine
	cfg    config.StubConfig
	store  *memstore.Store
}

func newStubEnv(t *testing.T) stubEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestStubConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	jwtService := jwt.NewService(cfg.JWTSecret, cfg.JWTDuration)

	users := memstore.NewUserStore(cfg.OTPCode)
	require.NoError(t, users.Add(cfg.UserEmail, cfg.UserName, cfg.UserPassword))
	store := memstore.NewStore(users, clock.NewMockClock(time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC)))

	router := gin.New()
	handler.NewRouter(router, cfg, logger, handler.NewHandlers(
		api.NewAuthHandler(users, jwtService),
		api.NewBookSevaHandler(store),
		api.NewCallingSevaHandler(store),
		api.NewExpenseHandler(store),
		api.NewGeneralHandler(store),
	), middleware.NewAuthMiddleware(jwtService, logger))

	return stubEnv{router: router, cfg: cfg, store: store}
}
