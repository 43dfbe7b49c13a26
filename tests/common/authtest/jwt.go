//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"seva-console/internal/pkg/config"
	"seva-console/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.StubConfig
}

func NewJWTHelper(cfg config.StubConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, email string) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.JWTSecret, h.cfg.JWTDuration).GenerateToken(email)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken issues a token whose exp is already in the past.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, email string) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.JWTSecret, -time.Minute).GenerateToken(email)
	require.NoError(t, err)
	return token
}
