package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"seva-console/internal/handler/httperr"
	"seva-console/internal/pkg/errs"
	"seva-console/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const ctxUserEmailKey = "user_email"

var ErrMissingBearer = errs.New("missing bearer token")

type AuthMiddleware struct {
	jwtService *jwt.Service
	logger     *slog.Logger
}

func NewAuthMiddleware(jwtService *jwt.Service, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, ErrMissingBearer, "Not authenticated", nil)
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			m.logger.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Could not validate credentials", nil)
			return
		}

		c.Set(ctxUserEmailKey, claims.Email)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetUserEmail(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxUserEmailKey)
	if !exists {
		return "", false
	}
	email, ok := v.(string)
	return email, ok && email != ""
}
