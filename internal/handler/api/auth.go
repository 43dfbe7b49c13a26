package api

import (
	"net/http"

	reqdto "seva-console/internal/dto/request"
	resdto "seva-console/internal/dto/response"
	"seva-console/internal/handler/httperr"
	"seva-console/internal/handler/middleware"
	"seva-console/internal/infra/memstore"
	"seva-console/internal/pkg/errs"
	"seva-console/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	users      *memstore.UserStore
	jwtService *jwt.Service
}

func NewAuthHandler(users *memstore.UserStore, jwtService *jwt.Service) *AuthHandler {
	return &AuthHandler{
		users:      users,
		jwtService: jwtService,
	}
}

// LoginInit checks the password and starts the one-time-code step.
func (h *AuthHandler) LoginInit(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.AbortWithBindError(c, http.StatusBadRequest, err)
		return
	}

	if err := h.users.BeginLogin(req.Username, req.Password); err != nil {
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Incorrect username or password", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Msg: "OTP sent to " + req.Username})
}

func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req reqdto.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, http.StatusBadRequest, err)
		return
	}

	profile, err := h.users.CompleteLogin(req.Email, req.Code)
	if err != nil {
		switch {
		case errs.Is(err, memstore.ErrInvalidOTP):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid OTP", map[string]string{"code": "is incorrect"})
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "No login in progress for this email", nil)
		}
		return
	}

	token, err := h.jwtService.GenerateToken(profile.Email)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.TokenResponse{AccessToken: token, TokenType: jwt.TokenType})
}

func (h *AuthHandler) Me(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, middleware.ErrMissingBearer, "Not authenticated", nil)
		return
	}

	profile, err := h.users.Find(email)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Logout is stateless; the client drops its credential.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.MessageResponse{Msg: "Logged out"})
}
