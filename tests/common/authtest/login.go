//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	reqdto "seva-console/internal/dto/request"
	resdto "seva-console/internal/dto/response"
	"seva-console/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginUser runs both sign-in steps against router and returns the access token.
func LoginUser(t *testing.T, router *gin.Engine, email, password, code string) string {
	t.Helper()

	w := httptest.PerformFormRequest(t, router, http.MethodPost, "/auth/login-init",
		reqdto.LoginRequest{Username: email, Password: password}.Form())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = httptest.PerformRequest(t, router, http.MethodPost, "/auth/verify-otp",
		reqdto.VerifyOTPRequest{Email: email, Code: code}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var token resdto.TokenResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &token)
	require.NotEmpty(t, token.AccessToken)
	return token.AccessToken
}
