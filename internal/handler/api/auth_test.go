//go:build unit

package api_test

import (
	"net/http"
	"testing"

	reqdto "seva-console/internal/dto/request"
	resdto "seva-console/internal/dto/response"
	"seva-console/tests/common/authtest"
	"seva-console/tests/common/builder"
	"seva-console/tests/common/httptest"
	"seva-console/tests/common/testutil"

	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	env stubEnv
	jwt *authtest.JWTHelper
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) SetupTest() {
	s.env = newStubEnv(s.T())
	s.jwt = authtest.NewJWTHelper(s.env.cfg)
}

func (s *AuthHandlerTestSuite) TestLoginInit() {
	login := builder.NewAuthBuilder().BuildLogin()

	s.Run("success: correct password answers with an OTP message", func() {
		w := httptest.PerformFormRequest(s.T(), s.env.router, http.MethodPost, "/auth/login-init", login.Form())

		var res resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal("OTP sent to a@b.com", res.Msg)
	})

	s.Run("error: wrong password is 401", func() {
		bad := reqdto.LoginRequest{Username: login.Username, Password: "wrong"}
		w := httptest.PerformFormRequest(s.T(), s.env.router, http.MethodPost, "/auth/login-init", bad.Form())

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Incorrect username or password")
	})

	s.Run("error: missing password", func() {
		form := login.Form()
		form.Del("password")
		w := httptest.PerformFormRequest(s.T(), s.env.router, http.MethodPost, "/auth/login-init", form)

		body := httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Validation failed")
		s.Equal("is required", body.Errors["password"])
	})
}

func (s *AuthHandlerTestSuite) TestVerifyOTP() {
	auth := builder.NewAuthBuilder()

	s.Run("error: no login in progress", func() {
		w := httptest.PerformRequest(s.T(), s.env.router, http.MethodPost, "/auth/verify-otp", auth.BuildVerify(), "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "No login in progress")
	})

	s.Run("validation: field errors are keyed by wire name", func() {
		body := testutil.DtoMap(s.T(), auth.BuildVerify(), testutil.Field("email", "not-an-email"), testutil.Field("code", nil))
		w := httptest.PerformRequest(s.T(), s.env.router, http.MethodPost, "/auth/verify-otp", body, "")

		res := httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Validation failed")
		s.Equal(map[string]string{
			"email": "must be a valid email address",
			"code":  "is required",
		}, res.Errors)
	})

	s.Run("success: two steps issue a usable bearer token", func() {
		token := authtest.LoginUser(s.T(), s.env.router, auth.Email, auth.Password, auth.Code)

		w := httptest.PerformRequest(s.T(), s.env.router, http.MethodGet, "/auth/me", nil, token)
		var me resdto.User
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &me)
		s.Equal(resdto.User{Email: "a@b.com", Name: s.env.cfg.UserName}, me)
	})

	s.Run("error: wrong code", func() {
		w := httptest.PerformFormRequest(s.T(), s.env.router, http.MethodPost, "/auth/login-init", auth.BuildLogin().Form())
		s.Require().Equal(http.StatusOK, w.Code)

		wrong := reqdto.VerifyOTPRequest{Email: auth.Email, Code: "000000"}
		w = httptest.PerformRequest(s.T(), s.env.router, http.MethodPost, "/auth/verify-otp", wrong, "")
		res := httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid OTP")
		s.Equal("is incorrect", res.Errors["code"])
	})
}

func (s *AuthHandlerTestSuite) TestProtectedRoutes() {
	cases := []struct {
		name    string
		token   func() string
		message string
	}{
		{name: "missing token", token: func() string { return "" }, message: "Not authenticated"},
		{name: "garbage token", token: func() string { return "abc.def.ghi" }, message: "Could not validate credentials"},
		{name: "expired token", token: func() string { return s.jwt.CreateExpiredToken(s.T(), "a@b.com") }, message: "Could not validate credentials"},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			w := httptest.PerformRequest(s.T(), s.env.router, http.MethodGet, "/book-seva", nil, tc.token())
			httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, tc.message)
		})
	}

	s.Run("logout with a valid token", func() {
		w := httptest.PerformRequest(s.T(), s.env.router, http.MethodPost, "/auth/logout", nil, s.jwt.GenerateToken(s.T(), "a@b.com"))
		var res resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal("Logged out", res.Msg)
	})
}
