//go:build e2e

package console_test

import (
	"encoding/json"
	"testing"

	resdto "seva-console/internal/dto/response"
	"seva-console/internal/pkg/config"
	"seva-console/tests/common/authtest"
	"seva-console/tests/e2e"

	"github.com/stretchr/testify/suite"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) TestSignIn() {
	s.Run("login then verify stores a credential", func() {
		s.SetupTest()

		code := s.Console.Run(s.T(), "", "login",
			"--email", s.StubConfig.UserEmail, "--password", s.StubConfig.UserPassword)
		s.Require().Equal(0, code, s.Console.Stderr.String())
		s.Contains(s.Console.Stderr.String(), "✓ OTP sent to "+s.StubConfig.UserEmail)
		s.Contains(s.Console.Stdout.String(), "sevactl verify --email "+s.StubConfig.UserEmail)

		code = s.Console.Run(s.T(), "", "verify",
			"--email", s.StubConfig.UserEmail, "--code", s.StubConfig.OTPCode)
		s.Require().Equal(0, code, s.Console.Stderr.String())
		s.Contains(s.Console.Stderr.String(), "✓ Login successful")

		_, ok := s.Console.Tokens().Valid()
		s.True(ok)
	})

	s.Run("wrong password is rejected without a sign-in hint", func() {
		s.SetupTest()

		code := s.Console.Run(s.T(), "", "login",
			"--email", s.StubConfig.UserEmail, "--password", "wrong-password")

		s.Equal(1, code)
		s.Contains(s.Console.Stderr.String(), "✗ Incorrect username or password")
		s.NotContains(s.Console.Stderr.String(), "Session expired")
	})

	s.Run("wrong code leaves the console signed out", func() {
		s.SetupTest()

		s.Require().Equal(0, s.Console.Run(s.T(), "", "login",
			"--email", s.StubConfig.UserEmail, "--password", s.StubConfig.UserPassword))
		code := s.Console.Run(s.T(), "", "verify",
			"--email", s.StubConfig.UserEmail, "--code", "000000")

		s.Equal(1, code)
		s.Contains(s.Console.Stderr.String(), "✗ Invalid OTP")
		_, ok := s.Console.Tokens().Get()
		s.False(ok)
	})
}

func (s *authSuite) TestMe() {
	s.Login()

	code := s.Console.Run(s.T(), "", "--json", "me")

	s.Require().Equal(0, code, s.Console.Stderr.String())
	var user resdto.User
	s.Require().NoError(json.Unmarshal(s.Console.Stdout.Bytes(), &user))
	s.Equal(s.StubConfig.UserEmail, user.Email)
	s.Equal(s.StubConfig.UserName, user.Name)
}

func (s *authSuite) TestLogout() {
	s.Login()

	code := s.Console.Run(s.T(), "", "logout")

	s.Require().Equal(0, code, s.Console.Stderr.String())
	s.Contains(s.Console.Stderr.String(), "✓ Logged out successfully")
	_, ok := s.Console.Tokens().Get()
	s.False(ok)
}

func (s *authSuite) TestRejectedCredential() {
	tests := []struct {
		name    string
		token   func() string
		message string
	}{
		{
			name: "expired credential is never sent",
			token: func() string {
				return authtest.NewJWTHelper(s.StubConfig).CreateExpiredToken(s.T(), s.StubConfig.UserEmail)
			},
			message: "✗ Not authenticated",
		},
		{
			name: "credential signed with another key",
			token: func() string {
				foreign := config.NewTestStubConfig()
				foreign.JWTSecret = "another-secret"
				return authtest.NewJWTHelper(foreign).GenerateToken(s.T(), s.StubConfig.UserEmail)
			},
			message: "✗ Could not validate credentials",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			s.Require().NoError(s.Console.Tokens().Set(tt.token()))

			code := s.Console.Run(s.T(), "", "book-seva", "list")

			s.Equal(1, code)
			s.Contains(s.Console.Stderr.String(), tt.message)
			s.Contains(s.Console.Stderr.String(), "Session expired or invalid")
			_, ok := s.Console.Tokens().Get()
			s.False(ok, "credential should be cleared after a 401")
		})
	}
}
