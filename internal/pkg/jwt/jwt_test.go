//go:build unit

package jwt_test

import (
	"encoding/base64"
	"testing"
	"time"

	"seva-console/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims gojwt.Claims) string {
	t.Helper()
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	require.NoError(t, err)
	return token
}

func TestIsExpired(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))

	cases := []struct {
		name  string
		token string
		want  bool
	}{
		{
			name:  "future exp is valid",
			token: signed(t, gojwt.RegisteredClaims{ExpiresAt: gojwt.NewNumericDate(now.Add(time.Hour))}),
			want:  false,
		},
		{
			name:  "past exp is expired",
			token: signed(t, gojwt.RegisteredClaims{ExpiresAt: gojwt.NewNumericDate(now.Add(-time.Second))}),
			want:  true,
		},
		{
			name:  "missing exp is expired",
			token: signed(t, gojwt.RegisteredClaims{Subject: "a@b.com"}),
			want:  true,
		},
		{
			name:  "malformed three segments",
			token: "abc.def.ghi",
			want:  true,
		},
		{
			name:  "claims segment is not base64 json",
			token: header + "." + base64.RawURLEncoding.EncodeToString([]byte("not json")) + ".sig",
			want:  true,
		},
		{
			name:  "two segments",
			token: header + ".e30",
			want:  true,
		},
		{
			name:  "empty",
			token: "",
			want:  true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, jwt.IsExpired(tc.token, now))
		})
	}
}

func TestExpiresAt(t *testing.T) {
	exp := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
	token := signed(t, gojwt.RegisteredClaims{ExpiresAt: gojwt.NewNumericDate(exp)})

	got, err := jwt.ExpiresAt(token)
	require.NoError(t, err)
	assert.True(t, exp.Equal(got))

	_, err = jwt.ExpiresAt("abc.def.ghi")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	_, err = jwt.ExpiresAt(signed(t, gojwt.RegisteredClaims{}))
	assert.ErrorIs(t, err, jwt.ErrMissingExpiry)
}

func TestService(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)

	token, err := svc.GenerateToken("a@b.com")
	require.NoError(t, err)
	assert.False(t, jwt.IsExpired(token, time.Now()))

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", claims.Email)

	_, err = jwt.NewService("other", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	expired, err := jwt.NewService("secret", -time.Minute).GenerateToken("a@b.com")
	require.NoError(t, err)
	_, err = svc.ValidateToken(expired)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}
