//go:build unit || e2e

package builder

import (
	reqdto "seva-console/internal/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
	Code     string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "a@b.com",
		Password: "secret1",
		Code:     "123456",
	}
}

func (a *AuthBuilder) BuildLogin() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Username: a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildVerify() reqdto.VerifyOTPRequest {
	return reqdto.VerifyOTPRequest{
		Email: a.Email,
		Code:  a.Code,
	}
}
