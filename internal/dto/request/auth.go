package request

import "net/url"

// LoginRequest is sent form-url-encoded; username carries the email.
type LoginRequest struct {
	Username string `form:"username" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

func (r LoginRequest) Form() url.Values {
	return url.Values{
		"username": {r.Username},
		"password": {r.Password},
	}
}

type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,numeric"`
}
