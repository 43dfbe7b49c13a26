package response

type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// LoginInitResponse is either an OTP-pending acknowledgment (Msg) or, when the
// server skips the second step, a credential.
type LoginInitResponse struct {
	Msg         string `json:"msg,omitempty"`
	AccessToken string `json:"access_token,omitempty"`
	TokenType   string `json:"token_type,omitempty"`
}

func (r LoginInitResponse) OTPPending() bool {
	return r.AccessToken == ""
}

type MessageResponse struct {
	Msg string `json:"msg"`
}
