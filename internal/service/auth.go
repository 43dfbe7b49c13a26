package service

import (
	"context"
	"log/slog"

	"seva-console/internal/client/apierr"
	"seva-console/internal/client/notify"
	"seva-console/internal/client/tokenstore"
	"seva-console/internal/client/transport"
	"seva-console/internal/dto/request"
	"seva-console/internal/dto/response"
	"seva-console/internal/pkg/errs"
)

const (
	PathMe     = "/auth/me"
	PathLogout = "/auth/logout"
)

var (
	ErrMissingCredential = errs.New("verification response carried no access token")
	ErrStoreCredential   = errs.New("failed to persist access token")
)

type AuthService interface {
	LoginInit(ctx context.Context, req request.LoginRequest) (*response.LoginInitResponse, error)
	VerifyOTP(ctx context.Context, req request.VerifyOTPRequest) (*response.TokenResponse, error)
	Me(ctx context.Context) (*response.User, error)
	Logout(ctx context.Context) error
	IsAuthenticated() bool
}

type authServiceImpl struct {
	client   transport.Requester
	tokens   *tokenstore.Store
	notifier notify.Notifier
	logger   *slog.Logger
}

func NewAuthService(client transport.Requester, tokens *tokenstore.Store, notifier notify.Notifier, logger *slog.Logger) AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &authServiceImpl{
		client:   client,
		tokens:   tokens,
		notifier: notifier,
		logger:   logger,
	}
}

func (a *authServiceImpl) LoginInit(ctx context.Context, req request.LoginRequest) (*response.LoginInitResponse, error) {
	var out response.LoginInitResponse
	if err := a.client.Post(ctx, transport.PathLoginInit, req, &out); err != nil {
		return nil, err
	}

	if !out.OTPPending() {
		if err := a.storeToken(out.AccessToken); err != nil {
			return nil, err
		}
		a.notifier.Success("Login successful")
		return &out, nil
	}

	msg := out.Msg
	if msg == "" {
		msg = "OTP sent to your email"
	}
	a.notifier.Success(msg)
	return &out, nil
}

func (a *authServiceImpl) VerifyOTP(ctx context.Context, req request.VerifyOTPRequest) (*response.TokenResponse, error) {
	var out response.TokenResponse
	if err := a.client.Post(ctx, transport.PathVerifyOTP, req, &out); err != nil {
		return nil, err
	}
	if out.AccessToken == "" {
		return nil, a.reject(apierr.Wrap(ErrMissingCredential))
	}
	if err := a.storeToken(out.AccessToken); err != nil {
		return nil, err
	}

	a.notifier.Success("Login successful")
	return &out, nil
}

func (a *authServiceImpl) Me(ctx context.Context) (*response.User, error) {
	var out response.User
	if err := a.client.Get(ctx, PathMe, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout clears the local credential even when the server call fails.
func (a *authServiceImpl) Logout(ctx context.Context) error {
	defer func() {
		if err := a.tokens.Clear(); err != nil {
			a.logger.Warn("failed to clear access token", "error", err.Error())
		}
	}()

	if err := a.client.Post(ctx, PathLogout, nil, nil); err != nil {
		return err
	}
	a.notifier.Success("Logged out successfully")
	return nil
}

func (a *authServiceImpl) IsAuthenticated() bool {
	_, ok := a.tokens.Valid()
	return ok
}

func (a *authServiceImpl) storeToken(token string) error {
	if err := a.tokens.Set(token); err != nil {
		return a.reject(apierr.Wrap(errs.Mark(errs.Wrap(err, "store access token"), ErrStoreCredential)))
	}
	return nil
}

func (a *authServiceImpl) reject(apiErr *apierr.Error) error {
	a.logger.Warn("login failed", "error", apiErr.Error())
	a.notifier.Error(apiErr.Message)
	return apiErr
}
