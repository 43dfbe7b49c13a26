// Package transport executes API calls: auth header injection, body encoding,
// envelope unwrapping, error classification, retry and request coalescing.
package transport

//go:generate mockgen -source=client.go -destination=../../../tests/mock/transport/client.go -package=transportmock

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"seva-console/internal/client/apierr"
	"seva-console/internal/client/coalesce"
	"seva-console/internal/client/loading"
	"seva-console/internal/client/notify"
	"seva-console/internal/client/tokenstore"
	"seva-console/internal/pkg/clock"
	"seva-console/internal/pkg/config"
	"seva-console/internal/pkg/errs"
)

const (
	PathLoginInit = "/auth/login-init"
	PathVerifyOTP = "/auth/verify-otp"
)

// Requester is what the domain services depend on.
type Requester interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}

// Navigator moves the user back to the sign-in entry point after a 401.
type Navigator interface {
	OnEntryView() bool
	RedirectToLogin()
}

// FormEncoder bodies are sent form-url-encoded on the login endpoint.
type FormEncoder interface {
	Form() url.Values
}

type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     *tokenstore.Store
	loading    *loading.Registry
	coalescer  *coalesce.Coalescer
	retry      RetryPolicy
	notifier   notify.Notifier
	navigator  Navigator
	logger     *slog.Logger
}

func NewClient(
	cfg config.APIConfig,
	tokens *tokenstore.Store,
	registry *loading.Registry,
	coalescer *coalesce.Coalescer,
	notifier notify.Notifier,
	navigator Navigator,
	clk clock.Clock,
	logger *slog.Logger,
) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		tokens:    tokens,
		loading:   registry,
		coalescer: coalescer,
		retry:     NewRetryPolicy(cfg, clk, logger),
		notifier:  notifier,
		navigator: navigator,
		logger:    logger,
	}
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query}, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body}, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: path, Body: body}, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: path}, out)
}

// Do runs one logical call. The returned error, when non-nil, is always an *apierr.Error.
func (c *Client) Do(ctx context.Context, r Request, out any) error {
	if r.Method == "" {
		r.Method = http.MethodGet
	}

	release := c.loading.Track(loading.Key(r.Method, r.Path))
	defer release()

	body, contentType, err := encodeBody(r)
	if err != nil {
		return c.fail(ctx, r, apierr.Wrap(errs.Wrap(err, "encode request body")))
	}

	signature := coalesce.Signature(r.Method, r.Path, r.Query, body)
	sharedCtx := context.WithoutCancel(ctx)

	var payload []byte
	apiErr := c.retry.Do(ctx, func(attempt int) error {
		p, shared, err := coalesce.Dedupe(ctx, c.coalescer, signature, func() ([]byte, error) {
			return c.send(sharedCtx, r, body, contentType, attempt)
		})
		if err != nil {
			if _, ok := apierr.As(err); !ok {
				// the caller's own context ended while waiting
				return apierr.Network(err)
			}
			return err
		}
		if shared {
			c.logger.Debug("request coalesced", "method", r.Method, "path", r.Path)
		}
		payload = p
		return nil
	})
	if apiErr != nil {
		return c.fail(ctx, r, apiErr)
	}

	if out == nil || len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return c.fail(ctx, r, apierr.Wrap(errs.Wrap(err, "decode response")))
	}
	return nil
}

// fail is the single exit for terminal errors: log and notify, then hand back.
// Callers that abandoned the call are not notified.
func (c *Client) fail(ctx context.Context, r Request, apiErr *apierr.Error) error {
	level := slog.LevelWarn
	if apiErr.Kind == apierr.KindServer || apiErr.Kind == apierr.KindNetwork {
		level = slog.LevelError
	}
	c.logger.Log(ctx, level, "request failed",
		"method", r.Method,
		"path", r.Path,
		"kind", apiErr.Kind.String(),
		"status", apiErr.Status,
		"message", apiErr.Message,
	)

	if apiErr.Notifiable() && c.notifier != nil && ctx.Err() == nil {
		c.notifier.Error(apiErr.Message)
	}
	return apiErr
}

func (c *Client) handleUnauthorized() {
	if err := c.tokens.Clear(); err != nil {
		c.logger.Warn("failed to clear token after 401", "error", err.Error())
	}
	if c.navigator != nil && !c.navigator.OnEntryView() {
		c.navigator.RedirectToLogin()
	}
}
