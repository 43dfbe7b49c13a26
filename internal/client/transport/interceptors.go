package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"seva-console/internal/client/apierr"
	"seva-console/internal/pkg/errs"
)

const (
	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"
)

var ErrFormBodyRequired = errs.New("login body must be form encodable")

// isAuthBootstrap endpoints never carry a (possibly stale) bearer token.
func isAuthBootstrap(path string) bool {
	return path == PathLoginInit || path == PathVerifyOTP
}

// encodeBody picks the wire format per endpoint: form for the initial login,
// JSON everywhere else.
func encodeBody(r Request) ([]byte, string, error) {
	if r.Body == nil {
		return nil, "", nil
	}

	if r.Path == PathLoginInit {
		switch b := r.Body.(type) {
		case url.Values:
			return []byte(b.Encode()), contentTypeForm, nil
		case FormEncoder:
			return []byte(b.Form().Encode()), contentTypeForm, nil
		default:
			return nil, "", ErrFormBodyRequired
		}
	}

	data, err := json.Marshal(r.Body)
	if err != nil {
		return nil, "", err
	}
	return data, contentTypeJSON, nil
}

func (c *Client) buildURL(r Request) string {
	u := c.baseURL + r.Path
	if len(r.Query) > 0 {
		u += "?" + r.Query.Encode()
	}
	return u
}

// send performs one network round trip and returns the unwrapped success payload.
func (c *Client) send(ctx context.Context, r Request, body []byte, contentType string, attempt int) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, c.buildURL(r), reader)
	if err != nil {
		return nil, apierr.Wrap(errs.Wrap(err, "create request"))
	}
	req.Header.Set("Accept", contentTypeJSON)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if !isAuthBootstrap(r.Path) {
		if token, ok := c.tokens.Valid(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request attempt failed",
			"method", r.Method, "path", r.Path, "attempt", attempt+1, "error", err.Error())
		return nil, apierr.Network(err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierr.Network(errs.Wrap(err, "read response body"))
	}

	c.logger.Debug("request attempt",
		"method", r.Method,
		"path", r.Path,
		"attempt", attempt+1,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return unwrapEnvelope(data), nil
	}

	apiErr := apierr.FromResponse(resp.StatusCode, resp.Header, data)
	if resp.StatusCode == http.StatusUnauthorized {
		c.handleUnauthorized()
	}
	return nil, apiErr
}

// unwrapEnvelope returns the value under a top-level "data" key when the body
// is an object that has one; otherwise the body as-is.
func unwrapEnvelope(body []byte) []byte {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return trimmed
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return trimmed
	}
	data, ok := envelope["data"]
	if !ok {
		return trimmed
	}
	return data
}
