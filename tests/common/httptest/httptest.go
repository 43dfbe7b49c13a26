//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// RawJSON is sent verbatim, for bodies that must not round-trip through a struct.
type RawJSON string

// PerformRequest serves one request against router. body is JSON encoded,
// except url.Values (form encoded) and RawJSON (sent as is). A non-empty
// authToken is sent as a bearer credential.
func PerformRequest(t *testing.T, router http.Handler, method, path string, body any, authToken string) *httptest.ResponseRecorder {
	t.Helper()

	reader, contentType := encode(t, body)
	req := httptest.NewRequest(method, path, reader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// PerformFormRequest posts form as the login endpoint expects it.
func PerformFormRequest(t *testing.T, router http.Handler, method, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	return PerformRequest(t, router, method, path, form, "")
}

func encode(t *testing.T, body any) (io.Reader, string) {
	t.Helper()

	switch b := body.(type) {
	case nil:
		return http.NoBody, ""
	case url.Values:
		return strings.NewReader(b.Encode()), "application/x-www-form-urlencoded"
	case RawJSON:
		return strings.NewReader(string(b)), "application/json"
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err, "failed to encode request body")
		return bytes.NewReader(data), "application/json"
	}
}

// DecodeResponseBody decodes the recorded JSON body into a T.
func DecodeResponseBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "failed to decode %s", w.Body.String())
	return out
}
