//go:build unit || e2e

package httptest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertCORSAllowed checks that origin was echoed back, as gin-contrib/cors
// does for an admitted origin.
func AssertCORSAllowed(t *testing.T, w *httptest.ResponseRecorder, origin string) {
	t.Helper()
	assert.Equal(t, origin, w.Header().Get("Access-Control-Allow-Origin"),
		"origin %s should be admitted", origin)
}

// AssertCORSRejected checks the request was refused before reaching a handler.
func AssertCORSRejected(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
