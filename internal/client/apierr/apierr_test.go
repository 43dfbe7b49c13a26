//go:build unit

package apierr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"seva-console/internal/client/apierr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromResponse_StatusMapping(t *testing.T) {
	cases := []struct {
		status  int
		kind    apierr.Kind
		message string
	}{
		{http.StatusBadRequest, apierr.KindValidation, apierr.MsgValidation},
		{http.StatusUnauthorized, apierr.KindAuthentication, apierr.MsgAuthentication},
		{http.StatusForbidden, apierr.KindAuthorization, apierr.MsgAuthorization},
		{http.StatusNotFound, apierr.KindNotFound, apierr.MsgNotFound},
		{http.StatusTooManyRequests, apierr.KindRateLimited, apierr.MsgRateLimited},
		{http.StatusInternalServerError, apierr.KindServer, apierr.MsgServer},
		{http.StatusBadGateway, apierr.KindServer, apierr.MsgServer},
		{http.StatusServiceUnavailable, apierr.KindServer, apierr.MsgServer},
		{http.StatusGatewayTimeout, apierr.KindServer, apierr.MsgServer},
		{http.StatusConflict, apierr.KindGeneric, apierr.MsgGeneric},
		{http.StatusNotImplemented, apierr.KindGeneric, apierr.MsgGeneric},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d", tc.status), func(t *testing.T) {
			err := apierr.FromResponse(tc.status, nil, nil)
			assert.Equal(t, tc.kind, err.Kind)
			assert.Equal(t, tc.status, err.Status)
			assert.Equal(t, tc.message, err.Message)
		})
	}
}

func TestFromResponse_Body(t *testing.T) {
	t.Run("validation details from errors object", func(t *testing.T) {
		err := apierr.FromResponse(http.StatusBadRequest, nil,
			[]byte(`{"message":"bad input","errors":{"mobile_no":"invalid"}}`))

		assert.Equal(t, apierr.KindValidation, err.Kind)
		assert.Equal(t, "bad input", err.Message)
		assert.Equal(t, "invalid", err.Details["mobile_no"])
	})

	t.Run("validation details from detail list", func(t *testing.T) {
		err := apierr.FromResponse(http.StatusBadRequest, nil,
			[]byte(`{"detail":[{"loc":["body","quantity"],"msg":"must be positive"}]}`))

		assert.Equal(t, apierr.MsgValidation, err.Message)
		assert.Equal(t, "must be positive", err.Details["quantity"])
	})

	t.Run("list values are joined", func(t *testing.T) {
		err := apierr.FromResponse(http.StatusBadRequest, nil,
			[]byte(`{"errors":{"price":["required","must be a number"]}}`))

		assert.Equal(t, "required; must be a number", err.Details["price"])
	})

	t.Run("message keys in priority order", func(t *testing.T) {
		cases := map[string]string{
			`{"msg":"from msg"}`:                 "from msg",
			`{"error":"from error"}`:             "from error",
			`{"error":{"message":"nested"}}`:     "nested",
			`{"detail":"from detail"}`:           "from detail",
			`{"message":"first","msg":"second"}`: "first",
			`{"message":"","msg":"skip empty"}`:  "skip empty",
		}
		for body, want := range cases {
			err := apierr.FromResponse(http.StatusConflict, nil, []byte(body))
			assert.Equal(t, want, err.Message, body)
		}
	})

	t.Run("code as string or number", func(t *testing.T) {
		assert.Equal(t, "E42", apierr.FromResponse(http.StatusForbidden, nil, []byte(`{"code":"E42"}`)).Code)
		assert.Equal(t, "42", apierr.FromResponse(http.StatusForbidden, nil, []byte(`{"code":42}`)).Code)
	})

	t.Run("non json body falls back", func(t *testing.T) {
		err := apierr.FromResponse(http.StatusBadGateway, nil, []byte("<html>bad gateway</html>"))
		assert.Equal(t, apierr.MsgServer, err.Message)
	})

	t.Run("retry after", func(t *testing.T) {
		h := http.Header{}
		h.Set("Retry-After", "5")
		err := apierr.FromResponse(http.StatusTooManyRequests, h, nil)
		assert.Equal(t, 5*time.Second, err.RetryAfter)
		assert.False(t, err.Retryable())
	})
}

func TestError_Matching(t *testing.T) {
	err := fmt.Errorf("list: %w", apierr.FromResponse(http.StatusNotFound, nil, nil))

	assert.True(t, errors.Is(err, apierr.ErrNotFound))
	assert.False(t, errors.Is(err, apierr.ErrServer))
	assert.Equal(t, apierr.KindNotFound, apierr.KindOf(err))

	apiErr, ok := apierr.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)

	assert.Equal(t, apierr.KindGeneric, apierr.KindOf(errors.New("plain")))
}

func TestError_Retryable(t *testing.T) {
	retryable := map[apierr.Kind]bool{
		apierr.KindNetwork:        true,
		apierr.KindServer:         true,
		apierr.KindValidation:     false,
		apierr.KindAuthentication: false,
		apierr.KindAuthorization:  false,
		apierr.KindNotFound:       false,
		apierr.KindRateLimited:    false,
		apierr.KindGeneric:        false,
	}
	for kind, want := range retryable {
		assert.Equal(t, want, (&apierr.Error{Kind: kind}).Retryable(), kind.String())
	}
}

func TestNetwork(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := apierr.Network(cause)

	assert.Equal(t, apierr.KindNetwork, err.Kind)
	assert.Equal(t, 0, err.Status)
	assert.Equal(t, apierr.MsgNetwork, err.Message)
	assert.ErrorIs(t, err, cause)
	assert.True(t, err.Notifiable())
	assert.False(t, apierr.FromResponse(http.StatusUnauthorized, nil, nil).Notifiable())
}

func TestWrap(t *testing.T) {
	assert.Nil(t, apierr.Wrap(nil))

	original := apierr.FromResponse(http.StatusForbidden, nil, nil)
	assert.Same(t, original, apierr.Wrap(fmt.Errorf("ctx: %w", original)))

	wrapped := apierr.Wrap(errors.New("decode"))
	assert.Equal(t, apierr.KindGeneric, wrapped.Kind)
}
