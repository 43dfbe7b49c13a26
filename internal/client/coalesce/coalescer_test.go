//go:build unit

package coalesce_test

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"seva-console/internal/client/coalesce"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignature(t *testing.T) {
	base := coalesce.Signature(http.MethodGet, "/book-seva", url.Values{"skip": {"0"}, "limit": {"20"}}, nil)

	same := coalesce.Signature("get", "/book-seva", url.Values{"limit": {"20"}, "skip": {"0"}}, nil)
	assert.Equal(t, base, same, "method case and param order do not matter")

	differing := []string{
		coalesce.Signature(http.MethodPost, "/book-seva", url.Values{"skip": {"0"}, "limit": {"20"}}, nil),
		coalesce.Signature(http.MethodGet, "/expenses", url.Values{"skip": {"0"}, "limit": {"20"}}, nil),
		coalesce.Signature(http.MethodGet, "/book-seva", url.Values{"skip": {"20"}, "limit": {"20"}}, nil),
		coalesce.Signature(http.MethodGet, "/book-seva", url.Values{"skip": {"0"}, "limit": {"20"}}, []byte(`{}`)),
	}
	for _, sig := range differing {
		assert.NotEqual(t, base, sig)
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	require.Eventually(t, cond, time.Second, time.Millisecond)
}

func TestDedupe_SharesOneExecution(t *testing.T) {
	c := coalesce.New()
	var calls atomic.Int32
	release := make(chan struct{})

	fn := func() (string, error) {
		calls.Add(1)
		<-release
		return "result", nil
	}

	const callers = 5
	var wg sync.WaitGroup
	results := make([]string, callers)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, _, err := coalesce.Dedupe(context.Background(), c, "sig", fn)
			assert.NoError(t, err)
			results[i] = v
		}()
	}

	waitFor(t, func() bool { return calls.Load() == 1 })
	// give the remaining callers time to attach to the in-flight call
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, r := range results {
		assert.Equal(t, "result", r)
	}
	assert.Equal(t, int64(0), c.InFlight())
}

func TestDedupe_SharesFailure(t *testing.T) {
	c := coalesce.New()
	boom := errors.New("boom")
	var calls atomic.Int32
	release := make(chan struct{})

	fn := func() (int, error) {
		calls.Add(1)
		<-release
		return 0, boom
	}

	errsCh := make(chan error, 2)
	for range 2 {
		go func() {
			_, _, err := coalesce.Dedupe(context.Background(), c, "sig", fn)
			errsCh <- err
		}()
	}

	waitFor(t, func() bool { return calls.Load() == 1 })
	time.Sleep(50 * time.Millisecond)
	close(release)

	assert.ErrorIs(t, <-errsCh, boom)
	assert.ErrorIs(t, <-errsCh, boom)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDedupe_EntryRemovedAfterSettle(t *testing.T) {
	c := coalesce.New()
	var calls atomic.Int32
	fn := func() (int, error) {
		return int(calls.Add(1)), nil
	}

	first, _, err := coalesce.Dedupe(context.Background(), c, "sig", fn)
	require.NoError(t, err)
	second, _, err := coalesce.Dedupe(context.Background(), c, "sig", fn)
	require.NoError(t, err)

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second, "sequential calls execute again")

	_, _, err = coalesce.Dedupe(context.Background(), c, "fail", func() (int, error) {
		return 0, errors.New("x")
	})
	require.Error(t, err)
	v, _, err := coalesce.Dedupe(context.Background(), c, "fail", func() (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, v, "failed entries are removed too")
}

func TestDedupe_DistinctSignaturesRunSeparately(t *testing.T) {
	c := coalesce.New()
	var calls atomic.Int32
	release := make(chan struct{})
	fn := func() (int, error) {
		calls.Add(1)
		<-release
		return 0, nil
	}

	var wg sync.WaitGroup
	for _, sig := range []string{"a", "b"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, _ = coalesce.Dedupe(context.Background(), c, sig, fn)
		}()
	}

	waitFor(t, func() bool { return calls.Load() == 2 })
	close(release)
	wg.Wait()
}

func TestDedupe_CallerContextEndsEarly(t *testing.T) {
	c := coalesce.New()
	release := make(chan struct{})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := coalesce.Dedupe(ctx, c, "sig", func() (int, error) {
		<-release
		return 1, nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}
