// Package coalesce collapses identical concurrent requests into one network call.
package coalesce

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

type Coalescer struct {
	group    singleflight.Group
	inFlight atomic.Int64
}

func New() *Coalescer {
	return &Coalescer{}
}

// Signature is deterministic: url.Values.Encode sorts keys and callers pass
// the exact body bytes that go on the wire.
func Signature(method, rawURL string, query url.Values, body []byte) string {
	sum := sha256.Sum256(body)
	return strings.Join([]string{
		strings.ToUpper(method),
		rawURL,
		query.Encode(),
		hex.EncodeToString(sum[:]),
	}, "|")
}

// InFlight is the number of distinct signatures currently executing.
func (c *Coalescer) InFlight() int64 {
	return c.inFlight.Load()
}

// Dedupe runs fn unless a call with the same signature is already running, in
// which case the caller waits for that call's result. The entry is forgotten
// when fn returns, success or failure. A caller whose ctx ends stops waiting;
// the shared call keeps running for the others.
func Dedupe[T any](ctx context.Context, c *Coalescer, signature string, fn func() (T, error)) (T, bool, error) {
	ch := c.group.DoChan(signature, func() (any, error) {
		c.inFlight.Add(1)
		defer c.inFlight.Add(-1)
		return fn()
	})

	select {
	case res := <-ch:
		var zero T
		if res.Err != nil {
			return zero, res.Shared, res.Err
		}
		v, ok := res.Val.(T)
		if !ok {
			return zero, res.Shared, nil
		}
		return v, res.Shared, nil
	case <-ctx.Done():
		var zero T
		return zero, false, ctx.Err()
	}
}
