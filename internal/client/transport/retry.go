package transport

import (
	"context"
	"log/slog"
	"time"

	"seva-console/internal/client/apierr"
	"seva-console/internal/pkg/clock"
	"seva-console/internal/pkg/config"
)

// RetryPolicy re-runs an operation after Network and Server failures with
// delays of BaseDelay, 2*BaseDelay, 4*BaseDelay, ... for at most MaxRetries
// retries after the first attempt.
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
	Clock      clock.Clock
	Logger     *slog.Logger
}

func NewRetryPolicy(cfg config.APIConfig, clk clock.Clock, logger *slog.Logger) RetryPolicy {
	return RetryPolicy{
		MaxRetries: cfg.RetryCount,
		BaseDelay:  cfg.RetryBaseDelay,
		Clock:      clk,
		Logger:     logger,
	}
}

// Delay returns the wait before retry number n (0-based).
func (p RetryPolicy) Delay(n int) time.Duration {
	return p.BaseDelay << n
}

// Do returns nil or an *apierr.Error carrying the last attempt's classification.
func (p RetryPolicy) Do(ctx context.Context, op func(attempt int) error) *apierr.Error {
	for attempt := 0; ; attempt++ {
		err := op(attempt)
		if err == nil {
			return nil
		}

		apiErr := apierr.Wrap(err)
		if !apiErr.Retryable() || attempt >= p.MaxRetries || ctx.Err() != nil {
			return apiErr
		}

		delay := p.Delay(attempt)
		if p.Logger != nil {
			p.Logger.Warn("retrying request",
				"attempt", attempt+1,
				"max_retries", p.MaxRetries,
				"delay", delay,
				"kind", apiErr.Kind.String(),
				"status", apiErr.Status,
			)
		}

		select {
		case <-ctx.Done():
			return apiErr
		case <-p.Clock.After(delay):
		}
	}
}
