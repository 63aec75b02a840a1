// Package retry bounds store calls with per-attempt timeouts and capped exponential backoff.
package retry

import (
	"context"
	"time"

	goretry "github.com/sethvargo/go-retry"

	"github.com/souqly/convo/internal/errs"
)

// Policy configures timeouts and backoff for one class of operations.
type Policy struct {
	Timeout    time.Duration // per attempt; 0 disables
	Base       time.Duration // first backoff step
	Cap        time.Duration // upper bound of a single backoff step
	MaxRetries uint64        // retries after the first attempt
}

// DefaultPolicy is used for load/send/mark-read calls when nothing is configured.
var DefaultPolicy = Policy{
	Timeout:    5 * time.Second,
	Base:       100 * time.Millisecond,
	Cap:        10 * time.Second,
	MaxRetries: 3,
}

// Backoff returns a fresh backoff sequence for p.
func (p Policy) Backoff() goretry.Backoff {
	base := p.Base
	if base <= 0 {
		base = DefaultPolicy.Base
	}
	b := goretry.NewExponential(base)
	if p.Cap > 0 {
		b = goretry.WithCappedDuration(p.Cap, b)
	}
	b = goretry.WithJitterPercent(10, b)
	return goretry.WithMaxRetries(p.MaxRetries, b)
}

// Do calls fn until it succeeds, fails permanently, or the retry budget is spent.
// Errors that are not permanent come back wrapped in errs.ErrTransient.
func Do(ctx context.Context, p Policy, fn func(ctx context.Context) error) error {
	err := goretry.Do(ctx, p.Backoff(), func(ctx context.Context) error {
		attemptCtx, cancel := withTimeout(ctx, p.Timeout)
		defer cancel()

		err := fn(attemptCtx)
		if err == nil {
			return nil
		}
		if errs.IsPermanent(err) || ctx.Err() != nil {
			return err
		}
		return goretry.RetryableError(errs.Transient(err))
	})
	if err != nil && !errs.IsPermanent(err) {
		return errs.Transient(err)
	}
	return err
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
