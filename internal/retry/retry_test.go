package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/souqly/convo/internal/errs"
)

var fast = Policy{Timeout: 50 * time.Millisecond, Base: time.Millisecond, Cap: 2 * time.Millisecond, MaxRetries: 3}

func TestDo_RetriesTransientUntilSuccess(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fast, func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("connection refused")
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 3, calls)
}

func TestDo_StopsOnPermanent(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fast, func(context.Context) error {
		calls++
		return errs.Validation("empty message")
	})
	require.ErrorIs(t, err, errs.ErrValidation)
	require.False(t, errors.Is(err, errs.ErrTransient))
	require.Equal(t, 1, calls)
}

func TestDo_ExhaustedBudgetIsTransient(t *testing.T) {
	cause := errors.New("db down")
	calls := 0
	err := Do(context.Background(), fast, func(context.Context) error {
		calls++
		return cause
	})
	require.ErrorIs(t, err, errs.ErrTransient)
	require.ErrorIs(t, err, cause)
	require.Equal(t, int(fast.MaxRetries)+1, calls)
}

func TestDo_PerAttemptTimeout(t *testing.T) {
	p := fast
	p.MaxRetries = 1
	err := Do(context.Background(), p, func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	require.ErrorIs(t, err, errs.ErrTransient)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDo_ParentCancelStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := Do(ctx, fast, func(context.Context) error {
		calls++
		cancel()
		return errors.New("boom")
	})
	require.Error(t, err)
	require.Equal(t, 1, calls)
}
