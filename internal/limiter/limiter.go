// Package limiter throttles per-user actions such as sending messages.
package limiter

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Actions throttled by the server.
const (
	ActionSend  = "send"
	ActionStart = "start"
)

// Limiter counts actions per user in a fixed window.
type Limiter interface {
	// Hit records one action and reports whether it is within budget, and if not, when to retry.
	Hit(ctx context.Context, userID uuid.UUID, action string) (allowed bool, retryAfter time.Duration, err error)
}

// Unlimited allows everything.
type Unlimited struct{}

func (Unlimited) Hit(context.Context, uuid.UUID, string) (bool, time.Duration, error) {
	return true, 0, nil
}
