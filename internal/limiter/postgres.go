package limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// PG is a PostgreSQL-backed fixed-window limiter shared by every server instance.
type PG struct {
	q      querier
	window time.Duration
	limits map[string]int
	now    func() time.Time
}

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// NewPG constructs a limiter allowing limits[action] hits per window. Actions
// without a positive limit are not counted.
func NewPG(q querier, window time.Duration, limits map[string]int) *PG {
	return &PG{q: q, window: window, limits: limits, now: time.Now}
}

const hitSQL = `
INSERT INTO rate_limits (user_id, action, window_start, hits)
VALUES ($1, $2, now(), 1)
ON CONFLICT (user_id, action) DO UPDATE
SET
  hits = CASE WHEN now() - rate_limits.window_start > $3::interval THEN 1 ELSE rate_limits.hits + 1 END,
  window_start = CASE WHEN now() - rate_limits.window_start > $3::interval THEN now() ELSE rate_limits.window_start END
RETURNING hits, window_start`

// Hit records one action for userID.
func (l *PG) Hit(ctx context.Context, userID uuid.UUID, action string) (bool, time.Duration, error) {
	limit := l.limits[action]
	if limit <= 0 {
		return true, 0, nil
	}
	var (
		hits  int
		start time.Time
	)
	if err := l.q.QueryRow(ctx, hitSQL, userID.String(), action, l.window).Scan(&hits, &start); err != nil {
		return false, 0, fmt.Errorf("limiter: %w", err)
	}
	if hits <= limit {
		return true, 0, nil
	}
	retry := start.Add(l.window).Sub(l.now())
	if retry < time.Second {
		retry = time.Second
	}
	return false, retry, nil
}

var (
	_ Limiter = (*PG)(nil)
	_ Limiter = Unlimited{}
)
