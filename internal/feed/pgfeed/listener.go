// Package pgfeed turns PostgreSQL NOTIFY traffic on the convo_changes channel into feed events.
package pgfeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/souqly/convo/internal/errs"
	"github.com/souqly/convo/internal/feed"
	"github.com/souqly/convo/internal/retry"
)

// Channel is the NOTIFY channel written by the change-feed trigger.
const Channel = "convo_changes"

// Conn is the part of *pgx.Conn the listener needs.
type Conn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	WaitForNotification(ctx context.Context) (*pgconn.Notification, error)
	Close(ctx context.Context) error
}

// RowFetcher loads rows that were too large to travel inside a notification.
type RowFetcher interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// errNotListening fails subscriptions opened while no LISTEN was active. Their
// owners resubscribe and reload, covering whatever was committed in between.
var errNotListening = errors.New("subscribed while the change feed was reconnecting")

// Listener owns one dedicated connection running LISTEN and fans notifications
// out to subscriptions. Presence is delegated.
type Listener struct {
	dial     func(ctx context.Context) (Conn, error)
	rows     RowFetcher
	presence feed.Presence
	policy   retry.Policy
	log      *zap.Logger

	mu        sync.Mutex
	subs      map[*feed.Subscription]struct{}
	listening bool
	// early holds subscriptions registered while listening was false.
	early map[*feed.Subscription]struct{}
}

var _ feed.Client = (*Listener)(nil)

// New builds a listener that dials dsn. rows is usually the shared pool.
func New(dsn string, rows RowFetcher, presence feed.Presence, policy retry.Policy, log *zap.Logger) *Listener {
	if log == nil {
		log = zap.NewNop()
	}
	return &Listener{
		dial: func(ctx context.Context) (Conn, error) {
			return pgx.Connect(ctx, dsn)
		},
		rows:     rows,
		presence: presence,
		policy:   policy,
		log:      log,
		subs:     make(map[*feed.Subscription]struct{}),
		early:    make(map[*feed.Subscription]struct{}),
	}
}

// Subscribe registers f. A subscription opened while the listener is not
// connected may already have missed changes; it is failed as soon as LISTEN
// is active again so its owner reloads.
func (l *Listener) Subscribe(ctx context.Context, f feed.Filter) (*feed.Subscription, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, ok := tables[f.Table]; !ok {
		return nil, errs.Validation("subscribe: unknown table %q", f.Table)
	}
	s := feed.NewSubscription(f, feed.DefaultBuffer, l.remove)
	l.mu.Lock()
	l.subs[s] = struct{}{}
	if !l.listening {
		l.early[s] = struct{}{}
	}
	l.mu.Unlock()
	return s, nil
}

func (l *Listener) JoinPresence(ctx context.Context, channel, key string) (feed.PresenceChannel, error) {
	if l.presence == nil {
		return nil, fmt.Errorf("%w: no presence backend configured", errs.ErrPresenceChannel)
	}
	return l.presence.JoinPresence(ctx, channel, key)
}

func (l *Listener) remove(s *feed.Subscription) {
	l.mu.Lock()
	delete(l.subs, s)
	delete(l.early, s)
	l.mu.Unlock()
}

// setListening flips the connection state. Going live fails the early subscriptions.
func (l *Listener) setListening(on bool) {
	l.mu.Lock()
	l.listening = on
	var early []*feed.Subscription
	if on {
		early = make([]*feed.Subscription, 0, len(l.early))
		for s := range l.early {
			early = append(early, s)
		}
		clear(l.early)
	}
	l.mu.Unlock()
	for _, s := range early {
		s.Fail(errNotListening)
	}
}

// Run listens until ctx ends. A lost connection fails every live subscription,
// whose owners resubscribe, and the listener reconnects with backoff.
// Run returns when ctx ends or the reconnect budget is spent.
func (l *Listener) Run(ctx context.Context) error {
	b := l.policy.Backoff()
	for {
		conn, err := l.connect(ctx)
		if err == nil {
			l.log.Info("change feed listening", zap.String("channel", Channel))
			b = l.policy.Backoff()
			l.setListening(true)
			err = l.listen(ctx, conn)
			l.setListening(false)
			closeCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			_ = conn.Close(closeCtx)
			cancel()
		}
		if ctx.Err() != nil {
			l.failAll(nil)
			return ctx.Err()
		}
		l.failAll(err)
		l.log.Warn("change feed connection lost", zap.Error(err))

		d, stop := b.Next()
		if stop {
			return fmt.Errorf("change feed: reconnect budget spent: %w", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(d):
		}
	}
}

func (l *Listener) connect(ctx context.Context) (Conn, error) {
	conn, err := l.dial(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := conn.Exec(ctx, "LISTEN "+Channel); err != nil {
		_ = conn.Close(ctx)
		return nil, err
	}
	return conn, nil
}

func (l *Listener) listen(ctx context.Context, conn Conn) error {
	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			return err
		}
		e, err := l.decode(ctx, n.Payload)
		if err != nil {
			l.log.Warn("change feed: bad notification", zap.Error(err), zap.Int("bytes", len(n.Payload)))
			continue
		}
		l.dispatch(e)
	}
}

// notification mirrors the JSON built by convo_notify_change().
type notification struct {
	Type  feed.EventType  `json:"type"`
	Table string          `json:"table"`
	Row   json.RawMessage `json:"row"`
	Old   json.RawMessage `json:"old"`
	ID    string          `json:"id"`
}

var tables = map[string]string{
	"messages":      `SELECT row_to_json(t) FROM messages t WHERE t.id=$1`,
	"conversations": `SELECT row_to_json(t) FROM conversations t WHERE t.id=$1`,
}

func (l *Listener) decode(ctx context.Context, payload string) (feed.Event, error) {
	var n notification
	if err := json.Unmarshal([]byte(payload), &n); err != nil {
		return feed.Event{}, err
	}
	q, ok := tables[n.Table]
	if !ok {
		return feed.Event{}, fmt.Errorf("unknown table %q", n.Table)
	}
	e := feed.Event{Type: n.Type, Table: n.Table, Row: nullable(n.Row), Old: nullable(n.Old)}
	if len(e.Row) > 0 || n.ID == "" {
		return e, nil
	}
	if n.Type == feed.Delete {
		e.Old, _ = json.Marshal(map[string]string{"id": n.ID})
		return e, nil
	}
	var raw []byte
	err := retry.Do(ctx, l.policy, func(ctx context.Context) error {
		return l.rows.QueryRow(ctx, q, n.ID).Scan(&raw)
	})
	if err != nil {
		return feed.Event{}, fmt.Errorf("fetch %s %s: %w", n.Table, n.ID, err)
	}
	e.Row = raw
	return e, nil
}

func nullable(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return raw
}

// dispatch never blocks: a subscription with a full buffer is failed with
// feed.ErrSlowConsumer and the rest still get e.
func (l *Listener) dispatch(e feed.Event) {
	l.mu.Lock()
	targets := make([]*feed.Subscription, 0, len(l.subs))
	for s := range l.subs {
		if s.Filter().Match(e) {
			targets = append(targets, s)
		}
	}
	l.mu.Unlock()
	for _, s := range targets {
		if !s.Offer(e) && errors.Is(s.Err(), feed.ErrSlowConsumer) {
			l.log.Warn("change feed: subscriber fell behind", zap.String("table", e.Table))
		}
	}
}

func (l *Listener) failAll(cause error) {
	l.mu.Lock()
	subs := make([]*feed.Subscription, 0, len(l.subs))
	for s := range l.subs {
		subs = append(subs, s)
	}
	clear(l.early)
	l.mu.Unlock()
	if cause == nil {
		cause = errors.New("listener stopped")
	}
	for _, s := range subs {
		s.Fail(cause)
	}
}
