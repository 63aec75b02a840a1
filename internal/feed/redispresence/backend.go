// Package redispresence implements presence channels on Redis: each tracked session is a
// key with a TTL, and members rebuild a full snapshot whenever the channel changes.
package redispresence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	redis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/souqly/convo/internal/errs"
	"github.com/souqly/convo/internal/feed"
)

// Backend joins presence channels backed by rdb.
type Backend struct {
	rdb    redis.UniversalClient
	ttl    time.Duration
	resync time.Duration
	log    *zap.Logger
}

var _ feed.Presence = (*Backend)(nil)

// Connect parses url and pings the server.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis: parse url: %w", err)
	}
	c := redis.NewClient(opt)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := c.Ping(pingCtx).Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("redis: ping: %w", err)
	}
	return c, nil
}

// New builds a backend. Sessions that stop heartbeating vanish after ttl;
// every member also rebuilds its snapshot each resync interval.
func New(rdb redis.UniversalClient, ttl, resync time.Duration, log *zap.Logger) *Backend {
	if log == nil {
		log = zap.NewNop()
	}
	return &Backend{rdb: rdb, ttl: ttl, resync: resync, log: log}
}

func sessionPrefix(channel string) string { return "presence:" + channel + ":session:" }

func eventsKey(channel string) string { return "presence:" + channel + ":events" }

// JoinPresence subscribes to the channel's change notifications and delivers the current snapshot.
func (b *Backend) JoinPresence(ctx context.Context, channel, key string) (feed.PresenceChannel, error) {
	ps := b.rdb.Subscribe(ctx, eventsKey(channel))
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, fmt.Errorf("%w: subscribe %s: %w", errs.ErrPresenceChannel, channel, err)
	}
	m := newMember(b.rdb, channel, key, b.ttl, b.log)
	m.ps = ps

	snap, err := m.snapshot(ctx)
	if err != nil {
		_ = ps.Close()
		return nil, fmt.Errorf("%w: initial snapshot: %w", errs.ErrPresenceChannel, err)
	}
	m.Push(snap)

	loopCtx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	go m.loop(loopCtx, ps.Channel(), b.resync)
	return m, nil
}

type member struct {
	store     redis.Cmdable
	channel   string
	key       string
	sessionID string
	ttl       time.Duration
	log       *zap.Logger
	*feed.SyncStream

	ps     *redis.PubSub
	cancel context.CancelFunc

	mu     sync.Mutex
	record string
}

func newMember(store redis.Cmdable, channel, key string, ttl time.Duration, log *zap.Logger) *member {
	return &member{
		store:      store,
		channel:    channel,
		key:        key,
		sessionID:  uuid.Must(uuid.NewV4()).String(),
		ttl:        ttl,
		log:        log.With(zap.String("presence_channel", channel)),
		SyncStream: feed.NewSyncStream(),
	}
}

// record is what one session stores under its key.
type record struct {
	Key  string            `json:"key"`
	Meta feed.PresenceMeta `json:"meta"`
}

func (m *member) sessionKey() string { return sessionPrefix(m.channel) + m.sessionID }

func (m *member) Track(ctx context.Context, meta feed.PresenceMeta) error {
	select {
	case <-m.Done():
		return fmt.Errorf("%w: channel left", errs.ErrPresenceChannel)
	default:
	}
	if meta.SessionID == "" {
		meta.SessionID = m.sessionID
	}
	raw, err := json.Marshal(record{Key: m.key, Meta: meta})
	if err != nil {
		return err
	}
	if err := m.store.Set(ctx, m.sessionKey(), string(raw), m.ttl).Err(); err != nil {
		return fmt.Errorf("presence track: %w", err)
	}
	m.mu.Lock()
	m.record = string(raw)
	m.mu.Unlock()
	return m.store.Publish(ctx, eventsKey(m.channel), "track:"+m.sessionID).Err()
}

func (m *member) Untrack(ctx context.Context) error {
	m.mu.Lock()
	had := m.record != ""
	m.record = ""
	m.mu.Unlock()
	if !had {
		return nil
	}
	if err := m.store.Del(ctx, m.sessionKey()).Err(); err != nil {
		return fmt.Errorf("presence untrack: %w", err)
	}
	return m.store.Publish(ctx, eventsKey(m.channel), "untrack:"+m.sessionID).Err()
}

// heartbeat rewrites the session key so it outlives the next ttl window.
func (m *member) heartbeat(ctx context.Context) error {
	m.mu.Lock()
	rec := m.record
	m.mu.Unlock()
	if rec == "" {
		return nil
	}
	return m.store.Set(ctx, m.sessionKey(), rec, m.ttl).Err()
}

// snapshot reads every live session of the channel.
func (m *member) snapshot(ctx context.Context) (feed.RawSnapshot, error) {
	var (
		keys   []string
		cursor uint64
	)
	for {
		batch, next, err := m.store.Scan(ctx, cursor, sessionPrefix(m.channel)+"*", 100).Result()
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		keys = append(keys, batch...)
		if cursor = next; cursor == 0 {
			break
		}
	}
	state := make(map[string][]feed.PresenceMeta)
	if len(keys) > 0 {
		vals, err := m.store.MGet(ctx, keys...).Result()
		if err != nil {
			return nil, fmt.Errorf("mget: %w", err)
		}
		for i, v := range vals {
			s, ok := v.(string)
			if !ok {
				continue // expired between SCAN and MGET
			}
			var rec record
			if err := json.Unmarshal([]byte(s), &rec); err != nil {
				m.log.Warn("presence: skipping bad session record", zap.String("key", keys[i]), zap.Error(err))
				continue
			}
			state[rec.Key] = append(state[rec.Key], rec.Meta)
		}
	}
	return feed.BuildSnapshot(state)
}

func (m *member) loop(ctx context.Context, events <-chan *redis.Message, resync time.Duration) {
	if resync <= 0 {
		resync = 10 * time.Second
	}
	beat := m.ttl / 3
	if beat <= 0 {
		beat = time.Second
	}
	resyncT := time.NewTicker(resync)
	defer resyncT.Stop()
	beatT := time.NewTicker(beat)
	defer beatT.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-beatT.C:
			if err := m.heartbeat(ctx); err != nil && ctx.Err() == nil {
				m.log.Warn("presence heartbeat failed", zap.Error(err))
			}
			continue
		case _, ok := <-events:
			if !ok {
				m.Finish(errors.New("redis subscription closed"))
				return
			}
		case <-resyncT.C:
		}
		snap, err := m.snapshot(ctx)
		if err != nil {
			if ctx.Err() == nil {
				m.Finish(err)
			}
			return
		}
		m.Push(snap)
	}
}

// Close untracks the session and leaves the channel.
func (m *member) Close() error {
	if !m.Finish(nil) {
		return nil
	}
	if m.cancel != nil {
		m.cancel()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	err := m.Untrack(ctx)
	if m.ps != nil {
		err = errors.Join(err, m.ps.Close())
	}
	return err
}
