// Package presence maintains the set of online users from full snapshots of a shared presence channel.
package presence

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/souqly/convo/internal/errs"
	"github.com/souqly/convo/internal/feed"
	"github.com/souqly/convo/internal/retry"
)

// DefaultChannel is the shared presence channel name.
const DefaultChannel = "online-users"

// State is the tracker lifecycle state.
type State int

const (
	Stopped State = iota
	Joining
	Synced
	Disconnected // channel dropped, rejoining
	Degraded     // channel unusable or snapshot malformed; every user reads as offline
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Joining:
		return "joining"
	case Synced:
		return "synced"
	case Disconnected:
		return "disconnected"
	case Degraded:
		return "degraded"
	default:
		return "unknown"
	}
}

var (
	ErrAlreadyStarted = errors.New("presence: tracker already started")
	ErrNotStarted     = errors.New("presence: tracker not started")
)

// Snapshot is what observers receive after every change.
type Snapshot struct {
	State  State
	Online []uuid.UUID // sorted
	Err    error       // cause of Disconnected or Degraded
}

// Tracker joins the presence channel for one user and keeps the online set.
// Its event loop is the only writer; readers take copies.
type Tracker struct {
	presence feed.Presence
	channel  string
	policy   retry.Policy
	log      *zap.Logger
	now      func() time.Time

	mu        sync.RWMutex
	state     State
	online    map[uuid.UUID]struct{}
	lastErr   error
	observers map[int]func(Snapshot)
	nextObs   int

	runMu  sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// New builds a tracker on channel (DefaultChannel when empty).
func New(p feed.Presence, channel string, policy retry.Policy, log *zap.Logger) *Tracker {
	if channel == "" {
		channel = DefaultChannel
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Tracker{
		presence:  p,
		channel:   channel,
		policy:    policy,
		log:       log,
		now:       time.Now,
		online:    map[uuid.UUID]struct{}{},
		observers: map[int]func(Snapshot){},
	}
}

// Start joins the channel and tracks userID in the background.
// Join failures do not fail Start; they show up as Degraded.
func (t *Tracker) Start(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return errs.Validation("presence: user id is required")
	}
	t.runMu.Lock()
	defer t.runMu.Unlock()
	if t.cancel != nil {
		return ErrAlreadyStarted
	}
	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	t.cancel = cancel
	t.done = make(chan struct{})
	t.set(Joining, nil, nil)

	go t.run(loopCtx, t.done, userID, uuid.Must(uuid.NewV4()).String())
	return nil
}

// Stop untracks, leaves the channel and waits for the loop to exit.
// It must pair with exactly one Start; an unpaired call returns ErrNotStarted.
func (t *Tracker) Stop() error {
	t.runMu.Lock()
	cancel, done := t.cancel, t.done
	t.cancel, t.done = nil, nil
	t.runMu.Unlock()
	if cancel == nil {
		return ErrNotStarted
	}
	cancel()
	<-done
	t.set(Stopped, map[uuid.UUID]struct{}{}, nil)
	return nil
}

// IsOnline reports membership in the latest snapshot. It is false unless Synced.
func (t *Tracker) IsOnline(id uuid.UUID) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.state != Synced {
		return false
	}
	_, ok := t.online[id]
	return ok
}

// Online returns the sorted online set.
func (t *Tracker) Online() []uuid.UUID {
	return t.Snapshot().Online
}

func (t *Tracker) State() State {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}

func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.snapshotLocked()
}

func (t *Tracker) snapshotLocked() Snapshot {
	ids := make([]uuid.UUID, 0, len(t.online))
	if t.state == Synced {
		for id := range t.online {
			ids = append(ids, id)
		}
		slices.SortFunc(ids, func(a, b uuid.UUID) int { return bytes.Compare(a.Bytes(), b.Bytes()) })
	}
	return Snapshot{State: t.state, Online: ids, Err: t.lastErr}
}

// Subscribe registers fn for every change and returns a function that removes it.
// fn runs on the tracker's loop and must not block.
func (t *Tracker) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	t.mu.Lock()
	id := t.nextObs
	t.nextObs++
	t.observers[id] = fn
	t.mu.Unlock()
	return func() {
		t.mu.Lock()
		delete(t.observers, id)
		t.mu.Unlock()
	}
}

// set replaces state; a nil online keeps the current set unless the state hides it.
func (t *Tracker) set(s State, online map[uuid.UUID]struct{}, cause error) {
	t.mu.Lock()
	t.state = s
	switch {
	case online != nil:
		t.online = online
	case s != Synced:
		t.online = map[uuid.UUID]struct{}{}
	}
	t.lastErr = cause
	snap := t.snapshotLocked()
	obs := make([]func(Snapshot), 0, len(t.observers))
	for _, fn := range t.observers {
		obs = append(obs, fn)
	}
	t.mu.Unlock()

	for _, fn := range obs {
		fn(snap)
	}
}

func (t *Tracker) run(ctx context.Context, done chan struct{}, userID uuid.UUID, sessionID string) {
	defer close(done)
	log := t.log.With(zap.Stringer("user_id", userID), zap.String("channel", t.channel))
	b := t.policy.Backoff()

	for {
		ch, err := t.join(ctx, userID, sessionID)
		if err == nil {
			synced, cause := t.consume(ctx, ch, log)
			t.leave(ch)
			if ctx.Err() != nil {
				return
			}
			if synced {
				b = t.policy.Backoff()
			}
			log.Warn("presence channel dropped", zap.Error(cause))
			t.set(Disconnected, nil, cause)
		} else {
			if ctx.Err() != nil {
				return
			}
			log.Warn("presence join failed", zap.Error(err))
			t.set(Degraded, nil, err)
		}

		d, stop := b.Next()
		if stop {
			log.Error("presence retries exhausted")
			t.set(Degraded, nil, errs.ErrPresenceChannel)
			<-ctx.Done()
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(d):
		}
	}
}

func (t *Tracker) join(ctx context.Context, userID uuid.UUID, sessionID string) (feed.PresenceChannel, error) {
	ch, err := t.presence.JoinPresence(ctx, t.channel, userID.String())
	if err != nil {
		if !errors.Is(err, errs.ErrPresenceChannel) {
			err = errors.Join(errs.ErrPresenceChannel, err)
		}
		return nil, err
	}
	meta := feed.PresenceMeta{UserID: userID.String(), SessionID: sessionID, OnlineAt: t.now().UTC()}
	if err := ch.Track(ctx, meta); err != nil {
		_ = ch.Close()
		return nil, errors.Join(errs.ErrPresenceChannel, err)
	}
	return ch, nil
}

// consume applies syncs until the channel ends or ctx is cancelled.
// It reports whether at least one valid snapshot arrived.
func (t *Tracker) consume(ctx context.Context, ch feed.PresenceChannel, log *zap.Logger) (bool, error) {
	synced := false
	for {
		select {
		case <-ctx.Done():
			return synced, ctx.Err()
		case <-ch.Done():
			err := ch.Err()
			if err == nil {
				err = errs.ErrPresenceChannel
			}
			return synced, err
		case raw := <-ch.Syncs():
			online, err := ParseSnapshot(raw)
			if err != nil {
				log.Warn("presence snapshot rejected", zap.Error(err))
				t.set(Degraded, nil, err)
				continue
			}
			synced = true
			t.set(Synced, online, nil)
		}
	}
}

func (t *Tracker) leave(ch feed.PresenceChannel) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := ch.Untrack(ctx); err != nil {
		t.log.Debug("presence untrack failed", zap.Error(err))
	}
	_ = ch.Close()
}
