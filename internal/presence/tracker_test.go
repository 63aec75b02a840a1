package presence

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/souqly/convo/internal/errs"
	"github.com/souqly/convo/internal/feed"
	"github.com/souqly/convo/internal/feed/memory"
	"github.com/souqly/convo/internal/retry"
)

var fastPolicy = retry.Policy{Timeout: time.Second, Base: time.Millisecond, Cap: 10 * time.Millisecond, MaxRetries: 5}

const wait, tick = 2 * time.Second, 5 * time.Millisecond

func newTracker(t *testing.T, hub *memory.Hub) *Tracker {
	t.Helper()
	return New(hub, "", fastPolicy, zaptest.NewLogger(t))
}

func snapshotOf(t *testing.T, ids ...uuid.UUID) feed.RawSnapshot {
	t.Helper()
	state := map[string][]feed.PresenceMeta{}
	for _, id := range ids {
		state[id.String()] = append(state[id.String()], feed.PresenceMeta{UserID: id.String(), OnlineAt: time.Now().UTC()})
	}
	raw, err := feed.BuildSnapshot(state)
	require.NoError(t, err)
	return raw
}

func onlineEquals(tr *Tracker, want ...uuid.UUID) func() bool {
	return func() bool {
		got := tr.Online()
		if tr.State() != Synced || len(got) != len(want) {
			return false
		}
		for _, id := range want {
			if !tr.IsOnline(id) {
				return false
			}
		}
		return true
	}
}

func TestTracker_StartTracksSelf(t *testing.T) {
	hub := memory.New()
	me := uuid.Must(uuid.NewV4())
	tr := newTracker(t, hub)

	require.Equal(t, Stopped, tr.State())
	require.NoError(t, tr.Start(context.Background(), me))
	require.ErrorIs(t, tr.Start(context.Background(), me), ErrAlreadyStarted)
	require.Eventually(t, onlineEquals(tr, me), wait, tick)
	require.Equal(t, 1, hub.Members(DefaultChannel))

	require.NoError(t, tr.Stop())
	require.Equal(t, Stopped, tr.State())
	require.False(t, tr.IsOnline(me))
	require.Equal(t, 0, hub.Members(DefaultChannel))
}

func TestTracker_StopExactlyOnce(t *testing.T) {
	tr := newTracker(t, memory.New())
	require.ErrorIs(t, tr.Stop(), ErrNotStarted)

	require.NoError(t, tr.Start(context.Background(), uuid.Must(uuid.NewV4())))
	require.NoError(t, tr.Stop())
	require.ErrorIs(t, tr.Stop(), ErrNotStarted)

	// restartable after a paired stop
	require.NoError(t, tr.Start(context.Background(), uuid.Must(uuid.NewV4())))
	require.NoError(t, tr.Stop())
}

func TestTracker_StartRequiresUser(t *testing.T) {
	err := newTracker(t, memory.New()).Start(context.Background(), uuid.Nil)
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestTracker_SyncReplacesNotMerges(t *testing.T) {
	hub := memory.New()
	me := uuid.Must(uuid.NewV4())
	x, y := uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4())
	tr := newTracker(t, hub)
	require.NoError(t, tr.Start(context.Background(), me))
	defer func() { _ = tr.Stop() }()
	require.Eventually(t, onlineEquals(tr, me), wait, tick)

	hub.Inject(DefaultChannel, snapshotOf(t, x, y))
	require.Eventually(t, onlineEquals(tr, x, y), wait, tick)

	hub.Inject(DefaultChannel, snapshotOf(t, y))
	require.Eventually(t, onlineEquals(tr, y), wait, tick)
	require.False(t, tr.IsOnline(x))
	require.Equal(t, []uuid.UUID{y}, tr.Online())
}

func TestTracker_PeerLeaves(t *testing.T) {
	hub := memory.New()
	a, b := uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4())
	ta, tb := newTracker(t, hub), newTracker(t, hub)
	require.NoError(t, ta.Start(context.Background(), a))
	defer func() { _ = ta.Stop() }()
	require.NoError(t, tb.Start(context.Background(), b))

	require.Eventually(t, onlineEquals(ta, a, b), wait, tick)
	require.NoError(t, tb.Stop())
	require.Eventually(t, onlineEquals(ta, a), wait, tick)
}

func TestTracker_MalformedSnapshotDegrades(t *testing.T) {
	hub := memory.New()
	me := uuid.Must(uuid.NewV4())
	tr := newTracker(t, hub)
	require.NoError(t, tr.Start(context.Background(), me))
	defer func() { _ = tr.Stop() }()
	require.Eventually(t, onlineEquals(tr, me), wait, tick)

	hub.Inject(DefaultChannel, feed.RawSnapshot(`{"k":[{"uid":"x"}]}`))
	require.Eventually(t, func() bool { return tr.State() == Degraded }, wait, tick)
	require.False(t, tr.IsOnline(me))
	require.Empty(t, tr.Online())
	require.ErrorIs(t, tr.Snapshot().Err, errs.ErrMalformedSnapshot)

	hub.Inject(DefaultChannel, snapshotOf(t, me))
	require.Eventually(t, onlineEquals(tr, me), wait, tick)
}

func TestTracker_ReconnectsAfterDrop(t *testing.T) {
	hub := memory.New()
	me := uuid.Must(uuid.NewV4())
	tr := newTracker(t, hub)

	var mu sync.Mutex
	var seen []State
	unsub := tr.Subscribe(func(s Snapshot) {
		mu.Lock()
		seen = append(seen, s.State)
		mu.Unlock()
	})
	defer unsub()

	require.NoError(t, tr.Start(context.Background(), me))
	defer func() { _ = tr.Stop() }()
	require.Eventually(t, onlineEquals(tr, me), wait, tick)

	require.Equal(t, 1, hub.DropPresence(DefaultChannel))
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		for _, s := range seen {
			if s == Disconnected {
				return true
			}
		}
		return false
	}, wait, tick)
	require.Eventually(t, onlineEquals(tr, me), wait, tick)
	require.Equal(t, 1, hub.Members(DefaultChannel))
}

func TestTracker_JoinFailureDegradesThenRecovers(t *testing.T) {
	hub := memory.New()
	hub.SetJoinError(context.DeadlineExceeded)
	me := uuid.Must(uuid.NewV4())
	tr := New(hub, "", retry.Policy{Base: 20 * time.Millisecond, Cap: 20 * time.Millisecond, MaxRetries: 50}, zaptest.NewLogger(t))

	require.NoError(t, tr.Start(context.Background(), me))
	defer func() { _ = tr.Stop() }()
	require.Eventually(t, func() bool { return tr.State() == Degraded }, wait, tick)
	require.ErrorIs(t, tr.Snapshot().Err, errs.ErrPresenceChannel)
	require.False(t, tr.IsOnline(me))

	hub.SetJoinError(nil)
	require.Eventually(t, onlineEquals(tr, me), wait, tick)
}

func TestTracker_RetriesExhausted(t *testing.T) {
	hub := memory.New()
	hub.SetJoinError(context.DeadlineExceeded)
	tr := New(hub, "", retry.Policy{Base: time.Millisecond, Cap: time.Millisecond, MaxRetries: 2}, zaptest.NewLogger(t))

	var mu sync.Mutex
	var last Snapshot
	tr.Subscribe(func(s Snapshot) {
		mu.Lock()
		last = s
		mu.Unlock()
	})
	require.NoError(t, tr.Start(context.Background(), uuid.Must(uuid.NewV4())))
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return last.State == Degraded && last.Err == errs.ErrPresenceChannel
	}, wait, tick)

	hub.SetJoinError(nil)
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, Degraded, tr.State())
	require.NoError(t, tr.Stop())
}
