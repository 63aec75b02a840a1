package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/souqly/convo/internal/feed/memory"
	"github.com/souqly/convo/internal/model"
	"github.com/souqly/convo/internal/retry"
)

var fastPolicy = retry.Policy{Timeout: time.Second, Base: time.Millisecond, Cap: 5 * time.Millisecond, MaxRetries: 3}

const wait, tick = 2 * time.Second, 5 * time.Millisecond

type harness struct {
	hub   *memory.Hub
	store *memStore
	dir   *DirectoryServiceImpl
	msgs  *MessageServiceImpl
	reads *ReadReconciler
	notes *recordingNotifier
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	log := zaptest.NewLogger(t)
	hub := memory.New()
	store := newMemStore(hub)
	reads := NewReadReconciler(store, fastPolicy, time.Hour, log)
	return &harness{
		hub:   hub,
		store: store,
		dir:   NewDirectoryService(store, store, fastPolicy, log),
		msgs:  NewMessageService(store, store, store, reads, fastPolicy, log),
		reads: reads,
		notes: &recordingNotifier{},
	}
}

func (h *harness) thread(t *testing.T, viewer uuid.UUID, onUpdate func(ThreadUpdate)) *Thread {
	t.Helper()
	th := NewThread(viewer, ThreadDeps{
		Directory: h.dir,
		Messages:  h.msgs,
		Reads:     h.reads,
		Feed:      h.hub,
		Notifier:  h.notes,
		Policy:    fastPolicy,
		Log:       zaptest.NewLogger(t),
	}, onUpdate)
	t.Cleanup(func() { _ = th.Close() })
	return th
}

func (h *harness) conversation(t *testing.T) (conv *model.Conversation, a, b uuid.UUID) {
	t.Helper()
	a = h.store.addProfile("alice")
	b = h.store.addProfile("bob")
	conv, err := h.dir.FindOrCreateConversation(context.Background(), a, b)
	require.NoError(t, err)
	return conv, a, b
}

type recordingNotifier struct {
	mu    sync.Mutex
	calls []model.Message
	to    []uuid.UUID
}

func (n *recordingNotifier) MessageReceived(_ context.Context, recipientID uuid.UUID, msg model.Message) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, msg)
	n.to = append(n.to, recipientID)
	return nil
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.calls)
}

// updates collects ThreadUpdates for assertions.
type updates struct {
	mu  sync.Mutex
	all []ThreadUpdate
}

func (u *updates) add(x ThreadUpdate) {
	u.mu.Lock()
	u.all = append(u.all, x)
	u.mu.Unlock()
}

func (u *updates) hasState(s ThreadState) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, x := range u.all {
		if x.Kind == UpdateState && x.State == s {
			return true
		}
	}
	return false
}

func (u *updates) first() ThreadUpdate {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.all[0]
}

func (u *updates) last() ThreadUpdate {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.all[len(u.all)-1]
}

func ids(msgs []model.Message) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, m.ID)
	}
	return out
}
