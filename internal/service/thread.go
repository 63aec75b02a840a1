package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/souqly/convo/internal/errs"
	"github.com/souqly/convo/internal/feed"
	"github.com/souqly/convo/internal/model"
	"github.com/souqly/convo/internal/notify"
	"github.com/souqly/convo/internal/retry"
)

// ErrThreadFailed is reported with ThreadFailed updates.
var ErrThreadFailed = errors.New("thread: live updates stopped")

// ThreadState is the live-ness of an open thread.
type ThreadState int

const (
	ThreadIdle ThreadState = iota
	ThreadLive
	ThreadReconnecting
	ThreadFailed // resubscribe budget spent; Switch to try again
	ThreadClosed
)

func (s ThreadState) String() string {
	switch s {
	case ThreadIdle:
		return "idle"
	case ThreadLive:
		return "live"
	case ThreadReconnecting:
		return "reconnecting"
	case ThreadFailed:
		return "failed"
	case ThreadClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// UpdateKind tells which part of a ThreadUpdate is set.
type UpdateKind int

const (
	UpdateReset    UpdateKind = iota // Messages holds the full thread
	UpdateAppended                   // Message was appended
	UpdateRead                       // Message changed read state
	UpdateState                      // State changed
)

// ThreadUpdate is delivered to the thread's listener after every local change.
type ThreadUpdate struct {
	Kind           UpdateKind
	Generation     uint64
	ConversationID uuid.UUID
	Message        *model.Message
	Messages       []model.Message
	State          ThreadState
	Err            error
}

// ThreadDeps are the collaborators of a Thread.
type ThreadDeps struct {
	Directory DirectoryService
	Messages  MessageService
	Reads     *ReadReconciler
	Feed      feed.Client
	Notifier  notify.Notifier
	Policy    retry.Policy
	Log       *zap.Logger
}

// Thread is the local, ordered message state of the one conversation a viewer has open.
// A single loop goroutine per opened conversation applies feed events; each opening is a
// new generation and work tagged with an older generation is dropped.
type Thread struct {
	viewer   uuid.UUID
	deps     ThreadDeps
	onUpdate func(ThreadUpdate)
	now      func() time.Time

	switchMu sync.Mutex // serializes Open, Switch and Close

	mu     sync.RWMutex
	gen    uint64
	convID uuid.UUID
	msgs   []model.Message
	index  map[uuid.UUID]int
	state  ThreadState
	cancel context.CancelFunc
	done   chan struct{}
}

// NewThread builds a thread for viewer. onUpdate runs on the thread's goroutines,
// must not block, and must not call Open, Switch or Close.
func NewThread(viewer uuid.UUID, deps ThreadDeps, onUpdate func(ThreadUpdate)) *Thread {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	if onUpdate == nil {
		onUpdate = func(ThreadUpdate) {}
	}
	return &Thread{
		viewer:   viewer,
		deps:     deps,
		onUpdate: onUpdate,
		now:      time.Now,
		index:    map[uuid.UUID]int{},
	}
}

// Open is Switch for the first conversation.
func (t *Thread) Open(ctx context.Context, convID uuid.UUID) error {
	return t.Switch(ctx, convID)
}

// Switch releases the current conversation's subscription before subscribing convID,
// then loads its history, marks it read and starts applying live events.
func (t *Thread) Switch(ctx context.Context, convID uuid.UUID) error {
	t.switchMu.Lock()
	defer t.switchMu.Unlock()

	gen := t.stop(ThreadIdle)

	if _, err := t.deps.Directory.Conversation(ctx, convID, t.viewer); err != nil {
		return err
	}
	sub, err := t.deps.Feed.Subscribe(ctx, messagesOf(convID))
	if err != nil {
		return errs.Transient(err)
	}
	history, err := t.deps.Messages.LoadHistory(ctx, convID)
	if err != nil {
		_ = sub.Close()
		return err
	}

	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	done := make(chan struct{})
	t.mu.Lock()
	t.convID = convID
	t.msgs = make([]model.Message, 0, len(history))
	t.index = make(map[uuid.UUID]int, len(history))
	for _, m := range history {
		t.appendLocked(m)
	}
	t.state = ThreadLive
	t.cancel, t.done = cancel, done
	reset := ThreadUpdate{Kind: UpdateReset, Generation: gen, ConversationID: convID, Messages: t.copyLocked(), State: ThreadLive}
	t.mu.Unlock()

	t.onUpdate(reset)
	t.deps.Messages.MarkThreadRead(ctx, convID, t.viewer, t.now().UTC())

	go t.loop(loopCtx, done, gen, convID, sub)
	return nil
}

// Close releases the subscription. The thread can be reopened with Switch.
func (t *Thread) Close() error {
	t.switchMu.Lock()
	defer t.switchMu.Unlock()
	t.stop(ThreadClosed)
	return nil
}

// stop ends the running generation, waits for its loop and returns the next generation.
func (t *Thread) stop(next ThreadState) uint64 {
	t.mu.Lock()
	t.gen++
	gen := t.gen
	cancel, done := t.cancel, t.done
	t.cancel, t.done = nil, nil
	t.state = next
	t.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
	return gen
}

// Messages returns a copy of the local thread.
func (t *Thread) Messages() []model.Message {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.copyLocked()
}

func (t *Thread) State() ThreadState {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}

func (t *Thread) ConversationID() uuid.UUID {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.convID
}

func (t *Thread) copyLocked() []model.Message {
	out := make([]model.Message, len(t.msgs))
	copy(out, t.msgs)
	return out
}

func (t *Thread) appendLocked(m model.Message) bool {
	if _, ok := t.index[m.ID]; ok {
		return false
	}
	t.index[m.ID] = len(t.msgs)
	t.msgs = append(t.msgs, m)
	return true
}

func messagesOf(convID uuid.UUID) feed.Filter {
	return feed.Filter{Table: "messages", Column: "conversation_id", Value: convID.String()}
}

func (t *Thread) loop(ctx context.Context, done chan struct{}, gen uint64, convID uuid.UUID, sub *feed.Subscription) {
	defer close(done)
	defer func() { _ = sub.Close() }()
	log := t.deps.Log.With(zap.Stringer("conversation_id", convID), zap.Stringer("viewer_id", t.viewer))

	for {
		select {
		case <-ctx.Done():
			return
		case e := <-sub.Events():
			t.handle(ctx, gen, convID, e, log)
		case <-sub.Done():
			if ctx.Err() != nil {
				return
			}
			log.Warn("thread subscription dropped", zap.Error(sub.Err()))
			next := t.resubscribe(ctx, gen, convID, sub.Err(), log)
			if next == nil {
				return
			}
			sub = next
		}
	}
}

// handle applies one feed event: inserts append in arrival order, updates merge read state.
func (t *Thread) handle(ctx context.Context, gen uint64, convID uuid.UUID, e feed.Event, log *zap.Logger) {
	if e.Type == feed.Delete {
		log.Debug("ignoring message delete event")
		return
	}
	var m model.Message
	if err := e.DecodeRow(&m); err != nil {
		log.Warn("undecodable message event", zap.Error(err))
		return
	}
	if m.ConversationID != convID {
		return
	}

	t.mu.Lock()
	if t.gen != gen {
		t.mu.Unlock()
		return
	}
	var upd *ThreadUpdate
	if i, ok := t.index[m.ID]; ok {
		if t.msgs[i].MergeRead(m.IsRead, m.ReadAt) {
			cp := t.msgs[i]
			upd = &ThreadUpdate{Kind: UpdateRead, Message: &cp}
		}
	} else {
		t.appendLocked(m)
		cp := m
		upd = &ThreadUpdate{Kind: UpdateAppended, Message: &cp}
	}
	t.mu.Unlock()

	if upd == nil {
		return
	}
	upd.Generation, upd.ConversationID, upd.State = gen, convID, ThreadLive
	t.onUpdate(*upd)

	if upd.Kind == UpdateAppended && m.SenderID != t.viewer {
		t.incoming(ctx, m, log)
	}
}

// incoming marks a message from the peer read and notifies the viewer.
func (t *Thread) incoming(ctx context.Context, m model.Message, log *zap.Logger) {
	if t.deps.Reads != nil {
		t.deps.Reads.Reconcile(ctx, m.ConversationID, t.viewer)
	}
	if !m.IsRead {
		t.deps.Messages.MarkMessageRead(ctx, m.ConversationID, m.ID, t.viewer, t.now().UTC())
	}
	if t.deps.Notifier != nil {
		if err := t.deps.Notifier.MessageReceived(ctx, t.viewer, m); err != nil {
			log.Warn("notify failed", zap.Stringer("message_id", m.ID), zap.Error(err))
		}
	}
}

// resubscribe replaces a dropped subscription with capped backoff. History is
// reloaded and merged so messages sent during the gap are not lost.
func (t *Thread) resubscribe(ctx context.Context, gen uint64, convID uuid.UUID, cause error, log *zap.Logger) *feed.Subscription {
	if !t.setState(gen, convID, ThreadReconnecting, cause) {
		return nil
	}
	b := t.deps.Policy.Backoff()
	for {
		d, stop := b.Next()
		if stop {
			log.Error("thread resubscribe budget spent", zap.Error(cause))
			t.setState(gen, convID, ThreadFailed, fmt.Errorf("%w: %w", ErrThreadFailed, cause))
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(d):
		}

		sub, err := t.deps.Feed.Subscribe(ctx, messagesOf(convID))
		if err != nil {
			cause = err
			continue
		}
		history, err := t.deps.Messages.LoadHistory(ctx, convID)
		if err != nil {
			_ = sub.Close()
			cause = err
			continue
		}
		if !t.merge(ctx, gen, convID, history) {
			_ = sub.Close()
			return nil
		}
		log.Info("thread resubscribed")
		t.setState(gen, convID, ThreadLive, nil)
		return sub
	}
}

// merge folds reloaded history into local state without reordering what is already there.
func (t *Thread) merge(ctx context.Context, gen uint64, convID uuid.UUID, history []model.Message) bool {
	var updates []ThreadUpdate
	var fresh []model.Message

	t.mu.Lock()
	if t.gen != gen {
		t.mu.Unlock()
		return false
	}
	for _, m := range history {
		if i, ok := t.index[m.ID]; ok {
			if t.msgs[i].MergeRead(m.IsRead, m.ReadAt) {
				cp := t.msgs[i]
				updates = append(updates, ThreadUpdate{Kind: UpdateRead, Message: &cp})
			}
			continue
		}
		t.appendLocked(m)
		cp := m
		updates = append(updates, ThreadUpdate{Kind: UpdateAppended, Message: &cp})
		if m.SenderID != t.viewer && !m.IsRead {
			fresh = append(fresh, m)
		}
	}
	t.mu.Unlock()

	for _, u := range updates {
		u.Generation, u.ConversationID, u.State = gen, convID, ThreadLive
		t.onUpdate(u)
	}
	if len(fresh) > 0 {
		t.deps.Messages.MarkThreadRead(ctx, convID, t.viewer, t.now().UTC())
	}
	return true
}

func (t *Thread) setState(gen uint64, convID uuid.UUID, s ThreadState, cause error) bool {
	t.mu.Lock()
	if t.gen != gen {
		t.mu.Unlock()
		return false
	}
	t.state = s
	t.mu.Unlock()
	t.onUpdate(ThreadUpdate{Kind: UpdateState, Generation: gen, ConversationID: convID, State: s, Err: cause})
	return true
}
