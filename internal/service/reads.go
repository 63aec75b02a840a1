package service

import (
	"context"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/souqly/convo/internal/repository"
	"github.com/souqly/convo/internal/retry"
)

type readKey struct {
	conv   uuid.UUID
	reader uuid.UUID
}

// ReadReconciler remembers threads whose mark-read failed and flips them later,
// either when the next event for the thread arrives or on the periodic sweep.
// Entries stay until the flip succeeds.
type ReadReconciler struct {
	msgs     repository.MessageRepository
	policy   retry.Policy
	interval time.Duration
	now      func() time.Time
	log      *zap.Logger

	mu      sync.Mutex
	pending map[readKey]time.Time
}

func NewReadReconciler(msgs repository.MessageRepository, policy retry.Policy, interval time.Duration, log *zap.Logger) *ReadReconciler {
	if log == nil {
		log = zap.NewNop()
	}
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &ReadReconciler{
		msgs:     msgs,
		policy:   policy,
		interval: interval,
		now:      time.Now,
		log:      log,
		pending:  make(map[readKey]time.Time),
	}
}

// Defer records a failed flip. The first failure time is kept.
func (r *ReadReconciler) Defer(convID, readerID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := readKey{convID, readerID}
	if _, ok := r.pending[k]; !ok {
		r.pending[k] = r.now()
	}
}

func (r *ReadReconciler) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

func (r *ReadReconciler) isPending(k readKey) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.pending[k]
	return ok
}

func (r *ReadReconciler) markThread(ctx context.Context, convID, readerID uuid.UUID, now time.Time) (int64, error) {
	var n int64
	err := retry.Do(ctx, r.policy, func(ctx context.Context) (err error) {
		n, err = r.msgs.MarkThreadRead(ctx, convID, readerID, now)
		return err
	})
	if err != nil {
		return 0, err
	}
	r.mu.Lock()
	delete(r.pending, readKey{convID, readerID})
	r.mu.Unlock()
	return n, nil
}

// Reconcile retries the thread's deferred flip, if any. It reports whether nothing is left pending.
func (r *ReadReconciler) Reconcile(ctx context.Context, convID, readerID uuid.UUID) bool {
	if !r.isPending(readKey{convID, readerID}) {
		return true
	}
	n, err := r.markThread(ctx, convID, readerID, r.now().UTC())
	if err != nil {
		r.log.Debug("deferred mark-read still failing", zap.Stringer("conversation_id", convID), zap.Error(err))
		return false
	}
	r.log.Info("deferred mark-read applied", zap.Stringer("conversation_id", convID), zap.Int64("messages", n))
	return true
}

// Flush retries every pending flip and returns how many remain.
func (r *ReadReconciler) Flush(ctx context.Context) int {
	r.mu.Lock()
	keys := make([]readKey, 0, len(r.pending))
	for k := range r.pending {
		keys = append(keys, k)
	}
	r.mu.Unlock()

	for _, k := range keys {
		if ctx.Err() != nil {
			break
		}
		r.Reconcile(ctx, k.conv, k.reader)
	}
	return r.Pending()
}

// Run sweeps pending flips every interval until ctx ends.
func (r *ReadReconciler) Run(ctx context.Context) error {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if left := r.Flush(ctx); left > 0 {
				r.log.Warn("mark-read backlog", zap.Int("pending", left))
			}
		}
	}
}
