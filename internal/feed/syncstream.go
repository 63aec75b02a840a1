package feed

import (
	"fmt"
	"sync"

	"github.com/souqly/convo/internal/errs"
)

// SyncStream carries presence snapshots to one member. Only the newest undelivered
// snapshot is kept, since each one replaces the previous.
type SyncStream struct {
	syncs chan RawSnapshot
	done  chan struct{}

	mu     sync.Mutex
	err    error
	closed bool
}

func NewSyncStream() *SyncStream {
	return &SyncStream{
		syncs: make(chan RawSnapshot, 1),
		done:  make(chan struct{}),
	}
}

func (s *SyncStream) Syncs() <-chan RawSnapshot { return s.syncs }

func (s *SyncStream) Done() <-chan struct{} { return s.done }

func (s *SyncStream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Push replaces any pending snapshot with snap.
func (s *SyncStream) Push(snap RawSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	for {
		select {
		case s.syncs <- snap:
			return
		default:
		}
		select {
		case <-s.syncs:
		default:
		}
	}
}

// Finish ends the stream; a nil cause means the member left on purpose.
// It reports whether this call was the one that ended it.
func (s *SyncStream) Finish(cause error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.closed = true
	if cause != nil {
		s.err = fmt.Errorf("%w: %w", errs.ErrPresenceChannel, cause)
	}
	close(s.done)
	return true
}
