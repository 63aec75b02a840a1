package feed

import (
	"errors"
	"fmt"
	"sync"

	"github.com/souqly/convo/internal/errs"
)

// DefaultBuffer is the per-subscription event buffer.
const DefaultBuffer = 64

// ErrSlowConsumer is the Fail cause of a subscription whose buffer was full
// when an event arrived. The consumer recovers by resubscribing and reloading.
var ErrSlowConsumer = errors.New("subscriber fell behind")

// Subscription is the handle returned by Client.Subscribe. It is released with Close.
// Events is never closed; consumers select on Done.
type Subscription struct {
	filter  Filter
	events  chan Event
	done    chan struct{}
	onClose func(*Subscription)

	mu     sync.Mutex
	err    error
	closed bool
}

// NewSubscription is used by Client implementations. onClose runs once, on the first Close or Fail.
func NewSubscription(f Filter, buffer int, onClose func(*Subscription)) *Subscription {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Subscription{
		filter:  f,
		events:  make(chan Event, buffer),
		done:    make(chan struct{}),
		onClose: onClose,
	}
}

func (s *Subscription) Filter() Filter { return s.filter }

func (s *Subscription) Events() <-chan Event { return s.events }

func (s *Subscription) Done() <-chan struct{} { return s.done }

// Err is nil after a caller Close and wraps errs.ErrFeedClosed after a transport drop.
func (s *Subscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close releases the subscription. It is safe to call more than once.
func (s *Subscription) Close() error {
	s.finish(nil)
	return nil
}

// Fail terminates the subscription because its transport dropped.
func (s *Subscription) Fail(cause error) {
	err := errs.ErrFeedClosed
	if cause != nil {
		err = fmt.Errorf("%w: %w", errs.ErrFeedClosed, cause)
	}
	s.finish(err)
}

func (s *Subscription) finish(err error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.err = err
	close(s.done)
	s.mu.Unlock()
	if s.onClose != nil {
		s.onClose(s)
	}
}

// Offer hands e to the consumer without blocking. A full buffer fails the
// subscription with ErrSlowConsumer, so one stalled consumer never holds up
// delivery to the others. It reports whether e was queued.
func (s *Subscription) Offer(e Event) bool {
	select {
	case <-s.done:
		return false
	default:
	}
	select {
	case s.events <- e:
		return true
	default:
		s.Fail(ErrSlowConsumer)
		return false
	}
}
