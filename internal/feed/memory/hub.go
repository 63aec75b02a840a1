// Package memory is an in-process change feed used by tests and single-node deployments.
package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/souqly/convo/internal/errs"
	"github.com/souqly/convo/internal/feed"
)

// Hub fans published row changes out to matching subscriptions and keeps
// presence rooms whose members receive a full snapshot after every change.
type Hub struct {
	mu      sync.Mutex
	subs    map[*feed.Subscription]struct{}
	// bmu orders presence broadcasts: a snapshot is built and pushed before the next is built.
	bmu     sync.Mutex
	rooms   map[string]map[*member]struct{}
	joinErr error
	closed  bool
}

var _ feed.Client = (*Hub)(nil)

func New() *Hub {
	return &Hub{
		subs:  make(map[*feed.Subscription]struct{}),
		rooms: make(map[string]map[*member]struct{}),
	}
}

// Subscribe registers a subscription for f.
func (h *Hub) Subscribe(ctx context.Context, f feed.Filter) (*feed.Subscription, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.Table == "" {
		return nil, errs.Validation("subscribe: table is required")
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, errs.ErrFeedClosed
	}
	s := feed.NewSubscription(f, feed.DefaultBuffer, h.remove)
	h.subs[s] = struct{}{}
	return s, nil
}

func (h *Hub) remove(s *feed.Subscription) {
	h.mu.Lock()
	delete(h.subs, s)
	h.mu.Unlock()
}

// Publish encodes row and delivers it as an event of the given type.
func (h *Hub) Publish(ctx context.Context, table string, typ feed.EventType, row any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("publish %s: %w", table, err)
	}
	e := feed.Event{Type: typ, Table: table}
	if typ == feed.Delete {
		e.Old = raw
	} else {
		e.Row = raw
	}
	h.PublishEvent(e)
	return nil
}

// PublishEvent delivers e to every matching subscription in registration-independent order.
// Per-subscription order follows call order. A subscription whose buffer is full is
// failed with feed.ErrSlowConsumer instead of delaying the rest.
func (h *Hub) PublishEvent(e feed.Event) {
	for _, s := range h.matching(func(f feed.Filter) bool { return f.Match(e) }) {
		s.Offer(e)
	}
}

// Drop fails every subscription whose filter equals f, as a lost transport would.
func (h *Hub) Drop(f feed.Filter) int {
	subs := h.matching(func(sf feed.Filter) bool { return sf == f })
	for _, s := range subs {
		s.Fail(errors.New("dropped"))
	}
	return len(subs)
}

// Subscribers counts live subscriptions for f.
func (h *Hub) Subscribers(f feed.Filter) int {
	return len(h.matching(func(sf feed.Filter) bool { return sf == f }))
}

func (h *Hub) matching(pred func(feed.Filter) bool) []*feed.Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]*feed.Subscription, 0, len(h.subs))
	for s := range h.subs {
		if pred(s.Filter()) {
			out = append(out, s)
		}
	}
	return out
}

// Close fails all subscriptions and presence members.
func (h *Hub) Close() error {
	h.mu.Lock()
	h.closed = true
	subs := make([]*feed.Subscription, 0, len(h.subs))
	for s := range h.subs {
		subs = append(subs, s)
	}
	h.mu.Unlock()

	for _, s := range subs {
		s.Fail(nil)
	}
	h.mu.Lock()
	names := make([]string, 0, len(h.rooms))
	for name := range h.rooms {
		names = append(names, name)
	}
	h.mu.Unlock()
	for _, name := range names {
		h.DropPresence(name)
	}
	return nil
}
