package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/souqly/convo/internal/errs"
	"github.com/souqly/convo/internal/feed"
)

type member struct {
	hub  *Hub
	room string
	key  string
	*feed.SyncStream

	mu   sync.Mutex
	meta *feed.PresenceMeta
}

// SetJoinError makes subsequent JoinPresence calls fail with err until cleared with nil.
func (h *Hub) SetJoinError(err error) {
	h.mu.Lock()
	h.joinErr = err
	h.mu.Unlock()
}

// JoinPresence adds a member to the named room. Every member, the new one included,
// then receives the room's snapshot.
func (h *Hub) JoinPresence(ctx context.Context, channel, key string) (feed.PresenceChannel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	h.mu.Lock()
	if h.joinErr != nil {
		err := h.joinErr
		h.mu.Unlock()
		return nil, errors.Join(errs.ErrPresenceChannel, err)
	}
	if h.closed {
		h.mu.Unlock()
		return nil, errs.ErrPresenceChannel
	}
	m := &member{hub: h, room: channel, key: key, SyncStream: feed.NewSyncStream()}
	room, ok := h.rooms[channel]
	if !ok {
		room = make(map[*member]struct{})
		h.rooms[channel] = room
	}
	room[m] = struct{}{}
	h.mu.Unlock()

	h.broadcast(channel)
	return m, nil
}

// Inject delivers raw to every member of channel as if the transport sent it.
func (h *Hub) Inject(channel string, raw feed.RawSnapshot) {
	for _, m := range h.members(channel) {
		m.Push(raw)
	}
}

// DropPresence fails every member of channel and forgets the room.
func (h *Hub) DropPresence(channel string) int {
	h.mu.Lock()
	room := h.rooms[channel]
	delete(h.rooms, channel)
	h.mu.Unlock()
	for m := range room {
		m.Finish(errors.New("dropped"))
	}
	return len(room)
}

// Members counts joined members of channel.
func (h *Hub) Members(channel string) int {
	return len(h.members(channel))
}

func (h *Hub) members(channel string) []*member {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]*member, 0, len(h.rooms[channel]))
	for m := range h.rooms[channel] {
		out = append(out, m)
	}
	return out
}

// broadcast sends every member of channel the room's current state. Build and
// push happen under bmu, so the last snapshot a member sees reflects every change
// that preceded the last broadcast.
func (h *Hub) broadcast(channel string) {
	h.bmu.Lock()
	defer h.bmu.Unlock()
	members := h.members(channel)
	state := make(map[string][]feed.PresenceMeta)
	for _, m := range members {
		m.mu.Lock()
		if m.meta != nil {
			state[m.key] = append(state[m.key], *m.meta)
		}
		m.mu.Unlock()
	}
	raw, err := feed.BuildSnapshot(state)
	if err != nil {
		return
	}
	for _, m := range members {
		m.Push(raw)
	}
}

func (m *member) Track(ctx context.Context, meta feed.PresenceMeta) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-m.Done():
		return fmt.Errorf("%w: channel left", errs.ErrPresenceChannel)
	default:
	}
	m.mu.Lock()
	m.meta = &meta
	m.mu.Unlock()
	m.hub.broadcast(m.room)
	return nil
}

func (m *member) Untrack(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	had := m.meta != nil
	m.meta = nil
	m.mu.Unlock()
	if had {
		m.hub.broadcast(m.room)
	}
	return nil
}

func (m *member) Close() error {
	if !m.Finish(nil) {
		return nil
	}
	m.mu.Lock()
	m.meta = nil
	m.mu.Unlock()

	h := m.hub
	h.mu.Lock()
	if room, ok := h.rooms[m.room]; ok {
		delete(room, m)
		if len(room) == 0 {
			delete(h.rooms, m.room)
		}
	}
	h.mu.Unlock()
	h.broadcast(m.room)
	return nil
}
