package service

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/souqly/convo/internal/errs"
	"github.com/souqly/convo/internal/feed"
	"github.com/souqly/convo/internal/feed/memory"
	"github.com/souqly/convo/internal/model"
	"github.com/souqly/convo/internal/repository"
)

// memStore is an in-memory stand-in for the Postgres repositories. Committed
// message writes are published to hub the way the change-feed trigger would.
type memStore struct {
	hub *memory.Hub

	txMu sync.Mutex
	mu   sync.Mutex

	convs    map[uuid.UUID]*model.Conversation
	msgs     map[uuid.UUID]*model.Message
	msgOrder []uuid.UUID
	profiles map[uuid.UUID]model.Profile

	// fault injection, each counts down per call
	failInsert      int
	failTouch       int
	failMarkThread  int
	failMarkMessage int
	failList        int
	missFind        int

	inserts int
}

var (
	_ repository.ConversationRepository = (*memStore)(nil)
	_ repository.MessageRepository      = (*memStore)(nil)
	_ repository.ProfileRepository      = (*memStore)(nil)
	_ repository.Transactor             = (*memStore)(nil)
)

var errStoreDown = errors.New("store unreachable")

func newMemStore(hub *memory.Hub) *memStore {
	return &memStore{
		hub:      hub,
		convs:    map[uuid.UUID]*model.Conversation{},
		msgs:     map[uuid.UUID]*model.Message{},
		profiles: map[uuid.UUID]model.Profile{},
	}
}

type memTxKey struct{}

type memTx struct{ events []feed.Event }

func (s *memStore) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(memTxKey{}).(*memTx); ok {
		return fn(ctx)
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	convs, msgs, order := s.cloneLocked()
	s.mu.Unlock()

	tx := &memTx{}
	if err := fn(context.WithValue(ctx, memTxKey{}, tx)); err != nil {
		s.mu.Lock()
		s.convs, s.msgs, s.msgOrder = convs, msgs, order
		s.mu.Unlock()
		return err
	}
	for _, e := range tx.events {
		s.hub.PublishEvent(e)
	}
	return nil
}

func (s *memStore) cloneLocked() (map[uuid.UUID]*model.Conversation, map[uuid.UUID]*model.Message, []uuid.UUID) {
	convs := make(map[uuid.UUID]*model.Conversation, len(s.convs))
	for id, c := range s.convs {
		cp := cloneConv(c)
		convs[id] = &cp
	}
	msgs := make(map[uuid.UUID]*model.Message, len(s.msgs))
	for id, m := range s.msgs {
		cp := cloneMsg(m)
		msgs[id] = &cp
	}
	return convs, msgs, slices.Clone(s.msgOrder)
}

func (s *memStore) emit(ctx context.Context, typ feed.EventType, m model.Message) {
	if s.hub == nil {
		return
	}
	raw, _ := json.Marshal(m)
	e := feed.Event{Type: typ, Table: "messages", Row: raw}
	if tx, ok := ctx.Value(memTxKey{}).(*memTx); ok {
		tx.events = append(tx.events, e)
		return
	}
	s.hub.PublishEvent(e)
}

func countdown(n *int) bool {
	if *n > 0 {
		*n--
		return true
	}
	return false
}

func cloneConv(c *model.Conversation) model.Conversation {
	cp := *c
	cp.DeletedBy = slices.Clone(c.DeletedBy)
	cp.ArchivedBy = slices.Clone(c.ArchivedBy)
	return cp
}

func cloneMsg(m *model.Message) model.Message {
	cp := *m
	cp.Attachments = slices.Clone(m.Attachments)
	if m.ReadAt != nil {
		at := *m.ReadAt
		cp.ReadAt = &at
	}
	return cp
}

// conversations

func (s *memStore) Get(_ context.Context, id uuid.UUID) (*model.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.convs[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	cp := cloneConv(c)
	return &cp, nil
}

func (s *memStore) findLocked(a, b uuid.UUID) *model.Conversation {
	for _, c := range s.convs {
		if (c.User1 == a && c.User2 == b) || (c.User1 == b && c.User2 == a) {
			return c
		}
	}
	return nil
}

func (s *memStore) FindByPair(_ context.Context, a, b uuid.UUID) (*model.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if countdown(&s.missFind) {
		return nil, errs.ErrNotFound
	}
	c := s.findLocked(a, b)
	if c == nil {
		return nil, errs.ErrNotFound
	}
	cp := cloneConv(c)
	return &cp, nil
}

func (s *memStore) Create(_ context.Context, a, b uuid.UUID) (*model.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a == b {
		return nil, errs.Validation("check violation")
	}
	if s.findLocked(a, b) != nil {
		return nil, errs.ErrConflict
	}
	c := &model.Conversation{
		ID:         uuid.Must(uuid.NewV4()),
		User1:      a,
		User2:      b,
		CreatedAt:  time.Now().UTC(),
		DeletedBy:  []uuid.UUID{},
		ArchivedBy: []uuid.UUID{},
	}
	s.convs[c.ID] = c
	cp := cloneConv(c)
	return &cp, nil
}

func (s *memStore) ListForUser(_ context.Context, userID uuid.UUID) ([]model.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if countdown(&s.failList) {
		return nil, errStoreDown
	}
	out := make([]model.Conversation, 0)
	for _, c := range s.convs {
		if c.HasParticipant(userID) && !c.DeletedFor(userID) {
			out = append(out, cloneConv(c))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ai, aj := out[i].LastMessageAt, out[j].LastMessageAt
		switch {
		case ai != nil && aj != nil && !ai.Equal(*aj):
			return ai.After(*aj)
		case ai != nil && aj == nil:
			return true
		case ai == nil && aj != nil:
			return false
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *memStore) setOp(id uuid.UUID, fn func(c *model.Conversation)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.convs[id]
	if !ok {
		return errs.ErrNotFound
	}
	fn(c)
	return nil
}

func addID(set []uuid.UUID, id uuid.UUID) []uuid.UUID {
	if slices.Contains(set, id) {
		return set
	}
	return append(set, id)
}

func removeID(set []uuid.UUID, id uuid.UUID) []uuid.UUID {
	return slices.DeleteFunc(set, func(x uuid.UUID) bool { return x == id })
}

func (s *memStore) AddDeletedBy(_ context.Context, id, userID uuid.UUID) error {
	return s.setOp(id, func(c *model.Conversation) { c.DeletedBy = addID(c.DeletedBy, userID) })
}

func (s *memStore) RemoveDeletedBy(_ context.Context, id, userID uuid.UUID) error {
	return s.setOp(id, func(c *model.Conversation) { c.DeletedBy = removeID(c.DeletedBy, userID) })
}

func (s *memStore) AddArchivedBy(_ context.Context, id, userID uuid.UUID) error {
	return s.setOp(id, func(c *model.Conversation) { c.ArchivedBy = addID(c.ArchivedBy, userID) })
}

func (s *memStore) RemoveArchivedBy(_ context.Context, id, userID uuid.UUID) error {
	return s.setOp(id, func(c *model.Conversation) { c.ArchivedBy = removeID(c.ArchivedBy, userID) })
}

func (s *memStore) TouchLastMessage(_ context.Context, id uuid.UUID, summary string, at time.Time) error {
	s.mu.Lock()
	fail := countdown(&s.failTouch)
	s.mu.Unlock()
	if fail {
		return errStoreDown
	}
	return s.setOp(id, func(c *model.Conversation) {
		c.LastMessage = &summary
		c.LastMessageAt = &at
	})
}

// messages

func (s *memStore) Insert(ctx context.Context, m *model.Message) (*model.Message, error) {
	s.mu.Lock()
	if countdown(&s.failInsert) {
		s.mu.Unlock()
		return nil, errStoreDown
	}
	if existing, ok := s.msgs[m.ID]; ok {
		cp := cloneMsg(existing)
		s.mu.Unlock()
		return &cp, nil
	}
	if _, ok := s.convs[m.ConversationID]; !ok {
		s.mu.Unlock()
		return nil, errs.ErrNotFound
	}
	stored := cloneMsg(m)
	if stored.Attachments == nil {
		stored.Attachments = []string{}
	}
	s.msgs[m.ID] = &stored
	s.msgOrder = append(s.msgOrder, m.ID)
	s.inserts++
	out := cloneMsg(&stored)
	s.mu.Unlock()

	s.emit(ctx, feed.Insert, out)
	return &out, nil
}

func (s *memStore) ListByConversation(_ context.Context, convID uuid.UUID) ([]model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if countdown(&s.failList) {
		return nil, errStoreDown
	}
	out := make([]model.Message, 0)
	for _, id := range s.msgOrder {
		if m := s.msgs[id]; m.ConversationID == convID {
			out = append(out, cloneMsg(m))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *memStore) MarkThreadRead(ctx context.Context, convID, readerID uuid.UUID, at time.Time) (int64, error) {
	s.mu.Lock()
	if countdown(&s.failMarkThread) {
		s.mu.Unlock()
		return 0, errStoreDown
	}
	var changed []model.Message
	for _, id := range s.msgOrder {
		m := s.msgs[id]
		if m.ConversationID == convID && m.SenderID != readerID && !m.IsRead {
			m.IsRead = true
			ts := at
			m.ReadAt = &ts
			changed = append(changed, cloneMsg(m))
		}
	}
	s.mu.Unlock()

	for _, m := range changed {
		s.emit(ctx, feed.Update, m)
	}
	return int64(len(changed)), nil
}

func (s *memStore) MarkMessageRead(ctx context.Context, msgID, readerID uuid.UUID, at time.Time) (bool, error) {
	s.mu.Lock()
	if countdown(&s.failMarkMessage) {
		s.mu.Unlock()
		return false, errStoreDown
	}
	m, ok := s.msgs[msgID]
	if !ok || m.SenderID == readerID || m.IsRead {
		s.mu.Unlock()
		return false, nil
	}
	m.IsRead = true
	ts := at
	m.ReadAt = &ts
	out := cloneMsg(m)
	s.mu.Unlock()

	s.emit(ctx, feed.Update, out)
	return true, nil
}

// profiles

func (s *memStore) addProfile(username string) uuid.UUID {
	id := uuid.Must(uuid.NewV4())
	s.mu.Lock()
	s.profiles[id] = model.Profile{ID: id, Username: username}
	s.mu.Unlock()
	return id
}

func (s *memStore) GetMany(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]model.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[uuid.UUID]model.Profile, len(ids))
	for _, id := range ids {
		if p, ok := s.profiles[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (s *memStore) Search(_ context.Context, query string, exclude uuid.UUID, limit int) ([]model.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Profile, 0)
	for _, p := range s.profiles {
		if p.ID != exclude && strings.Contains(strings.ToLower(p.Username), strings.ToLower(query)) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// message lookup for assertions
func (s *memStore) message(id uuid.UUID) model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneMsg(s.msgs[id])
}

// insertUnannounced stores m without publishing it, as when its NOTIFY went
// out while no listener was connected.
func (s *memStore) insertUnannounced(m model.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := cloneMsg(&m)
	s.msgs[m.ID] = &stored
	s.msgOrder = append(s.msgOrder, m.ID)
}
