package convert

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/souqly/convo/internal/model"
)

func mustUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.FromString(s)
	if err != nil {
		t.Fatalf("bad uuid %q: %v", s, err)
	}
	return id
}

func TestToProtoMessage(t *testing.T) {
	t.Parallel()

	if ToProtoMessage(nil) != nil {
		t.Fatalf("nil domain message must give nil pb")
	}

	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	m := &model.Message{
		ID:             mustUUID(t, "6f1cbe8e-b2e7-4a3b-9f6e-2a2c0f2f9c11"),
		ConversationID: mustUUID(t, "0d4e8e2f-1b61-4b0c-8d9c-7a0d7a7f2c01"),
		SenderID:       mustUUID(t, "9a3f1e27-5c0b-4d8e-b1f2-3c4d5e6f7a80"),
		Content:        "hi",
		Attachments:    []string{"https://cdn/a.png"},
		CreatedAt:      created,
	}
	p := ToProtoMessage(m)
	if p.Id != m.ID.String() || p.ConversationId != m.ConversationID.String() || p.SenderId != m.SenderID.String() {
		t.Fatalf("id mismatch: %v", p)
	}
	if !p.CreatedAt.AsTime().Equal(created) {
		t.Fatalf("created_at mismatch: %v", p.CreatedAt.AsTime())
	}
	if p.ReadAt != nil || p.IsRead {
		t.Fatalf("unread message must have no read_at")
	}

	p.Attachments[0] = "changed"
	if m.Attachments[0] != "https://cdn/a.png" {
		t.Fatalf("attachments must be copied")
	}

	readAt := created.Add(time.Minute)
	m.MergeRead(true, &readAt)
	p = ToProtoMessage(m)
	if !p.IsRead || !p.ReadAt.AsTime().Equal(readAt) {
		t.Fatalf("read state mismatch: %v", p)
	}
}

func TestToProtoMessages_KeepsOrder(t *testing.T) {
	t.Parallel()

	in := []model.Message{{Content: "a"}, {Content: "b"}, {Content: "c"}}
	out := ToProtoMessages(in)
	if len(out) != 3 || out[0].Content != "a" || out[2].Content != "c" {
		t.Fatalf("order mismatch: %v", out)
	}
	if ToProtoMessages(nil) == nil {
		t.Fatalf("empty input must give an empty, non-nil slice")
	}
	if out[0].CreatedAt != nil {
		t.Fatalf("zero time must map to nil timestamp")
	}
}

func TestToProtoConversation_ViewerRelative(t *testing.T) {
	t.Parallel()

	a := mustUUID(t, "11111111-1111-4111-8111-111111111111")
	b := mustUUID(t, "22222222-2222-4222-8222-222222222222")
	last := "see you"
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := &model.Conversation{
		ID:            mustUUID(t, "33333333-3333-4333-8333-333333333333"),
		User1:         a,
		User2:         b,
		CreatedAt:     at.Add(-time.Hour),
		LastMessage:   &last,
		LastMessageAt: &at,
		ArchivedBy:    []uuid.UUID{b},
	}

	fromA := ToProtoConversation(c, a)
	if fromA.PeerId != b.String() || fromA.Archived {
		t.Fatalf("viewer a: %v", fromA)
	}
	if fromA.LastMessage != last || !fromA.LastMessageAt.AsTime().Equal(at) {
		t.Fatalf("last message mismatch: %v", fromA)
	}

	fromB := ToProtoConversation(c, b)
	if fromB.PeerId != a.String() || !fromB.Archived {
		t.Fatalf("viewer b: %v", fromB)
	}

	c.LastMessage, c.LastMessageAt = nil, nil
	if got := ToProtoConversation(c, a); got.LastMessage != "" || got.LastMessageAt != nil {
		t.Fatalf("fresh conversation must carry no last message: %v", got)
	}
}

func TestToProtoSummary_PeerDisplay(t *testing.T) {
	t.Parallel()

	a := mustUUID(t, "11111111-1111-4111-8111-111111111111")
	b := mustUUID(t, "22222222-2222-4222-8222-222222222222")
	cs := &model.ConversationSummary{
		Conversation: model.Conversation{User1: a, User2: b},
		Peer:         model.Profile{ID: b, Username: "bob", AvatarURL: "https://cdn/bob.png"},
		Archived:     true,
	}
	got := ToProtoSummary(cs, a)
	if got.PeerName != "bob" || got.PeerAvatarUrl != "https://cdn/bob.png" || !got.Archived {
		t.Fatalf("summary mismatch: %v", got)
	}
}

func TestToProtoProfiles(t *testing.T) {
	t.Parallel()

	id := mustUUID(t, "22222222-2222-4222-8222-222222222222")
	out := ToProtoProfiles([]model.Profile{{ID: id, Username: "bob", FullName: "Bob B", AvatarURL: "x"}})
	if len(out) != 1 || out[0].Id != id.String() || out[0].FullName != "Bob B" || out[0].AvatarUrl != "x" {
		t.Fatalf("profile mismatch: %v", out)
	}
}
