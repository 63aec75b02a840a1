// Package convert maps domain entities onto the convo.v1 wire messages.
package convert

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/souqly/convo/gen/go/convo/v1"
	"github.com/souqly/convo/internal/model"
)

// --- helpers ---

func ts(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func tsPtr(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return ts(*t)
}

// --- Message ---

// ToProtoMessage converts a domain message. Attachments are copied.
func ToProtoMessage(m *model.Message) *pb.Message {
	if m == nil {
		return nil
	}
	return &pb.Message{
		Id:             m.ID.String(),
		ConversationId: m.ConversationID.String(),
		SenderId:       m.SenderID.String(),
		Content:        m.Content,
		Attachments:    append([]string(nil), m.Attachments...),
		CreatedAt:      ts(m.CreatedAt),
		IsRead:         m.IsRead,
		ReadAt:         tsPtr(m.ReadAt),
	}
}

// ToProtoMessages converts a message list, keeping order.
func ToProtoMessages(in []model.Message) []*pb.Message {
	out := make([]*pb.Message, 0, len(in))
	for i := range in {
		out = append(out, ToProtoMessage(&in[i]))
	}
	return out
}

// --- Conversation ---

// ToProtoConversation converts c as seen by viewer.
func ToProtoConversation(c *model.Conversation, viewer uuid.UUID) *pb.Conversation {
	if c == nil {
		return nil
	}
	out := &pb.Conversation{
		Id:            c.ID.String(),
		PeerId:        c.Peer(viewer).String(),
		LastMessageAt: tsPtr(c.LastMessageAt),
		CreatedAt:     ts(c.CreatedAt),
		Archived:      c.ArchivedFor(viewer),
	}
	if c.LastMessage != nil {
		out.LastMessage = *c.LastMessage
	}
	return out
}

// ToProtoSummary converts one inbox row, peer display data included.
func ToProtoSummary(cs *model.ConversationSummary, viewer uuid.UUID) *pb.Conversation {
	out := ToProtoConversation(&cs.Conversation, viewer)
	out.PeerName = cs.Peer.DisplayName()
	out.PeerAvatarUrl = cs.Peer.AvatarURL
	out.Archived = cs.Archived
	return out
}

// --- Profile ---

// ToProtoProfiles converts search results.
func ToProtoProfiles(in []model.Profile) []*pb.Profile {
	out := make([]*pb.Profile, 0, len(in))
	for _, p := range in {
		out = append(out, &pb.Profile{
			Id:        p.ID.String(),
			Username:  p.Username,
			FullName:  p.FullName,
			AvatarUrl: p.AvatarURL,
		})
	}
	return out
}
