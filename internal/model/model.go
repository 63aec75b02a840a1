// Package model defines domain entities used by services and repositories.
package model

import (
	"slices"
	"time"

	"github.com/gofrs/uuid/v5"
)

// AttachmentSummary is the conversation summary used when a message carries no text.
const AttachmentSummary = "attachment sent"

// Conversation is the unique thread between exactly two users.
type Conversation struct {
	ID            uuid.UUID   // server-assigned PK
	User1         uuid.UUID   // participant that created the row
	User2         uuid.UUID   // the other participant
	CreatedAt     time.Time
	LastMessage   *string     // denormalized snippet, nil until the first send
	LastMessageAt *time.Time  // nil until the first send
	DeletedBy     []uuid.UUID // per-user visibility suppression
	ArchivedBy    []uuid.UUID // per-user display filter
}

// HasParticipant reports whether id is one of the two participants.
func (c *Conversation) HasParticipant(id uuid.UUID) bool {
	return id != uuid.Nil && (c.User1 == id || c.User2 == id)
}

// Peer returns the participant that is not id.
func (c *Conversation) Peer(id uuid.UUID) uuid.UUID {
	if c.User1 == id {
		return c.User2
	}
	return c.User1
}

// DeletedFor reports whether id has soft-deleted the conversation.
func (c *Conversation) DeletedFor(id uuid.UUID) bool { return slices.Contains(c.DeletedBy, id) }

// ArchivedFor reports whether id has archived the conversation.
func (c *Conversation) ArchivedFor(id uuid.UUID) bool { return slices.Contains(c.ArchivedBy, id) }

// Message is a single entry of a conversation.
type Message struct {
	ID             uuid.UUID  `json:"id"`
	ConversationID uuid.UUID  `json:"conversation_id"`
	SenderID       uuid.UUID  `json:"sender_id"`
	Content        string     `json:"content"`
	Attachments    []string   `json:"attachments"`
	CreatedAt      time.Time  `json:"created_at"`
	IsRead         bool       `json:"is_read"`
	ReadAt         *time.Time `json:"read_at"`
}

// Summary returns the denormalized conversation snippet for this message.
func (m *Message) Summary() string {
	if m.Content != "" {
		return m.Content
	}
	return AttachmentSummary
}

// MergeRead applies an observed read state without ever reverting it.
// It reports whether m changed.
func (m *Message) MergeRead(isRead bool, readAt *time.Time) bool {
	if !isRead || m.IsRead {
		return false
	}
	m.IsRead = true
	if readAt != nil {
		at := *readAt
		m.ReadAt = &at
	}
	return true
}

// Profile is the read-only display record of a user.
type Profile struct {
	ID        uuid.UUID
	Username  string
	FullName  string
	AvatarURL string
}

// DisplayName prefers the full name and falls back to the username.
func (p Profile) DisplayName() string {
	if p.FullName != "" {
		return p.FullName
	}
	return p.Username
}

// ConversationSummary is a conversation as seen by one viewer in the inbox.
type ConversationSummary struct {
	Conversation Conversation
	Peer         Profile
	Archived     bool
}
