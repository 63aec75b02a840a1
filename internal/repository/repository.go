// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/souqly/convo/internal/model"
)

// ConversationRepository persists conversations and their per-user soft state.
type ConversationRepository interface {
	// Get loads a conversation by ID.
	Get(ctx context.Context, id uuid.UUID) (*model.Conversation, error)
	// FindByPair looks the pair up in either ordering.
	FindByPair(ctx context.Context, a, b uuid.UUID) (*model.Conversation, error)
	// Create inserts a new conversation; a pair collision yields errs.ErrConflict.
	Create(ctx context.Context, a, b uuid.UUID) (*model.Conversation, error)
	// ListForUser returns the user's visible conversations, newest activity first.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Conversation, error)
	// AddDeletedBy adds userID to deleted_by (set semantics).
	AddDeletedBy(ctx context.Context, id, userID uuid.UUID) error
	// RemoveDeletedBy removes userID from deleted_by.
	RemoveDeletedBy(ctx context.Context, id, userID uuid.UUID) error
	// AddArchivedBy adds userID to archived_by (set semantics).
	AddArchivedBy(ctx context.Context, id, userID uuid.UUID) error
	// RemoveArchivedBy removes userID from archived_by.
	RemoveArchivedBy(ctx context.Context, id, userID uuid.UUID) error
	// TouchLastMessage overwrites the denormalized summary unconditionally.
	TouchLastMessage(ctx context.Context, id uuid.UUID, summary string, at time.Time) error
}

// MessageRepository persists messages and their read flags.
type MessageRepository interface {
	// Insert stores m; re-inserting the same ID is a no-op that returns the stored row.
	Insert(ctx context.Context, m *model.Message) (*model.Message, error)
	// ListByConversation returns the whole thread in created_at order.
	ListByConversation(ctx context.Context, conversationID uuid.UUID) ([]model.Message, error)
	// MarkThreadRead flips every unread message not sent by readerID and returns the affected count.
	MarkThreadRead(ctx context.Context, conversationID, readerID uuid.UUID, at time.Time) (int64, error)
	// MarkMessageRead flips one message if it is unread and not sent by readerID.
	MarkMessageRead(ctx context.Context, messageID, readerID uuid.UUID, at time.Time) (bool, error)
}

// ProfileRepository resolves display data for users (read-only).
type ProfileRepository interface {
	// GetMany loads the profiles that exist among ids.
	GetMany(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]model.Profile, error)
	// Search matches usernames case-insensitively, excluding one user.
	Search(ctx context.Context, query string, exclude uuid.UUID, limit int) ([]model.Profile, error)
}

// Transactor runs fn inside a single storage transaction carried by ctx.
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}
