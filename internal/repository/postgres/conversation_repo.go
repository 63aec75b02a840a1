package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/souqly/convo/internal/errs"
	"github.com/souqly/convo/internal/model"
)

// ConversationRepo implements ConversationRepository using PostgreSQL.
type ConversationRepo struct{ db *DB }

// NewConversationRepo constructs a conversation repository.
func NewConversationRepo(db *DB) *ConversationRepo { return &ConversationRepo{db: db} }

const conversationCols = `id, user1, user2, created_at, last_message, last_message_at, deleted_by::text[], archived_by::text[]`

// Get selects a conversation by ID.
func (r *ConversationRepo) Get(ctx context.Context, id uuid.UUID) (*model.Conversation, error) {
	const q = `SELECT ` + conversationCols + ` FROM conversations WHERE id=$1`
	c, err := scanConversation(r.db.q(ctx).QueryRow(ctx, q, id))
	return c, mapErr(err)
}

// FindByPair selects the conversation of a and b regardless of order.
func (r *ConversationRepo) FindByPair(ctx context.Context, a, b uuid.UUID) (*model.Conversation, error) {
	const q = `SELECT ` + conversationCols + ` FROM conversations
WHERE (user1=$1 AND user2=$2) OR (user1=$2 AND user2=$1) LIMIT 1`
	c, err := scanConversation(r.db.q(ctx).QueryRow(ctx, q, a, b))
	return c, mapErr(err)
}

// Create inserts a conversation with empty soft state. The pair index turns a lost race into errs.ErrConflict.
func (r *ConversationRepo) Create(ctx context.Context, a, b uuid.UUID) (*model.Conversation, error) {
	const q = `INSERT INTO conversations (user1, user2) VALUES ($1, $2) RETURNING ` + conversationCols
	c, err := scanConversation(r.db.q(ctx).QueryRow(ctx, q, a, b))
	return c, mapErr(err)
}

// ListForUser returns conversations where userID participates and has not soft-deleted.
func (r *ConversationRepo) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Conversation, error) {
	const q = `SELECT ` + conversationCols + ` FROM conversations
WHERE (user1=$1 OR user2=$1) AND NOT ($1 = ANY(deleted_by))
ORDER BY last_message_at DESC NULLS LAST, created_at DESC`
	rows, err := r.db.q(ctx).Query(ctx, q, userID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := make([]model.Conversation, 0)
	for rows.Next() {
		c, err := scanConversation(rows)
		if err != nil {
			return nil, mapErr(err)
		}
		out = append(out, *c)
	}
	return out, mapErr(rows.Err())
}

// AddDeletedBy adds userID to deleted_by.
func (r *ConversationRepo) AddDeletedBy(ctx context.Context, id, userID uuid.UUID) error {
	return r.addToSet(ctx, "deleted_by", id, userID)
}

// RemoveDeletedBy removes userID from deleted_by.
func (r *ConversationRepo) RemoveDeletedBy(ctx context.Context, id, userID uuid.UUID) error {
	return r.removeFromSet(ctx, "deleted_by", id, userID)
}

// AddArchivedBy adds userID to archived_by.
func (r *ConversationRepo) AddArchivedBy(ctx context.Context, id, userID uuid.UUID) error {
	return r.addToSet(ctx, "archived_by", id, userID)
}

// RemoveArchivedBy removes userID from archived_by.
func (r *ConversationRepo) RemoveArchivedBy(ctx context.Context, id, userID uuid.UUID) error {
	return r.removeFromSet(ctx, "archived_by", id, userID)
}

// TouchLastMessage overwrites last_message/last_message_at (last write wins).
func (r *ConversationRepo) TouchLastMessage(ctx context.Context, id uuid.UUID, summary string, at time.Time) error {
	const q = `UPDATE conversations SET last_message=$2, last_message_at=$3 WHERE id=$1`
	tag, err := r.db.q(ctx).Exec(ctx, q, id, summary, at)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// column is one of the fixed set columns, never caller input.
func (r *ConversationRepo) addToSet(ctx context.Context, column string, id, userID uuid.UUID) error {
	q := fmt.Sprintf(`UPDATE conversations SET %[1]s = array_append(array_remove(%[1]s, $2), $2) WHERE id=$1`, column)
	return r.execSet(ctx, q, id, userID)
}

func (r *ConversationRepo) removeFromSet(ctx context.Context, column string, id, userID uuid.UUID) error {
	q := fmt.Sprintf(`UPDATE conversations SET %[1]s = array_remove(%[1]s, $2) WHERE id=$1`, column)
	return r.execSet(ctx, q, id, userID)
}

func (r *ConversationRepo) execSet(ctx context.Context, q string, id, userID uuid.UUID) error {
	tag, err := r.db.q(ctx).Exec(ctx, q, id, userID)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func scanConversation(row pgx.Row) (*model.Conversation, error) {
	var (
		c        model.Conversation
		deleted  []string
		archived []string
	)
	if err := row.Scan(&c.ID, &c.User1, &c.User2, &c.CreatedAt, &c.LastMessage, &c.LastMessageAt, &deleted, &archived); err != nil {
		return nil, err
	}
	var err error
	if c.DeletedBy, err = parseIDs(deleted); err != nil {
		return nil, err
	}
	if c.ArchivedBy, err = parseIDs(archived); err != nil {
		return nil, err
	}
	return &c, nil
}

func parseIDs(raw []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.FromString(s)
		if err != nil {
			return nil, fmt.Errorf("bad uuid %q: %w", s, err)
		}
		out = append(out, id)
	}
	return out, nil
}
