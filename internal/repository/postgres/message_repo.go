package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/souqly/convo/internal/model"
)

// MessageRepo implements MessageRepository using PostgreSQL.
type MessageRepo struct{ db *DB }

// NewMessageRepo constructs a message repository.
func NewMessageRepo(db *DB) *MessageRepo { return &MessageRepo{db: db} }

const messageCols = `id, conversation_id, sender_id, content, attachments, created_at, is_read, read_at`

// Insert stores m. The ID is client generated, so a retried insert finds the first row instead of duplicating it.
func (r *MessageRepo) Insert(ctx context.Context, m *model.Message) (*model.Message, error) {
	const ins = `
INSERT INTO messages (id, conversation_id, sender_id, content, attachments, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO NOTHING
RETURNING ` + messageCols
	const sel = `SELECT ` + messageCols + ` FROM messages WHERE id=$1`

	attachments := m.Attachments
	if attachments == nil {
		attachments = []string{}
	}
	q := r.db.q(ctx)
	out, err := scanMessage(q.QueryRow(ctx, ins, m.ID, m.ConversationID, m.SenderID, m.Content, attachments, m.CreatedAt))
	if errors.Is(err, pgx.ErrNoRows) {
		out, err = scanMessage(q.QueryRow(ctx, sel, m.ID))
	}
	if err != nil {
		return nil, mapErr(err)
	}
	return out, nil
}

// ListByConversation returns all messages of a conversation, oldest first.
func (r *MessageRepo) ListByConversation(ctx context.Context, conversationID uuid.UUID) ([]model.Message, error) {
	const q = `SELECT ` + messageCols + ` FROM messages WHERE conversation_id=$1 ORDER BY created_at ASC, id ASC`
	rows, err := r.db.q(ctx).Query(ctx, q, conversationID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := make([]model.Message, 0)
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, mapErr(err)
		}
		out = append(out, *m)
	}
	return out, mapErr(rows.Err())
}

// MarkThreadRead flips unread messages from the other participant. Re-running it affects nothing.
func (r *MessageRepo) MarkThreadRead(ctx context.Context, conversationID, readerID uuid.UUID, at time.Time) (int64, error) {
	const q = `UPDATE messages SET is_read=true, read_at=$3 WHERE conversation_id=$1 AND sender_id<>$2 AND NOT is_read`
	tag, err := r.db.q(ctx).Exec(ctx, q, conversationID, readerID, at)
	if err != nil {
		return 0, mapErr(err)
	}
	return tag.RowsAffected(), nil
}

// MarkMessageRead flips a single message.
func (r *MessageRepo) MarkMessageRead(ctx context.Context, messageID, readerID uuid.UUID, at time.Time) (bool, error) {
	const q = `UPDATE messages SET is_read=true, read_at=$3 WHERE id=$1 AND sender_id<>$2 AND NOT is_read`
	tag, err := r.db.q(ctx).Exec(ctx, q, messageID, readerID, at)
	if err != nil {
		return false, mapErr(err)
	}
	return tag.RowsAffected() == 1, nil
}

func scanMessage(row pgx.Row) (*model.Message, error) {
	var m model.Message
	if err := row.Scan(&m.ID, &m.ConversationID, &m.SenderID, &m.Content, &m.Attachments, &m.CreatedAt, &m.IsRead, &m.ReadAt); err != nil {
		return nil, err
	}
	return &m, nil
}
