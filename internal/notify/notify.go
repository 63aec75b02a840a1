// Package notify delivers the "new message" side effect to the recipient.
package notify

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/souqly/convo/internal/model"
)

// Notifier tells recipientID that msg arrived in a thread they have open.
type Notifier interface {
	MessageReceived(ctx context.Context, recipientID uuid.UUID, msg model.Message) error
}

// LogNotifier writes one log line per notification.
type LogNotifier struct{ Log *zap.Logger }

func (n LogNotifier) MessageReceived(_ context.Context, recipientID uuid.UUID, msg model.Message) error {
	log := n.Log
	if log == nil {
		return nil
	}
	log.Info("message received",
		zap.Stringer("recipient_id", recipientID),
		zap.Stringer("conversation_id", msg.ConversationID),
		zap.Stringer("message_id", msg.ID),
		zap.Int("attachments", len(msg.Attachments)),
	)
	return nil
}

// Multi fans out to every notifier and joins their errors.
type Multi []Notifier

func (m Multi) MessageReceived(ctx context.Context, recipientID uuid.UUID, msg model.Message) error {
	var errs []error
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := n.MessageReceived(ctx, recipientID, msg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
