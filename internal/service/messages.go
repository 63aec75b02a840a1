package service

import (
	"context"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/souqly/convo/internal/errs"
	"github.com/souqly/convo/internal/model"
	"github.com/souqly/convo/internal/repository"
	"github.com/souqly/convo/internal/retry"
)

// Message limits.
const (
	MaxContentRunes = 4000
	MaxAttachments  = 10
)

// MessageService loads, appends and flags the messages of a conversation.
type MessageService interface {
	// LoadHistory returns the whole thread, oldest first.
	LoadHistory(ctx context.Context, convID uuid.UUID) ([]model.Message, error)
	// Send stores a message and refreshes the conversation summary in one transaction.
	Send(ctx context.Context, convID, senderID uuid.UUID, content string, attachments []string) (*model.Message, error)
	// MarkThreadRead flips every unread message from the peer. Failures are deferred, never returned.
	MarkThreadRead(ctx context.Context, convID, readerID uuid.UUID, now time.Time) int64
	// MarkMessageRead flips one incoming message. Failures are deferred to a thread-wide retry.
	MarkMessageRead(ctx context.Context, convID, msgID, readerID uuid.UUID, now time.Time) bool
}

type MessageServiceImpl struct {
	convs  repository.ConversationRepository
	msgs   repository.MessageRepository
	tx     repository.Transactor
	reads  *ReadReconciler
	policy retry.Policy
	log    *zap.Logger

	now   func() time.Time
	newID func() (uuid.UUID, error)
}

var _ MessageService = (*MessageServiceImpl)(nil)

// NewMessageService wires the adapter. reads receives mark-read failures for later retry.
func NewMessageService(convs repository.ConversationRepository, msgs repository.MessageRepository, tx repository.Transactor, reads *ReadReconciler, policy retry.Policy, log *zap.Logger) *MessageServiceImpl {
	if log == nil {
		log = zap.NewNop()
	}
	return &MessageServiceImpl{
		convs:  convs,
		msgs:   msgs,
		tx:     tx,
		reads:  reads,
		policy: policy,
		log:    log,
		now:    time.Now,
		newID:  uuid.NewV4,
	}
}

func (s *MessageServiceImpl) LoadHistory(ctx context.Context, convID uuid.UUID) ([]model.Message, error) {
	if convID == uuid.Nil {
		return nil, errs.Validation("empty conversation id")
	}
	var out []model.Message
	err := retry.Do(ctx, s.policy, func(ctx context.Context) (err error) {
		out, err = s.msgs.ListByConversation(ctx, convID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Send validates input, then inserts the message and updates the conversation
// summary atomically. The message ID is fixed before the first attempt, so a
// retried attempt finds the row written by an earlier one instead of duplicating it.
func (s *MessageServiceImpl) Send(ctx context.Context, convID, senderID uuid.UUID, content string, attachments []string) (*model.Message, error) {
	if convID == uuid.Nil || senderID == uuid.Nil {
		return nil, errs.Validation("empty conversation/sender id")
	}
	content = strings.TrimSpace(content)
	if err := validateMessage(content, attachments); err != nil {
		return nil, err
	}
	id, err := s.newID()
	if err != nil {
		return nil, err
	}
	msg := &model.Message{
		ID:             id,
		ConversationID: convID,
		SenderID:       senderID,
		Content:        content,
		Attachments:    append([]string{}, attachments...),
		CreatedAt:      s.now().UTC(),
	}

	var stored *model.Message
	err = retry.Do(ctx, s.policy, func(ctx context.Context) error {
		return s.tx.InTx(ctx, func(ctx context.Context) error {
			conv, err := s.convs.Get(ctx, convID)
			if err != nil {
				return err
			}
			if !conv.HasParticipant(senderID) {
				return errs.ErrNotParticipant
			}
			stored, err = s.msgs.Insert(ctx, msg)
			if err != nil {
				return err
			}
			return s.convs.TouchLastMessage(ctx, convID, stored.Summary(), stored.CreatedAt)
		})
	})
	if err != nil {
		s.log.Warn("send failed",
			zap.Stringer("conversation_id", convID),
			zap.Stringer("message_id", id),
			zap.Error(err))
		return nil, err
	}
	return stored, nil
}

func validateMessage(content string, attachments []string) error {
	if content == "" && len(attachments) == 0 {
		return errs.Validation("message has neither content nor attachments")
	}
	if n := utf8.RuneCountInString(content); n > MaxContentRunes {
		return errs.Validation("content too long (%d > %d)", n, MaxContentRunes)
	}
	if len(attachments) > MaxAttachments {
		return errs.Validation("too many attachments (%d > %d)", len(attachments), MaxAttachments)
	}
	for i, a := range attachments {
		u, err := url.Parse(a)
		if err != nil || !u.IsAbs() || u.Host == "" {
			return errs.Validation("attachment[%d] is not an absolute url", i)
		}
	}
	return nil
}

func (s *MessageServiceImpl) MarkThreadRead(ctx context.Context, convID, readerID uuid.UUID, now time.Time) int64 {
	n, err := s.reads.markThread(ctx, convID, readerID, now)
	if err != nil {
		s.log.Warn("mark thread read failed, deferred",
			zap.Stringer("conversation_id", convID),
			zap.Stringer("reader_id", readerID),
			zap.Error(err))
		s.reads.Defer(convID, readerID)
		return 0
	}
	return n
}

func (s *MessageServiceImpl) MarkMessageRead(ctx context.Context, convID, msgID, readerID uuid.UUID, now time.Time) bool {
	var ok bool
	err := retry.Do(ctx, s.policy, func(ctx context.Context) (err error) {
		ok, err = s.msgs.MarkMessageRead(ctx, msgID, readerID, now)
		return err
	})
	if err != nil {
		s.log.Warn("mark message read failed, deferred",
			zap.Stringer("conversation_id", convID),
			zap.Stringer("message_id", msgID),
			zap.Error(err))
		s.reads.Defer(convID, readerID)
		return false
	}
	return ok
}
