// Package service contains the conversation directory, the message store adapter
// and the per-viewer thread state built on top of them.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/souqly/convo/internal/errs"
	"github.com/souqly/convo/internal/model"
	"github.com/souqly/convo/internal/repository"
	"github.com/souqly/convo/internal/retry"
)

// SearchLimit caps SearchProfiles results.
const SearchLimit = 20

// DirectoryService resolves conversation identity and the per-user conversation list.
type DirectoryService interface {
	// ListConversations returns the user's visible conversations, newest activity first.
	ListConversations(ctx context.Context, userID uuid.UUID) ([]model.Conversation, error)
	// FindOrCreateConversation returns the unique conversation of the pair, creating it if needed.
	FindOrCreateConversation(ctx context.Context, a, b uuid.UUID) (*model.Conversation, error)
	// Conversation loads a conversation the user participates in.
	Conversation(ctx context.Context, convID, userID uuid.UUID) (*model.Conversation, error)
	SoftDelete(ctx context.Context, convID, userID uuid.UUID) error
	Restore(ctx context.Context, convID, userID uuid.UUID) error
	Archive(ctx context.Context, convID, userID uuid.UUID) error
	Unarchive(ctx context.Context, convID, userID uuid.UUID) error
	// TouchLastMessage overwrites the denormalized summary (last write wins).
	TouchLastMessage(ctx context.Context, convID uuid.UUID, summary string, at time.Time) error
	// Inbox is ListConversations joined with the peer's profile and the viewer's archive flag.
	Inbox(ctx context.Context, userID uuid.UUID) ([]model.ConversationSummary, error)
	// SearchProfiles matches usernames for starting a conversation, excluding the caller.
	SearchProfiles(ctx context.Context, query string, excludeID uuid.UUID) ([]model.Profile, error)
}

type DirectoryServiceImpl struct {
	convs    repository.ConversationRepository
	profiles repository.ProfileRepository
	policy   retry.Policy
	log      *zap.Logger
}

var _ DirectoryService = (*DirectoryServiceImpl)(nil)

// NewDirectoryService constructs the directory. Store calls are bounded and retried per policy.
func NewDirectoryService(convs repository.ConversationRepository, profiles repository.ProfileRepository, policy retry.Policy, log *zap.Logger) *DirectoryServiceImpl {
	if log == nil {
		log = zap.NewNop()
	}
	return &DirectoryServiceImpl{convs: convs, profiles: profiles, policy: policy, log: log}
}

func (s *DirectoryServiceImpl) ListConversations(ctx context.Context, userID uuid.UUID) ([]model.Conversation, error) {
	if userID == uuid.Nil {
		return nil, errs.Validation("empty user id")
	}
	var out []model.Conversation
	err := retry.Do(ctx, s.policy, func(ctx context.Context) (err error) {
		out, err = s.convs.ListForUser(ctx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FindOrCreateConversation looks the pair up in either order. A concurrent creator
// that wins the unique index is re-fetched, so callers never see ErrConflict.
func (s *DirectoryServiceImpl) FindOrCreateConversation(ctx context.Context, a, b uuid.UUID) (*model.Conversation, error) {
	if a == uuid.Nil || b == uuid.Nil {
		return nil, errs.Validation("empty participant id")
	}
	if a == b {
		return nil, errs.Validation("conversation needs two distinct users")
	}
	var out *model.Conversation
	err := retry.Do(ctx, s.policy, func(ctx context.Context) error {
		c, err := s.convs.FindByPair(ctx, a, b)
		if err == nil {
			out = c
			return nil
		}
		if !errors.Is(err, errs.ErrNotFound) {
			return err
		}
		c, err = s.convs.Create(ctx, a, b)
		if errors.Is(err, errs.ErrConflict) {
			s.log.Debug("conversation created concurrently, re-fetching", zap.Stringer("a", a), zap.Stringer("b", b))
			c, err = s.convs.FindByPair(ctx, a, b)
		}
		if err != nil {
			return err
		}
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *DirectoryServiceImpl) Conversation(ctx context.Context, convID, userID uuid.UUID) (*model.Conversation, error) {
	if convID == uuid.Nil || userID == uuid.Nil {
		return nil, errs.Validation("empty conversation/user id")
	}
	var c *model.Conversation
	err := retry.Do(ctx, s.policy, func(ctx context.Context) (err error) {
		c, err = s.convs.Get(ctx, convID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if !c.HasParticipant(userID) {
		return nil, errs.ErrNotParticipant
	}
	return c, nil
}

// SoftDelete hides the conversation for userID only. Messages and the peer's view are untouched.
func (s *DirectoryServiceImpl) SoftDelete(ctx context.Context, convID, userID uuid.UUID) error {
	return s.mutate(ctx, convID, userID, s.convs.AddDeletedBy)
}

// Restore undoes SoftDelete for userID.
func (s *DirectoryServiceImpl) Restore(ctx context.Context, convID, userID uuid.UUID) error {
	return s.mutate(ctx, convID, userID, s.convs.RemoveDeletedBy)
}

// Archive flags the conversation for userID. It stays in ListConversations.
func (s *DirectoryServiceImpl) Archive(ctx context.Context, convID, userID uuid.UUID) error {
	return s.mutate(ctx, convID, userID, s.convs.AddArchivedBy)
}

func (s *DirectoryServiceImpl) Unarchive(ctx context.Context, convID, userID uuid.UUID) error {
	return s.mutate(ctx, convID, userID, s.convs.RemoveArchivedBy)
}

func (s *DirectoryServiceImpl) mutate(ctx context.Context, convID, userID uuid.UUID, op func(ctx context.Context, id, userID uuid.UUID) error) error {
	if _, err := s.Conversation(ctx, convID, userID); err != nil {
		return err
	}
	return retry.Do(ctx, s.policy, func(ctx context.Context) error {
		return op(ctx, convID, userID)
	})
}

func (s *DirectoryServiceImpl) TouchLastMessage(ctx context.Context, convID uuid.UUID, summary string, at time.Time) error {
	if convID == uuid.Nil {
		return errs.Validation("empty conversation id")
	}
	return retry.Do(ctx, s.policy, func(ctx context.Context) error {
		return s.convs.TouchLastMessage(ctx, convID, summary, at)
	})
}

func (s *DirectoryServiceImpl) Inbox(ctx context.Context, userID uuid.UUID) ([]model.ConversationSummary, error) {
	convs, err := s.ListConversations(ctx, userID)
	if err != nil {
		return nil, err
	}
	peers := make([]uuid.UUID, 0, len(convs))
	for i := range convs {
		peers = append(peers, convs[i].Peer(userID))
	}
	var profiles map[uuid.UUID]model.Profile
	err = retry.Do(ctx, s.policy, func(ctx context.Context) (err error) {
		profiles, err = s.profiles.GetMany(ctx, peers)
		return err
	})
	if err != nil {
		return nil, err
	}

	out := make([]model.ConversationSummary, 0, len(convs))
	for i := range convs {
		peer := convs[i].Peer(userID)
		p, ok := profiles[peer]
		if !ok {
			p = model.Profile{ID: peer}
		}
		out = append(out, model.ConversationSummary{
			Conversation: convs[i],
			Peer:         p,
			Archived:     convs[i].ArchivedFor(userID),
		})
	}
	return out, nil
}

func (s *DirectoryServiceImpl) SearchProfiles(ctx context.Context, query string, excludeID uuid.UUID) ([]model.Profile, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []model.Profile{}, nil
	}
	var out []model.Profile
	err := retry.Do(ctx, s.policy, func(ctx context.Context) (err error) {
		out, err = s.profiles.Search(ctx, query, excludeID, SearchLimit)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
