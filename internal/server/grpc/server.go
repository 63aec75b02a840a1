// Package grpcserver exposes the conversation engine over gRPC.
package grpcserver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/souqly/convo/gen/go/convo/v1"
	"github.com/souqly/convo/internal/convert"
	"github.com/souqly/convo/internal/errs"
	"github.com/souqly/convo/internal/feed"
	"github.com/souqly/convo/internal/limiter"
	"github.com/souqly/convo/internal/presence"
	"github.com/souqly/convo/internal/retry"
	"github.com/souqly/convo/internal/service"
	"github.com/souqly/convo/internal/storage/s3"
)

// MaxAttachmentBytes caps UploadAttachment payloads.
const MaxAttachmentBytes = 8 << 20

// Deps are the collaborators of Server.
type Deps struct {
	Directory service.DirectoryService
	Messages  service.MessageService
	// Thread is the template for the per-stream threads of WatchThread.
	Thread          service.ThreadDeps
	Presence        feed.Presence
	PresenceChannel string
	PresencePolicy  retry.Policy
	Uploader        s3.Uploader
	Limiter         limiter.Limiter
	SignKey         []byte
	Log             *zap.Logger
}

// Server wires services into gRPC handlers.
type Server struct {
	pb.UnimplementedMessengerServer

	dir      service.DirectoryService
	msgs     service.MessageService
	thread   service.ThreadDeps
	presence feed.Presence
	channel  string
	ppolicy  retry.Policy
	uploader s3.Uploader
	limiter  limiter.Limiter
	signKey  []byte
	log      *zap.Logger
	now      func() time.Time
}

var _ pb.MessengerServer = (*Server)(nil)

// New constructs the gRPC handler set.
func New(d Deps) *Server {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Uploader == nil {
		d.Uploader = s3.NoopUploader{}
	}
	if d.Limiter == nil {
		d.Limiter = limiter.Unlimited{}
	}
	if d.PresenceChannel == "" {
		d.PresenceChannel = presence.DefaultChannel
	}
	return &Server{
		dir:      d.Directory,
		msgs:     d.Messages,
		thread:   d.Thread,
		presence: d.Presence,
		channel:  d.PresenceChannel,
		ppolicy:  d.PresencePolicy,
		uploader: d.Uploader,
		limiter:  d.Limiter,
		signKey:  d.SignKey,
		log:      d.Log,
		now:      time.Now,
	}
}

// --- Conversations ---

// ListConversations returns the caller's inbox, newest activity first.
func (s *Server) ListConversations(ctx context.Context, _ *pb.Empty) (*pb.ListConversationsResponse, error) {
	sess, err := s.caller(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	inbox, err := s.dir.Inbox(ctx, sess.UserID)
	if err != nil {
		return nil, toStatus("list conversations", err)
	}
	out := make([]*pb.Conversation, 0, len(inbox))
	for i := range inbox {
		out = append(out, convert.ToProtoSummary(&inbox[i], sess.UserID))
	}
	return &pb.ListConversationsResponse{Conversations: out}, nil
}

// StartConversation finds or creates the conversation with another user.
func (s *Server) StartConversation(ctx context.Context, req *pb.StartConversationRequest) (*pb.StartConversationResponse, error) {
	sess, err := s.caller(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	peer, err := uuid.FromString(req.GetWith())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "bad peer id")
	}
	if err := s.throttle(ctx, sess.UserID, limiter.ActionStart); err != nil {
		return nil, toStatus("start conversation", err)
	}
	conv, err := s.dir.FindOrCreateConversation(ctx, sess.UserID, peer)
	if err != nil {
		return nil, toStatus("start conversation", err)
	}
	return &pb.StartConversationResponse{Conversation: convert.ToProtoConversation(conv, sess.UserID)}, nil
}

func (s *Server) DeleteConversation(ctx context.Context, req *pb.ConversationRequest) (*pb.Empty, error) {
	return s.flag(ctx, "delete conversation", req, s.dir.SoftDelete)
}

func (s *Server) RestoreConversation(ctx context.Context, req *pb.ConversationRequest) (*pb.Empty, error) {
	return s.flag(ctx, "restore conversation", req, s.dir.Restore)
}

func (s *Server) ArchiveConversation(ctx context.Context, req *pb.ConversationRequest) (*pb.Empty, error) {
	return s.flag(ctx, "archive conversation", req, s.dir.Archive)
}

func (s *Server) UnarchiveConversation(ctx context.Context, req *pb.ConversationRequest) (*pb.Empty, error) {
	return s.flag(ctx, "unarchive conversation", req, s.dir.Unarchive)
}

func (s *Server) flag(ctx context.Context, op string, req *pb.ConversationRequest, apply func(ctx context.Context, convID, userID uuid.UUID) error) (*pb.Empty, error) {
	sess, err := s.caller(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	convID, err := uuid.FromString(req.GetConversationId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "bad conversation id")
	}
	if err := apply(ctx, convID, sess.UserID); err != nil {
		return nil, toStatus(op, err)
	}
	return &pb.Empty{}, nil
}

// --- Messages ---

// LoadHistory returns every message of a conversation the caller participates in.
func (s *Server) LoadHistory(ctx context.Context, req *pb.ConversationRequest) (*pb.LoadHistoryResponse, error) {
	_, convID, err := s.participant(ctx, req.GetConversationId())
	if err != nil {
		return nil, err
	}
	msgs, err := s.msgs.LoadHistory(ctx, convID)
	if err != nil {
		return nil, toStatus("load history", err)
	}
	return &pb.LoadHistoryResponse{Messages: convert.ToProtoMessages(msgs)}, nil
}

// SendMessage appends a message as the caller.
func (s *Server) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.SendMessageResponse, error) {
	sess, err := s.caller(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	convID, err := uuid.FromString(req.GetConversationId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "bad conversation id")
	}
	if err := s.throttle(ctx, sess.UserID, limiter.ActionSend); err != nil {
		return nil, toStatus("send message", err)
	}
	msg, err := s.msgs.Send(ctx, convID, sess.UserID, req.GetContent(), req.GetAttachments())
	if err != nil {
		return nil, toStatus("send message", err)
	}
	return &pb.SendMessageResponse{Message: convert.ToProtoMessage(msg)}, nil
}

// MarkThreadRead flips every unread message from the peer to read.
func (s *Server) MarkThreadRead(ctx context.Context, req *pb.ConversationRequest) (*pb.MarkThreadReadResponse, error) {
	reader, convID, err := s.participant(ctx, req.GetConversationId())
	if err != nil {
		return nil, err
	}
	n := s.msgs.MarkThreadRead(ctx, convID, reader, s.now())
	return &pb.MarkThreadReadResponse{Marked: n}, nil
}

// SearchProfiles finds users to start a conversation with.
func (s *Server) SearchProfiles(ctx context.Context, req *pb.SearchProfilesRequest) (*pb.SearchProfilesResponse, error) {
	sess, err := s.caller(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	found, err := s.dir.SearchProfiles(ctx, req.GetQuery(), sess.UserID)
	if err != nil {
		return nil, toStatus("search profiles", err)
	}
	return &pb.SearchProfilesResponse{Profiles: convert.ToProtoProfiles(found)}, nil
}

// UploadAttachment stores a file and returns the URL to pass in SendMessage.
func (s *Server) UploadAttachment(ctx context.Context, req *pb.UploadAttachmentRequest) (*pb.UploadAttachmentResponse, error) {
	if _, err := s.caller(ctx); err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	data := req.GetData()
	if len(data) == 0 {
		return nil, status.Error(codes.InvalidArgument, "empty attachment")
	}
	if len(data) > MaxAttachmentBytes {
		return nil, status.Errorf(codes.InvalidArgument, "attachment exceeds %d bytes", MaxAttachmentBytes)
	}
	url, err := s.uploader.Upload(ctx, s3.ObjectKey(req.GetFileName(), s.now()), bytes.NewReader(data), req.GetContentType())
	if err != nil {
		s.log.Warn("attachment upload failed", zap.String("file", req.GetFileName()), zap.Error(err))
		return nil, status.Error(codes.Unavailable, "attachment storage unavailable")
	}
	return &pb.UploadAttachmentResponse{Url: url}, nil
}

// participant authenticates the caller and checks membership of the conversation.
func (s *Server) participant(ctx context.Context, rawID string) (userID, convID uuid.UUID, err error) {
	sess, err := s.caller(ctx)
	if err != nil {
		return uuid.Nil, uuid.Nil, status.Error(codes.Unauthenticated, "no auth")
	}
	convID, err = uuid.FromString(rawID)
	if err != nil {
		return uuid.Nil, uuid.Nil, status.Error(codes.InvalidArgument, "bad conversation id")
	}
	if _, err := s.dir.Conversation(ctx, convID, sess.UserID); err != nil {
		return uuid.Nil, uuid.Nil, toStatus("conversation", err)
	}
	return sess.UserID, convID, nil
}

// throttle charges one action to userID. Limiter failures let the call through.
func (s *Server) throttle(ctx context.Context, userID uuid.UUID, action string) error {
	ok, retryAfter, err := s.limiter.Hit(ctx, userID, action)
	if err != nil {
		s.log.Warn("rate limiter unavailable", zap.String("action", action), zap.Error(err))
		return nil
	}
	if !ok {
		return fmt.Errorf("%w: retry in %s", errs.ErrRateLimited, retryAfter.Round(time.Second))
	}
	return nil
}

// toStatus maps the error taxonomy onto gRPC codes.
func toStatus(op string, err error) error {
	switch {
	case errors.Is(err, errs.ErrNotParticipant):
		return status.Error(codes.PermissionDenied, "not a participant")
	case errors.Is(err, errs.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, errs.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, errs.ErrUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, errs.ErrRateLimited):
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, op+": canceled")
	case errors.Is(err, errs.ErrTransient):
		return status.Errorf(codes.Unavailable, "%s: store unavailable", op)
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, op+": deadline exceeded")
	default:
		return status.Errorf(codes.Internal, "%s: %v", op, err)
	}
}
