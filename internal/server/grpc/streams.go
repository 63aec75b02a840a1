package grpcserver

import (
	"sync"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/souqly/convo/gen/go/convo/v1"
	"github.com/souqly/convo/internal/convert"
	"github.com/souqly/convo/internal/presence"
	"github.com/souqly/convo/internal/service"
)

// threadBuffer bounds updates queued for a slow WatchThread client.
const threadBuffer = 256

// WatchThread opens the conversation for the caller and streams every update until
// the client goes away. A client that falls threadBuffer updates behind is cut off
// and has to reopen, which starts again from a full reset.
func (s *Server) WatchThread(req *pb.ConversationRequest, stream grpc.ServerStreamingServer[pb.ThreadEvent]) error {
	ctx := stream.Context()
	sess, err := s.caller(ctx)
	if err != nil {
		return status.Error(codes.Unauthenticated, "no auth")
	}
	convID, err := uuid.FromString(req.GetConversationId())
	if err != nil {
		return status.Error(codes.InvalidArgument, "bad conversation id")
	}

	updates := make(chan service.ThreadUpdate, threadBuffer)
	overflow := make(chan struct{})
	var once sync.Once
	deps := s.thread
	if deps.Log == nil {
		deps.Log = s.log
	}
	deps.Log = deps.Log.With(zap.Stringer("viewer", sess.UserID))
	th := service.NewThread(sess.UserID, deps, func(u service.ThreadUpdate) {
		select {
		case updates <- u:
		default:
			once.Do(func() { close(overflow) })
		}
	})
	defer func() { _ = th.Close() }()
	if err := th.Open(ctx, convID); err != nil {
		return toStatus("watch thread", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-overflow:
			return status.Error(codes.ResourceExhausted, "client fell behind; reopen the thread")
		case u := <-updates:
			if err := stream.Send(toThreadEvent(u)); err != nil {
				return err
			}
			if u.Kind == service.UpdateState && u.State == service.ThreadFailed {
				return status.Error(codes.Unavailable, "live updates stopped")
			}
		}
	}
}

// WatchPresence keeps the caller online for the lifetime of the stream and sends
// the online set after every change. Snapshots not yet sent are replaced by newer ones.
func (s *Server) WatchPresence(_ *pb.Empty, stream grpc.ServerStreamingServer[pb.PresenceEvent]) error {
	ctx := stream.Context()
	sess, err := s.caller(ctx)
	if err != nil {
		return status.Error(codes.Unauthenticated, "no auth")
	}
	if s.presence == nil {
		return status.Error(codes.Unavailable, "presence is not configured")
	}

	latest := make(chan presence.Snapshot, 1)
	tr := presence.New(s.presence, s.channel, s.ppolicy, s.log.With(zap.Stringer("user_id", sess.UserID)))
	unsubscribe := tr.Subscribe(func(snap presence.Snapshot) {
		for {
			select {
			case latest <- snap:
				return
			default:
				select {
				case <-latest:
				default:
				}
			}
		}
	})
	defer unsubscribe()
	if err := tr.Start(ctx, sess.UserID); err != nil {
		return toStatus("watch presence", err)
	}
	defer func() { _ = tr.Stop() }()

	for {
		select {
		case <-ctx.Done():
			return nil
		case snap := <-latest:
			if err := stream.Send(toPresenceEvent(snap)); err != nil {
				return err
			}
		}
	}
}

func toThreadEvent(u service.ThreadUpdate) *pb.ThreadEvent {
	ev := &pb.ThreadEvent{
		Generation:     u.Generation,
		ConversationId: u.ConversationID.String(),
		Message:        convert.ToProtoMessage(u.Message),
		State:          u.State.String(),
	}
	if u.Messages != nil {
		ev.Messages = convert.ToProtoMessages(u.Messages)
	}
	switch u.Kind {
	case service.UpdateReset:
		ev.Kind = pb.ThreadEventKind_THREAD_EVENT_KIND_RESET
	case service.UpdateAppended:
		ev.Kind = pb.ThreadEventKind_THREAD_EVENT_KIND_APPENDED
	case service.UpdateRead:
		ev.Kind = pb.ThreadEventKind_THREAD_EVENT_KIND_READ
	default:
		ev.Kind = pb.ThreadEventKind_THREAD_EVENT_KIND_STATE
	}
	if u.Err != nil {
		ev.Error = u.Err.Error()
	}
	return ev
}

func toPresenceEvent(snap presence.Snapshot) *pb.PresenceEvent {
	ev := &pb.PresenceEvent{State: snap.State.String(), Online: make([]string, 0, len(snap.Online))}
	for _, id := range snap.Online {
		ev.Online = append(ev.Online, id.String())
	}
	if snap.Err != nil {
		ev.Error = snap.Err.Error()
	}
	return ev
}
