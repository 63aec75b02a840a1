package grpcserver

import (
	"context"
	"errors"
	"io"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	pb "github.com/souqly/convo/gen/go/convo/v1"
	"github.com/souqly/convo/internal/errs"
	"github.com/souqly/convo/internal/feed"
	"github.com/souqly/convo/internal/feed/memory"
	"github.com/souqly/convo/internal/model"
	"github.com/souqly/convo/internal/retry"
	"github.com/souqly/convo/internal/service"
	"github.com/souqly/convo/internal/session"
)

var testKey = []byte("test-secret")

type fakeDir struct {
	mu    sync.Mutex
	convs map[uuid.UUID]*model.Conversation
	flags []string
}

func newFakeDir() *fakeDir { return &fakeDir{convs: map[uuid.UUID]*model.Conversation{}} }

func (f *fakeDir) ListConversations(_ context.Context, userID uuid.UUID) ([]model.Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Conversation
	for _, c := range f.convs {
		if c.HasParticipant(userID) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeDir) FindOrCreateConversation(_ context.Context, a, b uuid.UUID) (*model.Conversation, error) {
	if a == b {
		return nil, errs.Validation("self conversation")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.convs {
		if c.HasParticipant(a) && c.HasParticipant(b) {
			cp := *c
			return &cp, nil
		}
	}
	c := &model.Conversation{ID: uuid.Must(uuid.NewV4()), User1: a, User2: b, CreatedAt: time.Now().UTC()}
	f.convs[c.ID] = c
	cp := *c
	return &cp, nil
}

func (f *fakeDir) Conversation(_ context.Context, convID, userID uuid.UUID) (*model.Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.convs[convID]
	if !ok {
		return nil, errs.ErrNotFound
	}
	if !c.HasParticipant(userID) {
		return nil, errs.ErrNotParticipant
	}
	cp := *c
	return &cp, nil
}

func (f *fakeDir) flag(op string) func(context.Context, uuid.UUID, uuid.UUID) error {
	return func(ctx context.Context, convID, userID uuid.UUID) error {
		if _, err := f.Conversation(ctx, convID, userID); err != nil {
			return err
		}
		f.mu.Lock()
		f.flags = append(f.flags, op)
		f.mu.Unlock()
		return nil
	}
}

func (f *fakeDir) SoftDelete(ctx context.Context, c, u uuid.UUID) error { return f.flag("delete")(ctx, c, u) }
func (f *fakeDir) Restore(ctx context.Context, c, u uuid.UUID) error    { return f.flag("restore")(ctx, c, u) }
func (f *fakeDir) Archive(ctx context.Context, c, u uuid.UUID) error    { return f.flag("archive")(ctx, c, u) }
func (f *fakeDir) Unarchive(ctx context.Context, c, u uuid.UUID) error  { return f.flag("unarchive")(ctx, c, u) }

func (f *fakeDir) TouchLastMessage(context.Context, uuid.UUID, string, time.Time) error { return nil }

func (f *fakeDir) Inbox(ctx context.Context, userID uuid.UUID) ([]model.ConversationSummary, error) {
	convs, _ := f.ListConversations(ctx, userID)
	out := make([]model.ConversationSummary, 0, len(convs))
	for _, c := range convs {
		out = append(out, model.ConversationSummary{
			Conversation: c,
			Peer:         model.Profile{ID: c.Peer(userID), Username: "bob", FullName: "Bob B."},
			Archived:     c.ArchivedFor(userID),
		})
	}
	return out, nil
}

func (f *fakeDir) SearchProfiles(_ context.Context, query string, excludeID uuid.UUID) ([]model.Profile, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	return []model.Profile{{ID: uuid.Must(uuid.NewV4()), Username: query + "1"}}, nil
}

type fakeMsgs struct {
	dir  *fakeDir
	mu   sync.Mutex
	msgs map[uuid.UUID][]model.Message
	fail error
}

func (f *fakeMsgs) LoadHistory(_ context.Context, convID uuid.UUID) ([]model.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return nil, f.fail
	}
	return append([]model.Message(nil), f.msgs[convID]...), nil
}

func (f *fakeMsgs) Send(ctx context.Context, convID, senderID uuid.UUID, content string, attachments []string) (*model.Message, error) {
	if strings.TrimSpace(content) == "" && len(attachments) == 0 {
		return nil, errs.Validation("empty message")
	}
	if _, err := f.dir.Conversation(ctx, convID, senderID); err != nil {
		return nil, err
	}
	m := model.Message{
		ID: uuid.Must(uuid.NewV4()), ConversationID: convID, SenderID: senderID,
		Content: content, Attachments: attachments, CreatedAt: time.Now().UTC(),
	}
	f.mu.Lock()
	f.msgs[convID] = append(f.msgs[convID], m)
	f.mu.Unlock()
	return &m, nil
}

func (f *fakeMsgs) MarkThreadRead(_ context.Context, convID, readerID uuid.UUID, now time.Time) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for i := range f.msgs[convID] {
		m := &f.msgs[convID][i]
		if m.SenderID != readerID && !m.IsRead {
			m.IsRead, m.ReadAt = true, &now
			n++
		}
	}
	return n
}

func (f *fakeMsgs) MarkMessageRead(context.Context, uuid.UUID, uuid.UUID, uuid.UUID, time.Time) bool {
	return false
}

type fakeUploader struct{ key, contentType string }

func (f *fakeUploader) Upload(_ context.Context, key string, r io.Reader, contentType string) (string, error) {
	f.key, f.contentType = key, contentType
	return "https://cdn.example/b/" + key, nil
}

type fakeLimiter struct {
	mu    sync.Mutex
	left  int
	fail  bool
	calls []string
}

func (f *fakeLimiter) Hit(_ context.Context, _ uuid.UUID, action string) (bool, time.Duration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, action)
	if f.fail {
		return false, 0, errors.New("limiter db down")
	}
	if f.left <= 0 {
		return false, 30 * time.Second, nil
	}
	f.left--
	return true, 0, nil
}

type env struct {
	dir    *fakeDir
	msgs   *fakeMsgs
	hub    *memory.Hub
	up     *fakeUploader
	lim    *fakeLimiter
	client pb.MessengerClient
	alice  uuid.UUID
	bob    uuid.UUID
}

const bufSize = 1 << 20

func startBufGRPC(t *testing.T, srv *Server) *grpc.ClientConn {
	t.Helper()
	lis := bufconn.Listen(bufSize)
	log := zaptest.NewLogger(t)
	gs := grpc.NewServer(
		grpc.ChainUnaryInterceptor(RecoverUnary(log), LoggingUnary(log)),
		grpc.ChainStreamInterceptor(RecoverStream(log), LoggingStream(log)),
	)
	pb.RegisterMessengerServer(gs, srv)
	go func() { _ = gs.Serve(lis) }()
	dialer := func(context.Context, string) (net.Conn, error) { return lis.Dial() }
	cc, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(dialer), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = cc.Close(); gs.Stop(); _ = lis.Close() })
	return cc
}

func newEnv(t *testing.T) *env {
	t.Helper()
	dir := newFakeDir()
	msgs := &fakeMsgs{dir: dir, msgs: map[uuid.UUID][]model.Message{}}
	hub := memory.New()
	t.Cleanup(func() { _ = hub.Close() })
	up := &fakeUploader{}
	lim := &fakeLimiter{left: 100}
	policy := retry.Policy{Timeout: time.Second, Base: time.Millisecond, Cap: 5 * time.Millisecond, MaxRetries: 2}
	srv := New(Deps{
		Directory: dir,
		Messages:  msgs,
		Thread: service.ThreadDeps{
			Directory: dir,
			Messages:  msgs,
			Feed:      hub,
			Policy:    policy,
		},
		Presence:       hub,
		PresencePolicy: policy,
		Uploader:       up,
		Limiter:        lim,
		SignKey:        testKey,
		Log:            zaptest.NewLogger(t),
	})
	return &env{
		dir: dir, msgs: msgs, hub: hub, up: up, lim: lim,
		client: pb.NewMessengerClient(startBufGRPC(t, srv)),
		alice:  uuid.Must(uuid.NewV4()),
		bob:    uuid.Must(uuid.NewV4()),
	}
}

func (e *env) as(t *testing.T, user uuid.UUID) context.Context {
	t.Helper()
	tok, _, err := session.Issue(session.Session{UserID: user}, testKey, time.Minute)
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+tok)
}

func (e *env) start(t *testing.T) *pb.Conversation {
	t.Helper()
	resp, err := e.client.StartConversation(e.as(t, e.alice), &pb.StartConversationRequest{With: e.bob.String()})
	require.NoError(t, err)
	return resp.GetConversation()
}

func TestServer_RequiresAuth(t *testing.T) {
	t.Parallel()
	e := newEnv(t)

	_, err := e.client.ListConversations(context.Background(), &pb.Empty{})
	require.Equal(t, codes.Unauthenticated, status.Code(err))

	bad := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer nope")
	_, err = e.client.SendMessage(bad, &pb.SendMessageRequest{})
	require.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestServer_ConversationFlow(t *testing.T) {
	t.Parallel()
	e := newEnv(t)

	conv := e.start(t)
	require.Equal(t, e.bob.String(), conv.GetPeerId())
	require.NotNil(t, conv.GetCreatedAt())
	require.Nil(t, conv.GetLastMessageAt())

	// same pair from the other side resolves to the same conversation
	again, err := e.client.StartConversation(e.as(t, e.bob), &pb.StartConversationRequest{With: e.alice.String()})
	require.NoError(t, err)
	require.Equal(t, conv.GetId(), again.GetConversation().GetId())
	require.Equal(t, e.alice.String(), again.GetConversation().GetPeerId())

	sent, err := e.client.SendMessage(e.as(t, e.alice), &pb.SendMessageRequest{ConversationId: conv.GetId(), Content: "hi"})
	require.NoError(t, err)
	require.Equal(t, "hi", sent.GetMessage().GetContent())
	require.Equal(t, e.alice.String(), sent.GetMessage().GetSenderId())
	require.False(t, sent.GetMessage().GetCreatedAt().AsTime().IsZero())

	req := &pb.ConversationRequest{ConversationId: conv.GetId()}
	hist, err := e.client.LoadHistory(e.as(t, e.bob), req)
	require.NoError(t, err)
	require.Len(t, hist.GetMessages(), 1)
	require.Equal(t, sent.GetMessage().GetId(), hist.GetMessages()[0].GetId())

	marked, err := e.client.MarkThreadRead(e.as(t, e.bob), req)
	require.NoError(t, err)
	require.EqualValues(t, 1, marked.GetMarked())
	marked, err = e.client.MarkThreadRead(e.as(t, e.bob), req)
	require.NoError(t, err)
	require.Zero(t, marked.GetMarked())

	hist, err = e.client.LoadHistory(e.as(t, e.alice), req)
	require.NoError(t, err)
	require.True(t, hist.GetMessages()[0].GetIsRead())
	require.NotNil(t, hist.GetMessages()[0].GetReadAt())

	inbox, err := e.client.ListConversations(e.as(t, e.alice), &pb.Empty{})
	require.NoError(t, err)
	require.Len(t, inbox.GetConversations(), 1)
	require.Equal(t, "Bob B.", inbox.GetConversations()[0].GetPeerName())
}

func TestServer_FlagsAndErrors(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	conv := e.start(t)
	req := &pb.ConversationRequest{ConversationId: conv.GetId()}
	alice := e.as(t, e.alice)

	_, err := e.client.DeleteConversation(alice, req)
	require.NoError(t, err)
	_, err = e.client.RestoreConversation(alice, req)
	require.NoError(t, err)
	_, err = e.client.ArchiveConversation(alice, req)
	require.NoError(t, err)
	_, err = e.client.UnarchiveConversation(alice, req)
	require.NoError(t, err)
	require.Equal(t, []string{"delete", "restore", "archive", "unarchive"}, e.dir.flags)

	stranger := e.as(t, uuid.Must(uuid.NewV4()))
	_, err = e.client.ArchiveConversation(stranger, req)
	require.Equal(t, codes.PermissionDenied, status.Code(err))

	_, err = e.client.LoadHistory(stranger, req)
	require.Equal(t, codes.PermissionDenied, status.Code(err))

	_, err = e.client.LoadHistory(alice, &pb.ConversationRequest{ConversationId: uuid.Must(uuid.NewV4()).String()})
	require.Equal(t, codes.NotFound, status.Code(err))

	_, err = e.client.SendMessage(alice, &pb.SendMessageRequest{ConversationId: conv.GetId(), Content: "  "})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = e.client.StartConversation(alice, &pb.StartConversationRequest{With: "x"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	e.msgs.mu.Lock()
	e.msgs.fail = errs.Transient(errors.New("db down"))
	e.msgs.mu.Unlock()
	_, err = e.client.LoadHistory(alice, req)
	require.Equal(t, codes.Unavailable, status.Code(err))
}

func TestServer_RateLimited(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	conv := e.start(t)

	e.lim.mu.Lock()
	e.lim.left = 1
	e.lim.mu.Unlock()

	req := &pb.SendMessageRequest{ConversationId: conv.GetId(), Content: "one"}
	_, err := e.client.SendMessage(e.as(t, e.alice), req)
	require.NoError(t, err)
	_, err = e.client.SendMessage(e.as(t, e.alice), req)
	require.Equal(t, codes.ResourceExhausted, status.Code(err))
	require.Contains(t, status.Convert(err).Message(), "30s")

	// a broken limiter lets calls through
	e.lim.mu.Lock()
	e.lim.fail = true
	e.lim.mu.Unlock()
	_, err = e.client.SendMessage(e.as(t, e.alice), req)
	require.NoError(t, err)

	e.lim.mu.Lock()
	defer e.lim.mu.Unlock()
	require.Equal(t, []string{"start", "send", "send", "send"}, e.lim.calls)
}

func TestServer_SearchAndUpload(t *testing.T) {
	t.Parallel()
	e := newEnv(t)

	found, err := e.client.SearchProfiles(e.as(t, e.alice), &pb.SearchProfilesRequest{Query: "bo"})
	require.NoError(t, err)
	require.Len(t, found.GetProfiles(), 1)
	require.Equal(t, "bo1", found.GetProfiles()[0].GetUsername())

	up, err := e.client.UploadAttachment(e.as(t, e.alice),
		&pb.UploadAttachmentRequest{FileName: "cat pic.png", ContentType: "image/png", Data: []byte{1, 2, 3}})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(e.up.key, "messages/"))
	require.True(t, strings.HasSuffix(e.up.key, "-cat_pic.png"))
	require.Equal(t, "https://cdn.example/b/"+e.up.key, up.GetUrl())

	_, err = e.client.UploadAttachment(e.as(t, e.alice), &pb.UploadAttachmentRequest{FileName: "x"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestServer_WatchThread(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	conv := e.start(t)
	convID := uuid.FromStringOrNil(conv.GetId())

	stream, err := e.client.WatchThread(e.as(t, e.alice), &pb.ConversationRequest{ConversationId: conv.GetId()})
	require.NoError(t, err)

	ev, err := stream.Recv()
	require.NoError(t, err)
	require.Equal(t, pb.ThreadEventKind_THREAD_EVENT_KIND_RESET, ev.GetKind())
	require.Equal(t, "live", ev.GetState())
	require.Empty(t, ev.GetMessages())

	incoming := model.Message{
		ID: uuid.Must(uuid.NewV4()), ConversationID: convID, SenderID: e.bob,
		Content: "hello", Attachments: []string{}, CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, e.hub.Publish(context.Background(), "messages", feed.Insert, incoming))

	ev, err = stream.Recv()
	require.NoError(t, err)
	require.Equal(t, pb.ThreadEventKind_THREAD_EVENT_KIND_APPENDED, ev.GetKind())
	require.NotNil(t, ev.GetMessage())
	require.Equal(t, incoming.ID.String(), ev.GetMessage().GetId())
	require.Equal(t, "hello", ev.GetMessage().GetContent())
	require.True(t, ev.GetMessage().GetCreatedAt().AsTime().Equal(incoming.CreatedAt))
}

func TestServer_WatchThread_NotParticipant(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	conv := e.start(t)

	stream, err := e.client.WatchThread(e.as(t, uuid.Must(uuid.NewV4())), &pb.ConversationRequest{ConversationId: conv.GetId()})
	require.NoError(t, err)
	_, err = stream.Recv()
	require.Equal(t, codes.PermissionDenied, status.Code(err))
}

func TestServer_WatchPresence(t *testing.T) {
	t.Parallel()
	e := newEnv(t)

	stream, err := e.client.WatchPresence(e.as(t, e.alice), &pb.Empty{})
	require.NoError(t, err)
	for {
		ev, err := stream.Recv()
		require.NoError(t, err)
		if ev.GetState() == "synced" {
			require.Equal(t, []string{e.alice.String()}, ev.GetOnline())
			return
		}
	}
}

func TestServer_ReflectionDescribesService(t *testing.T) {
	t.Parallel()

	fd := pb.File_convo_v1_messenger_proto
	svc := fd.Services().ByName("Messenger")
	require.NotNil(t, svc)
	require.Equal(t, "convo.v1.Messenger", string(svc.FullName()))
	require.Equal(t, 13, svc.Methods().Len())
	watch := svc.Methods().ByName("WatchThread")
	require.True(t, watch.IsStreamingServer())
	require.Equal(t, "convo.v1.ThreadEvent", string(watch.Output().FullName()))
	require.Equal(t, pb.Messenger_ServiceDesc.ServiceName, string(svc.FullName()))
}

func TestToStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want codes.Code
	}{
		{errs.ErrNotParticipant, codes.PermissionDenied},
		{errs.Validation("bad"), codes.InvalidArgument},
		{errs.ErrNotFound, codes.NotFound},
		{errs.ErrUnauthorized, codes.Unauthenticated},
		{errs.ErrRateLimited, codes.ResourceExhausted},
		{errs.Transient(errors.New("io")), codes.Unavailable},
		{context.Canceled, codes.Canceled},
		{context.DeadlineExceeded, codes.DeadlineExceeded},
		{errors.New("boom"), codes.Internal},
	}
	for _, c := range cases {
		require.Equal(t, c.want, status.Code(toStatus("op", c.err)), c.err.Error())
	}
}
