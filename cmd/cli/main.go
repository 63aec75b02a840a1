// Command convo is a CLI client for the conversation service.
package main

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"mime"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	grpcinsecure "google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/souqly/convo/gen/go/convo/v1"
)

// ---- config/token store ----

type tokenFile struct {
	AccessToken string    `json:"access_token"`
	UserID      string    `json:"user_id"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func cfgDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "convo")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "convo")
}

func tokenPath() string { return filepath.Join(cfgDir(), "token.json") }

func saveToken(tf tokenFile) error {
	if err := os.MkdirAll(cfgDir(), 0o700); err != nil {
		return err
	}
	f, err := os.OpenFile(tokenPath(), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(tf)
}

func loadToken() (tokenFile, error) {
	var tf tokenFile
	b, err := os.ReadFile(tokenPath())
	if err != nil {
		return tf, err
	}
	if err := json.Unmarshal(b, &tf); err != nil {
		return tf, err
	}
	if tf.AccessToken == "" || time.Now().After(tf.ExpiresAt) {
		return tf, errors.New("no valid token (login required)")
	}
	return tf, nil
}

// inspectToken reads subject and expiry without verifying the signature; the server does that.
func inspectToken(tok string) (tokenFile, error) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(tok, &claims); err != nil {
		return tokenFile{}, fmt.Errorf("parse token: %w", err)
	}
	id, err := uuid.FromString(claims.Subject)
	if err != nil {
		return tokenFile{}, errors.New("token subject is not a user id")
	}
	exp := time.Now().Add(15 * time.Minute)
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}
	return tokenFile{AccessToken: tok, UserID: id.String(), ExpiresAt: exp}, nil
}

// ---- grpc dial ----

type bearerCreds struct {
	token  string
	secure bool
}

func (b bearerCreds) GetRequestMetadata(context.Context, ...string) (map[string]string, error) {
	return map[string]string{"authorization": "Bearer " + b.token}, nil
}
func (b bearerCreds) RequireTransportSecurity() bool { return b.secure }

func loadTLS(caPath string, insecure bool) (credentials.TransportCredentials, error) {
	if insecure {
		return credentials.NewTLS(&tls.Config{InsecureSkipVerify: true}), nil
	}
	if caPath == "" {
		return credentials.NewClientTLSFromCert(nil, ""), nil
	}
	pem, err := os.ReadFile(caPath)
	if err != nil {
		return nil, err
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, errors.New("bad CA cert")
	}
	return credentials.NewTLS(&tls.Config{RootCAs: pool}), nil
}

type dialOpts struct {
	addr      string
	caPath    string
	insecure  bool
	plaintext bool
}

type client struct {
	cc *grpc.ClientConn
	pb.MessengerClient
}

func dial(o dialOpts, bearer string) (*client, error) {
	var creds credentials.TransportCredentials
	if o.plaintext {
		creds = grpcinsecure.NewCredentials()
	} else {
		c, err := loadTLS(o.caPath, o.insecure)
		if err != nil {
			return nil, err
		}
		creds = c
	}
	opts := []grpc.DialOption{grpc.WithTransportCredentials(creds)}
	if bearer != "" {
		opts = append(opts, grpc.WithPerRPCCredentials(bearerCreds{token: bearer, secure: !o.plaintext}))
	}
	cc, err := grpc.NewClient(o.addr, opts...)
	if err != nil {
		return nil, err
	}
	return &client{cc: cc, MessengerClient: pb.NewMessengerClient(cc)}, nil
}

func (c *client) Close() error { return c.cc.Close() }

// drain calls fn for every message of a server stream until it ends.
func drain[T any](ctx context.Context, stream grpc.ServerStreamingClient[T], fn func(*T)) error {
	for {
		ev, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return nil
			}
			return err
		}
		fn(ev)
	}
}

// ---- utils ----

func readAll(p string) ([]byte, error) {
	if p == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(p)
}

func printJSON(m proto.Message) {
	b, err := protojson.MarshalOptions{Multiline: true, Indent: "  ", EmitUnpopulated: true}.Marshal(m)
	if err != nil {
		fail(err)
	}
	fmt.Println(string(b))
}

func tsString(ts *timestamppb.Timestamp) string {
	if ts == nil {
		return ""
	}
	return ts.AsTime().Local().Format("2006-01-02 15:04")
}

// formatMessage renders one message as a single line; me marks the caller's own messages.
func formatMessage(m *pb.Message, me string) string {
	who := m.GetSenderId()
	if who == me {
		who = "me"
	} else if len(who) > 8 {
		who = who[:8]
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s> %s", tsString(m.GetCreatedAt()), who, m.GetContent())
	if n := len(m.GetAttachments()); n > 0 {
		fmt.Fprintf(&b, " [%d attachment(s)]", n)
	}
	if who == "me" && m.GetIsRead() {
		b.WriteString(" ✓✓")
	}
	return b.String()
}

func contentTypeOf(path string) string {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func usage() {
	fmt.Fprintf(os.Stderr, `convo CLI
Usage:
  convo -addr HOST:PORT [-cacert file | -insecure | -plaintext] [-token jwt] <cmd> [args]

Commands:
  version
  login      -token <jwt>                     (saves token)
  inbox
  start      -with <user uuid>
  history    -conv <uuid>
  send       -conv <uuid> [-text <s>] [-file <path|->]
  read       -conv <uuid>
  delete     -conv <uuid>
  restore    -conv <uuid>
  archive    -conv <uuid>
  unarchive  -conv <uuid>
  search     -q <username part>
  watch      -conv <uuid>                     (streams until Ctrl-C)
  online                                      (streams until Ctrl-C)
`)
	os.Exit(2)
}

// ---- main ----

var (
	version   = "dev"
	buildDate = "unknown"
)

// conversation flags shared by the per-conversation commands
func convFlag(name string, args []string) string {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	conv := fs.String("conv", "", "conversation id")
	_ = fs.Parse(args)
	if *conv == "" {
		fmt.Fprintln(os.Stderr, "need -conv")
		os.Exit(1)
	}
	return *conv
}

// main dispatches subcommands and configures TLS/auth for RPC calls.
func main() {
	// global flags
	var o dialOpts
	flag.StringVar(&o.addr, "addr", "localhost:8443", "server addr")
	flag.StringVar(&o.caPath, "cacert", "", "CA cert (PEM)")
	flag.BoolVar(&o.insecure, "insecure", false, "skip cert verify (dev)")
	flag.BoolVar(&o.plaintext, "plaintext", false, "connect without TLS (dev)")
	tokenFlag := flag.String("token", "", "bearer token (overrides the saved one)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
	}
	cmd, args := flag.Arg(0), flag.Args()[1:]

	switch cmd {
	case "version":
		fmt.Printf("convo %s (%s)\n", version, buildDate)
		return
	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		tok := fs.String("token", "", "token issued by the auth service")
		_ = fs.Parse(args)
		if *tok == "" {
			fmt.Fprintln(os.Stderr, "need -token")
			os.Exit(1)
		}
		tf, err := inspectToken(*tok)
		if err != nil {
			fail(err)
		}
		if err := saveToken(tf); err != nil {
			fail(err)
		}
		fmt.Println("ok", tf.UserID)
		return
	}

	var me tokenFile
	if *tokenFlag != "" {
		tf, err := inspectToken(*tokenFlag)
		if err != nil {
			fail(err)
		}
		me = tf
	} else {
		tf, err := loadToken()
		if err != nil {
			fail(err)
		}
		me = tf
	}

	c, err := dial(o, me.AccessToken)
	if err != nil {
		fail(err)
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch cmd {
	case "inbox":
		resp, err := c.ListConversations(ctx, &pb.Empty{})
		if err != nil {
			fail(err)
		}
		printJSON(resp)

	case "start":
		fs := flag.NewFlagSet("start", flag.ExitOnError)
		with := fs.String("with", "", "peer user id")
		_ = fs.Parse(args)
		resp, err := c.StartConversation(ctx, &pb.StartConversationRequest{With: *with})
		if err != nil {
			fail(err)
		}
		printJSON(resp.GetConversation())

	case "history":
		conv := convFlag("history", args)
		resp, err := c.LoadHistory(ctx, &pb.ConversationRequest{ConversationId: conv})
		if err != nil {
			fail(err)
		}
		for _, m := range resp.GetMessages() {
			fmt.Println(formatMessage(m, me.UserID))
		}

	case "send":
		fs := flag.NewFlagSet("send", flag.ExitOnError)
		conv := fs.String("conv", "", "conversation id")
		text := fs.String("text", "", "message text")
		file := fs.String("file", "", "attachment path or - for stdin")
		_ = fs.Parse(args)

		req := &pb.SendMessageRequest{ConversationId: *conv, Content: *text}
		if *file != "" {
			data, err := readAll(*file)
			if err != nil {
				fail(err)
			}
			name := filepath.Base(*file)
			if *file == "-" {
				name = "stdin.bin"
			}
			up, err := c.UploadAttachment(ctx, &pb.UploadAttachmentRequest{
				FileName: name, ContentType: contentTypeOf(name), Data: data,
			})
			if err != nil {
				fail(err)
			}
			req.Attachments = []string{up.GetUrl()}
		}
		resp, err := c.SendMessage(ctx, req)
		if err != nil {
			fail(err)
		}
		fmt.Println(resp.GetMessage().GetId())

	case "read":
		conv := convFlag("read", args)
		resp, err := c.MarkThreadRead(ctx, &pb.ConversationRequest{ConversationId: conv})
		if err != nil {
			fail(err)
		}
		fmt.Println(resp.GetMarked())

	case "delete", "restore", "archive", "unarchive":
		conv := convFlag(cmd, args)
		call := map[string]func(context.Context, *pb.ConversationRequest, ...grpc.CallOption) (*pb.Empty, error){
			"delete":    c.DeleteConversation,
			"restore":   c.RestoreConversation,
			"archive":   c.ArchiveConversation,
			"unarchive": c.UnarchiveConversation,
		}[cmd]
		if _, err := call(ctx, &pb.ConversationRequest{ConversationId: conv}); err != nil {
			fail(err)
		}
		fmt.Println("ok")

	case "search":
		fs := flag.NewFlagSet("search", flag.ExitOnError)
		q := fs.String("q", "", "username part")
		_ = fs.Parse(args)
		resp, err := c.SearchProfiles(ctx, &pb.SearchProfilesRequest{Query: *q})
		if err != nil {
			fail(err)
		}
		printJSON(resp)

	case "watch":
		conv := convFlag("watch", args)
		sctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		stream, err := c.WatchThread(sctx, &pb.ConversationRequest{ConversationId: conv})
		if err != nil {
			fail(err)
		}
		err = drain(sctx, stream, func(ev *pb.ThreadEvent) {
			switch ev.GetKind() {
			case pb.ThreadEventKind_THREAD_EVENT_KIND_RESET:
				for _, m := range ev.GetMessages() {
					fmt.Println(formatMessage(m, me.UserID))
				}
			case pb.ThreadEventKind_THREAD_EVENT_KIND_APPENDED:
				fmt.Println(formatMessage(ev.GetMessage(), me.UserID))
			case pb.ThreadEventKind_THREAD_EVENT_KIND_STATE:
				fmt.Fprintf(os.Stderr, "-- %s %s\n", ev.GetState(), ev.GetError())
			}
		})
		if err != nil {
			fail(err)
		}

	case "online":
		sctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		stream, err := c.WatchPresence(sctx, &pb.Empty{})
		if err != nil {
			fail(err)
		}
		err = drain(sctx, stream, func(ev *pb.PresenceEvent) {
			fmt.Printf("%s %s\n", ev.GetState(), strings.Join(ev.GetOnline(), " "))
		})
		if err != nil {
			fail(err)
		}

	default:
		usage()
	}
}

// ---- helpers ----

func fail(err error) {
	if s, ok := status.FromError(err); ok {
		fmt.Fprintf(os.Stderr, "rpc error: code=%s msg=%s\n", s.Code(), s.Message())
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
