// Command convo-server starts the conversation and presence gRPC server.
package main

import (
	"context"
	"errors"
	"flag"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	pb "github.com/souqly/convo/gen/go/convo/v1"
	"github.com/souqly/convo/internal/config"
	"github.com/souqly/convo/internal/feed"
	"github.com/souqly/convo/internal/feed/memory"
	"github.com/souqly/convo/internal/feed/pgfeed"
	"github.com/souqly/convo/internal/feed/redispresence"
	"github.com/souqly/convo/internal/limiter"
	"github.com/souqly/convo/internal/migrate"
	"github.com/souqly/convo/internal/notify"
	"github.com/souqly/convo/internal/notify/kafka"
	"github.com/souqly/convo/internal/repository/postgres"
	"github.com/souqly/convo/internal/retry"
	grpcserver "github.com/souqly/convo/internal/server/grpc"
	"github.com/souqly/convo/internal/service"
	"github.com/souqly/convo/internal/storage/s3"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// backoffCap bounds a single reconnect/retry pause.
const backoffCap = 10 * time.Second

// main loads configuration, runs migrations, and serves until SIGINT/SIGTERM.
func main() {
	cfgPath := flag.String("config", "", "path to a YAML config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(2)
	}

	logger := newLogger(cfg.Log.Dev)
	defer func() { _ = logger.Sync() }()
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", cfg.Addr),
		zap.String("presence", cfg.Presence.Backend),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := migrate.Up(ctx, cfg.DB.DSN, logger); err != nil {
		logger.Fatal("migrate up", zap.Error(err))
	}

	db, err := postgres.New(ctx, cfg.DB.DSN, cfg.DB.MaxConns)
	if err != nil {
		logger.Fatal("postgres", zap.Error(err))
	}
	defer db.Close()

	opsPolicy := retry.Policy{
		Timeout:    cfg.Ops.Timeout,
		Base:       cfg.Ops.BackoffBase,
		Cap:        backoffCap,
		MaxRetries: cfg.Ops.MaxRetries,
	}
	presencePolicy := opsPolicy
	presencePolicy.MaxRetries = cfg.Presence.MaxRetries

	// Repositories
	convRepo := postgres.NewConversationRepo(db)
	msgRepo := postgres.NewMessageRepo(db)
	profileRepo := postgres.NewProfileRepo(db)

	// Presence backend and change feed
	presenceBackend, closePresence, err := newPresence(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("presence backend", zap.Error(err))
	}
	defer closePresence()
	listener := pgfeed.New(cfg.DB.DSN, db.Pool, presenceBackend, presencePolicy, logger.Named("feed"))

	// Notifications
	notifiers := notify.Multi{notify.LogNotifier{Log: logger.Named("notify")}}
	if len(cfg.Kafka.Brokers) > 0 {
		kn, err := kafka.New(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			logger.Fatal("kafka producer", zap.Error(err))
		}
		defer func() { _ = kn.Close() }()
		notifiers = append(notifiers, kn)
	}

	// Attachments
	var uploader s3.Uploader = s3.NoopUploader{}
	if cfg.S3.Endpoint != "" {
		c, err := s3.NewClient(cfg.S3.Endpoint, cfg.S3.UseSSL, cfg.S3.AccessKey, cfg.S3.SecretKey,
			cfg.S3.Bucket, cfg.S3.PublicBaseURL, logger.Named("s3"))
		if err != nil {
			logger.Fatal("s3 client", zap.Error(err))
		}
		uploader = c
	}

	lim := limiter.NewPG(db.Pool, cfg.Limits.Window, map[string]int{
		limiter.ActionSend:  cfg.Limits.SendPerWindow,
		limiter.ActionStart: cfg.Limits.StartPerWindow,
	})

	// Services
	reads := service.NewReadReconciler(msgRepo, opsPolicy, cfg.Reads.RetryInterval, logger.Named("reads"))
	dirSvc := service.NewDirectoryService(convRepo, profileRepo, opsPolicy, logger.Named("directory"))
	msgSvc := service.NewMessageService(convRepo, msgRepo, db, reads, opsPolicy, logger.Named("messages"))

	app := grpcserver.New(grpcserver.Deps{
		Directory: dirSvc,
		Messages:  msgSvc,
		Thread: service.ThreadDeps{
			Directory: dirSvc,
			Messages:  msgSvc,
			Reads:     reads,
			Feed:      listener,
			Notifier:  notifiers,
			Policy:    opsPolicy,
			Log:       logger.Named("thread"),
		},
		Presence:        listener,
		PresenceChannel: cfg.Presence.Channel,
		PresencePolicy:  presencePolicy,
		Uploader:        uploader,
		Limiter:         lim,
		SignKey:         []byte(cfg.Auth.JWTKey),
		Log:             logger,
	})

	// gRPC server with interceptors
	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			grpcserver.RecoverUnary(logger),
			grpcserver.LoggingUnary(logger),
		),
		grpc.ChainStreamInterceptor(
			grpcserver.RecoverStream(logger),
			grpcserver.LoggingStream(logger),
		),
		grpc.MaxRecvMsgSize(grpcserver.MaxAttachmentBytes + 1<<20),
	}
	if cfg.TLS.Cert != "" {
		creds, err := credentials.NewServerTLSFromFile(cfg.TLS.Cert, cfg.TLS.Key)
		if err != nil {
			logger.Fatal("failed to load TLS cert/key", zap.Error(err))
		}
		opts = append(opts, grpc.Creds(creds))
	} else {
		logger.Warn("serving without TLS")
	}
	s := grpc.NewServer(opts...)
	pb.RegisterMessengerServer(s, app)

	// Health & reflection (dev)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	if cfg.Dev {
		reflection.Register(s)
	}

	lis, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		logger.Fatal("listen", zap.Error(err))
	}

	errCh := make(chan error, 3)
	go func() {
		if err := listener.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- err
		}
	}()
	go func() {
		if err := reads.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- err
		}
	}()
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Addr), zap.Bool("tls", cfg.TLS.Cert != ""))
		errCh <- s.Serve(lis)
	}()

	// Wait for stop
	select {
	case <-ctx.Done():
		hs.Shutdown()
		done := make(chan struct{})
		go func() {
			s.GracefulStop()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			s.Stop()
		}
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
		s.Stop()
		os.Exit(1)
	}

	logger.Info("shutdown complete")
}

func newLogger(dev bool) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if dev {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// newPresence picks the presence channel backend; memory only spans this process.
func newPresence(ctx context.Context, cfg *config.Config, logger *zap.Logger) (feed.Presence, func(), error) {
	if cfg.Presence.Backend != "redis" {
		hub := memory.New()
		return hub, func() { _ = hub.Close() }, nil
	}
	rdb, err := redispresence.Connect(ctx, cfg.Redis.URL)
	if err != nil {
		return nil, nil, err
	}
	b := redispresence.New(rdb, cfg.Presence.SessionTTL, cfg.Presence.ResyncInterval, logger.Named("presence"))
	return b, func() { _ = rdb.Close() }, nil
}
