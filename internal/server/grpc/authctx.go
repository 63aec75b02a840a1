package grpcserver

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/metadata"

	"github.com/souqly/convo/internal/session"
)

// caller resolves the session of the request: one already on the context,
// else the "authorization: Bearer <JWT>" metadata.
func (s *Server) caller(ctx context.Context) (session.Session, error) {
	if sess, ok := session.FromContext(ctx); ok {
		return sess, nil
	}
	tok, err := bearerTokenFromMD(ctx)
	if err != nil {
		return session.Session{}, err
	}
	return session.Parse(tok, s.signKey)
}

func bearerTokenFromMD(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", errors.New("no metadata")
	}
	for _, v := range md.Get("authorization") {
		v = strings.TrimSpace(v)
		if len(v) >= 7 && strings.EqualFold(v[:7], "bearer ") {
			t := strings.TrimSpace(v[7:])
			if t != "" {
				return t, nil
			}
		}
	}
	return "", errors.New("no bearer token")
}
