package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/souqly/convo/gen/go/convo/v1"
	"github.com/souqly/convo/internal/session"
)

func withTmpConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, "convo")
}

func Test_cfgDir_And_Paths(t *testing.T) {
	base := withTmpConfig(t)
	if got := cfgDir(); got != base {
		t.Fatalf("cfgDir=%q, want %q", got, base)
	}
	if !strings.HasPrefix(tokenPath(), base) || !strings.HasSuffix(tokenPath(), "token.json") {
		t.Fatalf("tokenPath unexpected: %s", tokenPath())
	}
}

func Test_token_SaveLoad(t *testing.T) {
	_ = withTmpConfig(t)

	if _, err := loadToken(); err == nil {
		t.Fatalf("expected error when token file missing")
	}
	if err := saveToken(tokenFile{AccessToken: "tok", UserID: "u", ExpiresAt: time.Now().Add(time.Minute)}); err != nil {
		t.Fatalf("saveToken: %v", err)
	}
	tf, err := loadToken()
	if err != nil || tf.AccessToken != "tok" || tf.UserID != "u" {
		t.Fatalf("loadToken: tf=%+v err=%v", tf, err)
	}
	st, err := os.Stat(tokenPath())
	if err != nil || st.Mode().Perm() != 0o600 {
		t.Fatalf("token file mode: %v %v", st, err)
	}
	if err := saveToken(tokenFile{AccessToken: "tok2", ExpiresAt: time.Now().Add(-time.Minute)}); err != nil {
		t.Fatalf("saveToken expired: %v", err)
	}
	if _, err := loadToken(); err == nil {
		t.Fatalf("want error for expired token")
	}
}

func Test_inspectToken(t *testing.T) {
	t.Parallel()

	id := uuid.Must(uuid.NewV4())
	tok, exp, err := session.Issue(session.Session{UserID: id}, []byte("any-key"), time.Hour)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	tf, err := inspectToken(tok)
	if err != nil {
		t.Fatalf("inspectToken: %v", err)
	}
	if tf.UserID != id.String() || tf.AccessToken != tok {
		t.Fatalf("unexpected token file: %+v", tf)
	}
	if d := tf.ExpiresAt.Sub(exp); d > time.Second || d < -time.Second {
		t.Fatalf("expiry mismatch: %v vs %v", tf.ExpiresAt, exp)
	}

	if _, err := inspectToken("garbage"); err == nil {
		t.Fatalf("want error for non-jwt")
	}
}

func Test_readAll_File_And_Stdin(t *testing.T) {
	// file path
	tmp := filepath.Join(t.TempDir(), "f.txt")
	_ = os.WriteFile(tmp, []byte("hello"), 0o600)
	b, err := readAll(tmp)
	if err != nil || string(b) != "hello" {
		t.Fatalf("readAll(file): %q %v", b, err)
	}

	// stdin
	r, w, _ := os.Pipe()
	old := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = old }()
	go func() { _, _ = io.WriteString(w, "from-stdin"); _ = w.Close() }()
	b, err = readAll("-")
	if err != nil || string(b) != "from-stdin" {
		t.Fatalf("readAll(stdin): %q %v", b, err)
	}
}

func Test_printJSON_WritesPretty(t *testing.T) {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	defer func() { os.Stdout = old }()

	at := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	printJSON(&pb.Conversation{Id: "c1", PeerName: "bob", CreatedAt: timestamppb.New(at)})
	_ = w.Close()
	out, _ := io.ReadAll(r)

	var m map[string]any
	if json.Unmarshal(out, &m) != nil || m["id"] != "c1" || m["peerName"] != "bob" {
		t.Fatalf("printJSON produced invalid json: %s", string(out))
	}
	if m["createdAt"] != "2026-03-01T10:30:00Z" {
		t.Fatalf("timestamps must print as RFC 3339: %v", m["createdAt"])
	}
	if _, ok := m["archived"]; !ok {
		t.Fatalf("unpopulated fields must be printed: %s", string(out))
	}
	if !bytes.Contains(out, []byte("\n")) {
		t.Fatalf("printJSON should indent")
	}
}

func Test_formatMessage(t *testing.T) {
	t.Parallel()

	me := uuid.Must(uuid.NewV4())
	peer := uuid.Must(uuid.NewV4())
	at := time.Date(2026, 3, 1, 10, 30, 0, 0, time.Local)

	own := formatMessage(&pb.Message{SenderId: me.String(), Content: "hi", CreatedAt: timestamppb.New(at), IsRead: true}, me.String())
	if own != "2026-03-01 10:30 me> hi ✓✓" {
		t.Fatalf("own message: %q", own)
	}
	theirs := formatMessage(&pb.Message{SenderId: peer.String(), Attachments: []string{"https://x/y"}, CreatedAt: timestamppb.New(at)}, me.String())
	if !strings.HasPrefix(theirs, "2026-03-01 10:30 "+peer.String()[:8]+"> ") || !strings.HasSuffix(theirs, "[1 attachment(s)]") {
		t.Fatalf("peer message: %q", theirs)
	}
}

func Test_tsString(t *testing.T) {
	t.Parallel()

	if tsString(nil) != "" {
		t.Fatalf("nil timestamp must print empty")
	}
	at := time.Date(2026, 3, 1, 10, 30, 0, 0, time.Local)
	if got := tsString(timestamppb.New(at)); got != "2026-03-01 10:30" {
		t.Fatalf("tsString: %q", got)
	}
}

func Test_contentTypeOf(t *testing.T) {
	t.Parallel()

	if ct := contentTypeOf("a.unknownext"); ct != "application/octet-stream" {
		t.Fatalf("fallback: %s", ct)
	}
	if ct := contentTypeOf("a.png"); ct != "image/png" {
		t.Fatalf("png: %s", ct)
	}
}

func Test_bearerCreds_Metadata(t *testing.T) {
	t.Parallel()

	b := bearerCreds{token: "T", secure: true}
	md, err := b.GetRequestMetadata(context.Background())
	if err != nil {
		t.Fatalf("GetRequestMetadata: %v", err)
	}
	if md["authorization"] != "Bearer T" {
		t.Fatalf("auth header mismatch: %v", md)
	}
	if !b.RequireTransportSecurity() {
		t.Fatalf("bearerCreds must require TLS unless plaintext was asked for")
	}
	if (bearerCreds{token: "T"}).RequireTransportSecurity() {
		t.Fatalf("plaintext creds must not require TLS")
	}
}

func Test_loadTLS_Variants(t *testing.T) {
	t.Parallel()

	creds, err := loadTLS("", true)
	if err != nil || creds == nil {
		t.Fatalf("insecure: %v %v", creds, err)
	}

	creds, err = loadTLS("", false)
	if err != nil || creds == nil {
		t.Fatalf("default tls: %v %v", creds, err)
	}

	tmp := filepath.Join(t.TempDir(), "bad.pem")
	_ = os.WriteFile(tmp, []byte("not pem"), 0o600)
	creds, err = loadTLS(tmp, false)
	if err == nil || creds != nil {
		t.Fatalf("bad CA should error, got creds=%v err=%v", creds, err)
	}
}

func Test_dial_Plaintext(t *testing.T) {
	t.Parallel()

	c, err := dial(dialOpts{addr: "localhost:0", plaintext: true}, "tok")
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	_ = c.Close()
}
