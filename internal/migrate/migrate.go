// Package migrate applies the embedded schema (tables, pair index, change-feed triggers) on startup.
package migrate

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/souqly/convo/migrations"
)

// zapLogger routes goose output through the service logger.
type zapLogger struct{ log *zap.SugaredLogger }

func (l zapLogger) Fatalf(format string, v ...any) { l.log.Errorf(format, v...) }
func (l zapLogger) Printf(format string, v ...any) { l.log.Infof(format, v...) }

// Up runs all pending migrations and returns the resulting schema version.
func Up(ctx context.Context, dsn string, log *zap.Logger) (int64, error) {
	if log == nil {
		log = zap.NewNop()
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(zapLogger{log: log.Sugar().Named("migrate")})
	if err := goose.SetDialect("postgres"); err != nil {
		return 0, err
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return 0, fmt.Errorf("migrate up: %w", err)
	}
	return goose.GetDBVersionContext(ctx, db)
}
