package postgres

import (
	"context"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/souqly/convo/internal/model"
)

// ProfileRepo implements ProfileRepository using PostgreSQL.
type ProfileRepo struct{ db *DB }

// NewProfileRepo constructs a profile repository.
func NewProfileRepo(db *DB) *ProfileRepo { return &ProfileRepo{db: db} }

// GetMany selects profiles by ID.
func (r *ProfileRepo) GetMany(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]model.Profile, error) {
	out := make(map[uuid.UUID]model.Profile, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	raw := make([]string, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.String())
	}
	const q = `SELECT id, username, full_name, avatar_url FROM profiles WHERE id = ANY($1::uuid[])`
	rows, err := r.db.q(ctx).Query(ctx, q, raw)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()
	for rows.Next() {
		var p model.Profile
		if err := rows.Scan(&p.ID, &p.Username, &p.FullName, &p.AvatarURL); err != nil {
			return nil, mapErr(err)
		}
		out[p.ID] = p
	}
	return out, mapErr(rows.Err())
}

// Search selects profiles whose username contains query, ignoring case.
func (r *ProfileRepo) Search(ctx context.Context, query string, exclude uuid.UUID, limit int) ([]model.Profile, error) {
	const q = `
SELECT id, username, full_name, avatar_url FROM profiles
WHERE username ILIKE $1 ESCAPE '\' AND id<>$2
ORDER BY username
LIMIT $3`
	rows, err := r.db.q(ctx).Query(ctx, q, likePattern(query), exclude, limit)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := make([]model.Profile, 0)
	for rows.Next() {
		var p model.Profile
		if err := rows.Scan(&p.ID, &p.Username, &p.FullName, &p.AvatarURL); err != nil {
			return nil, mapErr(err)
		}
		out = append(out, p)
	}
	return out, mapErr(rows.Err())
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(s string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(s)) + "%"
}
