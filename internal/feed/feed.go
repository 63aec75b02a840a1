// Package feed defines the change-feed boundary the engine consumes: row change
// subscriptions and presence channels. Implementations live in subpackages.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// EventType is the kind of row change.
type EventType string

const (
	Insert EventType = "insert"
	Update EventType = "update"
	Delete EventType = "delete"
)

// Event is one row change. Row holds the new row (empty for deletes), Old the previous one when known.
type Event struct {
	Type  EventType       `json:"type"`
	Table string          `json:"table"`
	Row   json.RawMessage `json:"row,omitempty"`
	Old   json.RawMessage `json:"old,omitempty"`
}

// DecodeRow unmarshals the new row, or the old one for deletes.
func (e Event) DecodeRow(v any) error {
	raw := e.Row
	if len(raw) == 0 {
		raw = e.Old
	}
	if len(raw) == 0 {
		return fmt.Errorf("feed: %s event on %s carries no row", e.Type, e.Table)
	}
	return json.Unmarshal(raw, v)
}

// Filter selects events of one table, optionally narrowed by column equality.
type Filter struct {
	Table  string
	Column string
	Value  string
}

// Match reports whether e passes the filter.
func (f Filter) Match(e Event) bool {
	if f.Table != e.Table {
		return false
	}
	if f.Column == "" {
		return true
	}
	raw := e.Row
	if len(raw) == 0 {
		raw = e.Old
	}
	var row map[string]any
	if err := json.Unmarshal(raw, &row); err != nil {
		return false
	}
	v, ok := row[f.Column]
	if !ok || v == nil {
		return false
	}
	if s, ok := v.(string); ok {
		return s == f.Value
	}
	return fmt.Sprint(v) == f.Value
}

func (f Filter) String() string {
	if f.Column == "" {
		return f.Table
	}
	return fmt.Sprintf("%s:%s=eq.%s", f.Table, f.Column, f.Value)
}

// PresenceMeta is the metadata a session tracks on a presence channel.
type PresenceMeta struct {
	UserID    string    `json:"user_id"`
	SessionID string    `json:"session_id,omitempty"`
	OnlineAt  time.Time `json:"online_at"`
}

// RawSnapshot is a full presence state as delivered on the wire:
// a JSON object mapping each tracked key to the list of its session metas.
type RawSnapshot []byte

// BuildSnapshot encodes a presence state into its wire form.
func BuildSnapshot(state map[string][]PresenceMeta) (RawSnapshot, error) {
	if state == nil {
		state = map[string][]PresenceMeta{}
	}
	b, err := json.Marshal(state)
	return RawSnapshot(b), err
}

// PresenceChannel is one membership in a shared presence channel.
// Every sync is a complete snapshot that supersedes the previous one.
type PresenceChannel interface {
	Track(ctx context.Context, meta PresenceMeta) error
	Untrack(ctx context.Context) error
	Syncs() <-chan RawSnapshot
	// Done is closed when the channel is left or its transport dropped; Err tells which.
	Done() <-chan struct{}
	Err() error
	Close() error
}

// Presence joins presence channels.
type Presence interface {
	JoinPresence(ctx context.Context, channel, key string) (PresenceChannel, error)
}

// Client is the change-feed collaborator: at-least-once, ordered per subscription,
// no ordering across subscriptions.
type Client interface {
	Presence
	Subscribe(ctx context.Context, f Filter) (*Subscription, error)
}
