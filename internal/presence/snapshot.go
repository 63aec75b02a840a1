package presence

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/souqly/convo/internal/errs"
	"github.com/souqly/convo/internal/feed"
)

// ParseSnapshot flattens a presence snapshot into the set of online user IDs.
// The shape is fixed: an object whose values are arrays of session metas, each
// with a valid user_id. Anything else fails with errs.ErrMalformedSnapshot.
func ParseSnapshot(raw feed.RawSnapshot) (map[uuid.UUID]struct{}, error) {
	var keys map[string]json.RawMessage
	if err := strictDecode(raw, &keys); err != nil {
		return nil, err
	}
	if keys == nil {
		return nil, fmt.Errorf("%w: not an object", errs.ErrMalformedSnapshot)
	}

	online := make(map[uuid.UUID]struct{})
	for key, list := range keys {
		trimmed := bytes.TrimSpace(list)
		if len(trimmed) == 0 || trimmed[0] != '[' {
			return nil, fmt.Errorf("%w: key %q is not a list", errs.ErrMalformedSnapshot, key)
		}
		var metas []feed.PresenceMeta
		if err := strictDecode(trimmed, &metas); err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		for i, m := range metas {
			if m.UserID == "" {
				return nil, fmt.Errorf("%w: key %q entry %d has no user_id", errs.ErrMalformedSnapshot, key, i)
			}
			id, err := uuid.FromString(m.UserID)
			if err != nil || id == uuid.Nil {
				return nil, fmt.Errorf("%w: key %q entry %d: bad user_id %q", errs.ErrMalformedSnapshot, key, i, m.UserID)
			}
			online[id] = struct{}{}
		}
	}
	return online, nil
}

func strictDecode(raw []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrMalformedSnapshot, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: trailing data", errs.ErrMalformedSnapshot)
	}
	return nil
}
