// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import (
	"errors"
	"fmt"
)

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates caller input that will never succeed on retry.
	ErrValidation = errors.New("validation")

	// ErrNotParticipant indicates the acting user is not one of the conversation's two participants.
	ErrNotParticipant = fmt.Errorf("%w: not a conversation participant", ErrValidation)

	// ErrConflict indicates a unique constraint violation (e.g., conversation pair already exists).
	ErrConflict = errors.New("conflict")

	// ErrTransient indicates a network/store failure that may succeed on retry.
	ErrTransient = errors.New("transient store error")

	// ErrUnauthorized indicates failed authentication/authorization.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates the caller exceeded a per-user action budget.
	ErrRateLimited = errors.New("rate limited")

	// ErrPresenceChannel indicates the shared presence channel is unusable.
	ErrPresenceChannel = errors.New("presence channel error")

	// ErrFeedClosed indicates a change-feed subscription was terminated by its transport.
	ErrFeedClosed = errors.New("change feed closed")

	// ErrMalformedSnapshot indicates a presence snapshot that does not match the expected schema.
	ErrMalformedSnapshot = errors.New("malformed presence snapshot")
)

// Validation builds an ErrValidation carrying a human-readable reason.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Transient marks err as retryable while keeping the cause reachable via errors.Is/As.
// Already classified errors are returned unchanged.
func Transient(err error) error {
	if err == nil {
		return nil
	}
	if IsPermanent(err) || errors.Is(err, ErrTransient) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrTransient, err)
}

// IsPermanent reports whether err belongs to a class that retrying cannot fix.
func IsPermanent(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrUnauthorized)
}
