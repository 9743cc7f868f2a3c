// Package profile persists one UserProfile per user id. Absence is a
// valid state: loading an unknown user yields a fresh empty profile,
// never an error.
package profile

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/abhisek/pathwise/internal/domain"
)

// Store is durable key-value persistence of user profiles.
type Store interface {
	// Load returns the persisted profile for userID, or a fresh empty
	// profile when none exists.
	Load(ctx context.Context, userID string) (*domain.UserProfile, error)

	// Save writes the full profile keyed by its user id, atomically
	// from a reader's perspective. An unwritable medium surfaces as
	// *StorageError.
	Save(ctx context.Context, p *domain.UserProfile) error
}

// StorageError reports an unreadable or unwritable persistence medium.
// It is surfaced to the caller and never retried automatically.
type StorageError struct {
	Op  string // "load" or "save"
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("profile %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// safeKey maps an arbitrary user id to a storage key that is free of
// path separators and other unsafe characters. Lowercase letters,
// digits, '-' and '_' pass through; anything else is lossy (uppercase
// folds, the rest is stripped), so an 8-byte digest of the original id
// is appended and distinct ids cannot collide.
func safeKey(userID string) string {
	var b strings.Builder
	clean := true

	for _, r := range userID {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
			clean = false
		default:
			clean = false
		}
	}

	if clean && b.Len() > 0 {
		return b.String()
	}

	sum := sha256.Sum256([]byte(userID))
	suffix := hex.EncodeToString(sum[:8])
	if b.Len() == 0 {
		return suffix
	}
	return b.String() + "-" + suffix
}
