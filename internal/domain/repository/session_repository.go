package repository

import (
	"context"
	"time"

	"neabi/internal/domain/entity"
)

// SessionRepository is the session ledger: a secondary, revocable record of
// issued bearer tokens, independent of the token's own cryptographic validity.
type SessionRepository interface {
	// Create records an issued token with its expiry.
	Create(ctx context.Context, session *entity.Session) error

	// DeleteByToken revokes the session rows matching the exact bearer
	// string. Revoking an unknown token is not an error.
	DeleteByToken(ctx context.Context, token string) error

	// DeleteExpired removes all rows whose expiry predates now and returns
	// the number of rows swept.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)

	// ExistsByToken reports whether a live (unexpired) ledger row exists for
	// the token. Used only when ledger-checked verification is enabled.
	ExistsByToken(ctx context.Context, token string) (bool, error)
}
