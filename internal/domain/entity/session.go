package entity

import "time"

// Session is the ledger record of an issued bearer token. The token itself is
// self-validating; the row only exists so logout can revoke it and the sweeper
// can account for expired logins. Absence of a row does not by itself
// invalidate a token unless ledger-checked verification is enabled.
type Session struct {
	ID        uint
	UserID    uint
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}
