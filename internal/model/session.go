package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ChallengeSessionDuration is the lifetime of an issued challenge.
const ChallengeSessionDuration = 15 * time.Minute

// SessionState is the persisted or derived state of an AuthSession.
type SessionState string

const (
	SessionPending  SessionState = "PENDING"
	SessionVerified SessionState = "VERIFIED"
	// SessionExpired is never stored. It is derived from ExpiresAt at read time.
	SessionExpired SessionState = "EXPIRED"
)

// SessionStore persists challenge sessions.
type SessionStore interface {
	Create(ctx context.Context, session AuthSession) error
	// FindPending returns the pending, unexpired session of identityID whose
	// challenge text equals challenge exactly.
	FindPending(ctx context.Context, identityID uuid.UUID, challenge string, now time.Time) (AuthSession, error)
	// MarkVerified moves a pending, unexpired session to VERIFIED, stores the
	// signature and stamps the owning identity's last authentication time in
	// one atomic step. Returns ErrNotFound when the session is no longer
	// pending or has expired.
	MarkVerified(ctx context.Context, sessionID uuid.UUID, signature string, now time.Time) (AuthSession, error)
}

// AuthSession is one challenge issued to an identity.
type AuthSession struct {
	ID         uuid.UUID
	IdentityID uuid.UUID
	Token      string
	Challenge  string
	Signature  string
	State      SessionState
	CreatedAt  time.Time
	ExpiresAt  time.Time
	VerifiedAt *time.Time
}

// StateAt returns the effective state at now, applying lazy expiry.
func (s AuthSession) StateAt(now time.Time) SessionState {
	if s.State == SessionPending && !now.Before(s.ExpiresAt) {
		return SessionExpired
	}
	return s.State
}

// ChallengeResult is returned to a client that asked for a challenge.
type ChallengeResult struct {
	PublicKey    string
	Challenge    string
	SessionToken string
	ExpiresAt    time.Time
}

// VerifyResult is returned after a successful signature verification.
type VerifyResult struct {
	Identity     Identity
	SessionToken string
	AccessToken  string
}
