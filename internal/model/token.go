package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AccessClaims is what an access token proves about its bearer.
type AccessClaims struct {
	TokenID    string
	IdentityID uuid.UUID
	PublicKey  string
	SessionID  uuid.UUID
	ExpiresAt  time.Time
}

// TokenManager generates and validates access tokens.
type TokenManager interface {
	GenerateAccessToken(identity Identity, sessionID uuid.UUID) (string, error)
	ParseAccessToken(token string) (AccessClaims, error)
}

// TokenDenylist remembers revoked access token ids until they expire.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
