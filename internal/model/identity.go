package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// IdentityStore defines persistence operations for key-pair identities.
type IdentityStore interface {
	// ResolveOrCreate returns the identity owning publicKey, inserting candidate
	// when none exists. The boolean reports whether a new row was created.
	ResolveOrCreate(ctx context.Context, candidate Identity) (Identity, bool, error)
	GetByPublicKey(ctx context.Context, publicKey string) (Identity, error)
}

// Identity is an account resolved from a Stellar public key.
type Identity struct {
	ID                  uuid.UUID
	PublicKey           string
	OwnerRef            uuid.UUID
	CreatedAt           time.Time
	LastAuthenticatedAt *time.Time
}
