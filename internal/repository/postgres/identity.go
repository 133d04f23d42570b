package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/stellar-wallet-server/internal/model"
)

var _ model.IdentityStore = (*IdentityRepository)(nil)

type IdentityRepository struct {
	db *Connection
}

func NewIdentityRepository(db *Connection) *IdentityRepository {
	return &IdentityRepository{
		db: db,
	}
}

// ResolveOrCreate relies on the unique public_key constraint so concurrent
// callers for the same key all end up with the same row.
func (r *IdentityRepository) ResolveOrCreate(ctx context.Context, candidate model.Identity) (model.Identity, bool, error) {
	query := `INSERT INTO identities (id, public_key, owner_ref, created_at)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (public_key) DO UPDATE SET public_key = EXCLUDED.public_key
			  RETURNING id, public_key, owner_ref, created_at, last_authenticated_at, (xmax = 0) AS inserted`

	var (
		identity model.Identity
		inserted bool
	)
	err := r.db.QueryRow(ctx, query,
		candidate.ID, candidate.PublicKey, candidate.OwnerRef, candidate.CreatedAt,
	).Scan(
		&identity.ID, &identity.PublicKey, &identity.OwnerRef, &identity.CreatedAt,
		&identity.LastAuthenticatedAt, &inserted,
	)
	if err != nil {
		return model.Identity{}, false, fmt.Errorf("failed to resolve identity: %w", err)
	}

	return identity, inserted, nil
}

func (r *IdentityRepository) GetByPublicKey(ctx context.Context, publicKey string) (model.Identity, error) {
	var identity model.Identity
	query := `SELECT id, public_key, owner_ref, created_at, last_authenticated_at
			  FROM identities WHERE public_key = $1`

	err := r.db.QueryRow(ctx, query, publicKey).Scan(
		&identity.ID, &identity.PublicKey, &identity.OwnerRef, &identity.CreatedAt,
		&identity.LastAuthenticatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Identity{}, model.ErrNotFound
		}
		return model.Identity{}, fmt.Errorf("failed to get identity by public key: %w", err)
	}

	return identity, nil
}
