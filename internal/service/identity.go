package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/stellar-wallet-server/internal/keys"
	"github.com/dtroode/stellar-wallet-server/internal/logger"
	"github.com/dtroode/stellar-wallet-server/internal/model"
)

// Identity maps public keys to stable account identities.
type Identity struct {
	store  model.IdentityStore
	logger *logger.Logger
	now    func() time.Time
}

func NewIdentity(store model.IdentityStore, logger *logger.Logger) *Identity {
	return &Identity{store: store, logger: logger, now: time.Now}
}

// ResolveOrCreate returns the identity owning publicKey, creating it on first sight.
func (s *Identity) ResolveOrCreate(ctx context.Context, publicKey string) (model.Identity, error) {
	if err := keys.ValidatePublicKey(publicKey); err != nil {
		return model.Identity{}, err
	}

	candidate := model.Identity{
		ID:        uuid.New(),
		PublicKey: publicKey,
		OwnerRef:  uuid.New(),
		CreatedAt: s.now().UTC(),
	}

	identity, created, err := s.store.ResolveOrCreate(ctx, candidate)
	if err != nil {
		s.logger.Error("Identity service: failed to resolve identity",
			"public_key", publicKey,
			"error", err.Error())
		return model.Identity{}, fmt.Errorf("failed to resolve identity: %w", err)
	}

	if created {
		s.logger.Info("Identity service: new identity registered",
			"public_key", publicKey,
			"identity_id", identity.ID)
	}

	return identity, nil
}
