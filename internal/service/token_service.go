package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/stellar-wallet-server/internal/logger"
	"github.com/dtroode/stellar-wallet-server/internal/model"
)

// TokenService issues access tokens for verified sessions and enforces
// revocation. It composes the TokenManager and TokenDenylist.
type TokenService struct {
	manager  model.TokenManager
	denylist model.TokenDenylist
	logger   *logger.Logger
	now      func() time.Time
}

func NewTokenService(manager model.TokenManager, denylist model.TokenDenylist, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, denylist: denylist, logger: logger, now: time.Now}
}

// Issue creates an access token bound to identity and the verified session.
func (s *TokenService) Issue(identity model.Identity, sessionID uuid.UUID) (string, error) {
	access, err := s.manager.GenerateAccessToken(identity, sessionID)
	if err != nil {
		return "", fmt.Errorf("issue access: %w", err)
	}
	return access, nil
}

// Authenticate parses token and rejects it if it was revoked.
func (s *TokenService) Authenticate(ctx context.Context, token string) (model.AccessClaims, error) {
	claims, err := s.manager.ParseAccessToken(token)
	if err != nil {
		return model.AccessClaims{}, err
	}

	revoked, err := s.denylist.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		return model.AccessClaims{}, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return model.AccessClaims{}, model.ErrTokenRevoked
	}

	return claims, nil
}

// Revoke denylists token for the rest of its lifetime.
func (s *TokenService) Revoke(ctx context.Context, token string) error {
	claims, err := s.manager.ParseAccessToken(token)
	if err != nil {
		return err
	}

	ttl := claims.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}

	if err := s.denylist.Revoke(ctx, claims.TokenID, ttl); err != nil {
		return fmt.Errorf("revoke access: %w", err)
	}

	s.logger.Info("Token service: access token revoked",
		"token_id", claims.TokenID,
		"identity_id", claims.IdentityID)

	return nil
}
