package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dtroode/stellar-wallet-server/internal/keys"
	"github.com/dtroode/stellar-wallet-server/internal/logger"
	"github.com/dtroode/stellar-wallet-server/internal/model"
)

// Auth drives challenge sessions from issuance to verification.
type Auth struct {
	identity     *Identity
	challenge    *Challenge
	identities   model.IdentityStore
	sessions     model.SessionStore
	verifier     model.SignatureVerifier
	tokenService *TokenService
	events       model.EventPublisher
	logger       *logger.Logger
	now          func() time.Time
}

func NewAuth(
	identities model.IdentityStore,
	sessions model.SessionStore,
	verifier model.SignatureVerifier,
	tokenService *TokenService,
	events model.EventPublisher,
	appName string,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		identity:     NewIdentity(identities, logger),
		challenge:    NewChallenge(sessions, appName, logger),
		identities:   identities,
		sessions:     sessions,
		verifier:     verifier,
		tokenService: tokenService,
		events:       events,
		logger:       logger,
		now:          time.Now,
	}
}

// IssueChallenge resolves publicKey to an identity and opens a new session for it.
func (a *Auth) IssueChallenge(ctx context.Context, publicKey string) (model.ChallengeResult, error) {
	a.logger.Debug("Auth service: issuing challenge",
		"public_key", publicKey)

	identity, err := a.identity.ResolveOrCreate(ctx, publicKey)
	if err != nil {
		return model.ChallengeResult{}, err
	}

	session, err := a.challenge.Issue(ctx, identity)
	if err != nil {
		return model.ChallengeResult{}, err
	}

	return model.ChallengeResult{
		PublicKey:    identity.PublicKey,
		Challenge:    session.Challenge,
		SessionToken: session.Token,
		ExpiresAt:    session.ExpiresAt,
	}, nil
}

// Verify checks signature over challenge and marks the matching session
// VERIFIED. On any failure the session is left untouched.
func (a *Auth) Verify(ctx context.Context, publicKey, challenge, signature string) (model.Identity, model.AuthSession, error) {
	if err := keys.ValidatePublicKey(publicKey); err != nil {
		return model.Identity{}, model.AuthSession{}, err
	}

	identity, err := a.identities.GetByPublicKey(ctx, publicKey)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: verify for unknown identity",
			"public_key", publicKey)
		return model.Identity{}, model.AuthSession{}, model.ErrIdentityNotFound
	}
	if err != nil {
		return model.Identity{}, model.AuthSession{}, fmt.Errorf("failed to get identity: %w", err)
	}

	now := a.now().UTC()

	session, err := a.sessions.FindPending(ctx, identity.ID, challenge, now)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: no pending session for challenge",
			"identity_id", identity.ID)
		return model.Identity{}, model.AuthSession{}, model.ErrSessionNotFoundOrExpired
	}
	if err != nil {
		return model.Identity{}, model.AuthSession{}, fmt.Errorf("failed to find pending session: %w", err)
	}

	valid, err := a.verifier.Verify(identity.PublicKey, []byte(session.Challenge), signature)
	if err != nil {
		a.logger.Error("Auth service: signature verification errored",
			"identity_id", identity.ID,
			"session_id", session.ID,
			"error", err.Error())
		return model.Identity{}, model.AuthSession{}, fmt.Errorf("failed to verify signature: %w", err)
	}
	if !valid {
		a.logger.Info("Auth service: invalid signature",
			"identity_id", identity.ID,
			"session_id", session.ID)
		return model.Identity{}, model.AuthSession{}, model.ErrInvalidSignature
	}

	verified, err := a.sessions.MarkVerified(ctx, session.ID, signature, now)
	if errors.Is(err, model.ErrNotFound) {
		// lost a race against another verify or the session just expired
		return model.Identity{}, model.AuthSession{}, model.ErrSessionNotFoundOrExpired
	}
	if err != nil {
		return model.Identity{}, model.AuthSession{}, fmt.Errorf("failed to mark session verified: %w", err)
	}

	identity.LastAuthenticatedAt = verified.VerifiedAt

	a.logger.Info("Auth service: session verified",
		"identity_id", identity.ID,
		"session_id", verified.ID)

	return identity, verified, nil
}

// VerifySignature verifies the challenge and issues an access token for the session.
func (a *Auth) VerifySignature(ctx context.Context, publicKey, challenge, signature string) (model.VerifyResult, error) {
	identity, session, err := a.Verify(ctx, publicKey, challenge, signature)
	if err != nil {
		return model.VerifyResult{}, err
	}

	access, err := a.tokenService.Issue(identity, session.ID)
	if err != nil {
		a.logger.Error("Auth service: failed to issue access token",
			"identity_id", identity.ID,
			"error", err.Error())
		return model.VerifyResult{}, fmt.Errorf("failed to issue access token: %w", err)
	}

	if a.events != nil {
		if err := a.events.PublishAuthenticated(ctx, identity, session); err != nil {
			a.logger.Warn("Auth service: failed to publish authenticated event",
				"identity_id", identity.ID,
				"error", err.Error())
		}
	}

	return model.VerifyResult{
		Identity:     identity,
		SessionToken: session.Token,
		AccessToken:  access,
	}, nil
}

// Logout revokes accessToken.
func (a *Auth) Logout(ctx context.Context, accessToken string) error {
	return a.tokenService.Revoke(ctx, accessToken)
}

// Wallet returns the identity registered for publicKey.
func (a *Auth) Wallet(ctx context.Context, publicKey string) (model.Identity, error) {
	if err := keys.ValidatePublicKey(publicKey); err != nil {
		return model.Identity{}, err
	}

	identity, err := a.identities.GetByPublicKey(ctx, publicKey)
	if errors.Is(err, model.ErrNotFound) {
		return model.Identity{}, model.ErrIdentityNotFound
	}
	if err != nil {
		return model.Identity{}, fmt.Errorf("failed to get identity: %w", err)
	}

	return identity, nil
}
