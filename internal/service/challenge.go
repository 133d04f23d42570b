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

const challengeTemplate = "Sign this message to authenticate with %s: %s"

// Challenge issues one-time challenges bound to an identity.
type Challenge struct {
	store    model.SessionStore
	appName  string
	logger   *logger.Logger
	now      func() time.Time
	newToken func() (string, error)
}

func NewChallenge(store model.SessionStore, appName string, logger *logger.Logger) *Challenge {
	return &Challenge{
		store:    store,
		appName:  appName,
		logger:   logger,
		now:      time.Now,
		newToken: keys.NewToken,
	}
}

// Message returns the challenge text for token.
func (c *Challenge) Message(token string) string {
	return fmt.Sprintf(challengeTemplate, c.appName, token)
}

// Issue creates a new pending session for identity. Earlier pending sessions
// stay valid.
func (c *Challenge) Issue(ctx context.Context, identity model.Identity) (model.AuthSession, error) {
	token, err := c.newToken()
	if err != nil {
		return model.AuthSession{}, fmt.Errorf("failed to generate challenge token: %w", err)
	}

	now := c.now().UTC()
	session := model.AuthSession{
		ID:         uuid.New(),
		IdentityID: identity.ID,
		Token:      token,
		Challenge:  c.Message(token),
		State:      model.SessionPending,
		CreatedAt:  now,
		ExpiresAt:  now.Add(model.ChallengeSessionDuration),
	}

	if err := c.store.Create(ctx, session); err != nil {
		c.logger.Error("Challenge service: failed to create session",
			"identity_id", identity.ID,
			"error", err.Error())
		return model.AuthSession{}, fmt.Errorf("failed to create auth session: %w", err)
	}

	c.logger.Debug("Challenge service: challenge issued",
		"identity_id", identity.ID,
		"session_id", session.ID,
		"expires_at", session.ExpiresAt)

	return session, nil
}
