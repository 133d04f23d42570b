package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/stellar-wallet-server/internal/model"
)

// Ensure SessionRepository implements the model.SessionStore interface.
var _ model.SessionStore = (*SessionRepository)(nil)

type SessionRepository struct {
	db *Connection
}

func NewSessionRepository(db *Connection) *SessionRepository {
	return &SessionRepository{db: db}
}

const sessionColumns = `id, identity_id, session_token, challenge, signature, state, created_at, expires_at, verified_at`

func (r *SessionRepository) Create(ctx context.Context, session model.AuthSession) error {
	const query = `
        INSERT INTO auth_sessions (id, identity_id, session_token, challenge, state, created_at, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `

	if _, err := r.db.Exec(ctx, query,
		session.ID,
		session.IdentityID,
		session.Token,
		session.Challenge,
		string(model.SessionPending),
		session.CreatedAt,
		session.ExpiresAt,
	); err != nil {
		return fmt.Errorf("failed to create auth session: %w", err)
	}
	return nil
}

func (r *SessionRepository) FindPending(ctx context.Context, identityID uuid.UUID, challenge string, now time.Time) (model.AuthSession, error) {
	query := `
        SELECT ` + sessionColumns + `
        FROM auth_sessions
        WHERE identity_id = $1 AND challenge = $2 AND state = 'PENDING' AND expires_at > $3
        ORDER BY created_at DESC
        LIMIT 1
    `

	session, err := scanSession(r.db.QueryRow(ctx, query, identityID, challenge, now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.AuthSession{}, model.ErrNotFound
		}
		return model.AuthSession{}, fmt.Errorf("failed to find pending session: %w", err)
	}
	return session, nil
}

// MarkVerified performs a conditional transition so only one concurrent
// caller can win a given session.
func (r *SessionRepository) MarkVerified(ctx context.Context, sessionID uuid.UUID, signature string, now time.Time) (model.AuthSession, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return model.AuthSession{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
        UPDATE auth_sessions
        SET state = 'VERIFIED', signature = $2, verified_at = $3
        WHERE id = $1 AND state = 'PENDING' AND expires_at > $3
        RETURNING ` + sessionColumns

	session, err := scanSession(tx.QueryRow(ctx, query, sessionID, signature, now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.AuthSession{}, model.ErrNotFound
		}
		return model.AuthSession{}, fmt.Errorf("failed to mark session verified: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE identities SET last_authenticated_at = $2 WHERE id = $1`,
		session.IdentityID, now,
	); err != nil {
		return model.AuthSession{}, fmt.Errorf("failed to stamp identity authentication: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return model.AuthSession{}, fmt.Errorf("failed to commit session verification: %w", err)
	}

	return session, nil
}

func scanSession(row pgx.Row) (model.AuthSession, error) {
	var (
		s         model.AuthSession
		signature *string
		state     string
	)
	if err := row.Scan(
		&s.ID,
		&s.IdentityID,
		&s.Token,
		&s.Challenge,
		&signature,
		&state,
		&s.CreatedAt,
		&s.ExpiresAt,
		&s.VerifiedAt,
	); err != nil {
		return model.AuthSession{}, err
	}
	if signature != nil {
		s.Signature = *signature
	}
	s.State = model.SessionState(state)
	return s, nil
}
