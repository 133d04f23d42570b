// Package memory provides in-process implementations of the identity,
// session and token denylist stores.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/stellar-wallet-server/internal/model"
)

var (
	_ model.IdentityStore = (*Store)(nil)
	_ model.SessionStore  = (*Store)(nil)
)

// Store keeps identities and sessions behind a single lock so that
// MarkVerified can update both atomically.
type Store struct {
	mu         sync.Mutex
	identities map[uuid.UUID]model.Identity
	byKey      map[string]uuid.UUID
	sessions   map[uuid.UUID]model.AuthSession
}

func NewStore() *Store {
	return &Store{
		identities: make(map[uuid.UUID]model.Identity),
		byKey:      make(map[string]uuid.UUID),
		sessions:   make(map[uuid.UUID]model.AuthSession),
	}
}

func (s *Store) ResolveOrCreate(ctx context.Context, candidate model.Identity) (model.Identity, bool, error) {
	if err := ctx.Err(); err != nil {
		return model.Identity{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.byKey[candidate.PublicKey]; ok {
		return s.identities[id], false, nil
	}

	s.identities[candidate.ID] = candidate
	s.byKey[candidate.PublicKey] = candidate.ID
	return candidate, true, nil
}

func (s *Store) GetByPublicKey(ctx context.Context, publicKey string) (model.Identity, error) {
	if err := ctx.Err(); err != nil {
		return model.Identity{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byKey[publicKey]
	if !ok {
		return model.Identity{}, model.ErrNotFound
	}
	return s.identities[id], nil
}

func (s *Store) Create(ctx context.Context, session model.AuthSession) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.identities[session.IdentityID]; !ok {
		return model.ErrNotFound
	}

	session.State = model.SessionPending
	session.Signature = ""
	s.sessions[session.ID] = session
	return nil
}

func (s *Store) FindPending(ctx context.Context, identityID uuid.UUID, challenge string, now time.Time) (model.AuthSession, error) {
	if err := ctx.Err(); err != nil {
		return model.AuthSession{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		found model.AuthSession
		ok    bool
	)
	for _, session := range s.sessions {
		if session.IdentityID != identityID || session.Challenge != challenge {
			continue
		}
		if session.StateAt(now) != model.SessionPending {
			continue
		}
		if !ok || session.CreatedAt.After(found.CreatedAt) {
			found, ok = session, true
		}
	}

	if !ok {
		return model.AuthSession{}, model.ErrNotFound
	}
	return found, nil
}

func (s *Store) MarkVerified(ctx context.Context, sessionID uuid.UUID, signature string, now time.Time) (model.AuthSession, error) {
	if err := ctx.Err(); err != nil {
		return model.AuthSession{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok || session.StateAt(now) != model.SessionPending {
		return model.AuthSession{}, model.ErrNotFound
	}

	verifiedAt := now
	session.State = model.SessionVerified
	session.Signature = signature
	session.VerifiedAt = &verifiedAt
	s.sessions[sessionID] = session

	if identity, ok := s.identities[session.IdentityID]; ok {
		stamped := now
		identity.LastAuthenticatedAt = &stamped
		s.identities[identity.ID] = identity
	}

	return session, nil
}
