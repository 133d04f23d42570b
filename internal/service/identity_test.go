package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	servermocks "github.com/dtroode/stellar-wallet-server/internal/mocks"
	"github.com/dtroode/stellar-wallet-server/internal/model"
	"github.com/dtroode/stellar-wallet-server/internal/repository/memory"
	"github.com/dtroode/stellar-wallet-server/internal/testutil"
)

func TestIdentity_ResolveOrCreate_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc := NewIdentity(memory.NewStore(), testutil.MakeNoopLogger())
	key := testutil.RandomKeypair(t).Address()

	first, err := svc.ResolveOrCreate(ctx, key)
	require.NoError(t, err)
	second, err := svc.ResolveOrCreate(ctx, key)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.OwnerRef, second.OwnerRef)
}

func TestIdentity_ResolveOrCreate_StoreError(t *testing.T) {
	store := servermocks.NewIdentityStore(t)
	store.On("ResolveOrCreate", mock.Anything, mock.Anything).Return(model.Identity{}, false, errors.New("db down")).Once()

	svc := NewIdentity(store, testutil.MakeNoopLogger())

	_, err := svc.ResolveOrCreate(context.Background(), testutil.RandomKeypair(t).Address())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestChallenge_Issue(t *testing.T) {
	store := servermocks.NewSessionStore(t)
	now := time.Date(2025, 5, 5, 10, 0, 0, 0, time.UTC)
	identity := model.Identity{PublicKey: testutil.RandomKeypair(t).Address()}

	store.On("Create", mock.Anything, mock.MatchedBy(func(s model.AuthSession) bool {
		return s.State == model.SessionPending && s.Signature == "" && s.Token == "tok"
	})).Return(nil).Once()

	c := NewChallenge(store, "Demo", testutil.MakeNoopLogger())
	c.now = func() time.Time { return now }
	c.newToken = func() (string, error) { return "tok", nil }

	session, err := c.Issue(context.Background(), identity)
	require.NoError(t, err)
	assert.Equal(t, "Sign this message to authenticate with Demo: tok", session.Challenge)
	assert.Equal(t, now.Add(15*time.Minute), session.ExpiresAt)
}

func TestChallenge_Issue_TokenError(t *testing.T) {
	store := servermocks.NewSessionStore(t)
	c := NewChallenge(store, "Demo", testutil.MakeNoopLogger())
	c.newToken = func() (string, error) { return "", assert.AnError }

	_, err := c.Issue(context.Background(), model.Identity{})
	assert.ErrorIs(t, err, assert.AnError)
}
