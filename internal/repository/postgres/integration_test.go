//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/stellar-wallet-server/internal/config"
	"github.com/dtroode/stellar-wallet-server/internal/model"
	repo "github.com/dtroode/stellar-wallet-server/internal/repository/postgres"
)

const testPublicKey = "GAAZI4TCR3TY5OJHCTJC2A4QSY6CJWJH5IAJTGKIN2ER7LBNVKOCCWN7"

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "stellar_wallet_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/stellar_wallet_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func dbConfig() config.Database {
	return config.Database{DSN: dsn, MaxConns: 4, ConnectTimeout: 10 * time.Second, AutoMigrate: true}
}

func newIdentity(publicKey string) model.Identity {
	return model.Identity{
		ID:        uuid.New(),
		PublicKey: publicKey,
		OwnerRef:  uuid.New(),
		CreatedAt: time.Now().UTC(),
	}
}

func TestRepositories_SessionLifecycle(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dbConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	identities := repo.NewIdentityRepository(conn)
	sessions := repo.NewSessionRepository(conn)

	first, created, err := identities.ResolveOrCreate(ctx, newIdentity(testPublicKey))
	require.NoError(t, err)
	require.True(t, created)

	again, created, err := identities.ResolveOrCreate(ctx, newIdentity(testPublicKey))
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, first.ID, again.ID)
	require.Equal(t, first.OwnerRef, again.OwnerRef)

	now := time.Now().UTC()
	session := model.AuthSession{
		ID:         uuid.New(),
		IdentityID: first.ID,
		Token:      uuid.NewString(),
		Challenge:  "Sign this message: abc",
		State:      model.SessionPending,
		CreatedAt:  now,
		ExpiresAt:  now.Add(model.ChallengeSessionDuration),
	}
	require.NoError(t, sessions.Create(ctx, session))

	found, err := sessions.FindPending(ctx, first.ID, session.Challenge, now)
	require.NoError(t, err)
	require.Equal(t, session.ID, found.ID)
	require.Empty(t, found.Signature)

	_, err = sessions.FindPending(ctx, first.ID, session.Challenge+" ", now)
	require.ErrorIs(t, err, model.ErrNotFound)

	verified, err := sessions.MarkVerified(ctx, session.ID, "deadbeef", now)
	require.NoError(t, err)
	require.Equal(t, model.SessionVerified, verified.State)
	require.Equal(t, "deadbeef", verified.Signature)
	require.NotNil(t, verified.VerifiedAt)

	_, err = sessions.MarkVerified(ctx, session.ID, "deadbeef", now)
	require.ErrorIs(t, err, model.ErrNotFound)

	stamped, err := identities.GetByPublicKey(ctx, testPublicKey)
	require.NoError(t, err)
	require.NotNil(t, stamped.LastAuthenticatedAt)
}

func TestSessionRepository_ExpiredIsNotPending(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dbConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	identities := repo.NewIdentityRepository(conn)
	sessions := repo.NewSessionRepository(conn)

	identity, _, err := identities.ResolveOrCreate(ctx, newIdentity("GBRPYHIL2CI3FNQ4BXLFMNDLFJUNPU2HY3ZMFSHONUCEOASW7QC7OX2H"))
	require.NoError(t, err)

	issued := time.Now().UTC().Add(-time.Hour)
	session := model.AuthSession{
		ID:         uuid.New(),
		IdentityID: identity.ID,
		Token:      uuid.NewString(),
		Challenge:  "expired challenge",
		State:      model.SessionPending,
		CreatedAt:  issued,
		ExpiresAt:  issued.Add(model.ChallengeSessionDuration),
	}
	require.NoError(t, sessions.Create(ctx, session))

	_, err = sessions.FindPending(ctx, identity.ID, session.Challenge, time.Now().UTC())
	require.ErrorIs(t, err, model.ErrNotFound)

	_, err = sessions.MarkVerified(ctx, session.ID, "sig", time.Now().UTC())
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestIdentityRepository_ConcurrentResolve(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dbConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	identities := repo.NewIdentityRepository(conn)
	const publicKey = "GCEZWKCA5VLDNRLN3RPRJMRZOX3Z6G5CHCGSNFHEYVXM3XOJMDS674JZ"

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = map[uuid.UUID]struct{}{}
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			identity, _, err := identities.ResolveOrCreate(ctx, newIdentity(publicKey))
			require.NoError(t, err)
			mu.Lock()
			ids[identity.ID] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Len(t, ids, 1)
}
