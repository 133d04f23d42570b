package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dtroode/stellar-wallet-server/database"
	"github.com/dtroode/stellar-wallet-server/internal/config"
)

// Connection is the pool shared by the identity and session repositories.
type Connection struct {
	*pgxpool.Pool
}

// NewConnection opens a pool for cfg, checks that the server answers and,
// when cfg.AutoMigrate is set, applies pending migrations.
func NewConnection(ctx context.Context, cfg config.Database) (*Connection, error) {
	conf, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		conf.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to reach postgres: %w", err)
	}

	if cfg.AutoMigrate {
		if err := database.Migrate(ctx, cfg.DSN); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
	}

	return &Connection{Pool: pool}, nil
}

func (s *Connection) Close() error {
	if s.Pool != nil {
		s.Pool.Close()
	}
	return nil
}

var errNoPool = errors.New("connection pool is nil")

func (s *Connection) Ping(ctx context.Context) error {
	if s.Pool == nil {
		return errNoPool
	}
	return s.Pool.Ping(ctx)
}
