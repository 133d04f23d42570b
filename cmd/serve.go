package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/dtroode/stellar-wallet-server/internal/api/http/router"
	"github.com/dtroode/stellar-wallet-server/internal/config"
	"github.com/dtroode/stellar-wallet-server/internal/events"
	"github.com/dtroode/stellar-wallet-server/internal/keys"
	"github.com/dtroode/stellar-wallet-server/internal/ledger"
	"github.com/dtroode/stellar-wallet-server/internal/logger"
	"github.com/dtroode/stellar-wallet-server/internal/model"
	"github.com/dtroode/stellar-wallet-server/internal/repository/memory"
	"github.com/dtroode/stellar-wallet-server/internal/repository/postgres"
	redisrepo "github.com/dtroode/stellar-wallet-server/internal/repository/redis"
	"github.com/dtroode/stellar-wallet-server/internal/server"
	"github.com/dtroode/stellar-wallet-server/internal/service"
	storage "github.com/dtroode/stellar-wallet-server/internal/storage/minio"
	"github.com/dtroode/stellar-wallet-server/internal/token"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the wallet HTTP API",
		Long:  "Run the wallet HTTP API. With the postgres store pending migrations are applied on startup unless DATABASE_AUTO_MIGRATE is false.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	logger := logger.NewWithFormat(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	gin.SetMode(gin.ReleaseMode)

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	httpServer := server.NewHTTPServer(a.handler, fmt.Sprintf(":%s", cfg.HTTP.Port))
	sl := server.NewSecurityLayer(cfg.HTTP)

	errCh := make(chan error, 1)
	go func(s model.Server) {
		logger.Info("Starting server on", "address", s.Address(), "scheme", sl.Scheme())
		errCh <- s.Start(sl)
	}(httpServer)

	logger.Info("build info",
		"version", buildVersion,
		"date", buildDate,
		"commit", buildCommit)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("failed to start server", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	if err := <-errCh; err != nil {
		logger.Error("server stopped with error", "error", err)
	}
	logger.Info("shutdown complete")
	return nil
}

// app holds the wired services and the resources to release on exit.
type app struct {
	handler http.Handler
	closers []func() error
	logger  *logger.Logger
}

func newApp(ctx context.Context, cfg *config.Config, logger *logger.Logger) (_ *app, err error) {
	a := &app{logger: logger}
	defer func() {
		if err != nil {
			a.Close()
		}
	}()

	identities, sessions, err := a.openStores(ctx, cfg)
	if err != nil {
		return nil, err
	}

	denylist, publisher, err := a.openRevocationAndEvents(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var archive model.ReceiptArchive
	if cfg.Storage.Enabled {
		client, err := storage.Dial(cfg.Storage.Endpoint, cfg.Storage.AccessKey, cfg.Storage.SecretKey, cfg.Storage.UseSSL)
		if err != nil {
			return nil, err
		}
		storageClient, err := storage.NewClient(ctx, client, cfg.Storage.Bucket)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage client: %w", err)
		}
		archive = storage.NewReceiptArchive(storageClient)
		logger.Info("receipt archive enabled", "bucket", cfg.Storage.Bucket)
	}

	horizon := ledger.NewHorizonClient(cfg.Ledger.Endpoint(), cfg.Ledger.Timeout)
	gateway := ledger.NewGateway(horizon, cfg.Ledger.Passphrase(), cfg.Ledger.BaseFee, cfg.Ledger.Timeout, logger)

	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.AccessTTL)
	tokenService := service.NewTokenService(tokenManager, denylist, logger)

	authService := service.NewAuth(identities, sessions, keys.NewEd25519Verifier(), tokenService, publisher, cfg.AppName, logger)
	walletService := service.NewWallet(service.NewPayment(), gateway, archive, publisher, logger)

	a.handler = router.New(authService, walletService, tokenService, logger).Register()

	logger.Info("ledger gateway configured",
		"network", cfg.Ledger.Network,
		"horizon_url", cfg.Ledger.Endpoint())

	return a, nil
}

func (a *app) openStores(ctx context.Context, cfg *config.Config) (model.IdentityStore, model.SessionStore, error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		a.logger.Warn("using in-memory store, data is lost on restart")
		store := memory.NewStore()
		return store, store, nil
	}

	db, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	a.closers = append(a.closers, db.Close)

	return postgres.NewIdentityRepository(db), postgres.NewSessionRepository(db), nil
}

func (a *app) openRevocationAndEvents(ctx context.Context, cfg *config.Config) (model.TokenDenylist, *events.WatermillPublisher, error) {
	if cfg.Redis.URL == "" {
		pubSub := events.NewInMemoryPubSub()
		publisher := events.NewWatermillPublisher(pubSub)
		a.closers = append(a.closers, publisher.Close)
		return memory.NewDenylist(), publisher, nil
	}

	client, err := redisrepo.NewClient(ctx, cfg.Redis.URL)
	if err != nil {
		return nil, nil, err
	}
	a.closers = append(a.closers, client.Close)

	stream, err := events.NewRedisPublisher(client)
	if err != nil {
		return nil, nil, err
	}
	publisher := events.NewWatermillPublisher(stream)
	a.closers = append(a.closers, publisher.Close)

	return redisrepo.NewDenylist(client), publisher, nil
}

// Close releases resources in reverse order of acquisition.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Error("failed to release resource", "error", err)
		}
	}
	a.closers = nil
}
