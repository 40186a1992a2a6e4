package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/webstore/seller-sync/internal/config"
	"github.com/webstore/seller-sync/internal/logger"
	"github.com/webstore/seller-sync/internal/replica"
	"github.com/webstore/seller-sync/internal/workers"
)

// App is the headless replica client: it authenticates against the server,
// keeps the local SQLite replica fresh via the background sync worker, and
// shuts down on SIGTERM/SIGINT.
type App struct {
	adapter replica.ServerAdapter
	store   replica.LocalStore
	cfg     config.ClientWorkers
	logger  *logger.Logger
}

func NewApp(adapter replica.ServerAdapter, store replica.LocalStore, cfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if adapter == nil || store == nil {
		return nil, errors.New("client app requires an adapter and a local store")
	}

	return &App{
		adapter: adapter,
		store:   store,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

// Run implements [Client]. It blocks until a stop signal arrives.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()
	defer a.store.Close()

	if err := a.login(ctx); err != nil {
		return err
	}

	sync := replica.NewSyncService(a.adapter, a.store, nil, a.logger)
	workers.NewWorkers(ctx, sync, a.cfg, a.logger).Run()

	a.logger.Info().Msg("replica client started")
	<-ctx.Done()
	a.logger.Info().Msg("replica client stopped")

	return nil
}

// login authenticates with credentials from the environment. Registration is
// attempted first when SELLER_REGISTER=1 is set.
func (a *App) login(ctx context.Context) error {
	login := os.Getenv("SELLER_LOGIN")
	password := os.Getenv("SELLER_PASSWORD")
	if login == "" || password == "" {
		return errors.New("SELLER_LOGIN and SELLER_PASSWORD must be set")
	}

	if os.Getenv("SELLER_REGISTER") == "1" {
		token, err := a.adapter.Register(ctx, login, password, os.Getenv("SELLER_NAME"))
		if err != nil {
			return fmt.Errorf("register: %w", err)
		}

		a.logger.Info().Int64("seller_id", token.SellerID).Msg("registered new seller")
		return nil
	}

	token, err := a.adapter.Login(ctx, login, password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	a.logger.Info().Int64("seller_id", token.SellerID).Msg("logged in")
	return nil
}
