package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/infra/credential"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/storage"
	"storefront/internal/infra/storefront"

	"github.com/pkg/errors"
)

// cliEnv is the device side of the CLI: its config, its key-value store and
// the session stored in it.
type cliEnv struct {
	cfg      *config.Config
	logger   *slog.Logger
	store    service.KeyValueStore
	accessor *credential.StoreAccessor
	client   *storefront.Client
}

func newCLIEnv(ctx context.Context) (*cliEnv, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}

	// Logs go to stderr so that command output stays readable.
	logger, err := logs.NewWithWriter(cfg, os.Stderr)
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(ctx, cfg.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open device storage")
	}

	return &cliEnv{
		cfg:    cfg,
		logger: logger,
		store:  store,
		accessor: credential.NewStoreAccessor(credential.StoreAccessorParams{
			Store:  store,
			Config: cfg,
			Logger: logger,
		}),
		client: storefront.NewClient(storefront.ClientParams{
			Config: cfg,
			Logger: logger,
		}),
	}, nil
}

func (e *cliEnv) Close() {
	if err := e.store.Close(); err != nil {
		e.logger.Warn("Failed to close device storage", slog.Any("error", err))
	}
}
