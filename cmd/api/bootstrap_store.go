package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/alacase/backend/internal/config"
	"github.com/alacase/backend/internal/domain/status"
	"github.com/alacase/backend/internal/repository/memstore"
	"github.com/alacase/backend/internal/repository/redisstore"
)

// initStore builds the configured status store. An unset Redis address is
// not fatal: the process serves payments and health, and the status
// endpoints answer 503 until a store is configured.
func initStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (status.Store, func(), error) {
	noop := func() {}

	if cfg.Status.Store == "memory" {
		logger.Info("using in-memory status store")
		return memstore.New(), noop, nil
	}

	if cfg.Redis.Addr == "" {
		logger.Warn("redis address not set; status persistence unavailable")
		return nil, noop, nil
	}

	st, err := redisstore.New(ctx, redisstore.Config{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
		OpTimeout:    cfg.Redis.OpTimeout,
	})
	if err != nil {
		return nil, nil, err
	}
	return st, func() { _ = st.Close() }, nil
}
