package main

import (
	"go.uber.org/zap"

	"github.com/alacase/backend/internal/config"
	"github.com/alacase/backend/internal/obs"
)

func initLogger(cfg *config.Config) (*zap.Logger, error) {
	return obs.NewLogger(*cfg.AsLoggerConfig())
}
