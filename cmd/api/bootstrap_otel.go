package main

import (
	"context"

	"github.com/alacase/backend/internal/config"
	"github.com/alacase/backend/internal/obs"
)

func initOTel(ctx context.Context, cfg *config.Config) (func(context.Context) error, error) {
	ot, err := obs.SetupOTel(ctx, cfg.OTEL.AsOTELConfig())
	if err != nil {
		return nil, err
	}
	return ot.Shutdown, nil
}
