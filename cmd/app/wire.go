//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/risk-intake/internal/bootstrap"
	"github.com/yanqian/risk-intake/internal/domain/intake"
	"github.com/yanqian/risk-intake/internal/infra/config"
	"github.com/yanqian/risk-intake/internal/infra/predictor"
	httpiface "github.com/yanqian/risk-intake/internal/interface/http"
	"github.com/yanqian/risk-intake/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideIntakeConfig,
		providePredictorClient,
		provideRateLimiter,
		intake.NewSessions,
		wire.Bind(new(intake.Predictor), new(*predictor.Client)),
		wire.Bind(new(httpiface.StatusProber), new(*predictor.Client)),
		httpiface.NewHandler,
		httpiface.NewPageHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
