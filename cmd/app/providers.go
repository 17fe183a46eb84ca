package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/risk-intake/internal/domain/intake"
	"github.com/yanqian/risk-intake/internal/infra/config"
	"github.com/yanqian/risk-intake/internal/infra/predictor"
	"github.com/yanqian/risk-intake/internal/infra/ratelimit"
	httpiface "github.com/yanqian/risk-intake/internal/interface/http"
)

func provideIntakeConfig(cfg *config.Config) intake.Config {
	return intake.Config{
		SessionTTL:    cfg.Session.TTL,
		SweepInterval: cfg.Session.SweepInterval,
	}
}

func providePredictorClient(cfg *config.Config) *predictor.Client {
	return predictor.NewClient(cfg.Predictor.BaseURL, cfg.Predictor.Timeout)
}

// provideRateLimiter returns nil when rate limiting is disabled. A Valkey
// backend that cannot be reached falls back to the in-process limiter.
func provideRateLimiter(cfg *config.Config, logger *slog.Logger) httpiface.RateLimiter {
	rl := cfg.HTTP.RateLimit
	if !rl.Enabled {
		logger.Info("rate limiting disabled")
		return nil
	}
	fallback := ratelimit.NewMemoryLimiter(rl.RequestsPerMinute, rl.Burst)
	if !strings.EqualFold(rl.Backend, config.RateLimitBackendValkey) {
		return fallback
	}

	opt, err := ratelimit.ParseOptions(rl.ValkeyAddr)
	if err != nil {
		logger.Error("invalid valkey configuration, using memory rate limiter", "error", err)
		return fallback
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, using memory rate limiter", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, using memory rate limiter", "error", err)
		client.Close()
		return fallback
	}
	logger.Info("valkey rate limiter enabled", "addr", rl.ValkeyAddr)
	return ratelimit.NewValkeyLimiter(client, rl.KeyPrefix, rl.RequestsPerMinute)
}
