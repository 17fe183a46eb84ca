package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/risk-intake/internal/domain/intake"
	"github.com/yanqian/risk-intake/internal/domain/riskresult"
	"github.com/yanqian/risk-intake/internal/infra/config"
)

type noopPredictor struct{}

func (noopPredictor) Predict(context.Context, intake.Payload) (riskresult.RiskResult, error) {
	return riskresult.RiskResult{}, nil
}

func TestRunStopsOnContextCancel(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{HTTP: config.HTTPConfig{Address: "127.0.0.1:0"}}
	server := &http.Server{Addr: cfg.HTTP.Address, Handler: http.NotFoundHandler()}
	sessions := intake.NewSessions(intake.Config{SessionTTL: time.Minute, SweepInterval: 10 * time.Millisecond}, noopPredictor{}, logger)

	app := NewApp(cfg, logger, server, sessions)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop after cancel")
	}
}

func TestRunReturnsListenError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{HTTP: config.HTTPConfig{Address: "invalid-address"}}
	server := &http.Server{Addr: cfg.HTTP.Address, Handler: http.NotFoundHandler()}
	sessions := intake.NewSessions(intake.Config{}, noopPredictor{}, logger)

	err := NewApp(cfg, logger, server, sessions).Run(context.Background())
	require.Error(t, err)
}
