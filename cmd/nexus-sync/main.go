package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/zarlabs/survey-insights/internal/config"
	"github.com/zarlabs/survey-insights/internal/nexus"
	"github.com/zarlabs/survey-insights/internal/survey"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer logger.Sync()

	interviews, err := survey.LoadInterviews(cfg.DataPath)
	if err != nil {
		logger.Fatal("load interviews", zap.Error(err))
	}

	state, err := nexus.OpenSyncState(cfg.SyncDBPath)
	if err != nil {
		logger.Fatal("open sync state", zap.Error(err))
	}
	defer state.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	syncer := nexus.NewSyncer(nexus.NewClient(cfg.NexusWebhookURL, cfg.NexusAPIKey), state, logger)
	res, err := syncer.Sync(ctx, interviews)
	if err != nil {
		logger.Fatal("sync", zap.Error(err))
	}
	if len(res.Failed) > 0 {
		os.Exit(1)
	}
}
