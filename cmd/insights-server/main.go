package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/zarlabs/survey-insights/internal/config"
	"github.com/zarlabs/survey-insights/internal/httpapi"
	"github.com/zarlabs/survey-insights/internal/insights"
	"github.com/zarlabs/survey-insights/internal/nexus"
	"github.com/zarlabs/survey-insights/internal/survey"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := buildLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer logger.Sync()

	interviews, err := survey.LoadInterviews(cfg.DataPath)
	if err != nil {
		logger.Fatal("load interviews", zap.Error(err))
	}
	transcripts, err := survey.LoadTranscripts(cfg.TranscriptsDir)
	if err != nil {
		logger.Warn("load transcripts", zap.Error(err))
	}

	// All derivations run once here; the server serves the frozen result.
	snapshot := insights.BuildSnapshot(interviews, transcripts)
	logger.Info("snapshot ready",
		zap.Int("interviews", snapshot.Dashboard.TotalInterviews),
		zap.Int("transcripts", len(transcripts)),
		zap.String("verdict", string(snapshot.Scorecard.OverallVerdict)),
	)

	state, err := nexus.OpenSyncState(cfg.SyncDBPath)
	if err != nil {
		logger.Fatal("open sync state", zap.Error(err))
	}
	defer state.Close()
	syncer := nexus.NewSyncer(nexus.NewClient(cfg.NexusWebhookURL, cfg.NexusAPIKey), state, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Boot-time sync pass; failures retry on the next boot or via the API.
	if res, err := syncer.Sync(ctx, interviews); err != nil {
		logger.Error("boot sync failed", zap.Error(err))
	} else {
		logger.Info("boot sync done",
			zap.Int("synced", len(res.Synced)),
			zap.Int("skipped", len(res.Skipped)),
			zap.Int("failed", len(res.Failed)),
		)
	}

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: httpapi.NewServer(snapshot, syncer, logger).Handler(cfg.AllowedOrigins),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", zap.String("addr", cfg.ListenAddr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("serve", zap.Error(err))
	}
}

func buildLogger(level string) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if err := zcfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	return zcfg.Build()
}
