package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/voicequill/voicequill/internal/config"
	"github.com/voicequill/voicequill/internal/exporter"
	"github.com/voicequill/voicequill/internal/gemini"
	"github.com/voicequill/voicequill/internal/jobs"
	"github.com/voicequill/voicequill/internal/language"
	"github.com/voicequill/voicequill/internal/logger"
	"github.com/voicequill/voicequill/internal/pipeline"
	"github.com/voicequill/voicequill/internal/watcher"
	"github.com/voicequill/voicequill/pkg/executor"
)

func main() {
	ctx := context.Background()

	// .env is optional; the config file and environment take over from here
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log.Info(ctx, "========================================")
	log.Info(ctx, "voicequill - audio insight pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Model: %s", cfg.Gemini.Model)
	log.Info(ctx, "Timecodes: %v", cfg.Processing.Timecodes)
	if cfg.Processing.TargetLanguage != "" {
		target, _ := language.ByCode(cfg.Processing.TargetLanguage)
		log.Info(ctx, "Target language: %s", target.Name)
	}
	log.Info(ctx, "Max concurrent jobs: %d", cfg.Processing.MaxConcurrent)

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	// Wire dependencies
	bus := jobs.NewEventBus(500)
	manager := jobs.NewManager(bus)
	client := gemini.New(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)
	exp := exporter.New(cfg.Paths.Output, log)
	exec := executor.New()
	pipe := pipeline.New(cfg, client, manager, exp, exec, log)

	w, err := watcher.New(cfg.Paths.Input, pipe.Process, log, cfg.Processing.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Drop audio or video files into %s", cfg.Paths.Input)
	log.Info(ctx, "Artifacts will appear in %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "voicequill stopped")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
