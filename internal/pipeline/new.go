package pipeline

import (
	"github.com/voicequill/voicequill/internal/config"
	"github.com/voicequill/voicequill/internal/exporter"
	"github.com/voicequill/voicequill/internal/gemini"
	"github.com/voicequill/voicequill/internal/jobs"
	"github.com/voicequill/voicequill/internal/logger"
	"github.com/voicequill/voicequill/pkg/executor"
)

type implPipeline struct {
	cfg      *config.Config
	client   gemini.Client
	manager  *jobs.Manager
	exporter exporter.Exporter
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Pipeline instance
func New(cfg *config.Config, client gemini.Client, mgr *jobs.Manager, exp exporter.Exporter, exec executor.Executor, log logger.Logger) Pipeline {
	return &implPipeline{
		cfg:      cfg,
		client:   client,
		manager:  mgr,
		exporter: exp,
		executor: exec,
		logger:   log,
	}
}
