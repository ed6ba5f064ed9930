package exporter

import (
	"github.com/voicequill/voicequill/internal/logger"
)

type implExporter struct {
	outputDir string
	logger    logger.Logger
}

// New creates an Exporter writing into outputDir.
func New(outputDir string, log logger.Logger) Exporter {
	return &implExporter{
		outputDir: outputDir,
		logger:    log,
	}
}
