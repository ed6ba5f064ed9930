package gemini

import (
	"sync"

	"github.com/voicequill/voicequill/internal/logger"
)

type implClient struct {
	mu         sync.Mutex
	apiKeys    []string
	currentKey int
	model      string
	logger     logger.Logger
}

// New creates a Client that rotates through the supplied Gemini API keys
// when one hits its quota.
func New(apiKeys []string, model string, log logger.Logger) Client {
	return &implClient{
		apiKeys: apiKeys,
		model:   model,
		logger:  log,
	}
}
