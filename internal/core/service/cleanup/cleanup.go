package cleanup

import (
	"log/slog"
	"med-voice/internal/config"
	"med-voice/internal/core/port"
)

type cleanupService struct {
	registry  port.SessionRegistry
	dedup     port.DeduplicationIndex
	uploadCfg config.UploadConfig
	logger    *slog.Logger
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(registry port.SessionRegistry, dedup port.DeduplicationIndex, cfg config.UploadConfig, logger *slog.Logger) port.CleanupService {
	return &cleanupService{
		registry:  registry,
		dedup:     dedup,
		uploadCfg: cfg,
		logger:    logger,
	}
}
