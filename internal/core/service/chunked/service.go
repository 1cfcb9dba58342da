package chunked

import (
	"log/slog"
	"med-voice/internal/config"
	"med-voice/internal/core/port"
)

type chunkService struct {
	registry  port.SessionRegistry
	storage   port.ObjectStorage
	recording port.RecordingRepository
	publisher port.EventPublisher
	uploadCfg config.UploadConfig
	logger    *slog.Logger
}

// NewChunkService creates a new chunked-upload service
func NewChunkService(
	registry port.SessionRegistry,
	storage port.ObjectStorage,
	recording port.RecordingRepository,
	publisher port.EventPublisher,
	cfg config.UploadConfig,
	logger *slog.Logger,
) port.ChunkService {
	return &chunkService{
		registry:  registry,
		storage:   storage,
		recording: recording,
		publisher: publisher,
		uploadCfg: cfg,
		logger:    logger,
	}
}
