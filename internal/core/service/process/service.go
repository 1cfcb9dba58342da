package process

import (
	"log/slog"
	"med-voice/internal/config"
	"med-voice/internal/core/port"
)

type processService struct {
	recording   port.RecordingRepository
	storage     port.ObjectStorage
	transcriber port.Transcriber
	recommender port.Recommender
	dedup       port.DeduplicationIndex
	dedupCfg    config.DedupConfig
	logger      *slog.Logger
}

// NewProcessService creates the direct-upload and AI-processing service
func NewProcessService(
	recording port.RecordingRepository,
	storage port.ObjectStorage,
	transcriber port.Transcriber,
	recommender port.Recommender,
	dedup port.DeduplicationIndex,
	cfg config.DedupConfig,
	logger *slog.Logger,
) port.ProcessService {
	return &processService{
		recording:   recording,
		storage:     storage,
		transcriber: transcriber,
		recommender: recommender,
		dedup:       dedup,
		dedupCfg:    cfg,
		logger:      logger,
	}
}
