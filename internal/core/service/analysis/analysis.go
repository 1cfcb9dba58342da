package analysis

import (
	"log/slog"
	"med-voice/internal/core/port"
)

type analysisService struct {
	storage     port.ObjectStorage
	recording   port.RecordingRepository
	transcriber port.Transcriber
	recommender port.Recommender
	workDir     string
	logger      *slog.Logger
}

// NewAnalysisService creates the recording-uploaded event handler that runs
// transcription and recommendation generation for finalized chunked uploads
func NewAnalysisService(
	storage port.ObjectStorage,
	recording port.RecordingRepository,
	transcriber port.Transcriber,
	recommender port.Recommender,
	workDir string,
	logger *slog.Logger,
) port.MessageService {
	return &analysisService{
		storage:     storage,
		recording:   recording,
		transcriber: transcriber,
		recommender: recommender,
		workDir:     workDir,
		logger:      logger,
	}
}
