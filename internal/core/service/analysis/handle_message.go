package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"med-voice/internal/core/domain"
	"os"
	"path/filepath"
)

// HandleMessage processes one recording-uploaded event: download the object,
// transcribe it, derive recommendations, and update the recording row.
// Returning an error nacks the message for redelivery.
func (a *analysisService) HandleMessage(ctx context.Context, data []byte) error {
	var event domain.RecordingUploadedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("could not unmarshal recording uploaded event: %w", err)
	}

	a.logger.Info("handling recording uploaded event",
		"recording_id", event.RecordingID,
		"object_key", event.ObjectKey,
	)

	if _, err := a.recording.FindByID(ctx, event.RecordingID); err != nil {
		return err
	}

	localPath := filepath.Join(a.workDir, fmt.Sprintf("analysis_%s%s", event.RecordingID, filepath.Ext(event.ObjectKey)))
	if err := a.storage.Download(ctx, event.ObjectKey, localPath); err != nil {
		return fmt.Errorf("failed to download object for analysis: %w", err)
	}
	defer func() {
		if err := os.Remove(localPath); err != nil {
			a.logger.Warn("failed to remove analysis temp file", "path", localPath, "error", err)
		}
	}()

	transcript, err := a.transcriber.Transcribe(ctx, localPath, event.MimeType, domain.AIOptions{})
	if err != nil {
		return fmt.Errorf("failed to transcribe recording: %w", err)
	}

	recommendations, err := a.recommender.Recommend(ctx, transcript, domain.AIOptions{})
	if err != nil {
		return fmt.Errorf("failed to generate recommendations: %w", err)
	}

	if err := a.recording.UpdateAnalysis(ctx, event.RecordingID, transcript, recommendations); err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}

	a.logger.Info("recording analysis completed", "recording_id", event.RecordingID)
	return nil
}
