package process

import (
	"context"
	"fmt"
	"med-voice/internal/core/domain"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// ProcessAudio runs the deduplicated AI-processing path: a repeat request
// within the freshness window returns the prior recording id flagged as a
// replay instead of reprocessing. A fresh request uploads the staged file,
// transcribes it, derives recommendations, and persists the recording.
func (p *processService) ProcessAudio(ctx context.Context, upload domain.StagedUpload, inputs domain.SignatureInputs, opts domain.AIOptions) (*domain.ProcessResult, error) {

	now := time.Now()
	signature := Signature(inputs, now, p.dedupCfg.FallbackBucket)

	if entry, duplicate := p.dedup.CheckAndRecord(ctx, signature, now); duplicate {
		p.logger.Info("duplicate processing request short-circuited",
			"signature", signature,
			"recording_id", entry.RecordingID,
		)
		return &domain.ProcessResult{
			RecordingID: entry.RecordingID,
			IsDuplicate: true,
		}, nil
	}

	result, err := p.runPipeline(ctx, upload, false, opts)
	if err != nil {
		// The placeholder must not block a retry of a failed attempt.
		p.dedup.Forget(ctx, signature)
		return nil, err
	}

	p.dedup.Complete(ctx, signature, result.RecordingID)
	return result, nil
}

// UploadAudio runs the direct (non-deduplicated) upload path. With skipAI set
// the file is stored and recorded without transcription.
func (p *processService) UploadAudio(ctx context.Context, upload domain.StagedUpload, skipAI bool) (*domain.ProcessResult, error) {
	return p.runPipeline(ctx, upload, skipAI, domain.AIOptions{})
}

func (p *processService) runPipeline(ctx context.Context, upload domain.StagedUpload, skipAI bool, opts domain.AIOptions) (*domain.ProcessResult, error) {

	ext := filepath.Ext(upload.OriginalFilename)
	outName := fmt.Sprintf("%d%s", time.Now().UnixMilli(), ext)
	objectKey := "audio/" + outName

	storageURL, err := p.storage.Upload(ctx, upload.Path, objectKey, upload.MimeType)
	if err != nil {
		return nil, fmt.Errorf("failed to upload audio: %w", err)
	}

	var transcript, recommendations string
	if !skipAI {
		transcript, err = p.transcriber.Transcribe(ctx, upload.Path, upload.MimeType, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to transcribe audio: %w", err)
		}

		recommendations, err = p.recommender.Recommend(ctx, transcript, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to generate recommendations: %w", err)
		}
	}

	recording := domain.Recording{
		ID:          uuid.New(),
		Filename:    outName,
		StoragePath: objectKey,
		StorageURL:  storageURL,
		SizeBytes:   upload.SizeBytes,
		UploadedAt:  time.Now(),
		OwnerID:     upload.OwnerID,
		Metadata: map[string]string{
			"originalFilename": upload.OriginalFilename,
			"mimeType":         upload.MimeType,
		},
	}
	if !skipAI {
		recording.Transcript = &transcript
		recording.Recommendations = &recommendations
	}

	if err := p.recording.Create(ctx, recording); err != nil {
		return nil, fmt.Errorf("failed to save recording: %w", err)
	}

	// Best-effort staging cleanup; the result is already durable.
	if err := os.Remove(upload.Path); err != nil {
		p.logger.Warn("failed to remove staged upload", "path", upload.Path, "error", err)
	}

	p.logger.Info("audio processed",
		"recording_id", recording.ID,
		"size_bytes", upload.SizeBytes,
		"skip_ai", skipAI,
	)

	return &domain.ProcessResult{
		RecordingID:     recording.ID,
		Recording:       &recording,
		Transcript:      transcript,
		Recommendations: recommendations,
	}, nil
}
