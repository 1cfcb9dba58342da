package port

import (
	"context"
	"med-voice/internal/core/domain"
	"time"

	"github.com/google/uuid"
)

// DeduplicationIndex is an interface to track recently processed request
// signatures. CheckAndRecord must be atomic: it either returns the existing
// fresh completed entry, or records a placeholder for the caller in one step.
// An entry whose recording id has not been set by Complete yet is in flight
// and is never reported as a duplicate.
type DeduplicationIndex interface {
	CheckAndRecord(ctx context.Context, signature string, now time.Time) (*domain.DeduplicationEntry, bool)
	Complete(ctx context.Context, signature string, recordingID uuid.UUID)
	Forget(ctx context.Context, signature string)
	Sweep(ctx context.Context, now time.Time) int
}

// ProcessService is an interface to define the direct-upload and deduplicated
// AI-processing paths
type ProcessService interface {
	ProcessAudio(ctx context.Context, upload domain.StagedUpload, inputs domain.SignatureInputs, opts domain.AIOptions) (*domain.ProcessResult, error)
	UploadAudio(ctx context.Context, upload domain.StagedUpload, skipAI bool) (*domain.ProcessResult, error)
}
