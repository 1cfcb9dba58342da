package domain

import (
	"time"

	"github.com/google/uuid"
)

// Recording represents one durable recording entry, created exactly once per
// successful upload (direct or chunked). Transcript and recommendations stay
// empty until analysis completes.
type Recording struct {
	ID              uuid.UUID
	Filename        string
	StoragePath     string
	StorageURL      string
	SizeBytes       int64
	UploadedAt      time.Time
	Transcript      *string
	Recommendations *string
	OwnerID         *string
	Metadata        map[string]string
}

// StagedUpload describes an uploaded audio file sitting in local staging
type StagedUpload struct {
	Path             string
	OriginalFilename string
	MimeType         string
	SizeBytes        int64
	OwnerID          *string
}

// AIOptions carries per-request AI configuration. A non-empty APIKey overrides
// the shared client for this call only.
type AIOptions struct {
	APIKey string
}

// SignatureInputs are the request identity components a deduplication signature
// is derived from
type SignatureInputs struct {
	ClientID  string
	RequestID string
	OwnerID   *string
	FileSize  int64
}

// DeduplicationEntry is the recorded outcome of a previously seen request signature
type DeduplicationEntry struct {
	Timestamp   time.Time
	RecordingID uuid.UUID
}

// ProcessResult is the outcome of the deduplicated AI-processing path
type ProcessResult struct {
	RecordingID     uuid.UUID
	Recording       *Recording
	Transcript      string
	Recommendations string
	IsDuplicate     bool
}
