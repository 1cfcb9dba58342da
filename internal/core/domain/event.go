package domain

import "github.com/google/uuid"

// RecordingUploadedEvent is published after a chunked upload is finalized and
// durably saved. The transcriber worker consumes it to run analysis out of band.
type RecordingUploadedEvent struct {
	RecordingID uuid.UUID `json:"recording_id"`
	ObjectKey   string    `json:"object_key"`
	MimeType    string    `json:"mime_type"`
	SizeBytes   int64     `json:"size_bytes"`
}
