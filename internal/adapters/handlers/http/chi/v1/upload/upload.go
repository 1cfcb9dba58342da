package upload

import (
	"errors"
	"med-voice/internal/core/domain"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// V1RecordingFile is the recording view returned by the audio routes
type V1RecordingFile struct {
	ID              uuid.UUID         `json:"id"`
	Filename        string            `json:"filename"`
	StoragePath     string            `json:"storage_path"`
	StorageURL      string            `json:"storage_url"`
	SizeBytes       int64             `json:"size_bytes"`
	UploadedAt      time.Time         `json:"uploaded_at"`
	Transcript      *string           `json:"transcript,omitempty"`
	Recommendations *string           `json:"recommendations,omitempty"`
	OwnerID         *string           `json:"owner_id,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

func toRecordingFile(rec *domain.Recording) *V1RecordingFile {
	if rec == nil {
		return nil
	}
	return &V1RecordingFile{
		ID:              rec.ID,
		Filename:        rec.Filename,
		StoragePath:     rec.StoragePath,
		StorageURL:      rec.StorageURL,
		SizeBytes:       rec.SizeBytes,
		UploadedAt:      rec.UploadedAt,
		Transcript:      rec.Transcript,
		Recommendations: rec.Recommendations,
		OwnerID:         rec.OwnerID,
		Metadata:        rec.Metadata,
	}
}

// V1UploadAudioResponse is the response of the direct upload route
type V1UploadAudioResponse struct {
	Success         bool             `json:"success"`
	RecordingID     uuid.UUID        `json:"recording_id"`
	Transcript      string           `json:"transcript,omitempty"`
	Recommendations string           `json:"recommendations,omitempty"`
	File            *V1RecordingFile `json:"file"`
}

// UploadAudioV1 handles the direct (non-chunked) upload path: single audio
// part stored, optionally transcribed, and saved in one pass.
func (h *HandlerV1) UploadAudioV1(w http.ResponseWriter, r *http.Request) {

	form, err := readAudioForm(r, h.stagingDir)
	switch {
	case errors.Is(err, domain.ErrMissingAudioPart):
		h.writeError(w, http.StatusBadRequest, "No audio uploaded")
		return
	case err != nil:
		h.logger.Error("error reading upload form", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Upload failed")
		return
	}

	skipAI := r.URL.Query().Get("skipAI") == "true"

	var ownerID *string
	if owner := r.URL.Query().Get("userId"); owner != "" {
		ownerID = &owner
	}

	result, err := h.processService.UploadAudio(r.Context(), domain.StagedUpload{
		Path:             form.TempPath,
		OriginalFilename: form.Filename,
		MimeType:         form.MimeType,
		SizeBytes:        form.Size,
		OwnerID:          ownerID,
	}, skipAI)
	if err != nil {
		form.Remove()
		h.logger.Error("error processing upload", "error", err)
		h.writeError(w, http.StatusBadGateway, "upload processing failed")
		return
	}

	h.writeJSON(w, http.StatusOK, V1UploadAudioResponse{
		Success:         true,
		RecordingID:     result.RecordingID,
		Transcript:      result.Transcript,
		Recommendations: result.Recommendations,
		File:            toRecordingFile(result.Recording),
	})
}
