package upload

import (
	"errors"
	"med-voice/internal/core/domain"
	"net/http"

	"github.com/google/uuid"
)

// V1ProcessAudioResponse is the response of the deduplicated processing route
type V1ProcessAudioResponse struct {
	Success         bool             `json:"success"`
	Message         string           `json:"message,omitempty"`
	RecordingID     uuid.UUID        `json:"recording_id"`
	IsDuplicate     bool             `json:"is_duplicate"`
	Transcript      string           `json:"transcript,omitempty"`
	Recommendations string           `json:"recommendations,omitempty"`
	File            *V1RecordingFile `json:"file,omitempty"`
}

// ProcessAudioV1 handles the AI-processing path. Client and request
// identifiers come from the X-Client-ID / X-Request-ID headers or the
// clientId / requestId query parameters; a recognized replay returns the prior
// recording id without reprocessing.
func (h *HandlerV1) ProcessAudioV1(w http.ResponseWriter, r *http.Request) {

	form, err := readAudioForm(r, h.stagingDir)
	switch {
	case errors.Is(err, domain.ErrMissingAudioPart):
		h.writeError(w, http.StatusBadRequest, "No audio uploaded")
		return
	case err != nil:
		h.logger.Error("error reading process form", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Upload failed")
		return
	}

	var ownerID *string
	if owner := r.URL.Query().Get("userId"); owner != "" {
		ownerID = &owner
	}

	inputs := domain.SignatureInputs{
		ClientID:  headerOrQuery(r, "X-Client-ID", "clientId"),
		RequestID: headerOrQuery(r, "X-Request-ID", "requestId"),
		OwnerID:   ownerID,
		FileSize:  form.Size,
	}

	// A per-request key overrides the shared AI client for this call only.
	opts := domain.AIOptions{APIKey: form.Fields["apiKey"]}

	result, err := h.processService.ProcessAudio(r.Context(), domain.StagedUpload{
		Path:             form.TempPath,
		OriginalFilename: form.Filename,
		MimeType:         form.MimeType,
		SizeBytes:        form.Size,
		OwnerID:          ownerID,
	}, inputs, opts)
	if err != nil {
		form.Remove()
		h.logger.Error("error processing audio", "error", err)
		h.writeError(w, http.StatusBadGateway, "audio processing failed")
		return
	}

	if result.IsDuplicate {
		form.Remove()
		h.writeJSON(w, http.StatusOK, V1ProcessAudioResponse{
			Success:     true,
			Message:     "Request already processed",
			RecordingID: result.RecordingID,
			IsDuplicate: true,
		})
		return
	}

	h.writeJSON(w, http.StatusOK, V1ProcessAudioResponse{
		Success:         true,
		RecordingID:     result.RecordingID,
		Transcript:      result.Transcript,
		Recommendations: result.Recommendations,
		File:            toRecordingFile(result.Recording),
	})
}

func headerOrQuery(r *http.Request, header, query string) string {
	if v := r.Header.Get(header); v != "" {
		return v
	}
	return r.URL.Query().Get(query)
}
