package upload

import (
	"encoding/json"
	"errors"
	"med-voice/internal/core/domain"
	"net/http"

	"github.com/google/uuid"
)

// V1FinalizeSessionRequest asks to merge a complete chunk session
type V1FinalizeSessionRequest struct {
	SessionID   string `json:"session_id"`
	TotalChunks int    `json:"total_chunks"`
}

// V1FinalizeSessionResponse is the successful finalize response
type V1FinalizeSessionResponse struct {
	Success     bool             `json:"success"`
	RecordingID uuid.UUID        `json:"recording_id"`
	File        *V1RecordingFile `json:"file"`
}

// V1IncompleteSessionResponse reports which chunks arrived and which are
// missing, so the client can selectively resend
type V1IncompleteSessionResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Received []int  `json:"received"`
	Missing  []int  `json:"missing"`
}

// FinalizeSessionV1 merges all chunks of a complete session into one durable
// recording. The session must already hold every expected chunk; this never
// waits for stragglers.
func (h *HandlerV1) FinalizeSessionV1(w http.ResponseWriter, r *http.Request) {

	var req V1FinalizeSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding finalize request", "error", err)
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.SessionID == "" {
		h.writeError(w, http.StatusBadRequest, "session_id is required")
		return
	}

	recording, err := h.chunkService.FinalizeSession(r.Context(), req.SessionID, req.TotalChunks)

	var incomplete *domain.IncompleteSessionError
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		h.writeError(w, http.StatusBadRequest, "Session not found")
		return
	case errors.As(err, &incomplete):
		h.writeJSON(w, http.StatusBadRequest, V1IncompleteSessionResponse{
			Success:  false,
			Message:  "Missing chunks",
			Received: incomplete.Received,
			Missing:  incomplete.Missing,
		})
		return
	case errors.Is(err, domain.ErrTotalChunksMismatch):
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		h.logger.Error("error finalizing session", "error", err)
		h.writeError(w, http.StatusBadGateway, "finalize failed")
		return
	}

	h.writeJSON(w, http.StatusOK, V1FinalizeSessionResponse{
		Success:     true,
		RecordingID: recording.ID,
		File:        toRecordingFile(recording),
	})
}
