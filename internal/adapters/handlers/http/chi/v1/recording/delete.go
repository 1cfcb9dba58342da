package recording

import (
	"errors"
	"med-voice/internal/core/domain"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// V1DeleteRecordingResponse is the body returned when deleting one recording
type V1DeleteRecordingResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DeleteRecordingV1 removes a recording and its stored object
func (h *HandlerV1) DeleteRecordingV1(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "recordingID"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid recording id")
		return
	}

	if err := h.recordingService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrRecordingNotFound) {
			h.writeError(w, http.StatusNotFound, "Recording not found")
			return
		}
		h.logger.Error("error deleting recording", "recordingID", id, "error", err)
		h.writeError(w, http.StatusBadGateway, "Error deleting recording")
		return
	}

	h.writeJSON(w, http.StatusOK, V1DeleteRecordingResponse{
		Success: true,
		Message: "Recording deleted",
	})
}
