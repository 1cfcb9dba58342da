package recording

import (
	"errors"
	"med-voice/internal/core/domain"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// V1GetRecordingResponse is the body returned when fetching one recording
type V1GetRecordingResponse struct {
	Success   bool        `json:"success"`
	Recording V1Recording `json:"recording"`
}

// GetRecordingV1 returns a single recording by id
func (h *HandlerV1) GetRecordingV1(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "recordingID"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid recording id")
		return
	}

	rec, err := h.recordingService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordingNotFound) {
			h.writeError(w, http.StatusNotFound, "Recording not found")
			return
		}
		h.logger.Error("error fetching recording", "recordingID", id, "error", err)
		h.writeError(w, http.StatusBadGateway, "Error fetching recording")
		return
	}

	h.writeJSON(w, http.StatusOK, V1GetRecordingResponse{
		Success:   true,
		Recording: toV1Recording(*rec),
	})
}
