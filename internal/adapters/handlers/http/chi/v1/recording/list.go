package recording

import (
	"net/http"
	"strconv"
)

// V1ListRecordingsResponse is the body returned when listing recordings
type V1ListRecordingsResponse struct {
	Success    bool          `json:"success"`
	Recordings []V1Recording `json:"recordings"`
	Count      int           `json:"count"`
}

// ListRecordingsV1 returns stored recordings, newest first. The optional
// userId query parameter restricts the listing to a single owner and the
// limit query parameter caps the number of rows returned.
func (h *HandlerV1) ListRecordingsV1(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	recordings, err := h.recordingService.List(r.Context(), ownerFilter(r), limit)
	if err != nil {
		h.logger.Error("error listing recordings", "error", err)
		h.writeError(w, http.StatusBadGateway, "Error listing recordings")
		return
	}

	views := make([]V1Recording, 0, len(recordings))
	for _, rec := range recordings {
		views = append(views, toV1Recording(rec))
	}

	h.writeJSON(w, http.StatusOK, V1ListRecordingsResponse{
		Success:    true,
		Recordings: views,
		Count:      len(views),
	})
}
