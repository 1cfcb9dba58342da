package recording

import "net/http"

// V1DeleteAllRecordingsResponse is the body returned when deleting recordings in bulk
type V1DeleteAllRecordingsResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Deleted int    `json:"deleted"`
}

// DeleteAllRecordingsV1 removes every recording, optionally scoped to the
// owner given by the userId query parameter.
func (h *HandlerV1) DeleteAllRecordingsV1(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.recordingService.DeleteAll(r.Context(), ownerFilter(r))
	if err != nil {
		h.logger.Error("error deleting recordings", "error", err)
		h.writeError(w, http.StatusBadGateway, "Error deleting recordings")
		return
	}

	h.writeJSON(w, http.StatusOK, V1DeleteAllRecordingsResponse{
		Success: true,
		Message: "Recordings deleted",
		Deleted: deleted,
	})
}
