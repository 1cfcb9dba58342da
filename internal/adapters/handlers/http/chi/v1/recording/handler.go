package recording

import (
	"encoding/json"
	"log/slog"
	"med-voice/internal/core/domain"
	"med-voice/internal/core/port"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// HandlerV1 is the handler for v1 recordings routes
type HandlerV1 struct {
	recordingService port.RecordingService
	logger           *slog.Logger
}

// NewRecordingHandlerV1 creates HandlerV1
func NewRecordingHandlerV1(service port.RecordingService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		recordingService: service,
		logger:           logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", h.ListRecordingsV1)
	router.Delete("/", h.DeleteAllRecordingsV1)
	router.Get("/{recordingID}", h.GetRecordingV1)
	router.Delete("/{recordingID}", h.DeleteRecordingV1)

	return router
}

// V1Recording is the recording view returned by the recordings routes
type V1Recording struct {
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

func toV1Recording(rec domain.Recording) V1Recording {
	return V1Recording{
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

// V1ErrorResponse is the error body shared by the recordings routes
type V1ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *HandlerV1) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}

func (h *HandlerV1) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, V1ErrorResponse{Success: false, Message: message})
}

func ownerFilter(r *http.Request) *string {
	if owner := r.URL.Query().Get("userId"); owner != "" {
		return &owner
	}
	return nil
}
