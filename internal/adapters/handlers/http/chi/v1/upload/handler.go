package upload

import (
	"encoding/json"
	"log/slog"
	"med-voice/internal/core/port"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 audio upload routes
type HandlerV1 struct {
	chunkService   port.ChunkService
	processService port.ProcessService
	stagingDir     string
	logger         *slog.Logger
}

// NewUploadHandlerV1 creates HandlerV1
func NewUploadHandlerV1(chunkService port.ChunkService, processService port.ProcessService, stagingDir string, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		chunkService:   chunkService,
		processService: processService,
		stagingDir:     stagingDir,
		logger:         logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/upload", h.UploadAudioV1)
	router.Post("/process", h.ProcessAudioV1)
	router.Post("/chunk", h.IngestChunkV1)
	router.Post("/chunk/finalize", h.FinalizeSessionV1)

	return router
}

func (h *HandlerV1) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}

// V1ErrorResponse is the error body shared by the audio routes
type V1ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *HandlerV1) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, V1ErrorResponse{Success: false, Message: message})
}
