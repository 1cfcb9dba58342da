package upload

import (
	"errors"
	"med-voice/internal/core/domain"
	"net/http"
	"os"
	"strconv"
)

// V1IngestChunkResponse acknowledges one ingested chunk
type V1IngestChunkResponse struct {
	Success     bool   `json:"success"`
	SessionID   string `json:"session_id"`
	ChunkNumber int    `json:"chunk_number"`
	TotalChunks int    `json:"total_chunks"`
	Remaining   int    `json:"remaining"`
}

// IngestChunkV1 accepts one chunk of a chunked upload: the audio part plus the
// sessionId, chunkNumber, totalChunks, filename and mimeType fields.
func (h *HandlerV1) IngestChunkV1(w http.ResponseWriter, r *http.Request) {

	form, err := readAudioForm(r, h.stagingDir)
	switch {
	case errors.Is(err, domain.ErrMissingAudioPart):
		h.writeError(w, http.StatusBadRequest, "No chunk uploaded")
		return
	case err != nil:
		h.logger.Error("error reading chunk form", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Upload failed")
		return
	}
	defer form.Remove()

	sessionID := form.Fields["sessionId"]
	chunkNumber, chunkErr := strconv.Atoi(form.Fields["chunkNumber"])
	totalChunks, totalErr := strconv.Atoi(form.Fields["totalChunks"])
	if sessionID == "" || chunkErr != nil || totalErr != nil {
		h.writeError(w, http.StatusBadRequest, "sessionId, chunkNumber and totalChunks are required")
		return
	}

	filename := form.Fields["filename"]
	if filename == "" {
		filename = form.Filename
	}
	mimeType := form.Fields["mimeType"]
	if mimeType == "" {
		mimeType = form.MimeType
	}

	payload, err := os.Open(form.TempPath)
	if err != nil {
		h.logger.Error("error opening staged chunk", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Upload failed")
		return
	}
	defer payload.Close()

	ack, err := h.chunkService.IngestChunk(r.Context(), domain.ChunkUpload{
		SessionID:   sessionID,
		ChunkNumber: chunkNumber,
		TotalChunks: totalChunks,
		Filename:    filename,
		MimeType:    mimeType,
	}, payload)
	switch {
	case errors.Is(err, domain.ErrInvalidChunkNumber), errors.Is(err, domain.ErrTotalChunksMismatch):
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		h.logger.Error("error ingesting chunk", "error", err)
		h.writeError(w, http.StatusInternalServerError, "chunk ingest failed")
		return
	}

	h.writeJSON(w, http.StatusOK, V1IngestChunkResponse{
		Success:     true,
		SessionID:   ack.SessionID,
		ChunkNumber: ack.ChunkNumber,
		TotalChunks: ack.TotalChunks,
		Remaining:   ack.Remaining,
	})
}
