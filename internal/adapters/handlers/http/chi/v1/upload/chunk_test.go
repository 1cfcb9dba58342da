package upload_test

import (
	"encoding/json"
	"io"
	"med-voice/internal/adapters/handlers/http/chi/v1/upload"
	"med-voice/internal/core/domain"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestIngestChunkV1_Success(t *testing.T) {
	// Arrange
	server := newUploadTestServer(t)

	server.chunkService.On("IngestChunk", mock.Anything, domain.ChunkUpload{
		SessionID:   "session-1",
		ChunkNumber: 2,
		TotalChunks: 3,
		Filename:    "visit.webm",
		MimeType:    "audio/webm",
	}, mock.Anything).
		Run(func(args mock.Arguments) {
			payload, readErr := io.ReadAll(args.Get(2).(io.Reader))
			require.NoError(t, readErr)
			assert.Equal(t, "chunk-bytes", string(payload))
		}).
		Return(&domain.IngestAck{
			SessionID:   "session-1",
			ChunkNumber: 2,
			TotalChunks: 3,
			Remaining:   1,
		}, nil)

	w := httptest.NewRecorder()
	req := audioRequest(t, "/api/v1/audio/chunk", map[string]string{
		"sessionId":   "session-1",
		"chunkNumber": "2",
		"totalChunks": "3",
		"filename":    "visit.webm",
		"mimeType":    "audio/webm",
	}, "blob", "application/octet-stream", "chunk-bytes")

	// Act
	server.handler.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	var response upload.V1IngestChunkResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.True(t, response.Success)
	assert.Equal(t, "session-1", response.SessionID)
	assert.Equal(t, 1, response.Remaining)
	server.chunkService.AssertExpectations(t)
}

func TestIngestChunkV1_FallsBackToPartMetadata(t *testing.T) {
	// Arrange: no filename/mimeType fields, so the audio part's own
	// filename and content type apply
	server := newUploadTestServer(t)

	server.chunkService.On("IngestChunk", mock.Anything, domain.ChunkUpload{
		SessionID:   "session-1",
		ChunkNumber: 1,
		TotalChunks: 1,
		Filename:    "visit.webm",
		MimeType:    "audio/webm",
	}, mock.Anything).
		Return(&domain.IngestAck{SessionID: "session-1", ChunkNumber: 1, TotalChunks: 1}, nil)

	w := httptest.NewRecorder()
	req := audioRequest(t, "/api/v1/audio/chunk", map[string]string{
		"sessionId":   "session-1",
		"chunkNumber": "1",
		"totalChunks": "1",
	}, "visit.webm", "audio/webm", "chunk-bytes")

	// Act
	server.handler.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	server.chunkService.AssertExpectations(t)
}

func TestIngestChunkV1_MissingFields(t *testing.T) {
	// Arrange
	server := newUploadTestServer(t)

	tests := []struct {
		name   string
		fields map[string]string
	}{
		{"no session id", map[string]string{"chunkNumber": "1", "totalChunks": "2"}},
		{"no chunk number", map[string]string{"sessionId": "session-1", "totalChunks": "2"}},
		{"non-numeric chunk number", map[string]string{"sessionId": "session-1", "chunkNumber": "one", "totalChunks": "2"}},
		{"no total chunks", map[string]string{"sessionId": "session-1", "chunkNumber": "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := audioRequest(t, "/api/v1/audio/chunk", tt.fields, "blob", "application/octet-stream", "chunk-bytes")

			// Act
			server.handler.ServeHTTP(w, req)

			// Assert
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
	server.chunkService.AssertNotCalled(t, "IngestChunk", mock.Anything, mock.Anything, mock.Anything)
}

func TestIngestChunkV1_MissingChunkPayload(t *testing.T) {
	// Arrange
	server := newUploadTestServer(t)

	w := httptest.NewRecorder()
	req := audioRequest(t, "/api/v1/audio/chunk", map[string]string{
		"sessionId":   "session-1",
		"chunkNumber": "1",
		"totalChunks": "2",
	}, "", "", "")

	// Act
	server.handler.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response upload.V1ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "No chunk uploaded", response.Message)
}

func TestIngestChunkV1_InvalidChunkNumber(t *testing.T) {
	// Arrange
	server := newUploadTestServer(t)

	server.chunkService.On("IngestChunk", mock.Anything, mock.Anything, mock.Anything).
		Return((*domain.IngestAck)(nil), domain.ErrInvalidChunkNumber)

	w := httptest.NewRecorder()
	req := audioRequest(t, "/api/v1/audio/chunk", map[string]string{
		"sessionId":   "session-1",
		"chunkNumber": "9",
		"totalChunks": "3",
	}, "blob", "application/octet-stream", "chunk-bytes")

	// Act
	server.handler.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
