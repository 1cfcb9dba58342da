package recording_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"med-voice/internal/adapters/handlers/http/chi"
	recording2 "med-voice/internal/adapters/handlers/http/chi/v1/recording"
	"med-voice/internal/adapters/handlers/http/chi/v1/upload"
	"med-voice/internal/core/domain"
	"med-voice/internal/core/service/chunked"
	"med-voice/internal/core/service/process"
	recordingservice "med-voice/internal/core/service/recording"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRecordingTestServer(t *testing.T) (http.Handler, *recordingservice.MockRecordingService) {
	t.Helper()
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mockRecordingService := recordingservice.NewMockRecordingService()

	uploadHandler := upload.NewUploadHandlerV1(chunked.NewMockChunkService(), process.NewMockProcessService(), t.TempDir(), discardLogger)
	recordingHandler := recording2.NewRecordingHandlerV1(mockRecordingService, discardLogger)

	return chi.NewRouter(discardLogger, uploadHandler, recordingHandler, 50<<20, "test"), mockRecordingService
}

func TestListRecordingsV1_Success(t *testing.T) {
	// Arrange
	handler, mockService := newRecordingTestServer(t)
	now := time.Now()
	transcript := "transcript"
	expected := []domain.Recording{
		{ID: uuid.New(), Filename: "a.webm", UploadedAt: now, Transcript: &transcript},
		{ID: uuid.New(), Filename: "b.webm", UploadedAt: now.Add(-time.Minute)},
	}
	mockService.On("List", mock.Anything, (*string)(nil), 0).Return(expected, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/recordings", nil)

	// Act
	handler.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	var response recording2.V1ListRecordingsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.True(t, response.Success)
	assert.Equal(t, 2, response.Count)
	require.Len(t, response.Recordings, 2)
	assert.Equal(t, "a.webm", response.Recordings[0].Filename)
	require.NotNil(t, response.Recordings[0].Transcript)
	assert.Equal(t, "transcript", *response.Recordings[0].Transcript)
	mockService.AssertExpectations(t)
}

func TestListRecordingsV1_OwnerAndLimit(t *testing.T) {
	// Arrange
	handler, mockService := newRecordingTestServer(t)
	owner := "user-1"
	mockService.On("List", mock.Anything, &owner, 5).Return([]domain.Recording{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/recordings?userId=user-1&limit=5", nil)

	// Act
	handler.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestListRecordingsV1_InvalidLimit(t *testing.T) {
	// Arrange
	handler, mockService := newRecordingTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/recordings?limit=abc", nil)

	// Act
	handler.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetRecordingV1_Success(t *testing.T) {
	// Arrange
	handler, mockService := newRecordingTestServer(t)
	rec := &domain.Recording{ID: uuid.New(), Filename: "a.webm", StorageURL: "http://minio/recordings/audio/a.webm"}
	mockService.On("Get", mock.Anything, rec.ID).Return(rec, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/recordings/"+rec.ID.String(), nil)

	// Act
	handler.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	var response recording2.V1GetRecordingResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.True(t, response.Success)
	assert.Equal(t, rec.ID, response.Recording.ID)
	assert.Equal(t, rec.StorageURL, response.Recording.StorageURL)
}

func TestGetRecordingV1_NotFound(t *testing.T) {
	// Arrange
	handler, mockService := newRecordingTestServer(t)
	id := uuid.New()
	mockService.On("Get", mock.Anything, id).Return((*domain.Recording)(nil), domain.ErrRecordingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/recordings/"+id.String(), nil)

	// Act
	handler.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRecordingV1_InvalidID(t *testing.T) {
	// Arrange
	handler, mockService := newRecordingTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/recordings/not-a-uuid", nil)

	// Act
	handler.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestDeleteRecordingV1_Success(t *testing.T) {
	// Arrange
	handler, mockService := newRecordingTestServer(t)
	id := uuid.New()
	mockService.On("Delete", mock.Anything, id).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/recordings/"+id.String(), nil)

	// Act
	handler.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	var response recording2.V1DeleteRecordingResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.True(t, response.Success)
	mockService.AssertExpectations(t)
}

func TestDeleteRecordingV1_NotFound(t *testing.T) {
	// Arrange
	handler, mockService := newRecordingTestServer(t)
	id := uuid.New()
	mockService.On("Delete", mock.Anything, id).Return(domain.ErrRecordingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/recordings/"+id.String(), nil)

	// Act
	handler.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteAllRecordingsV1_Success(t *testing.T) {
	// Arrange
	handler, mockService := newRecordingTestServer(t)
	owner := "user-1"
	mockService.On("DeleteAll", mock.Anything, &owner).Return(3, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/recordings?userId=user-1", nil)

	// Act
	handler.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	var response recording2.V1DeleteAllRecordingsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.True(t, response.Success)
	assert.Equal(t, 3, response.Deleted)
	mockService.AssertExpectations(t)
}

func TestDeleteAllRecordingsV1_Failure(t *testing.T) {
	// Arrange
	handler, mockService := newRecordingTestServer(t)
	mockService.On("DeleteAll", mock.Anything, (*string)(nil)).Return(0, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/recordings", nil)

	// Act
	handler.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusBadGateway, w.Code)
}
