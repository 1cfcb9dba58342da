package chunked

import (
	"context"
	"io"
	"med-voice/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockChunkService is a mock implementation of ChunkService
type MockChunkService struct {
	mock.Mock
}

// NewMockChunkService creates a new MockChunkService
func NewMockChunkService() *MockChunkService {
	return &MockChunkService{}
}

func (m *MockChunkService) IngestChunk(ctx context.Context, upload domain.ChunkUpload, payload io.Reader) (*domain.IngestAck, error) {
	args := m.Called(ctx, upload, payload)
	return args.Get(0).(*domain.IngestAck), args.Error(1)
}

func (m *MockChunkService) FinalizeSession(ctx context.Context, sessionID string, expectedTotalChunks int) (*domain.Recording, error) {
	args := m.Called(ctx, sessionID, expectedTotalChunks)
	return args.Get(0).(*domain.Recording), args.Error(1)
}
