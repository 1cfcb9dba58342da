package recording

import (
	"context"
	"med-voice/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRecordingService is a mock implementation of RecordingService
type MockRecordingService struct {
	mock.Mock
}

// NewMockRecordingService creates a new MockRecordingService
func NewMockRecordingService() *MockRecordingService {
	return &MockRecordingService{}
}

func (m *MockRecordingService) List(ctx context.Context, ownerID *string, limit int) ([]domain.Recording, error) {
	args := m.Called(ctx, ownerID, limit)
	return args.Get(0).([]domain.Recording), args.Error(1)
}

func (m *MockRecordingService) Get(ctx context.Context, id uuid.UUID) (*domain.Recording, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Recording), args.Error(1)
}

func (m *MockRecordingService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRecordingService) DeleteAll(ctx context.Context, ownerID *string) (int, error) {
	args := m.Called(ctx, ownerID)
	return args.Int(0), args.Error(1)
}
