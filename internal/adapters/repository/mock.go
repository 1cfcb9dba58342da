package repository

import (
	"context"
	"med-voice/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRecordingRepository is a mock implementation of RecordingRepository
type MockRecordingRepository struct {
	mock.Mock
}

// NewMockRecordingRepository creates a new MockRecordingRepository
func NewMockRecordingRepository() *MockRecordingRepository {
	return &MockRecordingRepository{}
}

func (m *MockRecordingRepository) Create(ctx context.Context, recording domain.Recording) error {
	args := m.Called(ctx, recording)
	return args.Error(0)
}

func (m *MockRecordingRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Recording, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Recording), args.Error(1)
}

func (m *MockRecordingRepository) List(ctx context.Context, ownerID *string, limit int) ([]domain.Recording, error) {
	args := m.Called(ctx, ownerID, limit)
	return args.Get(0).([]domain.Recording), args.Error(1)
}

func (m *MockRecordingRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRecordingRepository) DeleteAll(ctx context.Context, ownerID *string) (int, error) {
	args := m.Called(ctx, ownerID)
	return args.Int(0), args.Error(1)
}

func (m *MockRecordingRepository) UpdateAnalysis(ctx context.Context, id uuid.UUID, transcript, recommendations string) error {
	args := m.Called(ctx, id, transcript, recommendations)
	return args.Error(0)
}
