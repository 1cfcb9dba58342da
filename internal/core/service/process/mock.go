package process

import (
	"context"
	"med-voice/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockProcessService is a mock implementation of ProcessService
type MockProcessService struct {
	mock.Mock
}

// NewMockProcessService creates a new MockProcessService
func NewMockProcessService() *MockProcessService {
	return &MockProcessService{}
}

func (m *MockProcessService) ProcessAudio(ctx context.Context, upload domain.StagedUpload, inputs domain.SignatureInputs, opts domain.AIOptions) (*domain.ProcessResult, error) {
	args := m.Called(ctx, upload, inputs, opts)
	return args.Get(0).(*domain.ProcessResult), args.Error(1)
}

func (m *MockProcessService) UploadAudio(ctx context.Context, upload domain.StagedUpload, skipAI bool) (*domain.ProcessResult, error) {
	args := m.Called(ctx, upload, skipAI)
	return args.Get(0).(*domain.ProcessResult), args.Error(1)
}
