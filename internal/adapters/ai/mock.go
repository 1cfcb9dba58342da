package ai

import (
	"context"
	"med-voice/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockTranscriber is a mock implementation of Transcriber
type MockTranscriber struct {
	mock.Mock
}

// NewMockTranscriber creates a new MockTranscriber
func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{}
}

func (m *MockTranscriber) Transcribe(ctx context.Context, audioPath, mimeType string, opts domain.AIOptions) (string, error) {
	args := m.Called(ctx, audioPath, mimeType, opts)
	return args.String(0), args.Error(1)
}

// MockRecommender is a mock implementation of Recommender
type MockRecommender struct {
	mock.Mock
}

// NewMockRecommender creates a new MockRecommender
func NewMockRecommender() *MockRecommender {
	return &MockRecommender{}
}

func (m *MockRecommender) Recommend(ctx context.Context, transcript string, opts domain.AIOptions) (string, error) {
	args := m.Called(ctx, transcript, opts)
	return args.String(0), args.Error(1)
}
