package storage

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockStorage is a mock implementation of ObjectStorage
type MockStorage struct {
	mock.Mock
}

// NewMockStorage creates a new MockStorage
func NewMockStorage() *MockStorage {
	return &MockStorage{}
}

func (m *MockStorage) Upload(ctx context.Context, localPath, objectKey, contentType string) (string, error) {
	args := m.Called(ctx, localPath, objectKey, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) Download(ctx context.Context, objectKey, localPath string) error {
	args := m.Called(ctx, objectKey, localPath)
	return args.Error(0)
}

func (m *MockStorage) Remove(ctx context.Context, objectKey string) error {
	args := m.Called(ctx, objectKey)
	return args.Error(0)
}
