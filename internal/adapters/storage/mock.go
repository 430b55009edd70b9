package storage

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockStorage is a mock implementation of port.PayloadStorage
type MockStorage struct {
	mock.Mock
}

func NewMockStorage() *MockStorage {
	return &MockStorage{}
}

func (m *MockStorage) DeleteObject(ctx context.Context, filePath string) error {
	args := m.Called(ctx, filePath)
	return args.Error(0)
}
