package remote

import (
	"context"

	"github.com/VeeVeeOficial/photoclound/internal/core/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUploader is a mock implementation of port.RemoteUploader
type MockUploader struct {
	mock.Mock
}

// NewMockUploader creates a new MockUploader
func NewMockUploader() *MockUploader {
	return &MockUploader{}
}

func (m *MockUploader) Upload(ctx context.Context, file domain.FileUpload, albumID uuid.UUID) (string, error) {
	args := m.Called(ctx, file, albumID)
	return args.String(0), args.Error(1)
}
