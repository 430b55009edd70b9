package eventbroker

import (
	"context"

	"github.com/VeeVeeOficial/photoclound/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockPublisher is a mock implementation of port.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

func (m *MockPublisher) PublishPhotoDeleted(ctx context.Context, event domain.PhotoDeleted) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
