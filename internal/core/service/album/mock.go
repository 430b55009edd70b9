package album

import (
	"context"

	"github.com/VeeVeeOficial/photoclound/internal/core/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAlbumService is a mock implementation of AlbumService
type MockAlbumService struct {
	mock.Mock
}

func (m *MockAlbumService) CreateAlbum(ctx context.Context, name string) (*domain.Album, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(*domain.Album), args.Error(1)
}

func (m *MockAlbumService) Assemble(ctx context.Context, albumID uuid.UUID, name string, results []domain.UploadResult) (*domain.Album, error) {
	args := m.Called(ctx, albumID, name, results)
	return args.Get(0).(*domain.Album), args.Error(1)
}

func (m *MockAlbumService) GetAlbum(ctx context.Context, id uuid.UUID) (*domain.Album, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Album), args.Error(1)
}

func (m *MockAlbumService) ListAlbums(ctx context.Context) ([]domain.Album, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Album), args.Error(1)
}

func (m *MockAlbumService) IncrementViews(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAlbumService) ForceDeleteAlbum(ctx context.Context, albumID uuid.UUID) (int, error) {
	args := m.Called(ctx, albumID)
	return args.Int(0), args.Error(1)
}
