package repository

import (
	"context"
	"time"

	"github.com/VeeVeeOficial/photoclound/internal/core/domain"
	"github.com/VeeVeeOficial/photoclound/internal/core/port"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockAlbumRepository struct {
	mock.Mock
}

func NewMockAlbumRepository() *MockAlbumRepository {
	return &MockAlbumRepository{}
}

func (m *MockAlbumRepository) Create(ctx context.Context, id uuid.UUID, name string, shareLink string) error {
	args := m.Called(ctx, id, name, shareLink)
	return args.Error(0)
}

func (m *MockAlbumRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Album, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Album), args.Error(1)
}

func (m *MockAlbumRepository) FindAll(ctx context.Context) ([]domain.Album, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Album), args.Error(1)
}

func (m *MockAlbumRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAlbumRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPhotoRepository struct {
	mock.Mock
}

func NewMockPhotoRepository() *MockPhotoRepository {
	return &MockPhotoRepository{}
}

func (m *MockPhotoRepository) Create(ctx context.Context, photo domain.Photo) error {
	args := m.Called(ctx, photo)
	return args.Error(0)
}

func (m *MockPhotoRepository) FindByAlbum(ctx context.Context, albumID uuid.UUID) ([]domain.Photo, error) {
	args := m.Called(ctx, albumID)
	return args.Get(0).([]domain.Photo), args.Error(1)
}

func (m *MockPhotoRepository) FindExpired(ctx context.Context, now time.Time) ([]domain.Photo, error) {
	args := m.Called(ctx, now)
	return args.Get(0).([]domain.Photo), args.Error(1)
}

func (m *MockPhotoRepository) CountByAlbum(ctx context.Context, albumID uuid.UUID) (int, error) {
	args := m.Called(ctx, albumID)
	return args.Int(0), args.Error(1)
}

func (m *MockPhotoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUnitOfWork struct {
	mock.Mock
	albumRepo *MockAlbumRepository
	photoRepo *MockPhotoRepository
}

func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		albumRepo: &MockAlbumRepository{},
		photoRepo: &MockPhotoRepository{},
	}
}

func (m *MockUnitOfWork) AlbumRepo() port.AlbumRepository {
	return m.albumRepo
}

func (m *MockUnitOfWork) PhotoRepo() port.PhotoRepository {
	return m.photoRepo
}

func (m *MockUnitOfWork) Execute(ctx context.Context, fn func(uow port.UnitOfWork) error) error {
	args := m.Called(ctx, fn)

	if err := fn(m); err != nil {
		return err
	}

	return args.Error(0)
}

func (m *MockUnitOfWork) GetAlbumRepoMock() *MockAlbumRepository {
	return m.albumRepo
}

func (m *MockUnitOfWork) GetPhotoRepoMock() *MockPhotoRepository {
	return m.photoRepo
}
