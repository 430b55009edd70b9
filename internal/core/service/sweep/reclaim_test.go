package sweep_test

import (
	"context"
	"errors"
	"testing"

	"github.com/VeeVeeOficial/photoclound/internal/adapters/eventbroker"
	"github.com/VeeVeeOficial/photoclound/internal/adapters/repository"
	"github.com/VeeVeeOficial/photoclound/internal/adapters/storage"
	"github.com/VeeVeeOficial/photoclound/internal/core/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSweepService_ReclaimEmptyAlbums_DeletesOnlyEmptyOnes(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	service := newTestService(mockUow, storage.NewMockStorage(), eventbroker.NewMockPublisher())

	empty := domain.Album{ID: uuid.New(), Name: "emptied"}
	occupied := domain.Album{ID: uuid.New(), Name: "still full"}

	mockAlbumRepo := mockUow.GetAlbumRepoMock()
	mockPhotoRepo := mockUow.GetPhotoRepoMock()

	mockAlbumRepo.On("FindAll", ctx).Return([]domain.Album{empty, occupied}, nil)
	mockPhotoRepo.On("CountByAlbum", ctx, empty.ID).Return(0, nil)
	mockPhotoRepo.On("CountByAlbum", ctx, occupied.ID).Return(3, nil)
	mockAlbumRepo.On("Delete", ctx, empty.ID).Return(nil)

	// Act
	err := service.ReclaimEmptyAlbums(ctx)

	// Assert
	require.NoError(t, err)
	mockAlbumRepo.AssertExpectations(t)
	mockAlbumRepo.AssertNumberOfCalls(t, "Delete", 1)
}

func TestSweepService_ReclaimEmptyAlbums_CountErrorSkipsAlbum(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	service := newTestService(mockUow, storage.NewMockStorage(), eventbroker.NewMockPublisher())

	broken := domain.Album{ID: uuid.New()}
	empty := domain.Album{ID: uuid.New()}

	mockAlbumRepo := mockUow.GetAlbumRepoMock()
	mockPhotoRepo := mockUow.GetPhotoRepoMock()

	mockAlbumRepo.On("FindAll", ctx).Return([]domain.Album{broken, empty}, nil)
	mockPhotoRepo.On("CountByAlbum", ctx, broken.ID).Return(0, errors.New("connection refused"))
	mockPhotoRepo.On("CountByAlbum", ctx, empty.ID).Return(0, nil)
	mockAlbumRepo.On("Delete", ctx, empty.ID).Return(nil)

	// Act
	err := service.ReclaimEmptyAlbums(ctx)

	// Assert: the pass keeps going past the broken album
	require.NoError(t, err)
	mockAlbumRepo.AssertNumberOfCalls(t, "Delete", 1)
}

func TestSweepService_ReclaimEmptyAlbums_DeleteErrorContinues(t *testing.T) {
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	service := newTestService(mockUow, storage.NewMockStorage(), eventbroker.NewMockPublisher())

	first := domain.Album{ID: uuid.New()}
	second := domain.Album{ID: uuid.New()}

	mockAlbumRepo := mockUow.GetAlbumRepoMock()
	mockPhotoRepo := mockUow.GetPhotoRepoMock()

	mockAlbumRepo.On("FindAll", ctx).Return([]domain.Album{first, second}, nil)
	mockPhotoRepo.On("CountByAlbum", ctx, first.ID).Return(0, nil)
	mockPhotoRepo.On("CountByAlbum", ctx, second.ID).Return(0, nil)
	mockAlbumRepo.On("Delete", ctx, first.ID).Return(errors.New("deadlock detected"))
	mockAlbumRepo.On("Delete", ctx, second.ID).Return(nil)

	err := service.ReclaimEmptyAlbums(ctx)

	require.NoError(t, err)
	mockAlbumRepo.AssertExpectations(t)
}

func TestSweepService_ReclaimEmptyAlbums_FindAllError(t *testing.T) {
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	service := newTestService(mockUow, storage.NewMockStorage(), eventbroker.NewMockPublisher())

	mockUow.GetAlbumRepoMock().On("FindAll", ctx).Return([]domain.Album{}, errors.New("connection refused"))

	err := service.ReclaimEmptyAlbums(ctx)

	require.Error(t, err)
	mockUow.GetPhotoRepoMock().AssertNotCalled(t, "CountByAlbum", mock.Anything, mock.Anything)
}
