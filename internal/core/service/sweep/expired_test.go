package sweep_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/VeeVeeOficial/photoclound/internal/adapters/eventbroker"
	"github.com/VeeVeeOficial/photoclound/internal/adapters/repository"
	"github.com/VeeVeeOficial/photoclound/internal/adapters/storage"
	"github.com/VeeVeeOficial/photoclound/internal/core/domain"
	"github.com/VeeVeeOficial/photoclound/internal/core/port"
	"github.com/VeeVeeOficial/photoclound/internal/core/service/sweep"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService(mockUow *repository.MockUnitOfWork, mockStorage *storage.MockStorage, mockEvents *eventbroker.MockPublisher) port.SweepService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return sweep.NewSweepService(mockUow, mockStorage, mockEvents, logger)
}

func expiredPhoto(albumID uuid.UUID, name string, deleteAt time.Time) domain.Photo {
	return domain.Photo{
		ID:       uuid.New(),
		FileName: name,
		FilePath: "photo-share-albums/" + albumID.String() + "/" + name,
		AlbumID:  albumID,
		DeleteAt: deleteAt,
	}
}

func TestSweepService_SweepExpired_NoExpiredPhotos(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockStorage := storage.NewMockStorage()
	mockEvents := eventbroker.NewMockPublisher()
	service := newTestService(mockUow, mockStorage, mockEvents)

	now := time.Now()
	mockUow.GetPhotoRepoMock().On("FindExpired", ctx, now).Return([]domain.Photo{}, nil)

	// Act
	err := service.SweepExpired(ctx, now)

	// Assert: nothing else runs, not even the reclaim
	require.NoError(t, err)
	mockStorage.AssertNotCalled(t, "DeleteObject", mock.Anything, mock.Anything)
	mockUow.GetAlbumRepoMock().AssertNotCalled(t, "FindAll", mock.Anything)
}

func TestSweepService_SweepExpired_DeletesPayloadAndMetadata(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockStorage := storage.NewMockStorage()
	mockEvents := eventbroker.NewMockPublisher()
	service := newTestService(mockUow, mockStorage, mockEvents)

	now := time.Now()
	albumID := uuid.New()
	photos := []domain.Photo{
		expiredPhoto(albumID, "a.jpg", now.Add(-time.Hour)),
		expiredPhoto(albumID, "b.jpg", now.Add(-2*time.Hour)),
	}

	mockPhotoRepo := mockUow.GetPhotoRepoMock()
	mockPhotoRepo.On("FindExpired", ctx, now).Return(photos, nil)
	for _, photo := range photos {
		mockStorage.On("DeleteObject", ctx, photo.FilePath).Return(nil)
		mockPhotoRepo.On("Delete", ctx, photo.ID).Return(nil)
	}
	mockEvents.On("PublishPhotoDeleted", ctx, mock.AnythingOfType("domain.PhotoDeleted")).Return(nil).Twice()

	// the album still has photos, so the reclaim keeps it
	mockUow.GetAlbumRepoMock().On("FindAll", ctx).Return([]domain.Album{{ID: albumID}}, nil)
	mockPhotoRepo.On("CountByAlbum", ctx, albumID).Return(1, nil)

	// Act
	err := service.SweepExpired(ctx, now)

	// Assert
	require.NoError(t, err)
	mockStorage.AssertExpectations(t)
	mockPhotoRepo.AssertExpectations(t)
	mockEvents.AssertExpectations(t)
	mockUow.GetAlbumRepoMock().AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestSweepService_SweepExpired_PayloadFailureDoesNotBlockMetadata(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockStorage := storage.NewMockStorage()
	mockEvents := eventbroker.NewMockPublisher()
	service := newTestService(mockUow, mockStorage, mockEvents)

	now := time.Now()
	albumID := uuid.New()
	photo := expiredPhoto(albumID, "a.jpg", now.Add(-time.Hour))

	mockPhotoRepo := mockUow.GetPhotoRepoMock()
	mockPhotoRepo.On("FindExpired", ctx, now).Return([]domain.Photo{photo}, nil)
	mockStorage.On("DeleteObject", ctx, photo.FilePath).Return(errors.New("connection refused"))
	mockPhotoRepo.On("Delete", ctx, photo.ID).Return(nil)
	mockEvents.On("PublishPhotoDeleted", ctx, mock.AnythingOfType("domain.PhotoDeleted")).Return(nil)

	mockUow.GetAlbumRepoMock().On("FindAll", ctx).Return([]domain.Album{}, nil)

	// Act
	err := service.SweepExpired(ctx, now)

	// Assert
	require.NoError(t, err)
	mockPhotoRepo.AssertExpectations(t)
	mockEvents.AssertExpectations(t)
}

func TestSweepService_SweepExpired_MetadataFailureSkipsEvent(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockStorage := storage.NewMockStorage()
	mockEvents := eventbroker.NewMockPublisher()
	service := newTestService(mockUow, mockStorage, mockEvents)

	now := time.Now()
	albumID := uuid.New()
	photo := expiredPhoto(albumID, "a.jpg", now.Add(-time.Hour))

	mockPhotoRepo := mockUow.GetPhotoRepoMock()
	mockPhotoRepo.On("FindExpired", ctx, now).Return([]domain.Photo{photo}, nil)
	mockStorage.On("DeleteObject", ctx, photo.FilePath).Return(nil)
	mockPhotoRepo.On("Delete", ctx, photo.ID).Return(errors.New("deadlock detected"))

	mockUow.GetAlbumRepoMock().On("FindAll", ctx).Return([]domain.Album{}, nil)

	// Act
	err := service.SweepExpired(ctx, now)

	// Assert: the record survives, so no deletion event is emitted
	require.NoError(t, err)
	mockEvents.AssertNotCalled(t, "PublishPhotoDeleted", mock.Anything, mock.Anything)
}

func TestSweepService_SweepExpired_FindError(t *testing.T) {
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockStorage := storage.NewMockStorage()
	service := newTestService(mockUow, mockStorage, eventbroker.NewMockPublisher())

	now := time.Now()
	mockUow.GetPhotoRepoMock().On("FindExpired", ctx, now).Return([]domain.Photo{}, errors.New("connection refused"))

	err := service.SweepExpired(ctx, now)

	require.Error(t, err)
	mockStorage.AssertNotCalled(t, "DeleteObject", mock.Anything, mock.Anything)
}

func TestSweepService_SweepExpired_ReclaimsEmptiedAlbum(t *testing.T) {
	// Arrange: the last photo of the album expires, then the album goes too
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockStorage := storage.NewMockStorage()
	mockEvents := eventbroker.NewMockPublisher()
	service := newTestService(mockUow, mockStorage, mockEvents)

	now := time.Now()
	albumID := uuid.New()
	photo := expiredPhoto(albumID, "last.jpg", now.Add(-time.Hour))

	mockPhotoRepo := mockUow.GetPhotoRepoMock()
	mockAlbumRepo := mockUow.GetAlbumRepoMock()

	mockPhotoRepo.On("FindExpired", ctx, now).Return([]domain.Photo{photo}, nil)
	mockStorage.On("DeleteObject", ctx, photo.FilePath).Return(nil)
	mockPhotoRepo.On("Delete", ctx, photo.ID).Return(nil)
	mockEvents.On("PublishPhotoDeleted", ctx, mock.AnythingOfType("domain.PhotoDeleted")).Return(nil)

	mockAlbumRepo.On("FindAll", ctx).Return([]domain.Album{{ID: albumID, Name: "Summer trip"}}, nil)
	mockPhotoRepo.On("CountByAlbum", ctx, albumID).Return(0, nil)
	mockAlbumRepo.On("Delete", ctx, albumID).Return(nil)

	// Act
	err := service.SweepExpired(ctx, now)

	// Assert
	require.NoError(t, err)
	mockAlbumRepo.AssertExpectations(t)
	mockPhotoRepo.AssertExpectations(t)
}

func TestSweepService_SweepExpired_EmittedEventCarriesPhotoFields(t *testing.T) {
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockStorage := storage.NewMockStorage()
	mockEvents := eventbroker.NewMockPublisher()
	service := newTestService(mockUow, mockStorage, mockEvents)

	now := time.Now()
	albumID := uuid.New()
	photo := expiredPhoto(albumID, "a.jpg", now.Add(-time.Hour))

	mockPhotoRepo := mockUow.GetPhotoRepoMock()
	mockPhotoRepo.On("FindExpired", ctx, now).Return([]domain.Photo{photo}, nil)
	mockStorage.On("DeleteObject", ctx, photo.FilePath).Return(nil)
	mockPhotoRepo.On("Delete", ctx, photo.ID).Return(nil)

	var published domain.PhotoDeleted
	mockEvents.On("PublishPhotoDeleted", ctx, mock.AnythingOfType("domain.PhotoDeleted")).
		Run(func(args mock.Arguments) {
			published = args.Get(1).(domain.PhotoDeleted)
		}).
		Return(nil)

	mockUow.GetAlbumRepoMock().On("FindAll", ctx).Return([]domain.Album{}, nil)

	err := service.SweepExpired(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, photo.ID, published.PhotoID)
	assert.Equal(t, photo.FilePath, published.FilePath)
	assert.Equal(t, albumID, published.AlbumID)
	assert.False(t, published.DeletedAt.IsZero())
}
