package album

import (
	"context"
	"fmt"
	"time"

	"github.com/VeeVeeOficial/photoclound/internal/core/domain"
	"github.com/VeeVeeOficial/photoclound/internal/core/port"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
)

// ForceDeleteAlbum is the privileged administrative delete: every photo of the
// album loses its payload and metadata, then the album itself is removed, even
// when some per-photo deletions failed. Irreversible; there is no soft delete.
// Returns the number of photos whose records were removed.
func (a *albumService) ForceDeleteAlbum(ctx context.Context, albumID uuid.UUID) (int, error) {
	if albumID == uuid.Nil {
		return 0, fmt.Errorf("%w: album id is required", domain.ErrInvalidArgument)
	}

	photos, err := a.uow.PhotoRepo().FindByAlbum(ctx, albumID)
	if err != nil {
		return 0, fmt.Errorf("%w: could not list album photos: %v", domain.ErrInternal, err)
	}

	// payload deletes are best-effort and never block the metadata deletes
	var payloadErrs *multierror.Error
	for _, photo := range photos {
		if delErr := a.payloads.DeleteObject(ctx, photo.FilePath); delErr != nil {
			payloadErrs = multierror.Append(payloadErrs, delErr)
			a.logger.Error("failed to delete payload", "file_path", photo.FilePath, "error", delErr)
		}
	}

	txErr := a.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		for _, photo := range photos {
			if delErr := uow.PhotoRepo().Delete(ctx, photo.ID); delErr != nil {
				return delErr
			}
		}
		return uow.AlbumRepo().Delete(ctx, albumID)
	})
	if txErr != nil {
		return 0, fmt.Errorf("%w: force delete failed: %v", domain.ErrInternal, txErr)
	}

	now := time.Now()
	for _, photo := range photos {
		event := domain.PhotoDeleted{
			PhotoID:   photo.ID,
			FilePath:  photo.FilePath,
			AlbumID:   photo.AlbumID,
			DeletedAt: now,
		}
		if pubErr := a.events.PublishPhotoDeleted(ctx, event); pubErr != nil {
			a.logger.Error("failed to publish photo deleted event", "photo_id", photo.ID, "error", pubErr)
		}
	}

	a.logger.Info("album force deleted", "album_id", albumID, "deleted_photos", len(photos), "payload_failures", payloadErrs.ErrorOrNil() != nil)
	return len(photos), nil
}
