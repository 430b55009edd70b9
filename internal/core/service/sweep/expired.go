package sweep

import (
	"context"
	"sync"
	"time"

	"github.com/VeeVeeOficial/photoclound/internal/core/domain"
)

// SweepExpired finds every photo past its expiration at the given instant and
// deletes its binary payload and its metadata record concurrently. The sweep is
// best-effort: a failed payload delete is logged and never blocks or reverts
// the metadata delete, and no single photo's failure stops the pass. Empty
// albums are reclaimed inline at the end.
func (s *sweepService) SweepExpired(ctx context.Context, now time.Time) error {
	expired, err := s.uow.PhotoRepo().FindExpired(ctx, now)
	if err != nil {
		return err
	}

	if len(expired) == 0 {
		s.logger.Info("expiration sweep completed", "expired", 0)
		return nil
	}

	for _, photo := range expired {
		s.deleteExpiredPhoto(ctx, photo)
	}
	s.logger.Info("expiration sweep completed", "expired", len(expired))

	return s.ReclaimEmptyAlbums(ctx)
}

func (s *sweepService) deleteExpiredPhoto(ctx context.Context, photo domain.Photo) {
	var wg sync.WaitGroup
	var metadataErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := s.payloads.DeleteObject(ctx, photo.FilePath); err != nil {
			// stale storage objects are acceptable collateral
			s.logger.Error("failed to delete payload", "file_path", photo.FilePath, "error", err)
		}
	}()
	go func() {
		defer wg.Done()
		metadataErr = s.uow.PhotoRepo().Delete(ctx, photo.ID)
	}()
	wg.Wait()

	if metadataErr != nil {
		s.logger.Error("failed to delete photo metadata", "photo_id", photo.ID, "error", metadataErr)
		return
	}

	event := domain.PhotoDeleted{
		PhotoID:   photo.ID,
		FilePath:  photo.FilePath,
		AlbumID:   photo.AlbumID,
		DeletedAt: time.Now(),
	}
	if err := s.events.PublishPhotoDeleted(ctx, event); err != nil {
		s.logger.Error("failed to publish photo deleted event", "photo_id", photo.ID, "error", err)
	}
}
