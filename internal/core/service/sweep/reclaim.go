package sweep

import (
	"context"
)

// ReclaimEmptyAlbums deletes every album left with zero photos. A failure on
// one album is logged and never prevents processing of the rest. The per-album
// count is O(albums x photos); fine at the album counts this system sees, a
// materialized photo count per album would be the next step beyond that.
func (s *sweepService) ReclaimEmptyAlbums(ctx context.Context) error {
	albums, err := s.uow.AlbumRepo().FindAll(ctx)
	if err != nil {
		return err
	}

	reclaimed := 0
	for _, album := range albums {
		count, countErr := s.uow.PhotoRepo().CountByAlbum(ctx, album.ID)
		if countErr != nil {
			s.logger.Error("failed to count album photos", "album_id", album.ID, "error", countErr)
			continue
		}
		if count > 0 {
			continue
		}

		if delErr := s.uow.AlbumRepo().Delete(ctx, album.ID); delErr != nil {
			s.logger.Error("failed to reclaim empty album", "album_id", album.ID, "error", delErr)
			continue
		}
		reclaimed++
	}

	s.logger.Info("empty album reclaim completed", "reclaimed", reclaimed)
	return nil
}
