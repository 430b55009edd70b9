package album

import (
	"context"
	"fmt"
	"time"

	"github.com/VeeVeeOficial/photoclound/internal/core/domain"
	"github.com/google/uuid"
)

// Assemble persists one photo record per successful upload result and returns
// the in-memory album handed back to the caller. A persistence failure for an
// individual photo is logged and that photo is omitted; partial success is
// expected and never aborts the assembly.
func (a *albumService) Assemble(ctx context.Context, albumID uuid.UUID, name string, results []domain.UploadResult) (*domain.Album, error) {
	now := time.Now()

	var photos []domain.Photo
	for _, result := range results {
		if !result.OK || result.URL == "" {
			continue
		}

		photo := domain.Photo{
			ID:          uuid.New(),
			FileName:    result.File.FileName,
			DownloadURL: result.URL,
			FilePath:    fmt.Sprintf("%s/%s/%s", a.remote.Folder, albumID.String(), result.File.FileName),
			AlbumID:     albumID,
			UploadTime:  now,
			DeleteAt:    now.Add(a.upload.Retention),
			FileSize:    result.File.Size,
		}

		if err := a.uow.PhotoRepo().Create(ctx, photo); err != nil {
			a.logger.Error("failed to save photo metadata", "file", photo.FileName, "album_id", albumID, "error", err)
			continue
		}
		photos = append(photos, photo)
	}

	return &domain.Album{
		ID:        albumID,
		Name:      name,
		Photos:    photos,
		ShareLink: domain.ShareLink(a.upload.ShareOrigin, albumID),
		CreatedAt: now,
	}, nil
}
