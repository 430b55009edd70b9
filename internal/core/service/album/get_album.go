package album

import (
	"context"
	"fmt"

	"github.com/VeeVeeOficial/photoclound/internal/core/domain"
	"github.com/google/uuid"
)

// GetAlbum loads one album with its photos ordered most-recent-upload-first.
func (a *albumService) GetAlbum(ctx context.Context, id uuid.UUID) (*domain.Album, error) {
	found, err := a.uow.AlbumRepo().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	photos, err := a.uow.PhotoRepo().FindByAlbum(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not load album photos: %w", err)
	}
	found.Photos = photos

	return found, nil
}

// ListAlbums returns every album, newest first, each with its photos attached.
func (a *albumService) ListAlbums(ctx context.Context) ([]domain.Album, error) {
	albums, err := a.uow.AlbumRepo().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range albums {
		photos, err := a.uow.PhotoRepo().FindByAlbum(ctx, albums[i].ID)
		if err != nil {
			return nil, fmt.Errorf("could not load album photos: %w", err)
		}
		albums[i].Photos = photos
	}

	return albums, nil
}

// IncrementViews bumps the view counter. The increment is applied by the store
// in a single update, not read-modify-write in memory.
func (a *albumService) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return a.uow.AlbumRepo().IncrementViews(ctx, id)
}
