package album

import (
	"context"
	"fmt"
	"time"

	"github.com/VeeVeeOficial/photoclound/internal/core/domain"
	"github.com/google/uuid"
)

// CreateAlbum persists a new empty album. The share link is a deterministic
// function of the album id and the serving origin, stored at creation time.
func (a *albumService) CreateAlbum(ctx context.Context, name string) (*domain.Album, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: album name is required", domain.ErrInvalidArgument)
	}

	albumID := uuid.New()
	shareLink := domain.ShareLink(a.upload.ShareOrigin, albumID)

	if err := a.uow.AlbumRepo().Create(ctx, albumID, name, shareLink); err != nil {
		return nil, fmt.Errorf("could not create album: %w", err)
	}

	return &domain.Album{
		ID:        albumID,
		Name:      name,
		ShareLink: shareLink,
		CreatedAt: time.Now(),
	}, nil
}
