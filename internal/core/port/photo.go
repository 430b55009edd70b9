package port

import (
	"context"
	"time"

	"github.com/VeeVeeOficial/photoclound/internal/core/domain"
	"github.com/google/uuid"
)

// PhotoRepository is an interface to define photo repository interactions
type PhotoRepository interface {
	Create(ctx context.Context, photo domain.Photo) error
	// FindByAlbum returns the album's photos ordered most-recent-upload-first.
	FindByAlbum(ctx context.Context, albumID uuid.UUID) ([]domain.Photo, error)
	FindExpired(ctx context.Context, now time.Time) ([]domain.Photo, error)
	CountByAlbum(ctx context.Context, albumID uuid.UUID) (int, error)
	// Delete removes the photo row. Deleting an absent photo is a no-op success.
	Delete(ctx context.Context, id uuid.UUID) error
}
