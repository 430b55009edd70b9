package port

import (
	"context"

	"github.com/VeeVeeOficial/photoclound/internal/core/domain"
	"github.com/google/uuid"
)

// AlbumRepository is an interface to define album repository interactions
type AlbumRepository interface {
	Create(ctx context.Context, id uuid.UUID, name string, shareLink string) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Album, error)
	FindAll(ctx context.Context) ([]domain.Album, error)
	IncrementViews(ctx context.Context, id uuid.UUID) error
	// Delete removes the album row. Deleting an absent album is a no-op success.
	Delete(ctx context.Context, id uuid.UUID) error
}

// AlbumService assembles albums from upload results and owns the privileged
// force-delete path.
type AlbumService interface {
	CreateAlbum(ctx context.Context, name string) (*domain.Album, error)
	Assemble(ctx context.Context, albumID uuid.UUID, name string, results []domain.UploadResult) (*domain.Album, error)
	GetAlbum(ctx context.Context, id uuid.UUID) (*domain.Album, error)
	ListAlbums(ctx context.Context) ([]domain.Album, error)
	IncrementViews(ctx context.Context, id uuid.UUID) error
	ForceDeleteAlbum(ctx context.Context, albumID uuid.UUID) (int, error)
}
