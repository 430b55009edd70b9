package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/VeeVeeOficial/photoclound/internal/core/domain"
	"github.com/VeeVeeOficial/photoclound/internal/core/port"
	"github.com/google/uuid"
)

type sqlPhotoRepository struct {
	db SQLQuerier
}

// NewSqlPhotoRepository creates sqlPhotoRepository that implements port.PhotoRepository
func NewSqlPhotoRepository(db SQLQuerier) port.PhotoRepository {
	return &sqlPhotoRepository{
		db: db,
	}
}

// Create creates a new photo entry
func (s *sqlPhotoRepository) Create(ctx context.Context, photo domain.Photo) error {
	query := `INSERT INTO photos (id, file_name, download_url, file_path, album_id, upload_time, delete_at, file_size)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := s.db.ExecContext(ctx, query,
		photo.ID,
		photo.FileName,
		photo.DownloadURL,
		photo.FilePath,
		photo.AlbumID,
		photo.UploadTime,
		photo.DeleteAt,
		photo.FileSize,
	)
	if err != nil {
		return fmt.Errorf("error inserting photo: %w", err)
	}
	return nil
}

// FindByAlbum returns the album's photos, most recent upload first
func (s *sqlPhotoRepository) FindByAlbum(ctx context.Context, albumID uuid.UUID) ([]domain.Photo, error) {
	query := `SELECT id, file_name, download_url, file_path, album_id, upload_time, delete_at, file_size
              FROM photos
              WHERE album_id = $1
              ORDER BY upload_time DESC`

	return s.queryPhotos(ctx, query, albumID)
}

// FindExpired finds photos past their expiration at the given instant
func (s *sqlPhotoRepository) FindExpired(ctx context.Context, now time.Time) ([]domain.Photo, error) {
	query := `SELECT id, file_name, download_url, file_path, album_id, upload_time, delete_at, file_size
              FROM photos
              WHERE delete_at <= $1`

	return s.queryPhotos(ctx, query, now)
}

// CountByAlbum counts photos referencing the album
func (s *sqlPhotoRepository) CountByAlbum(ctx context.Context, albumID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM photos WHERE album_id = $1`

	var count int
	if err := s.db.QueryRowContext(ctx, query, albumID).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting album photos: %w", err)
	}
	return count, nil
}

// Delete removes the photo row. Zero rows affected is a no-op success.
func (s *sqlPhotoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM photos WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting photo: %w", err)
	}
	return nil
}

func (s *sqlPhotoRepository) queryPhotos(ctx context.Context, query string, args ...any) ([]domain.Photo, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying photos: %w", err)
	}
	defer rows.Close()

	var photos []domain.Photo
	for rows.Next() {
		var p dbPhoto
		err := rows.Scan(
			&p.ID,
			&p.FileName,
			&p.DownloadURL,
			&p.FilePath,
			&p.AlbumID,
			&p.UploadTime,
			&p.DeleteAt,
			&p.FileSize,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning photo: %w", err)
		}
		photos = append(photos, *p.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating photos: %w", err)
	}

	return photos, nil
}

// dbPhoto represents a photo row
type dbPhoto struct {
	ID          uuid.UUID `db:"id"`
	FileName    string    `db:"file_name"`
	DownloadURL string    `db:"download_url"`
	FilePath    string    `db:"file_path"`
	AlbumID     uuid.UUID `db:"album_id"`
	UploadTime  time.Time `db:"upload_time"`
	DeleteAt    time.Time `db:"delete_at"`
	FileSize    int64     `db:"file_size"`
}

// ToDomain converts to domain.Photo
func (p *dbPhoto) ToDomain() *domain.Photo {
	return &domain.Photo{
		ID:          p.ID,
		FileName:    p.FileName,
		DownloadURL: p.DownloadURL,
		FilePath:    p.FilePath,
		AlbumID:     p.AlbumID,
		UploadTime:  p.UploadTime,
		DeleteAt:    p.DeleteAt,
		FileSize:    p.FileSize,
	}
}
