package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/VeeVeeOficial/photoclound/internal/core/domain"
	"github.com/VeeVeeOficial/photoclound/internal/core/port"
	"github.com/google/uuid"
)

type sqlAlbumRepository struct {
	db SQLQuerier
}

// NewSqlAlbumRepository creates sqlAlbumRepository that implements port.AlbumRepository
func NewSqlAlbumRepository(db SQLQuerier) port.AlbumRepository {
	return &sqlAlbumRepository{
		db: db,
	}
}

// Create creates a new album entry
func (s *sqlAlbumRepository) Create(ctx context.Context, id uuid.UUID, name string, shareLink string) error {
	query := `INSERT INTO albums (id, name, share_link)
              VALUES ($1, $2, $3)`

	_, err := s.db.ExecContext(ctx, query, id, name, shareLink)
	if err != nil {
		return fmt.Errorf("error inserting album: %w", err)
	}
	return nil
}

// FindByID finds an album by id, without its photos
func (s *sqlAlbumRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Album, error) {
	query := `SELECT id, name, share_link, created_at, views
              FROM albums
              WHERE id = $1`

	var dbAlbum dbAlbum
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&dbAlbum.ID,
		&dbAlbum.Name,
		&dbAlbum.ShareLink,
		&dbAlbum.CreatedAt,
		&dbAlbum.Views,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAlbumNotFound
		}
		return nil, err
	}

	return dbAlbum.ToDomain(), nil
}

// FindAll returns every album, newest first
func (s *sqlAlbumRepository) FindAll(ctx context.Context) ([]domain.Album, error) {
	query := `SELECT id, name, share_link, created_at, views
              FROM albums
              ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying albums: %w", err)
	}
	defer rows.Close()

	var albums []domain.Album
	for rows.Next() {
		var a dbAlbum
		if err := rows.Scan(&a.ID, &a.Name, &a.ShareLink, &a.CreatedAt, &a.Views); err != nil {
			return nil, fmt.Errorf("error scanning album: %w", err)
		}
		albums = append(albums, *a.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating albums: %w", err)
	}

	return albums, nil
}

// IncrementViews bumps the view counter in a single update
func (s *sqlAlbumRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE albums SET views = views + 1 WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error updating album views: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrAlbumNotFound
	}

	return nil
}

// Delete removes the album row. Zero rows affected is a no-op success: a
// concurrent sweep or force delete may have won the race.
func (s *sqlAlbumRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM albums WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting album: %w", err)
	}
	return nil
}

// dbAlbum represents an album row
type dbAlbum struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	ShareLink string    `db:"share_link"`
	CreatedAt time.Time `db:"created_at"`
	Views     int64     `db:"views"`
}

// ToDomain converts to domain.Album
func (a *dbAlbum) ToDomain() *domain.Album {
	return &domain.Album{
		ID:        a.ID,
		Name:      a.Name,
		ShareLink: a.ShareLink,
		CreatedAt: a.CreatedAt,
		Views:     a.Views,
	}
}
