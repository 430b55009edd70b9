package domain

import (
	"time"

	"github.com/google/uuid"
)

// Photo is the metadata record of one uploaded image, always scoped to one album.
// DeleteAt is fixed at save time: UploadTime plus the configured retention window.
type Photo struct {
	ID          uuid.UUID
	FileName    string
	DownloadURL string
	FilePath    string
	AlbumID     uuid.UUID
	UploadTime  time.Time
	DeleteAt    time.Time
	FileSize    int64
}

// Expired reports whether the photo is past its retention window at the given instant.
func (p Photo) Expired(now time.Time) bool {
	return !p.DeleteAt.After(now)
}
