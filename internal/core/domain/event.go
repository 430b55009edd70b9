package domain

import (
	"time"

	"github.com/google/uuid"
)

// PhotoDeleted is the event published whenever a photo metadata record is removed,
// regardless of the caller. Consumers delete the binary payload as a side effect.
type PhotoDeleted struct {
	PhotoID   uuid.UUID `json:"photo_id"`
	FilePath  string    `json:"file_path"`
	AlbumID   uuid.UUID `json:"album_id"`
	DeletedAt time.Time `json:"deleted_at"`
}
