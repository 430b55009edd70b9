package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Album is a named collection of photos with a shareable link and a view counter.
// Albums carry no expiration of their own; an album with zero photos is reclaimed
// by the scheduled empty-album job.
type Album struct {
	ID        uuid.UUID
	Name      string
	Photos    []Photo
	ShareLink string
	CreatedAt time.Time
	Views     int64
}

// ShareLink derives the public link for an album from the serving origin.
func ShareLink(origin string, albumID uuid.UUID) string {
	return fmt.Sprintf("%s/album/%s", origin, albumID.String())
}
