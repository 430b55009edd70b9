package port

import (
	"context"
	"time"
)

// SweepService is the scheduled expiration/reclaim surface
type SweepService interface {
	// SweepExpired deletes payload and metadata of every photo past its
	// expiration at the given instant, then reclaims empty albums inline.
	SweepExpired(ctx context.Context, now time.Time) error
	// ReclaimEmptyAlbums deletes every album with zero remaining photos.
	ReclaimEmptyAlbums(ctx context.Context) error
}
