package port

import (
	"context"

	"github.com/VeeVeeOficial/photoclound/internal/core/domain"
	"github.com/google/uuid"
)

// RemoteUploader performs one upload call against the remote endpoint and returns
// the resolved URL. No retry, no backoff; resilience is the caller's concern.
type RemoteUploader interface {
	Upload(ctx context.Context, file domain.FileUpload, albumID uuid.UUID) (string, error)
}
