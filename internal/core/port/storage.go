package port

import "context"

// PayloadStorage is an interface to delete binary payloads by their logical path.
// Implementations must treat deletion of an already-removed object as success.
type PayloadStorage interface {
	DeleteObject(ctx context.Context, filePath string) error
}
