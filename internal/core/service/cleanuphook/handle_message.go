package cleanuphook

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/VeeVeeOficial/photoclound/internal/core/domain"
)

// HandleMessage deletes the binary payload of a removed photo. Deleting a
// payload that is already gone is a no-op success, so redelivery and the
// sweep's own direct delete are both harmless.
//
// A malformed event stays malformed on every redelivery, so those are logged
// and acked instead of returned as errors. Only storage failures are worth
// another delivery attempt.
func (c *cleanupHookService) HandleMessage(ctx context.Context, data []byte) error {
	var event domain.PhotoDeleted
	if err := json.Unmarshal(data, &event); err != nil {
		c.logger.Warn("dropping unparseable photo deleted event", "error", err)
		return nil
	}
	if event.FilePath == "" {
		c.logger.Warn("dropping photo deleted event without file path", "photo_id", event.PhotoID)
		return nil
	}

	if err := c.payloads.DeleteObject(ctx, event.FilePath); err != nil {
		return fmt.Errorf("could not delete payload %s: %w", event.FilePath, err)
	}

	c.logger.Info("payload cleaned up", "photo_id", event.PhotoID, "file_path", event.FilePath)
	return nil
}
