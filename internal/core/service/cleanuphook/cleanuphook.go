package cleanuphook

import (
	"log/slog"

	"github.com/VeeVeeOficial/photoclound/internal/core/port"
)

type cleanupHookService struct {
	payloads port.PayloadStorage
	logger   *slog.Logger
}

// NewCleanupHookService creates the consumer-side handler of photo deleted
// events: whenever a photo metadata record is removed, by any path, the binary
// payload is deleted as a side effect.
func NewCleanupHookService(payloads port.PayloadStorage, logger *slog.Logger) port.MessageService {
	return &cleanupHookService{
		payloads: payloads,
		logger:   logger,
	}
}
