package sweep

import (
	"log/slog"

	"github.com/VeeVeeOficial/photoclound/internal/core/port"
)

type sweepService struct {
	uow      port.UnitOfWork
	payloads port.PayloadStorage
	events   port.EventPublisher
	logger   *slog.Logger
}

// NewSweepService creates the scheduled expiration/reclaim service
func NewSweepService(uow port.UnitOfWork, payloads port.PayloadStorage, events port.EventPublisher, logger *slog.Logger) port.SweepService {
	return &sweepService{
		uow:      uow,
		payloads: payloads,
		events:   events,
		logger:   logger,
	}
}
