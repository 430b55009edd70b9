package album

import (
	"log/slog"

	"github.com/VeeVeeOficial/photoclound/internal/config"
	"github.com/VeeVeeOficial/photoclound/internal/core/port"
)

type albumService struct {
	uow      port.UnitOfWork
	payloads port.PayloadStorage
	events   port.EventPublisher
	remote   config.RemoteConfig
	upload   config.UploadConfig
	logger   *slog.Logger
}

// NewAlbumService creates a new album service
func NewAlbumService(uow port.UnitOfWork, payloads port.PayloadStorage, events port.EventPublisher, remoteCfg config.RemoteConfig, uploadCfg config.UploadConfig, logger *slog.Logger) port.AlbumService {
	return &albumService{
		uow:      uow,
		payloads: payloads,
		events:   events,
		remote:   remoteCfg,
		upload:   uploadCfg,
		logger:   logger,
	}
}
