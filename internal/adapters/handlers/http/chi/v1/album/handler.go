package album

import (
	"log/slog"

	"github.com/VeeVeeOficial/photoclound/internal/config"
	"github.com/VeeVeeOficial/photoclound/internal/core/port"
	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 album routes
type HandlerV1 struct {
	albumService port.AlbumService
	uploader     port.RemoteUploader
	uploadCfg    config.UploadConfig
	logger       *slog.Logger
}

// NewAlbumHandlerV1 creates HandlerV1
func NewAlbumHandlerV1(service port.AlbumService, uploader port.RemoteUploader, uploadCfg config.UploadConfig, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		albumService: service,
		uploader:     uploader,
		uploadCfg:    uploadCfg,
		logger:       logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", h.UploadBatchV1)
	router.Get("/", h.ListAlbumsV1)
	router.Get("/{albumID}", h.GetAlbumV1)
	router.Delete("/{albumID}", h.ForceDeleteAlbumV1)

	return router
}
