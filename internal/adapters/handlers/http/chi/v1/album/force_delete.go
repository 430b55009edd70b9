package album

import (
	"errors"
	"net/http"

	"github.com/VeeVeeOficial/photoclound/internal/core/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// V1ForceDeleteResponse is the response of an administrative album delete
type V1ForceDeleteResponse struct {
	Success       bool `json:"success"`
	DeletedPhotos int  `json:"deleted_photos"`
}

// ForceDeleteAlbumV1 irreversibly deletes an album and all of its photos.
func (h *HandlerV1) ForceDeleteAlbumV1(w http.ResponseWriter, r *http.Request) {
	albumID, err := uuid.Parse(chi.URLParam(r, "albumID"))
	if err != nil {
		http.Error(w, "invalid album id", http.StatusBadRequest)
		return
	}

	deleted, err := h.albumService.ForceDeleteAlbum(r.Context(), albumID)
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		h.logger.Error("error force deleting album", "album_id", albumID, "error", err)
		http.Error(w, "delete failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, V1ForceDeleteResponse{Success: true, DeletedPhotos: deleted}, h.logger)
}
