package album

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/VeeVeeOficial/photoclound/internal/core/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// GetAlbumV1 returns one album with its photos and counts the view.
func (h *HandlerV1) GetAlbumV1(w http.ResponseWriter, r *http.Request) {
	albumID, err := uuid.Parse(chi.URLParam(r, "albumID"))
	if err != nil {
		http.Error(w, "invalid album id", http.StatusBadRequest)
		return
	}

	found, err := h.albumService.GetAlbum(r.Context(), albumID)
	switch {
	case errors.Is(err, domain.ErrAlbumNotFound):
		http.Error(w, "album not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error loading album", "album_id", albumID, "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	// best-effort; a lost view count never fails the read
	if viewErr := h.albumService.IncrementViews(r.Context(), albumID); viewErr != nil {
		h.logger.Warn("failed to count album view", "album_id", albumID, "error", viewErr)
	}

	writeJSON(w, http.StatusOK, toAlbumResponse(*found), h.logger)
}

// ListAlbumsV1 returns every album, newest first.
func (h *HandlerV1) ListAlbumsV1(w http.ResponseWriter, r *http.Request) {
	albums, err := h.albumService.ListAlbums(r.Context())
	if err != nil {
		h.logger.Error("error listing albums", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	resp := make([]V1AlbumResponse, 0, len(albums))
	for _, a := range albums {
		resp = append(resp, toAlbumResponse(a))
	}

	writeJSON(w, http.StatusOK, resp, h.logger)
}

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("error encoding response", "error", err)
	}
}
