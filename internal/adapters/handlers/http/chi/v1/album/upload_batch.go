package album

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/VeeVeeOficial/photoclound/internal/core/domain"
	"github.com/VeeVeeOficial/photoclound/internal/core/service/batch"
	"github.com/google/uuid"
)

// V1PhotoResponse is one photo inside an album response
type V1PhotoResponse struct {
	ID          uuid.UUID `json:"id"`
	FileName    string    `json:"file_name"`
	DownloadURL string    `json:"download_url"`
	UploadTime  time.Time `json:"upload_time"`
	DeleteAt    time.Time `json:"delete_at"`
	FileSize    int64     `json:"file_size"`
}

// V1AlbumResponse is the album representation returned by the API
type V1AlbumResponse struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	ShareLink string            `json:"share_link"`
	CreatedAt time.Time         `json:"created_at"`
	Views     int64             `json:"views"`
	Photos    []V1PhotoResponse `json:"photos"`
}

// V1UploadResultResponse is the per-file outcome of a batch upload
type V1UploadResultResponse struct {
	FileName string `json:"file_name"`
	OK       bool   `json:"ok"`
	URL      string `json:"url,omitempty"`
	Error    string `json:"error,omitempty"`
}

// V1UploadBatchResponse is the response of a batch upload
type V1UploadBatchResponse struct {
	Album   V1AlbumResponse          `json:"album"`
	Done    int                      `json:"done"`
	Success int                      `json:"success"`
	Failed  int                      `json:"failed"`
	Total   int                      `json:"total"`
	Results []V1UploadResultResponse `json:"results"`
}

// UploadBatchV1 accepts a multipart batch (album name plus photo files), pushes
// the files through the batch scheduler and responds with the assembled album.
// A single file's failure never fails the whole batch.
func (h *HandlerV1) UploadBatchV1(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		h.logger.Error("error parsing batch upload form", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	name := r.FormValue("name")
	if name == "" {
		http.Error(w, "album name is required", http.StatusBadRequest)
		return
	}

	fileHeaders := r.MultipartForm.File["photos"]
	if len(fileHeaders) == 0 {
		http.Error(w, "provide at least one photo", http.StatusBadRequest)
		return
	}

	var files []domain.FileUpload
	for _, fh := range fileHeaders {
		if fh.Size > h.uploadCfg.MaxFileSize {
			http.Error(w, fmt.Sprintf("%s: %v", fh.Filename, domain.ErrFileSizeTooBig), http.StatusBadRequest)
			return
		}

		f, err := fh.Open()
		if err != nil {
			h.logger.Error("error opening uploaded file", "file", fh.Filename, "error", err)
			http.Error(w, "could not read uploaded file", http.StatusBadRequest)
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			h.logger.Error("error reading uploaded file", "file", fh.Filename, "error", err)
			http.Error(w, "could not read uploaded file", http.StatusBadRequest)
			return
		}

		files = append(files, domain.FileUpload{
			ID:       uuid.New(),
			FileName: fh.Filename,
			MimeType: fh.Header.Get("Content-Type"),
			Size:     fh.Size,
			Data:     data,
		})
	}

	created, err := h.albumService.CreateAlbum(r.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidArgument) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("error creating album", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	scheduler := batch.NewScheduler(h.uploader, h.logger, files, batch.Options{
		Concurrency: h.uploadCfg.Concurrency,
		MaxRetries:  h.uploadCfg.MaxRetries,
		BaseDelay:   h.uploadCfg.RetryBaseDelay,
	})
	results := scheduler.Run(r.Context(), created.ID)
	stats := scheduler.Stats()

	assembled, err := h.albumService.Assemble(r.Context(), created.ID, name, results)
	if err != nil {
		h.logger.Error("error assembling album", "album_id", created.ID, "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	resp := V1UploadBatchResponse{
		Album:   toAlbumResponse(*assembled),
		Done:    stats.Done,
		Success: stats.Success,
		Failed:  stats.Failed,
		Total:   stats.Total,
	}
	for _, result := range results {
		rr := V1UploadResultResponse{
			FileName: result.File.FileName,
			OK:       result.OK,
			URL:      result.URL,
		}
		if result.Err != nil {
			rr.Error = result.Err.Error()
		}
		resp.Results = append(resp.Results, rr)
	}

	writeJSON(w, http.StatusCreated, resp, h.logger)
}

func toAlbumResponse(a domain.Album) V1AlbumResponse {
	resp := V1AlbumResponse{
		ID:        a.ID,
		Name:      a.Name,
		ShareLink: a.ShareLink,
		CreatedAt: a.CreatedAt,
		Views:     a.Views,
		Photos:    make([]V1PhotoResponse, 0, len(a.Photos)),
	}
	for _, p := range a.Photos {
		resp.Photos = append(resp.Photos, V1PhotoResponse{
			ID:          p.ID,
			FileName:    p.FileName,
			DownloadURL: p.DownloadURL,
			UploadTime:  p.UploadTime,
			DeleteAt:    p.DeleteAt,
			FileSize:    p.FileSize,
		})
	}
	return resp
}
