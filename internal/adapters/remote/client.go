package remote

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/VeeVeeOficial/photoclound/internal/config"
	"github.com/VeeVeeOficial/photoclound/internal/core/domain"
	"github.com/VeeVeeOficial/photoclound/internal/core/port"
	"github.com/google/uuid"
)

const uploadAction = "upload_photo"

// uploadRequest is the self-describing payload the endpoint expects: an action
// tag, file metadata and the base64-encoded bytes.
type uploadRequest struct {
	Action    string `json:"action"`
	FileName  string `json:"fileName"`
	MimeType  string `json:"mimeType"`
	Data      string `json:"data"`
	AlbumID   string `json:"albumId,omitempty"`
	Folder    string `json:"folder"`
	Timestamp string `json:"timestamp"`
}

// uploadResponse carries either DirectURL or FileURL depending on the endpoint
// revision; both are accepted.
type uploadResponse struct {
	Success   bool   `json:"success"`
	DirectURL string `json:"directUrl"`
	FileURL   string `json:"fileUrl"`
	Error     string `json:"error"`
}

// Client performs one upload call per file against the remote endpoint. It has
// no retry logic of its own; resilience belongs to the caller.
type Client struct {
	httpClient *http.Client
	config     config.RemoteConfig
}

// NewClient creates a remote upload client
func NewClient(cfg config.RemoteConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		config:     cfg,
	}
}

var _ port.RemoteUploader = (*Client)(nil)

// Upload serializes the file into the endpoint's JSON payload and performs one
// POST. It returns the resolved URL, or an error carrying the HTTP status or
// the remote-reported message.
func (c *Client) Upload(ctx context.Context, file domain.FileUpload, albumID uuid.UUID) (string, error) {
	payload := uploadRequest{
		Action:    uploadAction,
		FileName:  file.FileName,
		MimeType:  file.MimeType,
		Data:      base64.StdEncoding.EncodeToString(file.Data),
		AlbumID:   albumID.String(),
		Folder:    c.config.Folder,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("could not marshal upload request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.EndpointURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("could not build upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// the status code stays in the message so the retry classifier sees 429/503
		return "", fmt.Errorf("%w: HTTP %d: %s", domain.ErrRemoteRejected, resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var result uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("malformed upload response: %w", err)
	}

	if !result.Success {
		msg := result.Error
		if msg == "" {
			msg = "upload failed"
		}
		return "", fmt.Errorf("%w: %s", domain.ErrRemoteRejected, msg)
	}

	url := result.DirectURL
	if url == "" {
		url = result.FileURL
	}
	if url == "" {
		return "", fmt.Errorf("%w: response carries no file url", domain.ErrRemoteRejected)
	}

	return url, nil
}
