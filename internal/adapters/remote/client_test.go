package remote_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/VeeVeeOficial/photoclound/internal/adapters/remote"
	"github.com/VeeVeeOficial/photoclound/internal/config"
	"github.com/VeeVeeOficial/photoclound/internal/core/domain"
	"github.com/VeeVeeOficial/photoclound/internal/core/service/batch"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFile() domain.FileUpload {
	return domain.FileUpload{
		ID:       uuid.New(),
		FileName: "sunset.jpg",
		MimeType: "image/jpeg",
		Size:     4,
		Data:     []byte("\xff\xd8\xff\xe0"),
	}
}

func newTestClient(endpointURL string) *remote.Client {
	return remote.NewClient(config.RemoteConfig{
		EndpointURL: endpointURL,
		Folder:      "photo-share-albums",
		Timeout:     5 * time.Second,
	})
}

func TestClient_Upload_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	file := testFile()
	albumID := uuid.New()

	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &captured))

		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.Write([]byte(`{"success":true,"directUrl":"https://drive.example/uc?id=abc"}`))
	}))
	defer server.Close()

	// Act
	url, err := newTestClient(server.URL).Upload(ctx, file, albumID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "https://drive.example/uc?id=abc", url)

	assert.Equal(t, "upload_photo", captured["action"])
	assert.Equal(t, "sunset.jpg", captured["fileName"])
	assert.Equal(t, "image/jpeg", captured["mimeType"])
	assert.Equal(t, base64.StdEncoding.EncodeToString(file.Data), captured["data"])
	assert.Equal(t, albumID.String(), captured["albumId"])
	assert.Equal(t, "photo-share-albums", captured["folder"])
	assert.NotEmpty(t, captured["timestamp"])
}

func TestClient_Upload_FallsBackToFileURL(t *testing.T) {
	ctx := context.Background()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"fileUrl":"https://drive.example/file/d/xyz"}`))
	}))
	defer server.Close()

	url, err := newTestClient(server.URL).Upload(ctx, testFile(), uuid.New())

	require.NoError(t, err)
	assert.Equal(t, "https://drive.example/file/d/xyz", url)
}

func TestClient_Upload_HTTPErrorKeepsStatusCode(t *testing.T) {
	ctx := context.Background()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Upload(ctx, testFile(), uuid.New())

	require.ErrorIs(t, err, domain.ErrRemoteRejected)
	assert.Contains(t, err.Error(), "503")
	// the status survives into the message so failures like this one retry
	assert.True(t, batch.IsTransient(err))
}

func TestClient_Upload_RemoteReportedFailure(t *testing.T) {
	ctx := context.Background()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"error":"folder is full"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Upload(ctx, testFile(), uuid.New())

	require.ErrorIs(t, err, domain.ErrRemoteRejected)
	assert.Contains(t, err.Error(), "folder is full")
}

func TestClient_Upload_MalformedResponse(t *testing.T) {
	ctx := context.Background()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Upload(ctx, testFile(), uuid.New())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed upload response")
}

func TestClient_Upload_SuccessWithoutURL(t *testing.T) {
	ctx := context.Background()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Upload(ctx, testFile(), uuid.New())

	require.ErrorIs(t, err, domain.ErrRemoteRejected)
}
