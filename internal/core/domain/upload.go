package domain

import (
	"github.com/google/uuid"
)

// UploadStatus represents the status of one file inside a batch
type UploadStatus string

const (
	UploadStatusWaiting   UploadStatus = "waiting"
	UploadStatusUploading UploadStatus = "uploading"
	UploadStatusCompleted UploadStatus = "completed"
	UploadStatusError     UploadStatus = "error"
)

// FileUpload is one file selected for a batch upload. ID is assigned at selection
// time so two files with the same name never share a progress entry.
type FileUpload struct {
	ID       uuid.UUID
	FileName string
	MimeType string
	Size     int64
	Data     []byte
}

// UploadResult is the outcome of one file's upload after retries are exhausted.
type UploadResult struct {
	File FileUpload
	OK   bool
	URL  string
	Err  error
}

// UploadProgress is the transient per-file progress entry of an in-flight batch.
// It is never persisted.
type UploadProgress struct {
	FileID   uuid.UUID
	FileName string
	Progress int
	Status   UploadStatus
}

// BatchStats aggregates one batch session. Done == Success + Failed at all times;
// Total is fixed at batch start and shrinks only on explicit pre-upload removal.
type BatchStats struct {
	Done    int
	Success int
	Failed  int
	Total   int
}
