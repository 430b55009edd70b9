package batch

import (
	"sync"

	"github.com/VeeVeeOficial/photoclound/internal/core/domain"
	"github.com/google/uuid"
)

// progressTracker holds the transient per-file progress entries and the batch
// counters of one session. Entries are keyed by the synthetic per-file ID
// assigned at selection time, never by file name; two files with the same name
// stay independent.
type progressTracker struct {
	mu      sync.Mutex
	order   []uuid.UUID
	entries map[uuid.UUID]*domain.UploadProgress
	stats   domain.BatchStats
}

func newProgressTracker(files []domain.FileUpload) *progressTracker {
	t := &progressTracker{
		entries: make(map[uuid.UUID]*domain.UploadProgress, len(files)),
		stats:   domain.BatchStats{Total: len(files)},
	}
	for _, f := range files {
		t.order = append(t.order, f.ID)
		t.entries[f.ID] = &domain.UploadProgress{
			FileID:   f.ID,
			FileName: f.FileName,
			Status:   domain.UploadStatusWaiting,
		}
	}
	return t
}

func (t *progressTracker) setUploading(id uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if e, ok := t.entries[id]; ok {
		e.Progress = 20
		e.Status = domain.UploadStatusUploading
	}
}

func (t *progressTracker) setCompleted(id uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if e, ok := t.entries[id]; ok {
		e.Progress = 100
		e.Status = domain.UploadStatusCompleted
	}
}

func (t *progressTracker) setError(id uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if e, ok := t.entries[id]; ok {
		e.Status = domain.UploadStatusError
	}
}

// remove drops the entry of a file removed before upload and shrinks Total.
func (t *progressTracker) remove(id uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.entries[id]; !ok {
		return
	}
	delete(t.entries, id)
	for i, other := range t.order {
		if other == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	t.stats.Total--
}

// recordResult applies one finished upload to the counters atomically and
// returns the new snapshot.
func (t *progressTracker) recordResult(ok bool) domain.BatchStats {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stats.Done++
	if ok {
		t.stats.Success++
	} else {
		t.stats.Failed++
	}
	return t.stats
}

func (t *progressTracker) snapshot() []domain.UploadProgress {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]domain.UploadProgress, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, *t.entries[id])
	}
	return out
}

func (t *progressTracker) batchStats() domain.BatchStats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats
}

// totalProgress is the arithmetic mean of all per-file progress values.
func (t *progressTracker) totalProgress() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.order) == 0 {
		return 0
	}
	sum := 0
	for _, id := range t.order {
		sum += t.entries[id].Progress
	}
	return float64(sum) / float64(len(t.order))
}
