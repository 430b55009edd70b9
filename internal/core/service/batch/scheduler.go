package batch

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/VeeVeeOficial/photoclound/internal/core/domain"
	"github.com/VeeVeeOficial/photoclound/internal/core/port"
	"github.com/google/uuid"
)

const (
	minConcurrency    = 1
	maxConcurrency    = 20
	pausePollInterval = 50 * time.Millisecond

	defaultConcurrency     = 6
	defaultBaseDelay       = 800 * time.Millisecond
	defaultInterUploadWait = 200 * time.Millisecond
)

// Options configure one batch session. Zero values fall back to the defaults;
// Concurrency is clamped into [1, 20] whatever the caller asks for.
type Options struct {
	Concurrency      int
	MaxRetries       int
	BaseDelay        time.Duration
	InterUploadDelay time.Duration
	OnProgress       func(domain.BatchStats)
}

// Scheduler drains one batch of selected files through the remote uploader with
// bounded concurrency, automatic retry, cooperative pause/resume and per-file
// progress tracking. One Scheduler serves one interactive session and is
// discarded when the session ends.
type Scheduler struct {
	uploader port.RemoteUploader
	logger   *slog.Logger
	opts     Options

	mu    sync.Mutex
	queue []domain.FileUpload

	paused  atomic.Bool
	tracker *progressTracker
}

// NewScheduler creates a session over the selected files. Progress entries for
// every file exist from this point on, in waiting state.
func NewScheduler(uploader port.RemoteUploader, logger *slog.Logger, files []domain.FileUpload, opts Options) *Scheduler {
	if opts.Concurrency == 0 {
		opts.Concurrency = defaultConcurrency
	}
	if opts.BaseDelay == 0 {
		opts.BaseDelay = defaultBaseDelay
	}
	if opts.InterUploadDelay == 0 {
		opts.InterUploadDelay = defaultInterUploadWait
	}

	queue := make([]domain.FileUpload, len(files))
	copy(queue, files)

	return &Scheduler{
		uploader: uploader,
		logger:   logger,
		opts:     opts,
		queue:    queue,
		tracker:  newProgressTracker(files),
	}
}

func clampConcurrency(n int) int {
	if n < minConcurrency {
		return minConcurrency
	}
	if n > maxConcurrency {
		return maxConcurrency
	}
	return n
}

// Pause stops workers from dequeuing new files. Uploads already in flight run
// to completion; pause is cooperative, not preemptive.
func (s *Scheduler) Pause() {
	s.paused.Store(true)
}

// Resume lets parked workers drain the queue again.
func (s *Scheduler) Resume() {
	s.paused.Store(false)
}

// Paused reports the pause flag.
func (s *Scheduler) Paused() bool {
	return s.paused.Load()
}

// Remove drops a file that has not been dequeued yet from the batch, deleting
// its progress entry and shrinking the total. Files already uploading or done
// cannot be removed; Remove reports whether the file was dropped.
func (s *Scheduler) Remove(fileID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, f := range s.queue {
		if f.ID == fileID {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			s.tracker.remove(fileID)
			return true
		}
	}
	return false
}

// Progress returns a snapshot of every per-file progress entry.
func (s *Scheduler) Progress() []domain.UploadProgress {
	return s.tracker.snapshot()
}

// Stats returns the aggregate batch counters.
func (s *Scheduler) Stats() domain.BatchStats {
	return s.tracker.batchStats()
}

// TotalProgress is the UI-facing mean of all per-file progress values, 0-100.
func (s *Scheduler) TotalProgress() float64 {
	return s.tracker.totalProgress()
}

// dequeue pops the next pending file. Queue access is the only point of mutual
// exclusion; everything after the pop runs unsynchronized.
func (s *Scheduler) dequeue() (domain.FileUpload, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return domain.FileUpload{}, false
	}
	f := s.queue[0]
	s.queue = s.queue[1:]
	return f, true
}

func (s *Scheduler) queueLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Run spawns the workers and blocks until every one of them has terminated.
// Exactly one result is produced per file still in the batch; no ordering is
// guaranteed among results.
func (s *Scheduler) Run(ctx context.Context, albumID uuid.UUID) []domain.UploadResult {
	concurrency := clampConcurrency(s.opts.Concurrency)

	var (
		resMu   sync.Mutex
		results []domain.UploadResult
	)

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.work(ctx, albumID, func(r domain.UploadResult) {
				resMu.Lock()
				results = append(results, r)
				resMu.Unlock()
			})
		}()
	}
	wg.Wait()

	return results
}

func (s *Scheduler) work(ctx context.Context, albumID uuid.UUID, record func(domain.UploadResult)) {
	for {
		if ctx.Err() != nil {
			return
		}

		if s.paused.Load() {
			if s.queueLen() == 0 {
				return
			}
			select {
			case <-time.After(pausePollInterval):
			case <-ctx.Done():
			}
			continue
		}

		file, ok := s.dequeue()
		if !ok {
			return
		}

		s.tracker.setUploading(file.ID)

		url, err := Retry(ctx, func() (string, error) {
			return s.uploader.Upload(ctx, file, albumID)
		}, IsTransient, s.opts.MaxRetries, s.opts.BaseDelay)

		var result domain.UploadResult
		if err != nil {
			s.tracker.setError(file.ID)
			s.logger.Error("file upload failed", "file", file.FileName, "error", err)
			result = domain.UploadResult{File: file, Err: err}
		} else {
			s.tracker.setCompleted(file.ID)
			result = domain.UploadResult{File: file, OK: true, URL: url}
		}
		record(result)

		stats := s.tracker.recordResult(result.OK)
		if s.opts.OnProgress != nil {
			s.opts.OnProgress(stats)
		}

		// smooth burst load on the remote endpoint
		select {
		case <-time.After(s.opts.InterUploadDelay):
		case <-ctx.Done():
			return
		}
	}
}
