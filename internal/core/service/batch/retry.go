package batch

import (
	"context"
	"math/rand"
	"strings"
	"time"
)

// Classifier decides whether an error is worth retrying.
type Classifier func(error) bool

// transientMarkers are the remote endpoint's text-only signals of a temporary
// failure. The endpoint reports errors as free-form messages, so classification
// is by substring; the table is the single source of truth for what counts as
// transient.
var transientMarkers = []string{
	"timeout",
	"too many scripts running simultaneously",
	"service invoked too many times",
	"rate",
	"exceeded",
	"503",
	"429",
}

// IsTransient reports whether the error message indicates a failure likely to
// succeed if retried.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range transientMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

const maxJitter = 250 * time.Millisecond

// Retry runs fn up to maxAttempts+1 times in total. Between attempts it waits
// baseDelay*2^attempt plus random jitter so concurrent workers do not retry in
// lockstep. It retries only errors the classifier accepts; a non-transient error
// or exhaustion surfaces the last error unchanged. Retry knows nothing about
// uploads; fn is any operation.
func Retry[T any](ctx context.Context, fn func() (T, error), classify Classifier, maxAttempts int, baseDelay time.Duration) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; ; attempt++ {
		res, err := fn()
		if err == nil {
			return res, nil
		}
		lastErr = err

		if attempt == maxAttempts || !classify(err) {
			break
		}

		wait := time.Duration(1<<uint(attempt))*baseDelay + time.Duration(rand.Int63n(int64(maxJitter)))
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}

	return zero, lastErr
}
