package service

import "sync"

// uploadTracker tags in-flight uploads with a per-job generation. Bumping
// the generation (job deleted, screen closed) invalidates every upload
// started under the previous one; their results are discarded on landing.
type uploadTracker struct {
	mu  sync.Mutex
	gen map[string]uint64
}

func newUploadTracker() *uploadTracker {
	return &uploadTracker{gen: map[string]uint64{}}
}

// generation returns the job's current upload generation.
func (t *uploadTracker) generation(jobID string) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.gen[jobID]
}

// invalidate bumps the job's generation, orphaning in-flight uploads.
func (t *uploadTracker) invalidate(jobID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.gen[jobID]++
}

// stillCurrent reports whether an upload started at g may land.
func (t *uploadTracker) stillCurrent(jobID string, g uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.gen[jobID] == g
}
