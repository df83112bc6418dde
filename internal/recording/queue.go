package recording

import (
	"sync"

	"github.com/pkg/errors"

	"audio_recorder/entity"
)

var (
	ErrQueueFull   = errors.New("job queue is full")
	ErrQueueClosed = errors.New("job queue is closed")
)

// JobQueue is a FIFO channel of RecordingJobs with many producers and a
// single consumer. Enqueue never blocks: a full queue is reported to the
// caller so the request path stays fast.
type JobQueue struct {
	mu     sync.RWMutex
	closed bool
	jobs   chan entity.RecordingJob
}

// NewJobQueue -.
func NewJobQueue(size int) *JobQueue {
	if size <= 0 {
		size = 1
	}
	return &JobQueue{jobs: make(chan entity.RecordingJob, size)}
}

// Enqueue appends job to the queue.
func (q *JobQueue) Enqueue(job entity.RecordingJob) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Jobs returns the consumer side. The channel is closed by Close; buffered
// jobs remain receivable so the worker can drain on shutdown.
func (q *JobQueue) Jobs() <-chan entity.RecordingJob {
	return q.jobs
}

// Len reports the number of buffered jobs.
func (q *JobQueue) Len() int {
	return len(q.jobs)
}

// Close stops accepting jobs. Safe to call more than once.
func (q *JobQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
}
