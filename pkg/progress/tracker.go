package progress

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
)

// WorkerProgress tracks progress for an individual worker
type WorkerProgress struct {
	WorkerID      int
	JobsCompleted int
	JobsFailed    int
	CurrentJob    string
	LastUpdate    time.Time
}

// Tracker manages progress across multiple workers and reports it through
// a structured logger
type Tracker struct {
	mu            sync.Mutex
	logger        *log.Logger
	workers       map[int]*WorkerProgress
	totalJobs     int
	completedJobs int
	failedJobs    int
	startTime     time.Time
	lastDisplay   time.Time
	displayRate   time.Duration
}

// NewTracker creates a new progress tracker. A nil logger uses log.Default().
func NewTracker(logger *log.Logger, workerCount, totalJobs int) *Tracker {
	if logger == nil {
		logger = log.Default()
	}

	tracker := &Tracker{
		logger:      logger,
		workers:     make(map[int]*WorkerProgress),
		totalJobs:   totalJobs,
		startTime:   time.Now(),
		displayRate: 500 * time.Millisecond,
	}

	for i := 0; i < workerCount; i++ {
		tracker.workers[i] = &WorkerProgress{
			WorkerID:   i,
			LastUpdate: time.Now(),
		}
	}

	return tracker
}

// Start records that a worker picked up a job
func (t *Tracker) Start(workerID int, jobID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	worker := t.workers[workerID]
	if worker == nil {
		return
	}
	worker.CurrentJob = jobID
	worker.LastUpdate = time.Now()
}

// Done records the outcome of a worker's current job
func (t *Tracker) Done(workerID int, jobID string, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	worker := t.workers[workerID]
	if worker == nil {
		return
	}

	worker.CurrentJob = ""
	worker.LastUpdate = time.Now()
	worker.JobsCompleted++
	t.completedJobs++

	if err != nil {
		worker.JobsFailed++
		t.failedJobs++
		t.logger.Warn("job failed", "job", jobID, "worker", workerID, "err", err)
	}

	if time.Since(t.lastDisplay) >= t.displayRate || t.completedJobs == t.totalJobs {
		t.logger.Debug("progress",
			"completed", t.completedJobs,
			"total", t.totalJobs,
			"percent", percentage(t.completedJobs, t.totalJobs))
		t.lastDisplay = time.Now()
	}
}

// Finish logs the final statistics
func (t *Tracker) Finish() {
	stats := t.Stats()

	t.logger.Info("batch finished",
		"jobs", humanize.Comma(int64(stats.CompletedJobs)),
		"failed", stats.FailedJobs,
		"elapsed", stats.Elapsed.Round(time.Millisecond))

	t.mu.Lock()
	defer t.mu.Unlock()
	for workerID := 0; workerID < len(t.workers); workerID++ {
		worker := t.workers[workerID]
		t.logger.Debug("worker statistics", "worker", workerID, "jobs", worker.JobsCompleted, "failed", worker.JobsFailed)
	}
}

// Stats returns current progress statistics
func (t *Tracker) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()

	elapsed := time.Since(t.startTime)
	rate := 0.0
	if elapsed.Seconds() > 0 {
		rate = float64(t.completedJobs) / elapsed.Seconds()
	}

	return Stats{
		TotalJobs:     t.totalJobs,
		CompletedJobs: t.completedJobs,
		FailedJobs:    t.failedJobs,
		WorkerCount:   len(t.workers),
		Elapsed:       elapsed,
		Rate:          rate,
		Percentage:    percentage(t.completedJobs, t.totalJobs),
	}
}

// Stats contains progress statistics
type Stats struct {
	TotalJobs     int
	CompletedJobs int
	FailedJobs    int
	WorkerCount   int
	Elapsed       time.Duration
	Rate          float64 // Jobs per second
	Percentage    float64
}

func percentage(done, total int) float64 {
	if total <= 0 {
		return 100
	}
	return float64(done) / float64(total) * 100
}
