package worker

import (
	"context"
	"runtime"
	"sync"

	"github.com/alde/aspectratio/pkg/aspect"
	"github.com/alde/aspectratio/pkg/progress"
)

// Job is one ratio computation. Index is the job's position in the input
// so callers can restore order after concurrent processing.
type Job struct {
	Index   int
	ID      string
	Options aspect.Options
}

// Result contains the outcome of processing a job
type Result struct {
	Index int
	JobID string
	Ratio aspect.Result
	Error error
}

// Pool manages a pool of worker goroutines
type Pool struct {
	workerCount int
	jobs        chan Job
	results     chan Result
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	stopOnce    sync.Once
	progress    *progress.Tracker
}

// NewPool creates a new worker pool
func NewPool(ctx context.Context, workerCount int) *Pool {
	if workerCount <= 0 {
		workerCount = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(ctx)

	return &Pool{
		workerCount: workerCount,
		jobs:        make(chan Job, workerCount*2), // Buffer to prevent blocking
		results:     make(chan Result, workerCount*2),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// NewPoolWithProgress creates a new worker pool that reports to tracker.
// The tracker should be sized for the pool's WorkerCount.
func NewPoolWithProgress(ctx context.Context, workerCount int, tracker *progress.Tracker) *Pool {
	p := NewPool(ctx, workerCount)
	p.progress = tracker
	return p
}

// Start begins processing jobs
func (p *Pool) Start() {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

// Stop closes the queue, waits for queued jobs to finish and closes the
// results channel. Submit must not be called after Stop.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.jobs)
		p.wg.Wait()

		if p.progress != nil {
			p.progress.Finish()
		}

		close(p.results)
		p.cancel()
	})
}

// ForceStop cancels outstanding work, then stops the pool
func (p *Pool) ForceStop() {
	p.cancel()
	p.Stop()
}

// Submit adds a job to the processing queue. It returns the context error
// once the pool is cancelled.
func (p *Pool) Submit(job Job) error {
	select {
	case p.jobs <- job:
		return nil
	case <-p.ctx.Done():
		return p.ctx.Err()
	}
}

// Results returns the results channel
func (p *Pool) Results() <-chan Result {
	return p.results
}

// worker processes jobs from the jobs channel
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case job, ok := <-p.jobs:
			if !ok {
				return
			}

			if p.progress != nil {
				p.progress.Start(id, job.ID)
			}

			ratio, err := aspect.Ratio(job.Options)

			if p.progress != nil {
				p.progress.Done(id, job.ID, err)
			}

			select {
			case p.results <- Result{Index: job.Index, JobID: job.ID, Ratio: ratio, Error: err}:
			case <-p.ctx.Done():
				return
			}

		case <-p.ctx.Done():
			return
		}
	}
}

// WorkerCount returns the number of workers in the pool
func (p *Pool) WorkerCount() int {
	return p.workerCount
}
