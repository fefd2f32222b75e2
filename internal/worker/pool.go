// Package worker runs file analyses concurrently for batch mode. Each job
// analyzes one file with its own BeatMap instance, so no segment list is
// ever shared between goroutines.
package worker

import (
	"context"
	"sync"
)

// Pool fans analysis jobs out to a fixed number of workers. The channels
// are buffered well below any realistic batch size, so the producer must
// run concurrently with the consumer: submit from one goroutine, then
// Close, while another drains via Wait.
type Pool struct {
	workers       int
	jobs          chan AnalyzeJob
	results       chan *AnalyzeResult
	wg            sync.WaitGroup
	ctx           context.Context
	cancel        context.CancelFunc
	closeJobsOnce sync.Once
	closeOnce     sync.Once
}

// NewPool creates a pool with the given number of workers, at least one.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers: workers,
		jobs:    make(chan AnalyzeJob, workers*2),
		results: make(chan *AnalyzeResult, workers*2),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			result := job.Execute(p.ctx)
			select {
			case p.results <- result:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// Submit queues a job, blocking when the queue is full. Submissions after
// Shutdown are dropped. Submit must not be called once Close has been
// called.
func (p *Pool) Submit(job AnalyzeJob) {
	select {
	case <-p.ctx.Done():
	case p.jobs <- job:
	}
}

// Close marks the job queue complete. Call it exactly once, after the last
// Submit; Wait does not return until the queue is closed or the pool is
// shut down.
func (p *Pool) Close() {
	p.closeJobsOnce.Do(func() {
		close(p.jobs)
	})
}

// Wait drains results until all submitted jobs finish, then returns them
// in completion order. It must run concurrently with submission: the
// buffered results channel fills otherwise and workers stall.
func (p *Pool) Wait() []*AnalyzeResult {
	go func() {
		p.wg.Wait()
		p.closeResults()
	}()

	var results []*AnalyzeResult
	for result := range p.results {
		results = append(results, result)
	}
	return results
}

// Shutdown cancels outstanding work immediately.
func (p *Pool) Shutdown() {
	p.cancel()
	p.wg.Wait()
	p.closeResults()
}

func (p *Pool) closeResults() {
	p.closeOnce.Do(func() {
		close(p.results)
	})
}
