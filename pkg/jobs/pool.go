package jobs

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Job represents one unit of batch work.
type Job struct {
	ID      string
	Type    string
	Payload interface{}
}

// Result reports the outcome of a job.
type Result struct {
	Job      Job
	Err      error
	Duration time.Duration
}

// Handler processes a job.
type Handler func(context.Context, Job) error

// PoolConfig configures worker pool behaviour.
type PoolConfig struct {
	Workers int
	Logger  *zap.Logger
}

// Pool runs a fixed set of jobs over a bounded number of goroutines.
type Pool struct {
	name    string
	handler Handler
	workers int
	logger  *zap.Logger
}

// NewPool builds a pool with the provided handler.
func NewPool(name string, handler Handler, cfg PoolConfig) *Pool {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Pool{
		name:    name,
		handler: handler,
		workers: cfg.Workers,
		logger:  cfg.Logger,
	}
}

// Run processes every job and returns results in the order jobs were given.
// Jobs not started before ctx is cancelled report ctx.Err().
func (p *Pool) Run(ctx context.Context, jobs []Job) []Result {
	results := make([]Result, len(jobs))
	indexes := make(chan int)

	workers := p.workers
	if workers > len(jobs) {
		workers = len(jobs)
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for idx := range indexes {
				results[idx] = p.process(ctx, workerID, jobs[idx])
			}
		}(i + 1)
	}

	next := 0
	for ; next < len(jobs); next++ {
		select {
		case <-ctx.Done():
		case indexes <- next:
			continue
		}
		break
	}
	close(indexes)
	wg.Wait()

	for ; next < len(jobs); next++ {
		results[next] = Result{Job: jobs[next], Err: ctx.Err()}
	}

	p.logger.Sugar().Debugw("pool finished", "pool", p.name, "jobs", len(jobs), "workers", workers)
	return results
}

func (p *Pool) process(ctx context.Context, workerID int, job Job) Result {
	start := time.Now()
	err := p.handler(ctx, job)
	duration := time.Since(start)
	if err != nil {
		p.logger.Sugar().Warnw("job failed", "pool", p.name, "worker", workerID, "job_id", job.ID, "type", job.Type, "error", err)
	}
	return Result{Job: job, Err: err, Duration: duration}
}
