package queue

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// WorkerPool runs transcode jobs on a fixed number of goroutines. Distinct
// videos transcode in parallel; per-video mutual exclusion is enforced by the
// repository status gate before a job is ever submitted, not here.
type WorkerPool struct {
	JobChan chan Job
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewWorkerPool(workerCount int, handler JobHandler, logger *zap.Logger) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())
	pool := &WorkerPool{
		JobChan: make(chan Job, 100),
		ctx:     ctx,
		cancel:  cancel,
	}
	for i := 0; i < workerCount; i++ {
		worker := &Worker{
			ID:      i,
			JobChan: pool.JobChan,
			Wg:      &pool.wg,
			Handler: handler,
			Logger:  logger,
		}
		pool.wg.Add(1)
		worker.Start(pool.ctx)
	}
	return pool
}

func (p *WorkerPool) Submit(job Job) {
	p.JobChan <- job
}

func (p *WorkerPool) Shutdown() {
	p.cancel()
	close(p.JobChan)
	p.wg.Wait()
}
