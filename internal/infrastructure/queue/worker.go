package queue

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// JobHandler executes one job. Failures are recorded on the video row by the
// handler itself; the worker only logs them.
type JobHandler func(ctx context.Context, job Job) error

type Worker struct {
	ID      int
	JobChan <-chan Job
	Wg      *sync.WaitGroup
	Handler JobHandler
	Logger  *zap.Logger
}

func (w *Worker) Start(ctx context.Context) {
	go func() {
		defer w.Wg.Done()
		for {
			select {
			case job, ok := <-w.JobChan:
				if !ok {
					w.Logger.Debug("job channel closed", zap.Int("worker", w.ID))
					return
				}
				select {
				case <-ctx.Done():
					w.Logger.Info("job dropped during shutdown",
						zap.Int("worker", w.ID), zap.String("videoId", job.VideoID))
					continue
				default:
					w.process(ctx, job)
				}
			case <-ctx.Done():
				w.Logger.Debug("worker stopping", zap.Int("worker", w.ID))
				return
			}
		}
	}()
}

func (w *Worker) process(ctx context.Context, job Job) {
	w.Logger.Info("processing transcode job",
		zap.Int("worker", w.ID),
		zap.String("videoId", job.VideoID),
		zap.String("preset", job.Preset))

	if err := w.Handler(ctx, job); err != nil {
		w.Logger.Error("transcode job failed",
			zap.Int("worker", w.ID),
			zap.String("videoId", job.VideoID),
			zap.Error(err))
		return
	}
	w.Logger.Info("transcode job finished",
		zap.Int("worker", w.ID),
		zap.String("videoId", job.VideoID))
}
