package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestWorkerPoolProcessesJobs(t *testing.T) {
	var mu sync.Mutex
	seen := make(map[string]bool)

	pool := NewWorkerPool(3, func(ctx context.Context, job Job) error {
		mu.Lock()
		seen[job.VideoID] = true
		mu.Unlock()
		return nil
	}, zap.NewNop())

	pool.Submit(Job{VideoID: "a"})
	pool.Submit(Job{VideoID: "b"})
	pool.Submit(Job{VideoID: "c"})

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(seen) == 3
	}, 2*time.Second, 10*time.Millisecond)

	pool.Shutdown()
}

func TestWorkerPoolRunsJobsConcurrently(t *testing.T) {
	release := make(chan struct{})
	var mu sync.Mutex
	running := 0

	pool := NewWorkerPool(2, func(ctx context.Context, job Job) error {
		mu.Lock()
		running++
		mu.Unlock()
		<-release
		return nil
	}, zap.NewNop())

	pool.Submit(Job{VideoID: "a"})
	pool.Submit(Job{VideoID: "b"})

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return running == 2
	}, 2*time.Second, 10*time.Millisecond)

	close(release)
	pool.Shutdown()
}

func TestWorkerPoolShutdownReturns(t *testing.T) {
	pool := NewWorkerPool(2, func(ctx context.Context, job Job) error { return nil }, zap.NewNop())

	done := make(chan struct{})
	go func() {
		pool.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown did not return")
	}
}
