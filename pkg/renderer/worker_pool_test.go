package renderer

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestWorkerPoolExecutesAllTasks(t *testing.T) {
	pool := NewWorkerPool(4)

	var count int64
	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		pool.Execute(func() {
			defer wg.Done()
			atomic.AddInt64(&count, 1)
		})
	}
	wg.Wait()
	pool.Shutdown()

	if got := atomic.LoadInt64(&count); got != 200 {
		t.Errorf("executed task count = %d, want 200", got)
	}
}

func TestWorkerPoolDefaultsWorkerCount(t *testing.T) {
	pool := NewWorkerPool(0)
	defer pool.Shutdown()

	if cap(pool.tasks) <= 0 {
		t.Error("expected a buffered task queue sized from a positive default worker count")
	}
}
