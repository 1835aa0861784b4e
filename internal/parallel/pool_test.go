package parallel

import (
	"sync/atomic"
	"testing"
)

func TestPoolRunsAllTasks(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	var counter atomic.Int64
	const tasks = 100
	for i := 0; i < tasks; i++ {
		pool.Submit(func() { counter.Add(1) })
	}
	pool.Wait()
	if counter.Load() != tasks {
		t.Errorf("ran %d tasks, want %d", counter.Load(), tasks)
	}
}

func TestPoolDefaultWorkers(t *testing.T) {
	pool := NewPool(0)
	defer pool.Close()
	if pool.Workers() <= 0 {
		t.Errorf("Workers() = %d, want > 0", pool.Workers())
	}
}

func TestPoolWaitIsReusable(t *testing.T) {
	pool := NewPool(2)
	defer pool.Close()

	var counter atomic.Int64
	pool.Submit(func() { counter.Add(1) })
	pool.Wait()
	pool.Submit(func() { counter.Add(1) })
	pool.Wait()
	if counter.Load() != 2 {
		t.Errorf("ran %d tasks, want 2", counter.Load())
	}
}
