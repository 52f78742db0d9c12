package engine

import (
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestPostPreservesSubmissionOrder(t *testing.T) {
	d := NewDispatcher(zap.NewNop())
	defer d.Shutdown()

	var mu sync.Mutex
	var got []int
	for i := 0; i < 100; i++ {
		i := i
		if !d.Post(func() {
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
		}) {
			t.Fatal("Post failed on live dispatcher")
		}
	}

	// Barrier: everything posted before from this goroutine has run.
	if !d.Run(func() {}) {
		t.Fatal("Run failed on live dispatcher")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 100 {
		t.Fatalf("got %d tasks, want 100", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("task %d ran out of order (got %d)", i, v)
		}
	}
}

func TestRunBlocksUntilExecuted(t *testing.T) {
	d := NewDispatcher(zap.NewNop())
	defer d.Shutdown()

	ran := false
	if !d.Run(func() { ran = true }) {
		t.Fatal("Run failed")
	}
	if !ran {
		t.Fatal("Run returned before the task executed")
	}
}

func TestRunFromEngineThreadExecutesInline(t *testing.T) {
	d := NewDispatcher(zap.NewNop())
	defer d.Shutdown()

	done := make(chan bool, 1)
	d.Post(func() {
		// Blocking submission from the engine goroutine itself must not
		// re-queue behind the running task.
		inner := false
		ok := d.Run(func() { inner = true })
		done <- ok && inner
	})

	select {
	case ok := <-done:
		if !ok {
			t.Fatal("inline Run did not execute the task")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("self-submission deadlocked")
	}
}

func TestDispatchAfterShutdownFailsFast(t *testing.T) {
	d := NewDispatcher(zap.NewNop())
	d.Shutdown()

	if d.Post(func() { t.Error("task ran after shutdown") }) {
		t.Fatal("Post accepted a task after shutdown")
	}

	start := time.Now()
	if d.Run(func() { t.Error("task ran after shutdown") }) {
		t.Fatal("Run accepted a task after shutdown")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("Run blocked %v on a dead dispatcher", elapsed)
	}
}

func TestShutdownFlushesQueuedTasks(t *testing.T) {
	d := NewDispatcher(zap.NewNop())

	var mu sync.Mutex
	count := 0
	for i := 0; i < 50; i++ {
		d.Post(func() {
			mu.Lock()
			count++
			mu.Unlock()
		})
	}
	d.Shutdown()

	mu.Lock()
	defer mu.Unlock()
	if count != 50 {
		t.Fatalf("flushed %d tasks, want 50", count)
	}
}

func TestShutdownIdempotent(t *testing.T) {
	d := NewDispatcher(zap.NewNop())
	d.Shutdown()
	d.Shutdown()
}
