package engine

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/Francexi/browserhost/internal/infrastructure/monitoring"
)

// Task is a unit of work executed on the engine thread.
type Task func()

// Dispatcher owns the engine goroutine and its task queue. Post enqueues
// without blocking; Run waits for completion. Per-submitter submission order
// is preserved.
type Dispatcher struct {
	mu     sync.Mutex
	queue  []Task
	closed bool

	wake chan struct{}
	done chan struct{}

	loopGoroutine uint64

	logger  *zap.Logger
	metrics *monitoring.Metrics
}

// NewDispatcher starts the engine goroutine and returns the bridge to it.
func NewDispatcher(logger *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
		logger: logger,
	}

	started := make(chan struct{})
	go d.loop(started)
	<-started

	return d
}

// WithMetrics attaches dispatch counters.
func (d *Dispatcher) WithMetrics(m *monitoring.Metrics) *Dispatcher {
	d.metrics = m
	return d
}

func (d *Dispatcher) loop(started chan<- struct{}) {
	d.loopGoroutine = goroutineID()
	close(started)

	defer close(d.done)

	for {
		d.mu.Lock()
		tasks := d.queue
		d.queue = nil
		closed := d.closed
		d.mu.Unlock()

		for _, task := range tasks {
			task()
		}

		if closed {
			// Drain anything posted between the snapshot and the close.
			d.mu.Lock()
			tasks = d.queue
			d.queue = nil
			d.mu.Unlock()
			for _, task := range tasks {
				task()
			}
			return
		}

		<-d.wake
	}
}

// Post hand-delivers a task to the engine goroutine and returns immediately.
// Reports false if the dispatcher is shut down, in which case the task is
// dropped.
func (d *Dispatcher) Post(task Task) bool {
	ok := d.enqueue(task)
	if d.metrics != nil {
		if ok {
			d.metrics.TasksDispatched.WithLabelValues("async").Inc()
		} else {
			d.metrics.DispatchDropped.Inc()
		}
	}
	return ok
}

func (d *Dispatcher) enqueue(task Task) bool {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return false
	}
	d.queue = append(d.queue, task)
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
	}
	return true
}

// Run submits a task and blocks until the engine goroutine has executed it.
// When called from the engine goroutine itself the task executes inline,
// avoiding self-deadlock. Reports false without blocking if the dispatcher
// is shut down.
func (d *Dispatcher) Run(task Task) bool {
	if goroutineID() == d.loopGoroutine {
		task()
		return true
	}

	finished := make(chan struct{})
	if !d.enqueue(func() {
		task()
		close(finished)
	}) {
		if d.metrics != nil {
			d.metrics.DispatchDropped.Inc()
		}
		return false
	}

	if d.metrics != nil {
		d.metrics.TasksDispatched.WithLabelValues("sync").Inc()
	}

	<-finished
	return true
}

// Shutdown stops accepting tasks, flushes the queue and waits for the engine
// goroutine to exit. Safe to call more than once.
func (d *Dispatcher) Shutdown() {
	d.mu.Lock()
	already := d.closed
	d.closed = true
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
	}

	if !already && d.logger != nil {
		d.logger.Info("engine dispatcher shutting down")
	}

	<-d.done
}

var goroutinePrefix = []byte("goroutine ")

// goroutineID parses the current goroutine's id from its stack header. Used
// only to detect self-submission on the engine goroutine.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	s := bytes.TrimPrefix(buf[:n], goroutinePrefix)
	if i := bytes.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}
	id, _ := strconv.ParseUint(string(s), 10, 64)
	return id
}
