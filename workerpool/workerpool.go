package workerpool

import (
	"runtime"
	"runtime/debug"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/iotaledger/dll/ierrors"
	"github.com/iotaledger/dll/logger"
	"github.com/iotaledger/dll/options"
)

var (
	// ErrPoolStopped is returned if a task is submitted to a pool that was stopped.
	ErrPoolStopped = ierrors.New("worker pool is stopped")
	// ErrQueueFull is returned if more submitters than the queue size are already waiting for a free worker.
	ErrQueueFull = ierrors.New("worker pool queue is full")
)

// WorkerPool executes a worker function for submitted parameters on a bounded set of goroutines.
//
// Submit blocks while all workers are busy. QueueSize limits the number of blocked submitters, 0 means unlimited.
type WorkerPool struct {
	*logger.WrappedLogger

	workerFunc  func(Task)
	workerCount int
	queueSize   int

	pool          *ants.PoolWithFunc
	shutdown      bool
	shutdownOnce  sync.Once
	shutdownMutex sync.RWMutex
	tasksWg       sync.WaitGroup
}

// New creates and starts a new WorkerPool for the supplied function.
func New(workerFunc func(Task), opts ...options.Option[WorkerPool]) (*WorkerPool, error) {
	wp := options.Apply(&WorkerPool{
		WrappedLogger: logger.NewWrappedLogger(nil),
		workerFunc:    workerFunc,
		workerCount:   runtime.NumCPU(),
	}, opts)

	if wp.workerCount < 1 {
		return nil, ierrors.Errorf("worker count must be at least 1 but is %d", wp.workerCount)
	}
	if wp.queueSize < 0 {
		return nil, ierrors.Errorf("queue size must not be negative but is %d", wp.queueSize)
	}

	pool, err := ants.NewPoolWithFunc(wp.workerCount, wp.workerFuncWrapper, ants.WithMaxBlockingTasks(wp.queueSize))
	if err != nil {
		return nil, ierrors.Wrap(err, "unable to create the goroutine pool")
	}
	wp.pool = pool

	return wp, nil
}

// WorkerCount sets the number of goroutines that execute tasks.
func WorkerCount(workerCount int) options.Option[WorkerPool] {
	return func(wp *WorkerPool) {
		wp.workerCount = workerCount
	}
}

// QueueSize sets the number of submitters that may wait for a free worker.
func QueueSize(queueSize int) options.Option[WorkerPool] {
	return func(wp *WorkerPool) {
		wp.queueSize = queueSize
	}
}

// WithLogger sets the logger that reports recovered panics.
func WithLogger(log *logger.Logger) options.Option[WorkerPool] {
	return func(wp *WorkerPool) {
		wp.WrappedLogger = logger.NewWrappedLogger(log)
	}
}

// Submit submits a task to the pool and returns the channel that receives its result. The channel is closed once
// the task is done, it stays empty if the worker function did not call Return.
func (wp *WorkerPool) Submit(params ...interface{}) (chan interface{}, error) {
	wp.shutdownMutex.RLock()
	defer wp.shutdownMutex.RUnlock()

	if wp.shutdown {
		return nil, ErrPoolStopped
	}

	result := make(chan interface{}, 1)

	wp.tasksWg.Add(1)
	if err := wp.pool.Invoke(Task{params: params, resultChan: result}); err != nil {
		wp.tasksWg.Done()

		if ierrors.Is(err, ants.ErrPoolOverload) {
			return nil, ErrQueueFull
		}

		return nil, ierrors.Wrap(err, "unable to submit task")
	}

	return result, nil
}

// Stop stops accepting new tasks. Tasks that were already submitted are still executed.
func (wp *WorkerPool) Stop() {
	wp.shutdownOnce.Do(func() {
		wp.shutdownMutex.Lock()
		defer wp.shutdownMutex.Unlock()

		wp.shutdown = true
	})
}

// StopAndWait stops the pool, waits for all submitted tasks to complete and releases the workers.
func (wp *WorkerPool) StopAndWait() {
	wp.Stop()
	wp.tasksWg.Wait()
	wp.pool.Release()
}

// WorkerCount returns the configured worker count.
func (wp *WorkerPool) WorkerCount() int {
	return wp.workerCount
}

func (wp *WorkerPool) workerFuncWrapper(t interface{}) {
	task := t.(Task)

	defer func() {
		if r := recover(); r != nil {
			wp.LogErrorf("recovered from panic in WorkerPool: %s %s", r, debug.Stack())
		}

		close(task.resultChan)
		wp.tasksWg.Done()
	}()

	wp.workerFunc(task)
}
