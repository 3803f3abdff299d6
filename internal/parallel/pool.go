package parallel

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

// ErrClosed is returned when work is handed to a pool that has been closed.
var ErrClosed = errors.New("parallel: worker pool closed")

// PanicError carries a panic recovered from a work item.
type PanicError struct {
	// Value is the value passed to panic.
	Value any

	// Stack is the goroutine stack captured at the point of recovery.
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("parallel: task panicked: %v", e.Value)
}

// Unwrap returns the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// task is one queued band together with its completion bookkeeping.
type task func()

// WorkerPool runs band tasks on a fixed set of long-lived goroutines.
//
// Every worker owns a buffered queue. An idle worker takes from the queues of
// its peers before blocking on its own, so a slow band on one worker does not
// hold up the rest of a job. Bands from several concurrent jobs share the
// same workers.
//
// A WorkerPool is safe for concurrent use.
type WorkerPool struct {
	queues []chan task
	stop   chan struct{}
	exited sync.WaitGroup

	open atomic.Bool

	// gate is read-locked while a job enqueues and write-locked by Close,
	// so no task lands in a queue after the workers have drained.
	gate sync.RWMutex

	// cursor picks the queue that receives a job's first band.
	cursor atomic.Uint32
}

// NewWorkerPool starts a pool of n workers. A non-positive n means
// runtime.GOMAXPROCS(0).
func NewWorkerPool(n int) *WorkerPool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	depth := max(n*4, 8)

	p := &WorkerPool{
		queues: make([]chan task, n),
		stop:   make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan task, depth)
	}
	p.open.Store(true)

	p.exited.Add(n)
	for i := range n {
		go p.loop(i)
	}
	return p
}

func (p *WorkerPool) loop(id int) {
	defer p.exited.Done()

	own := p.queues[id]
	for {
		t, ok := p.take(id, own)
		if !ok {
			drain(own)
			return
		}
		t.run()
	}
}

// take returns the next task for worker id: its own queue first, then a
// peer's, then a blocking wait on its own. ok is false once the pool stops.
func (p *WorkerPool) take(id int, own chan task) (t task, ok bool) {
	select {
	case <-p.stop:
		return nil, false
	case t = <-own:
		return t, true
	default:
	}

	for i, q := range p.queues {
		if i == id {
			continue
		}
		select {
		case t = <-q:
			return t, true
		default:
		}
	}

	select {
	case <-p.stop:
		return nil, false
	case t = <-own:
		return t, true
	}
}

func (t task) run() {
	if t != nil {
		t()
	}
}

// drain runs whatever is still buffered in q.
func drain(q chan task) {
	for {
		select {
		case t := <-q:
			t.run()
		default:
			return
		}
	}
}

// ExecuteAll runs every item on the pool and blocks until all of them have
// returned.
//
// A panic inside an item is recovered and reported as a *PanicError. If more
// than one item fails, the error of the lowest index wins. A closed pool
// returns ErrClosed and runs nothing.
func (p *WorkerPool) ExecuteAll(items []func() error) error {
	if len(items) == 0 {
		return nil
	}

	p.gate.RLock()
	if !p.open.Load() {
		p.gate.RUnlock()
		return ErrClosed
	}

	errs := make([]error, len(items))
	var pending sync.WaitGroup
	pending.Add(len(items))

	// Reduce before converting so a wrapped cursor stays a valid index on
	// 32-bit platforms.
	n := len(p.queues)
	first := int(p.cursor.Add(1) % uint32(n))
	for i, fn := range items {
		// Blocks when the queue is full. Workers keep consuming until Close
		// gets the gate.
		p.queues[(first+i)%n] <- func() {
			defer pending.Done()
			errs[i] = call(fn)
		}
	}
	p.gate.RUnlock()

	pending.Wait()
	return firstError(errs)
}

func call(fn func() error) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = &PanicError{Value: v, Stack: debug.Stack()}
		}
	}()
	if fn == nil {
		return nil
	}
	return fn()
}

func firstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Close stops the pool. Tasks already queued still run; Close returns once
// every worker has exited. Calling Close again is a no-op.
func (p *WorkerPool) Close() {
	p.gate.Lock()
	if !p.open.CompareAndSwap(true, false) {
		p.gate.Unlock()
		return
	}
	close(p.stop)
	p.gate.Unlock()

	p.exited.Wait()
}

// Workers returns the number of worker goroutines.
func (p *WorkerPool) Workers() int {
	return len(p.queues)
}

// IsRunning reports whether the pool still accepts work.
func (p *WorkerPool) IsRunning() bool {
	return p.open.Load()
}

// QueuedWork is a snapshot of how many tasks wait in the queues.
func (p *WorkerPool) QueuedWork() int {
	var n int
	for _, q := range p.queues {
		n += len(q)
	}
	return n
}
