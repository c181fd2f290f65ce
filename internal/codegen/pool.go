package codegen

import (
	"errors"
	"sync"
	"sync/atomic"
)

var ErrPoolClosed = errors.New("generator pool is closed")

// Result is the outcome of a single submitted request.
type Result struct {
	// ID is the request id assigned by Pool.Submit.
	ID uint64

	Source string
	Err    error
}

// Ticket identifies a submitted request.
// Done receives the Result once the listener has returned.
type Ticket struct {
	ID   uint64
	Done <-chan Result
}

type task struct {
	id      uint64
	req     Request
	deliver func(Result)
	done    chan Result
}

// Pool runs generation requests on a fixed set of worker goroutines.
//
// Requests are executed and completed in no particular order.
// There is no cancellation: every submitted request runs to completion
// and its result is delivered. Use request ids (see Pool.Latest and Session)
// to drop superseded results.
type Pool struct {
	gen *Generator

	tasks chan task
	wg    sync.WaitGroup

	mu     sync.RWMutex
	closed bool

	lastID atomic.Uint64
}

// NewPool starts numWorkers workers; values below 1 start a single worker.
func NewPool(gen *Generator, numWorkers int) *Pool {
	if gen == nil {
		gen = &Generator{}
	}
	numWorkers = max(numWorkers, 1)
	p := &Pool{
		gen:   gen,
		tasks: make(chan task, numWorkers),
	}
	p.wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go p.work()
	}
	return p
}

// Submit queues a snapshot of req, so the caller is free to modify
// the face and options right after Submit returns.
//
// deliver (may be nil) is called from a worker goroutine.
// The worker does not take another request before deliver returns.
//
// Submit blocks while the queue is full. Calling Submit or Close from
// deliver may therefore deadlock (always so for Close, and for Submit
// once every worker is inside deliver); hand the result off to another
// goroutine instead.
func (p *Pool) Submit(req Request, deliver func(Result)) Ticket {
	id := p.lastID.Add(1)
	done := make(chan Result, 1)
	t := task{id: id, req: req.Snapshot(), deliver: deliver, done: done}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		p.finish(t, Result{ID: id, Err: ErrPoolClosed})
		return Ticket{ID: id, Done: done}
	}
	p.tasks <- t
	return Ticket{ID: id, Done: done}
}

// Latest returns the id of the most recently submitted request.
func (p *Pool) Latest() uint64 { return p.lastID.Load() }

// Close waits for all queued requests to complete and stops the workers.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.tasks)
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *Pool) work() {
	defer p.wg.Done()
	for t := range p.tasks {
		source, err := p.gen.Generate(t.req)
		if err != nil {
			tracer().Errorf("request %d: %v", t.id, err)
		}
		p.finish(t, Result{ID: t.id, Source: source, Err: err})
	}
}

func (p *Pool) finish(t task, r Result) {
	if t.deliver != nil {
		t.deliver(r)
	}
	t.done <- r
	close(t.done)
}
