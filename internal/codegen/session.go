package codegen

import (
	"sync"
)

// Session regenerates a document whenever its inputs change and
// forwards only the newest result to the listeners.
//
// A request that completes after a newer one was submitted is dropped,
// so a slow stale generation can never overwrite a fresher document.
type Session struct {
	pool *Pool

	mu        sync.Mutex
	seq       uint64
	listeners []func(Result)
}

func NewSession(pool *Pool) *Session {
	return &Session{pool: pool}
}

// OnResult registers a listener. Listeners are called synchronously,
// in registration order, from a pool worker.
func (s *Session) OnResult(fn func(Result)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Regenerate submits req. The returned ticket completes even if
// the result is superseded and not forwarded to the listeners.
func (s *Session) Regenerate(req Request) Ticket {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	return s.pool.Submit(req, func(r Result) {
		s.deliver(seq, r)
	})
}

func (s *Session) deliver(seq uint64, r Result) {
	s.mu.Lock()
	if seq != s.seq {
		s.mu.Unlock()
		tracer().Debugf("request %d superseded, dropping its result", r.ID)
		return
	}
	listeners := append([]func(Result){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(r)
	}
}
