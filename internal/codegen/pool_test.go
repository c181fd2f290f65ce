package codegen

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/quasilyte/fontbytes/internal/fontdata"
	"github.com/quasilyte/fontbytes/internal/sourcecode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2026, time.January, 2, 3, 4, 5, 0, time.UTC)
}

func stripesFace(t *testing.T, num int) *fontdata.Face {
	t.Helper()
	face, err := fontdata.NewFaceFromReader(stripesReader{num: num})
	require.NoError(t, err)
	return face
}

// Pool tests run without the testing tracer: workers trace concurrently
// and the adapter is not safe for that.
func TestPoolDeliversEveryRequest(t *testing.T) {
	gen := &Generator{Now: fixedClock}
	pool := NewPool(gen, 3)
	defer pool.Close()

	var mu sync.Mutex
	delivered := map[uint64]bool{}
	var tickets []Ticket
	for _, f := range sourcecode.Formats() {
		req := Request{Face: stripesFace(t, 4), Format: f}
		tickets = append(tickets, pool.Submit(req, func(r Result) {
			mu.Lock()
			delivered[r.ID] = true
			mu.Unlock()
		}))
	}

	for i, ticket := range tickets {
		r := <-ticket.Done
		require.NoError(t, r.Err)
		assert.Equal(t, ticket.ID, r.ID)

		want, err := gen.Generate(Request{Face: stripesFace(t, 4), Format: sourcecode.Formats()[i]})
		require.NoError(t, err)
		assert.Equal(t, want, r.Source)

		mu.Lock()
		assert.True(t, delivered[r.ID], "listener must run before the ticket completes")
		mu.Unlock()
	}
	assert.Equal(t, tickets[len(tickets)-1].ID, pool.Latest())
}

func TestPoolUsesSnapshot(t *testing.T) {
	gate := make(chan struct{})
	gen := &Generator{Now: func() time.Time {
		<-gate
		return fixedClock()
	}}
	pool := NewPool(gen, 1)
	defer pool.Close()

	face := stripesFace(t, 4)
	ind := sourcecode.Spaces(1)
	req := Request{Face: face, Format: sourcecode.FormatC, Options: Options{Indentation: &ind}}
	want, err := (&Generator{Now: fixedClock}).Generate(req)
	require.NoError(t, err)

	ticket := pool.Submit(req, nil)
	face.Glyph(1).Clear()
	require.NoError(t, face.SetExported(2, false))
	ind = sourcecode.Spaces(8)
	close(gate)

	r := <-ticket.Done
	require.NoError(t, r.Err)
	assert.Equal(t, want, r.Source)
}

func TestPoolReportsErrors(t *testing.T) {
	pool := NewPool(nil, 1)
	defer pool.Close()

	var listenerErr error
	ticket := pool.Submit(Request{Format: sourcecode.FormatC}, func(r Result) {
		listenerErr = r.Err
	})
	r := <-ticket.Done
	assert.Error(t, r.Err)
	assert.Equal(t, r.Err, listenerErr)
}

func TestPoolClosed(t *testing.T) {
	pool := NewPool(nil, 2)
	pool.Close()
	pool.Close()

	ticket := pool.Submit(Request{Face: stripesFace(t, 1), Format: sourcecode.FormatC}, nil)
	r := <-ticket.Done
	assert.ErrorIs(t, r.Err, ErrPoolClosed)
}

func TestSessionDropsSupersededResults(t *testing.T) {
	var calls atomic.Int32
	entered := make(chan struct{})
	gate := make(chan struct{})
	gen := &Generator{Now: func() time.Time {
		if calls.Add(1) == 1 {
			close(entered)
			<-gate
		}
		return fixedClock()
	}}
	pool := NewPool(gen, 2)
	defer pool.Close()

	session := NewSession(pool)
	var mu sync.Mutex
	var got []uint64
	session.OnResult(func(r Result) {
		mu.Lock()
		got = append(got, r.ID)
		mu.Unlock()
	})

	slow := session.Regenerate(Request{Face: stripesFace(t, 2), Format: sourcecode.FormatC})
	<-entered
	fast := session.Regenerate(Request{Face: stripesFace(t, 3), Format: sourcecode.FormatPythonList})
	r := <-fast.Done
	require.NoError(t, r.Err)

	close(gate)
	r = <-slow.Done
	require.NoError(t, r.Err, "superseded requests still run to completion")

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []uint64{fast.ID}, got)
}

func TestSessionListenerOrder(t *testing.T) {
	pool := NewPool(&Generator{Now: fixedClock}, 1)
	defer pool.Close()

	session := NewSession(pool)
	var order []int
	session.OnResult(func(Result) { order = append(order, 1) })
	session.OnResult(func(Result) { order = append(order, 2) })

	ticket := session.Regenerate(Request{Face: stripesFace(t, 1), Format: sourcecode.FormatC})
	<-ticket.Done
	assert.Equal(t, []int{1, 2}, order)
}
