package inmemory

import (
	"sync"

	"fulfillment/internal/core/ports"
)

// PrintQueue is a mutex-guarded FIFO buffer of pending print requests. It
// implements ports.PrintQueue; the purchase flow appends, the dispatch job
// drains.
type PrintQueue struct {
	mu      sync.Mutex
	pending []ports.PrintRequest
}

var _ ports.PrintQueue = (*PrintQueue)(nil)

// NewPrintQueue creates an empty print queue.
func NewPrintQueue() *PrintQueue {
	return &PrintQueue{}
}

// Enqueue appends a request for later submission.
func (q *PrintQueue) Enqueue(req ports.PrintRequest) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, req)
}

// DequeueAll removes and returns all pending requests in FIFO order.
func (q *PrintQueue) DequeueAll() []ports.PrintRequest {
	q.mu.Lock()
	defer q.mu.Unlock()

	drained := q.pending
	q.pending = nil
	return drained
}
