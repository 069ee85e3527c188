package inmemory_test

import (
	"sync"
	"testing"

	"fulfillment/internal/adapters/out/inmemory"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintQueue_FIFO(t *testing.T) {
	queue := inmemory.NewPrintQueue()
	queue.Enqueue(ports.PrintRequest{Title: "first"})
	queue.Enqueue(ports.PrintRequest{Title: "second"})

	drained := queue.DequeueAll()
	require.Len(t, drained, 2)
	assert.Equal(t, "first", drained[0].Title)
	assert.Equal(t, "second", drained[1].Title)
}

func TestPrintQueue_DequeueAllEmpties(t *testing.T) {
	queue := inmemory.NewPrintQueue()
	queue.Enqueue(ports.PrintRequest{Title: "only"})

	require.Len(t, queue.DequeueAll(), 1)
	assert.Empty(t, queue.DequeueAll())
}

func TestPrintQueue_ConcurrentEnqueue(t *testing.T) {
	queue := inmemory.NewPrintQueue()

	const producers = 16
	var wg sync.WaitGroup
	for range producers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			queue.Enqueue(ports.PrintRequest{Title: "job"})
		}()
	}
	wg.Wait()

	assert.Len(t, queue.DequeueAll(), producers)
}
