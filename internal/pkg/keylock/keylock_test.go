package keylock_test

import (
	"sync"
	"testing"

	"fulfillment/internal/pkg/keylock"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	km := keylock.NewKeyedMutex()

	const workers = 32
	counter := 0

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			unlock := km.Lock("order-1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestKeyedMutex_IndependentKeys(t *testing.T) {
	km := keylock.NewKeyedMutex()

	unlockA := km.Lock("a")
	defer unlockA()

	// A different key must not block while "a" is held.
	done := make(chan struct{})
	go func() {
		unlockB := km.Lock("b")
		unlockB()
		close(done)
	}()

	<-done
}

func TestKeyedMutex_Reentry(t *testing.T) {
	km := keylock.NewKeyedMutex()

	unlock := km.Lock("a")
	unlock()

	unlock = km.Lock("a")
	unlock()
}
