// Package keylock provides mutual exclusion scoped to a string key. It is used
// to serialize concurrent purchase attempts that share an idempotency key, so
// the duplicate-order check and the record insert execute as one critical
// section per key.
package keylock

import "sync"

// KeyedMutex hands out one mutex per key. Locks for distinct keys are
// independent; callers locking the same key are serialized.
//
// Mutexes are retained for the lifetime of the KeyedMutex. Keys here are
// idempotency keys, whose count is bounded by the number of orders, the same
// lifetime the in-memory ledger already has.
type KeyedMutex struct {
	locks sync.Map // key -> *sync.Mutex
}

// NewKeyedMutex creates an empty KeyedMutex.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{}
}

// Lock acquires the mutex for key and returns the matching unlock function.
//
//	unlock := km.Lock(orderID)
//	defer unlock()
func (km *KeyedMutex) Lock(key string) func() {
	v, _ := km.locks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
