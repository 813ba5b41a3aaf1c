package lock

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// KeyedLockManager serializes operations on a shared key within this
// process. The account lifecycle uses it for the failed-access counter
// and lockout decision ("account:<id>") and for the last-admin check
// ("role:Admin"); the storage layer's unique constraints remain the
// authoritative backstop.
type KeyedLockManager struct {
	locks sync.Map // map[string]*sync.Mutex
}

// NewKeyedLockManager creates a new lock manager
func NewKeyedLockManager() *KeyedLockManager {
	return &KeyedLockManager{}
}

// Lock acquires the lock for the given key, honouring context cancellation
func (m *KeyedLockManager) Lock(ctx context.Context, key string) error {
	mu := m.getOrCreateMutex(key)

	lockChan := make(chan struct{})
	go func() {
		mu.Lock()
		close(lockChan)
	}()

	select {
	case <-lockChan:
		return nil
	case <-ctx.Done():
		// The goroutine still holds or will hold the mutex; release it
		// once acquired so the key is not poisoned.
		go func() {
			<-lockChan
			mu.Unlock()
		}()
		return fmt.Errorf("failed to acquire lock for %q: %w", key, ctx.Err())
	case <-time.After(5 * time.Second):
		go func() {
			<-lockChan
			mu.Unlock()
		}()
		return fmt.Errorf("failed to acquire lock for %q: timeout", key)
	}
}

// Unlock releases the lock for the given key
func (m *KeyedLockManager) Unlock(key string) {
	muInterface, ok := m.locks.Load(key)
	if !ok {
		return
	}
	muInterface.(*sync.Mutex).Unlock()
}

// TryLock attempts to acquire the lock without blocking
func (m *KeyedLockManager) TryLock(key string) bool {
	return m.getOrCreateMutex(key).TryLock()
}

func (m *KeyedLockManager) getOrCreateMutex(key string) *sync.Mutex {
	if mu, ok := m.locks.Load(key); ok {
		return mu.(*sync.Mutex)
	}
	actual, _ := m.locks.LoadOrStore(key, &sync.Mutex{})
	return actual.(*sync.Mutex)
}
