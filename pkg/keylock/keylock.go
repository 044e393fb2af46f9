// Package keylock serializes work that shares a key, such as the
// read-modify-write of one user's streak.
package keylock

import (
	"context"
	"errors"
	"sync"

	errorvalues "github.com/limbo/healthtracker/internal/error_values"
)

// Locker acquires an exclusive lock for key. The returned function releases
// it and is safe to call more than once.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

type memoryEntry struct {
	// ch has capacity 1; holding the token means holding the lock.
	ch   chan struct{}
	refs int
}

// Memory is an in-process Locker. Entries are dropped once nobody holds or
// waits for them so the map does not grow with the number of users.
type Memory struct {
	mu    sync.Mutex
	locks map[string]*memoryEntry
}

func NewMemory() *Memory {
	return &Memory{
		locks: make(map[string]*memoryEntry),
	}
}

func (m *Memory) Lock(ctx context.Context, key string) (func(), error) {
	m.mu.Lock()
	e, ok := m.locks[key]
	if !ok {
		e = &memoryEntry{ch: make(chan struct{}, 1)}
		m.locks[key] = e
	}
	e.refs++
	m.mu.Unlock()

	select {
	case e.ch <- struct{}{}:
	case <-ctx.Done():
		m.release(key, e)
		return nil, errors.Join(errorvalues.ErrLockTimeout, ctx.Err())
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-e.ch
			m.release(key, e)
		})
	}, nil
}

func (m *Memory) release(key string, e *memoryEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(m.locks, key)
	}
}

// Len reports how many keys are currently held or awaited.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.locks)
}
