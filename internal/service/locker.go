package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"
)

// LockKey is the locker key of one record.
func LockKey(entity string, id int64) string {
	return entity + ":" + strconv.FormatInt(id, 10)
}

type keyLock struct {
	ch   chan struct{}
	refs int
}

// memoryLocker is a process-local keyed mutex. Entries are dropped once no
// caller holds or waits for them.
type memoryLocker struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

// NewMemoryLocker returns a [RecordLocker] serializing callers of one
// process.
func NewMemoryLocker() RecordLocker {
	return &memoryLocker{locks: make(map[string]*keyLock)}
}

func (m *memoryLocker) Lock(ctx context.Context, key string) (func(), error) {
	m.mu.Lock()
	l, ok := m.locks[key]
	if !ok {
		l = &keyLock{ch: make(chan struct{}, 1)}
		m.locks[key] = l
	}
	l.refs++
	m.mu.Unlock()

	select {
	case l.ch <- struct{}{}:
	case <-ctx.Done():
		m.release(key, l)
		return nil, fmt.Errorf("%w: %s: %w", ErrLockNotAcquired, key, ctx.Err())
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-l.ch
			m.release(key, l)
		})
	}, nil
}

func (m *memoryLocker) release(key string, l *keyLock) {
	m.mu.Lock()
	defer m.mu.Unlock()

	l.refs--
	if l.refs == 0 {
		delete(m.locks, key)
	}
}
