package lock

import (
	"context"
	"sync"
	"time"

	"github.com/metinatakli/seat-reservation-engine/internal/domain"
)

const DefaultWaitTimeout = 5 * time.Second

// KeyedLocker is an in-process ShowtimeLocker. Each showtime gets a one-slot
// semaphore that lives only while someone holds or waits for it.
type KeyedLocker struct {
	mu          sync.Mutex
	entries     map[string]*keyedEntry
	waitTimeout time.Duration
}

type keyedEntry struct {
	sem  chan struct{}
	refs int
}

func NewKeyedLocker(waitTimeout time.Duration) *KeyedLocker {
	if waitTimeout <= 0 {
		waitTimeout = DefaultWaitTimeout
	}

	return &KeyedLocker{
		entries:     make(map[string]*keyedEntry),
		waitTimeout: waitTimeout,
	}
}

func (l *KeyedLocker) Lock(ctx context.Context, showtimeID string) (func(), error) {
	entry := l.acquireEntry(showtimeID)

	timer := time.NewTimer(l.waitTimeout)
	defer timer.Stop()

	select {
	case entry.sem <- struct{}{}:
	case <-timer.C:
		l.releaseEntry(showtimeID)
		return nil, domain.ErrBusy
	case <-ctx.Done():
		l.releaseEntry(showtimeID)
		return nil, ctx.Err()
	}

	var once sync.Once
	unlock := func() {
		once.Do(func() {
			<-entry.sem
			l.releaseEntry(showtimeID)
		})
	}

	return unlock, nil
}

func (l *KeyedLocker) acquireEntry(key string) *keyedEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.entries[key]
	if !ok {
		entry = &keyedEntry{sem: make(chan struct{}, 1)}
		l.entries[key] = entry
	}
	entry.refs++

	return entry
}

func (l *KeyedLocker) releaseEntry(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := l.entries[key]
	entry.refs--
	if entry.refs == 0 {
		delete(l.entries, key)
	}
}

// size is the number of showtimes currently held or waited on.
func (l *KeyedLocker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.entries)
}
