// Package keylock provides mutual exclusion per account key.
package keylock

import (
	"sync"

	"github.com/gagliardetto/solana-go"
)

type entry struct {
	mu   sync.Mutex
	refs int
}

// Locker hands out one mutex per key. Entries are dropped once no goroutine
// holds or waits for them, so the map only grows with concurrently used keys.
type Locker struct {
	mu      sync.Mutex
	entries map[solana.PublicKey]*entry
}

func New() *Locker {
	return &Locker{entries: make(map[solana.PublicKey]*entry)}
}

// Lock blocks until key is held exclusively and returns the matching unlock.
// Locks are not reentrant.
func (l *Locker) Lock(key solana.PublicKey) (unlock func()) {
	l.mu.Lock()
	e, ok := l.entries[key]
	if !ok {
		e = &entry{}
		l.entries[key] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()

	var once sync.Once

	return func() {
		once.Do(func() {
			e.mu.Unlock()

			l.mu.Lock()
			e.refs--
			if e.refs == 0 {
				delete(l.entries, key)
			}
			l.mu.Unlock()
		})
	}
}

// Len returns the number of keys currently held or waited on.
func (l *Locker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.entries)
}
