// Package store owns the current ledger snapshot and notifies its
// subscribers whenever a new one is published.
package store

import (
	"sync"

	"github.com/etnz/ledgerdash"
)

// Store holds the current snapshot.
//
// Snapshots are immutable, so readers never observe a partially updated one:
// Publish swaps the pointer and every reader gets either the old or the new
// snapshot.
type Store struct {
	mu      sync.RWMutex
	current *ledgerdash.Snapshot
	subs    map[int]chan *ledgerdash.Snapshot
	next    int
}

// New returns an empty store.
func New() *Store {
	return &Store{subs: make(map[int]chan *ledgerdash.Snapshot)}
}

// Current returns the current snapshot, nil before the first Publish.
func (s *Store) Current() *ledgerdash.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Publish makes snap the current snapshot and notifies the subscribers.
//
// It never blocks: a subscriber that has not consumed the previous snapshot
// only gets the latest one.
func (s *Store) Publish(snap *ledgerdash.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = snap
	for _, ch := range s.subs {
		offer(ch, snap)
	}
}

// offer replaces any pending snapshot of ch with snap.
func offer(ch chan *ledgerdash.Snapshot, snap *ledgerdash.Snapshot) {
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- snap:
	default:
	}
}

// Subscribe returns a channel receiving every published snapshot, starting
// with the current one if any, and a func to cancel the subscription. The
// channel is closed on cancel.
func (s *Store) Subscribe() (<-chan *ledgerdash.Snapshot, func()) {
	ch := make(chan *ledgerdash.Snapshot, 1)

	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = ch
	if s.current != nil {
		ch <- s.current
	}
	s.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			close(ch)
			s.mu.Unlock()
		})
	}
	return ch, cancel
}

// Subscribers returns the number of active subscriptions.
func (s *Store) Subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}
