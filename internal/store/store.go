// Package store provides the in-memory authoritative record collection.
package store

import (
	"sync"

	"github.com/labops/labstock/internal/models"
)

// Subscriber is notified with the new collection after each successful
// Replace. Subscribers exist for UI freshness only; no core operation
// depends on them for correctness.
type Subscriber func(records []models.StockRecord)

// RecordStore owns the canonical in-memory record collection. It exposes
// an atomic read and an atomic whole-collection replace; no partial
// mutation API exists, so a reader can never observe a half-updated
// collection.
type RecordStore struct {
	mu          sync.RWMutex
	records     []models.StockRecord
	subscribers []Subscriber
}

// New creates a RecordStore holding the given initial collection.
func New(initial []models.StockRecord) *RecordStore {
	return &RecordStore{records: models.CloneRecords(initial)}
}

// Current returns a copy of the current collection in its natural
// (unsorted) order.
func (s *RecordStore) Current() []models.StockRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CloneRecords(s.records)
}

// Len returns the number of records in the store.
func (s *RecordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Replace atomically swaps the entire collection and notifies subscribers
// with a copy of the new state.
func (s *RecordStore) Replace(records []models.StockRecord) {
	s.mu.Lock()
	s.records = models.CloneRecords(records)
	subscribers := s.subscribers
	s.mu.Unlock()

	for _, notify := range subscribers {
		notify(models.CloneRecords(records))
	}
}

// Subscribe registers a subscriber for post-replace notifications.
func (s *RecordStore) Subscribe(sub Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, sub)
}
