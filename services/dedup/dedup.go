package dedup

import (
	"log"
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// DefaultTTL is how long a delivery ID is remembered. Linear retries failed
// deliveries for about a day, so anything past that window is treated as new.
const DefaultTTL = 24 * time.Hour

const maxEntries = 100_000

// DedupService remembers webhook delivery IDs in a TTL cache so redelivered
// payloads can be acknowledged without being reprocessed.
type DedupService struct {
	cache *ristretto.Cache[string, struct{}]
	ttl   time.Duration
}

// NewDedupService creates a dedup service with the given TTL. A ttl <= 0
// falls back to DefaultTTL.
func NewDedupService(ttl time.Duration) (*DedupService, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	cache, err := ristretto.NewCache(&ristretto.Config[string, struct{}]{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &DedupService{cache: cache, ttl: ttl}, nil
}

// CheckAndMark returns true if the delivery ID has not been seen before,
// marking it as seen. Returns false for duplicates. An empty ID is always
// treated as new since it cannot be correlated with anything.
func (s *DedupService) CheckAndMark(deliveryID string) bool {
	if deliveryID == "" {
		return true
	}
	if _, seen := s.cache.Get(deliveryID); seen {
		log.Printf("⚠️ Duplicate webhook delivery: %s", deliveryID)
		return false
	}
	s.cache.SetWithTTL(deliveryID, struct{}{}, 1, s.ttl)
	// Set is buffered; wait so an immediate redelivery is caught too.
	s.cache.Wait()
	return true
}

// Close releases the cache resources
func (s *DedupService) Close() {
	s.cache.Close()
}
