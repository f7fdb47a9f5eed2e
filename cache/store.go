package cache

import (
	"sort"
	"sync"
	"time"
)

// Store is the shared data store: four independent category tables mapping
// keys to entries, with lazy TTL expiry, a global entry ceiling enforced by
// synchronous cleanup passes, and hit/miss accounting.
//
// All work happens inside the caller's goroutine during Get/Put; the store
// owns no timers and spawns nothing. A single coarse mutex serializes every
// operation, and no operation performs I/O while holding it: population on
// miss is the caller's responsibility, which keeps network concerns out of
// the cache entirely.
type Store struct {
	mu       sync.Mutex
	cfg      storeConfig
	tables   map[Category]map[string]*Entry
	hits     map[Category]uint64
	misses   map[Category]uint64
	cleanups uint64
}

// New builds a Store covering the four standard categories with their
// default TTLs. A non-positive ceiling or a negative per-category TTL is
// rejected here rather than coerced.
func New(opts ...Option) (*Store, error) {
	cfg := defaultStoreConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.maxEntries <= 0 {
		return nil, ErrInvalidCapacity
	}
	for _, ttl := range cfg.ttls {
		if ttl < 0 {
			return nil, ErrNegativeTTL
		}
	}

	s := &Store{
		cfg:    cfg,
		tables: make(map[Category]map[string]*Entry, len(cfg.ttls)),
		hits:   make(map[Category]uint64, len(cfg.ttls)),
		misses: make(map[Category]uint64, len(cfg.ttls)),
	}
	for category := range cfg.ttls {
		s.tables[category] = make(map[string]*Entry)
	}
	return s, nil
}

// Get looks up key in the category table. An absent key is a miss; a
// present but expired entry is removed and counted as a miss; a fresh entry
// is a hit. A miss is a normal outcome, not an error, and Get never calls
// the remote API on the caller's behalf.
//
// Payloads returned from Get are owned by the cache and must be treated as
// read-only by every consumer.
func (s *Store) Get(category Category, key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, ok := s.tables[category]
	if !ok {
		return nil, false
	}
	entry, ok := table[key]
	if !ok {
		s.misses[category]++
		return nil, false
	}
	if entry.expiredAt(s.cfg.now()) {
		delete(table, key)
		s.misses[category]++
		return nil, false
	}
	s.hits[category]++
	return entry.payload, true
}

// Put inserts or replaces the entry for key using the category's default
// TTL. A replaced entry gets a fresh creation timestamp; entries are never
// refreshed in place.
func (s *Store) Put(category Category, key string, payload any) error {
	// ttls is immutable after New, no lock needed here.
	ttl, ok := s.cfg.ttls[category]
	if !ok {
		return ErrUnknownCategory
	}
	return s.PutTTL(category, key, payload, ttl)
}

// PutTTL is Put with an explicit TTL. It never fails due to capacity: when
// the insert pushes the store over its ceiling, a cleanup pass runs
// synchronously before returning, evicting other entries rather than
// rejecting the new one.
func (s *Store) PutTTL(category Category, key string, payload any, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, ok := s.tables[category]
	if !ok {
		return ErrUnknownCategory
	}
	entry, err := newEntryAt(payload, ttl, s.cfg.now())
	if err != nil {
		return err
	}
	table[key] = entry
	if s.totalLocked() > s.cfg.maxEntries {
		s.cleanupLocked()
	}
	return nil
}

// Invalidate removes a single entry and reports whether it was present.
func (s *Store) Invalidate(category Category, key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, ok := s.tables[category]
	if !ok {
		return false
	}
	if _, ok := table[key]; !ok {
		return false
	}
	delete(table, key)
	return true
}

// ClearCategory drops every entry in one category. Counters are untouched;
// only the full Clear resets them.
func (s *Store) ClearCategory(category Category) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tables[category]; ok {
		s.tables[category] = make(map[string]*Entry)
	}
}

// Clear empties every category and resets all hit, miss and cleanup
// counters. A manual clear is distinct from an automatic cleanup pass and
// increments nothing.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for category := range s.tables {
		s.tables[category] = make(map[string]*Entry)
	}
	for category := range s.hits {
		delete(s.hits, category)
	}
	for category := range s.misses {
		delete(s.misses, category)
	}
	s.cleanups = 0
}

// Prune runs a cleanup pass on demand and returns how many entries each
// category lost. Like the automatic trigger, it counts as one pass.
func (s *Store) Prune() map[Category]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := make(map[Category]int, len(s.tables))
	for category, table := range s.tables {
		before[category] = len(table)
	}
	s.cleanupLocked()

	removed := make(map[Category]int, len(s.tables))
	for category, table := range s.tables {
		removed[category] = before[category] - len(table)
	}
	return removed
}

// Len returns the total entry count across all categories.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalLocked()
}

func (s *Store) totalLocked() int {
	total := 0
	for _, table := range s.tables {
		total += len(table)
	}
	return total
}

// cleanupLocked is the cleanup pass of the capacity ceiling: drop every
// expired entry first, then, if the store is still over its ceiling, evict
// live entries in the configured order until it fits. The pass counter
// tracks passes, not removed entries, so it advances even when nothing was
// evicted.
func (s *Store) cleanupLocked() {
	now := s.cfg.now()
	for _, table := range s.tables {
		for key, entry := range table {
			if entry.expiredAt(now) {
				delete(table, key)
			}
		}
	}

	if over := s.totalLocked() - s.cfg.maxEntries; over > 0 {
		candidates := make([]Candidate, 0, s.totalLocked())
		for category, table := range s.tables {
			for key, entry := range table {
				candidates = append(candidates, Candidate{
					Category:  category,
					Key:       key,
					CreatedAt: entry.createdAt,
				})
			}
		}
		// Ties under the configured order fall back to category and key
		// so a pass removes the same entries regardless of map iteration.
		sort.Slice(candidates, func(i, j int) bool {
			a, b := candidates[i], candidates[j]
			if s.cfg.order(a, b) {
				return true
			}
			if s.cfg.order(b, a) {
				return false
			}
			if a.Category != b.Category {
				return a.Category < b.Category
			}
			return a.Key < b.Key
		})
		for i := 0; i < over && i < len(candidates); i++ {
			delete(s.tables[candidates[i].Category], candidates[i].Key)
		}
	}
	s.cleanups++
}
