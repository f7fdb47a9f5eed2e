package cache

import "time"

// Candidate identifies a live entry considered for eviction when the store
// is over capacity after expired entries have been dropped.
type Candidate struct {
	Category  Category
	Key       string
	CreatedAt time.Time
}

// EvictionOrder reports whether a should be evicted before b. The store
// tracks no usage metadata, so the order can only depend on what a
// Candidate carries.
type EvictionOrder func(a, b Candidate) bool

// OldestFirst evicts the entry with the earliest creation timestamp. It is
// the default order: deterministic, and the just-inserted entry is by
// construction the last pick.
func OldestFirst(a, b Candidate) bool {
	return a.CreatedAt.Before(b.CreatedAt)
}

type storeConfig struct {
	maxEntries int
	ttls       map[Category]time.Duration
	order      EvictionOrder
	now        func() time.Time
}

func defaultStoreConfig() storeConfig {
	return storeConfig{
		maxEntries: DefaultMaxEntries,
		ttls: map[Category]time.Duration{
			Artworks:      DefaultArtworkTTL,
			Departments:   DefaultDepartmentTTL,
			Searches:      DefaultSearchTTL,
			DepartmentIDs: DefaultDepartmentIDsTTL,
		},
		order: OldestFirst,
		now:   time.Now,
	}
}

// Option customizes a Store at construction.
type Option func(*storeConfig)

// WithMaxEntries sets the total entry ceiling across all categories.
func WithMaxEntries(n int) Option {
	return func(cfg *storeConfig) { cfg.maxEntries = n }
}

// WithTTL overrides the default TTL for one category, registering the
// category if the store does not know it yet.
func WithTTL(category Category, ttl time.Duration) Option {
	return func(cfg *storeConfig) { cfg.ttls[category] = ttl }
}

// WithEvictionOrder overrides the tie-break used when live entries must be
// evicted to restore capacity.
func WithEvictionOrder(order EvictionOrder) Option {
	return func(cfg *storeConfig) {
		if order != nil {
			cfg.order = order
		}
	}
}

// WithClock overrides the store's time source (useful for TTL tests).
func WithClock(now func() time.Time) Option {
	return func(cfg *storeConfig) {
		if now != nil {
			cfg.now = now
		}
	}
}
