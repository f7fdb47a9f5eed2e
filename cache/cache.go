// Package cache provides the shared in-memory TTL cache that sits between
// the catalog services and the collection API client. One Store instance is
// constructed at startup and injected into every service that needs caching;
// services never hold private caches of the same data.
package cache

import (
	"errors"
	"time"
)

// Category names one of the store's independent key namespaces.
type Category string

const (
	// Artworks caches individual artwork records keyed by decimal object id.
	Artworks Category = "artworks"
	// Departments caches the department list under a single fixed key.
	Departments Category = "departments"
	// Searches caches search-result id lists keyed by normalized query.
	Searches Category = "searches"
	// DepartmentIDs caches per-department object-id lists keyed by decimal id.
	DepartmentIDs Category = "department_ids"
)

// Default time-to-live per category. Overridable per store via WithTTL and
// per call via PutTTL.
const (
	DefaultArtworkTTL       = 600 * time.Second
	DefaultDepartmentTTL    = 1800 * time.Second
	DefaultSearchTTL        = 300 * time.Second
	DefaultDepartmentIDsTTL = 180 * time.Second
)

// DefaultMaxEntries bounds the total entry count across all categories.
const DefaultMaxEntries = 1000

var (
	ErrNegativeTTL     = errors.New("cache: ttl must not be negative")
	ErrInvalidCapacity = errors.New("cache: max entries must be positive")
	ErrUnknownCategory = errors.New("cache: unknown category")
)
