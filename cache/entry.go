package cache

import "time"

// Entry is an immutable value holder: payload, creation timestamp and TTL.
// It is never mutated after construction, so it is safe to read from any
// number of goroutines without synchronization. Expiry is evaluated lazily
// at read time; removing expired entries is the Store's job, not the
// Entry's.
type Entry struct {
	payload   any
	createdAt time.Time
	ttl       time.Duration
}

// NewEntry stamps payload with the current time. A zero TTL is valid and
// means "expires immediately after creation"; a negative TTL is a caller
// error.
func NewEntry(payload any, ttl time.Duration) (*Entry, error) {
	return newEntryAt(payload, ttl, time.Now())
}

func newEntryAt(payload any, ttl time.Duration, now time.Time) (*Entry, error) {
	if ttl < 0 {
		return nil, ErrNegativeTTL
	}
	return &Entry{payload: payload, createdAt: now, ttl: ttl}, nil
}

// Value returns the payload together with an expiry flag computed at call
// time. It never fails due to expiry; the flag is informational.
func (e *Entry) Value() (any, bool) {
	return e.payload, e.expiredAt(time.Now())
}

// CreatedAt returns the entry's creation timestamp.
func (e *Entry) CreatedAt() time.Time { return e.createdAt }

// TTL returns the entry's time-to-live.
func (e *Entry) TTL() time.Duration { return e.ttl }

// Expired reports whether the entry's TTL has elapsed.
func (e *Entry) Expired() bool { return e.expiredAt(time.Now()) }

// expiredAt implements the freshness rule: an entry is expired once the
// elapsed time strictly exceeds its TTL. A zero TTL is always expired, so a
// zero-TTL put followed by a get is a miss even under a frozen clock.
func (e *Entry) expiredAt(now time.Time) bool {
	if e.ttl == 0 {
		return true
	}
	return now.Sub(e.createdAt) > e.ttl
}
