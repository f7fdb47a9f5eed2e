package metapi

import "errors"

// Error taxonomy mirrors what the collection API actually produces: missing
// resources, rate limiting, and responses that do not carry the promised
// shape. Connection and timeout failures are wrapped with %w so callers can
// unwrap the transport error.
var (
	ErrNotFound       = errors.New("metapi: resource not found")
	ErrRateLimited    = errors.New("metapi: rate limit exceeded")
	ErrIncompleteData = errors.New("metapi: incomplete or malformed response")
)
