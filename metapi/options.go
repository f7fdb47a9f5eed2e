package metapi

import "time"

// DefaultBaseURL points at the public Metropolitan Museum collection API.
const DefaultBaseURL = "https://collectionapi.metmuseum.org/public/collection/v1"

type clientConfig struct {
	baseURL    string
	timeout    time.Duration
	userAgent  string
	retryCount int
	retryWait  time.Duration
	rateLimit  float64
	rateBurst  int
}

func defaultClientConfig() clientConfig {
	return clientConfig{
		baseURL:    DefaultBaseURL,
		timeout:    30 * time.Second,
		userAgent:  "metcat/1.0",
		retryCount: 2,
		retryWait:  time.Second,
		rateLimit:  40, // the API asks clients to stay below 80 req/s
		rateBurst:  8,
	}
}

// Option customizes a Client at construction.
type Option func(*clientConfig)

// WithBaseURL points the client at a different API root (tests use this).
func WithBaseURL(url string) Option {
	return func(cfg *clientConfig) {
		if url != "" {
			cfg.baseURL = url
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) {
		if d > 0 {
			cfg.timeout = d
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(cfg *clientConfig) {
		if ua != "" {
			cfg.userAgent = ua
		}
	}
}

// WithRetry configures how many times a failed request is retried and the
// base wait between attempts. Only transport failures are retried; HTTP
// error statuses are not.
func WithRetry(count int, wait time.Duration) Option {
	return func(cfg *clientConfig) {
		if count >= 0 {
			cfg.retryCount = count
		}
		if wait > 0 {
			cfg.retryWait = wait
		}
	}
}

// WithRateLimit caps outgoing requests per second. A non-positive limit
// disables client-side limiting.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(cfg *clientConfig) {
		cfg.rateLimit = perSecond
		if burst > 0 {
			cfg.rateBurst = burst
		}
	}
}
