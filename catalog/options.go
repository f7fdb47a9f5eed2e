package catalog

import "log/slog"

type serviceConfig struct {
	log         *slog.Logger
	concurrency int
}

func defaultServiceConfig() serviceConfig {
	return serviceConfig{
		log:         slog.New(slog.DiscardHandler),
		concurrency: 4,
	}
}

// ServiceOption customizes a catalog service at construction.
type ServiceOption func(*serviceConfig)

// WithLogger sets the structured logger used by the service.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(cfg *serviceConfig) {
		if log != nil {
			cfg.log = log
		}
	}
}

// WithFetchConcurrency bounds how many artwork details are resolved in
// parallel while expanding a search result.
func WithFetchConcurrency(n int) ServiceOption {
	return func(cfg *serviceConfig) {
		if n > 0 {
			cfg.concurrency = n
		}
	}
}
