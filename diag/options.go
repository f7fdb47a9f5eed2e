package diag

import (
	"log/slog"
	"time"
)

type serverConfig struct {
	address  string
	shutdown time.Duration
	log      *slog.Logger
}

func defaultConfig() serverConfig {
	return serverConfig{
		address:  "127.0.0.1:8091",
		shutdown: 5 * time.Second,
		log:      slog.New(slog.DiscardHandler),
	}
}

// Option customizes the diagnostics server.
type Option func(*serverConfig)

// WithAddress sets the listen address.
func WithAddress(addr string) Option {
	return func(cfg *serverConfig) {
		if addr != "" {
			cfg.address = addr
		}
	}
}

// WithShutdownTimeout bounds the graceful shutdown.
func WithShutdownTimeout(d time.Duration) Option {
	return func(cfg *serverConfig) {
		if d > 0 {
			cfg.shutdown = d
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(cfg *serverConfig) {
		if log != nil {
			cfg.log = log
		}
	}
}
