package clientinfo

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/clientkit/pkg/config"
)

// middlewareConfig collects middleware construction settings.
type middlewareConfig struct {
	provider Provider
	tables   Tables
	logger   *slog.Logger
}

// MiddlewareOption configures the profile middleware.
type MiddlewareOption func(*middlewareConfig)

// WithMiddlewareProvider sets the signature provider for request profiles.
func WithMiddlewareProvider(p Provider) MiddlewareOption {
	return func(c *middlewareConfig) {
		if p != nil {
			c.provider = p
		}
	}
}

// WithMiddlewareTables sets custom classification tables for request profiles.
func WithMiddlewareTables(t Tables) MiddlewareOption {
	return func(c *middlewareConfig) {
		if t.platforms != nil {
			c.tables = t
		}
	}
}

// WithLogger enables a debug log line per request with the classified
// platform and browser. Logging forces those detections eagerly, so leave it
// unset on hot paths that only need the raw headers.
func WithLogger(l *slog.Logger) MiddlewareOption {
	return func(c *middlewareConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Middleware creates HTTP middleware that builds a client profile from each
// request and stores it in the request context for downstream handlers.
func Middleware(opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{tables: DefaultTables()}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			profile := New(
				WithSource(RequestSource(r)),
				WithProvider(cfg.provider),
				WithTables(cfg.tables),
			)
			if cfg.logger != nil {
				cfg.logger.DebugContext(r.Context(), "client classified",
					slog.String("platform", string(profile.Platform())),
					slog.String("browser", string(profile.Browser())),
					slog.Bool("robot", profile.Robot()),
				)
			}
			ctx := SetToContext(r.Context(), profile)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// MiddlewareConfig holds the environment-driven middleware settings.
type MiddlewareConfig struct {
	// LogDetections enables the per-request debug log line.
	LogDetections bool `env:"CLIENTINFO_LOG_DETECTIONS" envDefault:"false"`
}

// NewMiddlewareFromEnv builds the middleware from CLIENTINFO_* environment
// variables, applying any explicit options on top. When detection logging is
// enabled and no logger was supplied, slog.Default is used.
func NewMiddlewareFromEnv(opts ...MiddlewareOption) (func(http.Handler) http.Handler, error) {
	var envCfg MiddlewareConfig
	if err := config.Load(&envCfg); err != nil {
		return nil, err
	}

	cfg := &middlewareConfig{tables: DefaultTables()}
	for _, opt := range opts {
		opt(cfg)
	}
	if envCfg.LogDetections && cfg.logger == nil {
		opts = append(opts, WithLogger(slog.Default()))
	}

	return Middleware(opts...), nil
}
