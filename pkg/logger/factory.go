package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/clientkit/pkg/config"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs structured logs for production log aggregation.
	FormatJSON Format = "json"
	// FormatText outputs human-readable logs for development.
	FormatText Format = "text"
)

// Option configures logger creation.
type Option func(*factoryConfig)

func WithLevel(l slog.Level) Option {
	return func(c *factoryConfig) { c.level = l }
}

// WithFormat sets output format. Panics for invalid formats so a
// misconfigured process fails at startup rather than at first log call.
func WithFormat(f Format) Option {
	return func(c *factoryConfig) {
		switch f {
		case FormatJSON, FormatText:
			c.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

// WithOutput sets a custom output destination; nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(c *factoryConfig) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds static attributes to every log record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *factoryConfig) {
		if len(attrs) > 0 {
			c.attrs = append(c.attrs, attrs...)
		}
	}
}

type factoryConfig struct {
	level  slog.Level
	format Format
	output io.Writer
	attrs  []slog.Attr
}

// Production-safe defaults: JSON at INFO.
func defaultFactoryConfig() *factoryConfig {
	return &factoryConfig{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
}

// New creates a configured slog.Logger.
func New(opts ...Option) *slog.Logger {
	cfg := defaultFactoryConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}

	var handler slog.Handler
	if cfg.format == FormatText {
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	}

	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}

	return slog.New(handler)
}

// EnvConfig holds environment-driven logger settings.
type EnvConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format Format `env:"LOG_FORMAT" envDefault:"json"`
}

// NewFromEnv builds a logger from LOG_LEVEL and LOG_FORMAT environment
// variables, applying explicit options on top.
func NewFromEnv(opts ...Option) (*slog.Logger, error) {
	var envCfg EnvConfig
	if err := config.Load(&envCfg); err != nil {
		return nil, err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(envCfg.Level)); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", envCfg.Level, err)
	}

	base := []Option{WithLevel(level), WithFormat(envCfg.Format)}
	return New(append(base, opts...)...), nil
}

// SetAsDefault installs a logger as the process-wide slog default.
func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}
