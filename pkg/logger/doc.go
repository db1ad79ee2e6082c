// Package logger is a small factory over log/slog with environment-driven
// defaults. It produces JSON output at INFO level unless configured
// otherwise, which keeps production logs aggregation-friendly while letting
// development switch to text via LOG_FORMAT=text.
package logger
