package clientinfo

import "errors"

var (
	// ErrNoMatch is returned by a Provider when the user agent cannot be
	// matched against its signature database. The profile records it as an
	// absent result; it is never surfaced to field accessors.
	ErrNoMatch = errors.New("no signature match for user agent")

	// ErrProviderUnavailable wraps infrastructure failures from a Provider,
	// as opposed to a clean no-match outcome.
	ErrProviderUnavailable = errors.New("signature provider unavailable")

	// ErrInvalidOverride is returned when a table override document references
	// an unknown classification code.
	ErrInvalidOverride = errors.New("invalid classification table override")

	// ErrFailedToParseOverrides is returned when an override document is not
	// valid YAML.
	ErrFailedToParseOverrides = errors.New("failed to parse table overrides")
)
