// Package clientinfo classifies an HTTP client's identity signals into a
// small set of stable categorical facts: operating-system platform,
// rendering engine, browser family, mobile and robot flags, plus the
// client's ordered encoding and language preferences.
//
// It exists so request-handling code can branch on cheap enumerated codes
// instead of re-parsing free-text headers. A Profile is created once per
// request, defers every detection until the field is actually read, runs the
// signature provider at most once regardless of how many signature-derived
// fields are read, and caches every result for the life of the instance.
//
// # Architecture
//
// Profile is a memoizing façade over four small pieces:
//
//   - ParseList splits comma-delimited header values into ordered tokens.
//   - normalizeHeaders builds the canonical header map from a Source, either
//     a direct all-headers capability or a CGI-style HTTP_ environment scan.
//   - Tables map the free-text labels a Provider produces onto closed
//     Platform/Engine/Browser codes with an explicit Other fallback.
//   - The detect* routines call the Provider once, cache its Signature, and
//     translate its fields through the tables.
//
// A provider's "no match" is never an error: the absence is cached and every
// dependent field takes its documented default (Other codes, empty names,
// false flags). Infrastructure failures from the provider are kept separate
// and reported by Profile.Err.
//
// # Usage
//
//	profile := clientinfo.New(
//		clientinfo.WithSource(clientinfo.RequestSource(r)),
//		clientinfo.WithProvider(useragent.New()),
//	)
//
//	if profile.Robot() {
//		// skip heavy rendering
//	}
//
//	switch profile.Platform() {
//	case clientinfo.PlatformAndroid, clientinfo.PlatformIOS:
//		// serve mobile assets
//	}
//
// Or attach a profile to every request:
//
//	mux := http.NewServeMux()
//	handler := clientinfo.Middleware(
//		clientinfo.WithMiddlewareProvider(useragent.New()),
//	)(mux)
//
//	// later, in a handler:
//	profile := clientinfo.FromContext(r.Context())
//
// # Concurrency
//
// A Profile is designed for request-scoped, single-goroutine ownership. The
// lazy check-then-set sequences are nevertheless guarded by a per-profile
// mutex, so sharing an instance across goroutines will not produce duplicate
// or torn detections. Profiles are never shared by the package itself; no
// state crosses instances.
package clientinfo
