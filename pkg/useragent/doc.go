// Package useragent is a keyword-and-pattern user-agent signature provider
// for pkg/clientinfo. It matches a raw User-Agent string against curated
// keyword sets and pre-compiled version patterns and produces the free-text
// labels ("Windows", "Blink", "Mobile Safari", ...) the classification
// tables consume, plus mobile and bot indicators.
//
// Matching is plain-string look-ups backed by a handful of compiled regular
// expressions for version extraction, so it is cheap enough to run inline on
// every request. There is no device database; unrecognized agents yield
// clientinfo.ErrNoMatch and the profile falls back to its defaults.
//
// # Usage
//
//	profile := clientinfo.New(
//		clientinfo.WithUserAgent(r.UserAgent()),
//		clientinfo.WithProvider(useragent.New()),
//	)
package useragent
