package clientinfo

import (
	"net/http"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// envHeaderPrefix marks CGI-style header variables in an environment snapshot.
const envHeaderPrefix = "HTTP_"

// Source supplies the raw header material a Profile is built from. A source
// exposes either a direct all-headers capability or a CGI-style environment
// snapshot; the normalizer prefers the direct capability when present.
type Source interface {
	// Headers returns the request headers keyed by canonical name, and
	// whether the source has that capability at all.
	Headers() (map[string]string, bool)

	// Environ returns an ambient KEY=value snapshot for sources without a
	// direct header capability. HTTP_-prefixed keys are treated as headers.
	Environ() []string
}

// requestSource adapts an *http.Request into a Source.
type requestSource struct {
	r *http.Request
}

// RequestSource wraps an incoming HTTP request as a header source with the
// direct all-headers capability.
func RequestSource(r *http.Request) Source {
	return requestSource{r: r}
}

func (s requestSource) Headers() (map[string]string, bool) {
	headers := make(map[string]string, len(s.r.Header))
	for name, values := range s.r.Header {
		if len(values) > 0 {
			headers[name] = values[0]
		}
	}
	return headers, true
}

func (s requestSource) Environ() []string { return nil }

// environSource serves header material from a KEY=value snapshot, the way
// CGI and FastCGI deployments expose request headers.
type environSource struct {
	environ []string
}

// EnvironSource wraps an environment snapshot, e.g. os.Environ(), as a
// header source using the HTTP_ variable convention.
func EnvironSource(environ []string) Source {
	return environSource{environ: environ}
}

func (s environSource) Headers() (map[string]string, bool) { return nil, false }

func (s environSource) Environ() []string { return s.environ }

var headerCaser = cases.Title(language.English)

// canonicalHeaderName converts an underscore-delimited variable name into
// canonical header casing: ACCEPT_LANGUAGE becomes Accept-Language.
func canonicalHeaderName(name string) string {
	spaced := strings.ReplaceAll(name, "_", " ")
	titled := headerCaser.String(strings.ToLower(spaced))
	return strings.ReplaceAll(titled, " ", "-")
}

// normalizeHeaders builds the canonical header map for a source. With a
// direct capability the source's mapping is returned verbatim; otherwise the
// environment snapshot is scanned for HTTP_-prefixed variables. Later
// duplicates win, matching naive map population.
func normalizeHeaders(source Source) map[string]string {
	if source == nil {
		return map[string]string{}
	}

	if headers, ok := source.Headers(); ok {
		return headers
	}

	headers := make(map[string]string)
	for _, kv := range source.Environ() {
		key, value, found := strings.Cut(kv, "=")
		if !found || !strings.HasPrefix(key, envHeaderPrefix) {
			continue
		}
		name := canonicalHeaderName(strings.TrimPrefix(key, envHeaderPrefix))
		if name == "" || name == "-" {
			continue
		}
		headers[name] = value
	}
	return headers
}

// implicitHeader resolves a single conventional header from a source without
// materializing the full normalized map. Used at construction time to fill
// omitted raw values.
func implicitHeader(source Source, name string) string {
	if source == nil {
		return ""
	}

	if headers, ok := source.Headers(); ok {
		return headers[name]
	}

	envKey := envHeaderPrefix + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
	for _, kv := range source.Environ() {
		key, value, found := strings.Cut(kv, "=")
		if found && key == envKey {
			return value
		}
	}
	return ""
}
