package clientinfo

import "sync"

// Detection names a lazily computed profile field. Each detection runs at
// most once per profile; the flag set records which have executed.
type Detection string

const (
	DetectionPlatform       Detection = "platform"
	DetectionEngine         Detection = "engine"
	DetectionBrowser        Detection = "browser"
	DetectionRobot          Detection = "robot"
	DetectionMobile         Detection = "mobile"
	DetectionAcceptLanguage Detection = "accept_language"
	DetectionAcceptEncoding Detection = "accept_encoding"
	DetectionHeaders        Detection = "headers"
)

// Profile classifies a single client from its request headers. Every field
// is computed lazily on first access and cached for the lifetime of the
// profile; the signature provider runs at most once per profile regardless
// of how many signature-derived fields are read.
//
// A profile is intended to be request-scoped. Accessors are safe for
// concurrent use, but the expected ownership model is one goroutine per
// profile.
type Profile struct {
	mu sync.Mutex

	provider Provider
	source   Source
	tables   Tables

	userAgentRaw      string
	acceptEncodingRaw string
	acceptLanguageRaw string

	done map[Detection]struct{}

	sig         *Signature
	sigFetched  bool
	providerErr error

	platform        Platform
	platformName    string
	platformVersion string
	mobile          bool
	engine          Engine
	engineName      string
	engineVersion   string
	browser         Browser
	browserName     string
	browserVersion  string
	robot           bool
	languages       []string
	encodings       []string
	headers         map[string]string

	prefs       []langPref
	prefsParsed bool
}

// Option configures profile construction.
type Option func(*Profile)

// WithUserAgent sets the raw user-agent string explicitly, bypassing the
// source's implicit User-Agent header.
func WithUserAgent(ua string) Option {
	return func(p *Profile) { p.userAgentRaw = ua }
}

// WithAcceptEncoding sets the raw Accept-Encoding value explicitly.
func WithAcceptEncoding(ae string) Option {
	return func(p *Profile) { p.acceptEncodingRaw = ae }
}

// WithAcceptLanguage sets the raw Accept-Language value explicitly.
func WithAcceptLanguage(al string) Option {
	return func(p *Profile) { p.acceptLanguageRaw = al }
}

// WithSource sets the header source used for the header map and for filling
// raw values omitted at construction.
func WithSource(s Source) Option {
	return func(p *Profile) {
		if s != nil {
			p.source = s
		}
	}
}

// WithProvider sets the signature provider. Without one, every
// signature-derived field takes its documented default.
func WithProvider(prov Provider) Option {
	return func(p *Profile) {
		if prov != nil {
			p.provider = prov
		}
	}
}

// WithTables replaces the classification tables, e.g. with an
// override-extended set from Tables.WithOverrides.
func WithTables(t Tables) Option {
	return func(p *Profile) {
		if t.platforms != nil {
			p.tables = t
		}
	}
}

// New creates a client profile. Raw values not set explicitly are filled
// from the source's implicit User-Agent, Accept-Encoding and Accept-Language
// equivalents when a source is present.
func New(opts ...Option) *Profile {
	p := &Profile{
		tables: DefaultTables(),
		done:   make(map[Detection]struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.source != nil {
		if p.userAgentRaw == "" {
			p.userAgentRaw = implicitHeader(p.source, "User-Agent")
		}
		if p.acceptEncodingRaw == "" {
			p.acceptEncodingRaw = implicitHeader(p.source, "Accept-Encoding")
		}
		if p.acceptLanguageRaw == "" {
			p.acceptLanguageRaw = implicitHeader(p.source, "Accept-Language")
		}
	}

	return p
}

// detected reports whether a detection has already run. Callers must hold mu.
func (p *Profile) detected(d Detection) bool {
	_, ok := p.done[d]
	return ok
}

// markDetected records a completed detection. Callers must hold mu.
func (p *Profile) markDetected(d Detection) {
	p.done[d] = struct{}{}
}

// Detected reports whether the named detection has executed for this profile.
func (p *Profile) Detected(d Detection) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.detected(d)
}

// UserAgent returns the raw user-agent string the profile was built with.
func (p *Profile) UserAgent() string { return p.userAgentRaw }

// AcceptEncoding returns the raw Accept-Encoding value.
func (p *Profile) AcceptEncoding() string { return p.acceptEncodingRaw }

// AcceptLanguage returns the raw Accept-Language value.
func (p *Profile) AcceptLanguage() string { return p.acceptLanguageRaw }

// Platform returns the classified operating-system platform.
func (p *Profile) Platform() Platform {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.detectPlatform()
	return p.platform
}

// PlatformName returns the provider's free-text OS name, empty when unmatched.
func (p *Profile) PlatformName() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.detectPlatform()
	return p.platformName
}

// PlatformVersion returns the OS version, empty when unmatched.
func (p *Profile) PlatformVersion() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.detectPlatform()
	return p.platformVersion
}

// Mobile reports whether the client is a mobile device.
func (p *Profile) Mobile() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.detectMobile()
	return p.mobile
}

// Engine returns the classified rendering engine.
func (p *Profile) Engine() Engine {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.detectEngine()
	return p.engine
}

// EngineName returns the provider's free-text engine name.
func (p *Profile) EngineName() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.detectEngine()
	return p.engineName
}

// EngineVersion returns the engine version, empty when unmatched.
func (p *Profile) EngineVersion() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.detectEngine()
	return p.engineVersion
}

// Browser returns the classified browser family.
func (p *Profile) Browser() Browser {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.detectBrowser()
	return p.browser
}

// BrowserName returns the provider's free-text browser name.
func (p *Profile) BrowserName() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.detectBrowser()
	return p.browserName
}

// BrowserVersion returns the browser version, empty when unmatched.
func (p *Profile) BrowserVersion() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.detectBrowser()
	return p.browserVersion
}

// Robot reports whether the client looks like an automated agent.
func (p *Profile) Robot() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.detectRobot()
	return p.robot
}

// Languages returns the Accept-Language tokens in client order, duplicates
// and empty tokens preserved. Never triggers the signature provider.
func (p *Profile) Languages() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.detected(DetectionAcceptLanguage) {
		p.languages = ParseList(p.acceptLanguageRaw)
		p.markDetected(DetectionAcceptLanguage)
	}
	return p.languages
}

// Encodings returns the Accept-Encoding tokens in client order.
func (p *Profile) Encodings() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.detected(DetectionAcceptEncoding) {
		p.encodings = ParseList(p.acceptEncodingRaw)
		p.markDetected(DetectionAcceptEncoding)
	}
	return p.encodings
}

// Headers returns the canonical header map from the profile's source. The
// map is built at most once; without a source it is empty.
func (p *Profile) Headers() map[string]string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.detected(DetectionHeaders) {
		p.headers = normalizeHeaders(p.source)
		p.markDetected(DetectionHeaders)
	}
	return p.headers
}

// Err reports a collaborator failure from the signature provider, nil when
// the provider either succeeded or cleanly reported no match. It never
// forces a provider call on its own.
func (p *Profile) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.providerErr
}
