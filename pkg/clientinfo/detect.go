package clientinfo

import "errors"

// ensureSignature runs the signature provider at most once per profile and
// returns the cached result, nil when the provider is missing, reported no
// match, or failed. All callers hold mu.
//
// The normalized header map is passed along only when it has already been
// materialized; a signature lookup never forces the header scan.
func (p *Profile) ensureSignature() *Signature {
	if p.sigFetched {
		return p.sig
	}
	p.sigFetched = true

	if p.provider == nil {
		return nil
	}

	var headers map[string]string
	if p.detected(DetectionHeaders) {
		headers = p.headers
	}

	sig, err := p.provider.Parse(p.userAgentRaw, headers)
	if err != nil {
		if !errors.Is(err, ErrNoMatch) {
			p.providerErr = errors.Join(ErrProviderUnavailable, err)
		}
		return nil
	}

	p.sig = sig
	return sig
}

// detectPlatform classifies the operating system and seeds the mobile flag
// from the device facts. Absent signature results default to PlatformOther
// with empty names. Callers hold mu.
func (p *Profile) detectPlatform() {
	if p.detected(DetectionPlatform) {
		return
	}

	if sig := p.ensureSignature(); sig != nil {
		p.platformName = sig.OSName
		p.platformVersion = sig.OSVersion
		p.mobile = sig.Mobile
		p.platform = p.tables.Platform(sig.OSName)
	} else {
		p.platform = PlatformOther
	}

	p.markDetected(DetectionPlatform)
}

// detectEngine classifies the rendering engine. Callers hold mu.
func (p *Profile) detectEngine() {
	if p.detected(DetectionEngine) {
		return
	}

	if sig := p.ensureSignature(); sig != nil {
		p.engineName = sig.EngineName
		p.engineVersion = sig.EngineVersion
		p.engine = p.tables.Engine(sig.EngineName)
	} else {
		p.engine = EngineOther
	}

	p.markDetected(DetectionEngine)
}

// detectBrowser classifies the browser family. Callers hold mu.
func (p *Profile) detectBrowser() {
	if p.detected(DetectionBrowser) {
		return
	}

	if sig := p.ensureSignature(); sig != nil {
		p.browserName = sig.BrowserName
		p.browserVersion = sig.BrowserVersion
		p.browser = p.tables.Browser(sig.BrowserName)
	} else {
		p.browser = BrowserOther
	}

	p.markDetected(DetectionBrowser)
}

// detectRobot reads the bot indicator; absent results mean false. Callers
// hold mu.
func (p *Profile) detectRobot() {
	if p.detected(DetectionRobot) {
		return
	}

	if sig := p.ensureSignature(); sig != nil {
		p.robot = sig.Bot
	}

	p.markDetected(DetectionRobot)
}

// detectMobile reads the mobile indicator directly from the signature
// result. detectPlatform seeds the same field from the device facts; both
// read the same provider bit, so whichever runs first wins and the value
// stays write-once. Callers hold mu.
func (p *Profile) detectMobile() {
	if p.detected(DetectionMobile) {
		return
	}

	if sig := p.ensureSignature(); sig != nil {
		p.mobile = sig.Mobile
	}

	p.markDetected(DetectionMobile)
}
