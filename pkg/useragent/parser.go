package useragent

import (
	"strings"

	"github.com/dmitrymomot/clientkit/pkg/clientinfo"
)

// Parser is a signature provider backed by the package's keyword sets and
// version patterns. It is stateless and safe for concurrent use; a single
// instance can serve every request.
type Parser struct{}

// New creates a Parser.
func New() *Parser {
	return &Parser{}
}

// Parse matches a user agent string and returns its structured signature.
// The headers argument is accepted for interface compatibility and unused:
// this provider works from the user agent alone. Returns
// clientinfo.ErrNoMatch when nothing at all can be identified.
func (p *Parser) Parse(userAgent string, _ map[string]string) (*clientinfo.Signature, error) {
	ua := strings.TrimSpace(userAgent)
	if ua == "" {
		return nil, clientinfo.ErrNoMatch
	}

	lowerUA := strings.ToLower(ua)

	sig := &clientinfo.Signature{
		Mobile: mobileKeywords.contains(lowerUA),
		Bot:    botKeywords.contains(lowerUA),
	}
	sig.OSName, sig.OSVersion = parseOS(lowerUA)
	sig.EngineName, sig.EngineVersion = parseEngine(lowerUA)
	sig.BrowserName, sig.BrowserVersion = parseBrowser(lowerUA)

	// Crawlers rarely carry a browser token; surface the bot name instead so
	// logs stay readable.
	if sig.Bot && sig.BrowserName == "" {
		sig.BrowserName = BotName(ua)
	}

	if sig.OSName == "" && sig.EngineName == "" && sig.BrowserName == "" &&
		!sig.Mobile && !sig.Bot {
		return nil, clientinfo.ErrNoMatch
	}

	return sig, nil
}
