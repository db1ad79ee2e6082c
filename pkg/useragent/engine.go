package useragent

import (
	"regexp"
	"strings"
)

// Engine label constants match the engine classification tables in
// pkg/clientinfo.
const (
	engineTrident     = "Trident"
	engineEdgeHTML    = "EdgeHTML"
	engineBlink       = "Blink"
	engineAppleWebKit = "AppleWebKit"
	engineWebkit      = "Webkit"
	engineGecko       = "Gecko"
	enginePresto      = "Presto"
	engineKHTML       = "KHTML"
	engineAmaya       = "Amaya"
)

var (
	tridentVersion  = regexp.MustCompile(`trident/([\d.]+)`)
	edgeHTMLVersion = regexp.MustCompile(`edge/([\d.]+)`)
	webkitVersion   = regexp.MustCompile(`applewebkit/([\d.]+)`)
	geckoVersion    = regexp.MustCompile(`rv:([\d.]+)`)
	prestoVersion   = regexp.MustCompile(`presto/([\d.]+)`)
	khtmlVersion    = regexp.MustCompile(`khtml/([\d.]+)`)
	amayaVersion    = regexp.MustCompile(`amaya/([\d.]+)`)
)

// parseEngine identifies the rendering engine from a lowercased user agent.
// Chromium descendants report AppleWebKit for compatibility, so the Blink
// check keys off the Chrome/Opera/Edge tokens before falling back to the
// WebKit family.
func parseEngine(lowerUA string) (name, version string) {
	switch {
	case strings.Contains(lowerUA, "trident/"):
		return engineTrident, firstMatch(lowerUA, tridentVersion)
	case strings.Contains(lowerUA, "edge/"):
		return engineEdgeHTML, firstMatch(lowerUA, edgeHTMLVersion)
	case strings.Contains(lowerUA, "applewebkit/"):
		if strings.Contains(lowerUA, "chrome") ||
			strings.Contains(lowerUA, "chromium") ||
			strings.Contains(lowerUA, "edg/") ||
			strings.Contains(lowerUA, "opr/") {
			return engineBlink, firstMatch(lowerUA, webkitVersion)
		}
		return engineAppleWebKit, firstMatch(lowerUA, webkitVersion)
	case strings.Contains(lowerUA, "webkit"):
		return engineWebkit, ""
	case strings.Contains(lowerUA, "khtml"):
		return engineKHTML, firstMatch(lowerUA, khtmlVersion)
	case strings.Contains(lowerUA, "gecko"):
		// "like Gecko" is a compatibility token, not a Gecko engine.
		if strings.Contains(lowerUA, "like gecko") {
			break
		}
		return engineGecko, firstMatch(lowerUA, geckoVersion)
	case strings.Contains(lowerUA, "presto"):
		return enginePresto, firstMatch(lowerUA, prestoVersion)
	case strings.Contains(lowerUA, "amaya"):
		return engineAmaya, firstMatch(lowerUA, amayaVersion)
	}
	return "", ""
}
