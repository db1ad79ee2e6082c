package useragent

import (
	"regexp"
	"sort"
	"strings"
)

// Browser label constants match the browser classification tables in
// pkg/clientinfo.
const (
	browserEdge        = "Microsoft Edge"
	browserOpera       = "Opera"
	browserOperaMobile = "Opera Mobile"
	browserChrome      = "Chrome"
	browserChromium    = "Chromium"
	browserFirefox     = "Firefox"
	browserSafari      = "Safari"
	browserSafariM     = "Mobile Safari"
	browserIE          = "Internet Explorer"
	browserBlackBerry  = "BlackBerry Browser"
	browserAndroid     = "Android Browser"
)

// browserPattern defines one browser detection rule: every keyword must be
// present, no exclude may be, and the regex extracts the version.
type browserPattern struct {
	name      string
	keywords  []string
	excludes  []string
	regex     *regexp.Regexp
	orderHint int
}

func (p browserPattern) match(lowerUA string) bool {
	for _, keyword := range p.keywords {
		if !strings.Contains(lowerUA, keyword) {
			return false
		}
	}
	for _, exclude := range p.excludes {
		if strings.Contains(lowerUA, exclude) {
			return false
		}
	}
	return true
}

// Browser detection rules in checking priority order. Chromium descendants
// embed "chrome", and every WebKit browser embeds "safari", so the more
// specific tokens must win first.
var browserPatterns = []browserPattern{
	{
		name:      browserEdge,
		keywords:  []string{"edg/"},
		regex:     regexp.MustCompile(`edg/([\d.]+)`),
		orderHint: 10,
	},
	{
		name:      browserEdge, // Legacy EdgeHTML builds
		keywords:  []string{"edge/"},
		regex:     regexp.MustCompile(`edge/([\d.]+)`),
		orderHint: 15,
	},
	{
		name:      browserOperaMobile,
		keywords:  []string{"opera mobi"},
		regex:     regexp.MustCompile(`(?:opera mobi.*version|opr)/([\d.]+)`),
		orderHint: 20,
	},
	{
		name:      browserOpera,
		keywords:  []string{"opr/"},
		regex:     regexp.MustCompile(`opr/([\d.]+)`),
		orderHint: 25,
	},
	{
		name:      browserOpera, // Presto era builds
		keywords:  []string{"opera"},
		regex:     regexp.MustCompile(`(?:opera[/ ]|version/)([\d.]+)`),
		orderHint: 30,
	},
	{
		name:      browserIE,
		keywords:  []string{"msie"},
		regex:     regexp.MustCompile(`msie ([\d.]+)`),
		orderHint: 40,
	},
	{
		name:      browserIE, // IE 11 dropped the MSIE token
		keywords:  []string{"trident/"},
		regex:     regexp.MustCompile(`rv:([\d.]+)`),
		orderHint: 45,
	},
	{
		name:      browserChromium,
		keywords:  []string{"chromium"},
		regex:     regexp.MustCompile(`chromium/([\d.]+)`),
		orderHint: 50,
	},
	{
		name:      browserChrome,
		keywords:  []string{"chrome"},
		excludes:  []string{"chromium", "edg/", "edge/", "opr/"},
		regex:     regexp.MustCompile(`chrome/([\d.]+)`),
		orderHint: 55,
	},
	{
		name:      browserFirefox,
		keywords:  []string{"firefox"},
		excludes:  []string{"seamonkey"},
		regex:     regexp.MustCompile(`firefox/([\d.]+)`),
		orderHint: 60,
	},
	{
		name:      browserBlackBerry,
		keywords:  []string{"blackberry"},
		regex:     regexp.MustCompile(`version/([\d.]+)`),
		orderHint: 70,
	},
	{
		name:      browserBlackBerry, // BB10 renamed the platform token
		keywords:  []string{"bb10"},
		regex:     regexp.MustCompile(`version/([\d.]+)`),
		orderHint: 75,
	},
	{
		name:      browserAndroid, // Stock browser: Version/x.y ... Mobile Safari
		keywords:  []string{"android", "version/", "safari"},
		excludes:  []string{"chrome", "chromium"},
		regex:     regexp.MustCompile(`version/([\d.]+)`),
		orderHint: 80,
	},
	{
		name:      browserSafariM,
		keywords:  []string{"safari", "mobile"},
		excludes:  []string{"chrome", "chromium", "android"},
		regex:     regexp.MustCompile(`version/([\d.]+)`),
		orderHint: 90,
	},
	{
		name:      browserSafari,
		keywords:  []string{"safari"},
		excludes:  []string{"chrome", "chromium", "android", "mobile"},
		regex:     regexp.MustCompile(`version/([\d.]+)`),
		orderHint: 95,
	},
}

func init() {
	sort.Slice(browserPatterns, func(i, j int) bool {
		return browserPatterns[i].orderHint < browserPatterns[j].orderHint
	})
}

// parseBrowser identifies the browser and its version from a lowercased user
// agent. Returns empty strings when no pattern matches.
func parseBrowser(lowerUA string) (name, version string) {
	for _, pattern := range browserPatterns {
		if pattern.match(lowerUA) {
			return pattern.name, firstMatch(lowerUA, pattern.regex)
		}
	}
	return "", ""
}
