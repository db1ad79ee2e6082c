package useragent

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Direct mapping for common crawlers, checked before the generic patterns.
var botNameMap = map[string]string{
	"googlebot":           "Googlebot",
	"bingbot":             "Bingbot",
	"yandexbot":           "Yandexbot",
	"baiduspider":         "Baiduspider",
	"duckduckbot":         "DuckDuckBot",
	"twitterbot":          "Twitterbot",
	"facebookexternalhit": "Facebook",
	"linkedinbot":         "Linkedinbot",
	"slackbot":            "Slackbot",
	"telegrambot":         "Telegrambot",
	"applebot":            "Applebot",
}

// Generic bot name patterns for agents outside the direct map.
var botNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)([a-z0-9\-_]+bot)`),
	regexp.MustCompile(`(?i)([a-z0-9\-_]+spider)`),
	regexp.MustCompile(`(?i)([a-z0-9\-_]+crawler)`),
}

var botNameCaser = cases.Title(language.English)

// BotName extracts a human-readable crawler name from a user agent string,
// "Unknown Bot" when nothing identifiable is present.
func BotName(userAgent string) string {
	lowerUA := strings.ToLower(userAgent)

	for keyword, name := range botNameMap {
		if strings.Contains(lowerUA, keyword) {
			return name
		}
	}

	for _, pattern := range botNamePatterns {
		if matches := pattern.FindStringSubmatch(userAgent); len(matches) > 1 {
			return botNameCaser.String(strings.ToLower(matches[1]))
		}
	}

	return "Unknown Bot"
}
