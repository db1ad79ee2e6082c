package useragent

import (
	"regexp"
	"strings"
)

// OS label constants match the platform classification tables in
// pkg/clientinfo; spellings are compatibility-critical.
const (
	osWindows      = "Windows"
	osWindowsPhone = "Windows Phone"
	osWindowsCE    = "Windows CE"
	osIPhone       = "iPhone"
	osIPad         = "iPad"
	osIPod         = "iPod"
	osMac          = "Mac"
	osUbuntu       = "Ubuntu"
	osLinux        = "Linux"
	osBlackBerry   = "BlackBerry OS"
	osAndroid      = "Android"
)

var (
	windowsNTVersion    = regexp.MustCompile(`windows nt ([\d.]+)`)
	windowsPhoneVersion = regexp.MustCompile(`windows phone (?:os )?([\d.]+)`)
	iosVersion          = regexp.MustCompile(`os ([\d_]+)`)
	macVersion          = regexp.MustCompile(`mac os x ([\d_.]+)`)
	androidVersion      = regexp.MustCompile(`android ([\d.]+)`)
	blackberryVersion   = regexp.MustCompile(`version/([\d.]+)`)
)

// parseOS identifies the operating system and its version from a lowercased
// user agent. Order reflects typical web traffic: Windows first, then the
// mobile OSes. Returns empty strings when nothing matches.
func parseOS(lowerUA string) (name, version string) {
	switch {
	case strings.Contains(lowerUA, "windows phone"):
		return osWindowsPhone, firstMatch(lowerUA, windowsPhoneVersion)
	case strings.Contains(lowerUA, "windows ce"):
		return osWindowsCE, ""
	case strings.Contains(lowerUA, "windows"):
		return osWindows, firstMatch(lowerUA, windowsNTVersion)
	case strings.Contains(lowerUA, "iphone"):
		return osIPhone, iosStyleVersion(lowerUA)
	case strings.Contains(lowerUA, "ipad"):
		return osIPad, iosStyleVersion(lowerUA)
	case strings.Contains(lowerUA, "ipod"):
		return osIPod, iosStyleVersion(lowerUA)
	case strings.Contains(lowerUA, "macintosh"), strings.Contains(lowerUA, "mac os x"):
		return osMac, strings.ReplaceAll(firstMatch(lowerUA, macVersion), "_", ".")
	case strings.Contains(lowerUA, "android"):
		return osAndroid, firstMatch(lowerUA, androidVersion)
	case strings.Contains(lowerUA, "blackberry"), strings.Contains(lowerUA, "bb10"):
		return osBlackBerry, firstMatch(lowerUA, blackberryVersion)
	case strings.Contains(lowerUA, "ubuntu"):
		return osUbuntu, ""
	case strings.Contains(lowerUA, "linux"), strings.Contains(lowerUA, "x11"):
		return osLinux, ""
	}
	return "", ""
}

// iosStyleVersion extracts the "OS 17_5" style version used by Apple mobile
// devices, normalized to dots.
func iosStyleVersion(lowerUA string) string {
	return strings.ReplaceAll(firstMatch(lowerUA, iosVersion), "_", ".")
}

// firstMatch returns the first capture group of a regex match, empty when
// the pattern does not match. Versions are capped to avoid pathological
// input inflating downstream storage.
func firstMatch(s string, re *regexp.Regexp) string {
	matches := re.FindStringSubmatch(s)
	if len(matches) < 2 {
		return ""
	}
	version := matches[1]
	if len(version) > 20 {
		version = version[:20]
	}
	return version
}
