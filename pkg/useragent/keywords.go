package useragent

import "strings"

// keywordSet optimizes substring checks with a map of candidate keywords.
type keywordSet map[string]struct{}

func newKeywordSet(keywords ...string) keywordSet {
	result := make(keywordSet, len(keywords))
	for _, word := range keywords {
		result[word] = struct{}{}
	}
	return result
}

func (k keywordSet) contains(s string) bool {
	for keyword := range k {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

// Device-class keyword sets. Bot detection covers crawlers, social media
// preview fetchers and monitoring tools.
var (
	botKeywords = newKeywordSet(
		"bot", "spider", "crawler", "archiver", "slurp", "daum", "sogou",
		"yeti", "facebookexternalhit", "whatsapp", "telegram", "lighthouse",
		"monitor", "validator", "fetcher", "scraper", "curl", "wget",
		"python-requests", "headless",
	)
	mobileKeywords = newKeywordSet(
		"mobile", "iphone", "ipod", "android", "windows phone", "iemobile",
		"blackberry", "bb10", "opera mobi", "opera mini", "nokia",
	)
)
