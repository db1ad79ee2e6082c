package clientinfo

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength caps header parsing. RFC 7231 sets no limit, but
// 4KB covers legitimate headers while bounding work on hostile input.
const maxAcceptLanguageLength = 4096

// langPref is a language tag with its quality value.
type langPref struct {
	lang string
	q    float64
}

// parseLangPrefs parses an Accept-Language header per RFC 7231, ordering
// tags by quality descending and dropping malformed entries.
func parseLangPrefs(header string) []langPref {
	if header == "" {
		return nil
	}

	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var prefs []langPref

	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		langAndQ := strings.Split(part, ";")
		lang := strings.ToLower(strings.TrimSpace(langAndQ[0]))
		q := 1.0

		if len(langAndQ) > 1 {
			qPart := strings.TrimSpace(langAndQ[1])
			if strings.HasPrefix(qPart, "q=") {
				if qVal, err := strconv.ParseFloat(qPart[2:], 64); err == nil && qVal >= 0 && qVal <= 1 {
					q = qVal
				}
			}
		}

		if lang != "" {
			prefs = append(prefs, langPref{lang: lang, q: q})
		}
	}

	slices.SortStableFunc(prefs, func(a, b langPref) int {
		return cmp.Compare(b.q, a.q)
	})

	return prefs
}

// PreferredLanguage negotiates the best supported language for the client's
// Accept-Language preferences. Exact tag matches (en-us) are tried across
// all preferences first, then base-language matches (en-us -> en). Returns
// an empty string when nothing is supported or no preferences exist.
//
// It keeps its own parsed cache and is independent of Languages, which
// reports raw tokens in client order.
func (p *Profile) PreferredLanguage(supported ...string) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.prefsParsed {
		p.prefs = parseLangPrefs(p.acceptLanguageRaw)
		p.prefsParsed = true
	}

	if len(p.prefs) == 0 || len(supported) == 0 {
		return ""
	}

	normalized := make([]string, len(supported))
	for i, lang := range supported {
		normalized[i] = strings.ToLower(lang)
	}

	for _, pref := range p.prefs {
		if i := slices.Index(normalized, pref.lang); i >= 0 {
			return supported[i]
		}
	}

	for _, pref := range p.prefs {
		base, _, found := strings.Cut(pref.lang, "-")
		if !found {
			continue
		}
		if i := slices.Index(normalized, base); i >= 0 {
			return supported[i]
		}
	}

	return ""
}
