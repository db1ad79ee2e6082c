package clientinfo

import (
	"errors"
	"fmt"
	"maps"

	"gopkg.in/yaml.v3"
)

// overridesDoc is the YAML shape for classification table overrides:
//
//	platforms:
//	  HarmonyOS: android
//	engines:
//	  Goanna: gecko
//	browsers:
//	  Vivaldi: chrome
//
// Keys are provider labels, values are classification codes.
type overridesDoc struct {
	Platforms map[string]string `yaml:"platforms"`
	Engines   map[string]string `yaml:"engines"`
	Browsers  map[string]string `yaml:"browsers"`
}

// Code sets used to validate override values. The Other codes are excluded
// on purpose: mapping a label to the fallback is a no-op and almost always a
// typo in the document.
var (
	validPlatforms = codeSet(
		PlatformWindows, PlatformWindowsPhone, PlatformWindowsCE,
		PlatformIPhone, PlatformIPad, PlatformIPod, PlatformIOS,
		PlatformMac, PlatformLinux, PlatformBlackBerry, PlatformAndroid,
	)
	validEngines = codeSet(
		EngineTrident, EngineEdge, EngineWebkit, EngineBlink,
		EngineGecko, EnginePresto, EngineKHTML, EngineAmaya,
	)
	validBrowsers = codeSet(
		BrowserIE, BrowserEdge, BrowserFirefox, BrowserOpera,
		BrowserChrome, BrowserSafari, BrowserBlackBerry, BrowserAndroid,
	)
)

func codeSet[T ~string](codes ...T) map[string]T {
	set := make(map[string]T, len(codes))
	for _, c := range codes {
		set[string(c)] = c
	}
	return set
}

// WithOverrides returns a copy of the tables extended with the label
// mappings from a YAML document. Overridden labels win over the base tables;
// the receiver is left untouched. An unknown classification code fails the
// whole document with ErrInvalidOverride.
func (t Tables) WithOverrides(doc []byte) (Tables, error) {
	var o overridesDoc
	if err := yaml.Unmarshal(doc, &o); err != nil {
		return Tables{}, errors.Join(ErrFailedToParseOverrides, err)
	}

	out := Tables{
		platforms: maps.Clone(t.platforms),
		engines:   maps.Clone(t.engines),
		browsers:  maps.Clone(t.browsers),
	}

	for label, code := range o.Platforms {
		p, ok := validPlatforms[code]
		if !ok {
			return Tables{}, fmt.Errorf("%w: platform label %q: unknown code %q", ErrInvalidOverride, label, code)
		}
		out.platforms[label] = p
	}
	for label, code := range o.Engines {
		e, ok := validEngines[code]
		if !ok {
			return Tables{}, fmt.Errorf("%w: engine label %q: unknown code %q", ErrInvalidOverride, label, code)
		}
		out.engines[label] = e
	}
	for label, code := range o.Browsers {
		b, ok := validBrowsers[code]
		if !ok {
			return Tables{}, fmt.Errorf("%w: browser label %q: unknown code %q", ErrInvalidOverride, label, code)
		}
		out.browsers[label] = b
	}

	return out, nil
}
