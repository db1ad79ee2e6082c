package clientinfo

// Platform identifies the operating-system family of a client.
type Platform string

const (
	PlatformWindows      Platform = "windows"
	PlatformWindowsPhone Platform = "windows_phone"
	PlatformWindowsCE    Platform = "windows_ce"
	PlatformIPhone       Platform = "iphone"
	PlatformIPad         Platform = "ipad"
	PlatformIPod         Platform = "ipod"
	PlatformIOS          Platform = "ios"
	PlatformMac          Platform = "mac"
	PlatformLinux        Platform = "linux"
	PlatformBlackBerry   Platform = "blackberry"
	PlatformAndroid      Platform = "android"

	// PlatformOther is the fallback for labels outside the platform table.
	PlatformOther Platform = "other"
)

// Engine identifies the rendering engine of a client.
type Engine string

const (
	EngineTrident Engine = "trident"
	EngineEdge    Engine = "edge"
	EngineWebkit  Engine = "webkit"
	EngineBlink   Engine = "blink"
	EngineGecko   Engine = "gecko"
	EnginePresto  Engine = "presto"
	EngineKHTML   Engine = "khtml"
	EngineAmaya   Engine = "amaya"

	// EngineOther is the fallback for labels outside the engine table.
	EngineOther Engine = "other"
)

// Browser identifies the browser family of a client.
type Browser string

const (
	BrowserIE         Browser = "ie"
	BrowserEdge       Browser = "edge"
	BrowserFirefox    Browser = "firefox"
	BrowserOpera      Browser = "opera"
	BrowserChrome     Browser = "chrome"
	BrowserSafari     Browser = "safari"
	BrowserBlackBerry Browser = "blackberry"
	BrowserAndroid    Browser = "android"

	// BrowserOther is the fallback for labels outside the browser table.
	BrowserOther Browser = "other"
)

// Label tables map the free-text names produced by signature providers onto
// the closed classification codes above. Matching is case-sensitive and
// exact; anything not listed falls back to the Other code. Downstream code
// branches on these codes, so label spellings are compatibility-critical.
var (
	platformLabels = map[string]Platform{
		"Windows":       PlatformWindows,
		"Windows Phone": PlatformWindowsPhone,
		"Windows CE":    PlatformWindowsCE,
		"iPhone":        PlatformIPhone,
		"iPad":          PlatformIPad,
		"iPod":          PlatformIPod,
		"iPod Touch":    PlatformIPod,
		"iOS":           PlatformIOS,
		"OSx":           PlatformMac,
		"Mac":           PlatformMac,
		"Ubuntu":        PlatformLinux,
		"Kubuntu":       PlatformLinux,
		"Linux":         PlatformLinux,
		"BlackBerry OS": PlatformBlackBerry,
		"Android":       PlatformAndroid,
	}

	engineLabels = map[string]Engine{
		"Trident":     EngineTrident,
		"Edge":        EngineEdge,
		"EdgeHTML":    EngineEdge,
		"Webkit":      EngineWebkit,
		"AppleWebKit": EngineBlink,
		"Blink":       EngineBlink,
		"Gecko":       EngineGecko,
		"Presto":      EnginePresto,
		"KHTML":       EngineKHTML,
		"Amaya":       EngineAmaya,
	}

	browserLabels = map[string]Browser{
		"Internet Explorer":  BrowserIE,
		"Microsoft Edge":     BrowserEdge,
		"Firefox":            BrowserFirefox,
		"Opera":              BrowserOpera,
		"Opera Mobile":       BrowserOpera,
		"Chrome":             BrowserChrome,
		"Chromium":           BrowserChrome,
		"Safari":             BrowserSafari,
		"Mobile Safari":      BrowserSafari,
		"BlackBerry Browser": BrowserBlackBerry,
		"Android Browser":    BrowserAndroid,
	}
)

// Tables holds the three label lookup tables used to classify a signature
// result. The zero value is not usable; start from DefaultTables.
type Tables struct {
	platforms map[string]Platform
	engines   map[string]Engine
	browsers  map[string]Browser
}

// DefaultTables returns the built-in classification tables.
// The returned value shares the base maps; they are never mutated.
func DefaultTables() Tables {
	return Tables{
		platforms: platformLabels,
		engines:   engineLabels,
		browsers:  browserLabels,
	}
}

// Platform classifies an operating-system label, falling back to PlatformOther.
func (t Tables) Platform(label string) Platform {
	if p, ok := t.platforms[label]; ok {
		return p
	}
	return PlatformOther
}

// Engine classifies a rendering-engine label, falling back to EngineOther.
func (t Tables) Engine(label string) Engine {
	if e, ok := t.engines[label]; ok {
		return e
	}
	return EngineOther
}

// Browser classifies a browser label, falling back to BrowserOther.
func (t Tables) Browser(label string) Browser {
	if b, ok := t.browsers[label]; ok {
		return b
	}
	return BrowserOther
}
