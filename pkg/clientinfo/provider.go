package clientinfo

// Signature is the structured result of matching a user agent string against
// a signature database. Zero values are valid: an empty name simply means the
// provider could not fill that field.
type Signature struct {
	// Operating system facts
	OSName    string
	OSVersion string

	// Rendering engine facts
	EngineName    string
	EngineVersion string

	// Browser facts
	BrowserName    string
	BrowserVersion string

	// Device facts
	Mobile bool
	Bot    bool
}

// Provider performs user-agent signature matching. Implementations return
// ErrNoMatch when the input cannot be matched; any other error is treated as
// a collaborator failure and surfaced via Profile.Err.
//
// The headers argument is optional context for providers that refine matches
// with client-hint headers; it may be nil.
type Provider interface {
	Parse(userAgent string, headers map[string]string) (*Signature, error)
}
