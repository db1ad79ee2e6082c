package clientinfo

import "context"

// profileContextKey is the key for storing a client profile in context
type profileContextKey struct{}

// SetToContext stores a client profile in context
func SetToContext(ctx context.Context, p *Profile) context.Context {
	return context.WithValue(ctx, profileContextKey{}, p)
}

// FromContext retrieves a client profile from context, nil when absent
func FromContext(ctx context.Context) *Profile {
	p, _ := ctx.Value(profileContextKey{}).(*Profile)
	return p
}
