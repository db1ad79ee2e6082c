package clientinfo_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/clientkit/pkg/clientinfo"
)

func TestRequestSourceHeaders(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("User-Agent", "test-agent")
	r.Header.Set("Accept-Language", "en-US")
	r.Header.Set("X-Custom-Header", "value")

	headers, ok := clientinfo.RequestSource(r).Headers()
	assert.True(t, ok)
	assert.Equal(t, "test-agent", headers["User-Agent"])
	assert.Equal(t, "en-US", headers["Accept-Language"])
	assert.Equal(t, "value", headers["X-Custom-Header"])
}

func TestEnvironSourceFallback(t *testing.T) {
	t.Parallel()

	src := clientinfo.EnvironSource([]string{
		"HTTP_ACCEPT_LANGUAGE=en-US",
		"HTTP_X_FOO=1",
		"PATH=/x",
	})

	_, ok := src.Headers()
	assert.False(t, ok)

	p := clientinfo.New(clientinfo.WithSource(src))
	assert.Equal(t, map[string]string{
		"Accept-Language": "en-US",
		"X-Foo":           "1",
	}, p.Headers())
}

func TestEnvironSourceNormalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		environ  []string
		expected map[string]string
	}{
		{
			name:     "multi word header",
			environ:  []string{"HTTP_UPGRADE_INSECURE_REQUESTS=1"},
			expected: map[string]string{"Upgrade-Insecure-Requests": "1"},
		},
		{
			name:     "single word header",
			environ:  []string{"HTTP_ACCEPT=text/html"},
			expected: map[string]string{"Accept": "text/html"},
		},
		{
			name:     "last value wins on duplicate keys",
			environ:  []string{"HTTP_X_FOO=first", "HTTP_X_FOO=second"},
			expected: map[string]string{"X-Foo": "second"},
		},
		{
			name:     "value containing equals sign",
			environ:  []string{"HTTP_COOKIE=a=b; c=d"},
			expected: map[string]string{"Cookie": "a=b; c=d"},
		},
		{
			name:     "non header variables ignored",
			environ:  []string{"HOME=/root", "SHELL=/bin/sh"},
			expected: map[string]string{},
		},
		{
			name:     "malformed entries ignored",
			environ:  []string{"HTTP_X_BAR", "HTTP_="},
			expected: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := clientinfo.New(clientinfo.WithSource(clientinfo.EnvironSource(tt.environ)))
			assert.Equal(t, tt.expected, p.Headers())
		})
	}
}

func TestImplicitValuesFromEnvironSource(t *testing.T) {
	t.Parallel()

	p := clientinfo.New(clientinfo.WithSource(clientinfo.EnvironSource([]string{
		"HTTP_USER_AGENT=env-agent",
		"HTTP_ACCEPT_ENCODING=gzip, br",
		"HTTP_ACCEPT_LANGUAGE=de-DE",
	})))

	assert.Equal(t, "env-agent", p.UserAgent())
	assert.Equal(t, "gzip, br", p.AcceptEncoding())
	assert.Equal(t, "de-DE", p.AcceptLanguage())
}

func TestHeadersWithoutSource(t *testing.T) {
	t.Parallel()

	p := clientinfo.New()
	assert.Empty(t, p.Headers())
	assert.True(t, p.Detected(clientinfo.DetectionHeaders))
}
