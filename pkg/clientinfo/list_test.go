package clientinfo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/clientkit/pkg/clientinfo"
)

func TestParseList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{
			name:     "typical accept-encoding",
			raw:      "gzip, deflate,  br",
			expected: []string{"gzip", "deflate", "br"},
		},
		{
			name:     "empty input",
			raw:      "",
			expected: nil,
		},
		{
			name:     "adjacent delimiters keep empty tokens",
			raw:      "a,,b",
			expected: []string{"a", "", "b"},
		},
		{
			name:     "single token",
			raw:      "gzip",
			expected: []string{"gzip"},
		},
		{
			name:     "duplicates preserved in order",
			raw:      "en, fr, en",
			expected: []string{"en", "fr", "en"},
		},
		{
			name:     "whitespace only token trimmed to empty",
			raw:      "a,   ,b",
			expected: []string{"a", "", "b"},
		},
		{
			name:     "trailing delimiter",
			raw:      "gzip,",
			expected: []string{"gzip", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, clientinfo.ParseList(tt.raw))
		})
	}
}
