package sources

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkills(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "case insensitive matches",
			text:     "We use react, TYPESCRIPT and a bit of go on aws",
			expected: []string{"TypeScript", "React", "Go", "AWS"},
		},
		{
			name:     "no matches outside the vocabulary",
			text:     "Looking for COBOL and Fortran wizards",
			expected: nil,
		},
		{
			name:     "single match",
			text:     "Experience with PostgreSQL required",
			expected: []string{"PostgreSQL"},
		},
		{
			name:     "substring inside larger word still tags",
			text:     "Building RESTful services",
			expected: []string{"REST"},
		},
		{
			name:     "empty text",
			text:     "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractSkills(tt.text))
		})
	}
}
