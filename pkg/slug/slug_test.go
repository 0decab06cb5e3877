package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateGreetingSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		suffix   string
		expected string
	}{
		{"simple name", "Asha Reddy", "7f3a9c", "asha-reddy-7f3a9c"},
		{"extra spaces", "  Asha   Reddy  ", "7f3a9c", "asha-reddy-7f3a9c"},
		{"punctuation stripped", "O'Brien, Jr.", "abc123", "obrien-jr-abc123"},
		{"mixed case", "RAVI Kumar", "DEF456", "ravi-kumar-def456"},
		{"digits kept", "Asha 2nd", "x1", "asha-2nd-x1"},
		{"telugu name falls back to suffix", "లక్ష్మి", "7f3a9c", "7f3a9c"},
		{"empty name", "", "7f3a9c", "7f3a9c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenerateGreetingSlug(tt.input, tt.suffix))
		})
	}
}
