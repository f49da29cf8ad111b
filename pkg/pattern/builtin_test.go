package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLuhnValid(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"valid visa", "4111111111111111", true},
		{"invalid off by one", "4111111111111112", false},
		{"with separators", "4111-1111-1111-1111", true},
		{"too short", "41111111111", false},
		{"non numeric", "not-a-card", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, luhnValid(tt.value))
		})
	}
}

func TestNewRegistryPackOverride(t *testing.T) {
	override := Pattern{Name: "EMAIL", Regex: BuiltinPatterns()[0].Regex, ContextKeywords: []string{"contact"}}
	r := NewRegistry([]Pattern{override})

	found := false
	for _, p := range r.Patterns() {
		if p.Name == "EMAIL" {
			found = true
			require.NotEmpty(t, p.ContextKeywords, "pack override should replace the builtin EMAIL pattern")
		}
	}
	require.True(t, found)
}
